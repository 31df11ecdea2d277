package version

// Overridden at build time via -ldflags "-X skullbot/internal/version.Version=..."
var (
	AppName   = "Skullbot"
	Version   = "dev"
	BuildDate = ""
)
