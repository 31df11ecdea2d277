// /internal/config/config.go
package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken       string `env:"DISCORD_TOKEN"`
	StoragePath        string `env:"STORAGE_PATH" envDefault:"skullbot.json"`
	ListenAddr         string `env:"LISTEN_ADDR" envDefault:":8080"`
	GoldenEmojiID      string `env:"GOLDEN_EMOJI_ID" envDefault:"1369444094887202948"`
	PersistLeaderboard bool   `env:"PERSIST_LEADERBOARD" envDefault:"true"`
	InitSlashCommands  bool   `env:"INIT_SLASH_COMMANDS" envDefault:"true"`
}

// Parse loads configuration from environment variables. A missing
// DISCORD_TOKEN is a startup error: the bot must not come up without it.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is not set")
	}
	return cfg, nil
}

// New is like Parse but fatal on error, for use from main.
func New() *Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}
