package command

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"skullbot/internal/version"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

type StatusCommand struct{}

func (c *StatusCommand) Name() string        { return "skullstatus" }
func (c *StatusCommand) Description() string { return "Show bot and host status" }
func (c *StatusCommand) Aliases() []string   { return []string{} }
func (c *StatusCommand) Group() string       { return "core" }
func (c *StatusCommand) Category() string    { return "🛠️ Maintenance" }
func (c *StatusCommand) RequireAdmin() bool  { return false }
func (c *StatusCommand) RequireDev() bool    { return false }

func (c *StatusCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *StatusCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	lines := []string{
		fmt.Sprintf("**%s** %s", version.AppName, version.Version),
		fmt.Sprintf("Guilds: %d", len(slash.Session.State.Guilds)),
		fmt.Sprintf("Go routines: %d", runtime.NumGoroutine()),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		lines = append(lines, fmt.Sprintf("CPU: %.1f%%", percents[0]))
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		lines = append(lines, fmt.Sprintf("Memory: %.1f%% of %d MB", vm.UsedPercent, vm.Total/1024/1024))
	}
	if info, err := host.Info(); err == nil {
		lines = append(lines, fmt.Sprintf("Host uptime: %s", (time.Duration(info.Uptime)*time.Second).String()))
	}

	RespondEphemeral(slash.Session, slash.Event, strings.Join(lines, "\n"))
	return nil
}

func init() {
	Register(WithCommandLogger(&StatusCommand{}))
}
