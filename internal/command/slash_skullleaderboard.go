package command

import (
	"fmt"
	"strings"

	"skullbot/internal/storage"

	"github.com/bwmarrin/discordgo"
)

type LeaderboardCommand struct{}

func (c *LeaderboardCommand) Name() string { return "skullleaderboard" }
func (c *LeaderboardCommand) Description() string {
	return "Show the leaderboard for skull and golden skull reactions"
}
func (c *LeaderboardCommand) Aliases() []string  { return []string{} }
func (c *LeaderboardCommand) Group() string      { return "skull" }
func (c *LeaderboardCommand) Category() string   { return "💀 Skulls" }
func (c *LeaderboardCommand) RequireAdmin() bool { return false }
func (c *LeaderboardCommand) RequireDev() bool   { return false }

func (c *LeaderboardCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *LeaderboardCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	snapshot, err := slash.Storage.Snapshot(slash.Event.GuildID)
	if err != nil {
		return fmt.Errorf("error reading leaderboard: %w", err)
	}

	RespondEphemeral(slash.Session, slash.Event, renderLeaderboard(snapshot))
	return nil
}

// renderLeaderboard formats a guild snapshot as ranked mention lines, highest
// combined count first.
func renderLeaderboard(snapshot map[string]storage.UserStats) string {
	if len(snapshot) == 0 {
		return "No skull reactions recorded yet."
	}

	lines := make([]string, 0, len(snapshot))
	for _, entry := range storage.Rank(snapshot) {
		lines = append(lines, fmt.Sprintf("<@%s>: %d skulls, %d golden skulls",
			entry.UserID, entry.Stats.TriggerCount, entry.Stats.BonusCount))
	}

	return "**Skull Leaderboard:**\n" + strings.Join(lines, "\n")
}

func init() {
	Register(WithCommandLogger(WithGuildOnly(&LeaderboardCommand{})))
}
