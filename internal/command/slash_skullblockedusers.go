package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type BlockedUsersCommand struct{}

func (c *BlockedUsersCommand) Name() string { return "skullblockedusers" }
func (c *BlockedUsersCommand) Description() string {
	return "List users blocked from skull reactions"
}
func (c *BlockedUsersCommand) Aliases() []string  { return []string{} }
func (c *BlockedUsersCommand) Group() string      { return "skull" }
func (c *BlockedUsersCommand) Category() string   { return "💀 Skulls" }
func (c *BlockedUsersCommand) RequireAdmin() bool { return false }
func (c *BlockedUsersCommand) RequireDev() bool   { return false }

func (c *BlockedUsersCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *BlockedUsersCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	blocked := slash.Storage.ListBlocked(slash.Event.GuildID)
	if len(blocked) == 0 {
		RespondEphemeral(slash.Session, slash.Event,
			"No users are currently blocked from skull reactions in this server.")
		return nil
	}

	mentions := make([]string, 0, len(blocked))
	for _, userID := range blocked {
		mentions = append(mentions, fmt.Sprintf("<@%s>", userID))
	}

	RespondEphemeral(slash.Session, slash.Event, "Blocked users:\n"+strings.Join(mentions, "\n"))
	return nil
}

func init() {
	Register(WithCommandLogger(WithGuildOnly(&BlockedUsersCommand{})))
}
