package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type WhitelistCommand struct{}

func (c *WhitelistCommand) Name() string { return "skullwhitelist" }
func (c *WhitelistCommand) Description() string {
	return "Show all skull trigger words for this server"
}
func (c *WhitelistCommand) Aliases() []string  { return []string{} }
func (c *WhitelistCommand) Group() string      { return "skull" }
func (c *WhitelistCommand) Category() string   { return "💀 Skulls" }
func (c *WhitelistCommand) RequireAdmin() bool { return false }
func (c *WhitelistCommand) RequireDev() bool   { return false }

func (c *WhitelistCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *WhitelistCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	triggers := slash.Storage.ListTriggers(slash.Event.GuildID)
	if len(triggers) == 0 {
		RespondEphemeral(slash.Session, slash.Event, "No skull trigger words set for this server.")
		return nil
	}

	RespondEphemeral(slash.Session, slash.Event, "Skull trigger words: "+strings.Join(triggers, ", "))
	return nil
}

func init() {
	Register(WithCommandLogger(WithGuildOnly(&WhitelistCommand{})))
}
