package command

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

type RemoveSkullsCommand struct{}

func (c *RemoveSkullsCommand) Name() string { return "removeskulls" }
func (c *RemoveSkullsCommand) Description() string {
	return "Clear all skull trigger words for this server"
}
func (c *RemoveSkullsCommand) Aliases() []string  { return []string{} }
func (c *RemoveSkullsCommand) Group() string      { return "skull" }
func (c *RemoveSkullsCommand) Category() string   { return "💀 Skulls" }
func (c *RemoveSkullsCommand) RequireAdmin() bool { return false }
func (c *RemoveSkullsCommand) RequireDev() bool   { return false }

func (c *RemoveSkullsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *RemoveSkullsCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	if err := slash.Storage.ClearTriggers(slash.Event.GuildID); err != nil {
		log.Printf("[ERR] Failed to persist triggers for guild %s: %v", slash.Event.GuildID, err)
	}

	RespondEphemeral(slash.Session, slash.Event, "All skull trigger words removed for this server.")
	return nil
}

func init() {
	Register(WithCommandLogger(WithGuildOnly(&RemoveSkullsCommand{})))
}
