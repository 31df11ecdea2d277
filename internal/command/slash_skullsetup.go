package command

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

type SetupCommand struct{}

func (c *SetupCommand) Name() string        { return "skullsetup" }
func (c *SetupCommand) Description() string { return "Enable skull reactions in this server" }
func (c *SetupCommand) Aliases() []string   { return []string{} }
func (c *SetupCommand) Group() string       { return "skull" }
func (c *SetupCommand) Category() string    { return "💀 Skulls" }
func (c *SetupCommand) RequireAdmin() bool  { return false }
func (c *SetupCommand) RequireDev() bool    { return false }

func (c *SetupCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *SetupCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	if err := slash.Storage.Enable(slash.Event.GuildID); err != nil {
		// In-memory state is already enabled; only the durable copy is stale.
		log.Printf("[ERR] Failed to persist whitelist for guild %s: %v", slash.Event.GuildID, err)
	}

	RespondEphemeral(slash.Session, slash.Event, "💀 Skull reactions are now active in this server!")
	return nil
}

func init() {
	Register(WithCommandLogger(WithGuildOnly(&SetupCommand{})))
}
