package command

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

type AddSkullCommand struct{}

func (c *AddSkullCommand) Name() string        { return "addskull" }
func (c *AddSkullCommand) Description() string { return "Add a new skull trigger word" }
func (c *AddSkullCommand) Aliases() []string   { return []string{} }
func (c *AddSkullCommand) Group() string       { return "skull" }
func (c *AddSkullCommand) Category() string    { return "💀 Skulls" }
func (c *AddSkullCommand) RequireAdmin() bool  { return false }
func (c *AddSkullCommand) RequireDev() bool    { return false }

func (c *AddSkullCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "trigger",
				Description: "The word that triggers skull reaction",
				Required:    true,
			},
		},
	}
}

func (c *AddSkullCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	trigger := slash.Event.ApplicationCommandData().Options[0].StringValue()

	if err := slash.Storage.AddTrigger(slash.Event.GuildID, trigger); err != nil {
		log.Printf("[ERR] Failed to persist triggers for guild %s: %v", slash.Event.GuildID, err)
	}

	RespondEphemeral(slash.Session, slash.Event, fmt.Sprintf("💀 Trigger added: `%s`", trigger))
	return nil
}

func init() {
	Register(WithCommandLogger(WithGuildOnly(&AddSkullCommand{})))
}
