package command

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

type UnblockCommand struct{}

func (c *UnblockCommand) Name() string        { return "skullunblock" }
func (c *UnblockCommand) Description() string { return "Remove a user from the skull blocklist" }
func (c *UnblockCommand) Aliases() []string   { return []string{} }
func (c *UnblockCommand) Group() string       { return "skull" }
func (c *UnblockCommand) Category() string    { return "💀 Skulls" }
func (c *UnblockCommand) RequireAdmin() bool  { return false }
func (c *UnblockCommand) RequireDev() bool    { return false }

func (c *UnblockCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The user to unblock from skull reactions",
				Required:    true,
			},
		},
	}
}

func (c *UnblockCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	user := slash.Event.ApplicationCommandData().Options[0].UserValue(slash.Session)

	removed, err := slash.Storage.Unblock(slash.Event.GuildID, user.ID)
	if err != nil {
		log.Printf("[ERR] Failed to persist blocklist for guild %s: %v", slash.Event.GuildID, err)
	}
	if !removed {
		RespondEphemeral(slash.Session, slash.Event, "User is not currently blocked.")
		return nil
	}

	RespondEphemeral(slash.Session, slash.Event,
		fmt.Sprintf("User %s has been unblocked.", user.Mention()))
	return nil
}

func init() {
	Register(WithCommandLogger(WithGuildOnly(&UnblockCommand{})))
}
