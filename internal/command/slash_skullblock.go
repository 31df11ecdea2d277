package command

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

type BlockCommand struct{}

func (c *BlockCommand) Name() string { return "skullblock" }
func (c *BlockCommand) Description() string {
	return "Prevent the bot from skull-reacting to a user in this server"
}
func (c *BlockCommand) Aliases() []string  { return []string{} }
func (c *BlockCommand) Group() string      { return "skull" }
func (c *BlockCommand) Category() string   { return "💀 Skulls" }
func (c *BlockCommand) RequireAdmin() bool { return false }
func (c *BlockCommand) RequireDev() bool   { return false }

func (c *BlockCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "The user to ignore for skull reactions",
				Required:    true,
			},
		},
	}
}

func (c *BlockCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	user := slash.Event.ApplicationCommandData().Options[0].UserValue(slash.Session)

	added, err := slash.Storage.Block(slash.Event.GuildID, user.ID)
	if err != nil {
		log.Printf("[ERR] Failed to persist blocklist for guild %s: %v", slash.Event.GuildID, err)
	}
	if !added {
		RespondEphemeral(slash.Session, slash.Event, "User is already blocked.")
		return nil
	}

	RespondEphemeral(slash.Session, slash.Event,
		fmt.Sprintf("User %s will now be ignored for skull reactions.", user.Mention()))
	return nil
}

func init() {
	Register(WithCommandLogger(WithGuildOnly(&BlockCommand{})))
}
