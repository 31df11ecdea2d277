package discord

import (
	"context"
	"log"
	"time"

	"skullbot/internal/command"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

// Discord allows roughly 200 command creations per guild per day; the global
// write budget is what actually bites during startup, so creations are
// throttled well under it.
var registerLimiter = rate.NewLimiter(rate.Every(time.Second/40), 1)

// registerCommands creates every registered slash command in the guild.
func (b *Bot) registerCommands(guildID string) error {
	appID := b.dg.State.User.ID
	if appID == "" {
		user, err := b.dg.User("@me")
		if err != nil {
			return err
		}
		appID = user.ID
	}

	for _, cmd := range command.All() {
		def := slashDefinition(cmd)
		if def == nil {
			continue
		}

		if err := registerLimiter.Wait(context.Background()); err != nil {
			return err
		}

		if _, err := b.dg.ApplicationCommandCreate(appID, guildID, def); err != nil {
			log.Printf("[ERR] Can't create command %s: %v", def.Name, err)
		} else {
			log.Printf("[DONE] Command created: %s", def.Name)
		}
	}
	return nil
}

func slashDefinition(cmd command.Command) *discordgo.ApplicationCommand {
	if slash, ok := cmd.(command.SlashProvider); ok {
		if def := slash.SlashDefinition(); def != nil {
			if def.Type == 0 {
				def.Type = discordgo.ChatApplicationCommand
			}
			return def
		}
	}
	return nil
}
