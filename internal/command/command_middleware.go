package command

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

type wrappedCommand struct {
	Command
	wrap func(ctx interface{}) error
}

func (w *wrappedCommand) Run(ctx interface{}) error {
	return w.wrap(ctx)
}

func (w *wrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

// WithGuildOnly rejects invocations from outside a guild with an ephemeral
// notice. Every skull command is guild-scoped.
func WithGuildOnly(cmd Command) Command {
	return &wrappedCommand{
		Command: cmd,
		wrap: func(ctx interface{}) error {
			if v, ok := ctx.(*SlashContext); ok && v.Event.GuildID == "" {
				RespondEphemeral(v.Session, v.Event, "You must be in a guild to use this command.")
				return nil
			}
			return cmd.Run(ctx)
		},
	}
}

// WithCommandLogger logs each invocation before running it.
func WithCommandLogger(cmd Command) Command {
	return &wrappedCommand{
		Command: cmd,
		wrap: func(ctx interface{}) error {
			if v, ok := ctx.(*SlashContext); ok {
				user := resolveUser(v.Event)
				log.Printf("[INFO] /%s by %s (%s) in guild %s", cmd.Name(), user.Username, user.ID, v.Event.GuildID)
			}
			return cmd.Run(ctx)
		},
	}
}

// resolveUser retrieves the invoking user from either guild or DM payloads.
func resolveUser(e *discordgo.InteractionCreate) *discordgo.User {
	if e.Member != nil && e.Member.User != nil {
		return e.Member.User
	}
	if e.User != nil {
		return e.User
	}
	return &discordgo.User{}
}
