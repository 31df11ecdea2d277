package discord

import (
	"context"
	"fmt"
	"log"

	"skullbot/internal/command"
	"skullbot/internal/config"
	"skullbot/internal/skull"
	"skullbot/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// skullEmoji is the reaction applied to messages that hit a trigger word.
const skullEmoji = "\U0001F480"

// Bot is the Discord-facing runtime: it owns the session, feeds inbound
// events to the matcher and dispatches slash commands to the registry.
type Bot struct {
	dg      *discordgo.Session
	storage *storage.Storage
	matcher *skull.Matcher
	cfg     *config.Config
}

func NewBot(cfg *config.Config, store *storage.Storage) *Bot {
	return &Bot{
		cfg:     cfg,
		storage: store,
		matcher: skull.NewMatcher(store, cfg.GoldenEmojiID),
	}
}

// Run opens the Discord session and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onMessageReactionAdd)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onGuildCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] Shutdown signal received. Cleaning up...")
	return nil
}

// configureIntents configures the Discord intents
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentMessageContent
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	if !b.cfg.InitSlashCommands {
		log.Println("[INFO] Registering slash commands skipped")
	} else {
		for _, g := range r.Guilds {
			if err := b.registerCommands(g.ID); err != nil {
				log.Println("[ERR] Error registering slash commands for guild", g.ID, ":", err)
			}
		}
	}

	log.Printf("[INFO] ✅ Discord bot %v is running.", s.State.User.Username)
}

// onGuildCreate is called when the bot joins a guild
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Printf("[INFO] Bot added to guild: %s (%s)", g.Guild.ID, g.Guild.Name)

	if err := b.registerCommands(g.Guild.ID); err != nil {
		log.Printf("[ERR] Failed to register commands for new guild %s: %v", g.Guild.ID, err)
	}
}

// onMessageCreate feeds guild messages through the trigger matcher. On a hit
// the bot reacts with the skull emoji and records the trigger for the author.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}

	hit := b.matcher.ShouldReact(skull.Message{
		GuildID:  m.GuildID,
		AuthorID: m.Author.ID,
		Content:  m.Content,
		Bot:      m.Author.Bot,
	})
	if !hit {
		return
	}

	if err := s.MessageReactionAdd(m.ChannelID, m.ID, skullEmoji); err != nil {
		log.Printf("[WARN] Failed to add skull reaction in channel %s: %v", m.ChannelID, err)
		return
	}

	if err := b.storage.RecordTrigger(m.GuildID, m.Author.ID); err != nil {
		log.Printf("[ERR] Failed to persist leaderboard for guild %s: %v", m.GuildID, err)
	}
}

// onMessageReactionAdd scores golden-skull reactions.
func (b *Bot) onMessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	hit := b.matcher.ShouldScoreBonus(skull.Reaction{
		GuildID: r.GuildID,
		UserID:  r.UserID,
		EmojiID: r.Emoji.ID,
	}, s.State.User.ID)
	if !hit {
		return
	}

	if err := b.storage.RecordBonus(r.GuildID, r.UserID); err != nil {
		log.Printf("[ERR] Failed to persist leaderboard for guild %s: %v", r.GuildID, err)
	}
}

// onInteractionCreate dispatches slash commands to the registry.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	cmdName := i.ApplicationCommandData().Name
	cmd, ok := command.Get(cmdName)
	if !ok {
		log.Printf("[WARN] Unknown command: %s", cmdName)
		return
	}

	ctx := &command.SlashContext{
		Session: s,
		Event:   i,
		Storage: b.storage,
	}
	if err := cmd.Run(ctx); err != nil {
		log.Println("[ERR] Error running slash command:", err)
		command.RespondEphemeral(s, i, "An unknown error occurred, please try again.")
	}
}
