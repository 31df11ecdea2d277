// /internal/skull/matcher.go
package skull

import "strings"

// Rules is the slice of guild configuration the matcher consults. Satisfied
// by *storage.Storage.
type Rules interface {
	IsEnabled(guildID string) bool
	IsBlocked(guildID, userID string) bool
	ListTriggers(guildID string) []string
}

// Matcher decides, per inbound event, whether the skull action fires. It
// holds no state between events; every message is matched from scratch
// against the current configuration.
type Matcher struct {
	rules         Rules
	goldenEmojiID string
}

func NewMatcher(rules Rules, goldenEmojiID string) *Matcher {
	return &Matcher{rules: rules, goldenEmojiID: goldenEmojiID}
}

// Message is an inbound guild message reduced to the fields matching needs.
type Message struct {
	GuildID  string
	AuthorID string
	Content  string
	Bot      bool
}

// Reaction is an inbound reaction-added event.
type Reaction struct {
	GuildID string
	UserID  string
	EmojiID string
}

// ShouldReact reports whether the message earns a skull reaction and a
// trigger-count increment. Matching is a plain substring test over the
// lower-cased content, so a short trigger can fire inside a longer word.
// At most one hit per message regardless of how many triggers match.
func (m *Matcher) ShouldReact(msg Message) bool {
	if msg.Bot {
		return false
	}
	if msg.GuildID == "" {
		return false
	}
	if !m.rules.IsEnabled(msg.GuildID) {
		return false
	}
	if m.rules.IsBlocked(msg.GuildID, msg.AuthorID) {
		return false
	}

	content := strings.ToLower(msg.Content)
	for _, word := range m.rules.ListTriggers(msg.GuildID) {
		if strings.Contains(content, word) {
			return true
		}
	}
	return false
}

// ShouldScoreBonus reports whether the reaction earns a bonus-count
// increment. Only the golden emoji counts, and the bot never scores its own
// reactions. Enabled/blocked state is intentionally not consulted here: the
// golden counter tracks reactions across the whole guild, opted in or not.
func (m *Matcher) ShouldScoreBonus(r Reaction, botUserID string) bool {
	if r.EmojiID != m.goldenEmojiID {
		return false
	}
	if r.GuildID == "" {
		return false
	}
	if r.UserID == botUserID {
		return false
	}
	return true
}
