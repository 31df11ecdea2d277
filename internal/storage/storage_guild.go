// /internal/storage/storage_guild.go
package storage

import "strings"

// Enable opts a guild in to skull reactions. Idempotent.
func (s *Storage) Enable(guildID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	whitelist, err := loadTable[bool](s.ds, tableWhitelist)
	if err != nil {
		return err
	}

	whitelist[guildID] = true
	return s.saveTable(tableWhitelist, whitelist)
}

// IsEnabled reports whether the guild has opted in. A guild with no record
// is disabled.
func (s *Storage) IsEnabled(guildID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	whitelist, err := loadTable[bool](s.ds, tableWhitelist)
	if err != nil {
		return false
	}

	enabled, exists := whitelist[guildID]
	return exists && enabled
}

// AddTrigger lower-cases word and appends it to the guild's trigger list.
// Duplicates are allowed; the list keeps insertion order.
func (s *Storage) AddTrigger(guildID, word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	triggers, err := loadTable[[]string](s.ds, tableTriggers)
	if err != nil {
		return err
	}

	triggers[guildID] = append(triggers[guildID], strings.ToLower(word))
	return s.saveTable(tableTriggers, triggers)
}

// ListTriggers returns the guild's trigger words, empty when none are set.
func (s *Storage) ListTriggers(guildID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	triggers, err := loadTable[[]string](s.ds, tableTriggers)
	if err != nil {
		return nil
	}

	list := triggers[guildID]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// ClearTriggers empties the guild's trigger list. Leaderboard counters and
// the rest of the guild's configuration are untouched. Clearing a guild that
// never had triggers is a no-op.
func (s *Storage) ClearTriggers(guildID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	triggers, err := loadTable[[]string](s.ds, tableTriggers)
	if err != nil {
		return err
	}

	if _, exists := triggers[guildID]; !exists {
		return nil
	}

	triggers[guildID] = []string{}
	return s.saveTable(tableTriggers, triggers)
}

// Block adds the user to the guild's blocklist. Returns false when the user
// was already blocked, in which case nothing is written.
func (s *Storage) Block(guildID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blocklist, err := loadTable[[]string](s.ds, tableBlocklist)
	if err != nil {
		return false, err
	}

	for _, id := range blocklist[guildID] {
		if id == userID {
			return false, nil
		}
	}

	blocklist[guildID] = append(blocklist[guildID], userID)
	if err := s.saveTable(tableBlocklist, blocklist); err != nil {
		return true, err
	}
	return true, nil
}

// Unblock removes the user from the guild's blocklist. Returns false when
// the user was not blocked.
func (s *Storage) Unblock(guildID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blocklist, err := loadTable[[]string](s.ds, tableBlocklist)
	if err != nil {
		return false, err
	}

	list := blocklist[guildID]
	for i, id := range list {
		if id == userID {
			blocklist[guildID] = append(list[:i:i], list[i+1:]...)
			if err := s.saveTable(tableBlocklist, blocklist); err != nil {
				return true, err
			}
			return true, nil
		}
	}

	return false, nil
}

// ListBlocked returns the user IDs blocked in the guild, empty when none.
func (s *Storage) ListBlocked(guildID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	blocklist, err := loadTable[[]string](s.ds, tableBlocklist)
	if err != nil {
		return nil
	}

	list := blocklist[guildID]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// IsBlocked reports whether the user is on the guild's blocklist.
func (s *Storage) IsBlocked(guildID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	blocklist, err := loadTable[[]string](s.ds, tableBlocklist)
	if err != nil {
		return false
	}

	for _, id := range blocklist[guildID] {
		if id == userID {
			return true
		}
	}
	return false
}
