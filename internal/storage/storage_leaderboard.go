// /internal/storage/storage_leaderboard.go
package storage

import "sort"

// UserStats holds the two counters tracked per (guild, user) pair. Both only
// ever grow; clearing a guild's triggers never resets them.
type UserStats struct {
	TriggerCount int `json:"triggerCount"`
	BonusCount   int `json:"bonusCount"`
}

// RankedEntry is one leaderboard row after ranking.
type RankedEntry struct {
	UserID string
	Stats  UserStats
}

// RecordTrigger increments the trigger counter for the user, creating a
// zeroed entry first if needed.
func (s *Storage) RecordTrigger(guildID, userID string) error {
	return s.record(guildID, userID, func(stats *UserStats) {
		stats.TriggerCount++
	})
}

// RecordBonus increments the golden-reaction counter for the user.
func (s *Storage) RecordBonus(guildID, userID string) error {
	return s.record(guildID, userID, func(stats *UserStats) {
		stats.BonusCount++
	})
}

func (s *Storage) record(guildID, userID string, bump func(*UserStats)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.persistLeaderboard {
		guild := s.memLeaderboard[guildID]
		if guild == nil {
			guild = map[string]UserStats{}
			s.memLeaderboard[guildID] = guild
		}
		stats := guild[userID]
		bump(&stats)
		guild[userID] = stats
		return nil
	}

	leaderboard, err := loadTable[map[string]UserStats](s.ds, tableLeaderboard)
	if err != nil {
		return err
	}

	guild := leaderboard[guildID]
	if guild == nil {
		guild = map[string]UserStats{}
		leaderboard[guildID] = guild
	}

	stats := guild[userID]
	bump(&stats)
	guild[userID] = stats

	return s.saveTable(tableLeaderboard, leaderboard)
}

// Snapshot returns a copy of the guild's leaderboard entries, empty when the
// guild has none.
func (s *Storage) Snapshot(guildID string) (map[string]UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guild := s.memLeaderboard[guildID]
	if s.persistLeaderboard {
		leaderboard, err := loadTable[map[string]UserStats](s.ds, tableLeaderboard)
		if err != nil {
			return nil, err
		}
		guild = leaderboard[guildID]
	}

	out := make(map[string]UserStats, len(guild))
	for userID, stats := range guild {
		out[userID] = stats
	}
	return out, nil
}

// Rank orders a snapshot by combined count descending. Ties break on user ID
// ascending so the ordering is deterministic across runs.
func Rank(entries map[string]UserStats) []RankedEntry {
	ranked := make([]RankedEntry, 0, len(entries))
	for userID, stats := range entries {
		ranked = append(ranked, RankedEntry{UserID: userID, Stats: stats})
	}

	sort.Slice(ranked, func(i, j int) bool {
		ci := ranked[i].Stats.TriggerCount + ranked[i].Stats.BonusCount
		cj := ranked[j].Stats.TriggerCount + ranked[j].Stats.BonusCount
		if ci != cj {
			return ci > cj
		}
		return ranked[i].UserID < ranked[j].UserID
	})
	return ranked
}
