// /internal/storage/storage.go
package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/keshon/datastore"
)

// Logical table names as persisted in the datastore file.
const (
	tableWhitelist   = "whitelist"
	tableTriggers    = "triggers"
	tableBlocklist   = "blocklist"
	tableLeaderboard = "leaderboard"
)

// Storage owns all guild state. Every mutation goes through one of its
// methods and is followed by a synchronous write of the whole table, so the
// file on disk always trails the in-memory state by at most the failing write.
type Storage struct {
	ds                 *datastore.DataStore
	mu                 sync.Mutex
	persistLeaderboard bool
	memLeaderboard     map[string]map[string]UserStats
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{
		ds:                 ds,
		persistLeaderboard: true,
		memLeaderboard:     map[string]map[string]UserStats{},
	}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// DisableLeaderboardPersistence keeps leaderboard counters in memory only,
// starting empty each run. The counters must stay out of the datastore
// entirely: its auto-save and final flush would otherwise write them to disk
// regardless. Guild configuration tables are always persisted.
func (s *Storage) DisableLeaderboardPersistence() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistLeaderboard = false
}

// loadTable returns the named table, or an empty one when nothing has been
// persisted under that name yet. Values read back from disk arrive as
// map[string]any, so they are re-materialized through a JSON round-trip.
func loadTable[T any](ds *datastore.DataStore, name string) (map[string]T, error) {
	data, exists := ds.Get(name)
	if !exists {
		return map[string]T{}, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling table %s: %w", name, err)
	}

	var table map[string]T
	if err := json.Unmarshal(jsonData, &table); err != nil {
		return nil, fmt.Errorf("error unmarshalling table %s: %w", name, err)
	}
	if table == nil {
		table = map[string]T{}
	}
	return table, nil
}

// saveTable replaces the named table and forces it to disk. The in-memory
// copy keeps the new value even when the write fails; the caller decides how
// loudly to complain.
func (s *Storage) saveTable(name string, table any) error {
	s.ds.Add(name, table)
	if err := s.ds.SaveToFile(); err != nil {
		return fmt.Errorf("error persisting table %s: %w", name, err)
	}
	return nil
}
