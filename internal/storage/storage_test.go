package storage

import (
	"path/filepath"
	"reflect"
	"testing"
)

func newTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skullbot.json")
	store, err := New(path)
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestEnableIsIdempotent(t *testing.T) {
	store, _ := newTestStorage(t)

	if store.IsEnabled("g1") {
		t.Fatal("guild with no record must be disabled")
	}

	for i := 0; i < 2; i++ {
		if err := store.Enable("g1"); err != nil {
			t.Fatalf("enable: %v", err)
		}
	}

	if !store.IsEnabled("g1") {
		t.Fatal("expected guild enabled")
	}
	if store.IsEnabled("g2") {
		t.Fatal("unrelated guild must stay disabled")
	}
}

func TestTriggersLowerCaseOrderAndDuplicates(t *testing.T) {
	store, _ := newTestStorage(t)

	for _, word := range []string{"OW", "lol", "ow"} {
		if err := store.AddTrigger("g1", word); err != nil {
			t.Fatalf("add trigger: %v", err)
		}
	}

	want := []string{"ow", "lol", "ow"}
	if got := store.ListTriggers("g1"); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestClearTriggers(t *testing.T) {
	store, _ := newTestStorage(t)

	if err := store.ClearTriggers("never-configured"); err != nil {
		t.Fatalf("clear on absent guild: %v", err)
	}

	if err := store.AddTrigger("g1", "lol"); err != nil {
		t.Fatalf("add trigger: %v", err)
	}
	if err := store.ClearTriggers("g1"); err != nil {
		t.Fatalf("clear triggers: %v", err)
	}
	if got := store.ListTriggers("g1"); len(got) != 0 {
		t.Fatalf("expected empty trigger list, got %v", got)
	}
}

func TestBlockUnblock(t *testing.T) {
	store, _ := newTestStorage(t)

	added, err := store.Block("g1", "u1")
	if err != nil {
		t.Fatalf("block: %v", err)
	}
	if !added {
		t.Fatal("first block must report newly blocked")
	}

	added, err = store.Block("g1", "u1")
	if err != nil {
		t.Fatalf("second block: %v", err)
	}
	if added {
		t.Fatal("second block must report already blocked")
	}
	if got := store.ListBlocked("g1"); len(got) != 1 {
		t.Fatalf("blocklist cardinality changed on repeat block: %v", got)
	}

	if !store.IsBlocked("g1", "u1") {
		t.Fatal("expected u1 blocked")
	}
	if store.IsBlocked("g2", "u1") {
		t.Fatal("block must be guild-scoped")
	}

	removed, err := store.Unblock("g1", "u1")
	if err != nil {
		t.Fatalf("unblock: %v", err)
	}
	if !removed {
		t.Fatal("unblock must report removal")
	}

	removed, err = store.Unblock("g1", "u1")
	if err != nil {
		t.Fatalf("second unblock: %v", err)
	}
	if removed {
		t.Fatal("second unblock must report not blocked")
	}
}

func TestCountersAreIndependent(t *testing.T) {
	store, _ := newTestStorage(t)

	if err := store.RecordTrigger("g1", "u1"); err != nil {
		t.Fatalf("record trigger: %v", err)
	}

	snap, err := store.Snapshot("g1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if got := snap["u1"]; got.TriggerCount != 1 || got.BonusCount != 0 {
		t.Fatalf("expected {1 0}, got %+v", got)
	}

	if err := store.RecordBonus("g1", "u1"); err != nil {
		t.Fatalf("record bonus: %v", err)
	}
	if err := store.RecordTrigger("g1", "u1"); err != nil {
		t.Fatalf("record trigger: %v", err)
	}

	snap, err = store.Snapshot("g1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if got := snap["u1"]; got.TriggerCount != 2 || got.BonusCount != 1 {
		t.Fatalf("expected {2 1}, got %+v", got)
	}

	// Clearing triggers never resets counters.
	if err := store.ClearTriggers("g1"); err != nil {
		t.Fatalf("clear triggers: %v", err)
	}
	snap, err = store.Snapshot("g1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if got := snap["u1"]; got.TriggerCount != 2 || got.BonusCount != 1 {
		t.Fatalf("counters reset by trigger clear: %+v", got)
	}
}

func TestRoundTripAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skullbot.json")

	store, err := New(path)
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}
	if err := store.Enable("g1"); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if err := store.AddTrigger("g1", "LOL"); err != nil {
		t.Fatalf("add trigger: %v", err)
	}
	if _, err := store.Block("g1", "u2"); err != nil {
		t.Fatalf("block: %v", err)
	}
	if err := store.RecordTrigger("g1", "u1"); err != nil {
		t.Fatalf("record trigger: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if !reopened.IsEnabled("g1") {
		t.Fatal("enable flag lost across reopen")
	}
	if got := reopened.ListTriggers("g1"); !reflect.DeepEqual(got, []string{"lol"}) {
		t.Fatalf("triggers lost across reopen: %v", got)
	}
	if !reopened.IsBlocked("g1", "u2") {
		t.Fatal("blocklist lost across reopen")
	}
	snap, err := reopened.Snapshot("g1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if got := snap["u1"]; got.TriggerCount != 1 {
		t.Fatalf("leaderboard lost across reopen: %+v", got)
	}
}

func TestLeaderboardPersistenceToggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skullbot.json")

	store, err := New(path)
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}
	store.DisableLeaderboardPersistence()

	if err := store.Enable("g1"); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if err := store.RecordTrigger("g1", "u1"); err != nil {
		t.Fatalf("record trigger: %v", err)
	}

	snap, err := store.Snapshot("g1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if got := snap["u1"]; got.TriggerCount != 1 {
		t.Fatalf("in-memory counters must still work: %+v", got)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if !reopened.IsEnabled("g1") {
		t.Fatal("config tables must persist regardless of the toggle")
	}
	snap, err = reopened.Snapshot("g1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snap) != 0 {
		t.Fatalf("leaderboard must not be persisted when disabled: %v", snap)
	}
}

func TestRankOrderingAndTies(t *testing.T) {
	entries := map[string]UserStats{
		"u-c": {TriggerCount: 1, BonusCount: 0},
		"u-a": {TriggerCount: 0, BonusCount: 1},
		"u-b": {TriggerCount: 2, BonusCount: 3},
	}

	ranked := Rank(entries)

	wantOrder := []string{"u-b", "u-a", "u-c"}
	for i, want := range wantOrder {
		if ranked[i].UserID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, ranked[i].UserID)
		}
	}

	// Tied entries keep user-ID order, so rendering is stable across runs.
	again := Rank(entries)
	if !reflect.DeepEqual(ranked, again) {
		t.Fatalf("ranking not deterministic: %v vs %v", ranked, again)
	}
}
