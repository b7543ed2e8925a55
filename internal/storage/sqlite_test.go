package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleEntry(seed int64) ReplayEntry {
	return ReplayEntry{
		Mode:       "vs-ai",
		Difficulty: "medium",
		Seed:       seed,
		TickRate:   60,
		Ticks:      1234,
		LeftScore:  5,
		RightScore: 2,
		Winner:     "left",
		Data:       []byte{0x50, 0x4f, 0x4e, 0x47, 0x00, 0x01},
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(sampleEntry(42))
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if id == 0 {
		t.Error("Expected a non-zero inserted ID")
	}

	got, err := store.ReplayByID(id)
	if err != nil {
		t.Fatalf("ReplayByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected a replay, got nil")
	}

	want := sampleEntry(42)
	if got.Mode != want.Mode || got.Difficulty != want.Difficulty {
		t.Errorf("Metadata mismatch: got %q/%q", got.Mode, got.Difficulty)
	}
	if got.Seed != want.Seed || got.TickRate != want.TickRate || got.Ticks != want.Ticks {
		t.Errorf("Replay parameters mismatch: %+v", got)
	}
	if got.LeftScore != 5 || got.RightScore != 2 || got.Winner != "left" {
		t.Errorf("Result mismatch: %+v", got)
	}
	if string(got.Data) != string(want.Data) {
		t.Errorf("Data blob mismatch: got %v", got.Data)
	}
}

func TestStoreReplayByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.ReplayByID(999)
	if err != nil {
		t.Fatalf("ReplayByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for a missing replay, got %+v", got)
	}
}

func TestStoreReplaysListNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for i := int64(1); i <= 5; i++ {
		if _, err := store.SaveReplay(sampleEntry(i)); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}

	entries, err := store.Replays(10)
	if err != nil {
		t.Fatalf("Replays() failed: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("Expected 5 replays, got %d", len(entries))
	}

	// Inserted within the same second, so order falls back to ID.
	if entries[0].Seed != 5 {
		t.Errorf("Expected the newest replay first, got seed %d", entries[0].Seed)
	}

	// Listing does not load the input trace.
	if entries[0].Data != nil {
		t.Error("Replays() should not load the data blob")
	}
}

func TestStoreReplaysLimit(t *testing.T) {
	store := openTestStore(t)

	for i := int64(0); i < 5; i++ {
		store.SaveReplay(sampleEntry(i))
	}

	entries, err := store.Replays(3)
	if err != nil {
		t.Fatalf("Replays() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 replays with limit, got %d", len(entries))
	}
}

func TestStoreDeleteReplay(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(sampleEntry(1))
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	store.SaveReplay(sampleEntry(2))

	if err := store.DeleteReplay(id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}

	got, err := store.ReplayByID(id)
	if err != nil {
		t.Fatalf("ReplayByID() failed: %v", err)
	}
	if got != nil {
		t.Error("Deleted replay should be gone")
	}

	entries, _ := store.Replays(10)
	if len(entries) != 1 {
		t.Errorf("Expected 1 remaining replay, got %d", len(entries))
	}
}

func TestStoreClearReplays(t *testing.T) {
	store := openTestStore(t)

	store.SaveReplay(sampleEntry(1))
	store.SaveReplay(sampleEntry(2))

	if err := store.ClearReplays(); err != nil {
		t.Fatalf("ClearReplays() failed: %v", err)
	}

	entries, _ := store.Replays(10)
	if len(entries) != 0 {
		t.Errorf("Expected 0 replays after clear, got %d", len(entries))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
