package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/save"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
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

func TestStoreSaveAndLoadGame(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.LoadGame("default"); !errors.Is(err, ErrNoSave) {
		t.Fatalf("LoadGame() on empty store: got %v, want ErrNoSave", err)
	}

	if err := store.SaveGame("default", []byte("location: prolog\n")); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	if err := store.SaveGame("default", []byte("location: map\n")); err != nil {
		t.Fatalf("SaveGame() overwrite failed: %v", err)
	}

	doc, err := store.LoadGame("default")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if string(doc) != "location: map\n" {
		t.Errorf("Expected overwritten document, got %q", doc)
	}
}

func TestStoreListAndDeleteSlots(t *testing.T) {
	store := openTestStore(t)

	for _, slot := range []string{"alice", "bob"} {
		if err := store.SaveGame(slot, []byte("{}")); err != nil {
			t.Fatalf("SaveGame(%q) failed: %v", slot, err)
		}
	}

	slots, err := store.ListSlots()
	if err != nil {
		t.Fatalf("ListSlots() failed: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("Expected 2 slots, got %d", len(slots))
	}

	if err := store.DeleteGame("alice"); err != nil {
		t.Fatalf("DeleteGame() failed: %v", err)
	}
	if err := store.DeleteGame("alice"); !errors.Is(err, ErrNoSave) {
		t.Errorf("Deleting twice: got %v, want ErrNoSave", err)
	}

	slots, _ = store.ListSlots()
	if len(slots) != 1 || slots[0].Slot != "bob" {
		t.Errorf("Expected only bob to remain, got %v", slots)
	}
}

func TestStoreSolveHistory(t *testing.T) {
	store := openTestStore(t)

	store.RecordSolve("alice", "wrecked_angle", 40)
	store.RecordSolve("bob", "wrecked_angle", 25)
	store.RecordSolve("alice", "level_up", 12)

	entries, err := store.SolveHistory("wrecked_angle", 10)
	if err != nil {
		t.Fatalf("SolveHistory() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 wrecked_angle solves, got %d", len(entries))
	}
	// Newest first
	if entries[0].Slot != "bob" || entries[0].Moves != 25 {
		t.Errorf("Expected bob's solve first, got %+v", entries[0])
	}

	all, err := store.SolveHistory("", 10)
	if err != nil {
		t.Fatalf("SolveHistory(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 solves in total, got %d", len(all))
	}

	limited, _ := store.SolveHistory("", 1)
	if len(limited) != 1 {
		t.Errorf("Expected limit to apply, got %d entries", len(limited))
	}
}

func TestStoreBestSolve(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestSolve("level_up")
	if err != nil {
		t.Fatalf("BestSolve() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for an unsolved puzzle, got %d", best)
	}

	store.RecordSolve("alice", "level_up", 30)
	store.RecordSolve("bob", "level_up", 18)
	store.RecordSolve("carol", "level_up", 22)

	best, err = store.BestSolve("level_up")
	if err != nil {
		t.Fatalf("BestSolve() failed: %v", err)
	}
	if best != 18 {
		t.Errorf("Expected best of 18, got %d", best)
	}
}

func TestStoreClearSolves(t *testing.T) {
	store := openTestStore(t)

	store.RecordSolve("alice", "level_up", 30)
	store.RecordSolve("bob", "level_up", 18)

	if err := store.ClearSolves("alice"); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	entries, _ := store.SolveHistory("level_up", 10)
	if len(entries) != 1 || entries[0].Slot != "bob" {
		t.Errorf("Only alice's solves should be cleared, got %v", entries)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.RecordSolve("alice", "virtue_or_ice", 9)
	store.RecordSolve("bob", "virtue_or_ice", 5)
	store.RecordSolve("alice", "plane_as_day", 60)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	virtue := stats["virtue_or_ice"]
	if virtue == nil {
		t.Fatal("Expected stats for virtue_or_ice")
	}
	if virtue.Solves != 2 || virtue.FewestMoves != 5 || virtue.AvgMoves != 7 {
		t.Errorf("Unexpected stats: %+v", virtue)
	}
	if len(stats) != 2 {
		t.Errorf("Expected 2 locations, got %d", len(stats))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
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

func TestStoreGameState(t *testing.T) {
	store := openTestStore(t)
	logger := log.New(io.Discard)

	game, err := store.LoadState("default", logger)
	if err != nil {
		t.Fatalf("LoadState() on empty slot failed: %v", err)
	}
	if game.Location != save.Prolog {
		t.Errorf("Expected a new game at the prolog, got %v", game.Location)
	}

	game.Puzzle(save.Prolog).Solve()
	game.Enter(save.WreckedAngle)
	game.Wrecked.ShiftTiles(core.East, 0)
	if err := store.SaveState("default", game); err != nil {
		t.Fatalf("SaveState() failed: %v", err)
	}

	loaded, err := store.LoadState("default", logger)
	if err != nil {
		t.Fatalf("LoadState() failed: %v", err)
	}
	if loaded.Location != save.WreckedAngle {
		t.Errorf("Expected location wrecked_angle, got %v", loaded.Location)
	}
	if !loaded.Wrecked.CanReset() {
		t.Error("Expected the shifted grid to survive a save")
	}

	store.SaveGame("broken", []byte("{not yaml"))
	fresh, err := store.LoadState("broken", logger)
	if err != nil {
		t.Fatalf("LoadState() on a damaged slot failed: %v", err)
	}
	if fresh.IsSolved(save.Prolog) {
		t.Error("A damaged slot should start a new game")
	}
}
