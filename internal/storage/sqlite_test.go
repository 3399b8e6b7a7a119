package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "slidemaze", Seed: 42, Size: 5, Steps: 12, Drags: 3, Solved: true, Duration: 61})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("expected a UUID, got %q", id)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run.Seed != 42 || run.Size != 5 || run.Steps != 12 || run.Drags != 3 || !run.Solved || run.Duration != 61 {
		t.Errorf("RunByID() = %+v, fields do not round trip", run)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestRunByIDNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.RunByID("00000000-0000-0000-0000-000000000000")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("RunByID() error = %v, expected ErrNotFound", err)
	}
}

func TestRecentRunsOrderAndFilter(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i, game := range []string{"slidemaze", "slidemaze_anchored", "slidemaze", "slidemaze"} {
		_, err := store.SaveRun(Run{
			GameID:    game,
			Seed:      int64(i),
			Size:      5,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("slidemaze", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Seed != 3 || runs[1].Seed != 2 {
		t.Errorf("expected newest first (seeds 3, 2), got %d, %d", runs[0].Seed, runs[1].Seed)
	}
	if !runs[0].CreatedAt.Equal(base.Add(3 * time.Minute)) {
		t.Errorf("CreatedAt = %v, expected %v", runs[0].CreatedAt, base.Add(3*time.Minute))
	}

	all, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatalf("RecentRuns(all) failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("expected 4 runs across games, got %d", len(all))
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "slidemaze", Steps: 20, Drags: 4, Solved: true},
		{GameID: "slidemaze", Steps: 9, Drags: 2, Solved: true},
		{GameID: "slidemaze", Steps: 3, Drags: 7, Solved: false},
		{GameID: "other", Steps: 1, Solved: true},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.GameStats("slidemaze")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Runs = %d, expected 3", stats.Runs)
	}
	if stats.Solved != 2 {
		t.Errorf("Solved = %d, expected 2", stats.Solved)
	}
	if stats.BestSteps != 9 {
		t.Errorf("BestSteps = %d, expected 9", stats.BestSteps)
	}
	if stats.TotalSteps != 32 || stats.TotalDrags != 13 {
		t.Errorf("totals = %d steps / %d drags, expected 32 / 13", stats.TotalSteps, stats.TotalDrags)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestGameStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GameStats("slidemaze")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestSteps != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v, expected zero values", stats)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	for _, game := range []string{"slidemaze", "slidemaze", "slidemaze_anchored"} {
		if _, err := store.SaveRun(Run{GameID: game}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	if err := store.ClearRuns("slidemaze"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns("slidemaze", 10)
	if len(runs) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(runs))
	}
	other, _ := store.RecentRuns("slidemaze_anchored", 10)
	if len(other) != 1 {
		t.Errorf("other game should keep its runs, got %d", len(other))
	}
}
