package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/maze-arcade/internal/core"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

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

	// Save some scores
	_, err := store.SaveScore("pacman", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("pacman", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("pacman", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("classic", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for pacman
	scores, err := store.TopScores("pacman", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for classic
	classicScores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(classicScores) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classicScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("pacman", 100)
	store.SaveScore("pacman", 300)
	store.SaveScore("pacman", 200)

	high, err = store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("pacman", 100)
	store.SaveScore("pacman", 200)
	store.SaveScore("classic", 300)

	// Clear only pacman scores
	err := store.ClearScores("pacman")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Pacman should be empty
	pacmanScores, _ := store.TopScores("pacman", 10)
	if len(pacmanScores) != 0 {
		t.Errorf("Expected 0 pacman scores after clear, got %d", len(pacmanScores))
	}

	// Classic should still have scores
	classicScores, _ := store.TopScores("classic", 10)
	if len(classicScores) != 1 {
		t.Errorf("Classic scores should not be affected by clearing pacman")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
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

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	if best, err := store.BestLevel("pacman"); err != nil || best != 0 {
		t.Fatalf("BestLevel() on empty store = %d, %v", best, err)
	}

	runs := []struct {
		score int
		stats core.RunStats
	}{
		{1200, core.RunStats{Level: 1, DotsEaten: 90, GhostsEaten: 1, Duration: 42 * time.Second}},
		{5400, core.RunStats{Level: 3, DotsEaten: 400, GhostsEaten: 6, Duration: 3 * time.Minute}},
		{2500, core.RunStats{Level: 2, DotsEaten: 200, Duration: 95500 * time.Millisecond}},
	}
	for _, r := range runs {
		if _, err := store.SaveRun("pacman", r.score, r.stats); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun("classic", 10, core.RunStats{Level: 9})

	got, err := store.RecentRuns("pacman", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(got))
	}
	// Newest first
	if got[0].Score != 2500 || got[2].Score != 1200 {
		t.Errorf("Runs not newest first: %+v", got)
	}
	if got[0].Duration != 95500*time.Millisecond || got[1].GhostsEaten != 6 || got[1].DotsEaten != 400 {
		t.Errorf("Run fields not preserved: %+v", got)
	}

	best, err := store.BestLevel("pacman")
	if err != nil {
		t.Fatalf("BestLevel() failed: %v", err)
	}
	if best != 3 {
		t.Errorf("Expected best level 3, got %d", best)
	}

	if err := store.ClearScores("pacman"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if got, _ := store.RecentRuns("pacman", 10); len(got) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(got))
	}
	if best, _ := store.BestLevel("classic"); best != 9 {
		t.Errorf("Other game's runs should survive, best level = %d", best)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("pacman", 100)
	store.SaveScore("pacman", 300)
	store.SaveRun("pacman", 300, core.RunStats{Level: 4})

	stats, err := store.GetGameStats("pacman")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.BestLevel != 4 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
