package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("runaway", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("runaway", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("runaway", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("chase", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for runaway
	scores, err := store.TopScores("runaway", 10)
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

	// Retrieve top scores for chase
	chaseScores, err := store.TopScores("chase", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(chaseScores) != 1 {
		t.Errorf("Expected 1 chase score, got %d", len(chaseScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("runaway")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("runaway", 100)
	store.SaveScore("runaway", 300)
	store.SaveScore("runaway", 200)

	high, err = store.HighScore("runaway")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("runaway", 100)
	store.SaveScore("runaway", 200)
	store.SaveScore("chase", 300)

	// Clear only runaway scores
	err = store.ClearScores("runaway")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Flappy should be empty
	runawayScores, _ := store.TopScores("runaway", 10)
	if len(runawayScores) != 0 {
		t.Errorf("Expected 0 runaway scores after clear, got %d", len(runawayScores))
	}

	// Chase should still have scores
	chaseScores, _ := store.TopScores("chase", 10)
	if len(chaseScores) != 1 {
		t.Errorf("Chase scores should not be affected by clearing runaway")
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

func TestStoreRunDetails(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(Run{GameID: "chase", Score: 120, Distance: 5400.5, Cause: "caught"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.SaveRun(Run{GameID: "chase", Score: 80, Distance: 3000, Cause: "fell"})
	store.SaveRun(Run{GameID: "chase", Score: 40, Distance: 9000, Cause: "fell"})

	scores, err := store.TopScores("chase", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Distance != 5400.5 || scores[0].Cause != "caught" {
		t.Errorf("run details not stored: %+v", scores[0])
	}

	stats, err := store.GetGameStats("chase")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 120 || stats.TotalScore != 240 {
		t.Errorf("unexpected totals: %+v", stats)
	}
	if stats.LongestRun != 9000 {
		t.Errorf("LongestRun = %v, expected 9000", stats.LongestRun)
	}
	if stats.CommonDeaths != "fell" {
		t.Errorf("CommonDeaths = %q, expected fell", stats.CommonDeaths)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["chase"] == nil || all["chase"].GamesCount != 3 {
		t.Errorf("unexpected per-game stats: %v", all)
	}
}

func TestBestStore(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	best := store.BestStore("runaway")
	if got, err := best.LoadBest(); err != nil || got != 0 {
		t.Fatalf("LoadBest() on an empty store = %d, %v; expected 0, nil", got, err)
	}

	// Falls back to the run history until a best is saved
	store.SaveScore("runaway", 70)
	if got, _ := best.LoadBest(); got != 70 {
		t.Errorf("LoadBest() should fall back to the history, got %d", got)
	}

	if err := best.SaveBest(150); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	if err := best.SaveBest(90); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	if got, _ := best.LoadBest(); got != 150 {
		t.Errorf("a lower SaveBest must not overwrite the best, got %d", got)
	}

	other := store.BestStore("chase")
	if got, _ := other.LoadBest(); got != 0 {
		t.Errorf("best scores are per game, chase got %d", got)
	}

	if err := store.ClearScores("runaway"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if got, _ := best.LoadBest(); got != 0 {
		t.Errorf("ClearScores should reset the best, got %d", got)
	}
}
