package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{4, 2, 7} {
		if _, err := store.SaveScore("claw", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("coaster", 16); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("claw", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 claw scores, got %d", len(scores))
	}
	// Sorted descending.
	if scores[0].Score != 7 || scores[1].Score != 4 || scores[2].Score != 2 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	coasterScores, err := store.TopScores("coaster", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(coasterScores) != 1 {
		t.Errorf("Expected 1 coaster score, got %d", len(coasterScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("claw", i+1)
	}

	scores, err := store.TopScores("claw", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("claw")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("claw", 3)
	store.SaveScore("claw", 9)
	store.SaveScore("claw", 6)

	high, err = store.HighScore("claw")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 9 {
		t.Errorf("Expected high score of 9, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("claw", 1)
	store.SaveScore("claw", 2)
	store.SaveScore("coaster", 8)

	if err := store.ClearScores("claw"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	clawScores, _ := store.TopScores("claw", 10)
	if len(clawScores) != 0 {
		t.Errorf("Expected 0 claw scores after clear, got %d", len(clawScores))
	}

	coasterScores, _ := store.TopScores("coaster", 10)
	if len(coasterScores) != 1 {
		t.Error("Coaster scores should not be affected by clearing claw")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("coaster", i)
	}

	scores, err := store.AllScores("coaster")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("claw", 2)
	store.SaveScore("claw", 4)
	store.SaveScore("claw", 6)

	stats, err := store.GetGameStats("claw")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("Expected 3 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 6 {
		t.Errorf("Expected high score 6, got %d", stats.HighScore)
	}
	if stats.AvgScore != 4 {
		t.Errorf("Expected average 4, got %v", stats.AvgScore)
	}
	if stats.TotalScore != 12 {
		t.Errorf("Expected total 12, got %d", stats.TotalScore)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("claw", 5)
	store.SaveScore("coaster", 8)
	store.SaveScore("coaster", 3)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(stats))
	}
	if stats["coaster"].GamesCount != 2 {
		t.Errorf("Expected 2 coaster games, got %d", stats["coaster"].GamesCount)
	}
	if stats["claw"].HighScore != 5 {
		t.Errorf("Expected claw high score 5, got %d", stats["claw"].HighScore)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
