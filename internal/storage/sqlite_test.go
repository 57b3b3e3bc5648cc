package storage

import (
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

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore(ScoreEntry{GameID: "invaders", Score: 300}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("invaders")
	if err != nil || high != 300 {
		t.Errorf("HighScore() = %d, %v; want 300", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	entries := []ScoreEntry{
		{GameID: "invaders", Player: "ana", Score: 100, Level: 2},
		{GameID: "invaders", Player: "bo", Score: 50},
		{GameID: "invaders", Player: "ana", Score: 200, Level: 3},
		{GameID: "other", Player: "cy", Score: 500, Level: 9},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("invaders", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []struct {
		score, level int
		player       string
	}{
		{200, 3, "ana"},
		{100, 2, "ana"},
		{50, 1, "bo"}, // Level defaults to 1
	}
	for i, w := range want {
		got := scores[i]
		if got.Score != w.score || got.Level != w.level || got.Player != w.player {
			t.Errorf("scores[%d] = %+v, want %+v", i, got, w)
		}
		if got.CreatedAt.IsZero() {
			t.Errorf("scores[%d] has no timestamp", i)
		}
		if time.Since(got.CreatedAt) > 24*time.Hour {
			t.Errorf("scores[%d] timestamp %v looks wrong", i, got.CreatedAt)
		}
	}
}

func TestStoreTopScoresLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		if _, err := store.SaveScore(ScoreEntry{GameID: "invaders", Score: (i % 5) * 10}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("invaders", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Fatalf("Expected 5 scores, got %d", len(scores))
	}
	for i := 1; i < len(scores); i++ {
		prev, cur := scores[i-1], scores[i]
		if cur.Score > prev.Score || (cur.Score == prev.Score && cur.ID < prev.ID) {
			t.Errorf("ordering broken at %d: %+v then %+v", i, prev, cur)
		}
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores("invaders", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		if _, err := store.SaveScore(ScoreEntry{GameID: "invaders", Score: s}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	high, err = store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{GameID: "invaders", Score: 100})
	store.SaveScore(ScoreEntry{GameID: "other", Score: 100})

	if err := store.ClearScores("invaders"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("invaders", 10)
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("ClearScores touched another game: %d left", len(other))
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summary("invaders")
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.GamesCount != 0 || !sum.LastPlayed.IsZero() {
		t.Errorf("empty summary = %+v", sum)
	}

	store.SaveScore(ScoreEntry{GameID: "invaders", Score: 100, Level: 2})
	store.SaveScore(ScoreEntry{GameID: "invaders", Score: 300, Level: 4})

	sum, err = store.Summary("invaders")
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.GamesCount != 2 || sum.HighScore != 300 || sum.BestLevel != 4 ||
		sum.AvgScore != 200 || sum.TotalScore != 400 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := Open("~/.arcade/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ failed: %v", err)
	}
	defer store.Close()

	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".arcade", "test.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}
