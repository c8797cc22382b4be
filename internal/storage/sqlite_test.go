package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
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
	store := openTemp(t)

	runs := []struct {
		game, run string
		score     int
	}{
		{"shooter", "run-a", 100},
		{"shooter", "run-b", 50},
		{"shooter", "run-c", 200},
		{"shooter_arcade", "run-d", 500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.game, r.run, r.score); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopScores("shooter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].RunID != "run-c" {
		t.Errorf("top run id = %q, want run-c", scores[0].RunID)
	}

	arcade, err := store.TopScores("shooter_arcade", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(arcade) != 1 || arcade[0].Score != 500 {
		t.Errorf("arcade scores = %+v", arcade)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)
	for i := range 15 {
		store.SaveRun("shooter", "", i*10)
	}

	scores, err := store.TopScores("shooter", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 140 {
		t.Errorf("Expected top score 140, got %d", scores[0].Score)
	}

	// Zero limit falls back to 10
	scores, _ = store.TopScores("shooter", 0)
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTemp(t)
	store.SaveRun("shooter", "6f1c", 420)

	run, err := store.RunByID("6f1c")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil || run.Score != 420 || run.GameID != "shooter" {
		t.Errorf("run = %+v", run)
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("missing run = %+v, %v; want nil, nil", missing, err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty mode, got %d", high)
	}

	store.SaveRun("shooter", "", 100)
	store.SaveRun("shooter", "", 300)
	if high, _ = store.HighScore("shooter"); high != 300 {
		t.Errorf("Expected 300 from runs, got %d", high)
	}

	// A stored best above every run wins.
	if err := store.SaveBest("shooter", 900); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	if high, _ = store.HighScore("shooter"); high != 900 {
		t.Errorf("Expected 900 from best, got %d", high)
	}
}

func TestStoreSaveBestNeverLowers(t *testing.T) {
	store := openTemp(t)

	store.SaveBest("shooter", 500)
	store.SaveBest("shooter", 200)
	if high, _ := store.HighScore("shooter"); high != 500 {
		t.Errorf("best = %d, want 500", high)
	}

	store.SaveBest("shooter", 700)
	if high, _ := store.HighScore("shooter"); high != 700 {
		t.Errorf("best = %d, want 700", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveRun("shooter", "", 100)
	store.SaveBest("shooter", 100)
	store.SaveRun("shooter_arcade", "", 300)

	if err := store.ClearScores("shooter"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("shooter", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if high, _ := store.HighScore("shooter"); high != 0 {
		t.Errorf("Expected best cleared, got %d", high)
	}
	if scores, _ := store.TopScores("shooter_arcade", 10); len(scores) != 1 {
		t.Error("other modes should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	stats, err := store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRun("shooter", "", 100)
	store.SaveRun("shooter", "", 300)

	stats, err = store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreMigratesLegacySchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`
		CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO scores (game_id, score) VALUES ('shooter', 77);
	`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on legacy schema failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("shooter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 77 || scores[0].RunID != "" {
		t.Errorf("legacy scores = %+v", scores)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
