package storage

import (
	"os"
	"path/filepath"
	"sync"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

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
	if _, err := store.SaveScore("ada", 12); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("HighScore() after reopen = %d, expected 12", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		player string
		score  int
	}{
		{"ada", 10},
		{"bob", 5},
		{"ada", 20},
		{"cy", 15},
	} {
		if _, err := store.SaveScore(s.player, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	want := []struct {
		player string
		score  int
	}{{"ada", 20}, {"cy", 15}, {"ada", 10}, {"bob", 5}}
	for i, w := range want {
		if scores[i].Player != w.player || scores[i].Score != w.score {
			t.Errorf("scores[%d] = %s/%d, expected %s/%d", i, scores[i].Player, scores[i].Score, w.player, w.score)
		}
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("p", (i+1)*100)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to 10.
	for i := 0; i < 10; i++ {
		store.SaveScore("p", i)
	}
	scores, err = store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("TopScores(0) returned %d entries, expected 10", len(scores))
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("first", 7)
	store.SaveScore("second", 7)

	scores, err := store.TopScores(2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Player != "first" || scores[1].Player != "second" {
		t.Errorf("Tie order = %s, %s, expected first, second", scores[0].Player, scores[1].Player)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for an empty table, got %d", high)
	}

	store.SaveScore("ada", 100)
	store.SaveScore("bob", 300)
	store.SaveScore("ada", 200)

	if high, _ = store.HighScore(); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
	if best, _ := store.PlayerHighScore("ada"); best != 200 {
		t.Errorf("PlayerHighScore(ada) = %d, expected 200", best)
	}
	if best, _ := store.PlayerHighScore("nobody"); best != 0 {
		t.Errorf("PlayerHighScore(nobody) = %d, expected 0", best)
	}
}

func TestStorePlayers(t *testing.T) {
	store := openTestStore(t)

	players, err := store.Players()
	if err != nil {
		t.Fatalf("Players() failed: %v", err)
	}
	if len(players) != 0 {
		t.Errorf("Players() on an empty table = %v", players)
	}

	store.SaveScore("ada", 5)
	store.SaveScore("bob", 9)
	store.SaveScore("ada", 2)
	store.SaveScore("cy", 5)

	players, _ = store.Players()
	want := []string{"bob", "ada", "cy"}
	if len(players) != len(want) {
		t.Fatalf("Players() = %v, expected %v", players, want)
	}
	for i := range want {
		if players[i] != want[i] {
			t.Errorf("Players()[%d] = %q, expected %q", i, players[i], want[i])
		}
	}
}

func TestStorePlayerTopScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("ada", 5)
	store.SaveScore("bob", 9)
	store.SaveScore("ada", 8)
	store.SaveScore("ada", 1)

	scores, err := store.PlayerTopScores("ada", 2)
	if err != nil {
		t.Fatalf("PlayerTopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 8 || scores[1].Score != 5 {
		t.Errorf("PlayerTopScores(ada, 2) = %v, expected 8 then 5", scores)
	}
	for _, s := range scores {
		if s.Player != "ada" {
			t.Errorf("PlayerTopScores(ada) returned an entry for %q", s.Player)
		}
	}
}

func TestStoreAnonymousPlayer(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("", 4)
	scores, _ := store.TopScores(1)
	if len(scores) != 1 || scores[0].Player != "anonymous" {
		t.Errorf("Empty player should be stored as anonymous, got %v", scores)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("ada", 100)
	store.SaveScore("bob", 200)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := store.SaveScore("session", n); err != nil {
				t.Errorf("SaveScore() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	scores, err := store.TopScores(100)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 8 {
		t.Errorf("Expected 8 scores, got %d", len(scores))
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

func TestStoreExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.snake/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".snake", "scores.db")); err != nil {
		t.Errorf("Database not created under HOME: %v", err)
	}
}
