package systems

import (
	"errors"
	"testing"

	"github.com/decker502/dungeon/pkg/game"
)

type failingStore struct{}

func (failingStore) Load() (int, error) { return 0, nil }
func (failingStore) Save(int) error     { return errors.New("disk full") }

func TestCommitHighScore(t *testing.T) {
	w, sound := newTestWorld(t)
	w.State.HighScore = 5
	store := &memStore{}
	ss := NewScoreSystem(w, store)

	w.State.Score = 5
	if ss.CommitHighScore() {
		t.Fatal("equal score should not commit")
	}

	w.State.Score = 6
	if !ss.CommitHighScore() {
		t.Fatal("higher score should commit")
	}
	w.State.Score = 9
	ss.CommitHighScore()

	if w.State.HighScore != 9 || !w.State.HighScoreBeaten {
		t.Errorf("high=%d beaten=%v", w.State.HighScore, w.State.HighScoreBeaten)
	}
	if len(store.saved) != 2 || store.saved[1] != 9 {
		t.Errorf("saved = %v, want [6 9]", store.saved)
	}
	if sound.count(game.SoundHighScore) != 1 {
		t.Errorf("highscore cue played %d times, want 1", sound.count(game.SoundHighScore))
	}
}

// TestCommitHighScoreStoreFailure 写入失败不影响内存中的最高分
func TestCommitHighScoreStoreFailure(t *testing.T) {
	w, _ := newTestWorld(t)
	w.State.Score = 3
	if !NewScoreSystem(w, failingStore{}).CommitHighScore() {
		t.Fatal("commit should still report a new high score")
	}
	if w.State.HighScore != 3 {
		t.Errorf("high = %d, want 3", w.State.HighScore)
	}

	w.State.Score = 4
	if !NewScoreSystem(w, nil).CommitHighScore() || w.State.HighScore != 4 {
		t.Error("nil store should behave as in-memory only")
	}
}
