package store

import (
	"context"
	"testing"

	"github.com/wordgrid/go-server/internal/game"
	"github.com/wordgrid/go-server/internal/wordsearch"
)

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	cfg := wordsearch.DifficultyConfig{GridSize: 8, WordCount: 2, MinWordLength: 3, MaxWordLength: 4}
	g, err := game.New("easy", "space", cfg, []string{"SUN", "STAR"}, nil, 1)
	if err != nil {
		t.Fatalf("game.New failed: %v", err)
	}
	return g
}

func TestSaveAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	g := newTestGame(t)
	if err := s.Save(ctx, g); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Get(ctx, g.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != g.ID {
		t.Fatalf("got session %s, want %s", got.ID, g.ID)
	}
}

func TestGetMissing(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for unknown session")
	}
}
