package game

import (
	"testing"

	"github.com/wordgrid/go-server/internal/wordsearch"
)

func testTier() wordsearch.DifficultyConfig {
	return wordsearch.DifficultyConfig{
		GridSize:      8,
		WordCount:     3,
		MinWordLength: 3,
		MaxWordLength: 4,
	}
}

func wordPath(w wordsearch.PlacedWord) []wordsearch.Position {
	dr, dc := w.Direction.Vector()
	out := make([]wordsearch.Position, len(w.Text))
	for i := range out {
		out[i] = wordsearch.Position{Row: w.Start.Row + i*dr, Col: w.Start.Col + i*dc}
	}
	return out
}

func TestNewSessionReproducibleFromSeed(t *testing.T) {
	words := []string{"SUN", "MOON", "STAR"}
	a, err := New("easy", "space", testTier(), words, nil, 42)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	b, err := New("easy", "space", testTier(), words, nil, 42)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if len(a.Grid.Words) != len(b.Grid.Words) {
		t.Fatal("same seed produced different grids")
	}
	for i := range a.Grid.Words {
		if a.Grid.Words[i].Text != b.Grid.Words[i].Text ||
			a.Grid.Words[i].Start != b.Grid.Words[i].Start {
			t.Fatal("same seed produced different placements")
		}
	}
	if a.ID == b.ID {
		t.Fatal("session IDs must be unique")
	}
}

func TestApplySelectionLifecycle(t *testing.T) {
	g, err := New("easy", "space", testTier(), []string{"SUN", "MOON", "STAR"}, nil, 42)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if g.Finished {
		t.Fatal("fresh session already finished")
	}

	// Nonsense path: no match, no error, no state change.
	m, state, err := g.ApplySelection([]wordsearch.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil || state != "playing" {
		t.Fatalf("expected no match in playing state, got %v / %s", m, state)
	}

	// Find every placed word by walking its recorded geometry.
	total := len(g.Grid.Words)
	for i, w := range g.Grid.Words {
		m, state, err := g.ApplySelection(wordPath(w))
		if err != nil {
			t.Fatalf("selection of %q failed: %v", w.Text, err)
		}
		if m == nil || m.Text != w.Text {
			t.Fatalf("selection of %q matched %v", w.Text, m)
		}
		wantState := "playing"
		if i == total-1 {
			wantState = "completed"
		}
		if state != wantState {
			t.Fatalf("after %d finds state = %s, want %s", i+1, state, wantState)
		}
	}
	if g.FoundWords != total || !g.Finished {
		t.Fatalf("expected %d found and finished, got %d / %v", total, g.FoundWords, g.Finished)
	}

	// Found cells are flagged for the UI.
	flagged := 0
	for _, row := range g.Grid.Cells {
		for _, c := range row {
			if c.IsFound {
				flagged++
			}
		}
	}
	if flagged == 0 {
		t.Fatal("no cells flagged found")
	}

	// Finished sessions refuse further selections.
	if _, _, err := g.ApplySelection(wordPath(g.Grid.Words[0])); err == nil {
		t.Fatal("expected error on finished session")
	}
}

func TestApplySelectionMisuse(t *testing.T) {
	g, err := New("easy", "space", testTier(), []string{"SUN", "MOON", "STAR"}, nil, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, _, err := g.ApplySelection(nil); err == nil {
		t.Fatal("expected error for empty selection")
	}
	if _, _, err := g.ApplySelection([]wordsearch.Position{{Row: -1, Col: 0}}); err == nil {
		t.Fatal("expected error for out-of-bounds selection")
	}
	if _, _, err := g.ApplySelection([]wordsearch.Position{{Row: 8, Col: 8}}); err == nil {
		t.Fatal("expected error for out-of-bounds selection")
	}
}

func TestBonusWordsDoNotGateCompletion(t *testing.T) {
	g, err := New("easy", "space", testTier(), []string{"SUN", "MOON", "STAR"}, []string{"COMET"}, 7)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, w := range g.Grid.Words {
		if w.IsBonus {
			continue
		}
		if _, _, err := g.ApplySelection(wordPath(w)); err != nil {
			t.Fatalf("selection of %q failed: %v", w.Text, err)
		}
	}
	if !g.Finished {
		t.Fatal("session not finished after all main words found")
	}
}
