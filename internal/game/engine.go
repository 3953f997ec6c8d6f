// internal/game/engine.go
//
// Gameplay layer for a single word-search session.
// Responsibilities:
//   - Create new sessions by driving the wordsearch engine with a
//     seeded RNG (so a session is reproducible from its seed).
//   - Validate and apply cell selections against the grid's unfound
//     words, marking matches found.
//   - Track state transitions: playing → completed.
//
// Notes:
//   - Theme word lists are provided by the words package; difficulty
//     tiers by the caller.
//   - Selection matching itself is the engine's pure MatchSelection;
//     this layer owns the mutation it deliberately refuses to do.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/wordgrid/go-server/internal/wordsearch"
)

// New generates a grid for the given tier and word lists and wraps it
// in a fresh session. The seed fully determines the grid.
func New(difficulty, theme string, cfg wordsearch.DifficultyConfig, candidates, bonus []string, seed int64) (*Game, error) {
	grid, err := wordsearch.Generate(candidates, bonus, cfg, wordsearch.NewSeeded(seed))
	if err != nil {
		return nil, err
	}
	g := &Game{
		ID:         randomID(),
		Difficulty: difficulty,
		Theme:      theme,
		Seed:       seed,
		Grid:       grid,
		StartedAt:  time.Now().UTC(),
	}
	// A grid that ended up with no main words has nothing left to find.
	g.Finished = g.mainRemaining() == 0
	return g, nil
}

// ApplySelection matches an ordered cell path against the unfound
// words and mutates session state on a hit.
// Returns: the matched word (nil when the path spells nothing), the
// new state string ("playing"/"completed"), or an error.
//
// Validation rules:
//   - Session must not be finished.
//   - The path must be non-empty and fully in bounds.
//
// State transitions:
//   - When the last main (non-bonus) word is found → Finished = true.
//     Bonus words never gate completion.
func (g *Game) ApplySelection(path []wordsearch.Position) (*wordsearch.PlacedWord, string, error) {
	if g.Finished {
		return nil, g.state(), errors.New("game finished")
	}
	if len(path) == 0 {
		return nil, g.state(), errors.New("empty selection")
	}
	cells := make([]wordsearch.Cell, len(path))
	for i, p := range path {
		if p.Row < 0 || p.Row >= g.Grid.Size || p.Col < 0 || p.Col >= g.Grid.Size {
			return nil, g.state(), errors.New("selection out of bounds")
		}
		cells[i] = g.Grid.Cells[p.Row][p.Col]
	}

	match, ok := wordsearch.MatchSelection(cells, g.Grid.Words)
	if !ok {
		return nil, g.state(), nil
	}

	g.markFound(match)
	return &match, g.state(), nil
}

// markFound flips the matched word and its covered cells to found and
// updates completion state.
func (g *Game) markFound(match wordsearch.PlacedWord) {
	for i := range g.Grid.Words {
		if g.Grid.Words[i].ID != match.ID {
			continue
		}
		g.Grid.Words[i].Found = true
		g.FoundWords++
		for step := 0; step < len(match.Text); step++ {
			dr, dc := match.Direction.Vector()
			row := match.Start.Row + step*dr
			col := match.Start.Col + step*dc
			g.Grid.Cells[row][col].IsFound = true
		}
		break
	}
	g.Finished = g.mainRemaining() == 0
}

// mainRemaining counts unfound non-bonus words.
func (g *Game) mainRemaining() int {
	n := 0
	for _, w := range g.Grid.Words {
		if !w.IsBonus && !w.Found {
			n++
		}
	}
	return n
}

// state reports a coarse string representation of the session state.
func (g *Game) state() string {
	if g.Finished {
		return "completed"
	}
	return "playing"
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
