// internal/game/types.go
//
// Core type definitions for a word-search play session.
// Defines:
//   - Game: state for a single in-progress or finished puzzle session.

package game

import (
	"time"

	"github.com/wordgrid/go-server/internal/wordsearch"
)

// Game holds the state of a single word-search session. The embedded
// Grid is produced once by the wordsearch engine; only found/selected
// flags are mutated afterwards, here in the gameplay layer.
type Game struct {
	ID         string           // Unique session identifier (random hex string).
	Difficulty string           // Tier name the grid was generated for.
	Theme      string           // Theme the word list came from.
	Seed       int64            // RNG seed the grid was generated with.
	Grid       *wordsearch.Grid // The generated puzzle.
	StartedAt  time.Time        // Session creation time.
	FoundWords int              // Words found so far, bonus included.
	Finished   bool             // True once every main word is found.
}
