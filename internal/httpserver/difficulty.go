// internal/httpserver/difficulty.go
//
// Difficulty tiers for the puzzle API. Tiers are plain data handed to
// the wordsearch engine verbatim; the engine itself hardcodes none of
// them. Bonus words are drawn from theme words above the tier's length
// range, so they never collide with the visible list.

package httpserver

import "github.com/wordgrid/go-server/internal/wordsearch"

// tier bundles the engine config with API-level extras.
type tier struct {
	Config     wordsearch.DifficultyConfig
	BonusWords int // how many hidden bonus words to attempt
}

var tiers = map[string]tier{
	"easy": {
		Config: wordsearch.DifficultyConfig{
			GridSize:      8,
			WordCount:     5,
			MinWordLength: 4,
			MaxWordLength: 6,
			AllowedDirections: []wordsearch.Direction{
				wordsearch.Horizontal, wordsearch.Vertical,
			},
		},
		BonusWords: 1,
	},
	"medium": {
		Config: wordsearch.DifficultyConfig{
			GridSize:      10,
			WordCount:     8,
			MinWordLength: 4,
			MaxWordLength: 8,
			AllowedDirections: []wordsearch.Direction{
				wordsearch.Horizontal, wordsearch.Vertical, wordsearch.Diagonal,
			},
		},
		BonusWords: 2,
	},
	"hard": {
		Config: wordsearch.DifficultyConfig{
			GridSize:          12,
			WordCount:         12,
			MinWordLength:     5,
			MaxWordLength:     10,
			AllowedDirections: wordsearch.AllDirections,
		},
		BonusWords: 2,
	},
	"expert": {
		Config: wordsearch.DifficultyConfig{
			GridSize:          15,
			WordCount:         15,
			MinWordLength:     7,
			MaxWordLength:     12,
			AllowedDirections: wordsearch.AllDirections,
		},
		BonusWords: 3,
	},
}

// bonusPool picks up to n theme words longer than the tier's visible
// range (but still able to fit the grid). List order is stable, so the
// pick is deterministic; the daily puzzle needs that, since every
// player must get the same grid.
func bonusPool(themeWords []string, t tier, n int) []string {
	var out []string
	for _, raw := range themeWords {
		if len(out) == n {
			break
		}
		w := wordsearch.Canonical(raw)
		if w == "" {
			continue
		}
		if len(w) > t.Config.MaxWordLength && len(w) <= t.Config.GridSize {
			out = append(out, w)
		}
	}
	return out
}
