// internal/wordsearch/generate.go
//
// Grid generation entry point and assembly.
//
// Flow: select main words → place main words, then bonus words, one at
// a time through the two-phase planner → fill remaining cells with
// weighted filler → assemble the exported Grid value. Main words are
// placed before bonus words with a continuous placement-order index,
// so they get priority on cell ownership (and drive palette cycling).
//
// Two outcomes are normal, non-error results: a word that exhausts its
// attempt budget is dropped from the output, and fewer valid
// candidates than requested yields fewer placed words. Generate still
// always returns a structurally valid, fully filled grid.

package wordsearch

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

// Generate builds a puzzle grid hiding words sampled from candidates,
// plus any bonus words that fit. rng may be nil, in which case a
// time-seeded source is used (tests and the daily puzzle pass their
// own).
func Generate(candidates, bonus []string, cfg DifficultyConfig, rng Rand) (*Grid, error) {
	if cfg.GridSize <= 0 {
		return nil, errors.New("wordsearch: grid size must be positive")
	}
	if len(candidates) == 0 && cfg.WordCount > 0 {
		return nil, errors.New("wordsearch: empty word list")
	}
	if rng == nil {
		rng = NewSeeded(time.Now().UnixNano())
	}
	fill := cfg.Fill
	if fill == nil {
		fill = DefaultFill
	}

	main := SelectWords(candidates, cfg, rng)
	extras := filterBonus(bonus, cfg, main)

	b := newGridBuilder(cfg.GridSize)
	pl := &planner{b: b, dirs: cfg.directions(), rng: rng}

	placed := make([]PlacedWord, 0, len(main)+len(extras))
	order := 0
	for _, batch := range [][]string{main, extras} {
		for _, w := range batch {
			isBonus := order >= len(main)
			if p, ok := pl.placeWord(w); ok {
				placed = append(placed, PlacedWord{
					ID:        randomID(),
					Text:      w,
					Start:     p.start,
					End:       p.end,
					Direction: p.dir,
					Color:     wordColors[order%len(wordColors)],
					IsBonus:   isBonus,
				})
			}
			order++
		}
	}

	return assemble(b, placed, fill, rng), nil
}

// filterBonus keeps bonus words that can fit the grid at all, skipping
// anything already chosen as a main word. Bonus words ignore the
// tier's length range; only the geometric bound applies.
func filterBonus(bonus []string, cfg DifficultyConfig, main []string) []string {
	taken := make(map[string]struct{}, len(main))
	for _, w := range main {
		taken[w] = struct{}{}
	}
	var out []string
	for _, raw := range bonus {
		w := Canonical(raw)
		if w == "" || len(w) > cfg.GridSize {
			continue
		}
		if _, dup := taken[w]; dup {
			continue
		}
		taken[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// assemble converts the working arena plus placement metadata into the
// exported Grid, filling every still-empty cell on the way. No logic
// beyond the mapping lives here.
func assemble(b *gridBuilder, placed []PlacedWord, fill FillStrategy, rng Rand) *Grid {
	cells := make([][]Cell, b.size)
	for row := 0; row < b.size; row++ {
		cells[row] = make([]Cell, b.size)
		for col := 0; col < b.size; col++ {
			letter := b.at(Position{Row: row, Col: col})
			if letter == 0 {
				letter = fill.Letter(rng)
			}
			cells[row][col] = Cell{Letter: string(letter), Row: row, Col: col}
		}
	}
	return &Grid{Cells: cells, Size: b.size, Words: placed}
}

// randomID returns a compact 16-hex-char identifier for a placed word.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
