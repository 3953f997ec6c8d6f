// internal/wordsearch/validate.go
//
// Selection validation: pure functions matching a player's ordered
// cell-selection path against the grid's unfound words, plus the
// adjacency/direction helpers a drag-selection UI needs.
//
// Text equality alone is not enough once placements overlap: two
// placed words could share text, or an unrelated diagonal could
// coincidentally spell a placed word's letters. Each match therefore
// also requires endpoint alignment with the word's recorded geometry.

package wordsearch

import "strings"

// MatchSelection reports the first unfound word matched by the
// selected path, reading it forward or backward. Adjacency and
// contiguity of the path are the caller's responsibility; marking the
// matched word found is too; this function never mutates anything.
func MatchSelection(selected []Cell, words []PlacedWord) (PlacedWord, bool) {
	if len(selected) == 0 {
		return PlacedWord{}, false
	}

	var fwd strings.Builder
	for _, c := range selected {
		fwd.WriteString(c.Letter)
	}
	forward := fwd.String()
	backward := reverse(forward)

	first := selected[0].Pos()
	last := selected[len(selected)-1].Pos()

	for _, w := range words {
		if w.Found {
			continue
		}
		// Forward read: the path must begin at the word's start or end
		// at its recorded end.
		if w.Text == forward && (first == w.Start || last == w.End) {
			return w, true
		}
		// Backward read: mirrored condition.
		if w.Text == backward && (last == w.Start || first == w.End) {
			return w, true
		}
	}
	return PlacedWord{}, false
}

// Adjacent reports whether a and b are 8-directionally adjacent
// (distinct cells at most one row and one column apart).
func Adjacent(a, b Cell) bool {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	if dr == 0 && dc == 0 {
		return false
	}
	return abs(dr) <= 1 && abs(dc) <= 1
}

// DirectionBetween infers the Direction of travel between two adjacent
// cells. Both orientations of a vector map onto the same Direction,
// matching how reversed reading is resolved at validation time.
func DirectionBetween(a, b Cell) (Direction, bool) {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	switch {
	case dr == 0 && abs(dc) == 1:
		return Horizontal, true
	case abs(dr) == 1 && dc == 0:
		return Vertical, true
	case dr == dc && abs(dr) == 1:
		return Diagonal, true
	case dr == -dc && abs(dr) == 1:
		return DiagonalReverse, true
	}
	return "", false
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
