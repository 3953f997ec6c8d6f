// internal/wordsearch/planner.go
//
// Two-phase placement search, the core of grid generation.
//
// Phase A (overlap-seeking): scan the grid in row-major order; for
// each filled cell whose letter occurs in the word, and for each
// allowed direction, derive the start position that lands the matching
// letter on that cell and test it. The scan is exhaustive and
// first-match-wins, so Phase A is deterministic for a fixed grid state
// and overlap density clusters near already-dense regions instead of
// scattering. Skipped while the grid is still empty.
//
// Phase B (random): uniform random direction, uniform random start
// inside the range that keeps the word fully in bounds, accept the
// first compatible attempt.
//
// A word that exhausts its attempt budget is silently omitted; callers
// must accept that fewer words than requested may be placed.

package wordsearch

const (
	// attemptBudget bounds total placement attempts per word;
	// termination never depends on grid contents.
	attemptBudget = 100
	// overlapAttempts is the share of the budget charged to a failed
	// Phase A scan (70% of the budget).
	overlapAttempts = 70
)

// placement is the planner's result for one word.
type placement struct {
	start, end Position
	dir        Direction
}

type planner struct {
	b    *gridBuilder
	dirs []Direction
	rng  Rand
}

// placeWord runs both phases for one word, mutating the builder on
// success.
func (pl *planner) placeWord(word string) (placement, bool) {
	attempts := 0
	if !pl.b.empty() {
		if p, ok := pl.tryOverlap(word); ok {
			return p, true
		}
		attempts = overlapAttempts
	}
	for ; attempts < attemptBudget; attempts++ {
		if p, ok := pl.tryRandom(word); ok {
			return p, true
		}
	}
	return placement{}, false
}

// tryOverlap is Phase A. A hypothetical placement is accepted only if
// it is fully in bounds, every covered cell is empty or matching, and
// at least one covered cell holds a genuine pre-existing letter. The
// last condition is what separates a true overlap from an incidental
// bounds-legal placement.
func (pl *planner) tryOverlap(word string) (placement, bool) {
	for row := 0; row < pl.b.size; row++ {
		for col := 0; col < pl.b.size; col++ {
			cell := Position{Row: row, Col: col}
			letter := pl.b.at(cell)
			if letter == 0 {
				continue
			}
			for i := 0; i < len(word); i++ {
				if word[i] != letter {
					continue
				}
				for _, d := range pl.dirs {
					start := cell.step(d, -i)
					if !pl.b.inBounds(start) {
						continue
					}
					if overlaps, ok := pl.b.canPlace(word, start, d); ok && overlaps > 0 {
						end := pl.b.place(word, start, d)
						return placement{start: start, end: end, dir: d}, true
					}
				}
			}
		}
	}
	return placement{}, false
}

// tryRandom is a single Phase B attempt.
func (pl *planner) tryRandom(word string) (placement, bool) {
	d := pl.dirs[intn(pl.rng, len(pl.dirs))]
	start := pl.randomStart(word, d)
	if _, ok := pl.b.canPlace(word, start, d); !ok {
		return placement{}, false
	}
	end := pl.b.place(word, start, d)
	return placement{start: start, end: end, dir: d}, true
}

// randomStart picks a uniform start inside the range that keeps the
// word in bounds for d. The usable range shrinks by the word's span;
// the direction's sign decides whether the shrink lands on the minimum
// or the maximum end of the column range.
func (pl *planner) randomStart(word string, d Direction) Position {
	span := len(word) - 1
	dr, dc := d.Vector()

	rowMax := pl.b.size - 1
	if dr > 0 {
		rowMax -= span
	}
	colMin, colMax := 0, pl.b.size-1
	if dc > 0 {
		colMax -= span
	} else if dc < 0 {
		colMin = span
	}

	return Position{
		Row: intn(pl.rng, rowMax+1),
		Col: colMin + intn(pl.rng, colMax-colMin+1),
	}
}
