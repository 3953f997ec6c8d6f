// internal/wordsearch/builder.go
//
// Working letter matrix for in-progress generation. The arena is a
// flat byte slice indexed row*size+col (0 = empty cell); keeping it
// flat avoids the aliasing hazards of nested slices if a snapshot or
// rollback of a placement attempt is ever needed.

package wordsearch

// gridBuilder owns the in-progress letter matrix and its bounds and
// letter-compatibility checks.
type gridBuilder struct {
	size    int
	letters []byte // flat arena, row*size+col; 0 means empty
	filled  int    // count of non-empty cells
}

func newGridBuilder(size int) *gridBuilder {
	return &gridBuilder{size: size, letters: make([]byte, size*size)}
}

func (b *gridBuilder) inBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// at returns the letter at p, or 0 for an empty cell. Bounds are the
// caller's responsibility.
func (b *gridBuilder) at(p Position) byte {
	return b.letters[p.Row*b.size+p.Col]
}

// empty reports whether no letter has been placed yet.
func (b *gridBuilder) empty() bool { return b.filled == 0 }

// canPlace checks whether word fits at start along d: every covered
// cell must be in bounds and either empty or already holding the exact
// letter the word contributes there. overlaps counts covered cells
// that hold a genuine pre-existing letter.
func (b *gridBuilder) canPlace(word string, start Position, d Direction) (overlaps int, ok bool) {
	for i := 0; i < len(word); i++ {
		p := start.step(d, i)
		if !b.inBounds(p) {
			return 0, false
		}
		switch b.at(p) {
		case 0:
			// empty, fine
		case word[i]:
			overlaps++
		default:
			return 0, false
		}
	}
	return overlaps, true
}

// place writes word into the arena at start along d and returns the
// end position. Callers must have verified the placement with canPlace;
// conflicts are rejected there, never retrofitted here.
func (b *gridBuilder) place(word string, start Position, d Direction) Position {
	for i := 0; i < len(word); i++ {
		p := start.step(d, i)
		if b.at(p) == 0 {
			b.filled++
		}
		b.letters[p.Row*b.size+p.Col] = word[i]
	}
	return start.step(d, len(word)-1)
}
