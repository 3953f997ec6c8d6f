// internal/wordsearch/rand.go
//
// Injected random source for the engine. Generation takes its
// randomness through the Rand interface so that tests (and the daily
// puzzle, which derives its seed from the date) are fully
// reproducible: the same seed and inputs always build the same grid.

package wordsearch

import "math/rand"

// Rand is the engine's random source: Float64 reports a value in [0,1).
type Rand interface {
	Float64() float64
}

// NewSeeded returns a Rand backed by math/rand with the given seed.
func NewSeeded(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// intn maps r onto a uniform integer in [0,n). n must be positive.
func intn(r Rand, n int) int {
	i := int(r.Float64() * float64(n))
	if i >= n { // guard against float rounding
		i = n - 1
	}
	return i
}
