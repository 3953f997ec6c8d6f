// internal/wordsearch/fill.go
//
// Filler letters for cells no placed word covers. The default strategy
// draws from a three-tier weighted alphabet (common 70%, medium 25%,
// rare 5%, uniform within the chosen tier) so filler noise roughly
// follows natural letter frequency: it neither stands out visually nor
// spells accidental real words as often as uniform noise would.

package wordsearch

// FillStrategy produces filler letters for empty cells.
type FillStrategy interface {
	Letter(rng Rand) byte
}

// Letter frequency tiers; together they cover the full alphabet.
const (
	commonLetters = "EARIOTNS"
	mediumLetters = "LCUDPMHG"
	rareLetters   = "BFYWKVXZJQ"
)

// WeightedFill is the default three-tier frequency-weighted strategy.
type WeightedFill struct{}

// DefaultFill is used whenever a DifficultyConfig leaves Fill unset.
var DefaultFill FillStrategy = WeightedFill{}

// Letter picks a tier by weight, then a uniform letter inside it.
func (WeightedFill) Letter(rng Rand) byte {
	tier := rareLetters
	switch f := rng.Float64(); {
	case f < 0.70:
		tier = commonLetters
	case f < 0.95:
		tier = mediumLetters
	}
	return tier[intn(rng, len(tier))]
}
