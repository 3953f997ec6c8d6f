// internal/wordsearch/selector.go
//
// Word selection for puzzle generation.
// Responsibilities:
//   - Normalize raw candidates to canonical uppercase A-Z.
//   - Filter to the tier's length range and to words that can fit on
//     one line of the grid at all.
//   - Shuffle with the injected random source and take the requested
//     count.
//
// Contract: the result has no duplicates, is a subset of the filtered
// candidates, and its length is at most cfg.WordCount. Fewer valid
// candidates than requested is a normal outcome, not an error.

package wordsearch

import "strings"

// SelectWords filters and samples the words to hide in the grid.
func SelectWords(candidates []string, cfg DifficultyConfig, rng Rand) []string {
	filtered := filterWords(candidates, cfg)

	// Fisher-Yates with the injected source.
	for i := len(filtered) - 1; i > 0; i-- {
		j := intn(rng, i+1)
		filtered[i], filtered[j] = filtered[j], filtered[i]
	}

	if len(filtered) > cfg.WordCount {
		filtered = filtered[:cfg.WordCount]
	}
	return filtered
}

// filterWords normalizes, deduplicates, and keeps only words whose
// length lies in [min,max] and does not exceed the grid side. A word
// longer than the grid can never fit on one line; that check is a hard
// geometric constraint.
func filterWords(candidates []string, cfg DifficultyConfig) []string {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, raw := range candidates {
		w := Canonical(raw)
		if w == "" {
			continue
		}
		if len(w) < cfg.MinWordLength || len(w) > cfg.MaxWordLength {
			continue
		}
		if len(w) > cfg.GridSize {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Canonical uppercases w and rejects anything that is not pure ASCII
// letters, returning "" for invalid input.
func Canonical(raw string) string {
	w := strings.ToUpper(strings.TrimSpace(raw))
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return ""
		}
	}
	return w
}
