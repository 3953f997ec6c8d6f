// internal/words/words.go
//
// Theme word list management for the puzzle engine.
//
// Responsibilities:
//   - Load themed word lists from an environment-provided directory or
//     fall back to the embedded defaults in assets/themes.
//   - Normalize words to uppercase A-Z and keep only lengths 3-15
//     (nothing shorter sells as a hidden word; nothing longer fits the
//     largest supported grid).
//   - Supply lookups: Theme, Themes, Stats.
//
// Initialization behavior (Init):
//   1. If WORDS_THEME_DIR is set, load every *.txt file in it; the
//      file basename becomes the theme name.
//   2. Otherwise fall back to the embedded theme lists.
//
// Environment variables:
//   WORDS_THEME_DIR=/path/to/themes
//
// Constraints:
//   • Words are normalized to uppercase; invalid lines are dropped.
//   • Initialization runs once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wordgrid/go-server/assets"
)

const (
	minLen = 3
	maxLen = 15
)

var (
	initOnce   sync.Once
	themes     map[string][]string // theme name → uppercase word list
	themeNames []string            // sorted
	initialErr error
)

// Init loads theme word lists exactly once.
// Returns an error if no theme ends up with any words.
func Init() error {
	initOnce.Do(func() {
		loaded := make(map[string][]string)

		if dir := os.Getenv("WORDS_THEME_DIR"); dir != "" {
			paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
			if err != nil {
				initialErr = err
				return
			}
			for _, p := range paths {
				list, err := readWordFile(p)
				if err != nil {
					initialErr = err
					return
				}
				name := strings.TrimSuffix(filepath.Base(p), ".txt")
				if len(list) > 0 {
					loaded[name] = list
				}
			}
		} else {
			names, err := assets.ThemeNames()
			if err != nil {
				initialErr = err
				return
			}
			for _, name := range names {
				raw, err := assets.ThemeList(name)
				if err != nil {
					initialErr = err
					return
				}
				list := normalize(raw)
				if len(list) > 0 {
					loaded[name] = list
				}
			}
		}

		if len(loaded) == 0 {
			initialErr = errors.New("words: no theme lists loaded")
			return
		}
		themes = loaded
		for name := range loaded {
			themeNames = append(themeNames, name)
		}
		sort.Strings(themeNames)
	})
	return initialErr
}

// readWordFile loads one word per line from a file, skipping blanks
// and # comments, then normalizes.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var raw []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		raw = append(raw, s)
	}
	return normalize(raw), sc.Err()
}

// normalize uppercases, deduplicates, and keeps only pure-letter words
// of playable length.
func normalize(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	var out []string
	for _, line := range raw {
		w := strings.ToUpper(strings.TrimSpace(line))
		if len(w) < minLen || len(w) > maxLen || !isAlpha(w) {
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

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// Theme returns the word list for a theme name.
func Theme(name string) ([]string, bool) {
	list, ok := themes[name]
	return list, ok
}

// Themes returns the sorted list of loaded theme names.
func Themes() []string {
	return themeNames
}

// Stats returns counts of loaded data: (themes, total words).
func Stats() (themeCount int, wordCount int) {
	for _, list := range themes {
		wordCount += len(list)
	}
	return len(themes), wordCount
}
