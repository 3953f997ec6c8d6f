package wordsearch

import "testing"

func TestSelectWordsFiltering(t *testing.T) {
	cfg := testConfig(8, 10, 4, 6)
	candidates := []string{
		"sun",        // too short
		"moonlights", // too long for the range
		"star",       // ok (canonicalized)
		"PLANET",     // ok
		"planet",     // duplicate after canonicalization
		"COMET",      // ok
		"nebula!",    // invalid characters
		"  orbit  ",  // ok after trimming
		"TELESCOPES", // exceeds both range and grid side
	}
	got := SelectWords(candidates, cfg, NewSeeded(1))
	want := map[string]bool{"STAR": true, "PLANET": true, "COMET": true, "ORBIT": true}
	if len(got) != len(want) {
		t.Fatalf("expected %d words, got %v", len(want), got)
	}
	seen := map[string]bool{}
	for _, w := range got {
		if !want[w] {
			t.Fatalf("unexpected word %q", w)
		}
		if seen[w] {
			t.Fatalf("duplicate word %q", w)
		}
		seen[w] = true
	}
}

func TestSelectWordsGeometricBound(t *testing.T) {
	// Range allows up to 10 letters but the grid side is 6: anything
	// longer than 6 can never fit on one line.
	cfg := testConfig(6, 5, 3, 10)
	got := SelectWords([]string{"CAT", "JAGUAR", "ELEPHANT"}, cfg, NewSeeded(2))
	for _, w := range got {
		if len(w) > 6 {
			t.Fatalf("word %q longer than grid side", w)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 words, got %v", got)
	}
}

func TestSelectWordsTakesAtMostWordCount(t *testing.T) {
	cfg := testConfig(10, 3, 3, 8)
	pool := []string{"LION", "TIGER", "BEAR", "WOLF", "OTTER", "BADGER"}
	got := SelectWords(pool, cfg, NewSeeded(3))
	if len(got) != 3 {
		t.Fatalf("expected 3 words, got %d", len(got))
	}
}

func TestSelectWordsShortfall(t *testing.T) {
	cfg := testConfig(10, 20, 3, 8)
	got := SelectWords([]string{"LION", "TIGER"}, cfg, NewSeeded(4))
	if len(got) != 2 {
		t.Fatalf("expected all 2 candidates, got %d", len(got))
	}
}

func TestSelectWordsShuffleIsSeeded(t *testing.T) {
	cfg := testConfig(12, 6, 3, 10)
	pool := []string{"ALPHA", "BRAVO", "DELTA", "GOLF", "HOTEL", "INDIA", "KILO", "LIMA"}
	a := SelectWords(pool, cfg, NewSeeded(9))
	b := SelectWords(pool, cfg, NewSeeded(9))
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("identical seeds produced different selections")
		}
	}
}
