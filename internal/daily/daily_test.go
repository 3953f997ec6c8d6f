package daily

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	ts := time.Date(2025, 3, 9, 23, 30, 0, 0, time.FixedZone("X", -7*3600))
	if got := DateKey(ts); got != "2025-03-10" {
		t.Fatalf("DateKey = %q, want UTC rollover to 2025-03-10", got)
	}
}

func TestSeedDeterministic(t *testing.T) {
	day := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sameDay := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	nextDay := day.Add(24 * time.Hour)

	if Seed(day, "salt") != Seed(sameDay, "salt") {
		t.Fatal("same date produced different seeds")
	}
	if Seed(day, "salt") == Seed(nextDay, "salt") {
		t.Fatal("different dates produced the same seed")
	}
	if Seed(day, "salt") == Seed(day, "other") {
		t.Fatal("different salts produced the same seed")
	}
	if Seed(day, "salt") < 0 {
		t.Fatal("seed must be non-negative")
	}
}

func TestThemeIndexRange(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for count := 1; count <= 6; count++ {
		idx := ThemeIndex(day, "salt", count)
		if idx < 0 || idx >= count {
			t.Fatalf("ThemeIndex(%d) = %d out of range", count, idx)
		}
	}
	if ThemeIndex(day, "salt", 0) != 0 {
		t.Fatal("zero theme count must report index 0")
	}
	if ThemeIndex(day, "salt", 4) != ThemeIndex(day, "salt", 4) {
		t.Fatal("theme index not deterministic")
	}
}
