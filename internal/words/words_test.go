package words

import "testing"

func TestInitAndLookups(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	names := Themes()
	if len(names) == 0 {
		t.Fatal("no themes loaded")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("theme names not sorted: %v", names)
		}
	}
	for _, name := range names {
		list, ok := Theme(name)
		if !ok || len(list) == 0 {
			t.Fatalf("theme %q missing or empty", name)
		}
		for _, w := range list {
			if len(w) < minLen || len(w) > maxLen {
				t.Fatalf("theme %q word %q outside playable length", name, w)
			}
			if !isAlpha(w) {
				t.Fatalf("theme %q word %q not uppercase letters", name, w)
			}
		}
	}
	if _, ok := Theme("no_such_theme"); ok {
		t.Fatal("unknown theme reported present")
	}
	tc, wc := Stats()
	if tc != len(names) || wc == 0 {
		t.Fatalf("unexpected stats: %d themes, %d words", tc, wc)
	}
}

func TestNormalize(t *testing.T) {
	got := normalize([]string{"sun", "SUN", " moon ", "x", "no-dash", "thisiswaytoolongforagrid"})
	want := []string{"SUN", "MOON"}
	if len(got) != len(want) {
		t.Fatalf("normalize returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("normalize returned %v, want %v", got, want)
		}
	}
}
