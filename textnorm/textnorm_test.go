package textnorm

import "testing"

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"A", "A"},
		{"AB", "AB"},
		{"AABBCC", "ABC"},
		{"HHEELLLLOO", "HELO"},
		{"WORDWORD", "WORD"},
		{"GLOSSARYGLOSSARY", "GLOSARY"},
		{"hello", "helo"},
		{"abcabd", "abcabd"},
	}
	for _, tt := range tests {
		if got := Deduplicate(tt.in); got != tt.want {
			t.Errorf("Deduplicate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	inputs := []string{
		"", "A", "AB", "AABB", "WORDWORD", "ABABABAB",
		"nested doubling: GLOSSARYGLOSSARY", "plain text stays put",
	}
	for _, in := range inputs {
		once := Deduplicate(in)
		twice := Deduplicate(once)
		if once != twice {
			t.Errorf("Deduplicate not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"Hello,, world!!", 2},
		{"one two three", 3},
		{"under_score", 1},
		{"page 42", 2},
		{"!!!", 0},
	}
	for _, tt := range tests {
		if got := WordCount(tt.in); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Chapter One", "chapter one"},
		{"  spaced   out  text ", "spaced out text"},
		{"Trailing punctuation!!", "trailing punctuation"},
		{"MIXED case.", "mixed case"},
	}
	for _, tt := range tests {
		if got := CanonicalKey(tt.in); got != tt.want {
			t.Errorf("CanonicalKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	// Short text passes through untouched.
	if got := Truncate("short", 50); got != "short" {
		t.Errorf("Truncate short = %q", got)
	}

	// A space near the end of the budget becomes the cut point.
	long := "alpha beta gamma delta epsilon zeta eta theta iota"
	got := Truncate(long, 20)
	if got != "alpha beta gamma..." {
		t.Errorf("Truncate word boundary = %q", got)
	}

	// No usable space in the final stretch: hard cut.
	solid := "abcdefghijklmnopqrstuvwxyz"
	got = Truncate(solid, 10)
	if got != "abcdefghij..." {
		t.Errorf("Truncate hard cut = %q", got)
	}
}

func TestPreview(t *testing.T) {
	if got := Preview("short", 10); got != "short" {
		t.Errorf("Preview short = %q", got)
	}
	got := Preview("abcdefghijklmnop", 10)
	if got != "abcdefg..." {
		t.Errorf("Preview = %q", got)
	}
	if len([]rune(got)) != 10 {
		t.Errorf("Preview length = %d, want 10", len([]rune(got)))
	}
}
