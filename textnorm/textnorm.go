// Package textnorm normalizes text recovered from glyph records.
//
// Some PDF producers render every character twice (shadowed or re-painted
// text), so the raw line text reads "GLOSSARYGLOSSARY" or "HHEELLLLOO".
// The functions here collapse those artifacts and produce canonical keys
// for grouping recurring findings across pages.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Deduplicate collapses rendering-duplicated characters. It first collapses
// every maximal run of identical runes to a single rune, then repeatedly
// halves the string while its two halves are identical (the whole-line
// doubling artifact: "WORDWORD" becomes "WORD").
//
// The mirror halving is a heuristic reverse-engineered from observed
// rendering artifacts, not a general text transform: a genuinely repeated
// short phrase ("tiktik") collapses to a single occurrence.
func Deduplicate(s string) string {
	if len(s) < 2 {
		return s
	}

	runes := []rune(norm.NFC.String(s))
	collapsed := runes[:0:0]
	for i, r := range runes {
		if i > 0 && runes[i-1] == r {
			continue
		}
		collapsed = append(collapsed, r)
	}

	for len(collapsed)%2 == 0 && len(collapsed) > 0 {
		half := len(collapsed) / 2
		if string(collapsed[:half]) != string(collapsed[half:]) {
			break
		}
		collapsed = collapsed[:half]
	}

	return string(collapsed)
}

// WordCount deduplicates the text and counts word tokens (runs of letters,
// digits, and underscores). Empty or whitespace-only input counts zero.
func WordCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	normalized := Deduplicate(s)
	if normalized == "" {
		return 0
	}

	return len(wordPattern.FindAllString(normalized, -1))
}

// CanonicalKey produces the grouping key for an issue text: deduplicated,
// internal whitespace collapsed, lowercased, trailing punctuation stripped.
// Two texts with the same canonical key are treated as the same recurring
// content regardless of case, spacing, or rendering duplication.
func CanonicalKey(s string) string {
	if s == "" {
		return s
	}

	s = Deduplicate(s)
	s = strings.ToLower(strings.Join(strings.Fields(s), " "))
	return strings.TrimRight(s, ".,;:!?")
}

// Truncate shortens text to at most max runes, preferring to cut at a word
// boundary. The cut happens at the last space when that space falls within
// the final 30% of the budget; otherwise the text is cut hard. Truncated
// text gets a trailing ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	truncated := string(runes[:max])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > int(float64(max)*0.7) {
		return truncated[:lastSpace] + "..."
	}
	return truncated + "..."
}

// Preview shortens text for display in an issue record: at most max runes,
// cut hard three runes early to make room for the ellipsis.
func Preview(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
