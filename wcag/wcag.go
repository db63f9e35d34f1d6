// Package wcag encodes the WCAG 2.1 AA heuristics used to classify text:
// minimum sizes, contrast requirements, the large-text exemption, and font
// readability.
package wcag

import "strings"

// WCAG 2.1 AA minimums.
const (
	// MinFontSize is the minimum size for body text, in points.
	MinFontSize = 12.0
	// MinHeadingSize is the minimum size for heading-like text, in points.
	MinHeadingSize = 14.0
	// MinContrastRatio is the required contrast for regular text.
	MinContrastRatio = 4.5
	// MinContrastLarge is the required contrast for large text
	// (>= 18pt, or >= 14pt bold).
	MinContrastLarge = 3.0
)

// boldMarkers are the font-name substrings that indicate a bold weight.
// The set is case-sensitive apart from the final lowercase variant.
var boldMarkers = []string{"Bold", "BoldItalic", "Black", "Heavy", "-Bold", "bold"}

// IsBold reports whether a font name carries a bold-indicating substring.
func IsBold(fontName string) bool {
	for _, marker := range boldMarkers {
		if strings.Contains(fontName, marker) {
			return true
		}
	}
	return false
}

// IsLargeText reports whether text qualifies as WCAG "large text": at least
// 18pt, or at least 14pt in a bold font. Large text is held to the lower
// contrast requirement (3.0:1 instead of 4.5:1).
func IsLargeText(size float64, fontName string) bool {
	if size >= 18 {
		return true
	}
	return size >= 14 && IsBold(fontName)
}

// RequiredContrast returns the contrast ratio required for text of the given
// size and font.
func RequiredContrast(size float64, fontName string) float64 {
	if IsLargeText(size, fontName) {
		return MinContrastLarge
	}
	return MinContrastRatio
}

// NormalizeFontName strips the subset tag prefix ("ABCDEF+") and common
// style/foundry suffixes from a PDF font name so it can be compared against
// the known font families.
func NormalizeFontName(fontName string) string {
	if idx := strings.LastIndex(fontName, "+"); idx >= 0 {
		fontName = fontName[idx+1:]
	}

	for _, marker := range []string{"-Bold", "-Italic", "Bold", "Italic", "MT", "PS"} {
		fontName = strings.ReplaceAll(fontName, marker, "")
	}

	return strings.TrimSpace(fontName)
}
