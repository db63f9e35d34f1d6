// Package contrast implements the color model behind the accessibility
// checks: normalization of raw glyph fill colors, WCAG 2.1 relative
// luminance, contrast ratios, and perceptual color buckets.
//
// # Raw Colors
//
// Fill colors arrive from extraction dumps in several encodings. The [Raw]
// type is a tagged variant (Absent, Gray, DeviceRGB, CMYK) constructed once
// when a glyph record is decoded:
//
//	var raw contrast.Raw // zero value: Absent, normalizes to black
//	rgb := raw.Normalize()
//
// Malformed or missing color data is never an error; it resolves to the
// documented fallback (black) because color data in real documents is
// untrusted.
//
// # WCAG Math
//
// [Luminance] and [Ratio] implement the WCAG 2.1 definitions:
//
//	ratio := contrast.Ratio(foreground, background) // >= 1.0, symmetric
//
// Black on white yields 21:1; a color against itself yields 1:1.
//
// # Color Buckets
//
// [ClassifyBucket] maps a color into a small set of named categories
// (green, light-green, red, ... gray) via HSV thresholds. Reports use the
// bucket name to phrase remediation guidance.
package contrast
