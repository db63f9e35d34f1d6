// Package detect walks a page's glyph records and emits typed,
// severity-graded accessibility issues.
//
// The [Detector] runs three interacting checks per page:
//
//   - Line contrast: each reconstructed line is analyzed once. The line's
//     average font size and weight select the WCAG contrast requirement
//     (3.0:1 for large text, 4.5:1 otherwise); every glyph in the line is
//     checked against it.
//   - Font size: per glyph. Bold text at heading sizes is held to the
//     heading minimum; everything else that is not WCAG-large is held to
//     the body minimum.
//   - Font readability: per glyph, against the known accessible and
//     poor-readability font families.
//
// Findings degrade rather than fail: malformed color data resolves to
// documented fallbacks, and a glyph or line that cannot be analyzed skips
// only itself. A page scan always runs to completion.
package detect
