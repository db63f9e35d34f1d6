// Package a11y provides a fluent API for analyzing the visual accessibility
// of PDF documents against WCAG 2.1 AA: text contrast, font size, and font
// readability. Analysis runs over glyph records (position, size, font, fill
// color per rendered character) produced by an extraction front-end; the
// engine itself never parses PDF binary structure.
//
// Basic usage:
//
//	issues, warnings, err := a11y.Open("document.pdf.json").Issues()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", a11y.FormatWarnings(warnings))
//	}
//
// With options:
//
//	report, _, err := a11y.Open("report.pdf.json").
//	    Pages(1, 2, 3).
//	    Background(1, 1, 1).
//	    Report(report.FormatSummary)
//
// For advanced use cases, the lower-level detect and aggregate packages are
// also available.
package a11y

import (
	"github.com/tsawler/a11y/glyph"
)

// Open prepares an Analyzer for a glyph dump file and returns it for fluent
// configuration. The file is not read until a terminal operation runs.
//
// Example:
//
//	issues, warnings, err := a11y.Open("document.pdf.json").Issues()
func Open(filename string) *Analyzer {
	return &Analyzer{
		filename: filename,
		options:  defaultAnalyzeOptions(),
	}
}

// FromDocument creates an Analyzer over an already-loaded document.
//
// Example:
//
//	doc, err := glyph.Load("document.pdf.json")
//	if err != nil {
//	    // handle error
//	}
//	issues, _, err := a11y.FromDocument(doc).Issues()
func FromDocument(doc *glyph.Document) *Analyzer {
	return &Analyzer{
		filename: doc.Name,
		source:   doc,
		options:  defaultAnalyzeOptions(),
	}
}

// FromSource creates an Analyzer over any page source. This is useful when
// pages are produced lazily or come from somewhere other than a dump file.
func FromSource(source glyph.Source) *Analyzer {
	return &Analyzer{
		source:  source,
		options: defaultAnalyzeOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := a11y.Must(a11y.Open("document.pdf.json").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a terminal operation and panics if the
// error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	issues := a11y.MustResult(a11y.Open("document.pdf.json").Issues())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
