package a11y

import (
	"fmt"
	"sort"

	"github.com/tsawler/a11y/aggregate"
	"github.com/tsawler/a11y/config"
	"github.com/tsawler/a11y/contrast"
	"github.com/tsawler/a11y/detect"
	"github.com/tsawler/a11y/glyph"
	"github.com/tsawler/a11y/report"
)

// Result is the complete outcome of an analysis run.
type Result struct {
	// Document is the document's display name.
	Document string
	// Path is the file the glyph records came from.
	Path string
	// Issues are all findings in page order.
	Issues []detect.Issue
	// ColorIssues are the contrast failures with an identified color bucket.
	ColorIssues []detect.ColorIssue
	// Summary is the aggregated view over Issues.
	Summary *aggregate.Summary
}

// Analyzer provides a fluent interface for accessibility analysis.
// Each configuration method returns a new Analyzer instance, making it
// safe for concurrent use and allowing method chaining.
type Analyzer struct {
	// Source
	filename string
	source   glyph.Source

	// Configuration
	options AnalyzeOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Analyzer with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (a *Analyzer) clone() *Analyzer {
	return &Analyzer{
		filename: a.filename,
		source:   a.source,
		options:  a.options.clone(),
		err:      a.err,
	}
}

// ensureSource loads the glyph dump if no source is present yet.
func (a *Analyzer) ensureSource() error {
	if a.source != nil {
		return nil
	}
	if a.filename == "" {
		return fmt.Errorf("no document specified")
	}

	doc, err := glyph.Load(a.filename)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	a.source = doc
	return nil
}

// ============================================================================
// Configuration Methods (return new Analyzer instance)
// ============================================================================

// Pages restricts analysis to the given pages (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	issues, _, err := a11y.Open("doc.pdf.json").Pages(1, 3, 5).Issues()
func (a *Analyzer) Pages(pages ...int) *Analyzer {
	newAn := a.clone()
	newAn.options.pages = append(newAn.options.pages, pages...)
	return newAn
}

// Background sets the assumed page background color. Components are in
// [0,1]; the default is white.
func (a *Analyzer) Background(r, g, b float64) *Analyzer {
	newAn := a.clone()
	newAn.options.detect.Background = contrast.RGB{R: r, G: g, B: b}
	return newAn
}

// LineTolerance sets the vertical band, in points, within which glyphs are
// considered part of the same text line.
func (a *Analyzer) LineTolerance(tolerance float64) *Analyzer {
	newAn := a.clone()
	newAn.options.detect.LineTolerance = tolerance
	return newAn
}

// MinFontSize overrides the minimum body text size in points.
func (a *Analyzer) MinFontSize(size float64) *Analyzer {
	newAn := a.clone()
	newAn.options.detect.MinFontSize = size
	return newAn
}

// MinContrast overrides the contrast requirements for regular and large
// text.
func (a *Analyzer) MinContrast(regular, large float64) *Analyzer {
	newAn := a.clone()
	newAn.options.detect.MinContrastRatio = regular
	newAn.options.detect.MinContrastLarge = large
	return newAn
}

// AccessibleFonts adds names to the set of fonts considered readable.
func (a *Analyzer) AccessibleFonts(names ...string) *Analyzer {
	newAn := a.clone()
	newAn.options.accessibleFonts = append(newAn.options.accessibleFonts, names...)
	return newAn
}

// PoorFonts adds names to the set of fonts flagged as hard to read.
func (a *Analyzer) PoorFonts(names ...string) *Analyzer {
	newAn := a.clone()
	newAn.options.poorFonts = append(newAn.options.poorFonts, names...)
	return newAn
}

// WithConfig applies thresholds, background, and font sets from a loaded
// configuration file. Unset config fields leave the current options alone.
func (a *Analyzer) WithConfig(cfg config.Config) *Analyzer {
	newAn := a.clone()

	t := cfg.Thresholds
	if t.MinFontSize > 0 {
		newAn.options.detect.MinFontSize = t.MinFontSize
	}
	if t.MinHeadingSize > 0 {
		newAn.options.detect.MinHeadingSize = t.MinHeadingSize
	}
	if t.MinContrastRatio > 0 {
		newAn.options.detect.MinContrastRatio = t.MinContrastRatio
	}
	if t.MinContrastLarge > 0 {
		newAn.options.detect.MinContrastLarge = t.MinContrastLarge
	}
	if t.LineTolerance > 0 {
		newAn.options.detect.LineTolerance = t.LineTolerance
	}
	if len(cfg.Background) == 3 {
		newAn.options.detect.Background = contrast.RGB{
			R: cfg.Background[0], G: cfg.Background[1], B: cfg.Background[2],
		}
	}
	newAn.options.accessibleFonts = append(newAn.options.accessibleFonts, cfg.Fonts.Accessible...)
	newAn.options.poorFonts = append(newAn.options.poorFonts, cfg.Fonts.Poor...)

	return newAn
}

// ============================================================================
// Terminal Operations
// ============================================================================

// PageCount returns the number of pages in the document.
func (a *Analyzer) PageCount() (int, error) {
	if a.err != nil {
		return 0, a.err
	}
	if err := a.ensureSource(); err != nil {
		return 0, err
	}
	return a.source.PageCount(), nil
}

// Issues runs the analysis and returns all findings in page order, along
// with warnings for pages that could not be read.
//
// Example:
//
//	issues, warnings, err := a11y.Open("doc.pdf.json").Issues()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", a11y.FormatWarnings(warnings))
//	}
func (a *Analyzer) Issues() ([]detect.Issue, []Warning, error) {
	res, warnings, err := a.Result()
	if err != nil {
		return nil, warnings, err
	}
	return res.Issues, warnings, nil
}

// Result runs the analysis and returns the findings together with the
// color issues and the aggregated summary.
func (a *Analyzer) Result() (*Result, []Warning, error) {
	if a.err != nil {
		return nil, nil, a.err
	}
	if err := a.ensureSource(); err != nil {
		return nil, nil, err
	}

	detector := detect.NewDetectorWithConfig(a.options.detect)
	for _, name := range a.options.accessibleFonts {
		detector.Fonts().AddAccessible(name)
	}
	for _, name := range a.options.poorFonts {
		detector.Fonts().AddPoor(name)
	}

	indexes, err := a.pageIndexes()
	if err != nil {
		return nil, nil, err
	}

	var (
		issues   []detect.Issue
		warnings []Warning
	)
	for _, idx := range indexes {
		page, err := a.source.Page(idx)
		if err != nil {
			warnings = append(warnings, Warning{
				Page:    idx + 1,
				Message: fmt.Sprintf("skipping page: %v", err),
			})
			continue
		}
		num := page.Number
		if num == 0 {
			num = idx + 1
		}
		issues = append(issues, detector.AnalyzePage(num, page)...)
	}

	res := &Result{
		Document: a.documentName(),
		Path:     a.filename,
		Issues:   issues,
		ColorIssues: append([]detect.ColorIssue(nil),
			detector.ColorIssues()...),
		Summary: aggregate.Summarize(issues),
	}
	return res, warnings, nil
}

// Report runs the analysis and renders it in the given format.
//
// Example:
//
//	out, _, err := a11y.Open("doc.pdf.json").Report(report.FormatSummary)
func (a *Analyzer) Report(format report.Format) (string, []Warning, error) {
	res, warnings, err := a.Result()
	if err != nil {
		return "", warnings, err
	}

	data := report.NewData(res.Document, res.Path, res.Issues, res.ColorIssues)
	data.Summary = res.Summary

	out, err := report.Render(data, format)
	if err != nil {
		return "", warnings, err
	}
	return out, warnings, nil
}

// pageIndexes resolves the page selection to 0-based indexes in ascending
// order. Out-of-range selections are an error.
func (a *Analyzer) pageIndexes() ([]int, error) {
	count := a.source.PageCount()

	if len(a.options.pages) == 0 {
		all := make([]int, count)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	seen := make(map[int]struct{}, len(a.options.pages))
	var indexes []int
	for _, p := range a.options.pages {
		if p < 1 || p > count {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, count)
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		indexes = append(indexes, p-1)
	}
	sort.Ints(indexes)
	return indexes, nil
}

func (a *Analyzer) documentName() string {
	if doc, ok := a.source.(*glyph.Document); ok && doc.Name != "" {
		return doc.Name
	}
	return a.filename
}
