package detect

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/a11y/contrast"
	"github.com/tsawler/a11y/glyph"
	"github.com/tsawler/a11y/lines"
	"github.com/tsawler/a11y/textnorm"
	"github.com/tsawler/a11y/wcag"
)

// Preview lengths for issue text, in runes.
const (
	contrastPreviewLen = 150
	contextPreviewLen  = 80
	// minContextLen is the minimum normalized line length for a glyph-level
	// finding; shorter lines carry too little context to be meaningful.
	minContextLen = 3
	// colorSampleLen bounds the text sample stored on a ColorIssue.
	colorSampleLen = 100
)

// Contrast severity cut-offs: below severityHighRatio is high, below
// severityMediumRatio is medium, anything else under the requirement is low.
const (
	severityHighRatio   = 2.0
	severityMediumRatio = 3.0
)

// Config holds the thresholds and environment for issue detection.
type Config struct {
	// MinFontSize is the minimum body text size in points.
	MinFontSize float64

	// MinHeadingSize is the minimum size for heading-like (bold >= 14pt) text.
	MinHeadingSize float64

	// MinContrastRatio is the contrast requirement for regular text.
	MinContrastRatio float64

	// MinContrastLarge is the contrast requirement for WCAG large text.
	MinContrastLarge float64

	// LineTolerance is the y band half-height for line reconstruction.
	LineTolerance float64

	// Background is the assumed page background color. Real background
	// sampling is out of scope; the background is a configurable constant.
	Background contrast.RGB
}

// DefaultConfig returns the WCAG 2.1 AA defaults over a white background.
func DefaultConfig() Config {
	return Config{
		MinFontSize:      wcag.MinFontSize,
		MinHeadingSize:   wcag.MinHeadingSize,
		MinContrastRatio: wcag.MinContrastRatio,
		MinContrastLarge: wcag.MinContrastLarge,
		LineTolerance:    lines.DefaultConfig().Tolerance,
		Background:       contrast.White,
	}
}

// Detector walks a page's glyph records and emits accessibility issues.
// It is single-threaded: one detector scans one document, page by page.
type Detector struct {
	config Config
	fonts  *wcag.FontClassifier
	recon  *lines.Reconstructor

	colorIssues []ColorIssue
}

// NewDetector creates a detector with default configuration.
func NewDetector() *Detector {
	return NewDetectorWithConfig(DefaultConfig())
}

// NewDetectorWithConfig creates a detector with custom configuration.
func NewDetectorWithConfig(config Config) *Detector {
	def := DefaultConfig()
	if config.MinFontSize <= 0 {
		config.MinFontSize = def.MinFontSize
	}
	if config.MinHeadingSize <= 0 {
		config.MinHeadingSize = def.MinHeadingSize
	}
	if config.MinContrastRatio <= 0 {
		config.MinContrastRatio = def.MinContrastRatio
	}
	if config.MinContrastLarge <= 0 {
		config.MinContrastLarge = def.MinContrastLarge
	}
	if config.LineTolerance <= 0 {
		config.LineTolerance = def.LineTolerance
	}

	return &Detector{
		config: config,
		fonts:  wcag.NewFontClassifier(),
		recon:  lines.NewReconstructorWithConfig(lines.Config{Tolerance: config.LineTolerance}),
	}
}

// Fonts exposes the font classifier so callers can extend the accessible and
// poor-readability sets before scanning.
func (d *Detector) Fonts() *wcag.FontClassifier {
	return d.fonts
}

// ColorIssues returns the contrast-specific records accumulated across all
// pages analyzed so far.
func (d *Detector) ColorIssues() []ColorIssue {
	return d.colorIssues
}

// ExtractBackground returns the background color behind a glyph. This is the
// collaborator point for a future background sampler; the current
// implementation returns the configured constant.
func (d *Detector) ExtractBackground(page *glyph.Page, x, y float64) contrast.RGB {
	return d.config.Background
}

// AnalyzePage scans one page and returns its accessibility issues. pageNum
// is 1-based. The line cache is reset on entry, so pages can be analyzed in
// any order without cross-page aliasing.
//
// A malformed glyph or line skips only itself; the page scan always runs to
// completion. Partial findings beat none.
func (d *Detector) AnalyzePage(pageNum int, page *glyph.Page) []Issue {
	if page == nil || len(page.Chars) == 0 {
		return nil
	}

	d.recon.Reset()

	var issues []Issue
	processedLines := make(map[float64]bool)

	for _, ch := range page.Chars {
		if strings.TrimSpace(ch.Text) == "" {
			continue
		}

		// Run the line-level contrast analysis once per y band.
		lineY := lines.Quantize(ch.Y)
		if !processedLines[lineY] {
			lineChars, lineText := d.recon.Line(pageNum, page.Chars, ch.Y)
			if strings.TrimSpace(lineText) != "" {
				issues = append(issues, d.analyzeLineContrast(pageNum, lineChars, lineText)...)
			}
			processedLines[lineY] = true
		}

		// Glyph-level checks use the glyph's own size and font but the
		// line's normalized text for the preview.
		_, lineText := d.recon.Line(pageNum, page.Chars, ch.Y)
		normalized := textnorm.Deduplicate(strings.TrimSpace(lineText))
		if utf8.RuneCountInString(normalized) < minContextLen {
			continue
		}

		if issue, ok := d.checkFontSize(pageNum, ch, normalized); ok {
			issues = append(issues, issue)
		}
		if issue, ok := d.checkReadability(pageNum, ch, normalized); ok {
			issues = append(issues, issue)
		}
	}

	return issues
}

// analyzeLineContrast checks every glyph of a reconstructed line against the
// contrast requirement selected by the line's average size and weight.
func (d *Detector) analyzeLineContrast(pageNum int, lineChars []glyph.Char, lineText string) []Issue {
	if len(lineChars) == 0 || strings.TrimSpace(lineText) == "" {
		return nil
	}

	normalized := textnorm.Deduplicate(strings.TrimSpace(lineText))
	if utf8.RuneCountInString(normalized) < minContextLen {
		return nil
	}

	var totalSize float64
	bold := false
	for _, c := range lineChars {
		totalSize += c.Size
		if strings.Contains(c.FontName, "Bold") {
			bold = true
		}
	}
	avgSize := totalSize / float64(len(lineChars))

	large := wcag.IsLargeText(avgSize, lineChars[0].FontName)
	required := d.config.MinContrastRatio
	if large {
		required = d.config.MinContrastLarge
	}

	preview := textnorm.Preview(normalized, contrastPreviewLen)

	var issues []Issue
	for _, c := range lineChars {
		fg := c.Color.Normalize()
		bg := d.ExtractBackground(nil, c.X, c.Y)

		ratio := contrast.Ratio(fg, bg)
		if ratio >= required {
			continue
		}

		bucket, bucketed := contrast.ClassifyBucket(fg)

		severity := SeverityLow
		switch {
		case ratio < severityHighRatio:
			severity = SeverityHigh
		case ratio < severityMediumRatio:
			severity = SeverityMedium
		}

		desc := d.contrastDescription(avgSize, bold, large, ratio, required, bucket, bucketed)

		issues = append(issues, Issue{
			Page:        pageNum,
			X:           c.X,
			Y:           c.Y,
			Text:        preview,
			Type:        TypeContrast,
			Description: desc,
			Severity:    severity,
			FontName:    c.FontName,
			FontSize:    c.Size,
			Color:       fg,
			Background:  bg,
		})

		if bucketed && ratio < wcag.MinContrastRatio {
			d.colorIssues = append(d.colorIssues, ColorIssue{
				Page:       pageNum,
				RawColor:   c.Color,
				Color:      fg,
				Bucket:     bucket,
				Ratio:      ratio,
				Required:   required,
				TextSample: strings.TrimSpace(textnorm.Preview(normalized, colorSampleLen)),
				FullText:   normalized,
				X:          c.X,
				Y:          c.Y,
				Large:      large,
				FontSize:   c.Size,
			})
		}
	}

	return issues
}

func (d *Detector) contrastDescription(avgSize float64, bold, large bool, ratio, required float64, bucket contrast.Bucket, bucketed bool) string {
	var sb strings.Builder
	if large {
		weight := ""
		if bold {
			weight = " bold"
		}
		fmt.Fprintf(&sb, "Large text (%.1fpt%s): contrast %.1f:1, requires at least %.1f:1", avgSize, weight, ratio, required)
	} else {
		fmt.Fprintf(&sb, "Regular text (%.1fpt): contrast %.1f:1, requires at least %.1f:1", avgSize, ratio, required)
	}
	if bucketed {
		fmt.Fprintf(&sb, "; problem color: %s", bucket)
	}
	return sb.String()
}

// checkFontSize applies the per-glyph size rules. Bold text at heading sizes
// is held to the heading minimum; everything that does not qualify as WCAG
// large text is held to the body minimum.
func (d *Detector) checkFontSize(pageNum int, ch glyph.Char, lineText string) (Issue, bool) {
	bold := strings.Contains(ch.FontName, "Bold")
	large := wcag.IsLargeText(ch.Size, ch.FontName)

	if bold && ch.Size >= wcag.MinHeadingSize {
		if ch.Size < d.config.MinHeadingSize {
			return Issue{
				Page:        pageNum,
				X:           ch.X,
				Y:           ch.Y,
				Text:        textnorm.Preview(lineText, contextPreviewLen),
				Type:        TypeFontSize,
				Description: fmt.Sprintf("Heading size %.1fpt is below the %gpt minimum", ch.Size, d.config.MinHeadingSize),
				Severity:    SeverityHigh,
				FontName:    ch.FontName,
				FontSize:    ch.Size,
			}, true
		}
		return Issue{}, false
	}

	if large || ch.Size >= d.config.MinFontSize {
		return Issue{}, false
	}

	severity := SeverityHigh
	if ch.Size >= 10 {
		severity = SeverityMedium
	}

	return Issue{
		Page:        pageNum,
		X:           ch.X,
		Y:           ch.Y,
		Text:        textnorm.Preview(lineText, contextPreviewLen),
		Type:        TypeFontSize,
		Description: fmt.Sprintf("Text size %.1fpt is below the %gpt minimum", ch.Size, d.config.MinFontSize),
		Severity:    severity,
		FontName:    ch.FontName,
		FontSize:    ch.Size,
	}, true
}

// checkReadability flags glyphs set in a poorly readable or unknown font.
func (d *Detector) checkReadability(pageNum int, ch glyph.Char, lineText string) (Issue, bool) {
	readable, reason := d.fonts.CheckReadability(ch.FontName)
	if readable {
		return Issue{}, false
	}

	return Issue{
		Page:        pageNum,
		X:           ch.X,
		Y:           ch.Y,
		Text:        textnorm.Preview(lineText, contextPreviewLen),
		Type:        TypeFontReadability,
		Description: reason,
		Severity:    SeverityMedium,
		FontName:    ch.FontName,
		FontSize:    ch.Size,
	}, true
}
