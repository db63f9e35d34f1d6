package detect

import (
	"github.com/tsawler/a11y/contrast"
)

// IssueType classifies an accessibility finding.
type IssueType string

const (
	// TypeContrast marks text whose contrast against the background falls
	// below the WCAG requirement.
	TypeContrast IssueType = "contrast"
	// TypeFontSize marks text set below the minimum size.
	TypeFontSize IssueType = "font-size"
	// TypeFontReadability marks text set in a poorly readable or unknown font.
	TypeFontReadability IssueType = "font-readability"
)

// Label returns a human-readable name for the issue type.
func (t IssueType) Label() string {
	switch t {
	case TypeContrast:
		return "Contrast"
	case TypeFontSize:
		return "Font size"
	case TypeFontReadability:
		return "Font readability"
	default:
		return string(t)
	}
}

// AllTypes lists every known issue type, in report order.
var AllTypes = []IssueType{TypeContrast, TypeFontSize, TypeFontReadability}

// Severity grades how badly a finding misses the requirement.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// AllSeverities lists every severity, most severe first.
var AllSeverities = []Severity{SeverityHigh, SeverityMedium, SeverityLow}

// Issue is one accessibility finding. Issues are immutable once emitted:
// the detector creates them during the page scan, the aggregator and report
// renderers only read them.
type Issue struct {
	// Page is the 1-based page number.
	Page int `json:"page"`

	// X, Y locate the triggering glyph's origin on the page.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Text is the normalized, truncated preview of the affected line.
	Text string `json:"text"`

	Type        IssueType `json:"issue_type"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`

	FontName string  `json:"font_name,omitempty"`
	FontSize float64 `json:"font_size,omitempty"`

	// Color and Background are the normalized foreground and background
	// colors; meaningful for contrast issues, zero-valued otherwise.
	Color      contrast.RGB `json:"color"`
	Background contrast.RGB `json:"background_color"`
}

// ColorIssue is a contrast-specific record created alongside a contrast
// Issue whenever the foreground color falls in a named bucket. It feeds the
// color-focused report view.
type ColorIssue struct {
	Page     int             `json:"page"`
	RawColor contrast.Raw    `json:"raw_color"`
	Color    contrast.RGB    `json:"color"`
	Bucket   contrast.Bucket `json:"color_name"`

	// Ratio is the measured contrast; Required is the WCAG minimum that
	// applied to the line.
	Ratio    float64 `json:"contrast"`
	Required float64 `json:"required"`

	TextSample string  `json:"text_sample"`
	FullText   string  `json:"full_text"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Large      bool    `json:"is_large"`
	FontSize   float64 `json:"font_size"`
}
