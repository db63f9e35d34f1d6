package a11y

import (
	"github.com/tsawler/a11y/contrast"
	"github.com/tsawler/a11y/detect"
)

// AnalyzeOptions holds configuration for an analysis run.
type AnalyzeOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Detection thresholds; zero values mean the WCAG defaults.
	detect detect.Config

	// Font classification extensions
	accessibleFonts []string
	poorFonts       []string
}

// defaultAnalyzeOptions returns the default analysis options.
func defaultAnalyzeOptions() AnalyzeOptions {
	return AnalyzeOptions{
		pages:  nil, // nil means all pages
		detect: detect.Config{Background: contrast.White},
	}
}

// clone creates a deep copy of AnalyzeOptions.
func (o AnalyzeOptions) clone() AnalyzeOptions {
	newOpts := AnalyzeOptions{
		detect: o.detect,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	if o.accessibleFonts != nil {
		newOpts.accessibleFonts = append([]string(nil), o.accessibleFonts...)
	}
	if o.poorFonts != nil {
		newOpts.poorFonts = append([]string(nil), o.poorFonts...)
	}

	return newOpts
}
