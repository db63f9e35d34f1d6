package screenshot

import (
	"fmt"
	"strings"

	"github.com/tsawler/a11y/contrast"
)

// Mode selects which screenshots are produced for a set of issues.
type Mode string

const (
	// ModeNone disables screenshots.
	ModeNone Mode = "none"
	// ModeArea captures a padded crop around each issue.
	ModeArea Mode = "area"
	// ModeFullPage captures every affected page once.
	ModeFullPage Mode = "full_page"
	// ModeSmart captures affected pages plus crops for high-severity issues.
	ModeSmart Mode = "smart"
)

// ParseMode validates a mode name from the CLI or config.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeNone:
		return ModeNone, nil
	case ModeArea:
		return ModeArea, nil
	case ModeFullPage:
		return ModeFullPage, nil
	case ModeSmart:
		return ModeSmart, nil
	default:
		return "", fmt.Errorf("unknown screenshot mode %q", s)
	}
}

const (
	// renderDPI gives the raster the same density the report tooling
	// historically used for page captures.
	renderDPI = 150.0
	pdfDPI    = 72.0

	highlightPadding = 50.0
	cropPadding      = 20.0
)

// Config controls rendering and output placement.
type Config struct {
	// Dir receives the PNG files.
	Dir string
	// Scale converts PDF points to pixels.
	Scale float64
	// Background fills the page raster before glyphs are painted.
	Background contrast.RGB
}

// DefaultConfig returns the standard 150 DPI setup writing under
// "screenshots".
func DefaultConfig() Config {
	return Config{
		Dir:        "screenshots",
		Scale:      renderDPI / pdfDPI,
		Background: contrast.White,
	}
}
