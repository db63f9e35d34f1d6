// Package config loads optional TOML configuration for the analyzer and the
// CLI. A missing file yields the defaults; a malformed file is an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Thresholds overrides the WCAG-derived detection limits. Zero values mean
// "use the built-in default".
type Thresholds struct {
	MinFontSize      float64 `toml:"min_font_size"`
	MinHeadingSize   float64 `toml:"min_heading_size"`
	MinContrastRatio float64 `toml:"min_contrast_ratio"`
	MinContrastLarge float64 `toml:"min_contrast_large"`
	LineTolerance    float64 `toml:"line_tolerance"`
}

// Fonts extends the built-in font classification sets.
type Fonts struct {
	Accessible []string `toml:"accessible"`
	Poor       []string `toml:"poor"`
}

// Screenshots configures screenshot output.
type Screenshots struct {
	Dir   string  `toml:"dir"`
	Mode  string  `toml:"mode"`
	Scale float64 `toml:"scale"`
}

// Config is the full configuration file.
type Config struct {
	// DefaultDocument is analyzed when the CLI is run without a path.
	DefaultDocument string `toml:"default_document"`
	// ReportFormat is the default report format.
	ReportFormat string `toml:"report_format"`
	// ReportDir receives auto-named report files.
	ReportDir string `toml:"report_dir"`
	// Background is the assumed page background as RGB components in [0,1].
	Background []float64 `toml:"background"`

	Thresholds  Thresholds  `toml:"thresholds"`
	Fonts       Fonts       `toml:"fonts"`
	Screenshots Screenshots `toml:"screenshots"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		ReportFormat: "full",
		ReportDir:    "reports",
		Screenshots: Screenshots{
			Dir:  "screenshots",
			Mode: "smart",
		},
	}
}

// Load reads a TOML configuration file. A missing file is not an error and
// yields Default(); any other read or parse failure is returned.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if len(cfg.Background) != 0 && len(cfg.Background) != 3 {
		return Config{}, fmt.Errorf("config %s: background needs 3 components, got %d", path, len(cfg.Background))
	}

	return cfg, nil
}
