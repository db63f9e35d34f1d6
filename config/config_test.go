package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "a11y.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.ReportFormat != def.ReportFormat || cfg.ReportDir != def.ReportDir {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if cfg.Screenshots.Mode != "smart" {
		t.Errorf("screenshot mode = %q, want smart", cfg.Screenshots.Mode)
	}
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
default_document = "manual.pdf.json"
report_format = "json"
background = [1.0, 1.0, 0.9]

[thresholds]
min_font_size = 14.0
min_contrast_ratio = 7.0

[fonts]
accessible = ["Custom Sans"]
poor = ["Custom Script"]

[screenshots]
dir = "shots"
mode = "area"
scale = 2.0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DefaultDocument != "manual.pdf.json" {
		t.Errorf("default_document = %q", cfg.DefaultDocument)
	}
	if cfg.ReportFormat != "json" {
		t.Errorf("report_format = %q", cfg.ReportFormat)
	}
	if cfg.Thresholds.MinFontSize != 14.0 || cfg.Thresholds.MinContrastRatio != 7.0 {
		t.Errorf("thresholds = %+v", cfg.Thresholds)
	}
	if cfg.Thresholds.MinHeadingSize != 0 {
		t.Errorf("unset threshold should stay zero, got %v", cfg.Thresholds.MinHeadingSize)
	}
	if len(cfg.Fonts.Accessible) != 1 || cfg.Fonts.Accessible[0] != "Custom Sans" {
		t.Errorf("fonts.accessible = %v", cfg.Fonts.Accessible)
	}
	if cfg.Screenshots.Dir != "shots" || cfg.Screenshots.Mode != "area" || cfg.Screenshots.Scale != 2.0 {
		t.Errorf("screenshots = %+v", cfg.Screenshots)
	}
	if len(cfg.Background) != 3 || cfg.Background[2] != 0.9 {
		t.Errorf("background = %v", cfg.Background)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "report_format = [broken")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, "no_such_key = true")
	if _, err := Load(path); err == nil {
		t.Error("expected unknown key error")
	}
}

func TestLoadBadBackground(t *testing.T) {
	path := writeConfig(t, "background = [1.0, 0.5]")
	if _, err := Load(path); err == nil {
		t.Error("expected background length error")
	}
}
