package screenshot

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tsawler/a11y/contrast"
	"github.com/tsawler/a11y/detect"
	"github.com/tsawler/a11y/glyph"
)

func makePage() *glyph.Page {
	return &glyph.Page{
		Number: 1,
		Width:  612,
		Height: 792,
		Chars: []glyph.Char{
			{Text: "h", X: 100, Y: 700, Size: 12, FontName: "Arial", Color: contrast.RGBColor(0, 0, 0)},
			{Text: "i", X: 108, Y: 700, Size: 12, FontName: "Arial", Color: contrast.RGBColor(0.6, 0.6, 0.6)},
		},
	}
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"none", "area", "full_page", "smart", " SMART "} {
		if _, err := ParseMode(name); err != nil {
			t.Errorf("ParseMode(%q) unexpected error: %v", name, err)
		}
	}
	if _, err := ParseMode("thumbnail"); err == nil {
		t.Error("ParseMode(\"thumbnail\") expected error")
	}
}

func TestRenderPageDimensions(t *testing.T) {
	r := NewRenderer(Config{Scale: 150.0 / 72.0})
	img := r.RenderPage(makePage())

	wantW := 1275 // ceil(612 * 150/72)
	wantH := 1650 // ceil(792 * 150/72)
	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
		t.Errorf("bounds = %v, want %dx%d", img.Bounds(), wantW, wantH)
	}

	// Background stays white away from any glyph.
	c := img.RGBAAt(0, 0)
	if c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("background pixel = %v, want white", c)
	}

	// A glyph box was painted black at its position.
	px, py := r.PixelAt(makePage(), 101, 706)
	c = img.RGBAAt(px, py)
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("glyph pixel at (%d,%d) = %v, want black", px, py, c)
	}
}

func TestRenderRegionCropsAndReportsOrigin(t *testing.T) {
	r := NewRenderer(Config{Scale: 1})
	page := makePage()

	img, origin := r.RenderRegion(page, 100, 700, 120, 712, false)

	// Crop spans the box plus 20pt padding on each side.
	if img.Bounds().Dx() < 40 || img.Bounds().Dx() > 80 {
		t.Errorf("crop width = %d", img.Bounds().Dx())
	}
	if origin.X != 80 {
		t.Errorf("origin.X = %d, want 80", origin.X)
	}
	full := r.RenderPage(page)
	if img.Bounds().Dx() >= full.Bounds().Dx() {
		t.Error("crop should be smaller than the full page")
	}
}

func TestAnnotateDrawsOutline(t *testing.T) {
	r := NewRenderer(Config{Scale: 1})
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))

	r.Annotate(img, 50, 50, "Contrast")

	c := img.RGBAAt(41, 46) // inside the top edge of the outline
	if c.R == 0 {
		t.Errorf("outline pixel = %v, want red", c)
	}
}

func TestServiceCapturePage(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(Config{Dir: dir, Scale: 1})
	svc.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }

	path, err := svc.CapturePage(makePage(), "")
	if err != nil {
		t.Fatalf("CapturePage: %v", err)
	}
	if filepath.Base(path) != "page_1_full_page_20260304_050607.png" {
		t.Errorf("unexpected file name %q", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("screenshot not written: %v", err)
	}
}

func TestServiceCaptureAllSmart(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(Config{Dir: dir, Scale: 1})

	doc := &glyph.Document{Name: "sample", Pages: []glyph.Page{*makePage()}}
	issues := []detect.Issue{
		{Page: 1, X: 100, Y: 700, Type: detect.TypeContrast, Severity: detect.SeverityHigh},
		{Page: 1, X: 100, Y: 650, Type: detect.TypeFontSize, Severity: detect.SeverityLow},
	}

	written, errs := svc.CaptureAll(doc, issues, ModeSmart)
	if len(errs) != 0 {
		t.Fatalf("CaptureAll errors: %v", errs)
	}
	if len(written) != 1 {
		t.Errorf("full-page captures = %d, want 1", len(written))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	// One full page plus one area crop for the high-severity issue.
	if len(entries) != 2 {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("files = %v, want 2", names)
	}
	areaSeen := false
	for _, e := range entries {
		if strings.Contains(e.Name(), "_area_") {
			areaSeen = true
		}
	}
	if !areaSeen {
		t.Error("expected an area capture for the high-severity issue")
	}
}

func TestCaptureAllNone(t *testing.T) {
	svc := NewService(Config{Dir: t.TempDir(), Scale: 1})
	doc := &glyph.Document{Pages: []glyph.Page{*makePage()}}

	written, errs := svc.CaptureAll(doc, []detect.Issue{{Page: 1}}, ModeNone)
	if written != nil || errs != nil {
		t.Error("ModeNone should produce nothing")
	}
}
