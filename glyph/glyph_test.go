package glyph

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/a11y/contrast"
)

const sampleDump = `{
	"pages": [
		{
			"width": 612,
			"height": 792,
			"chars": [
				{"text": "A", "x0": 72, "y0": 700, "size": 12, "fontname": "Arial", "non_stroking_color": 0},
				{"text": "B", "x0": 82, "y0": 700, "size": 12, "fontname": "Arial", "non_stroking_color": [0.5]},
				{"text": "C", "x0": 92, "y0": 700, "size": 12, "fontname": "Arial", "non_stroking_color": [1, 0, 0]},
				{"text": "D", "x0": 102, "y0": 700, "size": 12, "fontname": "Arial", "non_stroking_color": [0, 0, 0, 1]},
				{"text": "E", "x0": 112, "y0": 700, "size": 12, "fontname": "Arial", "non_stroking_color": null},
				{"text": "F", "x0": 122, "y0": 700, "size": 12, "fontname": "Arial", "non_stroking_color": "red"}
			]
		},
		{"width": 612, "height": 792, "chars": []}
	]
}`

func TestDecodeColorShapes(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	chars := doc.Pages[0].Chars
	if len(chars) != 6 {
		t.Fatalf("expected 6 chars, got %d", len(chars))
	}

	tests := []struct {
		idx  int
		want contrast.Raw
	}{
		{0, contrast.GrayColor(0)},
		{1, contrast.GrayColor(0.5)},
		{2, contrast.RGBColor(1, 0, 0)},
		{3, contrast.CMYKColor(0, 0, 0, 1)},
		{4, contrast.Raw{}},
		{5, contrast.Raw{}},
	}
	for _, tt := range tests {
		if got := chars[tt.idx].Color; got != tt.want {
			t.Errorf("char %d color = %+v, want %+v", tt.idx, got, tt.want)
		}
	}
}

func TestDecodeAssignsPageNumbers(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.Pages))
	}
	for i, page := range doc.Pages {
		if page.Number != i+1 {
			t.Errorf("page %d number = %d", i, page.Number)
		}
	}
}

func TestDecodeKeepsExplicitPageNumbers(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"pages": [{"page_number": 7, "chars": []}]}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Pages[0].Number != 7 {
		t.Errorf("number = %d, want 7", doc.Pages[0].Number)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode(strings.NewReader("not json")); err == nil {
		t.Error("expected an error for malformed input")
	}
}

func TestLoadDefaultsName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf.json")
	if err := os.WriteFile(path, []byte(sampleDump), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Name != "report.pdf" {
		t.Errorf("name = %q, want %q", doc.Name, "report.pdf")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestDocumentSource(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if doc.PageCount() != 2 {
		t.Errorf("PageCount = %d", doc.PageCount())
	}

	page, err := doc.Page(0)
	if err != nil {
		t.Fatalf("Page(0): %v", err)
	}
	if page.Number != 1 || len(page.Chars) != 6 {
		t.Errorf("page = %+v", page)
	}

	for _, idx := range []int{-1, 2} {
		if _, err := doc.Page(idx); err == nil {
			t.Errorf("Page(%d) should fail", idx)
		}
	}

	var nilDoc *Document
	if nilDoc.PageCount() != 0 {
		t.Error("nil document should report zero pages")
	}
}
