package glyph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a glyph dump file from disk. The dump is the JSON serialization
// of a Document, produced by an extraction front-end (one record per rendered
// character with position, size, font, and fill color). The engine itself
// never parses document binary structure.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open glyph dump: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), ".json")
	}
	return doc, nil
}

// Decode reads a glyph dump from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding glyph dump: %w", err)
	}

	// Dumps from some producers omit page numbers; assign them in order.
	for i := range doc.Pages {
		if doc.Pages[i].Number == 0 {
			doc.Pages[i].Number = i + 1
		}
	}

	return &doc, nil
}

// PageCount implements Source.
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// Page implements Source.
func (d *Document) Page(index int) (*Page, error) {
	if d == nil || index < 0 || index >= len(d.Pages) {
		return nil, fmt.Errorf("page index %d out of range (0-%d)", index, d.PageCount()-1)
	}
	return &d.Pages[index], nil
}
