package glyph

import (
	"github.com/tsawler/a11y/contrast"
)

// Char is one rendered character as supplied by the page source: its text
// (a single character or ligature), baseline position, font, and fill color.
// Field names follow the extraction dump schema.
type Char struct {
	Text     string       `json:"text"`
	X        float64      `json:"x0"`
	Y        float64      `json:"y0"`
	Size     float64      `json:"size"`
	FontName string       `json:"fontname"`
	Color    contrast.Raw `json:"non_stroking_color"`
}

// Page holds the glyph records and dimensions of a single rendered page.
// Chars are in stream order, which is not guaranteed to be left-to-right.
type Page struct {
	Number int     `json:"page_number"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Chars  []Char  `json:"chars"`
}

// Document is an ordered collection of pages plus the name of the document
// they came from.
type Document struct {
	Name  string `json:"name,omitempty"`
	Pages []Page `json:"pages"`
}

// Source supplies pages to the analyzer. Pages are addressed by a 0-based
// index; page numbers in findings are 1-based. A Source implementation may
// fail to produce an individual page without invalidating the rest.
type Source interface {
	PageCount() int
	Page(index int) (*Page, error)
}
