// Package glyph defines the data model consumed by the accessibility
// analyzer: per-character glyph records, pages, and the page [Source]
// contract, plus a loader for JSON glyph dumps produced by extraction
// front-ends.
//
// A glyph dump looks like:
//
//	{
//	  "name": "report.pdf",
//	  "pages": [
//	    {
//	      "page_number": 1,
//	      "width": 612, "height": 792,
//	      "chars": [
//	        {"text": "H", "x0": 72.0, "y0": 700.5, "size": 11.0,
//	         "fontname": "ABCDEF+Arial-Bold", "non_stroking_color": [0, 0, 0]}
//	      ]
//	    }
//	  ]
//	}
//
// The non_stroking_color field may be a number (grayscale), a 1-, 3-, or
// 4-element array (grayscale, RGB, CMYK), or absent; see the contrast
// package for how each shape is interpreted.
package glyph
