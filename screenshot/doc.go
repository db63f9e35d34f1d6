// Package screenshot renders schematic page images for issue reports. Pages
// are painted from glyph records, one colored box per glyph, so a reader can
// see where an issue sits without the original PDF being rasterized. Issues
// can be annotated with a red outline and a type label.
package screenshot
