package screenshot

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/a11y/contrast"
	"github.com/tsawler/a11y/glyph"
)

// glyphAspect approximates glyph box width as a fraction of the font size.
const glyphAspect = 0.6

// Renderer paints schematic page rasters from glyph records: each glyph
// becomes a filled box in its text color on the page background. The result
// shows where issues sit on the page without rasterizing PDF content.
type Renderer struct {
	config Config
}

// NewRenderer returns a renderer; zero config fields fall back to defaults.
func NewRenderer(config Config) *Renderer {
	def := DefaultConfig()
	if config.Dir == "" {
		config.Dir = def.Dir
	}
	if config.Scale <= 0 {
		config.Scale = def.Scale
	}
	return &Renderer{config: config}
}

// RenderPage rasterizes a whole page.
func (r *Renderer) RenderPage(page *glyph.Page) *image.RGBA {
	w := int(math.Ceil(page.Width * r.config.Scale))
	h := int(math.Ceil(page.Height * r.config.Scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(toColor(r.config.Background)), image.Point{}, draw.Src)

	for _, ch := range page.Chars {
		r.paintGlyph(img, page, ch)
	}
	return img
}

// RenderRegion rasterizes a padded crop around a box in page coordinates.
// The highlight flag widens the padding so annotated issues keep context.
// The returned point is the crop's origin within the full-page raster, so
// callers can translate page pixels into crop pixels.
func (r *Renderer) RenderRegion(page *glyph.Page, x0, y0, x1, y1 float64, highlight bool) (*image.RGBA, image.Point) {
	padding := cropPadding
	if highlight {
		padding = highlightPadding
	}

	x0 = math.Max(0, x0-padding)
	y0 = math.Max(0, y0-padding)
	x1 = math.Min(page.Width, x1+padding)
	y1 = math.Min(page.Height, y1+padding)

	full := r.RenderPage(page)

	// Page y grows upward; image rows grow downward.
	left := int(x0 * r.config.Scale)
	right := int(math.Ceil(x1 * r.config.Scale))
	top := int((page.Height - y1) * r.config.Scale)
	bottom := int(math.Ceil((page.Height - y0) * r.config.Scale))

	rect := image.Rect(left, top, right, bottom).Intersect(full.Bounds())
	if rect.Empty() {
		return full, image.Point{}
	}

	crop := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(crop, crop.Bounds(), full, rect.Min, draw.Src)
	return crop, rect.Min
}

// Annotate draws a red outline around an issue position (in image pixels)
// and a label above it.
func (r *Renderer) Annotate(img *image.RGBA, x, y int, label string) {
	red := color.RGBA{R: 0xd0, A: 0xff}
	outlineRect(img, image.Rect(x-10, y-5, x+100, y+10), red, 3)

	if label == "" {
		return
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(red),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y-20),
	}
	d.DrawString(label)
}

// PixelAt converts a page coordinate to the matching image pixel.
func (r *Renderer) PixelAt(page *glyph.Page, x, y float64) (int, int) {
	return int(x * r.config.Scale), int((page.Height - y) * r.config.Scale)
}

func (r *Renderer) paintGlyph(img *image.RGBA, page *glyph.Page, ch glyph.Char) {
	if ch.Size <= 0 {
		return
	}
	boxW := ch.Size * glyphAspect
	x0 := int(ch.X * r.config.Scale)
	x1 := int(math.Ceil((ch.X + boxW) * r.config.Scale))
	top := int((page.Height - ch.Y - ch.Size) * r.config.Scale)
	bottom := int(math.Ceil((page.Height - ch.Y) * r.config.Scale))

	rect := image.Rect(x0, top, x1, bottom).Intersect(img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(img, rect, image.NewUniform(toColor(ch.Color.Normalize())), image.Point{}, draw.Src)
}

func outlineRect(img *image.RGBA, rect image.Rectangle, c color.Color, width int) {
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return
	}
	src := image.NewUniform(c)
	top := image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+width)
	bottom := image.Rect(rect.Min.X, rect.Max.Y-width, rect.Max.X, rect.Max.Y)
	left := image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+width, rect.Max.Y)
	right := image.Rect(rect.Max.X-width, rect.Min.Y, rect.Max.X, rect.Max.Y)
	for _, edge := range []image.Rectangle{top, bottom, left, right} {
		draw.Draw(img, edge.Intersect(img.Bounds()), src, image.Point{}, draw.Src)
	}
}

func toColor(c contrast.RGB) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: 0xff,
	}
}
