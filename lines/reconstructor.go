// Package lines reconstructs logical text lines from unordered glyph
// records by vertical proximity.
//
// Glyphs on the same visual line rarely share an exact baseline y: rendering
// jitter spreads them across a small band. The [Reconstructor] groups glyphs
// whose y0 falls within a tolerance band of a target y, orders them left to
// right, and caches the result per (page, quantized y) so a line is only
// assembled once per page scan.
package lines

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/a11y/glyph"
)

// Config holds configuration for line reconstruction.
type Config struct {
	// Tolerance is the half-height of the y band that counts as one line.
	Tolerance float64
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance: 2.0,
	}
}

type lineKey struct {
	page int
	y    float64
}

type cachedLine struct {
	chars []glyph.Char
	text  string
}

// Reconstructor groups glyph records into logical text lines. The cache is
// page-scoped: Reset must be called when switching pages, both to bound
// memory and to avoid collisions between identical quantized y values on
// different pages.
type Reconstructor struct {
	config Config
	cache  map[lineKey]cachedLine
}

// NewReconstructor creates a reconstructor with default configuration.
func NewReconstructor() *Reconstructor {
	return NewReconstructorWithConfig(DefaultConfig())
}

// NewReconstructorWithConfig creates a reconstructor with custom configuration.
func NewReconstructorWithConfig(config Config) *Reconstructor {
	if config.Tolerance <= 0 {
		config.Tolerance = DefaultConfig().Tolerance
	}
	return &Reconstructor{
		config: config,
		cache:  make(map[lineKey]cachedLine),
	}
}

// Quantize rounds a y coordinate to two decimals, the granularity used for
// cache keys and for the detector's per-line processed set.
func Quantize(y float64) float64 {
	return math.Round(y*100) / 100
}

// Line returns the glyphs of the page whose y0 lies within the tolerance
// band of y, sorted by x0, along with their concatenated text. pageIndex
// identifies the page in the cache key. An empty page yields (nil, "");
// a line that cannot be reconstructed contributes no text rather than
// aborting the caller's scan.
func (r *Reconstructor) Line(pageIndex int, chars []glyph.Char, y float64) ([]glyph.Char, string) {
	key := lineKey{page: pageIndex, y: Quantize(y)}
	if cached, ok := r.cache[key]; ok {
		return cached.chars, cached.text
	}

	var lineChars []glyph.Char
	for _, c := range chars {
		if math.Abs(c.Y-y) < r.config.Tolerance {
			lineChars = append(lineChars, c)
		}
	}

	sort.SliceStable(lineChars, func(i, j int) bool {
		return lineChars[i].X < lineChars[j].X
	})

	var sb strings.Builder
	for _, c := range lineChars {
		sb.WriteString(c.Text)
	}
	text := sb.String()

	r.cache[key] = cachedLine{chars: lineChars, text: text}
	return lineChars, text
}

// Reset clears the line cache. Call it when switching to a new page.
func (r *Reconstructor) Reset() {
	r.cache = make(map[lineKey]cachedLine)
}

// CacheSize returns the number of cached lines, mainly for tests.
func (r *Reconstructor) CacheSize() int {
	return len(r.cache)
}
