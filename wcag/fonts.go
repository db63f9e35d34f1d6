package wcag

import (
	"fmt"
	"strings"
)

// AccessibleFonts are families with good readability for low-vision readers.
var AccessibleFonts = []string{
	"Arial", "Helvetica", "Verdana", "Tahoma", "Calibri",
	"Georgia", "Times New Roman", "Lucida Sans", "Trebuchet MS",
	"Open Sans", "Roboto", "Lato", "Montserrat",
	"LiberationSans", "LiberationSerif", "DejaVu Sans", "DejaVu Serif",
}

// PoorReadabilityFonts are decorative, script, or monospace families that
// read poorly at body sizes.
var PoorReadabilityFonts = []string{
	"Comic Sans", "Papyrus", "Brush Script", "Jokerman",
	"Chiller", "Curly", "Old English", "Gothic",
	"Courier", "Consolas", "Monaco", "Menlo", "Source Code Pro",
}

// FontClassifier checks font names against the accessible and
// poor-readability sets. Both sets can be extended (from configuration)
// without mutating the package-level defaults.
type FontClassifier struct {
	accessible []string
	poor       []string
}

// NewFontClassifier creates a classifier with the default font sets.
func NewFontClassifier() *FontClassifier {
	return &FontClassifier{
		accessible: append([]string(nil), AccessibleFonts...),
		poor:       append([]string(nil), PoorReadabilityFonts...),
	}
}

// AddAccessible adds font families to the accessible set.
func (c *FontClassifier) AddAccessible(names ...string) {
	c.accessible = append(c.accessible, names...)
}

// AddPoor adds font families to the poor-readability set.
func (c *FontClassifier) AddPoor(names ...string) {
	c.poor = append(c.poor, names...)
}

// CheckReadability reports whether a font is considered readable, with a
// human-readable reason. Matching is a case-insensitive substring check on
// the normalized font name; the accessible set wins when both sets would
// match. A font in neither set is flagged as not readable: unknown fonts
// are reported, not assumed safe.
func (c *FontClassifier) CheckReadability(fontName string) (bool, string) {
	normalized := strings.ToLower(NormalizeFontName(fontName))

	for _, name := range c.accessible {
		if strings.Contains(normalized, strings.ToLower(name)) {
			return true, fmt.Sprintf("readable font: %s", name)
		}
	}

	for _, name := range c.poor {
		if strings.Contains(normalized, strings.ToLower(name)) {
			return false, fmt.Sprintf("poorly readable font: %s", name)
		}
	}

	return false, fmt.Sprintf("unknown font: %s", NormalizeFontName(fontName))
}
