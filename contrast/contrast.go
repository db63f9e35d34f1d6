package contrast

import (
	"encoding/json"
	"math"
)

// Kind identifies the encoding of a raw fill color.
type Kind int

const (
	// Absent means no fill color was recorded for the glyph.
	Absent Kind = iota
	// Gray is a single-component grayscale color.
	Gray
	// DeviceRGB is a three-component red/green/blue color.
	DeviceRGB
	// CMYK is a four-component cyan/magenta/yellow/key color.
	CMYK
)

// Raw is a fill color exactly as it appears in a glyph record. PDF producers
// emit grayscale scalars, RGB triples, CMYK quads, or nothing at all, so the
// variant is resolved once at ingestion instead of re-inspecting the shape on
// every use.
type Raw struct {
	Kind       Kind
	Components [4]float64
}

// GrayColor returns a grayscale Raw color.
func GrayColor(v float64) Raw {
	return Raw{Kind: Gray, Components: [4]float64{v}}
}

// RGBColor returns a DeviceRGB Raw color.
func RGBColor(r, g, b float64) Raw {
	return Raw{Kind: DeviceRGB, Components: [4]float64{r, g, b}}
}

// CMYKColor returns a CMYK Raw color.
func CMYKColor(c, m, y, k float64) Raw {
	return Raw{Kind: CMYK, Components: [4]float64{c, m, y, k}}
}

// UnmarshalJSON decodes the color shapes found in glyph extraction dumps:
// a bare number (grayscale), or an array of 1 (grayscale), 3 (RGB), or
// 4 (CMYK) components. Color data is fundamentally untrusted; any other
// shape decodes to Absent rather than failing the whole record.
func (r *Raw) UnmarshalJSON(data []byte) error {
	var scalar float64
	if err := json.Unmarshal(data, &scalar); err == nil {
		*r = GrayColor(scalar)
		return nil
	}

	var components []float64
	if err := json.Unmarshal(data, &components); err == nil {
		switch len(components) {
		case 1:
			*r = GrayColor(components[0])
		case 3:
			*r = RGBColor(components[0], components[1], components[2])
		case 4:
			*r = CMYKColor(components[0], components[1], components[2], components[3])
		default:
			*r = Raw{}
		}
		return nil
	}

	*r = Raw{}
	return nil
}

// MarshalJSON writes the color back in its dump shape: null for Absent,
// otherwise an array with as many components as the encoding carries.
func (r Raw) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case Gray:
		return json.Marshal([]float64{r.Components[0]})
	case DeviceRGB:
		return json.Marshal(r.Components[:3])
	case CMYK:
		return json.Marshal(r.Components[:])
	default:
		return []byte("null"), nil
	}
}

// RGB is a normalized color with each channel in [0, 1].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// White and Black are the endpoints of the contrast scale.
var (
	White = RGB{R: 1, G: 1, B: 1}
	Black = RGB{}
)

// Normalize converts a raw fill color to normalized RGB. Grayscale values are
// replicated across channels, CMYK converts via r=(1-c)(1-k) and friends, and
// Absent defaults to black. Components are clamped to [0, 1].
func (r Raw) Normalize() RGB {
	switch r.Kind {
	case Gray:
		v := clamp01(r.Components[0])
		return RGB{R: v, G: v, B: v}
	case DeviceRGB:
		return RGB{
			R: clamp01(r.Components[0]),
			G: clamp01(r.Components[1]),
			B: clamp01(r.Components[2]),
		}
	case CMYK:
		c := clamp01(r.Components[0])
		m := clamp01(r.Components[1])
		y := clamp01(r.Components[2])
		k := clamp01(r.Components[3])
		return RGB{
			R: (1 - c) * (1 - k),
			G: (1 - m) * (1 - k),
			B: (1 - y) * (1 - k),
		}
	default:
		return Black
	}
}

// Luminance returns the WCAG 2.1 relative luminance of a color, in [0, 1].
// Each channel is linearized (c/12.92 below the sRGB knee, gamma 2.4 above)
// and combined with the standard coefficients.
func Luminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// Ratio returns the WCAG contrast ratio between two colors:
// (Lmax + 0.05) / (Lmin + 0.05). The result is symmetric in its arguments
// and always at least 1.0.
func Ratio(a, b RGB) float64 {
	la := Luminance(a)
	lb := Luminance(b)

	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)

	return (lighter + 0.05) / (darker + 0.05)
}

func linearize(channel float64) float64 {
	channel = clamp01(channel)
	if channel <= 0.03928 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
