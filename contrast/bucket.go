package contrast

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Bucket is a named perceptual color category. Buckets give reports a
// human-readable handle on a problematic color ("light-green on white")
// instead of a bare triple.
type Bucket string

const (
	BucketGreen      Bucket = "green"
	BucketLightGreen Bucket = "light-green"
	BucketRed        Bucket = "red"
	BucketLightRed   Bucket = "light-red"
	BucketBlue       Bucket = "blue"
	BucketLightBlue  Bucket = "light-blue"
	BucketYellow     Bucket = "yellow"
	BucketOrange     Bucket = "orange"
	BucketGray       Bucket = "gray"
)

// Hue ranges on the [0, 1) hue circle and the saturation/value gates that
// decide whether a color is vivid enough to name.
const (
	greenHueLow   = 0.20
	greenHueHigh  = 0.40
	redHueLow     = 0.05 // wraps: hue <= low or hue >= high
	redHueHigh    = 0.95
	blueHueLow    = 0.55
	blueHueHigh   = 0.75
	warmHueLow    = 0.05
	warmHueHigh   = 0.15
	minSaturation = 0.3
	minValue      = 0.4
	lightValue    = 0.7
	warmMinValue  = 0.6
	yellowValue   = 0.8
	grayMaxSat    = 0.1
	grayValueLow  = 0.3
	grayValueHigh = 0.7
)

// ClassifyBucket assigns a color to a named bucket using hue, saturation, and
// value. Colors outside every named region (pure black, pure white, dark
// muted tones) report ok=false.
func ClassifyBucket(c RGB) (Bucket, bool) {
	h, s, v := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
	hue := h / 360.0

	switch {
	case hue >= greenHueLow && hue <= greenHueHigh:
		if s > minSaturation && v > minValue {
			if v > lightValue {
				return BucketLightGreen, true
			}
			return BucketGreen, true
		}
	case hue <= redHueLow || hue >= redHueHigh:
		if s > minSaturation && v > minValue {
			if v > lightValue {
				return BucketLightRed, true
			}
			return BucketRed, true
		}
	case hue >= blueHueLow && hue <= blueHueHigh:
		if s > minSaturation && v > minValue {
			if v > lightValue {
				return BucketLightBlue, true
			}
			return BucketBlue, true
		}
	case hue >= warmHueLow && hue <= warmHueHigh:
		if s > minSaturation && v > warmMinValue {
			if v > yellowValue {
				return BucketYellow, true
			}
			return BucketOrange, true
		}
	}

	if s < grayMaxSat && v >= grayValueLow && v <= grayValueHigh {
		return BucketGray, true
	}

	return "", false
}
