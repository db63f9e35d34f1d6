package contrast

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatioBounds(t *testing.T) {
	assert.InDelta(t, 21.0, Ratio(Black, White), 1e-6, "black on white is the maximum")
	assert.InDelta(t, 1.0, Ratio(White, White), 1e-6, "a color against itself is the minimum")
	assert.InDelta(t, 1.0, Ratio(Black, Black), 1e-6)
}

func TestRatioSymmetry(t *testing.T) {
	colors := []RGB{
		{R: 0.2, G: 0.4, B: 0.6},
		{R: 0.9, G: 0.1, B: 0.3},
		{R: 0.6, G: 0.6, B: 0.6},
		Black, White,
	}
	for _, a := range colors {
		for _, b := range colors {
			assert.InDelta(t, Ratio(a, b), Ratio(b, a), 1e-9)
			assert.GreaterOrEqual(t, Ratio(a, b), 1.0)
		}
	}
}

func TestLuminanceMonotonicInGray(t *testing.T) {
	prev := -1.0
	for v := 0.0; v <= 1.0; v += 0.05 {
		l := Luminance(RGB{R: v, G: v, B: v})
		assert.Greater(t, l, prev, "luminance must grow with gray value %v", v)
		prev = l
	}
}

func TestLuminanceReference(t *testing.T) {
	assert.InDelta(t, 0.0, Luminance(Black), 1e-9)
	assert.InDelta(t, 1.0, Luminance(White), 1e-9)
	// Mid-gray 0.6: linearized ((0.6+0.055)/1.055)^2.4 times unit weights.
	lin := math.Pow((0.6+0.055)/1.055, 2.4)
	assert.InDelta(t, lin, Luminance(RGB{R: 0.6, G: 0.6, B: 0.6}), 1e-9)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want RGB
	}{
		{"absent is black", Raw{}, Black},
		{"gray replicates", GrayColor(0.25), RGB{R: 0.25, G: 0.25, B: 0.25}},
		{"rgb passes through", RGBColor(0.1, 0.2, 0.3), RGB{R: 0.1, G: 0.2, B: 0.3}},
		{"cmyk converts", CMYKColor(1, 0, 0, 0), RGB{R: 0, G: 1, B: 1}},
		{"cmyk black", CMYKColor(0, 0, 0, 1), Black},
		{"out of range clamps", RGBColor(1.5, -0.5, 0.5), RGB{R: 1, G: 0, B: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.raw.Normalize()
			assert.InDelta(t, tt.want.R, got.R, 1e-9)
			assert.InDelta(t, tt.want.G, got.G, 1e-9)
			assert.InDelta(t, tt.want.B, got.B, 1e-9)
		})
	}
}

func TestRawUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Kind
	}{
		{"number is gray", `0.5`, Gray},
		{"one element array is gray", `[0.5]`, Gray},
		{"three element array is rgb", `[0.1,0.2,0.3]`, DeviceRGB},
		{"four element array is cmyk", `[0,0,0,1]`, CMYK},
		{"null is absent", `null`, Absent},
		{"string is absent", `"red"`, Absent},
		{"two element array is absent", `[0.1,0.2]`, Absent},
		{"object is absent", `{"r":1}`, Absent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw Raw
			require.NoError(t, json.Unmarshal([]byte(tt.in), &raw), "color decoding never errors")
			assert.Equal(t, tt.want, raw.Kind)
		})
	}
}

func TestClassifyBucket(t *testing.T) {
	tests := []struct {
		name   string
		color  RGB
		bucket Bucket
		ok     bool
	}{
		{"mid gray", RGB{R: 0.6, G: 0.6, B: 0.6}, BucketGray, true},
		{"white unbucketed", White, "", false},
		{"black unbucketed", Black, "", false},
		{"dark red", RGB{R: 0.7, G: 0, B: 0}, BucketRed, true},
		{"light red", RGB{R: 1, G: 0.6, B: 0.6}, BucketLightRed, true},
		{"dark green", RGB{R: 0, G: 0.6, B: 0}, BucketGreen, true},
		{"light green", RGB{R: 0.6, G: 1, B: 0.6}, BucketLightGreen, true},
		{"dark blue", RGB{R: 0, G: 0, B: 0.6}, BucketBlue, true},
		{"light blue", RGB{R: 0.6, G: 0.6, B: 1}, BucketLightBlue, true},
		{"warm yellow", RGB{R: 1, G: 0.8, B: 0}, BucketYellow, true},
		{"orange", RGB{R: 0.8, G: 0.4, B: 0}, BucketOrange, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, ok := ClassifyBucket(tt.color)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.bucket, bucket)
			}
		})
	}
}

func TestGrayOnWhiteScenario(t *testing.T) {
	// The canonical mid-gray body text case: fails the 4.5:1 requirement
	// but sits above the 2.0:1 high-severity cut-off.
	gray := RGB{R: 0.6, G: 0.6, B: 0.6}
	ratio := Ratio(gray, White)
	assert.Greater(t, ratio, 2.0)
	assert.Less(t, ratio, 3.0)
	assert.InDelta(t, 2.85, ratio, 0.01)
}
