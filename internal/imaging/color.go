package imaging

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HueRange is an inclusive range of hues in degrees.
//
// Min is expected to be <= Max. The range is not normalized: when Min > Max
// no hue satisfies Min <= h <= Max, so the range matches nothing. This is
// how a degenerate range entered by a user is treated, not an error.
type HueRange struct {
	Min float64 `json:"min"` // Lower bound in degrees (inclusive)
	Max float64 `json:"max"` // Upper bound in degrees (inclusive)
}

// Contains reports whether h lies within [Min, Max].
func (r HueRange) Contains(h float64) bool {
	return r.Min <= h && h <= r.Max
}

// Valid reports whether the range can match any hue at all.
func (r HueRange) Valid() bool {
	return r.Min <= r.Max
}

// RGB8 returns the straight 8-bit red, green and blue channels of c.
//
// Alpha is discarded. Colors with partial alpha are un-premultiplied first,
// so a half-transparent red still reads as (255, 0, 0).
func RGB8(c color.Color) (r, g, b uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B
}

// IsChromatic reports whether a pixel carries color.
//
// The pixel is compared against its integer gray value (r+g+b)/3; gray,
// black and white pixels equal it on every channel and are not chromatic.
func IsChromatic(r, g, b uint8) bool {
	gray := uint8((int(r) + int(g) + int(b)) / 3)
	return r != gray || g != gray || b != gray
}

// Hue returns the HSV hue of an 8-bit RGB triple in degrees, in [0, 360).
//
// Achromatic input yields 0.
func Hue(r, g, b uint8) float64 {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	h, _, _ := c.Hsv()
	return h
}
