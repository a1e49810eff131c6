package imaging

import (
	"image"
)

// Sentinel bounds of a HueEstimate that saw no qualifying pixel.
const (
	NoDataMinHue = 360.0
	NoDataMaxHue = 0.0
)

// HueEstimate is the hue spread observed in one image.
//
// When ChromaticPixels is zero, MinHue and MaxHue hold the sentinels
// NoDataMinHue and NoDataMaxHue. That pair is "no data", not a range.
type HueEstimate struct {
	MinHue          float64 `json:"min_hue"`
	MaxHue          float64 `json:"max_hue"`
	ChromaticPixels int     `json:"chromatic_pixels"`
}

// HasData reports whether the estimate observed at least one pixel.
func (e HueEstimate) HasData() bool {
	return e.ChromaticPixels > 0
}

// Range returns the observed hues as a HueRange.
func (e HueEstimate) Range() HueRange {
	return HueRange{Min: e.MinHue, Max: e.MaxHue}
}

// EstimateHueRange scans every pixel of img and returns the smallest and
// largest chromatic hue together with the number of pixels that qualified.
//
// Parameters:
//   - img: The image to scan. Every pixel is visited; scan order does not
//     affect the result.
//
// Returns:
//   - HueEstimate: MinHue and MaxHue in degrees and the qualifying pixel
//     count. If no pixel qualified, MinHue is NoDataMinHue (360) and MaxHue
//     is NoDataMaxHue (0); check HasData before using them as a range.
//
// # Qualifying Pixels
//
// A pixel qualifies when it is chromatic (see IsChromatic) and its hue lies
// strictly between 0 and 360. Hues of exactly 0 and 360 are skipped, so pure
// red never qualifies. CountInRange keeps them.
func EstimateHueRange(img image.Image) HueEstimate {
	est := HueEstimate{MinHue: NoDataMinHue, MaxHue: NoDataMaxHue}

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b := RGB8(img.At(x, y))
			if !IsChromatic(r, g, b) {
				continue
			}

			h := Hue(r, g, b)
			if h <= 0 || h >= 360 {
				continue
			}
			if h < est.MinHue {
				est.MinHue = h
			}
			if h > est.MaxHue {
				est.MaxHue = h
			}
			est.ChromaticPixels++
		}
	}

	return est
}

// EstimateHueRangeFile loads the image at path and runs EstimateHueRange.
func EstimateHueRangeFile(path string) (HueEstimate, error) {
	img, err := Load(path)
	if err != nil {
		return HueEstimate{}, err
	}
	return EstimateHueRange(img), nil
}
