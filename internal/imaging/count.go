package imaging

import (
	"image"
)

// CountInRange counts chromatic pixels inside circle whose hue lies in hues.
//
// Parameters:
//   - img: The image to scan.
//   - hues: Inclusive hue range in degrees. An inverted range (Min > Max)
//     matches nothing.
//   - circle: Search region. The center may lie anywhere and the radius may
//     exceed the image; any radius reaching past the farthest pixel is
//     treated as covering the whole image.
//
// Returns the number of qualifying pixels. Zero is a valid result.
//
// # Algorithm
//
// Only the circle's bounding square is visited, clipped to the image bounds.
// Each pixel must pass three tests, in order:
//  1. (x-cx)² + (y-cy)² <= r²
//  2. IsChromatic
//  3. hues.Contains(Hue)
//
// Unlike EstimateHueRange, hues of 0 are counted when the range includes them.
//
// # Edge Cases
//
//   - Circle entirely off-canvas: 0
//   - Region with no chromatic pixels: 0
//   - Negative radius: 0
func CountInRange(img image.Image, hues HueRange, circle Circle) int {
	circle = circle.Fit(img.Bounds())
	area := circle.Within(img.Bounds())

	count := 0
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if matches(img, hues, circle, x, y) {
				count++
			}
		}
	}
	return count
}

// CountInRangeFile loads the image at path and runs CountInRange.
func CountInRangeFile(path string, hues HueRange, circle Circle) (int, error) {
	img, err := Load(path)
	if err != nil {
		return 0, err
	}
	return CountInRange(img, hues, circle), nil
}

// matches is the per-pixel test shared by CountInRange and RenderPreview.
func matches(img image.Image, hues HueRange, circle Circle, x, y int) bool {
	if !circle.Contains(x, y) {
		return false
	}
	r, g, b := RGB8(img.At(x, y))
	if !IsChromatic(r, g, b) {
		return false
	}
	return hues.Contains(Hue(r, g, b))
}
