package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// ErrEmptyRegion is returned when a search circle does not overlap the image.
var ErrEmptyRegion = errors.New("search region does not overlap image")

// previewOutline is the stroke color of the circle boundary on previews.
const previewOutline = "#FF00FF"

// RenderPreview renders the search region of img for visual inspection.
//
// The image is converted to grayscale, then every pixel CountInRange would
// count is restored to its original color, so the colored pixels in the
// preview are exactly the ones that contribute to the score. The circle
// boundary is stroked on top and the result is cropped to the part of the
// circle's bounding square that lies inside the image.
//
// Returns ErrEmptyRegion if the circle is entirely off-canvas.
func RenderPreview(img image.Image, hues HueRange, circle Circle) (image.Image, error) {
	circle = circle.Fit(img.Bounds())
	area := circle.Within(img.Bounds())
	if area.Empty() {
		return nil, fmt.Errorf("circle at (%d,%d) r=%d: %w",
			circle.CenterX, circle.CenterY, circle.Radius, ErrEmptyRegion)
	}

	backdrop := effect.Grayscale(img)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if matches(img, hues, circle, x, y) {
				backdrop.Set(x, y, img.At(x, y))
			}
		}
	}

	dc := gg.NewContextForImage(backdrop)
	dc.SetHexColor(previewOutline)
	dc.SetLineWidth(1)
	// Pixel centers sit at +0.5 in gg's coordinate space.
	dc.DrawCircle(float64(circle.CenterX)+0.5, float64(circle.CenterY)+0.5, float64(circle.Radius)+0.5)
	dc.Stroke()

	return imaging.Crop(dc.Image(), area), nil
}

// SavePreview writes a preview image to path. The format is chosen from the
// file extension.
func SavePreview(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save preview: %w", err)
	}
	return nil
}
