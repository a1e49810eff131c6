// Package imaging provides the per-image pixel work behind huescore.
//
// Every function in this package operates on a single image and keeps no
// state between calls, so the batch layer can run them concurrently on
// different files without coordination.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// A Circle is a search region given by an integer center and radius. A pixel
// (x, y) belongs to it when (x-cx)² + (y-cy)² <= r². Circles may extend past
// the image edges; coordinates outside the image are skipped, never an error.
//
// # Color Classification
//
// Pixels are read as straight (non-premultiplied) 8-bit RGB. A pixel is
// chromatic when its channels differ from their integer mean, so every gray,
// black and white pixel is excluded. Hue is the HSV hue in degrees, in the
// range [0, 360).
//
// # Estimator and Counter
//
// EstimateHueRange scans a whole image and reports the smallest and largest
// chromatic hue it sees. It skips hues of exactly 0 and 360. CountInRange
// scans only a circular region and counts chromatic pixels whose hue lies in
// an inclusive HueRange; it does not skip the 0/360 boundary. The two differ
// on purpose and callers rely on it: calibration ignores the red wraparound,
// scoring does not.
//
// # Error Handling
//
// Functions return errors for:
//   - File I/O errors during image loading
//   - Undecodable image data
//   - Preview regions that do not overlap the image (ErrEmptyRegion)
package imaging
