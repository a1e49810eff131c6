package batch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/corona10/goimagehash"

	"github.com/ironsheep/huescore/internal/imaging"
)

// Options control how a phase runs.
type Options struct {
	// Workers is the pool size. Zero or less means runtime.NumCPU().
	Workers int

	// Progress, if set, is advanced once per finished image.
	Progress Progress

	// PreviewDir, if set, receives one region preview PNG per image during
	// CountPhase. The directory must exist.
	PreviewDir string

	// Fingerprint enables perceptual hashing during CountPhase.
	Fingerprint bool

	// Verbose enables debug logging.
	Verbose bool
}

func (o Options) debugf(format string, args ...interface{}) {
	if o.Verbose {
		log.Printf(format, args...)
	}
}

// EstimateSummary is the reduction of a Phase 1 run.
type EstimateSummary struct {
	// Images is the number of files analyzed.
	Images int `json:"images"`

	// NoDataImages counts images in which no pixel qualified. They are left
	// out of AverageRange.
	NoDataImages int `json:"no_data_images"`

	// AverageRange is the arithmetic mean of the per-image minimum and
	// maximum hues. It is the mean of extrema, not a global extremum.
	AverageRange imaging.HueRange `json:"average_range"`

	// ChromaticPixels is the total of qualifying pixels over all images.
	ChromaticPixels int `json:"chromatic_pixels"`

	// Estimates holds the per-image results in file order.
	Estimates []imaging.HueEstimate `json:"estimates"`
}

// HasData reports whether any image contributed to AverageRange.
func (s *EstimateSummary) HasData() bool {
	return s.Images > s.NoDataImages
}

// EstimatePhase runs the hue range estimator over files in parallel and
// averages the results.
func EstimatePhase(ctx context.Context, files []string, opts Options) (*EstimateSummary, error) {
	if len(files) == 0 {
		return nil, ErrNoImages
	}

	estimates, err := RunPool(ctx, opts.Workers, files, func(_ context.Context, path string) (imaging.HueEstimate, error) {
		est, err := imaging.EstimateHueRangeFile(path)
		if err != nil {
			return est, err
		}
		opts.debugf("%s: hues %.4f-%.4f over %d pixels", path, est.MinHue, est.MaxHue, est.ChromaticPixels)
		return est, nil
	}, opts.Progress)
	if err != nil {
		return nil, fmt.Errorf("hue range estimation failed: %w", err)
	}

	return SummarizeEstimates(estimates), nil
}

// SummarizeEstimates reduces per-image estimates into an EstimateSummary.
func SummarizeEstimates(estimates []imaging.HueEstimate) *EstimateSummary {
	summary := &EstimateSummary{
		Images:    len(estimates),
		Estimates: estimates,
	}

	var sumMin, sumMax float64
	withData := 0
	for _, est := range estimates {
		summary.ChromaticPixels += est.ChromaticPixels
		if !est.HasData() {
			summary.NoDataImages++
			continue
		}
		sumMin += est.MinHue
		sumMax += est.MaxHue
		withData++
	}

	if withData > 0 {
		summary.AverageRange = imaging.HueRange{
			Min: sumMin / float64(withData),
			Max: sumMax / float64(withData),
		}
	}
	return summary
}

// ImageCount is the Phase 2 result for one image.
type ImageCount struct {
	Path   string `json:"path"`
	Pixels int    `json:"pixels"`

	// Fingerprint is set only when Options.Fingerprint is enabled.
	Fingerprint *goimagehash.ImageHash `json:"-"`
}

// CountPhase counts pixels of hues inside a circle of the given radius on
// every file in parallel.
//
// The circle is centered on the frame of the first file. Every other file
// must have the same dimensions; a mismatch fails the phase.
func CountPhase(ctx context.Context, files []string, hues imaging.HueRange, radius int, opts Options) ([]ImageCount, error) {
	if len(files) == 0 {
		return nil, ErrNoImages
	}
	if radius < 0 {
		return nil, fmt.Errorf("radius must be non-negative, got %d", radius)
	}

	width, height, err := imaging.Dimensions(files[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", files[0], err)
	}
	cx, cy := imaging.CenterOf(width, height)
	circle := imaging.Circle{CenterX: cx, CenterY: cy, Radius: radius}
	opts.debugf("frame %dx%d, circle at (%d,%d) r=%d", width, height, cx, cy, radius)

	counts, err := RunPool(ctx, opts.Workers, files, func(_ context.Context, path string) (ImageCount, error) {
		return countImage(path, width, height, hues, circle, opts)
	}, opts.Progress)
	if err != nil {
		return nil, fmt.Errorf("pixel counting failed: %w", err)
	}
	return counts, nil
}

func countImage(path string, width, height int, hues imaging.HueRange, circle imaging.Circle, opts Options) (ImageCount, error) {
	img, err := imaging.Load(path)
	if err != nil {
		return ImageCount{}, err
	}

	bounds := img.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		return ImageCount{}, fmt.Errorf("image is %dx%d, batch frame is %dx%d",
			bounds.Dx(), bounds.Dy(), width, height)
	}

	result := ImageCount{
		Path:   path,
		Pixels: imaging.CountInRange(img, hues, circle),
	}
	opts.debugf("%s: %d pixels in range", path, result.Pixels)

	if opts.PreviewDir != "" {
		preview, err := imaging.RenderPreview(img, hues, circle)
		switch {
		case errors.Is(err, imaging.ErrEmptyRegion):
			opts.debugf("%s: no preview, %v", path, err)
		case err != nil:
			return ImageCount{}, err
		default:
			if err := imaging.SavePreview(preview, PreviewPath(opts.PreviewDir, path)); err != nil {
				return ImageCount{}, err
			}
		}
	}

	if opts.Fingerprint {
		fp, err := imaging.Fingerprint(img)
		if err != nil {
			return ImageCount{}, err
		}
		result.Fingerprint = fp
	}

	return result, nil
}

// PreviewPath returns where the region preview of imagePath is written.
func PreviewPath(dir, imagePath string) string {
	base := filepath.Base(imagePath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, name+"_region.png")
}

// Pixels extracts the raw counts from Phase 2 results, in order.
func Pixels(counts []ImageCount) []int {
	pixels := make([]int, len(counts))
	for i, c := range counts {
		pixels[i] = c.Pixels
	}
	return pixels
}
