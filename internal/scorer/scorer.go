// Package scorer drives one interactive scoring run: it discovers images,
// asks the user for a hue range and radius, runs the batch phases and writes
// the report.
package scorer

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/huescore/internal/batch"
	"github.com/ironsheep/huescore/internal/config"
	"github.com/ironsheep/huescore/internal/imaging"
	"github.com/ironsheep/huescore/internal/prompt"
)

// Questions asked during a run, in order.
const (
	QuestionAnalyze = "Do you want to analyze each image (~3 minutes)? (yes/no): "
	QuestionMinHue  = "Enter the average minimum hue: "
	QuestionMaxHue  = "Enter the average maximum hue: "
	QuestionRadius  = "Enter the radius of the circular area to search (in pixels): "
)

// ProgressFactory creates a progress indicator for a phase over total images.
type ProgressFactory func(total int, description string) batch.Progress

// Option configures a Scorer.
type Option func(*Scorer)

// WithProgress sets the progress indicator used by both phases.
func WithProgress(f ProgressFactory) Option {
	return func(s *Scorer) {
		s.progress = f
	}
}

// Scorer holds the configuration and console of a run.
type Scorer struct {
	cfg      *config.Config
	prompt   *prompt.Prompter
	out      io.Writer
	progress ProgressFactory
}

// New creates a Scorer that reads answers from in and writes console
// output to out.
func New(cfg *config.Config, in io.Reader, out io.Writer, opts ...Option) *Scorer {
	s := &Scorer{
		cfg:    cfg,
		prompt: prompt.New(in, out),
		out:    out,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run performs a complete scoring run.
//
// It returns batch.ErrNoImages when the folder holds no images, after telling
// the user. Any other failure aborts the run before a report is written.
func (s *Scorer) Run(ctx context.Context) error {
	files, err := batch.Discover(s.cfg.Folder)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(s.out, "No images found in the folder.")
		return batch.ErrNoImages
	}
	s.debugf("Found %d images in %s", len(files), s.cfg.Folder)

	analyze, err := s.prompt.Confirm(QuestionAnalyze)
	if err != nil {
		return err
	}
	if analyze {
		summary, err := batch.EstimatePhase(ctx, files, s.options(len(files), "Analyzing Images"))
		if err != nil {
			return err
		}
		s.printEstimate(summary)
	}

	hues, radius, err := s.askSearch()
	if err != nil {
		return err
	}
	if !hues.Valid() {
		log.Printf("Minimum hue %.4f is above maximum hue %.4f; no pixel will match", hues.Min, hues.Max)
	}

	opts := s.options(len(files), "Counting Pixels")
	if s.cfg.PreviewDir != "" {
		if err := os.MkdirAll(s.cfg.PreviewDir, 0o755); err != nil {
			return fmt.Errorf("failed to create preview directory: %w", err)
		}
		opts.PreviewDir = s.cfg.PreviewDir
	}
	opts.Fingerprint = s.cfg.DetectDuplicates()

	counts, err := batch.CountPhase(ctx, files, hues, radius, opts)
	if err != nil {
		return err
	}

	if opts.Fingerprint {
		if err := s.warnDuplicates(counts); err != nil {
			return err
		}
	}

	fmt.Fprintln(s.out, "Hue Range:")
	fmt.Fprintf(s.out, "Minimum Hue: %.10f\n", hues.Min)
	fmt.Fprintf(s.out, "Maximum Hue: %.10f\n", hues.Max)
	fmt.Fprintln(s.out)

	scores := batch.Normalize(batch.Pixels(counts), s.cfg.UniformScore)
	if err := batch.WriteReport(s.cfg.ReportPath, scores); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Scores saved in '%s' file.\n", s.cfg.ReportPath)
	return nil
}

func (s *Scorer) askSearch() (imaging.HueRange, int, error) {
	var hues imaging.HueRange
	var err error

	if hues.Min, err = s.prompt.Float(QuestionMinHue); err != nil {
		return hues, 0, err
	}
	if hues.Max, err = s.prompt.Float(QuestionMaxHue); err != nil {
		return hues, 0, err
	}
	radius, err := s.prompt.NonNegativeInt(QuestionRadius)
	if err != nil {
		return hues, 0, err
	}
	return hues, radius, nil
}

func (s *Scorer) printEstimate(summary *batch.EstimateSummary) {
	if !summary.HasData() {
		fmt.Fprintln(s.out, "No colored pixels found in any image; there is no hue range to suggest.")
		return
	}
	if summary.NoDataImages > 0 {
		log.Printf("%d of %d images had no colored pixels and were left out of the average",
			summary.NoDataImages, summary.Images)
	}

	fmt.Fprintln(s.out, "Average Hue Range:")
	fmt.Fprintf(s.out, "Minimum Hue: %.10f\n", summary.AverageRange.Min)
	fmt.Fprintf(s.out, "Maximum Hue: %.10f\n", summary.AverageRange.Max)
	fmt.Fprintf(s.out, "Total Colored Pixels: %d\n", summary.ChromaticPixels)
}

func (s *Scorer) warnDuplicates(counts []batch.ImageCount) error {
	pairs, err := batch.FindDuplicates(counts, s.cfg.DuplicateDistance)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		log.Printf("Warning: %s and %s look identical (distance %d)", p.First, p.Second, p.Distance)
	}
	return nil
}

func (s *Scorer) options(total int, description string) batch.Options {
	opts := batch.Options{
		Workers: s.cfg.Workers,
		Verbose: s.cfg.Debug(),
	}
	if s.progress != nil {
		opts.Progress = s.progress(total, description)
	}
	return opts
}

func (s *Scorer) debugf(format string, args ...interface{}) {
	if s.cfg.Debug() {
		log.Printf(format, args...)
	}
}
