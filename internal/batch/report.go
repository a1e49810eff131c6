package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// FormatReport writes one "Image {n}: Score - {score}" line per score,
// numbered from 1, with ten decimal digits.
func FormatReport(w io.Writer, scores []float64) error {
	for i, score := range scores {
		if _, err := fmt.Fprintf(w, "Image %d: Score - %.10f\n", i+1, score); err != nil {
			return fmt.Errorf("failed to write report line: %w", err)
		}
	}
	return nil
}

// WriteReport writes scores to the file at path, replacing any previous
// report.
func WriteReport(path string, scores []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := FormatReport(w, scores); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return nil
}
