package batch

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFormatReport(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatReport(&buf, []float64{0, 50, 100, 1.0 / 3}); err != nil {
		t.Fatalf("FormatReport failed: %v", err)
	}

	want := "Image 1: Score - 0.0000000000\n" +
		"Image 2: Score - 50.0000000000\n" +
		"Image 3: Score - 100.0000000000\n" +
		"Image 4: Score - 0.3333333333\n"
	if buf.String() != want {
		t.Errorf("FormatReport:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteReport_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	if err := os.WriteFile(path, []byte("stale line\nanother stale line\nmore\n"), 0o644); err != nil {
		t.Fatalf("failed to seed report: %v", err)
	}

	if err := WriteReport(path, []float64{12.5}); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if got, want := string(data), "Image 1: Score - 12.5000000000\n"; got != want {
		t.Errorf("report: got %q, want %q", got, want)
	}
}

func TestWriteReport_BadPath(t *testing.T) {
	if err := WriteReport("/nonexistent/dir/scores.txt", []float64{1}); err == nil {
		t.Error("WriteReport should fail for an unwritable path")
	}
}
