package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoImages is returned when a batch has no files to process.
var ErrNoImages = errors.New("no images found")

// imageExtensions are matched case-sensitively against file names.
var imageExtensions = []string{".jpg", ".png"}

// Discover lists the image files directly inside folder.
//
// A file qualifies when its name ends in ".jpg" or ".png" exactly;
// directories are skipped. Paths are joined with folder and returned sorted
// by file name. An empty result is not an error; callers check for it.
func Discover(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read image folder: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !isImageName(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(folder, e.Name()))
	}

	sort.Strings(files)
	return files, nil
}

func isImageName(name string) bool {
	for _, ext := range imageExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
