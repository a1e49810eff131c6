package imaging

import (
	"fmt"
	"image"

	"github.com/corona10/goimagehash"
)

// Fingerprint computes a perceptual difference hash of img.
//
// Images that look alike produce hashes a small Hamming distance apart,
// regardless of small compression differences.
func Fingerprint(img image.Image) (*goimagehash.ImageHash, error) {
	hash, err := goimagehash.DifferenceHash(img)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint image: %w", err)
	}
	return hash, nil
}

// FingerprintDistance returns the Hamming distance between two fingerprints.
func FingerprintDistance(a, b *goimagehash.ImageHash) (int, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("missing fingerprint")
	}
	d, err := a.Distance(b)
	if err != nil {
		return 0, fmt.Errorf("failed to compare fingerprints: %w", err)
	}
	return d, nil
}
