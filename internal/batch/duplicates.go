package batch

import (
	"github.com/ironsheep/huescore/internal/imaging"
)

// DuplicatePair names two images whose fingerprints are close.
type DuplicatePair struct {
	First    string `json:"first"`
	Second   string `json:"second"`
	Distance int    `json:"distance"`
}

// FindDuplicates returns every pair of images whose fingerprint distance is
// at most maxDistance. Images without a fingerprint are ignored. Pairs are
// ordered by the position of their first, then second, image.
func FindDuplicates(counts []ImageCount, maxDistance int) ([]DuplicatePair, error) {
	var pairs []DuplicatePair
	for i := 0; i < len(counts); i++ {
		if counts[i].Fingerprint == nil {
			continue
		}
		for j := i + 1; j < len(counts); j++ {
			if counts[j].Fingerprint == nil {
				continue
			}
			d, err := imaging.FingerprintDistance(counts[i].Fingerprint, counts[j].Fingerprint)
			if err != nil {
				return nil, err
			}
			if d <= maxDistance {
				pairs = append(pairs, DuplicatePair{
					First:    counts[i].Path,
					Second:   counts[j].Path,
					Distance: d,
				})
			}
		}
	}
	return pairs, nil
}
