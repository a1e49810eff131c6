package batch

// Normalize maps raw counts onto scores in [0, 100] by min-max scaling:
//
//	score = 100 * (count - min) / (max - min)
//
// When every count is equal the scale is undefined and every score is
// uniformScore instead. Scores are returned in the order of counts; an
// empty input yields nil.
func Normalize(counts []int, uniformScore float64) []float64 {
	if len(counts) == 0 {
		return nil
	}

	minPixels, maxPixels := counts[0], counts[0]
	for _, c := range counts[1:] {
		if c < minPixels {
			minPixels = c
		}
		if c > maxPixels {
			maxPixels = c
		}
	}

	scores := make([]float64, len(counts))
	if maxPixels == minPixels {
		for i := range scores {
			scores[i] = uniformScore
		}
		return scores
	}

	spread := float64(maxPixels - minPixels)
	for i, c := range counts {
		scores[i] = 100 * float64(c-minPixels) / spread
	}
	return scores
}
