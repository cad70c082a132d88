package analysis

import (
	"github.com/dvllgmz/escapelab/internal/escape"
	"github.com/dvllgmz/escapelab/internal/plane"
)

// Histogram counts intensities into equal-width bins over [0, 1].
// Intensity 1.0 is unreachable by the normalization, so every value
// falls in a real bin.
func Histogram(in escape.Intensity, bins int) []float64 {
	if bins <= 0 {
		return nil
	}

	counts := make([]float64, bins)
	for _, row := range in {
		for _, v := range row {
			idx := int(v * float64(bins))
			if idx < 0 {
				idx = 0
			}
			if idx >= bins {
				idx = bins - 1
			}
			counts[idx]++
		}
	}
	return counts
}

// RowProfile extracts one row of intensities for line plotting. Returns
// nil when the row is out of range.
func RowProfile(in escape.Intensity, row int) []float64 {
	if row < 0 || row >= len(in) {
		return nil
	}
	profile := make([]float64, len(in[row]))
	copy(profile, in[row])
	return profile
}

// InteriorFraction is the share of cells that never escaped
// (intensity exactly 0).
func InteriorFraction(in escape.Intensity) float64 {
	total := 0
	interior := 0
	for _, row := range in {
		for _, v := range row {
			total++
			if v == 0 {
				interior++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(interior) / float64(total)
}

// EstimateArea approximates the area of the non-escaping set inside the
// region: interior cell count times one cell's area.
func EstimateArea(in escape.Intensity, region plane.Region) float64 {
	interior := 0.0
	for _, row := range in {
		for _, v := range row {
			if v == 0 {
				interior++
			}
		}
	}
	return interior * region.Step * region.Step
}

// Stats bundles the scalar diagnostics attached to a stored run.
func Stats(in escape.Intensity, region plane.Region) map[string]float64 {
	return map[string]float64{
		"interior_fraction": InteriorFraction(in),
		"estimated_area":    EstimateArea(in, region),
	}
}
