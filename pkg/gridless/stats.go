package gridless

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tart-telescope/web-app/internal/models"
)

// Summarize computes the summary statistics the rendering layer needs
// for color-scale normalization and the statistics overlay: min, max,
// mean, standard deviation, median and median absolute deviation.
func Summarize(pixels []float64) models.Stats {
	if len(pixels) == 0 {
		return models.Stats{}
	}

	sorted := make([]float64, len(pixels))
	copy(sorted, pixels)
	sort.Float64s(sorted)

	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)

	// MAD: median of the absolute deviations from the median
	dev := make([]float64, len(pixels))
	for i, p := range pixels {
		dev[i] = math.Abs(p - median)
	}
	sort.Float64s(dev)

	return models.Stats{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   stat.Mean(pixels, nil),
		StdDev: math.Sqrt(stat.PopVariance(pixels, nil)),
		Median: median,
		MAD:    stat.Quantile(0.5, stat.Empirical, dev, nil),
	}
}
