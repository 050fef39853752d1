package similarity

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Statistic summarizes one group of similarity scores.
type Statistic struct {
	N         int
	Mean      float64
	Low       float64
	High      float64
	HalfWidth float64
}

// Available reports whether the group had any valid scores.
func (s Statistic) Available() bool {
	return s.N > 0
}

// Format renders the statistic for the stats tables, or "N/A" for a group
// with no valid scores.
func (s Statistic) Format() string {
	if !s.Available() {
		return "N/A"
	}
	return fmt.Sprintf("%.4f +/- %.4f", s.Mean, s.HalfWidth)
}

// Aggregate computes the mean of values with a percentile-bootstrap
// confidence interval around it. rng may be nil, in which case a fresh
// PCG source is used; pass a seeded source for reproducible intervals.
func Aggregate(values []float64, resamples int, confidence float64, rng *rand.Rand) Statistic {
	if len(values) == 0 {
		return Statistic{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if resamples < 1 {
		resamples = 1
	}

	mean := stat.Mean(values, nil)

	means := make([]float64, resamples)
	sample := make([]float64, len(values))
	for i := range means {
		for j := range sample {
			sample[j] = values[rng.IntN(len(values))]
		}
		means[i] = stat.Mean(sample, nil)
	}
	sort.Float64s(means)

	alpha := (1 - confidence) / 2
	low := stat.Quantile(alpha, stat.Empirical, means, nil)
	high := stat.Quantile(1-alpha, stat.Empirical, means, nil)

	return Statistic{
		N:         len(values),
		Mean:      mean,
		Low:       low,
		High:      high,
		HalfWidth: (high - low) / 2,
	}
}
