// Package risk computes Value-at-Risk and related statistics for a weighted
// portfolio of daily return series. VaR figures are returned as positive loss
// fractions; callers scale them by the invested amount.
package risk

import (
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// DefaultSimulations is the Monte Carlo sample size.
const DefaultSimulations = 10000

// tailIndex is the position of the (1-confidence) quantile in a sorted sample of n.
func tailIndex(n int, confidence float64) int {
	return int(math.Floor((1 - confidence) * float64(n)))
}

func sortedCopy(returns []float64) []float64 {
	sorted := slices.Clone(returns)
	slices.Sort(sorted)
	return sorted
}

// meanStdDev returns the mean and the sample standard deviation.
func meanStdDev(returns []float64) (float64, float64) {
	if len(returns) < 2 {
		return stat.Mean(returns, nil), 0
	}
	return stat.MeanStdDev(returns, nil)
}

// HistoricalVaR is the negated (1-confidence) empirical quantile of returns.
// The quantile index is clamped into range; empty input yields 0.
func HistoricalVaR(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	return historicalSorted(sortedCopy(returns), confidence)
}

func historicalSorted(sorted []float64, confidence float64) float64 {
	idx := min(max(tailIndex(len(sorted), confidence), 0), len(sorted)-1)
	return -sorted[idx]
}

// ParametricVaR assumes normally distributed returns:
//
//	-(mean - z*sd), z = -NormalInverse(1-confidence)
//
// Fewer than two returns yield 0.
func ParametricVaR(returns []float64, confidence float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	mean, sd := meanStdDev(returns)
	z := -NormalInverse(1 - confidence)
	return -(mean - z*sd)
}

// MonteCarloVaR draws simulations normal returns with the sample mean and
// standard deviation of returns and takes their historical VaR. Normals are
// produced by the Box-Muller transform from rng, which must not be shared.
func MonteCarloVaR(returns []float64, confidence float64, simulations int, rng *rand.Rand) float64 {
	if len(returns) < 2 {
		return 0
	}
	if simulations <= 0 {
		simulations = DefaultSimulations
	}
	mean, sd := meanStdDev(returns)

	sample := make([]float64, simulations)
	for i := range sample {
		sample[i] = mean + boxMuller(rng)*sd
	}
	slices.Sort(sample)
	return historicalSorted(sample, confidence)
}

func boxMuller(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	u2 := rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// ConditionalVaR (expected shortfall) is the negated mean of the returns
// below the (1-confidence) quantile. An empty tail yields 0.
func ConditionalVaR(returns []float64, confidence float64) float64 {
	cutoff := tailIndex(len(returns), confidence)
	if cutoff <= 0 {
		return 0
	}
	sorted := sortedCopy(returns)
	return -stat.Mean(sorted[:min(cutoff, len(sorted))], nil)
}
