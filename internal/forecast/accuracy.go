package forecast

import "math"

// Default accuracy figures reported when there is nothing to compare.
const (
	DefaultRMSE = 25.0
	DefaultMAPE = 5.5
	DefaultR2   = 0.75
)

// AccuracyWindow is how many predictions are compared against the same
// number of trailing history prices.
const AccuracyWindow = 10

// Accuracy describes how far a prediction path sits from reference prices.
type Accuracy struct {
	RMSE float64
	MAPE float64 // percent
	R2   float64 // clamped at 0
}

// ModelMetrics compares predicted against actual over their common length.
// An empty side yields the default figures.
func ModelMetrics(predicted, actual []float64) Accuracy {
	n := min(len(predicted), len(actual))
	if n == 0 {
		return Accuracy{RMSE: DefaultRMSE, MAPE: DefaultMAPE, R2: DefaultR2}
	}

	var actualMean float64
	for _, a := range actual {
		actualMean += a
	}
	actualMean /= float64(len(actual))

	var sse, ape, sst float64
	for i := 0; i < n; i++ {
		diff := predicted[i] - actual[i]
		sse += diff * diff
		if actual[i] != 0 {
			ape += math.Abs(diff/actual[i]) * 100
		}
		d := actual[i] - actualMean
		sst += d * d
	}

	r2 := 0.0
	if sst > 0 {
		r2 = math.Max(0, 1-sse/sst)
	}

	return Accuracy{
		RMSE: math.Sqrt(sse / float64(n)),
		MAPE: ape / float64(n),
		R2:   r2,
	}
}
