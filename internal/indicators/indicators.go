// Package indicators implements the technical indicators used by the forecaster:
// simple and exponential moving averages, a windowed RSI, MACD and return volatility.
//
// Every function is pure. When the input is too short to produce a value the
// result is an empty slice (or 0 for scalar results), never a panic.
package indicators

import (
	"gonum.org/v1/gonum/stat"
)

// Default periods used by the forecaster.
const (
	DefaultRSIPeriod   = 14
	DefaultMACDFast    = 12
	DefaultMACDSlow    = 26
	DefaultMACDSignal  = 9
	TradingDaysPerYear = 252
	VolatilityLookback = 30
)

// SMA returns the simple moving average series.
// Element i is the mean of prices[i : i+period], so the output has
// len(prices)-period+1 values.
func SMA(prices []float64, period int) []float64 {
	if period <= 0 || period > len(prices) {
		return []float64{}
	}

	out := make([]float64, 0, len(prices)-period+1)
	for i := period - 1; i < len(prices); i++ {
		var sum float64
		for _, p := range prices[i-period+1 : i+1] {
			sum += p
		}
		out = append(out, sum/float64(period))
	}

	return out
}

// EMA returns the exponential moving average series seeded with the SMA of the
// first period prices and smoothed with k = 2/(period+1).
// The output has len(prices)-period+1 values.
func EMA(prices []float64, period int) []float64 {
	if period <= 0 || period > len(prices) {
		return []float64{}
	}

	k := 2.0 / float64(period+1)
	out := make([]float64, 0, len(prices)-period+1)
	out = append(out, stat.Mean(prices[:period], nil))

	for i := period; i < len(prices); i++ {
		prev := out[len(out)-1]
		out = append(out, prices[i]*k+prev*(1-k))
	}

	return out
}

// RSI returns the relative strength index for every full window of period
// price changes. Each window is averaged independently (no Wilder smoothing).
// A window without losses yields 100. The output has len(prices)-period values.
func RSI(prices []float64, period int) []float64 {
	if period <= 0 || len(prices)-period <= 0 {
		return []float64{}
	}

	changes := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		changes[i-1] = prices[i] - prices[i-1]
	}

	out := make([]float64, 0, len(changes)-period+1)
	for i := period - 1; i < len(changes); i++ {
		var gains, losses float64
		for _, c := range changes[i-period+1 : i+1] {
			if c > 0 {
				gains += c
			} else {
				losses -= c
			}
		}

		avgGain := gains / float64(period)
		avgLoss := losses / float64(period)
		if avgLoss == 0 {
			out = append(out, 100)
			continue
		}
		rs := avgGain / avgLoss
		out = append(out, 100-100/(1+rs))
	}

	return out
}

// MACDResult holds the three MACD series. Line and Signal are aligned so that
// Histogram[j] = Line[j+signal-1] - Signal[j].
type MACDResult struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// MACD computes the moving average convergence divergence.
// The fast EMA is aligned with the slow EMA by dropping its first slow-fast values.
func MACD(prices []float64, fast, slow, signal int) MACDResult {
	empty := MACDResult{Line: []float64{}, Signal: []float64{}, Histogram: []float64{}}
	if fast <= 0 || slow <= fast || signal <= 0 {
		return empty
	}

	fastEMA := EMA(prices, fast)
	slowEMA := EMA(prices, slow)
	if len(slowEMA) == 0 {
		return empty
	}

	offset := slow - fast
	line := make([]float64, len(slowEMA))
	for i := range slowEMA {
		line[i] = fastEMA[i+offset] - slowEMA[i]
	}

	signalLine := EMA(line, signal)
	histogram := make([]float64, 0, len(signalLine))
	for i := signal - 1; i < len(line) && i-signal+1 < len(signalLine); i++ {
		histogram = append(histogram, line[i]-signalLine[i-signal+1])
	}

	return MACDResult{Line: line, Signal: signalLine, Histogram: histogram}
}

// Returns converts a price series into simple daily returns.
// Non-positive prices yield a zero return rather than an infinity.
func Returns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}

	out := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] <= 0 {
			continue
		}
		out[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
	}
	return out
}

// Volatility is the sample standard deviation (n-1) of the simple daily returns
// of prices. It returns 0 when fewer than two returns are available.
func Volatility(prices []float64) float64 {
	returns := Returns(prices)
	if len(returns) < 2 {
		return 0
	}
	return stat.StdDev(returns, nil)
}

// Last returns the final element of values and whether one exists.
func Last(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	return values[len(values)-1], true
}
