package risk

import (
	"math"

	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
	"github.com/ndewijer/FinLedge-Backend/internal/indicators"
)

// RiskFreeRate is the annual risk-free rate used for the Sharpe ratio.
const RiskFreeRate = 0.055

// NormalizeWeights scales weights to sum to 1. Negative weights or a
// non-positive total are rejected.
func NormalizeWeights(weights []float64) ([]float64, error) {
	var total float64
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, apperrors.ErrInvalidInput
		}
		total += w
	}
	if total <= 0 {
		return nil, apperrors.ErrZeroTotalWeight
	}

	out := make([]float64, len(weights))
	for i, w := range weights {
		out[i] = w / total
	}
	return out, nil
}

// PortfolioReturns combines per-instrument return series into weighted
// portfolio returns over their common prefix.
func PortfolioReturns(returns [][]float64, weights []float64) []float64 {
	if len(returns) == 0 || len(returns) != len(weights) {
		return nil
	}

	n := len(returns[0])
	for _, r := range returns[1:] {
		n = min(n, len(r))
	}

	out := make([]float64, n)
	for i := range out {
		for j, r := range returns {
			out[i] += weights[j] * r[i]
		}
	}
	return out
}

// Metrics are annualized portfolio statistics.
type Metrics struct {
	AnnualReturn     float64
	AnnualVolatility float64
	SharpeRatio      float64
	MaxDrawdown      float64 // negative fraction, 0 when the curve never falls
}

// PortfolioMetrics annualizes daily returns over 252 trading days and walks
// the compounded curve for the deepest peak-to-trough fall.
func PortfolioMetrics(returns []float64) Metrics {
	if len(returns) == 0 {
		return Metrics{}
	}
	mean, sd := meanStdDev(returns)

	m := Metrics{
		AnnualReturn:     mean * indicators.TradingDaysPerYear,
		AnnualVolatility: sd * math.Sqrt(indicators.TradingDaysPerYear),
	}
	if m.AnnualVolatility > 0 {
		m.SharpeRatio = (m.AnnualReturn - RiskFreeRate) / m.AnnualVolatility
	}

	peak, curve, maxDD := 0.0, 1.0, 0.0
	for _, r := range returns {
		curve *= 1 + r
		peak = math.Max(peak, curve)
		if peak > 0 {
			maxDD = math.Max(maxDD, (peak-curve)/peak)
		}
	}
	if maxDD > 0 {
		m.MaxDrawdown = -maxDD
	}
	return m
}

// RiskContribution is weight times the instrument's own annualized
// volatility, in percent. Correlation between instruments is ignored.
func RiskContribution(returns []float64, weight float64) float64 {
	_, sd := meanStdDev(returns)
	return weight * sd * math.Sqrt(indicators.TradingDaysPerYear) * 100
}
