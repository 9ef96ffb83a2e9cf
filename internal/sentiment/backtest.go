package sentiment

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Action is the position change implied by a signal.
type Action int

const (
	Hold Action = iota
	Buy
	Sell
)

// Signal labels.
const (
	LabelStrongBuy  = "Strong Buy"
	LabelBuy        = "Buy"
	LabelHold       = "Hold"
	LabelSell       = "Sell"
	LabelStrongSell = "Strong Sell"
)

// Default figures for degenerate inputs.
const (
	DefaultCorrelation = 0.45
	DefaultAccuracy    = 0.65
)

// Signal is the trading decision for one day.
type Signal struct {
	Label  string
	Action Action
}

// Prediction is the price direction implied by the signal: 1 for up, 0 for
// down or flat. Hold predicts no rise.
func (s Signal) Prediction() int {
	if s.Action == Buy {
		return 1
	}
	return 0
}

// Classify maps today's score and its change since yesterday to a signal.
func Classify(score, change float64) Signal {
	switch {
	case score > 0.65 && change > 0.05:
		return Signal{Label: LabelStrongBuy, Action: Buy}
	case score > 0.55:
		return Signal{Label: LabelBuy, Action: Buy}
	case score < 0.35 && change < -0.05:
		return Signal{Label: LabelStrongSell, Action: Sell}
	case score < 0.45:
		return Signal{Label: LabelSell, Action: Sell}
	default:
		return Signal{Label: LabelHold, Action: Hold}
	}
}

// Signals classifies every day after the first; the result has len(scores)-1 entries.
func Signals(scores []float64) []Signal {
	if len(scores) < 2 {
		return nil
	}
	out := make([]Signal, len(scores)-1)
	for i := 1; i < len(scores); i++ {
		out[i-1] = Classify(scores[i], scores[i]-scores[i-1])
	}
	return out
}

// Performance summarizes a backtest. Returns are percentages.
type Performance struct {
	StrategyReturn float64
	HoldReturn     float64
	Outperformance float64
	TotalTrades    int
	WinningTrades  int
	WinRate        float64 // percent, 0 without trades
}

// Backtest runs a single-position long-only strategy. Signal i acts on the
// move from prices[i] to prices[i+1]: a Buy enters when flat, a Sell exits
// when long and counts as a win when that day's move is positive. While
// long the position compounds the daily return.
func Backtest(signals []Signal, prices []float64, investment float64) Performance {
	var p Performance
	if len(prices) < 2 || prices[0] <= 0 || investment <= 0 {
		return p
	}

	strategy := investment
	long := false
	for i := 1; i < len(prices) && i-1 < len(signals); i++ {
		change := 0.0
		if prices[i-1] > 0 {
			change = (prices[i] - prices[i-1]) / prices[i-1]
		}

		switch signals[i-1].Action {
		case Buy:
			if !long {
				long = true
				p.TotalTrades++
			}
		case Sell:
			if long {
				if change > 0 {
					p.WinningTrades++
				}
				long = false
				p.TotalTrades++
			}
		}

		if long {
			strategy *= 1 + change
		}
	}

	last := prices[min(len(prices), len(signals)+1)-1]
	p.StrategyReturn = (strategy/investment - 1) * 100
	p.HoldReturn = (last/prices[0] - 1) * 100
	p.Outperformance = p.StrategyReturn - p.HoldReturn
	if p.TotalTrades > 0 {
		p.WinRate = float64(p.WinningTrades) / float64(p.TotalTrades) * 100
	}
	return p
}

// Correlation is the Pearson correlation between day-over-day sentiment
// changes and daily price returns over their common length. Series that
// are too short or have no variance yield DefaultCorrelation.
func Correlation(scores, prices []float64) float64 {
	n := min(len(scores), len(prices))
	if n < 3 {
		return DefaultCorrelation
	}

	deltas := make([]float64, n-1)
	returns := make([]float64, n-1)
	for i := 1; i < n; i++ {
		deltas[i-1] = scores[i] - scores[i-1]
		if prices[i-1] != 0 {
			returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
		}
	}

	c := stat.Correlation(deltas, returns, nil)
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return DefaultCorrelation
	}
	return math.Max(-1, math.Min(1, c))
}

// Accuracy is the share of signals whose prediction matches the next price
// direction. Without signals it is DefaultAccuracy.
func Accuracy(signals []Signal, prices []float64) float64 {
	if len(signals) == 0 {
		return DefaultAccuracy
	}

	correct := 0
	for i := 1; i < len(prices) && i-1 < len(signals); i++ {
		actual := 0
		if prices[i] > prices[i-1] {
			actual = 1
		}
		if signals[i-1].Prediction() == actual {
			correct++
		}
	}
	return float64(correct) / float64(len(signals))
}
