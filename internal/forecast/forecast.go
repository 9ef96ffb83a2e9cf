// Package forecast projects a price path from technical indicators. It is a
// rule-based heuristic, not a trained model: three indicator signals set a
// decaying drift on top of volatility-scaled noise.
package forecast

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
	"github.com/ndewijer/FinLedge-Backend/internal/indicators"
	"github.com/ndewijer/FinLedge-Backend/internal/marketdata"
)

// DefaultHorizon is the number of days forecast when the caller does not choose.
const DefaultHorizon = 30

const (
	driftScale         = 0.002
	driftDecay         = 0.05
	noiseScale         = 0.5
	meanReversionScale = 0.001
	overbought         = 70.0
	oversold           = 30.0
)

// Recommendation labels derived from the combined signal strength.
const (
	StrongBuy  = "Strong Buy"
	Buy        = "Buy"
	Hold       = "Hold"
	Sell       = "Sell"
	StrongSell = "Strong Sell"
)

// Snapshot holds the last value of each indicator and the resulting signals.
type Snapshot struct {
	SMA20          float64
	SMA50          float64
	EMA12          float64
	RSI            float64
	MACD           float64
	TrendSignal    int
	MomentumSignal int
	ReversionBias  int
	SignalStrength float64
	Recommendation string
}

// Result is a forecast path starting the day after the last history date.
type Result struct {
	Dates       []string
	Predictions []float64
	Technical   Snapshot
}

// Label maps a signal strength in [-1, 1] to a recommendation.
func Label(strength float64) string {
	switch {
	case strength > 0.3:
		return StrongBuy
	case strength > 0:
		return Buy
	case strength > -0.3:
		return Hold
	case strength > -0.6:
		return Sell
	default:
		return StrongSell
	}
}

// Analyze computes the indicator snapshot of prices. Indicators that need
// more history than is available contribute a zero signal, and SMA20 falls
// back to the last price.
func Analyze(prices []float64) Snapshot {
	var snap Snapshot
	if len(prices) == 0 {
		return snap
	}
	last := prices[len(prices)-1]

	sma20, ok20 := indicators.Last(indicators.SMA(prices, 20))
	if !ok20 {
		sma20 = last
	}
	sma50, ok50 := indicators.Last(indicators.SMA(prices, 50))
	ema12, _ := indicators.Last(indicators.EMA(prices, indicators.DefaultMACDFast))
	rsi, okRSI := indicators.Last(indicators.RSI(prices, indicators.DefaultRSIPeriod))
	macd := indicators.MACD(prices, indicators.DefaultMACDFast, indicators.DefaultMACDSlow, indicators.DefaultMACDSignal)
	macdLine, okMACD := indicators.Last(macd.Line)

	snap.SMA20 = sma20
	snap.SMA50 = sma50
	snap.EMA12 = ema12
	snap.RSI = rsi
	snap.MACD = macdLine

	if ok20 && ok50 {
		snap.TrendSignal = -1
		if sma20 > sma50 {
			snap.TrendSignal = 1
		}
	}
	if okMACD {
		snap.MomentumSignal = -1
		if macdLine > 0 {
			snap.MomentumSignal = 1
		}
	}
	if okRSI {
		switch {
		case rsi > overbought:
			snap.ReversionBias = -1
		case rsi < oversold:
			snap.ReversionBias = 1
		}
	}

	snap.SignalStrength = float64(snap.TrendSignal+snap.MomentumSignal+snap.ReversionBias) / 3
	snap.Recommendation = Label(snap.SignalStrength)
	return snap
}

// Forecast projects horizon daily prices after the end of history.
//
// For day i in 1..horizon the price compounds by
//
//	s*0.002*exp(-0.05*i) + N(0,1)*vol*0.5 + (SMA20-price)/SMA20*0.001
//
// where s is the signal strength and vol the volatility of the last 30 prices.
// rng must not be shared with other goroutines.
func Forecast(history marketdata.Series, horizon int, rng *rand.Rand) (Result, error) {
	if history.Len() < 2 || len(history.Dates) != history.Len() {
		return Result{}, fmt.Errorf("%w: forecast needs at least two dated prices", apperrors.ErrDataUnavailable)
	}
	if horizon <= 0 {
		horizon = DefaultHorizon
	}

	lastDate, err := time.Parse(time.DateOnly, history.Dates[len(history.Dates)-1])
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidDateFormat, err)
	}

	prices := history.Prices
	snap := Analyze(prices)

	recent := prices
	if len(recent) > indicators.VolatilityLookback {
		recent = recent[len(recent)-indicators.VolatilityLookback:]
	}
	vol := indicators.Volatility(recent)

	result := Result{
		Dates:       make([]string, horizon),
		Predictions: make([]float64, horizon),
		Technical:   snap,
	}

	price := prices[len(prices)-1]
	for i := 1; i <= horizon; i++ {
		drift := snap.SignalStrength * driftScale * math.Exp(-driftDecay*float64(i))
		noise := rng.NormFloat64() * vol * noiseScale
		var reversion float64
		if snap.SMA20 != 0 {
			reversion = (snap.SMA20 - price) / snap.SMA20 * meanReversionScale
		}

		price *= 1 + drift + noise + reversion
		result.Predictions[i-1] = price
		result.Dates[i-1] = lastDate.AddDate(0, 0, i).Format(time.DateOnly)
	}

	return result, nil
}
