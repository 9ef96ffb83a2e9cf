package sentiment

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
	"github.com/ndewijer/FinLedge-Backend/internal/config"
	"github.com/ndewijer/FinLedge-Backend/internal/marketdata"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tickerTable(t *testing.T) *config.TickerTable {
	t.Helper()
	table, err := config.LoadTickerTable("")
	require.NoError(t, err)
	return table
}

func TestPeriodDays(t *testing.T) {
	assert.Equal(t, 30, PeriodDays(day("2024-01-01"), day("2024-01-31")))
	assert.Equal(t, MaxDays, PeriodDays(day("2024-01-01"), day("2024-12-31")))
	assert.Equal(t, 2, PeriodDays(day("2024-01-01"), day("2024-01-01")))
}

func TestEventInfluence(t *testing.T) {
	// total 100: events at days 20, 40, 60, 80
	assert.InDelta(t, 0.15, EventInfluence(20, 100), 1e-12)
	assert.InDelta(t, 0.075, EventInfluence(21, 100), 1e-12)
	assert.InDelta(t, 0.0, EventInfluence(22, 100), 1e-12)
	assert.InDelta(t, -0.08, EventInfluence(40, 100), 1e-12)
	assert.InDelta(t, 0.06, EventInfluence(59, 100), 1e-12)
	assert.Equal(t, 0.0, EventInfluence(10, 100))
}

func TestGenerate(t *testing.T) {
	g := NewGenerator(tickerTable(t))
	start, end := day("2024-03-01"), day("2024-04-15")

	s := g.Generate("TCS.NS", start, end, rand.New(rand.NewPCG(1, 2)))

	require.Len(t, s.Dates, 45)
	assert.Len(t, s.Scores, 45)
	assert.Len(t, s.NewsVolume, 45)
	assert.Len(t, s.Headlines, 7, "one headline every seventh day")
	assert.Equal(t, "2024-03-01", s.Dates[0])
	assert.Equal(t, "2024-04-14", s.Dates[44])

	for i, score := range s.Scores {
		assert.GreaterOrEqual(t, score, 0.0, "day %d", i)
		assert.LessOrEqual(t, score, 1.0, "day %d", i)
	}
	for _, v := range s.NewsVolume {
		assert.GreaterOrEqual(t, v, 5)
		assert.LessOrEqual(t, v, 23)
	}
	for _, h := range s.Headlines {
		assert.Contains(t, h, "Tata Consultancy Services")
	}

	again := g.Generate("TCS.NS", start, end, rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, s, again)
}

func TestHeadline(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	contains := func(templates []string, h string) bool {
		for _, tpl := range templates {
			if strings.Replace(tpl, "%s", "Infosys", 1) == h {
				return true
			}
		}
		return false
	}

	assert.True(t, contains(positiveTemplates, Headline("Infosys", 0.8, rng)))
	assert.True(t, contains(negativeTemplates, Headline("Infosys", 0.2, rng)))
	assert.True(t, contains(neutralTemplates, Headline("Infosys", 0.5, rng)))
	assert.True(t, contains(neutralTemplates, Headline("Infosys", 0.7, rng)))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		score  float64
		change float64
		want   Signal
	}{
		{"strong buy", 0.7, 0.06, Signal{LabelStrongBuy, Buy}},
		{"high but flat is buy", 0.7, 0.0, Signal{LabelBuy, Buy}},
		{"buy", 0.56, -0.2, Signal{LabelBuy, Buy}},
		{"strong sell", 0.3, -0.06, Signal{LabelStrongSell, Sell}},
		{"low but flat is sell", 0.3, 0.0, Signal{LabelSell, Sell}},
		{"sell", 0.44, 0.1, Signal{LabelSell, Sell}},
		{"hold band", 0.5, 0.3, Signal{LabelHold, Hold}},
		{"hold upper edge", 0.55, 0, Signal{LabelHold, Hold}},
		{"hold lower edge", 0.45, 0, Signal{LabelHold, Hold}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.score, tt.change))
		})
	}
}

func TestSignals_Deterministic(t *testing.T) {
	scores := []float64{0.5, 0.5, 0.5, 0.5}
	signals := Signals(scores)
	require.Len(t, signals, 3)
	for _, s := range signals {
		assert.Equal(t, Hold, s.Action)
		assert.Equal(t, 0, s.Prediction())
	}
	assert.Nil(t, Signals([]float64{0.5}))
}

func TestBacktest(t *testing.T) {
	buy := Signal{LabelBuy, Buy}
	sell := Signal{LabelSell, Sell}
	hold := Signal{LabelHold, Hold}

	t.Run("round trip", func(t *testing.T) {
		prices := []float64{100, 110, 121, 115, 120}
		signals := []Signal{buy, hold, sell, hold}

		p := Backtest(signals, prices, 1000)
		// long for +10%, +10%, then exits on the -4.96% day
		assert.InDelta(t, 21.0, p.StrategyReturn, 1e-9)
		assert.InDelta(t, 20.0, p.HoldReturn, 1e-9)
		assert.InDelta(t, 1.0, p.Outperformance, 1e-9)
		assert.Equal(t, 2, p.TotalTrades)
		assert.Equal(t, 0, p.WinningTrades)
		assert.Equal(t, 0.0, p.WinRate)
	})

	t.Run("winning exit", func(t *testing.T) {
		p := Backtest([]Signal{buy, sell}, []float64{100, 105, 110}, 1000)
		assert.Equal(t, 2, p.TotalTrades)
		assert.Equal(t, 1, p.WinningTrades)
		assert.InDelta(t, 50.0, p.WinRate, 1e-12)
	})

	t.Run("hold never trades", func(t *testing.T) {
		p := Backtest([]Signal{hold, hold, hold}, []float64{100, 90, 80, 120}, 1000)
		assert.Equal(t, 0, p.TotalTrades)
		assert.Equal(t, 0.0, p.StrategyReturn)
		assert.InDelta(t, 20.0, p.HoldReturn, 1e-9)
	})

	t.Run("flat prices", func(t *testing.T) {
		p := Backtest([]Signal{buy, hold, sell, buy}, []float64{50, 50, 50, 50, 50}, 1000)
		assert.InDelta(t, 0.0, p.Outperformance, 1e-12)
		assert.Equal(t, 0, p.WinningTrades)
		assert.Equal(t, 0.0, p.WinRate)
	})

	t.Run("no trades has zero win rate", func(t *testing.T) {
		p := Backtest(nil, []float64{50, 50}, 1000)
		assert.Equal(t, 0, p.TotalTrades)
		assert.Equal(t, 0.0, p.WinRate)
	})
}

func TestCorrelation(t *testing.T) {
	t.Run("perfectly aligned", func(t *testing.T) {
		prices := []float64{100, 101, 100, 102, 101}
		scores := make([]float64, len(prices))
		scores[0] = 0.5
		for i := 1; i < len(prices); i++ {
			scores[i] = scores[i-1] + (prices[i]-prices[i-1])/prices[i-1]
		}
		assert.InDelta(t, 1.0, Correlation(scores, prices), 1e-9)
	})

	t.Run("flat prices fall back to default", func(t *testing.T) {
		assert.Equal(t, DefaultCorrelation, Correlation([]float64{0.4, 0.6, 0.5, 0.7}, []float64{10, 10, 10, 10}))
	})

	t.Run("too short", func(t *testing.T) {
		assert.Equal(t, DefaultCorrelation, Correlation([]float64{0.5, 0.6}, []float64{1, 2}))
	})

	t.Run("bounded", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(4, 4))
		scores := make([]float64, 40)
		prices := make([]float64, 40)
		for i := range scores {
			scores[i] = rng.Float64()
			prices[i] = 100 + rng.Float64()*10
		}
		c := Correlation(scores, prices)
		assert.GreaterOrEqual(t, c, -1.0)
		assert.LessOrEqual(t, c, 1.0)
	})
}

func TestAccuracy(t *testing.T) {
	buy := Signal{LabelBuy, Buy}
	hold := Signal{LabelHold, Hold}

	assert.Equal(t, DefaultAccuracy, Accuracy(nil, []float64{1, 2}))
	// up, down, flat
	assert.InDelta(t, 1.0, Accuracy([]Signal{buy, hold, hold}, []float64{10, 11, 10, 10}), 1e-12)
	assert.InDelta(t, 1.0/3, Accuracy([]Signal{hold, hold, buy}, []float64{10, 11, 10, 10}), 1e-12)
}

func TestInsights(t *testing.T) {
	t.Run("overall sentiment bands", func(t *testing.T) {
		assert.Equal(t, "Very Positive", OverallSentiment([]float64{0.7, 0.8}))
		assert.Equal(t, "Positive", OverallSentiment([]float64{0.6}))
		assert.Equal(t, "Slightly Positive", OverallSentiment([]float64{0.56}))
		assert.Equal(t, "Neutral", OverallSentiment([]float64{0.5}))
		assert.Equal(t, "Slightly Negative", OverallSentiment([]float64{0.42}))
		assert.Equal(t, "Negative", OverallSentiment([]float64{0.3}))
		assert.Equal(t, "Very Negative", OverallSentiment([]float64{0.1}))
		assert.Equal(t, "Neutral", OverallSentiment(nil))
	})

	t.Run("trend analysis", func(t *testing.T) {
		text := TrendAnalysis([]float64{0.4, 0.5, 0.6}, 0.55)
		assert.Equal(t, "Sentiment shows a positive trend over the analysis period. "+
			"There is a strong correlation (0.55) between sentiment and price movements. "+
			"Sentiment analysis can be a valuable indicator for this stock.", text)

		text = TrendAnalysis([]float64{0.5, 0.52}, -0.35)
		assert.Contains(t, text, "stable trend")
		assert.Contains(t, text, "moderate correlation (-0.35)")
		assert.Contains(t, text, "factors beyond news sentiment")
	})

	t.Run("key insights", func(t *testing.T) {
		insights := KeyInsights(Performance{Outperformance: 3, WinRate: 70}, 0.7, 0.6)
		assert.Equal(t, []string{
			"Sentiment-based strategy significantly outperformed buy-and-hold",
			"Model shows good predictive accuracy for price direction",
			"Strong correlation between sentiment and price movements detected",
			"High win rate indicates consistent trading opportunities",
		}, insights)

		insights = KeyInsights(Performance{Outperformance: -5}, 0.5, 0.1)
		require.Len(t, insights, 3)
		assert.Equal(t, "Buy-and-hold strategy outperformed sentiment-based trading", insights[0])
	})
}

func TestAnalyzer(t *testing.T) {
	table := tickerTable(t)

	t.Run("aligns to the shorter series", func(t *testing.T) {
		provider := marketdata.ProviderFunc(func(_ context.Context, ticker string, days int) (marketdata.Series, error) {
			prices := make([]float64, days-5)
			for i := range prices {
				prices[i] = 100 + float64(i)
			}
			return marketdata.Series{Ticker: ticker, Prices: prices, Source: marketdata.SourceLive}, nil
		})
		a := NewAnalyzer(provider, table, 17)

		report, err := a.Analyze(context.Background(), "INFY.NS", day("2024-01-01"), day("2024-01-31"), 100000)
		require.NoError(t, err)

		assert.Len(t, report.Dates, 25)
		assert.Len(t, report.Prices, 25)
		assert.Len(t, report.Scores, 25)
		assert.Len(t, report.NewsVolume, 25)
		assert.Len(t, report.Signals, 24)
		assert.Len(t, report.Predictions(), 24)
		assert.Len(t, report.Labels(), 24)
		assert.LessOrEqual(t, len(report.Headlines), 4)
		assert.Equal(t, marketdata.SourceLive, report.PriceSource)
		assert.InDelta(t, 24.0, report.Performance.HoldReturn, 1e-9)
	})

	t.Run("flat prices", func(t *testing.T) {
		provider := marketdata.ProviderFunc(func(_ context.Context, ticker string, days int) (marketdata.Series, error) {
			prices := make([]float64, days)
			for i := range prices {
				prices[i] = 250
			}
			return marketdata.Series{Ticker: ticker, Prices: prices, Source: marketdata.SourceSimulated}, nil
		})
		a := NewAnalyzer(provider, table, 5)

		report, err := a.Analyze(context.Background(), "TCS.NS", day("2024-02-01"), day("2024-03-15"), 50000)
		require.NoError(t, err)

		assert.InDelta(t, 0.0, report.Performance.Outperformance, 1e-12)
		assert.Equal(t, 0, report.Performance.WinningTrades)
		assert.Equal(t, 0.0, report.Performance.WinRate)
		assert.Equal(t, DefaultCorrelation, report.Correlation)
	})

	t.Run("seeded runs are identical", func(t *testing.T) {
		provider := marketdata.ProviderFunc(func(_ context.Context, ticker string, days int) (marketdata.Series, error) {
			prices := make([]float64, days)
			for i := range prices {
				prices[i] = 100 + float64(i%3)
			}
			return marketdata.Series{Ticker: ticker, Prices: prices}, nil
		})
		a := NewAnalyzer(provider, table, 21)

		r1, err := a.Analyze(context.Background(), "ITC.NS", day("2024-05-01"), day("2024-06-01"), 1000)
		require.NoError(t, err)
		r2, err := a.Analyze(context.Background(), "ITC.NS", day("2024-05-01"), day("2024-06-01"), 1000)
		require.NoError(t, err)
		assert.Equal(t, r1, r2)
	})

	t.Run("invalid range", func(t *testing.T) {
		a := NewAnalyzer(marketdata.ProviderFunc(nil), table, 1)
		_, err := a.Analyze(context.Background(), "ITC.NS", day("2024-06-01"), day("2024-05-01"), 1000)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidDateRange))
	})

	t.Run("provider error", func(t *testing.T) {
		provider := marketdata.ProviderFunc(func(context.Context, string, int) (marketdata.Series, error) {
			return marketdata.Series{}, context.Canceled
		})
		a := NewAnalyzer(provider, table, 1)
		_, err := a.Analyze(context.Background(), "ITC.NS", day("2024-05-01"), day("2024-06-01"), 1000)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
