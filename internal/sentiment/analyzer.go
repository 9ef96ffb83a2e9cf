package sentiment

import (
	"context"
	"fmt"
	"time"

	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
	"github.com/ndewijer/FinLedge-Backend/internal/config"
	"github.com/ndewijer/FinLedge-Backend/internal/marketdata"
)

// maxHeadlines is the number of headlines surfaced in a report.
const maxHeadlines = 4

// Report is a complete sentiment backtest over aligned days.
type Report struct {
	Ticker      string
	Dates       []string
	Prices      []float64
	Scores      []float64
	NewsVolume  []int
	Signals     []Signal
	Accuracy    float64
	Correlation float64
	Performance Performance
	Headlines   []string
	PriceSource marketdata.Source
}

// Predictions returns the 0/1 direction of every signal.
func (r Report) Predictions() []int {
	out := make([]int, len(r.Signals))
	for i, s := range r.Signals {
		out[i] = s.Prediction()
	}
	return out
}

// Labels returns the label of every signal.
func (r Report) Labels() []string {
	out := make([]string, len(r.Signals))
	for i, s := range r.Signals {
		out[i] = s.Label
	}
	return out
}

// Analyzer pairs generated sentiment with provider prices.
type Analyzer struct {
	provider  marketdata.Provider
	generator *Generator
	seed      uint64
}

// NewAnalyzer creates an Analyzer. A zero seed makes generated sentiment random.
func NewAnalyzer(provider marketdata.Provider, table *config.TickerTable, seed uint64) *Analyzer {
	return &Analyzer{
		provider:  provider,
		generator: NewGenerator(table),
		seed:      seed,
	}
}

// Analyze generates sentiment for the period, fetches the same number of
// daily prices, aligns both to their common length and backtests the
// sentiment strategy with investment.
func (a *Analyzer) Analyze(ctx context.Context, ticker string, start, end time.Time, investment float64) (Report, error) {
	if end.Before(start) {
		return Report{}, apperrors.ErrInvalidDateRange
	}

	key := fmt.Sprintf("sentiment:%s:%s:%s", ticker, start.Format(time.DateOnly), end.Format(time.DateOnly))
	generated := a.generator.Generate(ticker, start, end, marketdata.SeededRand(a.seed, key))

	prices, err := a.provider.Fetch(ctx, ticker, len(generated.Dates))
	if err != nil {
		return Report{}, fmt.Errorf("fetch prices for %s: %w", ticker, err)
	}

	n := min(len(generated.Dates), prices.Len())
	scores := generated.Scores[:n]
	aligned := prices.Prices[:n]
	signals := Signals(scores)

	return Report{
		Ticker:      ticker,
		Dates:       generated.Dates[:n],
		Prices:      aligned,
		Scores:      scores,
		NewsVolume:  generated.NewsVolume[:n],
		Signals:     signals,
		Accuracy:    Accuracy(signals, aligned),
		Correlation: Correlation(scores, aligned),
		Performance: Backtest(signals, aligned, investment),
		Headlines:   generated.Headlines[:min(len(generated.Headlines), maxHeadlines)],
		PriceSource: prices.Source,
	}, nil
}
