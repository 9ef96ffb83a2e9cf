package marketdata

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
	"github.com/ndewijer/FinLedge-Backend/internal/yahoo"
)

// ChartClient is the subset of the Yahoo client used by LiveProvider.
type ChartClient interface {
	QuerySymbolByRange(ctx context.Context, symbol, rng string) (yahoo.Response, error)
}

// LiveProvider reads daily closes from Yahoo Finance.
type LiveProvider struct {
	client ChartClient
}

// NewLiveProvider creates a provider backed by client.
func NewLiveProvider(client ChartClient) *LiveProvider {
	return &LiveProvider{client: client}
}

// Fetch returns at most the last days points of ticker. A series with fewer
// than two usable closes is reported as ErrDataUnavailable.
func (p *LiveProvider) Fetch(ctx context.Context, ticker string, days int) (Series, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	resp, err := p.client.QuerySymbolByRange(ctx, ticker, yahoo.RangeForDays(days))
	if err != nil {
		return Series{}, fmt.Errorf("query %s: %w", ticker, err)
	}

	chart, err := yahoo.ParseChart(resp)
	if err != nil {
		return Series{}, fmt.Errorf("parse %s: %w", ticker, err)
	}

	bars := chart.Bars
	if days > 0 && len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	if len(bars) < 2 {
		return Series{}, fmt.Errorf("%w: %s returned %d bars", apperrors.ErrDataUnavailable, ticker, len(bars))
	}

	series := Series{
		Ticker:  ticker,
		Dates:   make([]string, len(bars)),
		Prices:  make([]float64, len(bars)),
		Volumes: make([]float64, len(bars)),
		Source:  SourceLive,
	}
	for i, bar := range bars {
		series.Dates[i] = bar.Date.Format(time.DateOnly)
		series.Prices[i] = bar.Close
		series.Volumes[i] = float64(bar.Volume)
	}
	series.CurrentPrice = series.Prices[len(series.Prices)-1]

	return series, nil
}
