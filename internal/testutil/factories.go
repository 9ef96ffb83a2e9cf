package testutil

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/ndewijer/FinLedge-Backend/internal/marketdata"
)

// SeriesBuilder provides a fluent interface for building price series in tests.
type SeriesBuilder struct {
	ticker string
	start  time.Time
	prices []float64
	source marketdata.Source
}

// NewSeries creates a builder for ticker with 60 days of prices rising by 1
// from 100, dated from 2025-01-01.
func NewSeries(ticker string) *SeriesBuilder {
	return (&SeriesBuilder{
		ticker: ticker,
		start:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		source: marketdata.SourceLive,
	}).Rising(60, 100, 1)
}

// WithPrices sets explicit prices.
func (b *SeriesBuilder) WithPrices(prices ...float64) *SeriesBuilder {
	b.prices = append([]float64(nil), prices...)
	return b
}

// Rising sets n prices growing linearly from start by step per day.
func (b *SeriesBuilder) Rising(n int, start, step float64) *SeriesBuilder {
	b.prices = make([]float64, n)
	for i := range b.prices {
		b.prices[i] = start + float64(i)*step
	}
	return b
}

// Flat sets n identical prices.
func (b *SeriesBuilder) Flat(n int, price float64) *SeriesBuilder {
	return b.Rising(n, price, 0)
}

// Wave sets n prices oscillating around base with the given amplitude, a
// series with non-zero variance but no trend.
func (b *SeriesBuilder) Wave(n int, base, amplitude float64) *SeriesBuilder {
	b.prices = make([]float64, n)
	for i := range b.prices {
		b.prices[i] = base + amplitude*math.Sin(float64(i)/3)
	}
	return b
}

// WithSource sets the reported source.
func (b *SeriesBuilder) WithSource(source marketdata.Source) *SeriesBuilder {
	b.source = source
	return b
}

// Build returns the series with consecutive daily dates and constant volume.
func (b *SeriesBuilder) Build() marketdata.Series {
	s := marketdata.Series{
		Ticker:  b.ticker,
		Dates:   make([]string, len(b.prices)),
		Prices:  append([]float64(nil), b.prices...),
		Volumes: make([]float64, len(b.prices)),
		Source:  b.source,
	}
	for i := range b.prices {
		s.Dates[i] = b.start.AddDate(0, 0, i).Format(time.DateOnly)
		s.Volumes[i] = 1_000_000
	}
	if len(b.prices) > 0 {
		s.CurrentPrice = b.prices[len(b.prices)-1]
	}
	return s
}

// StaticProvider serves fixed series by ticker and records every fetch.
// Requests for fewer days than a series holds get its most recent points.
type StaticProvider struct {
	mu     sync.Mutex
	series map[string]marketdata.Series
	err    error
	calls  []string
}

// NewStaticProvider creates a provider serving series keyed by their ticker.
func NewStaticProvider(series ...marketdata.Series) *StaticProvider {
	p := &StaticProvider{series: make(map[string]marketdata.Series, len(series))}
	for _, s := range series {
		p.series[strings.ToUpper(s.Ticker)] = s
	}
	return p
}

// WithError makes every fetch fail with err.
func (p *StaticProvider) WithError(err error) *StaticProvider {
	p.err = err
	return p
}

// Fetch implements marketdata.Provider.
func (p *StaticProvider) Fetch(ctx context.Context, ticker string, days int) (marketdata.Series, error) {
	p.mu.Lock()
	p.calls = append(p.calls, ticker)
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return marketdata.Series{}, err
	}
	if p.err != nil {
		return marketdata.Series{}, p.err
	}

	s, ok := p.series[strings.ToUpper(ticker)]
	if !ok {
		return marketdata.Series{}, fmt.Errorf("no series for %s", ticker)
	}
	if days > 0 && days < s.Len() {
		cut := s.Len() - days
		s.Dates = s.Dates[cut:]
		s.Prices = s.Prices[cut:]
		s.Volumes = s.Volumes[cut:]
	}
	return s, nil
}

// Calls returns the tickers fetched so far, in call order.
func (p *StaticProvider) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}
