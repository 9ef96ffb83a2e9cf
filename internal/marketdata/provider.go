// Package marketdata supplies daily price series for tickers. A live Yahoo
// source is tried first; any failure or timeout falls back to a seeded random
// walk so callers always receive a usable series.
package marketdata

import (
	"context"
	"hash/fnv"
	"math/rand/v2"

	"github.com/ndewijer/FinLedge-Backend/internal/indicators"
)

// Source identifies where a Series came from.
type Source string

const (
	SourceLive      Source = "live"
	SourceSimulated Source = "simulated"
	SourceCache     Source = "cache"
)

// Series is a daily price history in ascending date order.
type Series struct {
	Ticker       string    `json:"ticker"`
	Dates        []string  `json:"dates"` // YYYY-MM-DD
	Prices       []float64 `json:"prices"`
	Volumes      []float64 `json:"volumes"`
	CurrentPrice float64   `json:"currentPrice"`
	Source       Source    `json:"source"`
}

// Returns derives the simple daily returns of the series.
func (s Series) Returns() []float64 {
	return indicators.Returns(s.Prices)
}

// Len is the number of price points.
func (s Series) Len() int {
	return len(s.Prices)
}

// Provider fetches the last days daily points of a ticker.
type Provider interface {
	Fetch(ctx context.Context, ticker string, days int) (Series, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, ticker string, days int) (Series, error)

func (f ProviderFunc) Fetch(ctx context.Context, ticker string, days int) (Series, error) {
	return f(ctx, ticker, days)
}

// SeededRand returns a generator for one use of randomness.
// With a non-zero seed the stream depends only on seed and key, so the same
// request replays identically. A zero seed draws from the runtime entropy source.
func SeededRand(seed uint64, key string) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return rand.New(rand.NewPCG(seed, h.Sum64()))
}
