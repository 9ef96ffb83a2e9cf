package marketdata

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/ndewijer/FinLedge-Backend/internal/config"
)

// floorFraction bounds how far a simulated price may fall relative to its base price.
const floorFraction = 0.3

// Simulator generates a multiplicative random walk per ticker from the ticker table.
type Simulator struct {
	table *config.TickerTable
	seed  uint64
	now   func() time.Time
}

// SimulatorOption configures a Simulator.
type SimulatorOption func(*Simulator)

// WithClock replaces time.Now, used to pin simulated dates in tests.
func WithClock(now func() time.Time) SimulatorOption {
	return func(s *Simulator) {
		s.now = now
	}
}

// NewSimulator creates a simulator. A zero seed makes every series random.
func NewSimulator(table *config.TickerTable, seed uint64, opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		table: table,
		seed:  seed,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch simulates days daily points ending yesterday.
//
//	price[i] = max(price[i-1] * (1 + (u-0.5)*volatility + trend*(i/days)*0.001), 0.3*basePrice)
func (s *Simulator) Fetch(_ context.Context, ticker string, days int) (Series, error) {
	if days < 2 {
		days = 2
	}
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	profile := s.table.Profile(ticker)
	rng := SeededRand(s.seed, "prices:"+ticker)

	start := s.now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -days)
	floor := profile.BasePrice * floorFraction

	dates := make([]string, days)
	prices := make([]float64, days)
	volumes := make([]float64, days)

	prices[0] = profile.BasePrice
	for i := 0; i < days; i++ {
		dates[i] = start.AddDate(0, 0, i).Format(time.DateOnly)

		if i > 0 {
			randomFactor := (rng.Float64() - 0.5) * profile.Volatility
			trendFactor := profile.Trend * (float64(i) / float64(days)) * 0.001
			prices[i] = math.Max(prices[i-1]*(1+randomFactor+trendFactor), floor)
		}

		volumes[i] = math.Floor(1_000_000 + rng.Float64()*2_000_000)
	}

	return Series{
		Ticker:       ticker,
		Dates:        dates,
		Prices:       prices,
		Volumes:      volumes,
		CurrentPrice: prices[days-1],
		Source:       SourceSimulated,
	}, nil
}
