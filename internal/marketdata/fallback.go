package marketdata

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ndewijer/FinLedge-Backend/internal/metrics"
)

// FallbackProvider tries primary under a per-fetch timeout and serves the
// fallback series when it fails for any reason.
type FallbackProvider struct {
	primary  Provider
	fallback Provider
	timeout  time.Duration
	log      zerolog.Logger
}

// NewFallbackProvider creates a FallbackProvider. A nil primary always simulates.
func NewFallbackProvider(primary, fallback Provider, timeout time.Duration, log zerolog.Logger) *FallbackProvider {
	return &FallbackProvider{
		primary:  primary,
		fallback: fallback,
		timeout:  timeout,
		log:      log.With().Str("component", "marketdata").Logger(),
	}
}

// Fetch never returns an error from the primary source. It only fails when the
// caller's own context is done or the fallback itself fails.
func (p *FallbackProvider) Fetch(ctx context.Context, ticker string, days int) (Series, error) {
	if p.primary != nil {
		series, err := p.fetchPrimary(ctx, ticker, days)
		if err == nil {
			metrics.MarketDataFetches.WithLabelValues(string(series.Source)).Inc()
			return series, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Series{}, ctxErr
		}

		reason := "error"
		if errors.Is(err, context.DeadlineExceeded) {
			reason = "timeout"
		}
		metrics.MarketDataFallbacks.WithLabelValues(reason).Inc()
		p.log.Warn().Err(err).Str("ticker", ticker).Str("reason", reason).Msg("live market data unavailable, using simulation")
	}

	series, err := p.fallback.Fetch(ctx, ticker, days)
	if err != nil {
		return Series{}, err
	}
	metrics.MarketDataFetches.WithLabelValues(string(series.Source)).Inc()
	return series, nil
}

func (p *FallbackProvider) fetchPrimary(ctx context.Context, ticker string, days int) (Series, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return p.primary.Fetch(ctx, ticker, days)
}
