package marketdata

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Refresher is implemented by providers that can rewrite their cache entry.
type Refresher interface {
	Refresh(ctx context.Context, ticker string, days int) error
}

// Prefetcher periodically refreshes cached live series for a fixed ticker list.
type Prefetcher struct {
	cron      *cron.Cron
	refresher Refresher
	tickers   []string
	days      int
	timeout   time.Duration
	log       zerolog.Logger
}

// NewPrefetcher creates a Prefetcher. Schedule uses the standard five field
// cron syntax or descriptors such as "@every 30m".
func NewPrefetcher(refresher Refresher, schedule string, tickers []string, days int, timeout time.Duration, log zerolog.Logger) (*Prefetcher, error) {
	p := &Prefetcher{
		cron:      cron.New(),
		refresher: refresher,
		tickers:   tickers,
		days:      days,
		timeout:   timeout,
		log:       log.With().Str("component", "prefetcher").Logger(),
	}

	if _, err := p.cron.AddFunc(schedule, p.RunOnce); err != nil {
		return nil, fmt.Errorf("register prefetch schedule %q: %w", schedule, err)
	}
	return p, nil
}

// Start starts the cron scheduler.
func (p *Prefetcher) Start() {
	p.cron.Start()
	p.log.Info().Strs("tickers", p.tickers).Msg("prefetcher started")
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (p *Prefetcher) Stop() {
	<-p.cron.Stop().Done()
	p.log.Info().Msg("prefetcher stopped")
}

// RunOnce refreshes every configured ticker sequentially.
func (p *Prefetcher) RunOnce() {
	refreshed := 0
	for _, ticker := range p.tickers {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		err := p.refresher.Refresh(ctx, ticker, p.days)
		cancel()
		if err != nil {
			p.log.Warn().Err(err).Str("ticker", ticker).Msg("prefetch failed")
			continue
		}
		refreshed++
	}
	p.log.Debug().Int("refreshed", refreshed).Int("total", len(p.tickers)).Msg("prefetch run complete")
}
