package marketdata

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ndewijer/FinLedge-Backend/internal/cache"
)

const cacheKeyPrefix = "marketdata"

// CachedProvider keeps live series in a cache. Only SourceLive results are
// stored; simulated series are always regenerated.
type CachedProvider struct {
	next  Provider
	cache cache.Service
	ttl   time.Duration
	log   zerolog.Logger
}

// NewCachedProvider wraps next with cache c.
func NewCachedProvider(next Provider, c cache.Service, ttl time.Duration, log zerolog.Logger) *CachedProvider {
	return &CachedProvider{
		next:  next,
		cache: c,
		ttl:   ttl,
		log:   log.With().Str("component", "marketdata-cache").Logger(),
	}
}

// CacheKey is the key under which a ticker/days series is stored.
func CacheKey(ticker string, days int) string {
	return cache.GenerateKeyWithParams(cacheKeyPrefix, strings.ToUpper(strings.TrimSpace(ticker)), days)
}

func (p *CachedProvider) Fetch(ctx context.Context, ticker string, days int) (Series, error) {
	key := CacheKey(ticker, days)

	var cached Series
	err := p.cache.Get(ctx, key, &cached)
	if err == nil {
		cached.Source = SourceCache
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		p.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	series, err := p.next.Fetch(ctx, ticker, days)
	if err != nil {
		return Series{}, err
	}

	if series.Source == SourceLive {
		if err := p.cache.Set(ctx, key, series, p.ttl); err != nil {
			p.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return series, nil
}

// Refresh fetches ticker from the wrapped provider and overwrites the cache entry.
func (p *CachedProvider) Refresh(ctx context.Context, ticker string, days int) error {
	series, err := p.next.Fetch(ctx, ticker, days)
	if err != nil {
		return err
	}
	if series.Source != SourceLive {
		return nil
	}
	return p.cache.Set(ctx, CacheKey(ticker, days), series, p.ttl)
}
