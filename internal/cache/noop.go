package cache

import (
	"context"
	"time"
)

// NoopCache never stores anything; every Get is a miss.
type NoopCache struct{}

func (NoopCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (NoopCache) Get(context.Context, string, interface{}) error { return ErrCacheMiss }

func (NoopCache) Delete(context.Context, ...string) error { return nil }

func (NoopCache) Exists(context.Context, ...string) (bool, error) { return false, nil }

func (NoopCache) Close() error { return nil }
