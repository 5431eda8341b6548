package mocks

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// InMemoryCache misses on every read so end-to-end tests always exercise the
// full fetch path.
type InMemoryCache struct{}

func (c *InMemoryCache) Get(ctx context.Context, key string, dest any) error {
	return redis.Nil
}

func (c *InMemoryCache) Set(ctx context.Context, key string, value any, exp time.Duration) error {
	return nil
}

func (c *InMemoryCache) Delete(ctx context.Context, keys ...string) error {
	return nil
}

func (c *InMemoryCache) Close() error {
	return nil
}
