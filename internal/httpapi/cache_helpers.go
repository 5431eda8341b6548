package httpapi

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type fetchFunc[T any] func(ctx context.Context) (T, error)

const (
	backgroundFetchTimeout = 15 * time.Second
	cacheSetTimeout        = 5 * time.Second

	evaluationKeyPrefix = "evaluation:"
	statsKey            = "evaluation:stats"
)

func evaluationKey(id string) string {
	return evaluationKeyPrefix + id
}

// cacheLayer wraps a Cacher with read-through and refresh-ahead semantics.
// Concurrent misses for the same key collapse into a single fetch.
type cacheLayer struct {
	cache  Cacher
	sf     singleflight.Group
	ttl    time.Duration
	logger *zap.Logger
}

func newCacheLayer(cache Cacher, ttl time.Duration, logger *zap.Logger) *cacheLayer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cacheLayer{cache: cache, ttl: ttl, logger: logger}
}

// jitteredTTL spreads expirations by up to ±15s to avoid mass eviction.
func (cl *cacheLayer) jitteredTTL() time.Duration {
	if cl.ttl <= 0 {
		return cl.ttl
	}
	return cl.ttl + time.Duration(rand.Intn(30)-15)*time.Second
}

func (cl *cacheLayer) store(key string, value any) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheSetTimeout)
	defer cancel()

	ttl := cl.jitteredTTL()
	if err := cl.cache.Set(ctx, key, value, ttl); err != nil {
		cl.logger.Warn("failed to store cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	cl.logger.Debug("cache entry stored", zap.String("key", key), zap.Duration("ttl", ttl))
}

func (cl *cacheLayer) invalidate(keys ...string) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheSetTimeout)
	defer cancel()

	if err := cl.cache.Delete(ctx, keys...); err != nil {
		cl.logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

// refreshAhead re-fetches a key that just served a hit so hot entries never
// expire under load. The singleflight suffix keeps concurrent hits from
// stacking refreshes.
func refreshAhead[T any](cl *cacheLayer, key string, fn fetchFunc[T]) {
	go func() {
		time.Sleep(time.Duration(rand.Intn(1000)) * time.Millisecond)

		_, _, _ = cl.sf.Do(key+":refresh", func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), backgroundFetchTimeout)
			defer cancel()

			value, err := fn(ctx)
			if err != nil {
				cl.logger.Warn("background refresh failed", zap.String("key", key), zap.Error(err))
				return nil, err
			}
			cl.store(key, value)
			return value, nil
		})
	}()
}

// findAndCache returns the cached value for key when present, otherwise
// fetches it and populates the cache off the request path.
func findAndCache[T any](ctx context.Context, cl *cacheLayer, key string, fn fetchFunc[T]) (T, error) {
	var zero T

	var cached T
	err := cl.cache.Get(ctx, key, &cached)
	switch {
	case err == nil:
		cl.logger.Debug("cache hit", zap.String("key", key))
		refreshAhead(cl, key, fn)
		return cached, nil

	case errors.Is(err, redis.Nil):
		cl.logger.Debug("cache miss", zap.String("key", key))

	default:
		cl.logger.Warn("cache get error (treating as miss)", zap.String("key", key), zap.Error(err))
	}

	v, err, _ := cl.sf.Do(key, func() (any, error) {
		value, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		go cl.store(key, value)
		return value, nil
	})
	if err != nil {
		return zero, err
	}

	value, ok := v.(T)
	if !ok {
		cl.logger.Error("singleflight type mismatch", zap.String("key", key))
		return zero, fmt.Errorf("type mismatch for key %q", key)
	}
	return value, nil
}
