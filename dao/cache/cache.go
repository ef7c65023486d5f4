package cache

import (
	"Skyline/config"
	"Skyline/pkg/log"
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// invalidateTimeout bounds a post-commit invalidation round-trip.
const invalidateTimeout = 2 * time.Second

// flightTimeout bounds a coalesced producer call shared by several waiters.
const flightTimeout = 30 * time.Second

// Cache is a read-through cache over a Store.
//
// Values may be logically stale for up to their TTL; mutations are expected to
// call Invalidate after they commit. Without SingleFlight, concurrent misses on
// one key each run the producer (stampede risk under load).
type Cache struct {
	store        Store
	singleFlight bool
	group        singleflight.Group
	logger       *zap.Logger
}

func New(store Store, conf *config.Cache) *Cache {
	c := &Cache{
		store:  store,
		logger: log.L.Named("cache"),
	}
	if conf != nil {
		c.singleFlight = conf.SingleFlight
	}
	return c
}

// NewStore picks the Store implementation named by the cache driver.
func NewStore(conf *config.Cache, rds *redis.Client) Store {
	if conf != nil && conf.Driver == config.CacheDriverMemory {
		return NewMemoryStore()
	}
	return NewRedisStore(rds)
}

// Wrap returns the cached value for key, or runs producer and caches its
// result for ttl.
//
// A lookup failure degrades to calling producer directly and returning its
// result uncached. A failure to store is logged and swallowed. Producer errors
// are returned unchanged and nothing is cached. Nil results are not cached.
func Wrap[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, producer func(ctx context.Context) (T, error)) (T, error) {
	if !c.singleFlight {
		return wrap(ctx, c, key, ttl, producer)
	}

	// The shared call outlives any single waiter; each waiter still honors
	// its own ctx.
	ch := c.group.DoChan(key, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flightTimeout)
		defer cancel()
		return wrap(fctx, c, key, ttl, producer)
	})
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r := <-ch:
		res, _ := r.Val.(T)
		return res, r.Err
	}
}

func wrap[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, producer func(ctx context.Context) (T, error)) (T, error) {
	raw, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var cached T
		derr := json.Unmarshal(raw, &cached)
		if derr == nil {
			cacheHitsTotal.Inc()
			c.logger.Debug("cache hit", zap.String("key", key))
			return cached, nil
		}
		cacheErrorsTotal.WithLabelValues("decode").Inc()
		c.logger.Warn("cache payload undecodable, refetching", zap.String("key", key), zap.Error(derr))
	case errors.Is(err, ErrMiss):
	default:
		cacheErrorsTotal.WithLabelValues("get").Inc()
		c.logger.Warn("cache lookup failed, fetching directly", zap.String("key", key), zap.Error(err))
		return producer(ctx)
	}

	cacheMissesTotal.Inc()
	c.logger.Debug("cache miss", zap.String("key", key))

	v, err := producer(ctx)
	if err != nil || isNil(v) {
		return v, err
	}

	payload, err := json.Marshal(v)
	if err != nil {
		cacheErrorsTotal.WithLabelValues("encode").Inc()
		c.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return v, nil
	}
	if err := c.store.Set(ctx, key, payload, ttl); err != nil {
		cacheErrorsTotal.WithLabelValues("set").Inc()
		c.logger.Warn("cache store failed", zap.String("key", key), zap.Error(err))
	}
	return v, nil
}

// Invalidate deletes every key named by patterns. A pattern containing '*'
// is resolved to the matching keys at call time; anything else is an exact
// key. Failures are logged only.
//
// The deletion runs on a context detached from ctx's cancellation so a
// client disconnect after commit cannot skip it.
func (c *Cache) Invalidate(ctx context.Context, patterns ...string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), invalidateTimeout)
	defer cancel()

	iter.ForEach(patterns, func(pattern *string) {
		c.invalidate(ctx, *pattern)
	})
}

func (c *Cache) invalidate(ctx context.Context, pattern string) {
	keys := []string{pattern}
	if strings.Contains(pattern, "*") {
		var err error
		keys, err = c.store.Keys(ctx, pattern)
		if err != nil {
			cacheErrorsTotal.WithLabelValues("keys").Inc()
			c.logger.Error("cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
			return
		}
	}
	if len(keys) == 0 {
		return
	}

	if err := c.store.Del(ctx, keys...); err != nil {
		cacheErrorsTotal.WithLabelValues("del").Inc()
		c.logger.Error("cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
		return
	}
	c.logger.Info("cache invalidated", zap.String("pattern", pattern), zap.Int("keys", len(keys)))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
