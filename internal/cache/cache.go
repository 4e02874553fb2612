// Package cache is a best-effort Redis cache for public content
// responses. A cache failure never fails the request it serves.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matratecnologia/site-backend/pkg/logging"
)

// Cache stores serialized responses under string keys with a TTL.
// A nil *Cache is a no-op, so handlers can run without Redis.
type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

// New creates a cache over the given Redis client.
func New(rdb *redis.Client, ttl time.Duration, logger *logging.Logger) *Cache {
	if rdb == nil {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Cache{rdb: rdb, ttl: ttl, logger: logger}
}

// Get returns the cached payload for key, if present.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return data, true
}

// Set stores payload under key for the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", "key", key, "error", err)
	}
}

// Invalidate drops the given keys after an admin write.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("cache invalidate failed", "keys", keys, "error", err)
	}
}
