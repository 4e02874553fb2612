package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/matratecnologia/site-backend/pkg/logging"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(rdb, time.Minute, logging.Default()), mr
}

func TestCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "products:active"); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Set(ctx, "products:active", []byte(`[{"id":"1"}]`))
	data, ok := c.Get(ctx, "products:active")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(data) != `[{"id":"1"}]` {
		t.Fatalf("unexpected payload: %s", data)
	}
}

func TestCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "products:active", []byte("x"))
	mr.FastForward(2 * time.Minute)

	if _, ok := c.Get(ctx, "products:active"); ok {
		t.Fatal("expected miss after TTL")
	}
}

func TestCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "products:active", []byte("a"))
	c.Set(ctx, "products:all", []byte("b"))
	c.Invalidate(ctx, "products:active", "products:all")

	if _, ok := c.Get(ctx, "products:active"); ok {
		t.Fatal("expected invalidated key to miss")
	}
	if _, ok := c.Get(ctx, "products:all"); ok {
		t.Fatal("expected invalidated key to miss")
	}
}

func TestNilCacheIsNoop(t *testing.T) {
	var c *Cache
	ctx := context.Background()
	c.Set(ctx, "k", []byte("v"))
	c.Invalidate(ctx, "k")
	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("nil cache must always miss")
	}
}

func TestNewWithoutClient(t *testing.T) {
	if New(nil, time.Minute, nil) != nil {
		t.Fatal("expected nil cache without a redis client")
	}
}
