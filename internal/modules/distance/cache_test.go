package distance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"transfer/internal/modules/location"
)

func TestCacheKey(t *testing.T) {
	ctx := context.Background()
	if got := CacheKey(ctx, "Av. Paulista", "CONGONHAS"); got != "av paulista|congonhas" {
		t.Errorf("CacheKey = %q", got)
	}
	if CacheKey(ctx, "A", "B") == CacheKey(ctx, "B", "A") {
		t.Error("reverse pair should have a different key")
	}
	s1 := CacheKey(location.WithSession(ctx, "s1"), "A", "B")
	s2 := CacheKey(location.WithSession(ctx, "s2"), "A", "B")
	if s1 == s2 || s1 == CacheKey(ctx, "A", "B") {
		t.Errorf("session keys not isolated: %q %q", s1, s2)
	}
}

func TestMemoryRouteCache_ZeroTTLNeverExpires(t *testing.T) {
	c := NewMemoryRouteCache(0)
	now := time.Now()
	c.now = func() time.Time { return now }
	e := Estimate{DistanceKm: 10, Minutes: 24, Source: SourceMatrix}
	if err := c.Put(context.Background(), "a|b", e); err != nil {
		t.Fatalf("Put: %v", err)
	}
	c.now = func() time.Time { return now.Add(1000 * time.Hour) }
	if got, ok, _ := c.Get(context.Background(), "a|b"); !ok || got != e {
		t.Errorf("Get = %+v, %v", got, ok)
	}
}

func TestMemoryRouteCache_TTLExpires(t *testing.T) {
	c := NewMemoryRouteCache(time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }
	_ = c.Put(context.Background(), "a|b", Estimate{DistanceKm: 1, Minutes: 15})
	c.now = func() time.Time { return now.Add(2 * time.Minute) }
	if _, ok, _ := c.Get(context.Background(), "a|b"); ok {
		t.Error("expected entry to be expired")
	}
	if c.Len() != 0 {
		t.Error("expired entry not removed")
	}
}

func TestMemoryRouteCache_BoundedAcrossSessions(t *testing.T) {
	c := NewMemoryRouteCacheSize(0, 1000)
	p := NewProvider(Options{Cache: c}, &fakeEstimator{source: SourceMatrix, result: Estimate{DistanceKm: 10, Minutes: 20, Source: SourceMatrix}})

	for i := 0; i < 50_000; i++ {
		ctx := location.WithSession(context.Background(), fmt.Sprintf("session-%d", i))
		p.EstimateOrDefault(ctx, "Av. Paulista", "Congonhas")
	}
	if c.Len() != 1000 {
		t.Fatalf("cache entries = %d, want 1000", c.Len())
	}
	last := CacheKey(location.WithSession(context.Background(), "session-49999"), "Av. Paulista", "Congonhas")
	if _, ok, _ := c.Get(context.Background(), last); !ok {
		t.Error("most recent entry was evicted")
	}
	first := CacheKey(location.WithSession(context.Background(), "session-0"), "Av. Paulista", "Congonhas")
	if _, ok, _ := c.Get(context.Background(), first); ok {
		t.Error("oldest entry should have been evicted")
	}
}

func TestMemoryRouteCache_DefaultSize(t *testing.T) {
	c := NewMemoryRouteCache(0)
	for i := 0; i < DefaultMaxRouteEntries+10; i++ {
		_ = c.Put(context.Background(), fmt.Sprintf("k%d", i), Estimate{DistanceKm: 1, Minutes: 15})
	}
	if c.Len() != DefaultMaxRouteEntries {
		t.Errorf("cache entries = %d, want %d", c.Len(), DefaultMaxRouteEntries)
	}
}

func TestRedisRouteCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisRouteCache(client, 0)
	ctx := context.Background()
	key := CacheKey(ctx, "Avenida Paulista", "Congonhas")
	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("empty cache Get = %v, %v", ok, err)
	}
	e := Estimate{DistanceKm: 22.5, Minutes: 39, Source: SourceDirections}
	if err := c.Put(ctx, key, e); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := c.Get(ctx, CacheKey(ctx, "avenida paulista", "CONGONHAS"))
	if err != nil || !ok || got != e {
		t.Errorf("Get = %+v, %v, %v", got, ok, err)
	}
	if ttl := mr.TTL(routeKey(key)); ttl != 0 {
		t.Errorf("ttl = %s, want none", ttl)
	}
}

func TestRedisRouteCache_TTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisRouteCache(client, time.Hour)
	_ = c.Put(context.Background(), "a|b", Estimate{DistanceKm: 1, Minutes: 15})
	mr.FastForward(2 * time.Hour)
	if _, ok, _ := c.Get(context.Background(), "a|b"); ok {
		t.Error("expected entry to expire")
	}
}
