package distance

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"

	"transfer/internal/modules/location"
)

// RouteCache memoizes estimates by CacheKey. A zero TTL means entries never
// expire by age.
type RouteCache interface {
	Get(ctx context.Context, key string) (Estimate, bool, error)
	Put(ctx context.Context, key string, e Estimate) error
}

// PairKey identifies a directed address pair.
func PairKey(origin, destination string) string {
	return location.NormalizeAddress(origin) + "|" + location.NormalizeAddress(destination)
}

// CacheKey scopes PairKey to the caller's session, since a session's own
// address selections can change the estimate.
func CacheKey(ctx context.Context, origin, destination string) string {
	key := PairKey(origin, destination)
	if session := location.SessionFromContext(ctx); session != "" {
		key = session + "@" + key
	}
	return key
}

// DefaultMaxRouteEntries caps MemoryRouteCache when no size is given.
const DefaultMaxRouteEntries = 10_000

type memoryEntry struct {
	estimate  Estimate
	expiresAt time.Time
}

// MemoryRouteCache is an in-process RouteCache bounded to a fixed number of
// entries; the least recently used entry is dropped when it is full. Entries
// also expire after ttl unless ttl is zero.
type MemoryRouteCache struct {
	ttl     time.Duration
	now     func() time.Time
	entries *lru.Cache[string, memoryEntry]
}

func NewMemoryRouteCache(ttl time.Duration) *MemoryRouteCache {
	return NewMemoryRouteCacheSize(ttl, DefaultMaxRouteEntries)
}

func NewMemoryRouteCacheSize(ttl time.Duration, maxEntries int) *MemoryRouteCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxRouteEntries
	}
	entries, _ := lru.New[string, memoryEntry](maxEntries)
	return &MemoryRouteCache{ttl: ttl, now: time.Now, entries: entries}
}

func (c *MemoryRouteCache) Get(_ context.Context, key string) (Estimate, bool, error) {
	e, ok := c.entries.Get(key)
	if !ok {
		return Estimate{}, false, nil
	}
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		c.entries.Remove(key)
		return Estimate{}, false, nil
	}
	return e.estimate, true, nil
}

func (c *MemoryRouteCache) Put(_ context.Context, key string, e Estimate) error {
	entry := memoryEntry{estimate: e}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}
	c.entries.Add(key, entry)
	return nil
}

func (c *MemoryRouteCache) Len() int {
	return c.entries.Len()
}

// RedisRouteCache shares estimates across API instances.
type RedisRouteCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{redis: client, ttl: ttl}
}

func routeKey(key string) string {
	return "distance:route:" + key
}

func (c *RedisRouteCache) Get(ctx context.Context, key string) (Estimate, bool, error) {
	raw, err := c.redis.Get(ctx, routeKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Estimate{}, false, nil
	}
	if err != nil {
		return Estimate{}, false, err
	}
	var e Estimate
	if err := json.Unmarshal(raw, &e); err != nil {
		return Estimate{}, false, err
	}
	return e, true, nil
}

func (c *RedisRouteCache) Put(ctx context.Context, key string, e Estimate) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	// go-redis treats a zero expiration as "no expiry".
	return c.redis.Set(ctx, routeKey(key), raw, c.ttl).Err()
}
