package location

import (
	"context"
	"errors"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	ErrNoSession         = errors.New("missing session id")
	ErrTooManySelections = errors.New("too many address selections in session")
)

// AddressCache holds user-selected coordinates scoped to a browsing session so a
// selection made by one visitor never answers another visitor's lookup.
type AddressCache interface {
	Put(ctx context.Context, e Entry) error
	Get(ctx context.Context, address string) (Entry, bool, error)
}

type sessionKey struct{}

// WithSession scopes address cache operations on ctx to sessionID.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

func SessionFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(sessionKey{}).(string); ok {
		return v
	}
	return ""
}

const (
	// DefaultMaxSessions caps how many sessions MemoryCache keeps.
	DefaultMaxSessions = 5_000
	// MaxSelectionsPerSession caps entries within one session.
	MaxSelectionsPerSession = 64
)

// MemoryCache is the in-process AddressCache. It keeps the most recently used
// sessions up to its limit; a session's own selections are kept until the
// session is dropped or exceeds MaxSelectionsPerSession.
type MemoryCache struct {
	mu       sync.Mutex
	sessions *lru.Cache[string, map[string]Entry]
}

func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheSize(DefaultMaxSessions)
}

func NewMemoryCacheSize(maxSessions int) *MemoryCache {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	sessions, _ := lru.New[string, map[string]Entry](maxSessions)
	return &MemoryCache{sessions: sessions}
}

func (c *MemoryCache) Put(ctx context.Context, e Entry) error {
	session := SessionFromContext(ctx)
	if session == "" {
		return ErrNoSession
	}
	key := NormalizeAddress(e.Address)
	c.mu.Lock()
	defer c.mu.Unlock()
	entries, ok := c.sessions.Get(session)
	if !ok {
		entries = make(map[string]Entry)
		c.sessions.Add(session, entries)
	}
	if _, exists := entries[key]; !exists && len(entries) >= MaxSelectionsPerSession {
		return ErrTooManySelections
	}
	entries[key] = e
	return nil
}

func (c *MemoryCache) Get(ctx context.Context, address string) (Entry, bool, error) {
	session := SessionFromContext(ctx)
	if session == "" {
		return Entry{}, false, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entries, ok := c.sessions.Get(session)
	if !ok {
		return Entry{}, false, nil
	}
	e, ok := entries[NormalizeAddress(address)]
	return e, ok, nil
}

// Sessions reports how many sessions are held.
func (c *MemoryCache) Sessions() int {
	return c.sessions.Len()
}

// Reset drops every session.
func (c *MemoryCache) Reset() {
	c.sessions.Purge()
}
