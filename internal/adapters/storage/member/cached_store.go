package member

import (
	"context"
	"sync"
	"time"

	domain "membuddy/internal/domain/member"
	"membuddy/internal/domain/nlu"
)

// DefaultCacheTTL bounds how stale a cached read may be.
const DefaultCacheTTL = 5 * time.Minute

// CachedStore wraps a Store with a short-lived read cache keyed by
// normalized email. The clock is injected so staleness is testable.
// Every write through this store invalidates the whole cache, so the
// next read in the same or a later turn observes the write.
type CachedStore struct {
	inner Store
	ttl   time.Duration
	clock func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	member   domain.Member
	loadedAt time.Time
}

// NewCachedStore wraps inner with a TTL cache. A nil clock uses time.Now.
func NewCachedStore(inner Store, ttl time.Duration, clock func() time.Time) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if clock == nil {
		clock = time.Now
	}
	return &CachedStore{
		inner:   inner,
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]cacheEntry),
	}
}

// GetByEmail returns the cached record when fresh, otherwise loads from
// the inner store and caches the result.
func (c *CachedStore) GetByEmail(ctx context.Context, email string) (domain.Member, error) {
	key := nlu.NormalizeEmail(email)
	now := c.clock()

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && now.Sub(entry.loadedAt) < c.ttl {
		c.mu.Unlock()
		return entry.member, nil
	}
	c.mu.Unlock()

	m, err := c.inner.GetByEmail(ctx, key)
	if err != nil {
		return domain.Member{}, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{member: m, loadedAt: now}
	c.mu.Unlock()
	return m, nil
}

// Invalidate drops every cached record.
func (c *CachedStore) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Save writes through and invalidates.
func (c *CachedStore) Save(ctx context.Context, value domain.Member) error {
	err := c.inner.Save(ctx, value)
	c.Invalidate()
	return err
}

// UpdateField writes through and invalidates.
func (c *CachedStore) UpdateField(ctx context.Context, id string, field nlu.Field, value string) error {
	err := c.inner.UpdateField(ctx, id, field, value)
	c.Invalidate()
	return err
}

// UpdateExpiration writes through and invalidates.
func (c *CachedStore) UpdateExpiration(ctx context.Context, id string, expiration time.Time) error {
	err := c.inner.UpdateExpiration(ctx, id, expiration)
	c.Invalidate()
	return err
}

// UpdateEngagement writes through and invalidates.
func (c *CachedStore) UpdateEngagement(ctx context.Context, id string, score int) error {
	err := c.inner.UpdateEngagement(ctx, id, score)
	c.Invalidate()
	return err
}

// List always reads through; only single-record lookups are cached.
func (c *CachedStore) List(ctx context.Context) ([]domain.Member, error) {
	return c.inner.List(ctx)
}
