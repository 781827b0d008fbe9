package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"permitdesk/pkg/platform/sentinel"
)

// Error Contract:
// The cache lookup follows the store pattern:
// - sentinel.ErrNotFound (wrapped) when the key has no fresh entry
// - nil with the cached records on a hit
// Upstream failures pass through from the inner client unchanged.

// CachingClient decorates a Client with an in-memory TTL cache and
// single-flight coalescing, so a burst of identical partial-plate lookups
// from concurrent form fields hits the upstream registry once.
type CachingClient struct {
	inner Client
	ttl   time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
	group   singleflight.Group

	// now is injectable for tests.
	now func() time.Time
}

type cacheEntry struct {
	records   []OwnerRecord
	expiresAt time.Time
}

// NewCachingClient wraps inner with a TTL cache. A non-positive ttl disables
// caching entirely and only keeps the single-flight behavior.
func NewCachingClient(inner Client, ttl time.Duration) *CachingClient {
	return &CachingClient{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *CachingClient) Search(ctx context.Context, partialPlate string) ([]OwnerRecord, error) {
	q, err := NormalizeQuery(partialPlate)
	if err != nil {
		return nil, err
	}

	if records, err := c.lookup(q); err == nil {
		return records, nil
	}

	v, err, _ := c.group.Do(q, func() (any, error) {
		records, err := c.inner.Search(ctx, q)
		if err != nil {
			return nil, err
		}
		c.store(q, records)
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]OwnerRecord), nil
}

// lookup returns the fresh cached records for q.
func (c *CachingClient) lookup(q string) ([]OwnerRecord, error) {
	c.mu.RLock()
	entry, ok := c.entries[q]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry cache miss for %q: %w", q, sentinel.ErrNotFound)
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, q)
		c.mu.Unlock()
		return nil, fmt.Errorf("registry cache entry for %q: %w", q, sentinel.ErrExpired)
	}
	return entry.records, nil
}

func (c *CachingClient) store(q string, records []OwnerRecord) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[q] = cacheEntry{records: records, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Purge drops every cached entry. Retention for registry data is enforced by
// the TTL; Purge exists for explicit invalidation after registry updates.
func (c *CachingClient) Purge() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
