package registry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "permitdesk/pkg/domain-errors"
)

// countingClient records upstream hits so cache behavior is observable.
type countingClient struct {
	mu      sync.Mutex
	calls   int
	queries []string
	records []OwnerRecord
	err     error
}

func (c *countingClient) Search(_ context.Context, partialPlate string) ([]OwnerRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.queries = append(c.queries, partialPlate)
	return c.records, c.err
}

func (c *countingClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestCachingClient_ServesFromCacheWithinTTL(t *testing.T) {
	inner := &countingClient{records: []OwnerRecord{{PlateNumber: "CG04AA1234", OwnerName: "R. Verma"}}}
	cache := NewCachingClient(inner, time.Minute)

	first, err := cache.Search(context.Background(), "CG04")
	require.NoError(t, err)
	second, err := cache.Search(context.Background(), "CG04")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.callCount(), "second lookup must not hit the upstream registry")
}

func TestCachingClient_ExpiredEntryRefetches(t *testing.T) {
	inner := &countingClient{}
	cache := NewCachingClient(inner, time.Minute)

	current := time.Now()
	cache.now = func() time.Time { return current }

	_, err := cache.Search(context.Background(), "CG04")
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	_, err = cache.Search(context.Background(), "CG04")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.callCount())
}

func TestCachingClient_NormalizesQueryKeys(t *testing.T) {
	inner := &countingClient{}
	cache := NewCachingClient(inner, time.Minute)

	_, err := cache.Search(context.Background(), "cg 04-aa")
	require.NoError(t, err)
	_, err = cache.Search(context.Background(), "CG04AA")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.callCount(), "separator and case variants share one cache key")
}

func TestCachingClient_ShortQueryIsIncompleteInput(t *testing.T) {
	inner := &countingClient{}
	cache := NewCachingClient(inner, time.Minute)

	_, err := cache.Search(context.Background(), "CG0")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeIncompleteInput))
	assert.Equal(t, 0, inner.callCount())
}

func TestCachingClient_UpstreamErrorsAreNotCached(t *testing.T) {
	inner := &countingClient{err: context.DeadlineExceeded}
	cache := NewCachingClient(inner, time.Minute)

	_, err := cache.Search(context.Background(), "CG04")
	require.Error(t, err)

	inner.mu.Lock()
	inner.err = nil
	inner.mu.Unlock()

	_, err = cache.Search(context.Background(), "CG04")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.callCount())
}

func TestCachingClient_PurgeDropsEntries(t *testing.T) {
	inner := &countingClient{}
	cache := NewCachingClient(inner, time.Minute)

	_, err := cache.Search(context.Background(), "CG04")
	require.NoError(t, err)

	cache.Purge()

	_, err = cache.Search(context.Background(), "CG04")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.callCount())
}

func TestCachingClient_ZeroTTLDisablesCaching(t *testing.T) {
	inner := &countingClient{}
	cache := NewCachingClient(inner, 0)

	for i := 0; i < 3; i++ {
		_, err := cache.Search(context.Background(), "CG04")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, inner.callCount())
}
