package grafo_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/grafo"
	"github.com/syssam/grafo/dialect/inmem"
)

// mapCache is a process-local Cache used to observe decorator behavior.
// The TTL handed to Set is recorded but not enforced.
type mapCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	lastTTL time.Duration
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key], nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	c.lastTTL = ttl
	return nil
}

func (c *mapCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *mapCache) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *mapCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	return nil
}

func (c *mapCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// failCache fails every operation.
type failCache struct{}

var errCacheDown = errors.New("cache down")

func (failCache) Get(context.Context, string) ([]byte, error)              { return nil, errCacheDown }
func (failCache) Set(context.Context, string, []byte, time.Duration) error { return errCacheDown }
func (failCache) Delete(context.Context, string) error                     { return errCacheDown }
func (failCache) DeletePrefix(context.Context, string) error               { return errCacheDown }
func (failCache) Clear(context.Context) error                              { return errCacheDown }

// TestCachedGraphRead tests that vertex reads are served from the cache
// once populated.
func TestCachedGraphRead(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	engine := inmem.New()
	t.Cleanup(func() { engine.Close() })
	cache := newMapCache()
	g := grafo.NewCachedGraph(engine, cache, grafo.WithTTL(time.Minute))

	id, err := grafo.Insert(ctx, g, user{ID: 7, Name: "mashraki", CreatedAt: time.Unix(1724580000, 0).UTC()})
	require.NoError(t, err)

	got, err := grafo.Read[user](ctx, g, id)
	require.NoError(t, err)
	assert.Equal(t, "mashraki", got.Name)
	assert.Equal(t, time.Minute, cache.lastTTL)

	// Remove the vertex behind the decorator's back. The cached copy
	// keeps serving until an invalidating write.
	require.NoError(t, engine.DeleteVertex(ctx, id))
	again, err := grafo.Read[user](ctx, g, id)
	require.NoError(t, err)
	assert.Equal(t, got.ID, again.ID)
	assert.Equal(t, got.Name, again.Name)
	// Cached timestamps come back in a different location; compare the
	// instant, not the struct.
	assert.True(t, got.CreatedAt.Equal(again.CreatedAt))
}

// TestCachedGraphInvalidate tests that updates and deletes drop the
// cached copy.
func TestCachedGraphInvalidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	engine := inmem.New()
	t.Cleanup(func() { engine.Close() })
	cache := newMapCache()
	g := grafo.NewCachedGraph(engine, cache)

	id, err := grafo.Insert(ctx, g, user{ID: 3, Name: "a8m", CreatedAt: time.Unix(1724580000, 0).UTC()})
	require.NoError(t, err)
	_, err = grafo.Read[user](ctx, g, id)
	require.NoError(t, err)

	updated := user{ID: 3, Name: "nativ", CreatedAt: time.Unix(1724580000, 0).UTC()}
	require.NoError(t, grafo.Update(ctx, g, updated))

	got, err := grafo.Read[user](ctx, g, id)
	require.NoError(t, err)
	assert.Equal(t, "nativ", got.Name)

	require.NoError(t, grafo.Delete(ctx, g, id))
	_, err = grafo.Read[user](ctx, g, id)
	require.Error(t, err)
}

// TestCachedGraphScan tests that a fully consumed label scan is replayed
// from the cache and dropped again on writes.
func TestCachedGraphScan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	engine := inmem.New()
	t.Cleanup(func() { engine.Close() })
	cache := newMapCache()
	g := grafo.NewCachedGraph(engine, cache)

	when := time.Unix(1724580000, 0).UTC()
	for i, name := range []string{"a8m", "nativ"} {
		_, err := grafo.Insert(ctx, g, user{ID: int64(i + 1), Name: name, CreatedAt: when})
		require.NoError(t, err)
	}

	count := func() int {
		n := 0
		for _, err := range grafo.All[user](ctx, g) {
			require.NoError(t, err)
			n++
		}
		return n
	}
	require.Equal(t, 2, count())

	// Grow the label behind the decorator's back; the cached scan
	// keeps replaying the old result set.
	_, err := engine.CreateVertex(ctx, "user", nil, map[string]any{"name": "hedwigz", "created_at": when})
	require.NoError(t, err)
	assert.Equal(t, 2, count())

	// Any write through the decorator drops cached scans.
	require.NoError(t, grafo.Update(ctx, g, user{ID: 1, Name: "ariel", CreatedAt: when}))
	assert.Equal(t, 3, count())
}

// TestCachedGraphAbandonedScan tests that a scan broken off early is not
// cached.
func TestCachedGraphAbandonedScan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	engine := inmem.New()
	t.Cleanup(func() { engine.Close() })
	cache := newMapCache()
	g := grafo.NewCachedGraph(engine, cache)

	when := time.Unix(1724580000, 0).UTC()
	for i := int64(1); i <= 2; i++ {
		_, err := grafo.Insert(ctx, g, user{ID: i, Name: "u", CreatedAt: when})
		require.NoError(t, err)
	}

	for _, err := range grafo.All[user](ctx, g) {
		require.NoError(t, err)
		break
	}
	assert.False(t, cache.has("scan:user"))
}

// TestCachedGraphDegraded tests behavior against a cache that fails
// every call: reads fall through, writes surface the invalidation error.
func TestCachedGraphDegraded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	engine := inmem.New()
	t.Cleanup(func() { engine.Close() })
	g := grafo.NewCachedGraph(engine, failCache{})

	when := time.Unix(1724580000, 0).UTC()
	created, err := engine.CreateVertex(ctx, "user", nil, map[string]any{"name": "a8m", "created_at": when})
	require.NoError(t, err)

	got, err := grafo.Read[user](ctx, g, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "a8m", got.Name)

	err = grafo.Update(ctx, g, user{ID: int64(created.ID()), Name: "x", CreatedAt: when})
	require.ErrorIs(t, err, errCacheDown)
	assert.Contains(t, err.Error(), "invalidate vertex")

	// The write itself was applied before invalidation failed.
	v, err := engine.Vertex(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "x", v.Properties()["name"])
}
