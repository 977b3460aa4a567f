package grafo

import (
	"bytes"
	"context"
	"fmt"
	"iter"
	"strconv"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/grafo/dialect"
)

// Cache is the interface for caching fetched vertices.
// Users should implement this interface with their preferred caching solution
// (e.g., Redis, Memcached, in-memory).
type Cache interface {
	// Get retrieves a value from the cache.
	// Returns nil, nil if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with an optional TTL.
	// If ttl is 0, the value should not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache.
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes all values with the given prefix.
	DeletePrefix(ctx context.Context, prefix string) error

	// Clear removes all values from the cache.
	Clear(ctx context.Context) error
}

const (
	vertexKeyPrefix = "vertex:"
	scanKeyPrefix   = "scan:"
)

func vertexKey(id dialect.ID) string {
	return vertexKeyPrefix + strconv.FormatInt(int64(id), 10)
}

func scanKey(label string) string {
	return scanKeyPrefix + label
}

// CachedGraph decorates a Graph with read-through caching. Vertex lookups
// and completed label scans are stored in the cache and served from it until
// a write invalidates them. Cache read failures fall through to the
// underlying store; cache write failures on reads are ignored.
//
// Invalidation failures after a successful write are returned to the caller.
// The write itself has been applied by then, so callers seeing such an error
// must assume the store changed.
type CachedGraph struct {
	graph dialect.Graph
	cache Cache
	ttl   time.Duration
}

var _ dialect.Graph = (*CachedGraph)(nil)

// CacheOption configures a CachedGraph.
type CacheOption func(*CachedGraph)

// WithTTL sets the expiry applied to cached entries. Zero, the default,
// caches without expiry.
func WithTTL(ttl time.Duration) CacheOption {
	return func(g *CachedGraph) {
		g.ttl = ttl
	}
}

// NewCachedGraph wraps graph with the given cache.
func NewCachedGraph(graph dialect.Graph, cache Cache, opts ...CacheOption) *CachedGraph {
	g := &CachedGraph{graph: graph, cache: cache}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CreateVertex stores a new vertex and invalidates the cached scan of its
// label.
func (g *CachedGraph) CreateVertex(ctx context.Context, label string, id *dialect.ID, properties map[string]any) (dialect.Vertex, error) {
	v, err := g.graph.CreateVertex(ctx, label, id, properties)
	if err != nil {
		return nil, err
	}
	if err := g.cache.Delete(ctx, scanKey(label)); err != nil {
		return nil, fmt.Errorf("grafo: invalidate scan of label %q: %w", label, err)
	}
	return v, nil
}

// Vertex returns the vertex with the given identifier, consulting the cache
// first.
func (g *CachedGraph) Vertex(ctx context.Context, id dialect.ID) (dialect.Vertex, error) {
	if raw, err := g.cache.Get(ctx, vertexKey(id)); err == nil && raw != nil {
		if cv, err := decodeCached(raw); err == nil {
			return cv, nil
		}
	}
	v, err := g.graph.Vertex(ctx, id)
	if err != nil {
		return nil, err
	}
	cv := snapshotVertex(v)
	if raw, err := encodeCached(cv); err == nil {
		_ = g.cache.Set(ctx, vertexKey(id), raw, g.ttl)
	}
	return cv, nil
}

// VerticesByLabel returns an iterator over all vertices under label. A scan
// consumed to completion is cached and replayed on subsequent calls.
func (g *CachedGraph) VerticesByLabel(ctx context.Context, label string) iter.Seq2[dialect.Vertex, error] {
	if raw, err := g.cache.Get(ctx, scanKey(label)); err == nil && raw != nil {
		if cached, err := decodeCachedScan(raw); err == nil {
			return func(yield func(dialect.Vertex, error) bool) {
				for _, v := range cached {
					if !yield(v, nil) {
						return
					}
				}
			}
		}
	}
	inner := g.graph.VerticesByLabel(ctx, label)
	return func(yield func(dialect.Vertex, error) bool) {
		var collected []*cachedVertex
		for v, err := range inner {
			if err != nil {
				yield(nil, err)
				return
			}
			cv := snapshotVertex(v)
			collected = append(collected, cv)
			if !yield(cv, nil) {
				// Abandoned scans stay uncached.
				return
			}
		}
		if raw, err := encodeCachedScan(collected); err == nil {
			_ = g.cache.Set(ctx, scanKey(label), raw, g.ttl)
		}
	}
}

// ReplaceProperties replaces the property map of a vertex and invalidates
// every cached entry that may hold the old map. The label of the vertex is
// unknown at this point, so all cached scans are dropped.
func (g *CachedGraph) ReplaceProperties(ctx context.Context, id dialect.ID, properties map[string]any) error {
	if err := g.graph.ReplaceProperties(ctx, id, properties); err != nil {
		return err
	}
	return g.invalidate(ctx, id)
}

// DeleteVertex removes a vertex and invalidates its cached entries.
func (g *CachedGraph) DeleteVertex(ctx context.Context, id dialect.ID) error {
	if err := g.graph.DeleteVertex(ctx, id); err != nil {
		return err
	}
	return g.invalidate(ctx, id)
}

// Close releases the underlying store. Cached entries are left to expire.
func (g *CachedGraph) Close() error {
	return g.graph.Close()
}

func (g *CachedGraph) invalidate(ctx context.Context, id dialect.ID) error {
	if err := g.cache.Delete(ctx, vertexKey(id)); err != nil {
		return fmt.Errorf("grafo: invalidate vertex %d: %w", id, err)
	}
	if err := g.cache.DeletePrefix(ctx, scanKeyPrefix); err != nil {
		return fmt.Errorf("grafo: invalidate scans: %w", err)
	}
	return nil
}

// cachedVertex is the serialized snapshot of a stored vertex.
type cachedVertex struct {
	VID    int64          `msgpack:"id"`
	VLabel string         `msgpack:"label"`
	Props  map[string]any `msgpack:"props"`
}

var _ dialect.Vertex = (*cachedVertex)(nil)

func (v *cachedVertex) ID() dialect.ID             { return dialect.ID(v.VID) }
func (v *cachedVertex) Label() string              { return v.VLabel }
func (v *cachedVertex) Properties() map[string]any { return v.Props }

func snapshotVertex(v dialect.Vertex) *cachedVertex {
	props := v.Properties()
	cloned := make(map[string]any, len(props))
	for k, pv := range props {
		cloned[k] = pv
	}
	return &cachedVertex{VID: int64(v.ID()), VLabel: v.Label(), Props: cloned}
}

func encodeCached(v *cachedVertex) ([]byte, error) {
	return msgpack.Marshal(v)
}

func decodeCached(raw []byte) (*cachedVertex, error) {
	v := new(cachedVertex)
	if err := decodeLoose(raw, v); err != nil {
		return nil, err
	}
	return v, nil
}

func encodeCachedScan(vs []*cachedVertex) ([]byte, error) {
	return msgpack.Marshal(vs)
}

func decodeCachedScan(raw []byte) ([]*cachedVertex, error) {
	var vs []*cachedVertex
	if err := decodeLoose(raw, &vs); err != nil {
		return nil, err
	}
	return vs, nil
}

// decodeLoose keeps property values in the widened forms the codec accepts,
// matching how SQL-backed stores deserialize their property columns.
func decodeLoose(raw []byte, into any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(raw))
	dec.UseLooseInterfaceDecoding(true)
	if err := dec.Decode(into); err != nil {
		return fmt.Errorf("grafo: decode cached vertex: %w", err)
	}
	return nil
}
