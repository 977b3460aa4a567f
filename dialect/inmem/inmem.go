// Package inmem provides an in-memory implementation of the dialect.Graph
// store, intended for tests, prototyping and datasets that fit in RAM.
//
// The engine is safe for concurrent use. Vertices are copied on the way in
// and on the way out, so callers can never mutate stored state through a
// returned vertex.
package inmem

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"sync"

	"github.com/syssam/grafo/dialect"
)

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("inmem: engine is closed")

// Engine is a thread-safe in-memory graph store. Native identifiers are
// assigned from a monotonic counter starting at 1; explicitly provided
// identifiers advance the counter past themselves.
type Engine struct {
	mu       sync.RWMutex
	nextID   dialect.ID
	vertices map[dialect.ID]*vertex
	byLabel  map[string]map[dialect.ID]struct{}
	closed   bool
}

var _ dialect.Graph = (*Engine)(nil)

// New returns an empty engine ready for concurrent use.
func New() *Engine {
	return &Engine{
		nextID:   1,
		vertices: make(map[dialect.ID]*vertex),
		byLabel:  make(map[string]map[dialect.ID]struct{}),
	}
}

// vertex is the stored form. It implements dialect.Vertex.
type vertex struct {
	id    dialect.ID
	label string
	props map[string]any
}

func (v *vertex) ID() dialect.ID             { return v.id }
func (v *vertex) Label() string              { return v.label }
func (v *vertex) Properties() map[string]any { return v.props }

func (v *vertex) clone() *vertex {
	return &vertex{id: v.id, label: v.label, props: maps.Clone(v.props)}
}

// CreateVertex stores a new vertex. A nil id asks the engine to assign
// one; an explicit id that is already taken fails with a ConstraintError.
func (e *Engine) CreateVertex(ctx context.Context, label string, id *dialect.ID, properties map[string]any) (dialect.Vertex, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if label == "" {
		return nil, dialect.NewConstraintError("vertex label cannot be empty", nil)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, ErrClosed
	}
	vid := e.nextID
	if id != nil {
		vid = *id
		if _, taken := e.vertices[vid]; taken {
			return nil, dialect.NewConstraintError(fmt.Sprintf("vertex %d already exists", vid), nil)
		}
	}
	if vid >= e.nextID {
		e.nextID = vid + 1
	}
	v := &vertex{id: vid, label: label, props: maps.Clone(properties)}
	if v.props == nil {
		v.props = make(map[string]any)
	}
	e.vertices[vid] = v
	if e.byLabel[label] == nil {
		e.byLabel[label] = make(map[dialect.ID]struct{})
	}
	e.byLabel[label][vid] = struct{}{}
	return v.clone(), nil
}

// Vertex returns a copy of the vertex with the given id.
func (e *Engine) Vertex(ctx context.Context, id dialect.ID) (dialect.Vertex, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return nil, ErrClosed
	}
	v, ok := e.vertices[id]
	if !ok {
		return nil, dialect.NewNotFoundErrorWithID("", id)
	}
	return v.clone(), nil
}

// VerticesByLabel returns an iterator over copies of all vertices with
// the given label, ordered by id. Each range over the sequence takes a
// fresh snapshot, so the sequence can be ranged over more than once.
func (e *Engine) VerticesByLabel(ctx context.Context, label string) iter.Seq2[dialect.Vertex, error] {
	return func(yield func(dialect.Vertex, error) bool) {
		snapshot, err := e.snapshot(label)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, v := range snapshot {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// snapshot copies all vertices with the given label under the read lock.
func (e *Engine) snapshot(label string) ([]*vertex, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return nil, ErrClosed
	}
	ids := slices.Sorted(maps.Keys(e.byLabel[label]))
	snapshot := make([]*vertex, 0, len(ids))
	for _, id := range ids {
		snapshot = append(snapshot, e.vertices[id].clone())
	}
	return snapshot, nil
}

// ReplaceProperties swaps the whole property map of the vertex with the
// given id. The label and identifier are untouched.
func (e *Engine) ReplaceProperties(ctx context.Context, id dialect.ID, properties map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	v, ok := e.vertices[id]
	if !ok {
		return dialect.NewNotFoundErrorWithID("", id)
	}
	v.props = maps.Clone(properties)
	if v.props == nil {
		v.props = make(map[string]any)
	}
	return nil
}

// DeleteVertex removes the vertex with the given id.
func (e *Engine) DeleteVertex(ctx context.Context, id dialect.ID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	v, ok := e.vertices[id]
	if !ok {
		return dialect.NewNotFoundErrorWithID("", id)
	}
	delete(e.vertices, id)
	delete(e.byLabel[v.label], id)
	if len(e.byLabel[v.label]) == 0 {
		delete(e.byLabel, v.label)
	}
	return nil
}

// Len reports the number of stored vertices.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.vertices)
}

// Close releases the stored data. Further operations fail with ErrClosed.
// Closing twice is a no-op.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vertices = nil
	e.byLabel = nil
	e.closed = true
	return nil
}
