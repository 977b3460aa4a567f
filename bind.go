package grafo

import (
	"context"
	"iter"

	"github.com/syssam/grafo/dialect"
	"github.com/syssam/grafo/querylanguage"
)

// Insert marshals a record and creates its vertex in the graph. The
// returned id is the native id of the created vertex, whether it was
// carried by the record or assigned by the store.
func Insert[T any](ctx context.Context, g dialect.Graph, rec T) (dialect.ID, error) {
	m, err := MarshallerFor[T]()
	if err != nil {
		return 0, err
	}
	return InsertWith(ctx, g, m, rec)
}

// InsertWith is Insert with an explicit marshaller. The marshaller is
// used for this call only and is never cached.
func InsertWith[T any](ctx context.Context, g dialect.Graph, m Marshaller[T], rec T) (dialect.ID, error) {
	v, err := m.FromRecord(rec)
	if err != nil {
		return 0, err
	}
	created, err := g.CreateVertex(ctx, v.Label, v.ID, v.Properties)
	if err != nil {
		return 0, err
	}
	return created.ID(), nil
}

// Read loads the vertex with the given id and unmarshals it into a
// record of type T. A vertex carrying a different label than T reports
// a NotFoundError.
func Read[T any](ctx context.Context, g dialect.Graph, id dialect.ID) (T, error) {
	var zero T
	m, err := MarshallerFor[T]()
	if err != nil {
		return zero, err
	}
	d, err := describeType(typeFor[T]())
	if err != nil {
		return zero, err
	}
	v, err := g.Vertex(ctx, id)
	if err != nil {
		return zero, err
	}
	if v.Label() != d.Label {
		return zero, dialect.NewNotFoundErrorWithID(d.Label, id)
	}
	return m.ToRecord(vertexValue(v))
}

// ReadWith is Read with an explicit marshaller. No label check is
// performed; the marshaller decides what it accepts.
func ReadWith[T any](ctx context.Context, g dialect.Graph, m Marshaller[T], id dialect.ID) (T, error) {
	var zero T
	v, err := g.Vertex(ctx, id)
	if err != nil {
		return zero, err
	}
	return m.ToRecord(vertexValue(v))
}

// ReadVertex loads the vertex with the given id in its marshalling form
// without binding it to a record type.
func ReadVertex(ctx context.Context, g dialect.Graph, id dialect.ID) (*Vertex, error) {
	v, err := g.Vertex(ctx, id)
	if err != nil {
		return nil, err
	}
	return vertexValue(v), nil
}

// Update marshals a record and replaces the properties of its vertex.
// The record must carry an identifier; updating a record whose id the
// store assigned requires reading it back first.
func Update[T any](ctx context.Context, g dialect.Graph, rec T) error {
	m, err := MarshallerFor[T]()
	if err != nil {
		return err
	}
	return UpdateWith(ctx, g, m, rec)
}

// UpdateWith is Update with an explicit marshaller.
func UpdateWith[T any](ctx context.Context, g dialect.Graph, m Marshaller[T], rec T) error {
	v, err := m.FromRecord(rec)
	if err != nil {
		return err
	}
	if v.ID == nil {
		return dialect.NewConstraintError("update requires an explicit identifier", nil)
	}
	return g.ReplaceProperties(ctx, *v.ID, v.Properties)
}

// Delete removes the vertex with the given id from the graph.
func Delete(ctx context.Context, g dialect.Graph, id dialect.ID) error {
	return g.DeleteVertex(ctx, id)
}

// All iterates over every vertex labeled for T and unmarshals each into
// a record. The sequence is restartable; each range starts a fresh
// iteration against the store.
func All[T any](ctx context.Context, g dialect.Graph) iter.Seq2[T, error] {
	m, err := MarshallerFor[T]()
	if err != nil {
		return failSeq[T](err)
	}
	d, err := describeType(typeFor[T]())
	if err != nil {
		return failSeq[T](err)
	}
	return AllWith(ctx, g, d.Label, m)
}

// AllWith is All with an explicit marshaller and label.
func AllWith[T any](ctx context.Context, g dialect.Graph, label string, m Marshaller[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v, err := range g.VerticesByLabel(ctx, label) {
			var rec T
			if err == nil {
				rec, err = m.ToRecord(vertexValue(v))
			}
			if !yield(rec, err) {
				return
			}
		}
	}
}

// AllMatching is All narrowed to the records whose stored property map
// satisfies the predicate. The predicate is evaluated before
// unmarshalling, so records that would fail to decode are skipped when
// they do not match.
func AllMatching[T any](ctx context.Context, g dialect.Graph, p querylanguage.P) iter.Seq2[T, error] {
	m, err := MarshallerFor[T]()
	if err != nil {
		return failSeq[T](err)
	}
	d, err := describeType(typeFor[T]())
	if err != nil {
		return failSeq[T](err)
	}
	return AllMatchingWith(ctx, g, d.Label, m, p)
}

// AllMatchingWith is AllMatching with an explicit marshaller and label.
func AllMatchingWith[T any](ctx context.Context, g dialect.Graph, label string, m Marshaller[T], p querylanguage.P) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v, err := range querylanguage.Filter(g.VerticesByLabel(ctx, label), p) {
			var rec T
			if err == nil {
				rec, err = m.ToRecord(vertexValue(v))
			}
			if !yield(rec, err) {
				return
			}
		}
	}
}

// failSeq yields a single error and stops.
func failSeq[T any](err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}

// vertexValue snapshots a store vertex into its marshalling form.
func vertexValue(v dialect.Vertex) *Vertex {
	id := v.ID()
	return &Vertex{
		ID:         &id,
		Label:      v.Label(),
		Properties: v.Properties(),
	}
}
