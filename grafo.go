// Package grafo maps typed application records to labeled property-graph
// vertices and back.
//
// A record type declares its schema by implementing the Mapping interface
// with fluent field builders:
//
//	type User struct {
//	    ID    int64
//	    Name  string
//	    Age   *int
//	}
//
//	func (User) Fields() []grafo.Field {
//	    return []grafo.Field{
//	        field.Int64("id").Identifier(),
//	        field.String("name"),
//	        field.Int("age").Optional(),
//	    }
//	}
//
// A marshaller derived from the schema converts records to vertices and
// back, with optional fields omitted when nil, transparent wrapper types
// stored by their enclosed value, and the identifier field placed in the
// native id slot of the vertex:
//
//	m, err := grafo.MarshallerFor[User]()
//	v, err := m.FromRecord(User{Name: "mariana"})
//	// v.Label == "User", v.Properties == map[string]any{"name": "mariana"}
//
// Derivation happens once per type and is cached for the process lifetime.
// The vertex binding helpers Insert, Read, Update and All connect records
// to any store implementing dialect.Graph.
package grafo

import (
	"github.com/syssam/grafo/dialect"
	"github.com/syssam/grafo/schema"
	"github.com/syssam/grafo/schema/field"
)

// Field is the interface implemented by the builders of the schema/field
// package. Records return their declared fields from the Fields method.
type Field interface {
	// Descriptor returns the resolved descriptor of the field.
	Descriptor() *field.Descriptor
}

// Mapping is the interface record types implement to declare how they map
// onto vertices. The declaration order of the returned fields is preserved
// in the resolved description.
type Mapping interface {
	Fields() []Field
}

// Mixin is a reusable set of field declarations shared between record
// types. Records opt into mixins by declaring a Mixin method:
//
//	func (User) Mixin() []grafo.Mixin {
//	    return []grafo.Mixin{mixin.Time{}}
//	}
//
// Mixin fields precede the record's own fields in the resolved description.
type Mixin interface {
	Fields() []Field
}

// Labeler is implemented by records that override their vertex label.
// Without it, the label defaults to the name of the record type.
type Labeler interface {
	Label() string
}

// Annotator is implemented by records that attach annotations to their
// declaration. Annotations carry no marshalling semantics; consumers
// such as the code generator read them from the resolved description.
type Annotator interface {
	Annotations() []schema.Annotation
}

// Transparent is implemented by single-value wrapper types that are stored
// by their enclosed value instead of the wrapper itself. Unwrapping is
// recursive: a wrapper enclosing another wrapper is stored fully unwrapped.
//
// Unwrap must be declared on the value receiver. The counterpart for
// decoding is the Wrapper interface, declared on the pointer receiver.
type Transparent interface {
	// Unwrap returns the enclosed value.
	Unwrap() any
}

// Wrapper is the decoding counterpart of Transparent. Wrap receives the
// raw property value read from the store and rebuilds the wrapper in
// place, returning an error if the value cannot be enclosed.
type Wrapper interface {
	// Wrap encloses the given raw value.
	Wrap(v any) error
}

// Unwrap peels all transparent wrappers off v and returns the innermost
// value. Non-wrapper values are returned unchanged.
func Unwrap(v any) any {
	for {
		t, ok := v.(Transparent)
		if !ok {
			return v
		}
		v = t.Unwrap()
	}
}

// Vertex is the graph-side representation of a record: a label, an
// optional native identifier and a flat property map. It is the value
// marshallers produce and consume; stored vertices returned by a
// dialect.Graph are represented by the dialect.Vertex handle instead.
type Vertex struct {
	// ID is the native identifier of the vertex. A nil ID on insert lets
	// the store assign one.
	ID *dialect.ID

	// Label is the resolved vertex label.
	Label string

	// Properties holds the encoded field values. Absent optional fields
	// have no entry, and the identifier field is never part of the map.
	Properties map[string]any
}

// Marshaller converts records of a single type to vertices and back.
// Implementations are stateless and safe for concurrent use.
type Marshaller[T any] interface {
	// FromRecord converts a record to its vertex representation.
	FromRecord(rec T) (*Vertex, error)

	// ToRecord rebuilds a record from a vertex representation.
	ToRecord(v *Vertex) (T, error)
}

// MarshallerFunc is an adapter that allows a pair of ordinary functions to
// be used as a Marshaller.
type MarshallerFunc[T any] struct {
	From func(rec T) (*Vertex, error)
	To   func(v *Vertex) (T, error)
}

// FromRecord calls f.From.
func (f MarshallerFunc[T]) FromRecord(rec T) (*Vertex, error) {
	return f.From(rec)
}

// ToRecord calls f.To.
func (f MarshallerFunc[T]) ToRecord(v *Vertex) (T, error) {
	return f.To(v)
}
