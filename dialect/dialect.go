package dialect

import (
	"context"
	"iter"
)

// ID is the native vertex identifier assigned by a graph store.
type ID int64

// Dialect names of the SQL-backed stores supported out of the box.
const (
	// MySQL is the dialect name for MySQL/MariaDB backends.
	MySQL = "mysql"
	// SQLite is the dialect name for SQLite backends.
	SQLite = "sqlite"
	// Postgres is the dialect name for PostgreSQL backends.
	Postgres = "postgres"
)

// Vertex is the handle of a stored vertex as returned by a Graph.
type Vertex interface {
	// ID returns the native identifier of the vertex.
	ID() ID

	// Label returns the label the vertex was stored under.
	Label() string

	// Properties returns the property map of the vertex.
	// Callers must not retain or mutate the returned map beyond the
	// lifetime of the read that produced it.
	Properties() map[string]any
}

// Graph is the interface implemented by vertex stores.
//
// Implementations are free to hold property values verbatim (in-memory
// stores) or to serialize them (SQL or file backed stores), as long as a
// value read back compares equal to the value handed over, up to the
// store's documented representation of numbers.
type Graph interface {
	// CreateVertex stores a new vertex under the given label.
	// If id is non-nil the vertex is created with that native identifier,
	// and creation fails with a ConstraintError if it is already taken.
	// If id is nil the store assigns the next free identifier.
	CreateVertex(ctx context.Context, label string, id *ID, properties map[string]any) (Vertex, error)

	// Vertex returns the vertex with the given identifier.
	// It returns an error satisfying IsNotFound if no such vertex exists.
	Vertex(ctx context.Context, id ID) (Vertex, error)

	// VerticesByLabel returns an iterator over all vertices stored under
	// the given label. The sequence is finite and each call returns a
	// fresh iterator that can be consumed independently. Iteration errors
	// are yielded in place of a vertex and terminate the sequence.
	VerticesByLabel(ctx context.Context, label string) iter.Seq2[Vertex, error]

	// ReplaceProperties replaces the entire property map of the vertex
	// with the given identifier. The label and identifier of the vertex
	// are left unchanged. It returns an error satisfying IsNotFound if no
	// such vertex exists.
	ReplaceProperties(ctx context.Context, id ID, properties map[string]any) error

	// DeleteVertex removes the vertex with the given identifier.
	// It returns an error satisfying IsNotFound if no such vertex exists.
	DeleteVertex(ctx context.Context, id ID) error

	// Close releases the resources held by the store.
	Close() error
}
