// Package dialect defines the vertex store abstraction for Grafo.
//
// This package holds the interfaces and types that separate the marshalling
// layer from the storage backend, allowing Grafo to work against any property
// graph store that can create, read and update labeled vertices.
//
// # Store Model
//
// A store holds vertices. Each vertex has a label, a native int64 identifier
// assigned by the store (or supplied at creation), and a flat property map:
//
//	(label string, id dialect.ID, properties map[string]any)
//
// # Graph Interface
//
// The Graph interface is the full store contract:
//
//	type Graph interface {
//	    CreateVertex(ctx context.Context, label string, id *ID, properties map[string]any) (Vertex, error)
//	    Vertex(ctx context.Context, id ID) (Vertex, error)
//	    VerticesByLabel(ctx context.Context, label string) iter.Seq2[Vertex, error]
//	    ReplaceProperties(ctx context.Context, id ID, properties map[string]any) error
//	    DeleteVertex(ctx context.Context, id ID) error
//	    Close() error
//	}
//
// VerticesByLabel returns a standard iterator; each call produces a fresh,
// restartable sequence:
//
//	for v, err := range g.VerticesByLabel(ctx, "User") {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(v.ID(), v.Properties())
//	}
//
// # Dialect Constants
//
// SQL-backed stores are identified by a constant name:
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// # Errors
//
// Lookups of missing vertices fail with an error satisfying IsNotFound, and
// identifier collisions on create fail with a ConstraintError. Store errors
// pass through the marshalling layer unchanged.
//
// # Implementations
//
// The package contains two store implementations:
//
//   - dialect/inmem: an in-memory store holding property values verbatim,
//     suitable for tests and prototypes
//   - dialect/sqlgraph: a store backed by a single SQL table, with
//     msgpack-encoded properties, for SQLite, PostgreSQL and MySQL
package dialect
