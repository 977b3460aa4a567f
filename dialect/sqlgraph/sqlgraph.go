// Package sqlgraph implements the dialect.Graph store on top of a SQL
// database. Vertices live in a single table of (id, label, props) rows
// with the property map serialized as msgpack, so any value the codec
// accepts can be persisted without per-label DDL.
//
// MySQL, SQLite and PostgreSQL are supported out of the box. The driver
// name passed to Open is handed to database/sql verbatim; use OpenDB when
// the registered driver name differs from the dialect name.
package sqlgraph

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"maps"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/grafo/dialect"
)

// DefaultTable is the vertex table name used unless WithTable overrides it.
const DefaultTable = "vertices"

// validTableRe validates table names (alphanumeric, underscores, dots for
// schema.name).
var validTableRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*$`)

// Store is a dialect.Graph implementation backed by a SQL database.
type Store struct {
	db      *sql.DB
	dialect string
	table   string
	log     *log.Logger
}

var _ dialect.Graph = (*Store)(nil)

// Option configures a Store.
type Option func(*Store) error

// WithTable sets the vertex table name.
func WithTable(name string) Option {
	return func(s *Store) error {
		if name == "" || len(name) > 128 || !validTableRe.MatchString(name) {
			return fmt.Errorf("sqlgraph: invalid table name %q", name)
		}
		s.table = name
		return nil
	}
}

// WithLogger makes the store log every statement at debug level.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) error {
		s.log = l
		return nil
	}
}

// Open wraps database/sql.Open and returns a store speaking the given
// dialect.
func Open(dialectName, source string, opts ...Option) (*Store, error) {
	db, err := sql.Open(dialectName, source)
	if err != nil {
		return nil, err
	}
	return OpenDB(dialectName, db, opts...)
}

// OpenDB wraps an existing database handle with a store.
func OpenDB(dialectName string, db *sql.DB, opts ...Option) (*Store, error) {
	s := &Store{db: db, dialect: dialectName, table: DefaultTable}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// DB returns the underlying database handle.
func (s *Store) DB() *sql.DB { return s.db }

// Dialect returns the base dialect name, stripping any suffix a wrapping
// driver may have registered under.
func (s *Store) Dialect() string {
	for _, name := range []string{dialect.MySQL, dialect.SQLite, dialect.Postgres} {
		if strings.HasPrefix(s.dialect, name) {
			return name
		}
	}
	return s.dialect
}

// row is the scanned form of a vertex. It implements dialect.Vertex.
type row struct {
	id    dialect.ID
	label string
	props map[string]any
}

func (r *row) ID() dialect.ID             { return r.id }
func (r *row) Label() string              { return r.label }
func (r *row) Properties() map[string]any { return r.props }

// CreateVertex inserts a vertex row. A nil id lets the database assign
// one. On PostgreSQL, explicitly provided identifiers do not advance the
// identity sequence.
func (s *Store) CreateVertex(ctx context.Context, label string, id *dialect.ID, properties map[string]any) (dialect.Vertex, error) {
	if label == "" {
		return nil, dialect.NewConstraintError("vertex label cannot be empty", nil)
	}
	raw, err := encodeProps(properties)
	if err != nil {
		return nil, err
	}
	var vid dialect.ID
	switch {
	case id != nil:
		query := fmt.Sprintf("INSERT INTO %s (id, label, props) VALUES (%s, %s, %s)",
			s.table, s.placeholder(1), s.placeholder(2), s.placeholder(3))
		s.debug("create vertex", "label", label, "id", int64(*id))
		if _, err := s.db.ExecContext(ctx, query, int64(*id), label, raw); err != nil {
			if isUniqueViolation(err) {
				return nil, dialect.NewConstraintError(fmt.Sprintf("vertex %d already exists", *id), err)
			}
			return nil, fmt.Errorf("sqlgraph: create vertex: %w", err)
		}
		vid = *id
	case s.Dialect() == dialect.Postgres:
		query := fmt.Sprintf("INSERT INTO %s (label, props) VALUES ($1, $2) RETURNING id", s.table)
		s.debug("create vertex", "label", label)
		var n int64
		if err := s.db.QueryRowContext(ctx, query, label, raw).Scan(&n); err != nil {
			return nil, fmt.Errorf("sqlgraph: create vertex: %w", err)
		}
		vid = dialect.ID(n)
	default:
		query := fmt.Sprintf("INSERT INTO %s (label, props) VALUES (?, ?)", s.table)
		s.debug("create vertex", "label", label)
		res, err := s.db.ExecContext(ctx, query, label, raw)
		if err != nil {
			return nil, fmt.Errorf("sqlgraph: create vertex: %w", err)
		}
		n, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("sqlgraph: create vertex: %w", err)
		}
		vid = dialect.ID(n)
	}
	props := maps.Clone(properties)
	if props == nil {
		props = make(map[string]any)
	}
	return &row{id: vid, label: label, props: props}, nil
}

// Vertex returns the vertex with the given id.
func (s *Store) Vertex(ctx context.Context, id dialect.ID) (dialect.Vertex, error) {
	query := fmt.Sprintf("SELECT label, props FROM %s WHERE id = %s", s.table, s.placeholder(1))
	s.debug("read vertex", "id", int64(id))
	var (
		label string
		raw   []byte
	)
	switch err := s.db.QueryRowContext(ctx, query, int64(id)).Scan(&label, &raw); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, dialect.NewNotFoundErrorWithID("", id)
	case err != nil:
		return nil, fmt.Errorf("sqlgraph: read vertex: %w", err)
	}
	props, err := decodeProps(raw)
	if err != nil {
		return nil, err
	}
	return &row{id: id, label: label, props: props}, nil
}

// VerticesByLabel returns an iterator over all vertices with the given
// label, ordered by id. Each range over the sequence runs a fresh query.
func (s *Store) VerticesByLabel(ctx context.Context, label string) iter.Seq2[dialect.Vertex, error] {
	return func(yield func(dialect.Vertex, error) bool) {
		query := fmt.Sprintf("SELECT id, label, props FROM %s WHERE label = %s ORDER BY id",
			s.table, s.placeholder(1))
		s.debug("iterate vertices", "label", label)
		rows, err := s.db.QueryContext(ctx, query, label)
		if err != nil {
			yield(nil, fmt.Errorf("sqlgraph: iterate vertices: %w", err))
			return
		}
		defer rows.Close()
		for rows.Next() {
			var (
				n     int64
				label string
				raw   []byte
			)
			if err := rows.Scan(&n, &label, &raw); err != nil {
				yield(nil, fmt.Errorf("sqlgraph: iterate vertices: %w", err))
				return
			}
			props, err := decodeProps(raw)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(&row{id: dialect.ID(n), label: label, props: props}, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("sqlgraph: iterate vertices: %w", err))
		}
	}
}

// ReplaceProperties swaps the props column of the vertex row.
func (s *Store) ReplaceProperties(ctx context.Context, id dialect.ID, properties map[string]any) error {
	raw, err := encodeProps(properties)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("UPDATE %s SET props = %s WHERE id = %s",
		s.table, s.placeholder(1), s.placeholder(2))
	s.debug("replace properties", "id", int64(id))
	res, err := s.db.ExecContext(ctx, query, raw, int64(id))
	if err != nil {
		return fmt.Errorf("sqlgraph: replace properties: %w", err)
	}
	return s.checkAffected(res, id)
}

// DeleteVertex removes the vertex row with the given id.
func (s *Store) DeleteVertex(ctx context.Context, id dialect.ID) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = %s", s.table, s.placeholder(1))
	s.debug("delete vertex", "id", int64(id))
	res, err := s.db.ExecContext(ctx, query, int64(id))
	if err != nil {
		return fmt.Errorf("sqlgraph: delete vertex: %w", err)
	}
	return s.checkAffected(res, id)
}

// Close closes the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// checkAffected maps a zero affected-rows result to a NotFoundError.
func (s *Store) checkAffected(res sql.Result, id dialect.ID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlgraph: rows affected: %w", err)
	}
	if n == 0 {
		return dialect.NewNotFoundErrorWithID("", id)
	}
	return nil
}

// placeholder returns the bind placeholder for the n-th argument.
func (s *Store) placeholder(n int) string {
	if s.Dialect() == dialect.Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (s *Store) debug(msg string, keyvals ...any) {
	if s.log != nil {
		s.log.Debug(msg, keyvals...)
	}
}

// encodeProps serializes a property map.
func encodeProps(properties map[string]any) ([]byte, error) {
	if properties == nil {
		properties = make(map[string]any)
	}
	raw, err := msgpack.Marshal(properties)
	if err != nil {
		return nil, fmt.Errorf("sqlgraph: encode properties: %w", err)
	}
	return raw, nil
}

// decodeProps deserializes a props column. Loose interface decoding keeps
// integers at int64 instead of the narrowest type that fits.
func decodeProps(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return make(map[string]any), nil
	}
	dec := msgpack.NewDecoder(bytes.NewReader(raw))
	dec.UseLooseInterfaceDecoding(true)
	var props map[string]any
	if err := dec.Decode(&props); err != nil {
		return nil, fmt.Errorf("sqlgraph: decode properties: %w", err)
	}
	if props == nil {
		props = make(map[string]any)
	}
	return props, nil
}
