package sqlgraph

import (
	"context"
	"fmt"

	"github.com/syssam/grafo/dialect"
)

// Migrate creates the vertex table and its label index if they do not
// exist yet. It is safe to call on every startup.
func (s *Store) Migrate(ctx context.Context) error {
	stmts := s.ddl()
	if stmts == nil {
		return fmt.Errorf("sqlgraph: unsupported dialect %q", s.dialect)
	}
	for _, stmt := range stmts {
		s.debug("migrate", "stmt", stmt)
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlgraph: migrate: %w", err)
		}
	}
	return nil
}

// ddl returns the schema statements for the store dialect.
func (s *Store) ddl() []string {
	switch s.Dialect() {
	case dialect.SQLite:
		return []string{
			fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (id INTEGER PRIMARY KEY AUTOINCREMENT, label TEXT NOT NULL, props BLOB NOT NULL)", s.table),
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s_label ON %s (label)", s.table, s.table),
		}
	case dialect.Postgres:
		return []string{
			fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY, label TEXT NOT NULL, props BYTEA NOT NULL)", s.table),
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s_label ON %s (label)", s.table, s.table),
		}
	case dialect.MySQL:
		return []string{
			fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY, label VARCHAR(255) NOT NULL, props MEDIUMBLOB NOT NULL, INDEX %s_label (label))", s.table, s.table),
		}
	}
	return nil
}
