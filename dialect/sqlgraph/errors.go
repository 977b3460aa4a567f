package sqlgraph

import (
	"errors"
	"strings"
)

// sqlStateError is implemented by driver errors that expose the SQLSTATE
// of the failure, such as pq.Error and pgconn.PgError.
type sqlStateError interface {
	SQLState() string
}

// resultCoder is implemented by driver errors that carry a numeric result
// code, such as the modernc.org/sqlite error type.
type resultCoder interface {
	Code() int
}

// pgUniqueViolation is SQLSTATE 23505, unique_violation.
const pgUniqueViolation = "23505"

// SQLite result codes raised for duplicate keys: SQLITE_CONSTRAINT and
// its PRIMARYKEY and UNIQUE extended forms.
const (
	sqliteConstraint           = 19
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// isUniqueViolation reports whether the error is a uniqueness violation
// raised by the database, such as an INSERT reusing an existing vertex
// id. Driver error types are matched through their code accessors so no
// driver package is imported. The MySQL driver exposes its error number
// only as a struct field, so it is matched on the message instead.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if e, ok := asError[sqlStateError](err); ok && e.SQLState() == pgUniqueViolation {
		return true
	}
	if e, ok := asError[resultCoder](err); ok {
		switch e.Code() {
		case sqliteConstraint, sqliteConstraintPrimaryKey, sqliteConstraintUnique:
			return true
		}
	}
	return containsAny(err.Error(),
		"UNIQUE constraint failed",   // SQLite
		"violates unique constraint", // PostgreSQL
		"Error 1062",                 // MySQL
	)
}

// asError extracts an error implementing T from the chain.
func asError[T any](err error) (T, bool) {
	for err != nil {
		if e, ok := err.(T); ok {
			return e, true
		}
		err = errors.Unwrap(err)
	}
	var zero T
	return zero, false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
