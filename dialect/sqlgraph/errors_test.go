package sqlgraph

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stateError mimics the postgres driver errors exposing SQLState.
type stateError struct {
	state string
}

func (e *stateError) Error() string    { return "driver error " + e.state }
func (e *stateError) SQLState() string { return e.state }

// codedError mimics the modernc.org/sqlite error type exposing a
// numeric result code.
type codedError struct {
	code int
}

func (e *codedError) Error() string { return fmt.Sprintf("driver error %d", e.code) }
func (e *codedError) Code() int     { return e.code }

// TestIsUniqueViolation tests duplicate-key detection across driver
// error shapes.
func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("connection refused"), false},
		{"sqlstate", &stateError{state: "23505"}, true},
		{"sqlstate foreign key", &stateError{state: "23503"}, false},
		{"sqlstate serialization", &stateError{state: "40001"}, false},
		{"sqlite constraint", &codedError{code: 19}, true},
		{"sqlite primary key", &codedError{code: 1555}, true},
		{"sqlite unique", &codedError{code: 2067}, true},
		{"sqlite busy", &codedError{code: 5}, false},
		{"sqlite message", errors.New("UNIQUE constraint failed: vertices.id"), true},
		{"postgres message", errors.New(`duplicate key value violates unique constraint "vertices_pkey"`), true},
		{"mysql message", errors.New("Error 1062 (23000): Duplicate entry '7' for key 'PRIMARY'"), true},
		{"wrapped", fmt.Errorf("exec: %w", &stateError{state: "23505"}), true},
		{"deeply wrapped", fmt.Errorf("tx: %w", fmt.Errorf("exec: %w", &codedError{code: 1555})), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}
