package grafo_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/grafo"
	"github.com/syssam/grafo/dialect"
)

// secret is a transparent wrapper around a string, in the style of a
// redacting type that should be stored as its plain value.
type secret struct {
	v string
}

func (s secret) Unwrap() any { return s.v }

func (s *secret) Wrap(v any) error {
	sv, ok := v.(string)
	if !ok {
		return fmt.Errorf("secret: cannot enclose %T", v)
	}
	s.v = sv
	return nil
}

// doubled wraps a secret, so unwrapping must recurse to the string.
type doubled struct {
	inner secret
}

func (d doubled) Unwrap() any { return d.inner }

func (d *doubled) Wrap(v any) error { return d.inner.Wrap(v) }

// TestUnwrap tests recursive unwrapping of transparent wrappers.
func TestUnwrap(t *testing.T) {
	t.Parallel()

	t.Run("PlainValue", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 42, grafo.Unwrap(42))
		assert.Equal(t, "s", grafo.Unwrap("s"))
	})

	t.Run("Nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, grafo.Unwrap(nil))
	})

	t.Run("SingleWrapper", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hunter2", grafo.Unwrap(secret{v: "hunter2"}))
	})

	t.Run("NestedWrappers", func(t *testing.T) {
		t.Parallel()

		d := doubled{inner: secret{v: "hunter2"}}
		assert.Equal(t, "hunter2", grafo.Unwrap(d))
	})
}

// TestMarshallerFunc tests the MarshallerFunc adapter.
func TestMarshallerFunc(t *testing.T) {
	t.Parallel()

	type color struct {
		Name string
	}

	fromCalled := false
	toCalled := false

	f := grafo.MarshallerFunc[color]{
		From: func(c color) (*grafo.Vertex, error) {
			fromCalled = true
			return &grafo.Vertex{Label: "Color", Properties: map[string]any{"name": c.Name}}, nil
		},
		To: func(v *grafo.Vertex) (color, error) {
			toCalled = true
			return color{Name: v.Properties["name"].(string)}, nil
		},
	}

	// MarshallerFunc must satisfy the Marshaller interface.
	var m grafo.Marshaller[color] = f

	v, err := m.FromRecord(color{Name: "teal"})
	require.NoError(t, err)
	assert.True(t, fromCalled)
	assert.Equal(t, "Color", v.Label)
	assert.Equal(t, "teal", v.Properties["name"])

	c, err := m.ToRecord(v)
	require.NoError(t, err)
	assert.True(t, toCalled)
	assert.Equal(t, "teal", c.Name)
}

// TestVertex tests the vertex value shape.
func TestVertex(t *testing.T) {
	t.Parallel()

	id := dialect.ID(7)
	v := &grafo.Vertex{
		ID:         &id,
		Label:      "User",
		Properties: map[string]any{"name": "a8m"},
	}

	require.NotNil(t, v.ID)
	assert.Equal(t, dialect.ID(7), *v.ID)
	assert.Equal(t, "User", v.Label)
	assert.Equal(t, "a8m", v.Properties["name"])
}
