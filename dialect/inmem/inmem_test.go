package inmem_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/grafo/dialect"
	"github.com/syssam/grafo/dialect/inmem"
)

// TestCreateVertex tests vertex creation and id assignment.
func TestCreateVertex(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("AssignedIDs", func(t *testing.T) {
		t.Parallel()

		e := inmem.New()
		defer e.Close()

		v1, err := e.CreateVertex(ctx, "User", nil, map[string]any{"name": "a8m"})
		require.NoError(t, err)
		v2, err := e.CreateVertex(ctx, "User", nil, map[string]any{"name": "nati"})
		require.NoError(t, err)

		assert.Equal(t, dialect.ID(1), v1.ID())
		assert.Equal(t, dialect.ID(2), v2.ID())
		assert.Equal(t, "User", v1.Label())
		assert.Equal(t, "a8m", v1.Properties()["name"])
	})

	t.Run("ExplicitID", func(t *testing.T) {
		t.Parallel()

		e := inmem.New()
		defer e.Close()

		id := dialect.ID(42)
		v, err := e.CreateVertex(ctx, "User", &id, nil)
		require.NoError(t, err)
		assert.Equal(t, dialect.ID(42), v.ID())

		// Assigned ids skip past explicit ones.
		next, err := e.CreateVertex(ctx, "User", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, dialect.ID(43), next.ID())
	})

	t.Run("DuplicateID", func(t *testing.T) {
		t.Parallel()

		e := inmem.New()
		defer e.Close()

		id := dialect.ID(7)
		_, err := e.CreateVertex(ctx, "User", &id, nil)
		require.NoError(t, err)

		_, err = e.CreateVertex(ctx, "User", &id, nil)
		require.Error(t, err)
		assert.True(t, dialect.IsConstraintError(err))
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("EmptyLabel", func(t *testing.T) {
		t.Parallel()

		e := inmem.New()
		defer e.Close()

		_, err := e.CreateVertex(ctx, "", nil, nil)
		require.Error(t, err)
		assert.True(t, dialect.IsConstraintError(err))
	})

	t.Run("CopiesProperties", func(t *testing.T) {
		t.Parallel()

		e := inmem.New()
		defer e.Close()

		props := map[string]any{"name": "a8m"}
		v, err := e.CreateVertex(ctx, "User", nil, props)
		require.NoError(t, err)

		// Mutating the input or the returned copy must not leak into
		// the stored vertex.
		props["name"] = "mutated"
		v.Properties()["name"] = "also mutated"

		stored, err := e.Vertex(ctx, v.ID())
		require.NoError(t, err)
		assert.Equal(t, "a8m", stored.Properties()["name"])
	})
}

// TestVertex tests lookups by id.
func TestVertex(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		t.Parallel()

		e := inmem.New()
		defer e.Close()

		created, err := e.CreateVertex(ctx, "User", nil, map[string]any{"name": "a8m"})
		require.NoError(t, err)

		v, err := e.Vertex(ctx, created.ID())
		require.NoError(t, err)
		assert.Equal(t, created.ID(), v.ID())
		assert.Equal(t, "User", v.Label())
	})

	t.Run("NotFound", func(t *testing.T) {
		t.Parallel()

		e := inmem.New()
		defer e.Close()

		_, err := e.Vertex(ctx, 99)
		require.Error(t, err)
		assert.True(t, dialect.IsNotFound(err))
		assert.True(t, errors.Is(err, dialect.ErrNotFound))
	})
}

// TestVerticesByLabel tests label iteration.
func TestVerticesByLabel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("OrderedByID", func(t *testing.T) {
		t.Parallel()

		e := inmem.New()
		defer e.Close()

		for _, name := range []string{"a", "b", "c"} {
			_, err := e.CreateVertex(ctx, "User", nil, map[string]any{"name": name})
			require.NoError(t, err)
		}
		_, err := e.CreateVertex(ctx, "Group", nil, map[string]any{"name": "staff"})
		require.NoError(t, err)

		var ids []dialect.ID
		for v, err := range e.VerticesByLabel(ctx, "User") {
			require.NoError(t, err)
			ids = append(ids, v.ID())
		}
		assert.Equal(t, []dialect.ID{1, 2, 3}, ids)
	})

	t.Run("Restartable", func(t *testing.T) {
		t.Parallel()

		e := inmem.New()
		defer e.Close()

		_, err := e.CreateVertex(ctx, "User", nil, nil)
		require.NoError(t, err)

		seq := e.VerticesByLabel(ctx, "User")
		count := func() int {
			n := 0
			for _, err := range seq {
				require.NoError(t, err)
				n++
			}
			return n
		}
		assert.Equal(t, 1, count())

		// A second range takes a fresh snapshot and sees later writes.
		_, err = e.CreateVertex(ctx, "User", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, count())
	})

	t.Run("EarlyBreak", func(t *testing.T) {
		t.Parallel()

		e := inmem.New()
		defer e.Close()

		for i := 0; i < 5; i++ {
			_, err := e.CreateVertex(ctx, "User", nil, nil)
			require.NoError(t, err)
		}

		n := 0
		for _, err := range e.VerticesByLabel(ctx, "User") {
			require.NoError(t, err)
			n++
			if n == 2 {
				break
			}
		}
		assert.Equal(t, 2, n)
	})

	t.Run("UnknownLabel", func(t *testing.T) {
		t.Parallel()

		e := inmem.New()
		defer e.Close()

		n := 0
		for range e.VerticesByLabel(ctx, "Ghost") {
			n++
		}
		assert.Zero(t, n)
	})
}

// TestReplaceProperties tests whole-map property replacement.
func TestReplaceProperties(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Replaces", func(t *testing.T) {
		t.Parallel()

		e := inmem.New()
		defer e.Close()

		v, err := e.CreateVertex(ctx, "User", nil, map[string]any{"name": "a8m", "age": 30})
		require.NoError(t, err)

		err = e.ReplaceProperties(ctx, v.ID(), map[string]any{"name": "nati"})
		require.NoError(t, err)

		got, err := e.Vertex(ctx, v.ID())
		require.NoError(t, err)
		assert.Equal(t, "nati", got.Properties()["name"])
		_, ok := got.Properties()["age"]
		assert.False(t, ok, "old keys must not survive replacement")
	})

	t.Run("NotFound", func(t *testing.T) {
		t.Parallel()

		e := inmem.New()
		defer e.Close()

		err := e.ReplaceProperties(ctx, 99, map[string]any{})
		require.Error(t, err)
		assert.True(t, dialect.IsNotFound(err))
	})
}

// TestDeleteVertex tests vertex removal.
func TestDeleteVertex(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e := inmem.New()
	defer e.Close()

	v, err := e.CreateVertex(ctx, "User", nil, nil)
	require.NoError(t, err)

	require.NoError(t, e.DeleteVertex(ctx, v.ID()))

	_, err = e.Vertex(ctx, v.ID())
	assert.True(t, dialect.IsNotFound(err))

	err = e.DeleteVertex(ctx, v.ID())
	require.Error(t, err)
	assert.True(t, dialect.IsNotFound(err))

	n := 0
	for range e.VerticesByLabel(ctx, "User") {
		n++
	}
	assert.Zero(t, n)
}

// TestClose tests closed engine behavior.
func TestClose(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e := inmem.New()
	_, err := e.CreateVertex(ctx, "User", nil, nil)
	require.NoError(t, err)

	require.NoError(t, e.Close())
	require.NoError(t, e.Close(), "closing twice must be a no-op")

	_, err = e.CreateVertex(ctx, "User", nil, nil)
	assert.ErrorIs(t, err, inmem.ErrClosed)

	_, err = e.Vertex(ctx, 1)
	assert.ErrorIs(t, err, inmem.ErrClosed)

	for _, err := range e.VerticesByLabel(ctx, "User") {
		assert.ErrorIs(t, err, inmem.ErrClosed)
	}
}

// TestContextCancelled tests context handling.
func TestContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := inmem.New()
	defer e.Close()

	_, err := e.CreateVertex(ctx, "User", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = e.Vertex(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestConcurrent tests concurrent writers.
func TestConcurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e := inmem.New()
	defer e.Close()

	g := new(errgroup.Group)
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			_, err := e.CreateVertex(ctx, "User", nil, map[string]any{"n": 1})
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 32, e.Len())

	ids := make(map[dialect.ID]struct{})
	for v, err := range e.VerticesByLabel(ctx, "User") {
		require.NoError(t, err)
		ids[v.ID()] = struct{}{}
	}
	assert.Len(t, ids, 32, "assigned ids must be unique")
}
