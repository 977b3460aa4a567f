package sqlgraph

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/syssam/grafo"
	"github.com/syssam/grafo/dialect"
	"github.com/syssam/grafo/schema/field"
)

// track is the record used by the integration tests below.
type track struct {
	ID       int64
	Title    string
	Seconds  *int
	AddedAt  time.Time
	Explicit bool
}

func (track) Fields() []grafo.Field {
	return []grafo.Field{
		field.Int64("id").Identifier(),
		field.String("title"),
		field.Int("seconds").Optional(),
		field.Time("added_at"),
		field.Bool("explicit"),
	}
}

func openSQLite(t *testing.T) *Store {
	t.Helper()
	s, err := Open(dialect.SQLite, filepath.Join(t.TempDir(), "graph.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

// TestSQLiteStore tests the store against a real SQLite database.
func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateAndRead", func(t *testing.T) {
		s := openSQLite(t)

		v, err := s.CreateVertex(ctx, "Track", nil, map[string]any{"title": "one more time"})
		require.NoError(t, err)
		assert.Equal(t, dialect.ID(1), v.ID())

		got, err := s.Vertex(ctx, v.ID())
		require.NoError(t, err)
		assert.Equal(t, "Track", got.Label())
		assert.Equal(t, "one more time", got.Properties()["title"])
	})

	t.Run("ExplicitAndDuplicate", func(t *testing.T) {
		s := openSQLite(t)

		id := dialect.ID(10)
		_, err := s.CreateVertex(ctx, "Track", &id, nil)
		require.NoError(t, err)

		_, err = s.CreateVertex(ctx, "Track", &id, nil)
		require.Error(t, err)
		assert.True(t, dialect.IsConstraintError(err))

		// SQLite advances its rowid counter past explicit inserts.
		v, err := s.CreateVertex(ctx, "Track", nil, nil)
		require.NoError(t, err)
		assert.Greater(t, int64(v.ID()), int64(10))
	})

	t.Run("ReplaceAndDelete", func(t *testing.T) {
		s := openSQLite(t)

		v, err := s.CreateVertex(ctx, "Track", nil, map[string]any{"title": "old", "bpm": int64(120)})
		require.NoError(t, err)

		require.NoError(t, s.ReplaceProperties(ctx, v.ID(), map[string]any{"title": "new"}))
		got, err := s.Vertex(ctx, v.ID())
		require.NoError(t, err)
		assert.Equal(t, "new", got.Properties()["title"])
		_, ok := got.Properties()["bpm"]
		assert.False(t, ok)

		require.NoError(t, s.DeleteVertex(ctx, v.ID()))
		_, err = s.Vertex(ctx, v.ID())
		assert.True(t, dialect.IsNotFound(err))
	})

	t.Run("IterationOrder", func(t *testing.T) {
		s := openSQLite(t)

		for _, title := range []string{"a", "b", "c"} {
			_, err := s.CreateVertex(ctx, "Track", nil, map[string]any{"title": title})
			require.NoError(t, err)
		}
		_, err := s.CreateVertex(ctx, "Album", nil, map[string]any{"title": "discovery"})
		require.NoError(t, err)

		var titles []string
		for v, err := range s.VerticesByLabel(ctx, "Track") {
			require.NoError(t, err)
			titles = append(titles, v.Properties()["title"].(string))
		}
		assert.Equal(t, []string{"a", "b", "c"}, titles)
	})
}

// TestSQLiteBinding tests the full marshalling round trip through a real
// SQLite database, serialization included.
func TestSQLiteBinding(t *testing.T) {
	ctx := context.Background()
	s := openSQLite(t)

	seconds := 320
	in := track{
		ID:       1,
		Title:    "around the world",
		Seconds:  &seconds,
		AddedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Explicit: false,
	}

	id, err := grafo.Insert(ctx, s, in)
	require.NoError(t, err)
	assert.Equal(t, dialect.ID(1), id)

	out, err := grafo.Read[track](ctx, s, id)
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.Title, out.Title)
	require.NotNil(t, out.Seconds)
	assert.Equal(t, *in.Seconds, *out.Seconds)
	assert.Equal(t, in.Explicit, out.Explicit)
	// Serialized timestamps come back in a different location; compare
	// the instant, not the struct.
	assert.True(t, in.AddedAt.Equal(out.AddedAt))

	// Updates round trip the optional back to absent.
	in.Seconds = nil
	require.NoError(t, grafo.Update(ctx, s, in))
	out, err = grafo.Read[track](ctx, s, id)
	require.NoError(t, err)
	assert.Nil(t, out.Seconds)

	var titles []string
	for tr, err := range grafo.All[track](ctx, s) {
		require.NoError(t, err)
		titles = append(titles, tr.Title)
	}
	assert.Equal(t, []string{"around the world"}, titles)
}
