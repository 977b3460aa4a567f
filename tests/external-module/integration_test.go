// Package integration exercises the public grafo API from an external
// module, the way an application would consume it.
package integration

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/syssam/grafo"
	"github.com/syssam/grafo/dialect"
	"github.com/syssam/grafo/dialect/inmem"
	"github.com/syssam/grafo/dialect/sqlgraph"
	"github.com/syssam/grafo/privacy"
	"github.com/syssam/grafo/querylanguage"
	"github.com/syssam/grafo/schema/field"
)

// imprint is a transparent wrapper around a record label name.
type imprint struct {
	name string
}

func (i imprint) Unwrap() any { return i.name }

func (i *imprint) Wrap(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("imprint: cannot enclose %T", v)
	}
	i.name = s
	return nil
}

// Artist is a record declared the way an application would declare one.
type Artist struct {
	ID      int64
	Name    string
	Debut   time.Time
	Plays   *int
	Imprint imprint
}

func (Artist) Fields() []grafo.Field {
	return []grafo.Field{
		field.Int64("id").Identifier(),
		field.String("name"),
		field.Time("debut"),
		field.Int("plays").Optional(),
		field.String("imprint"),
	}
}

// TestMarshalRoundTrip tests converting a record to a vertex and back.
func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	plays := 1500
	in := Artist{
		ID:      7,
		Name:    "holly",
		Debut:   time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC),
		Plays:   &plays,
		Imprint: imprint{name: "blue note"},
	}

	v, err := grafo.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, "Artist", v.Label, "the label defaults to the type's own name")
	require.NotNil(t, v.ID)
	assert.Equal(t, dialect.ID(7), *v.ID)
	assert.Equal(t, "holly", v.Properties["name"])
	assert.Equal(t, "blue note", v.Properties["imprint"], "wrappers store their enclosed value")
	assert.Equal(t, 1500, v.Properties["plays"])
	assert.NotContains(t, v.Properties, "id")

	out, err := grafo.Unmarshal[Artist](v)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

// TestMarshalOptionalAbsent tests that nil optionals produce no property.
func TestMarshalOptionalAbsent(t *testing.T) {
	t.Parallel()

	v, err := grafo.Marshal(Artist{ID: 8, Name: "miles", Debut: time.Now()})
	require.NoError(t, err)
	assert.NotContains(t, v.Properties, "plays")

	out, err := grafo.Unmarshal[Artist](v)
	require.NoError(t, err)
	assert.Nil(t, out.Plays)
}

// TestInMemoryCRUD tests the full record lifecycle over the in-memory
// store.
func TestInMemoryCRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := inmem.New()
	defer store.Close()

	few, lots := 900, 4200
	artists := []Artist{
		{ID: 1, Name: "holly", Debut: time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), Plays: &lots, Imprint: imprint{name: "blue note"}},
		{ID: 2, Name: "miles", Debut: time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC), Plays: &few, Imprint: imprint{name: "verve"}},
	}
	for _, a := range artists {
		id, err := grafo.Insert(ctx, store, a)
		require.NoError(t, err)
		assert.Equal(t, dialect.ID(a.ID), id)
	}

	got, err := grafo.Read[Artist](ctx, store, 1)
	require.NoError(t, err)
	assert.Equal(t, artists[0], got)

	got.Name = "holly golightly"
	require.NoError(t, grafo.Update(ctx, store, got))
	updated, err := grafo.Read[Artist](ctx, store, 1)
	require.NoError(t, err)
	assert.Equal(t, "holly golightly", updated.Name)

	var all []Artist
	for a, err := range grafo.All[Artist](ctx, store) {
		require.NoError(t, err)
		all = append(all, a)
	}
	assert.Len(t, all, 2)

	var popular []Artist
	pred := querylanguage.IntGT(1000).Field("plays")
	for a, err := range grafo.AllMatching[Artist](ctx, store, pred) {
		require.NoError(t, err)
		popular = append(popular, a)
	}
	require.Len(t, popular, 1)
	assert.Equal(t, "holly golightly", popular[0].Name)

	require.NoError(t, grafo.Delete(ctx, store, 2))
	_, err = grafo.Read[Artist](ctx, store, 2)
	assert.True(t, dialect.IsNotFound(err))
}

// TestSQLiteStore tests the SQL-backed store end to end, wrapped with
// operation statistics.
func TestSQLiteStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base, err := sqlgraph.Open(dialect.SQLite, filepath.Join(t.TempDir(), "it.db"))
	require.NoError(t, err)
	defer base.Close()
	require.NoError(t, base.Migrate(ctx))

	g := dialect.NewStatsGraph(base)

	in := Artist{ID: 3, Name: "nina", Debut: time.Date(1958, 2, 1, 0, 0, 0, 0, time.UTC), Imprint: imprint{name: "bethlehem"}}
	id, err := grafo.Insert(ctx, g, in)
	require.NoError(t, err)

	out, err := grafo.Read[Artist](ctx, g, id)
	require.NoError(t, err)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Imprint, out.Imprint)
	assert.True(t, in.Debut.Equal(out.Debut))

	var count int
	for _, err := range grafo.All[Artist](ctx, g) {
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, 1, count)

	s := g.OpStats().Stats()
	assert.Equal(t, int64(1), s.TotalWrites)
	assert.Equal(t, int64(2), s.TotalReads)
}

// Memo is a tenant-scoped record for the privacy tests.
type Memo struct {
	ID       *int64
	TenantID string
	Body     string
}

func (Memo) Fields() []grafo.Field {
	return []grafo.Field{
		field.Int64("id").Identifier().Optional(),
		field.String("tenant_id"),
		field.String("body"),
	}
}

// TestPrivacyIsolation tests tenant isolation through the privacy
// decorator using the regular record operations.
func TestPrivacyIsolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := inmem.New()
	defer store.Close()
	for _, m := range []Memo{
		{TenantID: "acme", Body: "ship it"},
		{TenantID: "acme", Body: "fix the build"},
		{TenantID: "umbrella", Body: "classified"},
	} {
		_, err := grafo.Insert(ctx, store, m)
		require.NoError(t, err)
	}

	g := privacy.NewGraph(store, privacy.Policy{
		Query: privacy.QueryPolicy{privacy.TenantQueryRule("tenant_id")},
	})

	viewer := privacy.WithViewer(ctx, &privacy.SimpleViewer{UserID: "u1", TenantID: "acme"})
	var bodies []string
	for m, err := range grafo.All[Memo](viewer, g) {
		require.NoError(t, err)
		bodies = append(bodies, m.Body)
	}
	assert.ElementsMatch(t, []string{"ship it", "fix the build"}, bodies)

	_, err := grafo.Read[Memo](viewer, g, 3)
	assert.True(t, dialect.IsNotFound(err), "foreign tenant memo must read as not found, got %v", err)
}

// Genre is decoded through a hand-written marshaller to prove the
// Marshaller interface is implementable outside the module.
type Genre struct {
	ID   int64
	Name string
}

func (Genre) Fields() []grafo.Field {
	return []grafo.Field{
		field.Int64("id").Identifier(),
		field.String("name"),
	}
}

// genreMarshaller is written the way generated marshallers are.
type genreMarshaller struct {
	from, to atomic.Int64
}

func (m *genreMarshaller) FromRecord(rec Genre) (*grafo.Vertex, error) {
	m.from.Add(1)
	id := dialect.ID(rec.ID)
	return &grafo.Vertex{
		ID:    &id,
		Label: "Genre",
		Properties: map[string]any{
			"name": rec.Name,
		},
	}, nil
}

func (m *genreMarshaller) ToRecord(v *grafo.Vertex) (Genre, error) {
	m.to.Add(1)
	var rec Genre
	if v.ID != nil {
		rec.ID = int64(*v.ID)
	}
	name, err := grafo.DecodeProperty[string]("Genre", "name", v.Properties)
	if err != nil {
		return rec, err
	}
	rec.Name = name
	return rec, nil
}

// TestRegisteredMarshaller tests that Register installs a marshaller the
// record operations pick up instead of deriving one.
func TestRegisteredMarshaller(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := &genreMarshaller{}
	grafo.Register[Genre](m)

	store := inmem.New()
	defer store.Close()

	id, err := grafo.Insert(ctx, store, Genre{ID: 1, Name: "jazz"})
	require.NoError(t, err)

	got, err := grafo.Read[Genre](ctx, store, id)
	require.NoError(t, err)
	assert.Equal(t, Genre{ID: 1, Name: "jazz"}, got)

	assert.Positive(t, m.from.Load(), "insert went through the registered marshaller")
	assert.Positive(t, m.to.Load(), "read went through the registered marshaller")
}
