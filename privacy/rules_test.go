package privacy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/grafo/dialect"
	"github.com/syssam/grafo/dialect/inmem"
	"github.com/syssam/grafo/privacy"
)

// TestSimpleViewer tests the SimpleViewer implementation.
func TestSimpleViewer(t *testing.T) {
	t.Parallel()

	viewer := &privacy.SimpleViewer{
		UserID:   "user-123",
		Roles:    []string{"admin", "user"},
		TenantID: "tenant-abc",
	}

	assert.Equal(t, "user-123", viewer.GetID())
	assert.Equal(t, []string{"admin", "user"}, viewer.GetRoles())
	assert.Equal(t, "tenant-abc", viewer.GetTenantID())
}

// TestViewerContext tests viewer context functions.
func TestViewerContext(t *testing.T) {
	t.Parallel()

	t.Run("round_trip", func(t *testing.T) {
		t.Parallel()
		viewer := &privacy.SimpleViewer{UserID: "user-123"}
		ctx := privacy.WithViewer(context.Background(), viewer)
		got := privacy.ViewerFromContext(ctx)
		require.NotNil(t, got)
		assert.Equal(t, "user-123", got.GetID())
	})

	t.Run("missing_viewer", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, privacy.ViewerFromContext(context.Background()))
	})
}

// TestDenyIfNoViewer tests the authentication gate rule.
func TestDenyIfNoViewer(t *testing.T) {
	t.Parallel()

	rule := privacy.DenyIfNoViewer()
	q := &privacy.Query{Op: privacy.OpScan, Label: "user"}

	err := rule.EvalQuery(context.Background(), q)
	require.ErrorIs(t, err, privacy.Deny)
	assert.Contains(t, err.Error(), "viewer required")

	ctx := privacy.WithViewer(context.Background(), &privacy.SimpleViewer{UserID: "u1"})
	assert.ErrorIs(t, rule.EvalQuery(ctx, q), privacy.Skip)
	assert.ErrorIs(t, rule.EvalMutation(ctx, &privacy.Mutation{Op: privacy.OpCreate}), privacy.Skip)
}

// TestHasRole tests role-gated access.
func TestHasRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		roles []string
		want  error
	}{
		{name: "has_role", roles: []string{"user", "admin"}, want: privacy.Allow},
		{name: "missing_role", roles: []string{"user"}, want: privacy.Skip},
		{name: "no_roles", roles: nil, want: privacy.Skip},
	}

	rule := privacy.HasRole("admin")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := privacy.WithViewer(context.Background(), &privacy.SimpleViewer{UserID: "u1", Roles: tt.roles})
			assert.ErrorIs(t, rule.EvalQuery(ctx, &privacy.Query{}), tt.want)
			assert.ErrorIs(t, rule.EvalMutation(ctx, &privacy.Mutation{}), tt.want)
		})
	}

	t.Run("no_viewer", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, rule.EvalQuery(context.Background(), &privacy.Query{}), privacy.Skip)
	})
}

// TestHasAnyRole tests access gated on any of several roles.
func TestHasAnyRole(t *testing.T) {
	t.Parallel()

	rule := privacy.HasAnyRole("admin", "moderator")

	ctx := privacy.WithViewer(context.Background(), &privacy.SimpleViewer{Roles: []string{"moderator"}})
	assert.ErrorIs(t, rule.EvalQuery(ctx, &privacy.Query{}), privacy.Allow)

	ctx = privacy.WithViewer(context.Background(), &privacy.SimpleViewer{Roles: []string{"user"}})
	assert.ErrorIs(t, rule.EvalQuery(ctx, &privacy.Query{}), privacy.Skip)
}

// TestIsOwner tests ownership checks against mutation properties.
func TestIsOwner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		viewerID   string
		properties map[string]any
		want       error
	}{
		{
			name:       "string_match",
			viewerID:   "user-1",
			properties: map[string]any{"owner_id": "user-1"},
			want:       privacy.Allow,
		},
		{
			name:       "string_mismatch",
			viewerID:   "user-1",
			properties: map[string]any{"owner_id": "user-2"},
			want:       privacy.Skip,
		},
		{
			name:       "int64_match",
			viewerID:   "42",
			properties: map[string]any{"owner_id": int64(42)},
			want:       privacy.Allow,
		},
		{
			name:       "int_match",
			viewerID:   "42",
			properties: map[string]any{"owner_id": 42},
			want:       privacy.Allow,
		},
		{
			name:       "missing_field",
			viewerID:   "user-1",
			properties: map[string]any{"title": "unrelated"},
			want:       privacy.Skip,
		},
	}

	rule := privacy.IsOwner("owner_id")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := privacy.WithViewer(context.Background(), &privacy.SimpleViewer{UserID: tt.viewerID})
			m := &privacy.Mutation{Op: privacy.OpCreate, Label: "doc", Properties: tt.properties}
			assert.ErrorIs(t, rule.EvalMutation(ctx, m), tt.want)
		})
	}

	t.Run("no_viewer", func(t *testing.T) {
		t.Parallel()
		m := &privacy.Mutation{Op: privacy.OpCreate, Properties: map[string]any{"owner_id": "user-1"}}
		assert.ErrorIs(t, rule.EvalMutation(context.Background(), m), privacy.Skip)
	})
}

// TestTenantRule tests tenant isolation on mutations.
func TestTenantRule(t *testing.T) {
	t.Parallel()

	rule := privacy.TenantRule("tenant_id")

	t.Run("matching_tenant", func(t *testing.T) {
		t.Parallel()
		ctx := privacy.WithViewer(context.Background(), &privacy.SimpleViewer{UserID: "u1", TenantID: "acme"})
		m := &privacy.Mutation{Op: privacy.OpCreate, Properties: map[string]any{"tenant_id": "acme"}}
		assert.ErrorIs(t, rule.EvalMutation(ctx, m), privacy.Allow)
	})

	t.Run("foreign_tenant", func(t *testing.T) {
		t.Parallel()
		ctx := privacy.WithViewer(context.Background(), &privacy.SimpleViewer{UserID: "u1", TenantID: "acme"})
		m := &privacy.Mutation{Op: privacy.OpCreate, Properties: map[string]any{"tenant_id": "umbrella"}}
		err := rule.EvalMutation(ctx, m)
		require.ErrorIs(t, err, privacy.Deny)
		assert.Contains(t, err.Error(), "tenant mismatch")
	})

	t.Run("viewer_without_tenant", func(t *testing.T) {
		t.Parallel()
		ctx := privacy.WithViewer(context.Background(), &privacy.SimpleViewer{UserID: "u1"})
		m := &privacy.Mutation{Op: privacy.OpCreate, Properties: map[string]any{"tenant_id": "acme"}}
		assert.ErrorIs(t, rule.EvalMutation(ctx, m), privacy.Skip)
	})

	t.Run("mutation_without_field", func(t *testing.T) {
		t.Parallel()
		ctx := privacy.WithViewer(context.Background(), &privacy.SimpleViewer{UserID: "u1", TenantID: "acme"})
		m := &privacy.Mutation{Op: privacy.OpUpdate, Properties: map[string]any{"name": "ada"}}
		assert.ErrorIs(t, rule.EvalMutation(ctx, m), privacy.Skip)
	})
}

// TestOwnerQueryRule tests owner-scoped row filtering.
func TestOwnerQueryRule(t *testing.T) {
	t.Parallel()

	t.Run("no_viewer_denies", func(t *testing.T) {
		t.Parallel()
		rule := privacy.OwnerQueryRule("owner_id")
		err := rule.EvalQuery(context.Background(), &privacy.Query{Op: privacy.OpScan})
		require.ErrorIs(t, err, privacy.Deny)
		assert.Contains(t, err.Error(), "viewer required")
	})

	t.Run("scan_sees_own_rows_only", func(t *testing.T) {
		t.Parallel()
		store := inmem.New()
		defer store.Close()
		for _, props := range []map[string]any{
			{"owner_id": "ada", "title": "draft"},
			{"owner_id": "ada", "title": "notes"},
			{"owner_id": "bob", "title": "secret"},
		} {
			_, err := store.CreateVertex(context.Background(), "doc", nil, props)
			require.NoError(t, err)
		}
		g := privacy.NewGraph(store, privacy.Policy{
			Query: privacy.QueryPolicy{privacy.OwnerQueryRule("owner_id")},
		})

		ctx := privacy.WithViewer(context.Background(), &privacy.SimpleViewer{UserID: "ada"})
		titles := make([]string, 0, 2)
		for v, err := range g.VerticesByLabel(ctx, "doc") {
			require.NoError(t, err)
			titles = append(titles, v.Properties()["title"].(string))
		}
		assert.ElementsMatch(t, []string{"draft", "notes"}, titles)
	})

	t.Run("lookup_of_foreign_row_not_found", func(t *testing.T) {
		t.Parallel()
		store := inmem.New()
		defer store.Close()
		v, err := store.CreateVertex(context.Background(), "doc", nil, map[string]any{"owner_id": "bob"})
		require.NoError(t, err)
		g := privacy.NewGraph(store, privacy.Policy{
			Query: privacy.QueryPolicy{privacy.OwnerQueryRule("owner_id")},
		})

		ctx := privacy.WithViewer(context.Background(), &privacy.SimpleViewer{UserID: "ada"})
		_, err = g.Vertex(ctx, v.ID())
		assert.True(t, dialect.IsNotFound(err), "expected not found, got %v", err)
	})
}

// TestTenantQueryRule tests tenant-scoped row filtering.
func TestTenantQueryRule(t *testing.T) {
	t.Parallel()

	rule := privacy.TenantQueryRule("tenant_id")

	t.Run("no_viewer_denies", func(t *testing.T) {
		t.Parallel()
		err := rule.EvalQuery(context.Background(), &privacy.Query{Op: privacy.OpScan})
		require.ErrorIs(t, err, privacy.Deny)
		assert.Contains(t, err.Error(), "viewer required")
	})

	t.Run("no_tenant_denies", func(t *testing.T) {
		t.Parallel()
		ctx := privacy.WithViewer(context.Background(), &privacy.SimpleViewer{UserID: "u1"})
		err := rule.EvalQuery(ctx, &privacy.Query{Op: privacy.OpScan})
		require.ErrorIs(t, err, privacy.Deny)
		assert.Contains(t, err.Error(), "tenant required")
	})

	t.Run("scan_scoped_to_tenant", func(t *testing.T) {
		t.Parallel()
		store := inmem.New()
		defer store.Close()
		seedGraph(t, store)
		g := privacy.NewGraph(store, privacy.Policy{
			Query: privacy.QueryPolicy{privacy.TenantQueryRule("tenant_id")},
		})

		ctx := privacy.WithViewer(context.Background(), &privacy.SimpleViewer{UserID: "u1", TenantID: "umbrella"})
		names := make([]string, 0, 1)
		for v, err := range g.VerticesByLabel(ctx, "user") {
			require.NoError(t, err)
			names = append(names, v.Properties()["name"].(string))
		}
		assert.Equal(t, []string{"eve"}, names)
	})
}

// TestIntegratedPolicyChain tests a realistic policy stack over a store.
func TestIntegratedPolicyChain(t *testing.T) {
	t.Parallel()

	newStore := func(t *testing.T) (*privacy.Graph, []dialect.ID) {
		t.Helper()
		store := inmem.New()
		t.Cleanup(func() { store.Close() })
		ids := make([]dialect.ID, 0, 2)
		for _, props := range []map[string]any{
			{"owner_id": "ada", "title": "ada's doc"},
			{"owner_id": "bob", "title": "bob's doc"},
		} {
			v, err := store.CreateVertex(context.Background(), "doc", nil, props)
			require.NoError(t, err)
			ids = append(ids, v.ID())
		}
		g := privacy.NewGraph(store, privacy.Policy{
			Query: privacy.QueryPolicy{
				privacy.DenyIfNoViewer(),
				privacy.HasRole("admin"),
				privacy.OwnerQueryRule("owner_id"),
			},
			Mutation: privacy.MutationPolicy{
				privacy.DenyIfNoViewer(),
				privacy.HasRole("admin"),
				privacy.IsOwner("owner_id"),
				privacy.AlwaysDenyRule(),
			},
		})
		return g, ids
	}

	t.Run("anonymous_denied", func(t *testing.T) {
		t.Parallel()
		g, ids := newStore(t)
		_, err := g.Vertex(context.Background(), ids[0])
		assert.ErrorIs(t, err, privacy.Deny)
		_, err = g.CreateVertex(context.Background(), "doc", nil, map[string]any{"owner_id": "ada"})
		assert.ErrorIs(t, err, privacy.Deny)
	})

	t.Run("admin_sees_everything", func(t *testing.T) {
		t.Parallel()
		g, _ := newStore(t)
		ctx := privacy.WithViewer(context.Background(), &privacy.SimpleViewer{UserID: "root", Roles: []string{"admin"}})

		var count int
		for _, err := range g.VerticesByLabel(ctx, "doc") {
			require.NoError(t, err)
			count++
		}
		assert.Equal(t, 2, count)

		_, err := g.CreateVertex(ctx, "doc", nil, map[string]any{"owner_id": "someone-else"})
		assert.NoError(t, err)
	})

	t.Run("owner_scoped_to_own_rows", func(t *testing.T) {
		t.Parallel()
		g, ids := newStore(t)
		ctx := privacy.WithViewer(context.Background(), &privacy.SimpleViewer{UserID: "ada"})

		got, err := g.Vertex(ctx, ids[0])
		require.NoError(t, err)
		assert.Equal(t, "ada's doc", got.Properties()["title"])

		_, err = g.Vertex(ctx, ids[1])
		assert.True(t, dialect.IsNotFound(err), "foreign doc must read as not found, got %v", err)

		_, err = g.CreateVertex(ctx, "doc", nil, map[string]any{"owner_id": "ada", "title": "new"})
		assert.NoError(t, err)

		_, err = g.CreateVertex(ctx, "doc", nil, map[string]any{"owner_id": "bob", "title": "forged"})
		assert.ErrorIs(t, err, privacy.Deny)
	})
}
