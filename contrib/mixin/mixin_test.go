package mixin_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/grafo"
	"github.com/syssam/grafo/contrib/mixin"
	"github.com/syssam/grafo/schema/field"
)

// TestTenant tests the tenant_id declaration.
func TestTenant(t *testing.T) {
	t.Parallel()

	fields := mixin.Tenant{}.Fields()
	require.Len(t, fields, 1)
	fd := fields[0].Descriptor()
	assert.Equal(t, "tenant_id", fd.Name)
	assert.Equal(t, field.TypeString, fd.Info.Type)
	assert.False(t, fd.Optional)
	assert.NotEmpty(t, fd.Comment)
}

// TestPublicID tests the uuid declaration.
func TestPublicID(t *testing.T) {
	t.Parallel()

	fields := mixin.PublicID{}.Fields()
	require.Len(t, fields, 1)
	fd := fields[0].Descriptor()
	assert.Equal(t, "uuid", fd.Name)
	assert.Equal(t, field.TypeUUID, fd.Info.Type)
	assert.Equal(t, "uuid.UUID", fd.Info.Ident)
	assert.Equal(t, "github.com/google/uuid", fd.Info.PkgPath)
}

// TestAudit tests the actor tracking declarations.
func TestAudit(t *testing.T) {
	t.Parallel()

	fields := mixin.Audit{}.Fields()
	require.Len(t, fields, 2)

	created := fields[0].Descriptor()
	assert.Equal(t, "created_by", created.Name)
	assert.False(t, created.Optional)

	updated := fields[1].Descriptor()
	assert.Equal(t, "updated_by", updated.Name)
	assert.True(t, updated.Optional)
}

// TestTimeSoftDelete tests the combined declaration order.
func TestTimeSoftDelete(t *testing.T) {
	t.Parallel()

	fields := mixin.TimeSoftDelete{}.Fields()
	require.Len(t, fields, 3)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Descriptor().Name
	}
	assert.Equal(t, []string{"created_at", "updated_at", "deleted_at"}, names)
}

// document uses every extra mixin next to its own fields.
type document struct {
	mixin.TimeSoftDelete
	mixin.Tenant
	mixin.PublicID
	mixin.Audit
	ID    int64
	Title string
}

func (document) Mixin() []grafo.Mixin {
	return []grafo.Mixin{
		mixin.TimeSoftDelete{},
		mixin.Tenant{},
		mixin.PublicID{},
		mixin.Audit{},
	}
}

func (document) Fields() []grafo.Field {
	return []grafo.Field{
		field.Int64("id").Identifier(),
		field.String("title"),
	}
}

// TestDocumentBinding tests that promoted mixin fields resolve against
// the record, including names that only match case-insensitively.
func TestDocumentBinding(t *testing.T) {
	t.Parallel()

	d, err := grafo.Describe(document{})
	require.NoError(t, err)
	require.Len(t, d.Fields, 9)

	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{
		"created_at", "updated_at", "deleted_at",
		"tenant_id", "uuid", "created_by", "updated_by",
		"id", "title",
	}, names)

	tenant := d.Fields[3]
	assert.Equal(t, "TenantID", tenant.StructField)
	assert.Equal(t, reflect.TypeOf(""), tenant.Type)

	public := d.Fields[4]
	assert.Equal(t, "UUID", public.StructField)
	assert.Equal(t, reflect.TypeOf(uuid.UUID{}), public.Type)

	updated := d.Fields[6]
	assert.Equal(t, "UpdatedBy", updated.StructField)
	assert.True(t, updated.Optional)

	require.NotNil(t, d.ID)
	assert.Equal(t, "id", d.ID.Name)
}

// TestDocumentRoundTrip tests marshalling a record whose mixin fields
// carry live values.
func TestDocumentRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	editor := "bob"
	rec := document{ID: 7, Title: "spec"}
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.TenantID = "acme"
	rec.UUID = uuid.MustParse("9cf71a93-47f6-4bd2-b8e5-7a9f0a6b21cd")
	rec.CreatedBy = "ada"
	rec.UpdatedBy = &editor

	v, err := grafo.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, "acme", v.Properties["tenant_id"])
	assert.Equal(t, rec.UUID, v.Properties["uuid"])
	assert.Equal(t, "ada", v.Properties["created_by"])
	assert.Equal(t, "bob", v.Properties["updated_by"])
	assert.NotContains(t, v.Properties, "deleted_at")
	assert.NotContains(t, v.Properties, "id")

	got, err := grafo.Unmarshal[document](v)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

// BenchmarkDocumentMarshal benchmarks marshalling the mixin-heavy record.
func BenchmarkDocumentMarshal(b *testing.B) {
	b.ReportAllocs()
	rec := document{ID: 7, Title: "spec"}
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	rec.TenantID = "acme"
	rec.UUID = uuid.New()
	rec.CreatedBy = "ada"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grafo.Marshal(rec); err != nil {
			b.Fatal(err)
		}
	}
}
