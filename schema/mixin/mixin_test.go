package mixin_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/grafo"
	"github.com/syssam/grafo/schema/field"
	"github.com/syssam/grafo/schema/mixin"
)

// TestCreateTime tests the created_at declaration.
func TestCreateTime(t *testing.T) {
	t.Parallel()

	fields := mixin.CreateTime{}.Fields()
	require.Len(t, fields, 1)
	fd := fields[0].Descriptor()
	assert.Equal(t, "created_at", fd.Name)
	assert.Equal(t, field.TypeTime, fd.Info.Type)
	assert.False(t, fd.Optional)
	assert.NotEmpty(t, fd.Comment)
}

// TestUpdateTime tests the updated_at declaration.
func TestUpdateTime(t *testing.T) {
	t.Parallel()

	fields := mixin.UpdateTime{}.Fields()
	require.Len(t, fields, 1)
	fd := fields[0].Descriptor()
	assert.Equal(t, "updated_at", fd.Name)
	assert.Equal(t, field.TypeTime, fd.Info.Type)
	assert.False(t, fd.Optional)
}

// TestTime tests that the combined mixin lists created_at before
// updated_at.
func TestTime(t *testing.T) {
	t.Parallel()

	fields := mixin.Time{}.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "created_at", fields[0].Descriptor().Name)
	assert.Equal(t, "updated_at", fields[1].Descriptor().Name)
}

// TestSoftDelete tests the deleted_at declaration.
func TestSoftDelete(t *testing.T) {
	t.Parallel()

	fields := mixin.SoftDelete{}.Fields()
	require.Len(t, fields, 1)
	fd := fields[0].Descriptor()
	assert.Equal(t, "deleted_at", fd.Name)
	assert.Equal(t, field.TypeTime, fd.Info.Type)
	assert.True(t, fd.Optional)
}

// note embeds two mixins next to its own fields.
type note struct {
	mixin.Time
	mixin.SoftDelete
	ID   int64
	Body string
}

func (note) Mixin() []grafo.Mixin {
	return []grafo.Mixin{mixin.Time{}, mixin.SoftDelete{}}
}

func (note) Fields() []grafo.Field {
	return []grafo.Field{
		field.Int64("id").Identifier(),
		field.String("body"),
	}
}

// TestMixinBinding tests that promoted mixin fields resolve against the
// record the same way its own fields do.
func TestMixinBinding(t *testing.T) {
	t.Parallel()

	d, err := grafo.Describe(note{})
	require.NoError(t, err)
	require.Len(t, d.Fields, 5)

	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"created_at", "updated_at", "deleted_at", "id", "body"}, names)

	created := d.Fields[0]
	assert.Equal(t, "CreatedAt", created.StructField)
	assert.Equal(t, reflect.TypeOf(time.Time{}), created.Type)

	deleted := d.Fields[2]
	assert.Equal(t, "DeletedAt", deleted.StructField)
	assert.True(t, deleted.Optional)
	assert.Equal(t, reflect.TypeOf((*time.Time)(nil)), deleted.Type)

	require.NotNil(t, d.ID)
	assert.Equal(t, "id", d.ID.Name)
}

// TestMixinRoundTrip tests marshalling a record whose mixin fields carry
// live values.
func TestMixinRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	gone := now.Add(time.Hour)
	rec := note{ID: 7, Body: "draft"}
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.DeletedAt = &gone

	v, err := grafo.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, now, v.Properties["created_at"])
	assert.Equal(t, gone, v.Properties["deleted_at"])

	got, err := grafo.Unmarshal[note](v)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}
