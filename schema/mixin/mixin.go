package mixin

import (
	"time"

	"github.com/syssam/grafo"
	"github.com/syssam/grafo/schema/field"
)

// CreateTime adds a created_at timestamp, bound to its CreatedAt field.
type CreateTime struct {
	CreatedAt time.Time
}

// Fields returns the created_at declaration.
func (CreateTime) Fields() []grafo.Field {
	return []grafo.Field{
		field.Time("created_at").
			Comment("Timestamp when the record was created"),
	}
}

// UpdateTime adds an updated_at timestamp, bound to its UpdatedAt field.
type UpdateTime struct {
	UpdatedAt time.Time
}

// Fields returns the updated_at declaration.
func (UpdateTime) Fields() []grafo.Field {
	return []grafo.Field{
		field.Time("updated_at").
			Comment("Timestamp when the record was last updated"),
	}
}

// Time combines CreateTime and UpdateTime.
type Time struct {
	CreateTime
	UpdateTime
}

// Fields returns the combined time tracking declarations.
func (Time) Fields() []grafo.Field {
	return append(CreateTime{}.Fields(), UpdateTime{}.Fields()...)
}

// SoftDelete adds a deleted_at timestamp; a nil DeletedAt means the
// record is live.
type SoftDelete struct {
	DeletedAt *time.Time
}

// Fields returns the deleted_at declaration.
func (SoftDelete) Fields() []grafo.Field {
	return []grafo.Field{
		field.Time("deleted_at").
			Optional().
			Comment("Timestamp when the record was soft deleted (nil means not deleted)"),
	}
}

var (
	_ grafo.Mixin = CreateTime{}
	_ grafo.Mixin = UpdateTime{}
	_ grafo.Mixin = Time{}
	_ grafo.Mixin = SoftDelete{}
)
