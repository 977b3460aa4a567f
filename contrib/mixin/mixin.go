// Package mixin provides extra mixins complementing the core set in
// schema/mixin.
//
// Available mixins:
//   - Tenant: tenant_id scoping field, pairs with the privacy package
//   - PublicID: stable UUID exposed outside the store
//   - Audit: created_by and updated_by actor tracking
//   - TimeSoftDelete: timestamps plus soft deletion in one embed
//
// Usage:
//
//	import "github.com/syssam/grafo/contrib/mixin"
//
//	type Document struct {
//	    mixin.TimeSoftDelete
//	    mixin.Tenant
//	    ID    int64
//	    Title string
//	}
//
//	func (Document) Mixin() []grafo.Mixin {
//	    return []grafo.Mixin{mixin.TimeSoftDelete{}, mixin.Tenant{}}
//	}
package mixin

import (
	"github.com/google/uuid"

	"github.com/syssam/grafo"
	"github.com/syssam/grafo/schema/field"
	"github.com/syssam/grafo/schema/mixin"
)

// Tenant adds a tenant_id property, bound to its TenantID field.
// Combined with the privacy package it enables row-level tenant
// isolation:
//
//	privacy.Policy{
//	    Query:    privacy.QueryPolicy{privacy.TenantQueryRule("tenant_id")},
//	    Mutation: privacy.MutationPolicy{privacy.TenantRule("tenant_id"), privacy.AlwaysDenyRule()},
//	}
type Tenant struct {
	TenantID string
}

// Fields returns the tenant_id declaration.
func (Tenant) Fields() []grafo.Field {
	return []grafo.Field{
		field.String("tenant_id").
			Comment("Tenant that owns the record"),
	}
}

// PublicID adds a uuid property, bound to its UUID field. It gives a
// record a stable identifier that is safe to expose outside the store,
// independent of the numeric id the store assigns. Callers populate it
// before insert, typically with uuid.New.
type PublicID struct {
	UUID uuid.UUID
}

// Fields returns the uuid declaration.
func (PublicID) Fields() []grafo.Field {
	return []grafo.Field{
		field.UUID("uuid", uuid.UUID{}).
			Comment("Stable public identifier"),
	}
}

// Audit adds created_by and updated_by properties tracking the actors
// behind a record. UpdatedBy is nil until the record is first updated.
type Audit struct {
	CreatedBy string
	UpdatedBy *string
}

// Fields returns the actor tracking declarations.
func (Audit) Fields() []grafo.Field {
	return []grafo.Field{
		field.String("created_by").
			Comment("Actor that created the record"),
		field.String("updated_by").
			Optional().
			Comment("Actor behind the last update (nil means never updated)"),
	}
}

// TimeSoftDelete combines the core Time and SoftDelete mixins for
// records that need the full timestamp trail.
type TimeSoftDelete struct {
	mixin.Time
	mixin.SoftDelete
}

// Fields returns the combined declarations.
func (TimeSoftDelete) Fields() []grafo.Field {
	return append(mixin.Time{}.Fields(), mixin.SoftDelete{}.Fields()...)
}

var (
	_ grafo.Mixin = Tenant{}
	_ grafo.Mixin = PublicID{}
	_ grafo.Mixin = Audit{}
	_ grafo.Mixin = TimeSoftDelete{}
)
