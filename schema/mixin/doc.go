// Package mixin provides reusable field sets for grafo records.
//
// A grafo mixin is a struct that carries both the Go data fields and the
// matching declarations, so embedding it in a record adds the storage and
// the schema in one line.
//
// # Built-in Mixins
//
// The package provides several ready-to-use mixins:
//
//	// CreateTime: adds a created_at timestamp
//	mixin.CreateTime{}
//
//	// UpdateTime: adds an updated_at timestamp
//	mixin.UpdateTime{}
//
//	// Time: combines CreateTime and UpdateTime
//	mixin.Time{}
//
//	// SoftDelete: adds a deleted_at timestamp for soft deletes
//	mixin.SoftDelete{}
//
// # Using Mixins
//
// A record embeds the mixin struct and lists it in its Mixin method:
//
//	type User struct {
//	    mixin.Time
//	    ID   int64
//	    Name string
//	}
//
//	func (User) Fields() []grafo.Field {
//	    return []grafo.Field{
//	        field.Int64("id").Identifier(),
//	        field.String("name"),
//	    }
//	}
//
//	func (User) Mixin() []grafo.Mixin {
//	    return []grafo.Mixin{mixin.Time{}}
//	}
//
// The resulting user vertex carries:
//
//   - id in the native identifier slot
//   - created_at (time.Time)
//   - updated_at (time.Time)
//   - name (string)
//
// # Creating Custom Mixins
//
// A custom mixin is any struct whose promoted fields line up with the
// declarations it returns:
//
//	type Audit struct {
//	    CreatedBy string
//	    UpdatedBy *string
//	}
//
//	func (Audit) Fields() []grafo.Field {
//	    return []grafo.Field{
//	        field.String("created_by"),
//	        field.String("updated_by").Optional(),
//	    }
//	}
//
// # Mixin Order
//
// Mixin fields resolve before the record's own fields, in the order the
// mixins are listed. Two mixins must not declare the same property name;
// the resolver rejects the record instead of silently picking one.
package mixin
