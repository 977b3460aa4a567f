// Package schema provides the building blocks for declaring grafo
// record schemas.
//
// The package tree is the entry point for schema declaration:
//
//   - [field]: field builders binding properties to record fields
//   - [mixin]: reusable field sets shared across record types
//   - schema itself: annotations attached to record declarations
//
// # Declaring a Record
//
// A record type declares its fields by implementing grafo.Mapping:
//
//	type User struct {
//	    ID        int64
//	    Name      string
//	    Age       *int
//	    CreatedAt time.Time
//	}
//
//	func (User) Fields() []grafo.Field {
//	    return []grafo.Field{
//	        field.Int64("id").Identifier(),
//	        field.String("name"),
//	        field.Int("age").Optional(),
//	        field.Time("created_at"),
//	    }
//	}
//
// # Field Types
//
// The field package provides builders for the supported property types:
//
//	field.String("name")
//	field.Bool("active")
//	field.Int("age")
//	field.Int64("id")
//	field.Float64("score")
//	field.Time("created_at")
//	field.Bytes("data")
//	field.UUID("ref", uuid.UUID{})
//	field.Any("meta")
//
// Fields are value-typed by default; Optional marks a field whose
// absence is represented by a nil pointer on the record. Identifier
// marks the int64 field carried in the vertex's native id slot.
//
// # Mixins
//
// The mixin package provides reusable field sets, and record types can
// mix them in ahead of their own fields:
//
//	func (User) Mixin() []grafo.Mixin {
//	    return []grafo.Mixin{
//	        mixin.Time{},
//	    }
//	}
//
// # Annotations
//
// Annotations attach free-form metadata to a record declaration. The
// Comment annotation is emitted as the doc comment of generated code:
//
//	func (User) Annotations() []schema.Annotation {
//	    return []schema.Annotation{
//	        schema.Comment("User is an account holder."),
//	    }
//	}
package schema
