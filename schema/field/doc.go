// Package field provides fluent builders for declaring record fields in Grafo.
//
// Property names follow store conventions (snake_case), while record struct
// field names are resolved to PascalCase automatically:
//
//	field.Int64("user_id")    // property: user_id, record field: UserID
//	field.String("email")     // property: email,   record field: Email
//
// # Field Types
//
// The package supports the property types a vertex can hold:
//
//	// String fields
//	field.String("name")
//
//	// Numeric fields
//	field.Int("count")
//	field.Int64("big_number")
//	field.Float64("price")
//
//	// Boolean fields
//	field.Bool("is_active")
//
//	// Time fields
//	field.Time("created_at")
//
//	// UUID fields
//	field.UUID("ref", uuid.UUID{})
//
//	// Binary fields
//	field.Bytes("data")
//
//	// Arbitrary values, stored as-is
//	field.Any("payload")
//
// # Field Options
//
// Fields support a small set of options:
//
//	field.String("nickname").
//	    Optional().                  // Bound record field is a pointer; nil is absent
//	    Comment("Display name").     // Field comment
//	    StructField("Nick")          // Explicit record field binding
//
// # Identifiers
//
// A record may declare at most one identifier field. Its value is placed in
// the native id slot of the vertex instead of the property map:
//
//	field.Int64("id").Identifier()
//
// An optional identifier binds to a *int64 record field; when nil, the store
// assigns the identifier on insert:
//
//	field.Int64("id").Identifier().Optional()
//
// # Optionality
//
// An optional field must bind to a pointer record field. A nil pointer means
// the property is absent from the vertex, which is distinct from a present
// zero value:
//
//	field.Int("age").Optional()     // binds to Age *int
//
// # Deferred Errors
//
// Builder misuse is collected on the descriptor and reported when the record
// type is first described, not at declaration site:
//
//	fd := field.String("").Descriptor()
//	fd.Err // "field name cannot be empty"
package field
