package field

import "reflect"

// A Type represents a declared field type.
type Type uint8

// List of declared field types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeTime
	TypeBytes
	TypeUUID
	TypeInt
	TypeInt64
	TypeFloat64
	TypeString
	TypeAny
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeTime:    "time.Time",
	TypeBytes:   "[]byte",
	TypeUUID:    "uuid",
	TypeInt:     "int",
	TypeInt64:   "int64",
	TypeFloat64: "float64",
	TypeString:  "string",
	TypeAny:     "any",
}

// String returns the string representation of a type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return "invalid"
}

// Valid reports if the given type is a valid declared type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	return t == TypeInt || t == TypeInt64 || t == TypeFloat64
}

// TypeInfo holds the information regarding a field type.
// Used by the descriptor resolver and the code generator.
type TypeInfo struct {
	Type    Type   `json:"type"`
	Ident   string `json:"ident,omitempty"`    // qualified identifier of custom types (e.g. "uuid.UUID")
	PkgPath string `json:"pkg_path,omitempty"` // import path of custom types
	// RType is the Go type the declared type corresponds to, nil for
	// TypeAny. It does not serialize; loaders rebuild it from the live
	// declaration.
	RType reflect.Type `json:"-"`
}

// String returns the string representation of the type info.
func (t TypeInfo) String() string {
	if t.Ident != "" {
		return t.Ident
	}
	return t.Type.String()
}

// Numeric reports if the underlying type is numeric.
func (t TypeInfo) Numeric() bool {
	return t.Type.Numeric()
}
