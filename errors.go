package grafo

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Standard sentinel errors for marshalling operations.
var (
	// ErrInvalidSchema is returned when a record's field declarations
	// cannot be resolved into a usable description.
	ErrInvalidSchema = errors.New("grafo: invalid record schema")

	// ErrUnsupportedType is returned when a type outside the supported
	// record shapes is handed to the marshalling layer.
	ErrUnsupportedType = errors.New("grafo: unsupported record type")

	// ErrMissingField is returned when a required property is absent from
	// a vertex being decoded.
	ErrMissingField = errors.New("grafo: missing required property")

	// ErrTypeMismatch is returned when a property value cannot be decoded
	// into the declared record field.
	ErrTypeMismatch = errors.New("grafo: property type mismatch")
)

// SchemaError represents an error in a record's field declarations, for
// example two identifier fields or a declared field with no record field
// to bind to. It is reported on the first derivation for the type and
// every later use of the type fails with the same error.
type SchemaError struct {
	Type    string // record type name
	Field   string // field name, if applicable
	Message string
	Cause   error
}

// Error returns the error string.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("grafo: schema error")
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(typeName, fieldName, message string, cause error) *SchemaError {
	return &SchemaError{
		Type:    typeName,
		Field:   fieldName,
		Message: message,
		Cause:   cause,
	}
}

// IsSchemaError returns true if the error is a SchemaError.
func IsSchemaError(err error) bool {
	if err == nil {
		return false
	}
	var e *SchemaError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidSchema)
}

// UnsupportedTypeError represents an error when a type that is not a
// record struct is handed to the marshalling layer.
type UnsupportedTypeError struct {
	Type reflect.Type // offending type, may be nil
}

// Error returns the error string.
func (e *UnsupportedTypeError) Error() string {
	if e.Type == nil {
		return "grafo: unsupported record type <nil>"
	}
	return fmt.Sprintf("grafo: unsupported record type %s (kind %s)", e.Type, e.Type.Kind())
}

// Is reports whether the target matches the sentinel error for
// UnsupportedTypeError.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// NewUnsupportedTypeError returns a new UnsupportedTypeError for the given
// type.
func NewUnsupportedTypeError(t reflect.Type) *UnsupportedTypeError {
	return &UnsupportedTypeError{Type: t}
}

// IsUnsupportedType returns true if the error is an UnsupportedTypeError.
func IsUnsupportedType(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedTypeError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedType)
}

// MissingFieldError represents an error when a required property is absent
// from the vertex being decoded.
type MissingFieldError struct {
	Label string // vertex label
	Field string // property name
}

// Error returns the error string.
func (e *MissingFieldError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("grafo: missing property %q for %s", e.Field, e.Label)
	}
	return fmt.Sprintf("grafo: missing property %q", e.Field)
}

// Is reports whether the target matches the sentinel error for
// MissingFieldError.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// NewMissingFieldError returns a new MissingFieldError.
func NewMissingFieldError(label, fieldName string) *MissingFieldError {
	return &MissingFieldError{Label: label, Field: fieldName}
}

// IsMissingField returns true if the error is a MissingFieldError.
func IsMissingField(err error) bool {
	if err == nil {
		return false
	}
	var e *MissingFieldError
	return errors.As(err, &e) || errors.Is(err, ErrMissingField)
}

// TypeMismatchError represents an error when a property value read from a
// vertex does not fit the declared record field.
type TypeMismatchError struct {
	Label string       // vertex label
	Field string       // property name
	Want  reflect.Type // declared record field type
	Value any          // offending property value
	Cause error
}

// Error returns the error string.
func (e *TypeMismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "grafo: cannot decode property %q", e.Field)
	if e.Label != "" {
		b.WriteString(" for ")
		b.WriteString(e.Label)
	}
	fmt.Fprintf(&b, ": value of type %T is not assignable to %s", e.Value, e.Want)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *TypeMismatchError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for
// TypeMismatchError.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// NewTypeMismatchError returns a new TypeMismatchError.
func NewTypeMismatchError(label, fieldName string, want reflect.Type, value any, cause error) *TypeMismatchError {
	return &TypeMismatchError{
		Label: label,
		Field: fieldName,
		Want:  want,
		Value: value,
		Cause: cause,
	}
}

// IsTypeMismatch returns true if the error is a TypeMismatchError.
func IsTypeMismatch(err error) bool {
	if err == nil {
		return false
	}
	var e *TypeMismatchError
	return errors.As(err, &e) || errors.Is(err, ErrTypeMismatch)
}
