package gen

import (
	"reflect"

	"github.com/go-openapi/inflect"

	"github.com/syssam/grafo"
	"github.com/syssam/grafo/compiler/load"
)

// Type represents one record type prepared for code generation: the
// loaded declaration joined with the binding the root package resolves
// at runtime.
type Type struct {
	// Name holds the record type name.
	Name string

	schema *load.Schema
	desc   *grafo.Description
}

// NewType loads and resolves a record declaration. The declaration is
// round-tripped through its serializable form, so a Type built from a
// live Mapping is identical to one built from externally loaded JSON.
func NewType(m grafo.Mapping) (*Type, error) {
	buf, err := load.MarshalSchema(m)
	if err != nil {
		return nil, err
	}
	schema, err := load.UnmarshalSchema(buf)
	if err != nil {
		return nil, err
	}
	desc, err := grafo.Describe(m)
	if err != nil {
		return nil, err
	}
	if len(schema.Fields) != len(desc.Fields) {
		return nil, NewGenerationError(schema.Name, "", "declaration and binding disagree on field count", nil)
	}
	return &Type{Name: schema.Name, schema: schema, desc: desc}, nil
}

// Label returns the resolved vertex label.
func (t *Type) Label() string {
	return t.desc.Label
}

// Comment returns the text of the record's Comment annotation, or the
// empty string when the record declares none.
func (t *Type) Comment() string {
	return t.schema.Comment
}

// RecordType returns the reflected record struct type.
func (t *Type) RecordType() reflect.Type {
	return t.desc.Type
}

// Fields returns the fields of the type in declaration order.
func (t *Type) Fields() []*TypeField {
	fields := make([]*TypeField, len(t.desc.Fields))
	for i := range t.desc.Fields {
		fields[i] = &TypeField{Loaded: t.schema.Fields[i], Binding: t.desc.Fields[i]}
	}
	return fields
}

// ID returns the identifier field, or nil when none is declared.
func (t *Type) ID() *TypeField {
	for _, f := range t.Fields() {
		if f.Binding.Identifier {
			return f
		}
	}
	return nil
}

// MarshallerName returns the name of the generated marshaller type.
func (t *Type) MarshallerName() string {
	return inflect.Camelize(t.Name) + "Marshaller"
}

// ClientName returns the name of the generated client type.
func (t *Type) ClientName() string {
	return inflect.Camelize(t.Name) + "Client"
}

// MarshallerFile returns the name of the generated marshaller file.
func (t *Type) MarshallerFile() string {
	return inflect.Underscore(t.Name) + "_grafo.go"
}

// ClientFile returns the name of the generated client file.
func (t *Type) ClientFile() string {
	return inflect.Underscore(t.Name) + "_client.go"
}

// TypeField joins one loaded field declaration with its resolved struct
// binding.
type TypeField struct {
	Loaded  *load.Field
	Binding *grafo.FieldDescription
}

// Name returns the property name of the field.
func (f *TypeField) Name() string {
	return f.Loaded.Name
}

// StructField returns the name of the bound record field.
func (f *TypeField) StructField() string {
	return f.Binding.StructField
}

// ValueType returns the type a present property value has on the record:
// the bound field type with the optional pointer stripped.
func (f *TypeField) ValueType() reflect.Type {
	vt := f.Binding.Type
	if f.Binding.Optional {
		vt = vt.Elem()
	}
	return vt
}

// EnclosedType returns the type a wrapper field encloses, or nil when
// the field is not a wrapper or its zero value cannot say.
func (f *TypeField) EnclosedType() reflect.Type {
	if !f.Binding.Wrapper {
		return nil
	}
	inner := zeroUnwrap(f.ValueType())
	if inner == nil {
		return nil
	}
	return reflect.TypeOf(inner)
}

// zeroUnwrap unwraps a zero value of the given wrapper type, returning
// nil when the wrapper cannot say what it encloses.
func zeroUnwrap(t reflect.Type) (inner any) {
	defer func() {
		if recover() != nil {
			inner = nil
		}
	}()
	return grafo.Unwrap(reflect.New(t).Elem().Interface())
}
