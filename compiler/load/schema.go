// Package load turns grafo schema declarations into a serializable form
// consumed by the code generator.
package load

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/syssam/grafo"
	"github.com/syssam/grafo/schema"
	"github.com/syssam/grafo/schema/field"
)

// Schema represents a grafo.Mapping that was loaded from a user package.
type Schema struct {
	Name    string   `json:"name,omitempty"`
	Label   string   `json:"label,omitempty"` // empty means the type name is used
	Comment string   `json:"comment,omitempty"`
	Fields  []*Field `json:"fields,omitempty"`
}

// Position describes a position in the schema.
type Position struct {
	Index      int  // Index in the field list.
	MixedIn    bool // Indicates if the field was mixed-in.
	MixinIndex int  // Mixin index in the mixin list.
}

// Field represents a grafo field that was loaded from a user package.
type Field struct {
	Name        string          `json:"name,omitempty"`
	Info        *field.TypeInfo `json:"type,omitempty"`
	Optional    bool            `json:"optional,omitempty"`
	Identifier  bool            `json:"identifier,omitempty"`
	StructField string          `json:"struct_field,omitempty"`
	Comment     string          `json:"comment,omitempty"`
	Position    *Position       `json:"position,omitempty"`
}

// NewField creates a loaded field from a field descriptor.
// It returns an error if the descriptor contains an error.
func NewField(fd *field.Descriptor) (*Field, error) {
	if fd.Err != nil {
		return nil, fmt.Errorf("field %q: %v", fd.Name, fd.Err)
	}
	lf := &Field{
		Name:        fd.Name,
		Info:        fd.Info,
		Optional:    fd.Optional,
		Identifier:  fd.Identifier,
		StructField: fd.StructField,
		Comment:     fd.Comment,
	}
	if lf.Info == nil {
		return nil, fmt.Errorf("missing type info for field %q", lf.Name)
	}
	return lf, nil
}

// MarshalSchema encodes the grafo.Mapping interface into a JSON that can
// be decoded into the Schema objects declared above.
func MarshalSchema(m grafo.Mapping) ([]byte, error) {
	s := &Schema{
		Name: indirect(reflect.TypeOf(m)).Name(),
	}
	if l, ok := m.(grafo.Labeler); ok {
		label, err := safeLabel(l)
		if err != nil {
			return nil, fmt.Errorf("schema %q: %w", s.Name, err)
		}
		s.Label = label
	}
	if a, ok := m.(grafo.Annotator); ok {
		anns, err := safeAnnotations(a)
		if err != nil {
			return nil, fmt.Errorf("schema %q: %w", s.Name, err)
		}
		if text, ok := schema.CommentOf(anns); ok {
			s.Comment = text
		}
	}
	if err := s.loadMixin(m); err != nil {
		return nil, fmt.Errorf("schema %q: %w", s.Name, err)
	}
	if err := s.loadFields(m); err != nil {
		return nil, fmt.Errorf("schema %q: %w", s.Name, err)
	}
	return json.Marshal(s)
}

// UnmarshalSchema decodes the given buffer to a loaded schema.
func UnmarshalSchema(buf []byte) (*Schema, error) {
	s := &Schema{}
	if err := json.Unmarshal(buf, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ID returns the loaded identifier field, if one was declared.
func (s *Schema) ID() *Field {
	for _, f := range s.Fields {
		if f.Identifier {
			return f
		}
	}
	return nil
}

// loadMixin loads mixed-in fields to the schema, keeping their provenance.
func (s *Schema) loadMixin(m grafo.Mapping) error {
	mx, ok := m.(interface{ Mixin() []grafo.Mixin })
	if !ok {
		return nil
	}
	mixins, err := safeMixin(mx)
	if err != nil {
		return err
	}
	for i, mixin := range mixins {
		name := indirect(reflect.TypeOf(mixin)).Name()
		fields, ferr := safeFields(mixin)
		if ferr != nil {
			return fmt.Errorf("mixin %q: %w", name, ferr)
		}
		for j, f := range fields {
			lf, ferr := NewField(f.Descriptor())
			if ferr != nil {
				return fmt.Errorf("mixin %q: %w", name, ferr)
			}
			lf.Position = &Position{
				Index:      j,
				MixedIn:    true,
				MixinIndex: i,
			}
			s.Fields = append(s.Fields, lf)
		}
	}
	return nil
}

// loadFields loads the record's own field declarations.
func (s *Schema) loadFields(m grafo.Mapping) error {
	fields, err := safeFields(m)
	if err != nil {
		return err
	}
	for i, f := range fields {
		lf, err := NewField(f.Descriptor())
		if err != nil {
			return err
		}
		lf.Position = &Position{Index: i}
		s.Fields = append(s.Fields, lf)
	}
	return nil
}

// safeFields wraps the Fields method with recover to ensure no panics in marshaling.
func safeFields(fd interface{ Fields() []grafo.Field }) (fields []grafo.Field, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Fields panics: %v", fd, v)
			fields = nil
		}
	}()
	return fd.Fields(), nil
}

// safeMixin wraps the Mixin method with recover to ensure no panics in marshaling.
func safeMixin(m interface{ Mixin() []grafo.Mixin }) (mixins []grafo.Mixin, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Mixin panics: %v", m, v)
			mixins = nil
		}
	}()
	return m.Mixin(), nil
}

// safeLabel wraps the Label method with recover to ensure no panics in marshaling.
func safeLabel(l grafo.Labeler) (label string, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Label panics: %v", l, v)
		}
	}()
	return l.Label(), nil
}

// safeAnnotations wraps the Annotations method with recover to ensure no panics in marshaling.
func safeAnnotations(a grafo.Annotator) (anns []schema.Annotation, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Annotations panics: %v", a, v)
			anns = nil
		}
	}()
	return a.Annotations(), nil
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
