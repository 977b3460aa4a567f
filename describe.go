package grafo

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-openapi/inflect"

	"github.com/syssam/grafo/schema"
	"github.com/syssam/grafo/schema/field"
)

// Description is the resolved schema of a record type: its vertex label
// and the declared fields bound to the record's struct fields. It is
// computed on first use and cached for the process lifetime.
type Description struct {
	Label   string              // resolved vertex label
	Type    reflect.Type        // record struct type
	Fields  []*FieldDescription // declared fields in declaration order
	ID      *FieldDescription   // identifier field, nil when none is declared
	Comment string              // text of the Comment annotation, if any
}

// FieldDescription is a single resolved field of a record type.
type FieldDescription struct {
	Name        string       // property name in the vertex
	StructField string       // name of the bound record field
	Index       []int        // index path of the bound record field
	Type        reflect.Type // Go type of the bound record field
	Optional    bool         // nil pointer means the property is absent
	Identifier  bool         // value is carried in the native id slot
	Wrapper     bool         // bound type is a transparent wrapper
	Comment     string
}

// Describe returns the resolved description of the given record's type.
// The result is shared and must not be modified.
func Describe(m Mapping) (*Description, error) {
	return describeType(indirect(reflect.TypeOf(m)))
}

var (
	transparentType = reflect.TypeOf((*Transparent)(nil)).Elem()
	wrapperType     = reflect.TypeOf((*Wrapper)(nil)).Elem()
	timeType        = reflect.TypeOf(time.Time{})
)

// resolveDescription computes the description of a record type without
// consulting the cache.
func resolveDescription(t reflect.Type) (*Description, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, NewUnsupportedTypeError(t)
	}
	rec, ok := newMapping(t)
	if !ok {
		return nil, NewUnsupportedTypeError(t)
	}
	d := &Description{
		Label: t.Name(),
		Type:  t,
	}
	if l, ok := rec.(Labeler); ok {
		label, err := safeLabel(l)
		if err != nil {
			return nil, NewSchemaError(t.Name(), "", "", err)
		}
		d.Label = label
	}
	if a, ok := rec.(Annotator); ok {
		anns, err := safeAnnotations(a)
		if err != nil {
			return nil, NewSchemaError(t.Name(), "", "", err)
		}
		if text, ok := schema.CommentOf(anns); ok {
			d.Comment = text
		}
	}
	fields, err := declaredFields(rec)
	if err != nil {
		return nil, NewSchemaError(t.Name(), "", "", err)
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		fd := f.Descriptor()
		if fd.Err != nil {
			return nil, NewSchemaError(t.Name(), fd.Name, "", fd.Err)
		}
		if _, dup := seen[fd.Name]; dup {
			return nil, NewSchemaError(t.Name(), fd.Name, "duplicate field name", nil)
		}
		seen[fd.Name] = struct{}{}
		rf, err := resolveField(t, fd)
		if err != nil {
			return nil, err
		}
		if rf.Identifier {
			if d.ID != nil {
				msg := fmt.Sprintf("multiple identifier fields: %s and %s", d.ID.Name, rf.Name)
				return nil, NewSchemaError(t.Name(), rf.Name, msg, nil)
			}
			d.ID = rf
		}
		d.Fields = append(d.Fields, rf)
	}
	return d, nil
}

// resolveField binds one declared field to a struct field of the record
// type and validates the binding.
func resolveField(t reflect.Type, fd *field.Descriptor) (*FieldDescription, error) {
	name := t.Name()
	goName := fd.StructField
	if goName == "" {
		goName = inflect.Camelize(fd.Name)
	}
	sf, ok := t.FieldByName(goName)
	if !ok {
		// Tolerate initialism casings such as UserID for "user_id".
		sf, ok = t.FieldByNameFunc(func(n string) bool { return strings.EqualFold(n, goName) })
	}
	if !ok {
		msg := fmt.Sprintf("no record field %s for property %q", goName, fd.Name)
		return nil, NewSchemaError(name, fd.Name, msg, nil)
	}
	if sf.PkgPath != "" {
		return nil, NewSchemaError(name, fd.Name, fmt.Sprintf("record field %s must be exported", sf.Name), nil)
	}
	if err := checkPromotionPath(t, sf.Index); err != nil {
		return nil, NewSchemaError(name, fd.Name, err.Error(), nil)
	}
	rf := &FieldDescription{
		Name:        fd.Name,
		StructField: sf.Name,
		Index:       sf.Index,
		Type:        sf.Type,
		Optional:    fd.Optional,
		Identifier:  fd.Identifier,
		Comment:     fd.Comment,
	}
	vt := sf.Type
	if fd.Optional {
		if vt.Kind() != reflect.Pointer {
			msg := fmt.Sprintf("optional field must bind to a pointer record field, got %s", vt)
			return nil, NewSchemaError(name, fd.Name, msg, nil)
		}
		vt = vt.Elem()
	}
	switch {
	case vt.Implements(transparentType):
		if !reflect.PointerTo(vt).Implements(wrapperType) {
			msg := fmt.Sprintf("type %s implements Transparent but *%s does not implement Wrapper", vt, vt)
			return nil, NewSchemaError(name, fd.Name, msg, nil)
		}
		rf.Wrapper = true
	case reflect.PointerTo(vt).Implements(transparentType):
		msg := fmt.Sprintf("type %s must declare Unwrap on the value receiver", vt)
		return nil, NewSchemaError(name, fd.Name, msg, nil)
	default:
		if err := checkDeclaredType(fd, vt); err != nil {
			return nil, NewSchemaError(name, fd.Name, err.Error(), nil)
		}
	}
	if fd.Identifier {
		if err := checkIdentifierType(fd, vt, rf.Wrapper); err != nil {
			return nil, NewSchemaError(name, fd.Name, err.Error(), nil)
		}
	}
	return rf, nil
}

// checkDeclaredType verifies that the record field type agrees with the
// declared field type. Wrapper fields and fields declared Any are exempt.
func checkDeclaredType(fd *field.Descriptor, vt reflect.Type) error {
	info := fd.Info
	switch info.Type {
	case field.TypeAny:
		return nil
	case field.TypeUUID:
		if vt != info.RType {
			return fmt.Errorf("declared %s but record field is %s", info, vt)
		}
	case field.TypeTime:
		if vt != timeType {
			return fmt.Errorf("declared %s but record field is %s", info, vt)
		}
	case field.TypeBytes:
		if vt.Kind() != reflect.Slice || vt.Elem().Kind() != reflect.Uint8 {
			return fmt.Errorf("declared %s but record field is %s", info, vt)
		}
	default:
		// Hand-built descriptors may omit the reflected type; their
		// values are checked during decoding instead.
		if info.RType != nil && vt.Kind() != info.RType.Kind() {
			return fmt.Errorf("declared %s but record field is %s", info, vt)
		}
	}
	return nil
}

// checkIdentifierType verifies that an identifier field can be carried in
// the native int64 id slot of a vertex. Plain fields are already kind
// checked against the declaration; the enclosed type of a wrapper is only
// observable through Unwrap.
func checkIdentifierType(fd *field.Descriptor, vt reflect.Type, wrapper bool) error {
	if fd.Info.Type != field.TypeInt64 {
		return fmt.Errorf("identifier must be declared int64, not %s", fd.Info)
	}
	if !wrapper {
		return nil
	}
	if inner := zeroUnwrap(vt); inner != nil && reflect.TypeOf(inner).Kind() != reflect.Int64 {
		return fmt.Errorf("identifier wrapper %s encloses %T, expected an int64 type", vt, inner)
	}
	return nil
}

// checkPromotionPath rejects bindings promoted through embedded pointers,
// which cannot be addressed reliably on a zero record.
func checkPromotionPath(t reflect.Type, index []int) error {
	cur := t
	for i, x := range index {
		f := cur.Field(x)
		if i == len(index)-1 {
			break
		}
		if f.Type.Kind() == reflect.Pointer {
			return fmt.Errorf("record field %s is promoted through an embedded pointer", f.Name)
		}
		cur = f.Type
	}
	return nil
}

// declaredFields collects the record's fields, mixin fields first, in
// declaration order.
func declaredFields(rec Mapping) ([]Field, error) {
	var fields []Field
	if mx, ok := rec.(interface{ Mixin() []Mixin }); ok {
		mixins, err := safeMixin(mx)
		if err != nil {
			return nil, err
		}
		for _, m := range mixins {
			name := indirect(reflect.TypeOf(m)).Name()
			mfields, err := safeFields(m)
			if err != nil {
				return nil, fmt.Errorf("mixin %q: %w", name, err)
			}
			fields = append(fields, mfields...)
		}
	}
	own, err := safeFields(rec)
	if err != nil {
		return nil, err
	}
	return append(fields, own...), nil
}

// newMapping materializes a zero record of the given type. The value form
// is preferred; types declaring Fields on the pointer receiver are
// resolved through a fresh pointer.
func newMapping(t reflect.Type) (Mapping, bool) {
	if m, ok := reflect.New(t).Elem().Interface().(Mapping); ok {
		return m, true
	}
	if m, ok := reflect.New(t).Interface().(Mapping); ok {
		return m, true
	}
	return nil, false
}

// safeFields wraps the Fields method with recover to keep resolution from
// panicking on misbehaving declarations.
func safeFields(fd interface{ Fields() []Field }) (fields []Field, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Fields panics: %v", fd, v)
			fields = nil
		}
	}()
	return fd.Fields(), nil
}

// safeMixin wraps the Mixin method with recover.
func safeMixin(mx interface{ Mixin() []Mixin }) (mixins []Mixin, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Mixin panics: %v", mx, v)
			mixins = nil
		}
	}()
	return mx.Mixin(), nil
}

// safeLabel wraps the Label method with recover.
func safeLabel(l Labeler) (label string, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Label panics: %v", l, v)
		}
	}()
	return l.Label(), nil
}

// safeAnnotations wraps the Annotations method with recover.
func safeAnnotations(a Annotator) (anns []schema.Annotation, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Annotations panics: %v", a, v)
			anns = nil
		}
	}()
	return a.Annotations(), nil
}

// zeroUnwrap unwraps a zero value of the given wrapper type, returning nil
// when the wrapper cannot say what it encloses.
func zeroUnwrap(t reflect.Type) (inner any) {
	defer func() {
		if recover() != nil {
			inner = nil
		}
	}()
	return Unwrap(reflect.New(t).Elem().Interface())
}

func indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
