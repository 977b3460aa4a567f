package grafo

import (
	"fmt"
	"reflect"

	"github.com/syssam/grafo/dialect"
)

// Marshal converts a record to its vertex form using the marshaller
// derived from the record's declared fields.
func Marshal[T any](rec T) (*Vertex, error) {
	m, err := MarshallerFor[T]()
	if err != nil {
		return nil, err
	}
	return m.FromRecord(rec)
}

// Unmarshal converts a vertex back to a record of type T using the
// marshaller derived from the record's declared fields.
func Unmarshal[T any](v *Vertex) (T, error) {
	m, err := MarshallerFor[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return m.ToRecord(v)
}

// derived is the reflection-based marshaller built from a resolved
// description. One instance serves all values of its record type.
type derived[T any] struct {
	d *Description
}

func (m derived[T]) FromRecord(rec T) (*Vertex, error) {
	rv := reflect.ValueOf(rec)
	v := &Vertex{
		Label:      m.d.Label,
		Properties: make(map[string]any, len(m.d.Fields)),
	}
	for _, fd := range m.d.Fields {
		pv, ok := encodeField(fd, rv)
		if !ok {
			continue
		}
		if fd.Identifier {
			id, err := identifierValue(m.d, fd, pv)
			if err != nil {
				return nil, err
			}
			v.ID = &id
			continue
		}
		v.Properties[fd.Name] = pv
	}
	return v, nil
}

func (m derived[T]) ToRecord(v *Vertex) (T, error) {
	var rec T
	rv := reflect.ValueOf(&rec).Elem()
	for _, fd := range m.d.Fields {
		if fd.Identifier {
			if v.ID == nil {
				if fd.Optional {
					continue
				}
				return rec, NewMissingFieldError(m.d.Label, fd.Name)
			}
			if err := decodeField(m.d.Label, fd, rv, int64(*v.ID), true); err != nil {
				return rec, err
			}
			continue
		}
		pv, ok := v.Properties[fd.Name]
		if err := decodeField(m.d.Label, fd, rv, pv, ok); err != nil {
			return rec, err
		}
	}
	return rec, nil
}

// identifierValue narrows an encoded identifier to the native id type.
// Wrappers enclosing anything but an int64 surface here at encode time.
func identifierValue(d *Description, fd *FieldDescription, pv any) (dialect.ID, error) {
	vv := reflect.ValueOf(pv)
	if !vv.CanInt() {
		msg := fmt.Sprintf("identifier wrapper enclosed %T, expected an int64 type", pv)
		return 0, NewSchemaError(d.Type.Name(), fd.Name, msg, nil)
	}
	return dialect.ID(vv.Int()), nil
}
