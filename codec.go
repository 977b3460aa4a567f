package grafo

import (
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
)

// encodeField extracts the property value of one field from a record
// value. The second result reports whether the property is present; an
// optional field bound to a nil pointer is absent.
func encodeField(fd *FieldDescription, rv reflect.Value) (any, bool) {
	fv := rv.FieldByIndex(fd.Index)
	if fd.Optional {
		if fv.IsNil() {
			return nil, false
		}
		fv = fv.Elem()
	}
	v := fv.Interface()
	if fd.Wrapper {
		v = Unwrap(v)
		if v == nil && fd.Optional {
			return nil, false
		}
	}
	return v, true
}

// decodeField assigns one property value to the bound field of a record
// value. Absent required properties fail with a MissingFieldError, and
// values that cannot be assigned fail with a TypeMismatchError.
func decodeField(label string, fd *FieldDescription, rv reflect.Value, v any, present bool) error {
	fv := rv.FieldByIndex(fd.Index)
	if !present || (v == nil && fd.Optional) {
		if !fd.Optional {
			return NewMissingFieldError(label, fd.Name)
		}
		fv.SetZero()
		return nil
	}
	vt := fv.Type()
	if fd.Optional {
		vt = vt.Elem()
	}
	var ev reflect.Value
	switch {
	case fd.Wrapper:
		pw := reflect.New(vt)
		if err := pw.Interface().(Wrapper).Wrap(v); err != nil {
			return NewTypeMismatchError(label, fd.Name, vt, v, err)
		}
		ev = pw.Elem()
	default:
		var err error
		ev, err = coerce(label, fd.Name, v, vt)
		if err != nil {
			return err
		}
	}
	if fd.Optional {
		p := reflect.New(vt)
		p.Elem().Set(ev)
		fv.Set(p)
		return nil
	}
	fv.Set(ev)
	return nil
}

// coerce converts a property value to the given type. Exact and
// assignable values pass through, numeric values widen within their
// class, and composite values are re-materialized through msgpack.
// Anything else is a TypeMismatchError.
func coerce(label, name string, v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, NewTypeMismatchError(label, name, t, v, nil)
	}
	rv := reflect.ValueOf(v)
	if rv.Type() == t || rv.Type().AssignableTo(t) {
		return rv, nil
	}
	if nv, ok := widen(rv, t); ok {
		return nv, nil
	}
	// Serializing stores hand composite values back as generic maps and
	// slices. Round-tripping through msgpack rebuilds the bound type.
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		p := reflect.New(t)
		raw, err := msgpack.Marshal(v)
		if err != nil {
			return reflect.Value{}, NewTypeMismatchError(label, name, t, v, err)
		}
		if err := msgpack.Unmarshal(raw, p.Interface()); err != nil {
			return reflect.Value{}, NewTypeMismatchError(label, name, t, v, err)
		}
		return p.Elem(), nil
	}
	return reflect.Value{}, NewTypeMismatchError(label, name, t, v, nil)
}

// widen converts a numeric value to a wider type of the same class.
// Conversions that would overflow the target do not apply.
func widen(rv reflect.Value, t reflect.Type) (reflect.Value, bool) {
	switch k := t.Kind(); {
	case rv.CanInt() && isIntKind(k):
		if reflect.Zero(t).OverflowInt(rv.Int()) {
			return reflect.Value{}, false
		}
	case rv.CanInt() && isUintKind(k):
		n := rv.Int()
		if n < 0 || reflect.Zero(t).OverflowUint(uint64(n)) {
			return reflect.Value{}, false
		}
	case rv.CanUint() && isUintKind(k):
		if reflect.Zero(t).OverflowUint(rv.Uint()) {
			return reflect.Value{}, false
		}
	case rv.CanUint() && isIntKind(k):
		n := rv.Uint()
		if n > 1<<63-1 || reflect.Zero(t).OverflowInt(int64(n)) {
			return reflect.Value{}, false
		}
	case rv.CanFloat() && isFloatKind(k):
		if reflect.Zero(t).OverflowFloat(rv.Float()) {
			return reflect.Value{}, false
		}
	default:
		return reflect.Value{}, false
	}
	return rv.Convert(t), true
}

func isIntKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUintKind(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uint64
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// DecodeProperty converts a required property value to the type V. It is
// the decoding half of the codec exposed for hand-written and generated
// marshallers.
func DecodeProperty[V any](label, name string, props map[string]any) (V, error) {
	var zero V
	v, ok := props[name]
	if !ok {
		return zero, NewMissingFieldError(label, name)
	}
	ev, err := coerce(label, name, v, reflect.TypeOf((*V)(nil)).Elem())
	if err != nil {
		return zero, err
	}
	return ev.Interface().(V), nil
}

// DecodeOptional converts an optional property value to the type V. An
// absent or nil property decodes to nil.
func DecodeOptional[V any](label, name string, props map[string]any) (*V, error) {
	v, ok := props[name]
	if !ok || v == nil {
		return nil, nil
	}
	ev, err := coerce(label, name, v, reflect.TypeOf((*V)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	p := ev.Interface().(V)
	return &p, nil
}
