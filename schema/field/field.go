package field

import (
	"errors"
	"reflect"
	"time"
)

//go:generate go run internal/gen.go

// Descriptor holds the resolved description of a declared field. It is
// consumed by the runtime marshaller derivation and by the code generator,
// and should not be modified after the field builder released it.
type Descriptor struct {
	Name        string    // property name in the vertex
	Info        *TypeInfo // declared type information
	Optional    bool      // absent values are allowed
	Identifier  bool      // field carries the native vertex identifier
	StructField string    // record field override, resolved from Name if empty
	Comment     string    // field comment
	Err         error     // error collected while building the field
}

var (
	boolType    = reflect.TypeOf(false)
	timeType    = reflect.TypeOf(time.Time{})
	bytesType   = reflect.TypeOf([]byte(nil))
	intType     = reflect.TypeOf(int(0))
	int64Type   = reflect.TypeOf(int64(0))
	float64Type = reflect.TypeOf(float64(0))
	stringType  = reflect.TypeOf("")
)

func newDescriptor(name string, info *TypeInfo) *Descriptor {
	d := &Descriptor{Name: name, Info: info}
	if name == "" {
		d.Err = errors.New("field name cannot be empty")
	}
	return d
}

// Time returns a new builder for a time.Time field.
func Time(name string) *timeBuilder {
	return &timeBuilder{newDescriptor(name, &TypeInfo{
		Type:    TypeTime,
		Ident:   "time.Time",
		PkgPath: "time",
		RType:   timeType,
	})}
}

// UUID returns a new builder for a UUID field. The second parameter is a
// sample value of the concrete UUID type the record declares, usually
// uuid.UUID{}:
//
//	field.UUID("ref", uuid.UUID{})
func UUID(name string, typ any) *uuidBuilder {
	d := newDescriptor(name, &TypeInfo{Type: TypeUUID})
	if typ == nil {
		d.Err = errors.New("UUID sample value cannot be nil")
	} else {
		t := reflect.TypeOf(typ)
		d.Info.Ident = t.String()
		d.Info.PkgPath = t.PkgPath()
		d.Info.RType = t
	}
	return &uuidBuilder{d}
}

// Any returns a new builder for a field holding an arbitrary value. The
// value is stored as-is and no declared-type agreement is enforced on the
// record field it binds to.
func Any(name string) *anyBuilder {
	return &anyBuilder{newDescriptor(name, &TypeInfo{Type: TypeAny})}
}
