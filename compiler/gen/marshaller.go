package gen

import (
	"fmt"
	"reflect"

	"github.com/dave/jennifer/jen"
)

// Import paths referenced by generated code.
const (
	grafoPkg   = "github.com/syssam/grafo"
	dialectPkg = "github.com/syssam/grafo/dialect"
	qlPkg      = "github.com/syssam/grafo/querylanguage"
)

// genMarshaller emits the static marshaller file for a record type. The
// emitted FromRecord and ToRecord bodies follow the semantics of the
// reflection-based codec exactly, so switching a type between derived
// and generated marshallers never changes behavior.
func genMarshaller(c *Config, t *Type) (*jen.File, error) {
	f := jen.NewFilePathName(c.Package, c.PkgName())
	f.HeaderComment(c.header())

	var (
		name = t.MarshallerName()
		rt   = func() *jen.Statement { return typeCode(t.RecordType()) }
	)
	f.Commentf("%s converts %s records to and from their vertex form without reflection.", name, t.Name)
	if doc := t.Comment(); doc != "" {
		f.Comment(doc)
	}
	f.Type().Id(name).Struct()

	f.Var().Id("_").Qual(grafoPkg, "Marshaller").Index(rt()).Op("=").Id(name).Values()

	f.Func().Id("init").Params().Block(
		jen.Qual(grafoPkg, "Register").Index(rt()).Call(jen.Id(name).Values()),
	)

	from, err := genFromRecord(t)
	if err != nil {
		return nil, err
	}
	f.Comment("FromRecord converts a record to its vertex representation.")
	f.Func().Params(jen.Id(name)).Id("FromRecord").
		Params(jen.Id("rec").Add(rt())).
		Params(jen.Op("*").Qual(grafoPkg, "Vertex"), jen.Error()).
		Block(from...)

	to, err := genToRecord(t)
	if err != nil {
		return nil, err
	}
	f.Comment("ToRecord rebuilds a record from a vertex representation.")
	f.Func().Params(jen.Id(name)).Id("ToRecord").
		Params(jen.Id("v").Op("*").Qual(grafoPkg, "Vertex")).
		Params(rt(), jen.Error()).
		Block(to...)

	return f, nil
}

// genFromRecord emits the FromRecord body.
func genFromRecord(t *Type) ([]jen.Code, error) {
	props := len(t.Fields())
	if t.ID() != nil {
		props--
	}
	body := []jen.Code{
		jen.Id("v").Op(":=").Op("&").Qual(grafoPkg, "Vertex").Values(jen.Dict{
			jen.Id("Label"):      jen.Lit(t.Label()),
			jen.Id("Properties"): jen.Make(jen.Map(jen.String()).Any(), jen.Lit(props)),
		}),
	}
	for _, fld := range t.Fields() {
		code, err := genEncodeField(t, fld)
		if err != nil {
			return nil, err
		}
		body = append(body, code...)
	}
	return append(body, jen.Return(jen.Id("v"), jen.Nil())), nil
}

// genEncodeField emits the encoding of one field: identifiers go to the
// native id slot, absent optionals are skipped, wrappers are stored by
// their unwrapped value.
func genEncodeField(t *Type, f *TypeField) ([]jen.Code, error) {
	var (
		b    = f.Binding
		sf   = func() *jen.Statement { return jen.Id("rec").Dot(f.StructField()) }
		prop = func() *jen.Statement { return jen.Id("v").Dot("Properties").Index(jen.Lit(f.Name())) }
	)
	switch {
	case b.Identifier && b.Wrapper:
		enclosed := f.EnclosedType()
		if enclosed == nil {
			msg := fmt.Sprintf("cannot determine the type enclosed by identifier wrapper %s", f.ValueType())
			return nil, NewGenerationError(t.Name, "", msg, nil)
		}
		assign := func(unwrapped *jen.Statement) []jen.Code {
			return []jen.Code{
				jen.List(jen.Id("n"), jen.Id("ok")).Op(":=").Add(unwrapped).Assert(typeCode(enclosed)),
				jen.If(jen.Op("!").Id("ok")).Block(
					jen.Return(jen.Nil(), jen.Qual(grafoPkg, "NewSchemaError").Call(
						jen.Lit(t.Name), jen.Lit(f.Name()),
						jen.Lit("identifier wrapper enclosed a non-int64 value"), jen.Nil(),
					)),
				),
				jen.Id("id").Op(":=").Qual(dialectPkg, "ID").Call(jen.Id("n")),
				jen.Id("v").Dot("ID").Op("=").Op("&").Id("id"),
			}
		}
		if b.Optional {
			return []jen.Code{
				jen.If(sf().Op("!=").Nil()).Block(
					jen.If(
						jen.Id("u").Op(":=").Qual(grafoPkg, "Unwrap").Call(jen.Op("*").Add(sf())),
						jen.Id("u").Op("!=").Nil(),
					).Block(assign(jen.Id("u"))...),
				),
			}, nil
		}
		return assign(jen.Qual(grafoPkg, "Unwrap").Call(sf())), nil

	case b.Identifier:
		if b.Optional {
			return []jen.Code{
				jen.If(sf().Op("!=").Nil()).Block(
					jen.Id("id").Op(":=").Qual(dialectPkg, "ID").Call(jen.Op("*").Add(sf())),
					jen.Id("v").Dot("ID").Op("=").Op("&").Id("id"),
				),
			}, nil
		}
		return []jen.Code{
			jen.Id("id").Op(":=").Qual(dialectPkg, "ID").Call(sf()),
			jen.Id("v").Dot("ID").Op("=").Op("&").Id("id"),
		}, nil

	case b.Wrapper && b.Optional:
		return []jen.Code{
			jen.If(sf().Op("!=").Nil()).Block(
				jen.If(
					jen.Id("u").Op(":=").Qual(grafoPkg, "Unwrap").Call(jen.Op("*").Add(sf())),
					jen.Id("u").Op("!=").Nil(),
				).Block(prop().Op("=").Id("u")),
			),
		}, nil

	case b.Wrapper:
		return []jen.Code{
			prop().Op("=").Qual(grafoPkg, "Unwrap").Call(sf()),
		}, nil

	case b.Optional:
		return []jen.Code{
			jen.If(sf().Op("!=").Nil()).Block(
				prop().Op("=").Op("*").Add(sf()),
			),
		}, nil

	default:
		return []jen.Code{
			prop().Op("=").Add(sf()),
		}, nil
	}
}

// genToRecord emits the ToRecord body.
func genToRecord(t *Type) ([]jen.Code, error) {
	body := []jen.Code{
		jen.Var().Id("rec").Add(typeCode(t.RecordType())),
	}
	for _, fld := range t.Fields() {
		body = append(body, genDecodeField(t, fld)...)
	}
	return append(body, jen.Return(jen.Id("rec"), jen.Nil())), nil
}

// genDecodeField emits the decoding of one field. Plain values go
// through the exported codec helpers so coercion matches the derived
// marshaller; wrappers are rebuilt in place through Wrap.
func genDecodeField(t *Type, f *TypeField) []jen.Code {
	var (
		b     = f.Binding
		label = t.Label()
		sf    = func() *jen.Statement { return jen.Id("rec").Dot(f.StructField()) }
		prop  = func() *jen.Statement { return jen.Id("v").Dot("Properties").Index(jen.Lit(f.Name())) }
		vid   = func() *jen.Statement { return jen.Id("int64").Call(jen.Op("*").Id("v").Dot("ID")) }
	)
	mismatch := func(typ, val *jen.Statement) *jen.Statement {
		return jen.Return(jen.Id("rec"), jen.Qual(grafoPkg, "NewTypeMismatchError").Call(
			jen.Lit(label), jen.Lit(f.Name()),
			jen.Qual("reflect", "TypeOf").Call(typ), val, jen.Err(),
		))
	}
	switch {
	case b.Identifier && b.Optional:
		var inner []jen.Code
		if b.Wrapper {
			inner = []jen.Code{
				jen.Var().Id("w").Add(typeCode(f.ValueType())),
				jen.If(
					jen.Err().Op(":=").Id("w").Dot("Wrap").Call(vid()),
					jen.Err().Op("!=").Nil(),
				).Block(mismatch(jen.Id("w"), vid())),
				sf().Op("=").Op("&").Id("w"),
			}
		} else {
			inner = []jen.Code{
				jen.Id("id").Op(":=").Add(typeCode(f.ValueType())).Call(jen.Op("*").Id("v").Dot("ID")),
				sf().Op("=").Op("&").Id("id"),
			}
		}
		return []jen.Code{
			jen.If(jen.Id("v").Dot("ID").Op("!=").Nil()).Block(inner...),
		}

	case b.Identifier:
		code := []jen.Code{
			jen.If(jen.Id("v").Dot("ID").Op("==").Nil()).Block(
				jen.Return(jen.Id("rec"), jen.Qual(grafoPkg, "NewMissingFieldError").Call(
					jen.Lit(label), jen.Lit(f.Name()),
				)),
			),
		}
		if b.Wrapper {
			return append(code,
				jen.If(
					jen.Err().Op(":=").Add(sf()).Dot("Wrap").Call(vid()),
					jen.Err().Op("!=").Nil(),
				).Block(mismatch(sf(), vid())),
			)
		}
		return append(code,
			sf().Op("=").Add(typeCode(f.Binding.Type)).Call(jen.Op("*").Id("v").Dot("ID")),
		)

	case b.Wrapper && b.Optional:
		return []jen.Code{
			jen.If(
				jen.List(jen.Id("raw"), jen.Id("ok")).Op(":=").Add(prop()),
				jen.Id("ok").Op("&&").Id("raw").Op("!=").Nil(),
			).Block(
				jen.Var().Id("w").Add(typeCode(f.ValueType())),
				jen.If(
					jen.Err().Op(":=").Id("w").Dot("Wrap").Call(jen.Id("raw")),
					jen.Err().Op("!=").Nil(),
				).Block(mismatch(jen.Id("w"), jen.Id("raw"))),
				sf().Op("=").Op("&").Id("w"),
			),
		}

	case b.Wrapper:
		return []jen.Code{
			jen.Block(
				jen.List(jen.Id("raw"), jen.Id("ok")).Op(":=").Add(prop()),
				jen.If(jen.Op("!").Id("ok")).Block(
					jen.Return(jen.Id("rec"), jen.Qual(grafoPkg, "NewMissingFieldError").Call(
						jen.Lit(label), jen.Lit(f.Name()),
					)),
				),
				jen.If(
					jen.Err().Op(":=").Add(sf()).Dot("Wrap").Call(jen.Id("raw")),
					jen.Err().Op("!=").Nil(),
				).Block(mismatch(sf(), jen.Id("raw"))),
			),
		}

	case b.Optional:
		return []jen.Code{
			jen.Block(
				jen.List(jen.Id("p"), jen.Err()).Op(":=").Qual(grafoPkg, "DecodeOptional").
					Index(typeCode(f.ValueType())).
					Call(jen.Lit(label), jen.Lit(f.Name()), jen.Id("v").Dot("Properties")),
				jen.If(jen.Err().Op("!=").Nil()).Block(
					jen.Return(jen.Id("rec"), jen.Err()),
				),
				sf().Op("=").Id("p"),
			),
		}

	default:
		return []jen.Code{
			jen.Block(
				jen.List(jen.Id("p"), jen.Err()).Op(":=").Qual(grafoPkg, "DecodeProperty").
					Index(typeCode(f.ValueType())).
					Call(jen.Lit(label), jen.Lit(f.Name()), jen.Id("v").Dot("Properties")),
				jen.If(jen.Err().Op("!=").Nil()).Block(
					jen.Return(jen.Id("rec"), jen.Err()),
				),
				sf().Op("=").Id("p"),
			),
		}
	}
}

// typeCode returns the Jennifer code referencing the given Go type.
// Named types resolve through their import path; references to the
// target package itself render unqualified.
func typeCode(t reflect.Type) *jen.Statement {
	if t == reflect.TypeOf([]byte(nil)) {
		return jen.Id("[]byte")
	}
	if t.Name() != "" {
		if t.PkgPath() != "" {
			return jen.Qual(t.PkgPath(), t.Name())
		}
		return jen.Id(t.Name())
	}
	switch t.Kind() {
	case reflect.Pointer:
		return jen.Op("*").Add(typeCode(t.Elem()))
	case reflect.Slice:
		return jen.Index().Add(typeCode(t.Elem()))
	case reflect.Array:
		return jen.Index(jen.Lit(t.Len())).Add(typeCode(t.Elem()))
	case reflect.Map:
		return jen.Map(typeCode(t.Key())).Add(typeCode(t.Elem()))
	default:
		return jen.Id(t.String())
	}
}
