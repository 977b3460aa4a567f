package gen

import (
	"github.com/dave/jennifer/jen"
)

// genClient emits the typed client file for a record type. The client
// binds the generated marshaller to a graph engine so callers get the
// vertex operations without spelling out type parameters or touching
// the registry.
func genClient(c *Config, t *Type) (*jen.File, error) {
	f := jen.NewFilePathName(c.Package, c.PkgName())
	f.HeaderComment(c.header())

	var (
		name = t.ClientName()
		rt   = func() *jen.Statement { return typeCode(t.RecordType()) }
		m    = func() *jen.Statement { return jen.Id(t.MarshallerName()).Values() }
		recv = func() *jen.Statement { return jen.Id("c").Op("*").Id(name) }
		eng  = func() *jen.Statement { return jen.Id("c").Dot("g") }
		ctx  = func() *jen.Statement { return jen.Id("ctx").Qual("context", "Context") }
		id   = func() *jen.Statement { return jen.Id("id").Qual(dialectPkg, "ID") }
	)
	f.Commentf("%s executes typed vertex operations for %s records against a graph engine.", name, t.Name)
	if doc := t.Comment(); doc != "" {
		f.Comment(doc)
	}
	f.Type().Id(name).Struct(
		jen.Id("g").Qual(dialectPkg, "Graph"),
	)

	f.Commentf("New%s returns a client bound to the given engine.", name)
	f.Func().Id("New" + name).Params(jen.Id("g").Qual(dialectPkg, "Graph")).Op("*").Id(name).Block(
		jen.Return(jen.Op("&").Id(name).Values(jen.Dict{jen.Id("g"): jen.Id("g")})),
	)

	f.Comment("Insert stores the record as a new vertex and returns its native id.")
	f.Func().Params(recv()).Id("Insert").
		Params(ctx(), jen.Id("rec").Add(rt())).
		Params(jen.Qual(dialectPkg, "ID"), jen.Error()).
		Block(
			jen.Return(jen.Qual(grafoPkg, "InsertWith").Index(rt()).Call(
				jen.Id("ctx"), eng(), m(), jen.Id("rec"),
			)),
		)

	f.Commentf("Get loads the %s with the given id. A vertex carrying a different label reports a NotFoundError.", t.Name)
	f.Func().Params(recv()).Id("Get").
		Params(ctx(), id()).
		Params(rt(), jen.Error()).
		Block(
			jen.Var().Id("zero").Add(rt()),
			jen.List(jen.Id("v"), jen.Err()).Op(":=").Qual(grafoPkg, "ReadVertex").Call(
				jen.Id("ctx"), eng(), jen.Id("id"),
			),
			jen.If(jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Id("zero"), jen.Err()),
			),
			jen.If(jen.Id("v").Dot("Label").Op("!=").Lit(t.Label())).Block(
				jen.Return(jen.Id("zero"), jen.Qual(dialectPkg, "NewNotFoundErrorWithID").Call(
					jen.Lit(t.Label()), jen.Id("id"),
				)),
			),
			jen.Return(m().Dot("ToRecord").Call(jen.Id("v"))),
		)

	f.Comment("Update replaces the properties of the record's vertex. The record must carry an identifier.")
	f.Func().Params(recv()).Id("Update").
		Params(ctx(), jen.Id("rec").Add(rt())).
		Error().
		Block(
			jen.Return(jen.Qual(grafoPkg, "UpdateWith").Index(rt()).Call(
				jen.Id("ctx"), eng(), m(), jen.Id("rec"),
			)),
		)

	f.Comment("Delete removes the vertex with the given id.")
	f.Func().Params(recv()).Id("Delete").
		Params(ctx(), id()).
		Error().
		Block(
			jen.Return(jen.Qual(grafoPkg, "Delete").Call(
				jen.Id("ctx"), eng(), jen.Id("id"),
			)),
		)

	f.Commentf("All iterates the %s vertices of the engine in unspecified order.", t.Name)
	f.Func().Params(recv()).Id("All").
		Params(ctx()).
		Qual("iter", "Seq2").Types(rt(), jen.Error()).
		Block(
			jen.Return(jen.Qual(grafoPkg, "AllWith").Index(rt()).Call(
				jen.Id("ctx"), eng(), jen.Lit(t.Label()), m(),
			)),
		)

	f.Commentf("Filter iterates the %s vertices whose stored properties satisfy the predicate.", t.Name)
	f.Func().Params(recv()).Id("Filter").
		Params(ctx(), jen.Id("p").Qual(qlPkg, "P")).
		Qual("iter", "Seq2").Types(rt(), jen.Error()).
		Block(
			jen.Return(jen.Qual(grafoPkg, "AllMatchingWith").Index(rt()).Call(
				jen.Id("ctx"), eng(), jen.Lit(t.Label()), m(), jen.Id("p"),
			)),
		)

	return f, nil
}
