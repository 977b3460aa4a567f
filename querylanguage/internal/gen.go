// gen is a codegen cmd for generating the typed field predicates from template.
package main

import (
	"bytes"
	"go/format"
	"log"
	"os"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A kind describes one generated predicate family.
type kind struct {
	Kind    string // property kind the family covers
	Type    string // Go parameter type of the constructors
	Ordered bool   // emit the ordering constructors
	Strings bool   // emit the string-function constructors
}

func main() {
	buf, err := os.ReadFile("internal/types.tmpl")
	if err != nil {
		log.Fatal("reading template file:", err)
	}
	titleCaser := cases.Title(language.English)
	tmpl := template.Must(template.New("types").
		Funcs(template.FuncMap{"title": titleCaser.String}).
		Parse(string(buf)))
	b := &bytes.Buffer{}
	if err = tmpl.Execute(b, []kind{
		{Kind: "bool", Type: "bool"},
		{Kind: "bytes", Type: "[]byte"},
		{Kind: "time", Type: "time.Time", Ordered: true},
		{Kind: "uint", Type: "uint", Ordered: true},
		{Kind: "uint8", Type: "uint8", Ordered: true},
		{Kind: "uint16", Type: "uint16", Ordered: true},
		{Kind: "uint32", Type: "uint32", Ordered: true},
		{Kind: "uint64", Type: "uint64", Ordered: true},
		{Kind: "int", Type: "int", Ordered: true},
		{Kind: "int8", Type: "int8", Ordered: true},
		{Kind: "int16", Type: "int16", Ordered: true},
		{Kind: "int32", Type: "int32", Ordered: true},
		{Kind: "int64", Type: "int64", Ordered: true},
		{Kind: "float32", Type: "float32", Ordered: true},
		{Kind: "float64", Type: "float64", Ordered: true},
		{Kind: "string", Type: "string", Ordered: true, Strings: true},
		{Kind: "value", Type: "driver.Valuer"},
		{Kind: "other", Type: "driver.Valuer"},
	}); err != nil {
		log.Fatal("executing template:", err)
	}
	if buf, err = format.Source(b.Bytes()); err != nil {
		log.Fatal("formatting output:", err)
	}
	if err = os.WriteFile("types.go", buf, 0o644); err != nil {
		log.Fatal("writing go file:", err)
	}
}
