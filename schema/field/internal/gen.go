// gen is a codegen cmd for generating the field builder types from template.
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

// A builder describes one generated field builder family.
type builder struct {
	Name       string // builder type prefix and constructor name, lower case
	Type       string // Go type the field binds to, empty for hand-written constructors
	Article    string // indefinite article for the constructor doc
	Doc        string // doc phrase for the builder type
	Identifier bool   // family may carry the native vertex identifier
}

func main() {
	buf, err := os.ReadFile("internal/builders.tmpl")
	if err != nil {
		log.Fatal("reading template file:", err)
	}
	titleCaser := cases.Title(language.English)
	tmpl := template.Must(template.New("builders").
		Funcs(template.FuncMap{"title": titleCaser.String}).
		Parse(string(buf)))
	b := &bytes.Buffer{}
	if err = tmpl.Execute(b, []builder{
		{Name: "string", Type: "string", Article: "a", Doc: "string fields"},
		{Name: "bool", Type: "bool", Article: "a", Doc: "bool fields"},
		{Name: "int", Type: "int", Article: "an", Doc: "int fields"},
		{Name: "int64", Type: "int64", Article: "an", Doc: "int64 fields", Identifier: true},
		{Name: "float64", Type: "float64", Article: "a", Doc: "float64 fields"},
		{Name: "time", Doc: "time.Time fields"},
		{Name: "bytes", Type: "[]byte", Article: "a", Doc: "[]byte fields"},
		{Name: "uuid", Doc: "UUID fields"},
		{Name: "any", Doc: "fields holding arbitrary values"},
	}); err != nil {
		log.Fatal("executing template:", err)
	}
	if buf, err = format.Source(b.Bytes()); err != nil {
		log.Fatal("formatting output:", err)
	}
	if err = os.WriteFile("builders.go", buf, 0o644); err != nil {
		log.Fatal("writing go file:", err)
	}
}
