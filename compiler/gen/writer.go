package gen

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"
)

// writeFile renders one generated file, formats it with goimports and
// writes it under the target directory. When formatting fails, the
// unformatted output is kept next to the target with an .error suffix
// so the offending code can be inspected.
func writeFile(c *Config, t *Type, name string, f *jen.File) error {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError(t.Name, name, "render", err)
	}
	path := filepath.Join(c.Target, name)
	src, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		debug := path + ".error"
		_ = os.WriteFile(debug, buf.Bytes(), 0o644)
		return NewGenerationError(t.Name, name, "format (unformatted written to "+debug+")", err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return NewGenerationError(t.Name, name, "write", err)
	}
	return nil
}
