package gen

import "path"

// DefaultHeader is the comment placed at the top of generated files.
const DefaultHeader = "Code generated by grafogen. DO NOT EDIT."

// Config holds the global configuration of a generation run.
type Config struct {
	// Package is the import path of the package the code is generated
	// into. Generated files resolve references to their own package
	// through it.
	Package string

	// Target is the directory generated files are written to.
	Target string

	// Header overrides the default file header comment.
	Header string

	// Workers caps the number of files emitted in parallel.
	// Zero means one worker per CPU.
	Workers int
}

// PkgName returns the package name generated files are declared under.
func (c *Config) PkgName() string {
	return path.Base(c.Package)
}

func (c *Config) header() string {
	if c.Header != "" {
		return c.Header
	}
	return DefaultHeader
}

func (c *Config) validate() error {
	if c.Target == "" {
		return NewConfigError("Target", nil, "target directory cannot be empty")
	}
	if c.Package == "" {
		return NewConfigError("Package", nil, "package import path cannot be empty")
	}
	return nil
}
