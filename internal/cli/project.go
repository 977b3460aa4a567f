package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the name of the project configuration file.
const DefaultConfigFile = "grafogen.yml"

// Project is the grafogen.yml project configuration.
type Project struct {
	// Schema is the directory holding the record declarations.
	Schema string `yaml:"schema"`

	// Target is the directory generated code is written to.
	Target string `yaml:"target"`

	// Package is the import path of the generated package.
	Package string `yaml:"package"`

	// Runner is the generation entrypoint executed with "go run".
	Runner string `yaml:"runner"`

	// Header overrides the header comment of generated files.
	Header string `yaml:"header,omitempty"`

	// Workers caps parallel file emission. Zero means one worker per CPU.
	Workers int `yaml:"workers,omitempty"`
}

// LoadProject loads a grafogen.yml configuration file.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project config: %w", err)
	}
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse project config: %w", err)
	}
	if err := p.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &p, nil
}

// SaveProject saves a grafogen.yml configuration file.
func SaveProject(path string, p *Project) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal project config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// check validates that the fields every command relies on are present.
func (p *Project) check() error {
	switch {
	case p.Schema == "":
		return fmt.Errorf("missing schema directory")
	case p.Runner == "":
		return fmt.Errorf("missing generation runner")
	}
	return nil
}

// derivePackage resolves the import path of the directory dir by walking
// up to the enclosing go.mod. An empty string means the package could
// not be derived and must be configured explicitly.
func derivePackage(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	root := abs
	for {
		if _, err := os.Stat(filepath.Join(root, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(root)
		if parent == root {
			return ""
		}
		root = parent
	}
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return ""
	}
	module := modfile.ModulePath(data)
	if module == "" {
		return ""
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return ""
	}
	if rel == "." {
		return module
	}
	return module + "/" + filepath.ToSlash(rel)
}
