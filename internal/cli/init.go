package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// initCommand scaffolds a grafogen project: the grafogen.yml
// configuration and a generate runner the other commands execute.
func (c *CLI) initCommand() *cobra.Command {
	var (
		schema string
		target string
		pkg    string
		file   string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a grafogen project",
		Long: `Init writes a grafogen.yml pointing at the schema package and a
generate.go runner next to it. The runner is where record types are
registered for generation; edit it after scaffolding.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pkg == "" {
				pkg = derivePackage(target)
			}
			if pkg == "" {
				return fmt.Errorf("cannot derive the import path of %s; pass --package", target)
			}
			p := &Project{
				Schema:  schema,
				Target:  target,
				Package: pkg,
				Runner:  filepath.Join(schema, "generate.go"),
			}
			return c.runInit(file, p)
		},
	}

	cmd.Flags().StringVar(&schema, "schema", "./model", "directory of the record declarations")
	cmd.Flags().StringVar(&target, "target", "./model", "directory generated code is written to")
	cmd.Flags().StringVar(&pkg, "package", "", "import path of the generated package (derived from go.mod if empty)")
	cmd.Flags().StringVar(&file, "config", DefaultConfigFile, "project configuration file to write")

	return cmd
}

func (c *CLI) runInit(file string, p *Project) error {
	if _, err := os.Stat(file); err == nil {
		return fmt.Errorf("%s already exists", file)
	}
	if _, err := os.Stat(p.Runner); err == nil {
		return fmt.Errorf("%s already exists", p.Runner)
	}
	if err := SaveProject(file, p); err != nil {
		return err
	}
	c.Logger.Info("wrote project config", "file", file)

	if err := os.MkdirAll(filepath.Dir(p.Runner), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	if err := os.WriteFile(p.Runner, runnerScaffold(p), 0o644); err != nil {
		return fmt.Errorf("write runner: %w", err)
	}
	c.Logger.Info("wrote generation runner", "file", p.Runner)
	c.Logger.Info("register your record types in the runner, then run: grafogen generate")
	return nil
}

// runnerScaffold returns the source of the generate runner. The runner
// builds alone under "go run"; the ignore constraint keeps it out of
// the package proper.
func runnerScaffold(p *Project) []byte {
	target, err := filepath.Rel(filepath.Dir(p.Runner), p.Target)
	if err != nil || target == "" {
		target = "."
	}
	return fmt.Appendf(nil, `//go:build ignore

package main

import (
	"context"
	"log"

	"github.com/syssam/grafo/compiler/gen"
)

// Pass the record values to generate marshallers and clients for, e.g.
//
//	gen.Generate(ctx, cfg, User{}, Track{})
func main() {
	cfg, err := gen.NewConfig(
		gen.WithTarget(%q),
		gen.WithPackage(%q),
	)
	if err != nil {
		log.Fatalf("grafogen: %%v", err)
	}
	if err := gen.Generate(context.Background(), cfg); err != nil {
		log.Fatalf("grafogen: %%v", err)
	}
}
`, target, p.Package)
}
