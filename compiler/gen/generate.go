package gen

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/grafo"
)

// Generator holds the configuration and the resolved types of one
// generation run.
type Generator struct {
	cfg   *Config
	types []*Type
}

// NewGenerator resolves the given record declarations against the
// configuration. Schema problems surface here, before any file is
// written.
func NewGenerator(cfg *Config, records ...grafo.Mapping) (*Generator, error) {
	if cfg == nil {
		return nil, ErrMissingConfig
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg}
	for _, rec := range records {
		t, err := NewType(rec)
		if err != nil {
			return nil, err
		}
		g.types = append(g.types, t)
	}
	return g, nil
}

// Types returns the resolved types in declaration order.
func (g *Generator) Types() []*Type {
	return g.types
}

// Generate emits the marshaller and client files for every resolved
// type. Files are written in parallel; the first failure cancels the
// remaining work.
func (g *Generator) Generate(ctx context.Context) error {
	if err := os.MkdirAll(g.cfg.Target, 0o755); err != nil {
		return fmt.Errorf("create target directory: %w", err)
	}
	eg, ctx := errgroup.WithContext(ctx)
	workers := g.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	eg.SetLimit(workers)
	for _, t := range g.types {
		for _, task := range []struct {
			name  string
			build func(*Config, *Type) (*jen.File, error)
		}{
			{t.MarshallerFile(), genMarshaller},
			{t.ClientFile(), genClient},
		} {
			eg.Go(func() error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				f, err := task.build(g.cfg, t)
				if err != nil {
					return err
				}
				return writeFile(g.cfg, t, task.name, f)
			})
		}
	}
	return eg.Wait()
}

// Generate resolves the records and writes their generated code in one
// call.
func Generate(ctx context.Context, cfg *Config, records ...grafo.Mapping) error {
	g, err := NewGenerator(cfg, records...)
	if err != nil {
		return err
	}
	return g.Generate(ctx)
}
