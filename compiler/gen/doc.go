// Package gen emits static marshallers for grafo record types.
//
// The derived marshallers of the root package resolve record schemas
// through reflection. This package produces the equivalent code ahead of
// time: for every record it writes a marshaller with direct field access
// and a typed client over a dialect.Graph, both registered on package
// initialization so the runtime never reflects over the type.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	Record declaration (Fields/Mixin/Label methods)
//	        ↓
//	   load.Schema (serializable declaration)
//	        ↓
//	   Type (declaration joined with the resolved binding)
//	        ↓
//	   Generated code ({record}_grafo.go, {record}_client.go)
//
// # Error Handling
//
// The package uses structured error types:
//
//   - ConfigError: Configuration errors
//   - GenerationError: Code emission and write errors
//
// Schema-shape problems surface as the root package's SchemaError,
// unchanged from what runtime derivation would report.
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("./internal/model"),
//	    gen.WithPackage("github.com/org/project/internal/model"),
//	)
//	err = gen.Generate(ctx, cfg, model.User{}, model.Track{})
//
// Code generation uses the Jennifer library: imports are tracked
// automatically, files are emitted in parallel with configurable
// workers, and the output is passed through goimports-style formatting
// before it is written.
package gen
