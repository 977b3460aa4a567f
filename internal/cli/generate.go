package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/spf13/cobra"
)

// generateCommand runs the project's generation runner once.
func (c *CLI) generateCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the project's code generation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := LoadProject(file)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), p)
		},
	}
	cmd.Flags().StringVar(&file, "config", DefaultConfigFile, "project configuration file")
	return cmd
}

// runGenerate executes the configured runner with "go run". The runner's
// output streams through so generation failures arrive unmangled.
func (c *CLI) runGenerate(ctx context.Context, p *Project) error {
	start := time.Now()
	c.Logger.Debug("running generation", "runner", p.Runner)

	cmd := exec.CommandContext(ctx, "go", "run", p.Runner)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run %s: %w", p.Runner, err)
	}
	c.Logger.Info("generation finished", "runner", p.Runner, "took", time.Since(start).Round(time.Millisecond))
	return nil
}
