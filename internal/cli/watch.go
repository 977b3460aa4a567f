package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchCommand re-runs generation whenever a schema file changes.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		file     string
		debounce time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run generation when schema files change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := LoadProject(file)
			if err != nil {
				return err
			}
			return c.runWatch(cmd.Context(), p, debounce)
		},
	}
	cmd.Flags().StringVar(&file, "config", DefaultConfigFile, "project configuration file")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "quiet period before re-running generation")
	return cmd
}

// runWatch generates once, then blocks on schema-file changes until the
// context is canceled. Bursts of events within the debounce window
// collapse into a single run.
func (c *CLI) runWatch(ctx context.Context, p *Project, debounce time.Duration) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(p.Schema); err != nil {
		return fmt.Errorf("watch %s: %w", p.Schema, err)
	}
	c.Logger.Info("watching for changes", "dir", p.Schema)

	if err := c.runGenerate(ctx, p); err != nil {
		if ctx.Err() != nil {
			return err
		}
		c.Logger.Error("generation failed", "err", err)
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !schemaChange(ev) {
				continue
			}
			c.Logger.Debug("change detected", "file", ev.Name, "op", ev.Op.String())
			pending = time.After(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.Logger.Error("watch error", "err", err)
		case <-pending:
			pending = nil
			if err := c.runGenerate(ctx, p); err != nil {
				if ctx.Err() != nil {
					return err
				}
				c.Logger.Error("generation failed", "err", err)
			}
		}
	}
}

// schemaChange reports whether the event concerns a hand-written Go
// schema file. Generated files are skipped so a run does not trigger
// the next one when target and schema share a directory.
func schemaChange(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) &&
		!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(ev.Name)
	if filepath.Ext(name) != ".go" {
		return false
	}
	switch {
	case strings.HasSuffix(name, "_grafo.go"),
		strings.HasSuffix(name, "_client.go"),
		strings.HasSuffix(name, "_test.go"):
		return false
	}
	return true
}
