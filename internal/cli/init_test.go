package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "grafogen.yml")
	p := &Project{
		Schema:  filepath.Join(dir, "model"),
		Target:  filepath.Join(dir, "model"),
		Package: "github.com/a8m/app/model",
		Runner:  filepath.Join(dir, "model", "generate.go"),
	}
	require.NoError(t, testCLI().runInit(file, p))

	assert.FileExists(t, file)
	assert.FileExists(t, p.Runner)

	got, err := LoadProject(file)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	src, err := os.ReadFile(p.Runner)
	require.NoError(t, err)
	assert.Contains(t, string(src), "//go:build ignore")
	assert.Contains(t, string(src), "github.com/syssam/grafo/compiler/gen")
	assert.Contains(t, string(src), `gen.WithTarget(".")`)
	assert.Contains(t, string(src), `gen.WithPackage("github.com/a8m/app/model")`)
	assert.Contains(t, string(src), `log.Fatalf("grafogen: %v", err)`)
}

func TestRunInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "grafogen.yml")
	p := &Project{
		Schema:  filepath.Join(dir, "model"),
		Target:  filepath.Join(dir, "model"),
		Package: "github.com/a8m/app/model",
		Runner:  filepath.Join(dir, "model", "generate.go"),
	}
	require.NoError(t, testCLI().runInit(file, p))

	err := testCLI().runInit(file, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRunnerScaffoldRelativeTarget(t *testing.T) {
	p := &Project{
		Schema:  "schema",
		Target:  "model",
		Package: "github.com/a8m/app/model",
		Runner:  filepath.Join("schema", "generate.go"),
	}
	src := string(runnerScaffold(p))
	assert.Contains(t, src, `gen.WithTarget("../model")`)
}

func TestRootCommand(t *testing.T) {
	root := testCLI().RootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "generate")
	assert.Contains(t, names, "watch")
}
