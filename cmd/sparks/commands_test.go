package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go-sky-sparks/internal/config"
	"go-sky-sparks/pkg/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func TestSimulateIsReproducible(t *testing.T) {
	args := []string{"simulate", "--seed", "11", "--width", "200", "--height", "100", "-n", "400", "--log-level", "none"}

	first, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, first, "frames=400 particles=2/2")

	second, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparks.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "none"

[window]
width = 300
height = 250

[particles]
cap = 4
`), 0o644))

	out, err := execute(t, "simulate", "--config", path, "--height", "100", "-n", "1000")
	require.NoError(t, err)
	// the explicit cap from the file wins over the height
	assert.Contains(t, out, "particles=4/4")
}

func TestInvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparks.toml")
	require.NoError(t, os.WriteFile(path, []byte("fps = -1\n"), 0o644))

	_, err := execute(t, "simulate", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fps")

	_, err = execute(t, "simulate", "--log-level", "loud")
	require.Error(t, err)
}

func TestSimulateRejectsNegativeFrames(t *testing.T) {
	palette := render.Palette{Background: config.BackgroundColor, Spark: config.SparkColor}
	err := simulate(&bytes.Buffer{}, config.Default(), palette, -1)
	require.Error(t, err)
}
