package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	opts := Default()
	require.NoError(t, opts.Validate())

	bg, spark, err := opts.Palette()
	require.NoError(t, err)
	assert.Equal(t, BackgroundColor, bg)
	assert.Equal(t, SparkColor, spark)
}

func TestParticleCap(t *testing.T) {
	opts := Default()

	// derived from the height like the h/50 of the canvas script
	assert.Equal(t, 18, opts.ParticleCap(900))
	assert.Equal(t, 1, opts.ParticleCap(1))
	assert.Equal(t, 0, opts.ParticleCap(0))

	opts.Particles.Cap = 3
	assert.Equal(t, 3, opts.ParticleCap(900))
}

func TestDecodeMergesOverDefaults(t *testing.T) {
	opts := Default()
	err := Decode([]byte(`
seed = 42

[particles]
cap = 7

[trails]
base_life = 10

[colors]
spark = "#ff0000"
`), &opts)
	require.NoError(t, err)

	assert.EqualValues(t, 42, opts.Seed)
	assert.Equal(t, 7, opts.Particles.Cap)
	assert.Equal(t, 6.0, opts.Particles.BaseSize)
	assert.Equal(t, 10.0, opts.Trails.BaseLife)
	assert.Equal(t, 20, opts.Trails.Cap)

	_, spark, err := opts.Palette()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, spark)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	opts := Default()
	err := Decode([]byte("[particles]\nsizes = 3\n"), &opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys")
}

func TestLoad(t *testing.T) {
	opts, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), opts)

	path := filepath.Join(t.TempDir(), "sparks.toml")
	require.NoError(t, os.WriteFile(path, []byte("fps = 30\n"), 0o644))

	opts, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, opts.FPS)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestValidateCollectsErrors(t *testing.T) {
	opts := Default()
	opts.FPS = 0
	opts.Particles.BaseSize = 0
	opts.Trails.SpawnChance = 1.5
	opts.Colors.Background = "not-a-color"

	err := opts.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fps")
	assert.Contains(t, err.Error(), "particles.base_size")
	assert.Contains(t, err.Error(), "trails.spawn_chance")
	assert.Contains(t, err.Error(), "background color")
}
