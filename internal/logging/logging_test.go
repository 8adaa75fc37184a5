package logging

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, l)

	l, err = ParseLevel("NONE")
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, l)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestSetupWritesJSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	require.NoError(t, Setup("warn", &buf))

	log.Info().Msg("hidden")
	log.Warn().Int("particles", 3).Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"particles":3`)
	assert.Contains(t, out, `"message":"shown"`)
}

func TestOpenFile(t *testing.T) {
	w, err := OpenFile("")
	require.NoError(t, err)
	_, err = w.Write([]byte("dropped"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	w, err = OpenFile(filepath.Join(t.TempDir(), "sparks.log"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
}
