package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, 3, cfg.MinValues)
	assert.Equal(t, 10, cfg.AbortAfter)
	assert.Empty(t, cfg.Sheet)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TABX_FORMAT", "json")
	t.Setenv("TABX_ABORT_AFTER", "25")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 25, cfg.AbortAfter)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "tabx.yaml")
	saved := &Config{
		Sheet:      "Orders",
		Format:     "json",
		RestKey:    "excess",
		MinValues:  4,
		AbortAfter: 20,
	}
	require.NoError(t, Save(saved, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
