package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Streamlines-UNH/tide-maker/place"
)

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	opts, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, place.DefaultOptions(), opts)
}

func TestLoadFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streamline.yaml")
	contents := "separationFactor: 2.0\nisteps: 7\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, opts.SeparationFactor)
	assert.Equal(t, 7, opts.ISteps)
	assert.Equal(t, place.DefaultOptions().MinMag, opts.MinMag)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
