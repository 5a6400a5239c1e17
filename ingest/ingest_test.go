package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoc = `{
  "gridSpacingLongitudinal": 0.05,
  "gridSpacingLatitudinal": 0.05,
  "northBoundLatitude": 0.1,
  "southBoundLatitude": 0,
  "eastBoundLongitude": 0.1,
  "westBoundLongitude": 0,
  "numPointsLongitudinal": 3,
  "numPointsLatitudinal": 3,
  "samples": [
    [{"speed": 1, "directionDegrees": 90}, {"speed": 1, "directionDegrees": 90}, {"speed": 1, "directionDegrees": 90}],
    [{"speed": 1, "directionDegrees": 90}, {"speed": 1, "directionDegrees": 90}, {"speed": 1, "directionDegrees": 90}],
    [{"speed": 1, "directionDegrees": 90}, {"speed": 1, "directionDegrees": 90}, {"speed": 1, "directionDegrees": 90}]
  ]
}`

func writeTestDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "field.json")
	require.NoError(t, os.WriteFile(path, []byte(testDoc), 0o644))
	return path
}

func TestJSONFileSourceLoad(t *testing.T) {
	path := writeTestDoc(t)
	src := NewJSONFileSource(path)

	f, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, f)
}

func TestJSONFileSourceLoadMissingFile(t *testing.T) {
	src := NewJSONFileSource(filepath.Join(t.TempDir(), "missing.json"))
	_, err := src.Load(context.Background())
	assert.Error(t, err)
}

func TestJSONFileSourceLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	src := NewJSONFileSource(path)
	_, err := src.Load(context.Background())
	assert.Error(t, err)
}

func TestJSONFileSourceLoadRespectsCancelledContext(t *testing.T) {
	path := writeTestDoc(t)
	src := NewJSONFileSource(path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Load(ctx)
	assert.Error(t, err)
}
