package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOptionsDefaults(t *testing.T) {
	o := NewOptions()
	assert.Equal(t, 0, o.Threads)
	assert.Equal(t, ".", o.OutputDir)
	assert.Equal(t, uint8(8), o.MaxSize)
}

func TestNewOptionsAppliesOverrides(t *testing.T) {
	o := NewOptions(WithThreads(4), WithOutputDir("/tmp/out"), WithMaxSize(6))
	assert.Equal(t, 4, o.Threads)
	assert.Equal(t, "/tmp/out", o.OutputDir)
	assert.Equal(t, uint8(6), o.MaxSize)
}

func TestLoadOptionsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threads: 3\noutputDir: /data/out\nmaxSize: 9\n"), 0o644))

	o, err := LoadOptionsFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, o.Threads)
	assert.Equal(t, "/data/out", o.OutputDir)
	assert.Equal(t, uint8(9), o.MaxSize)
}

func TestLoadOptionsFilePartialFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threads: 2\n"), 0o644))

	o, err := LoadOptionsFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, o.Threads)
	assert.Equal(t, ".", o.OutputDir)
	assert.Equal(t, uint8(8), o.MaxSize)
}

func TestLoadOptionsFileMissing(t *testing.T) {
	_, err := LoadOptionsFile("/nonexistent/opts.yaml")
	assert.Error(t, err)
}
