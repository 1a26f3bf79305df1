package driver

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/rectio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDistanceFile(t *testing.T, root string, token int64, all uint64) {
	t.Helper()
	layout := rectio.Layout{Root: root, Base: 1, Size: 2, Refinement: token}
	w, closeW, err := rectio.CreateWriter(layout, 2, 1, false)
	require.NoError(t, err)
	require.NoError(t, w.WriteBatch(nil, false, false))
	require.NoError(t, w.WriteEntry(nil, brick.Counts{All: all}))
	require.NoError(t, w.EndBatch())
	require.NoError(t, w.Close())
	require.NoError(t, closeW())
}

func TestT_NoDiffWhenRunsAgree(t *testing.T) {
	dir := t.TempDir()
	writeDistanceFile(t, filepath.Join(dir, "a"), 11, 5)
	writeDistanceFile(t, filepath.Join(dir, "b"), 11, 5)

	diffs, err := T(1, 11, 2, 2, "a", "b", WithOutputDir(dir))
	require.NoError(t, err)
	assert.Empty(t, diffs)
}

func TestT_ReportsDiffWhenRunsDisagree(t *testing.T) {
	dir := t.TempDir()
	writeDistanceFile(t, filepath.Join(dir, "a"), 11, 5)
	writeDistanceFile(t, filepath.Join(dir, "b"), 11, 7)

	diffs, err := T(1, 11, 2, 2, "a", "b", WithOutputDir(dir))
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, 2, diffs[0].Distance)
	assert.Equal(t, uint64(5), diffs[0].Left.All)
	assert.Equal(t, uint64(7), diffs[0].Right.All)
}
