package driver

import (
	"testing"

	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/rectio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSingleEntryFile writes one distance file holding one non-symmetric
// base batch with a single entry, for a base-layer size of 1 (so colours
// are empty and Report.Connected is trivially true).
func writeSingleEntryFile(t *testing.T, dir string, token int64, all uint64) {
	t.Helper()
	layout := rectio.Layout{Root: dir, Base: 1, Size: 2, Refinement: token}
	w, closeW, err := rectio.CreateWriter(layout, 2, 1, false)
	require.NoError(t, err)
	require.NoError(t, w.WriteBatch(nil, false, false))
	require.NoError(t, w.WriteEntry(nil, brick.Counts{All: all}))
	require.NoError(t, w.EndBatch())
	require.NoError(t, w.Close())
	require.NoError(t, closeW())
}

func TestS_CombinesSharedBaseHalves(t *testing.T) {
	dir := t.TempDir()
	writeSingleEntryFile(t, dir, 11, 4)

	// report.CountUp's non-symmetric-base formula gives 4*4=16 raw, then S
	// folds that once by the shared base's layer-0 size (1 here), matching
	// wave.Builder.Finalize's All /= 2*s0: 16/(2*1) = 8.
	result, err := S(11, 1, 11, 2, WithOutputDir(dir))
	require.NoError(t, err)
	assert.Equal(t, brick.Counts{All: 8}, result.Counts[0])
}

func TestS_RejectsMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := S(11, 1, 11, 2, WithOutputDir(dir))
	assert.Error(t, err)
}

func TestS_RejectsBaseSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	_, err := S(11, 2, 11, 2, WithOutputDir(dir))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
