package bitstream_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/rectilinear/bitstream"
	"github.com/katalvlaran/rectilinear/brick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	const base = 3

	w := bitstream.NewWriter(&buf, base, false)
	baseBricks := []brick.Brick{
		{Vertical: true, X: brick.PlaneMid + 4, Y: brick.PlaneMid},
		{Vertical: false, X: brick.PlaneMid, Y: brick.PlaneMid + 6},
	}
	require.NoError(t, w.WriteBatch(baseBricks, true, false))
	require.NoError(t, w.WriteEntry([]uint8{1, 2}, brick.Counts{All: 100, Symmetric180: 4, Symmetric90: 0}))
	require.NoError(t, w.WriteEntry([]uint8{3, 3}, brick.Counts{All: 55, Symmetric180: 0, Symmetric90: 0}))
	require.NoError(t, w.EndBatch())
	require.NoError(t, w.Close())

	r := bitstream.NewReader(&buf, base, false)
	batch, _, sentinel, err := r.Next()
	require.NoError(t, err)
	assert.False(t, sentinel)
	assert.True(t, batch.Symmetric180)
	assert.False(t, batch.Symmetric90)
	require.Len(t, batch.Bricks, 2)
	assert.Equal(t, baseBricks, batch.Bricks)
	require.Len(t, batch.Entries, 2)
	assert.Equal(t, []uint8{1, 2}, batch.Entries[0].Colors)
	assert.Equal(t, uint64(100), batch.Entries[0].Counts.All)
	assert.Equal(t, uint64(55), batch.Entries[1].Counts.All)

	_, totals, sentinel2, err := r.Next()
	require.NoError(t, err)
	assert.True(t, sentinel2)
	assert.Equal(t, uint8(base), totals.Base)
	assert.Equal(t, uint64(155), totals.SumAll)
	assert.Equal(t, uint64(4), totals.Sum180)
	assert.Equal(t, uint64(2), totals.Lines)
}

func TestWriterRejectsOverflowingCounts(t *testing.T) {
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf, 2, false)
	require.NoError(t, w.WriteBatch(nil, false, false))
	err := w.WriteEntry([]uint8{1}, brick.Counts{All: 1 << 33})
	assert.Error(t, err)
}

func TestLargeCountsRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	const base = 2
	w := bitstream.NewWriter(&buf, base, true)
	require.NoError(t, w.WriteBatch(nil, false, false))
	big := brick.Counts{All: 4297589646, Symmetric180: 34099, Symmetric90: 122}
	require.NoError(t, w.WriteEntry([]uint8{1}, big))
	require.NoError(t, w.EndBatch())
	require.NoError(t, w.Close())

	r := bitstream.NewReader(&buf, base, true)
	batch, _, _, err := r.Next()
	require.NoError(t, err)
	require.Len(t, batch.Entries, 1)
	assert.Equal(t, big, batch.Entries[0].Counts)
}

func TestAreLargeCountsRequired(t *testing.T) {
	assert.True(t, bitstream.AreLargeCountsRequired(2, 3, 8))
	assert.False(t, bitstream.AreLargeCountsRequired(2, 2, 8))
	assert.False(t, bitstream.AreLargeCountsRequired(3, 3, 8))
}
