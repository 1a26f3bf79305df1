package wave_test

import (
	"testing"

	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/combo"
	"github.com/katalvlaran/rectilinear/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNeighbours() []*brick.Plane {
	return []*brick.Plane{{}, {}, {}, {}, {}}
}

func TestBuild_AlreadyCompleteSingleBrick(t *testing.T) {
	var maxCombination combo.Combination
	maxCombination.Height = 1
	maxCombination.Size = 1
	maxCombination.LayerSizes[0] = 1
	maxCombination.Bricks[0][0] = brick.FirstBrick

	base := combo.Base{LayerSize: 1, Bricks: [7]brick.Brick{brick.FirstBrick}}
	b := wave.NewFromBase(base, newNeighbours(), &maxCombination, false)
	require.NoError(t, b.Build())

	got := b.Counts[1]
	assert.Equal(t, uint64(1), got.All)
	assert.Equal(t, uint64(1), got.Symmetric180)
	assert.Equal(t, uint64(0), got.Symmetric90)
}

func TestBuild_TwoLayerToken11(t *testing.T) {
	var maxCombination combo.Combination
	maxCombination.Height = 2
	maxCombination.Size = 2
	maxCombination.LayerSizes[0] = 1
	maxCombination.LayerSizes[1] = 1
	maxCombination.Bricks[0][0] = brick.FirstBrick

	base := combo.Base{LayerSize: 1, Bricks: [7]brick.Brick{brick.FirstBrick}}
	b := wave.NewFromBase(base, newNeighbours(), &maxCombination, false)
	require.NoError(t, b.Build())

	f := b.Finalize()
	got := f[1]
	// Registry entry for token 11 (matching original, divided by 2*s0=2
	// for All and s0=1 for Symmetric180) is (24, 2, 0).
	assert.Equal(t, uint64(24), got.All)
	assert.Equal(t, uint64(2), got.Symmetric180)
	assert.Equal(t, uint64(0), got.Symmetric90)
}
