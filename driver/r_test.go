package driver

import (
	"errors"
	"testing"

	"github.com/katalvlaran/rectilinear/brick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Token 11 is the simplest possible refinement (base layer 1 brick, one
// brick above it): its expected counts are the registry's and match
// wave.Builder's own TestBuild_TwoLayerToken11 case exactly, since R's
// base==1 path is a thin wrapper around the same wave.NewFromBase call.
func TestR_Token11MatchesRegistry(t *testing.T) {
	result, err := R(11)
	require.NoError(t, err)
	assert.Equal(t, brick.Counts{All: 24, Symmetric180: 2}, result.Counts[11])
	assert.GreaterOrEqual(t, result.Elapsed.Nanoseconds(), int64(0))
}

func TestR_SingleBrickAssembly(t *testing.T) {
	result, err := R(1)
	require.NoError(t, err)
	assert.Equal(t, brick.Counts{All: 1, Symmetric180: 1}, result.Counts[1])
}

func TestR_RejectsInvalidRefinement(t *testing.T) {
	_, err := R(0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
