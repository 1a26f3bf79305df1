package driver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRefinementAccepts(t *testing.T) {
	c, err := validateRefinement(121)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), c.Height)
	assert.Equal(t, uint8(1), c.LayerSizes[0])
	assert.Equal(t, uint8(2), c.LayerSizes[1])
	assert.Equal(t, uint8(1), c.LayerSizes[2])
	assert.Equal(t, uint8(4), c.Size)
}

func TestValidateRefinementRejectsNonPositive(t *testing.T) {
	_, err := validateRefinement(0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	_, err = validateRefinement(-5)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestValidateRefinementRejectsOversizedLayer(t *testing.T) {
	_, err := validateRefinement(18) // layer size 8 > brick.MaxLayerSize (7)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
