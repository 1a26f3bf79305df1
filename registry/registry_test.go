package registry_test

import (
	"testing"

	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownToken(t *testing.T) {
	c, found, err := registry.Lookup(11)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, brick.Counts{All: 24, Symmetric180: 2}, c)
}

func TestLookupUnknownToken(t *testing.T) {
	_, found, err := registry.Lookup(999999)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCheckMatch(t *testing.T) {
	ok, known, err := registry.Check(44, brick.Counts{All: 4297589646, Symmetric180: 34099, Symmetric90: 122})
	require.NoError(t, err)
	assert.True(t, known)
	assert.True(t, ok)
}

func TestCheckMismatch(t *testing.T) {
	ok, known, err := registry.Check(44, brick.Counts{All: 1})
	require.NoError(t, err)
	assert.True(t, known)
	assert.False(t, ok)
}

func TestCheckUnknownIsNotAFailure(t *testing.T) {
	ok, known, err := registry.Check(8888, brick.Counts{All: 1})
	require.NoError(t, err)
	assert.False(t, known)
	assert.True(t, ok)
}

func TestAllReturnsEveryEntry(t *testing.T) {
	all, err := registry.All()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(all), 16)
}
