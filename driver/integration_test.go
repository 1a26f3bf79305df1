package driver

import (
	"testing"

	"github.com/katalvlaran/rectilinear/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Token 21 (base layer 2, one brick above it) is one of spec.md §8's test
// suite seeds ("run P then S on {21, 22, 23, 221, 31, 41} for max distances
// 8/16"). Combining two "21" half-refinements over their shared base-2
// layer produces a three-layer stack of sizes 1,2,1 — exactly token 121 —
// so this exercises the real P -> S pipeline (not synthetic fixture data)
// against an actual registry entry, and guards against the per-base
// over-normalization bug where folding each base's counts before summing
// them silently corrupts the combined total.
func TestPThenS_Token21CombinesToToken121(t *testing.T) {
	dir := t.TempDir()
	const maxDist = 8

	err := P(21, maxDist, WithOutputDir(dir))
	require.NoError(t, err)

	result, err := S(21, 2, 21, maxDist, WithOutputDir(dir))
	require.NoError(t, err)

	want, known, err := registry.Lookup(121)
	require.NoError(t, err)
	require.True(t, known)
	assert.Equal(t, want, result.Counts[0])
}
