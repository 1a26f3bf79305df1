package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// With MaxSize 1, every registry entry (smallest total size is 2, token
// 11) is skipped before R is ever invoked, so this exercises the sweep's
// filtering without depending on any refinement actually being computed.
func TestX_MaxSizeOneSkipsEverything(t *testing.T) {
	mismatches, err := X(WithMaxSize(1))
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}
