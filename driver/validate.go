package driver

import (
	"fmt"

	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/combo"
)

// validateRefinement decodes token's per-layer digits into a target
// Combination and rejects it before any work starts if it is out of the
// supported range: at least one layer, no layer exceeding
// brick.MaxLayerSize, no more layers than brick.MaxHeight, and a total
// size that fits brick.MaxBricks.
func validateRefinement(token int64) (combo.Combination, error) {
	if token <= 0 {
		return combo.Combination{}, fmt.Errorf("%w: refinement must be positive, got %d", ErrInvalidInput, token)
	}
	height := combo.HeightOfToken(token)
	if height == 0 || height > brick.MaxHeight {
		return combo.Combination{}, fmt.Errorf("%w: refinement %d has %d layers, want 1..%d", ErrInvalidInput, token, height, brick.MaxHeight)
	}
	sizes := combo.GetLayerSizesFromToken(token)
	for i := uint8(0); i < height; i++ {
		if sizes[i] == 0 || sizes[i] > brick.MaxLayerSize {
			return combo.Combination{}, fmt.Errorf("%w: refinement %d layer %d has size %d, want 1..%d", ErrInvalidInput, token, i, sizes[i], brick.MaxLayerSize)
		}
	}
	total := combo.SizeOfToken(token)
	if total == 0 || total > brick.MaxBricks {
		return combo.Combination{}, fmt.Errorf("%w: refinement %d totals %d bricks, want 1..%d", ErrInvalidInput, token, total, brick.MaxBricks)
	}
	return combo.MaxCombinationFromToken(token), nil
}
