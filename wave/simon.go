package wave

import (
	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/combo"
	"github.com/katalvlaran/rectilinear/picker"
)

// fillable reports whether v contains enough candidates, per layer, to
// fill every remaining deficit in b.base versus b.maxCombination.
func (b *Builder) fillable(v []brick.LayerBrick) bool {
	have := map[uint8]int{}
	for _, lb := range v {
		have[lb.Layer]++
	}
	for l := uint8(0); l < b.maxCombination.Height; l++ {
		deficit := int(b.maxCombination.LayerSizes[l]) - int(b.base.LayerSizes[l])
		if deficit > 0 && have[l] < deficit {
			return false
		}
	}
	return true
}

// placeAllLeftToPlace dispatches between the exact BrickPicker
// enumeration (used whenever the result could still be 180-symmetric, or
// whenever per-token connectivity breakdown is required) and the
// Simon-with-buckets aggregate fast path (used for the plain,
// non-connectivity-tracked count once symmetry has been ruled out).
func (b *Builder) placeAllLeftToPlace(v []brick.LayerBrick, leftToPlace uint8) (bool, error) {
	if !b.fillable(v) {
		return true, nil
	}

	canSym := b.canBecomeSymmetric()
	if !canSym && !b.encodeConnectivity {
		b.simonAggregateCount(v)
		return true, nil
	}

	b.enumerateFull(v, leftToPlace, canSym)
	return true, nil
}

// enumerateFull tries every leftToPlace-subset of v via BrickPicker,
// recording each successful completion's symmetry and refinement token.
func (b *Builder) enumerateFull(v []brick.LayerBrick, leftToPlace uint8, canSym bool) {
	p := picker.NewBrickPicker(v, 0, int(leftToPlace))
	var prevToken int64
	havePrev := false

	for p.Next(&b.base, b.maxCombination) {
		var token int64
		switch {
		case b.encodingLocked && havePrev:
			token = prevToken
		case b.encodeConnectivity:
			token = b.base.EncodeConnectivity(0)
			prevToken, havePrev = token, true
		default:
			token = sentinelToken
		}

		sym180 := canSym && b.base.Is180Symmetric()
		sym90 := sym180 && b.base.Is90Symmetric()

		c := brick.Counts{All: 1}
		if sym180 {
			c.Symmetric180 = 1
		}
		if sym90 {
			c.Symmetric90 = 1
		}
		b.Counts[token] = b.Counts[token].Add(c)

		for i := uint8(0); i < leftToPlace; i++ {
			b.base.RemoveLastBrick()
		}
	}
}

// simonAggregateCount computes the total number of ways to fill every
// remaining layer deficit without any two chosen bricks intersecting,
// bucketing candidates by layer (each layer's deficit is fixed, so unlike
// a free cross-bucket distribution, the per-layer counts simply multiply)
// — the inclusion-exclusion "all minus overlap" computation collapses
// into an exact per-layer non-intersecting-subset count via BrickPicker.
// Used only once canBecomeSymmetric is false, so every completion
// contributes to All alone.
func (b *Builder) simonAggregateCount(v []brick.LayerBrick) {
	byLayer := map[uint8][]brick.LayerBrick{}
	for _, lb := range v {
		byLayer[lb.Layer] = append(byLayer[lb.Layer], lb)
	}

	product := uint64(1)
	for l := uint8(0); l < b.maxCombination.Height; l++ {
		deficit := int(b.maxCombination.LayerSizes[l]) - int(b.base.LayerSizes[l])
		if deficit <= 0 {
			continue
		}
		product *= countNonIntersectingSubsets(byLayer[l], deficit, l)
		if product == 0 {
			break
		}
	}
	b.Counts[sentinelToken] = b.Counts[sentinelToken].Add(brick.Counts{All: product})
}

// countNonIntersectingSubsets counts the k-subsets of v (all on layer
// layer) containing no intersecting pair, via a throwaway BrickPicker
// whose capacity is relaxed to exactly k so only intra-candidate
// intersection is checked.
func countNonIntersectingSubsets(v []brick.LayerBrick, k int, layer uint8) uint64 {
	if k == 0 {
		return 1
	}
	if k > len(v) {
		return 0
	}
	var relaxed combo.Combination
	relaxed.Height = layer + 1
	relaxed.LayerSizes[layer] = uint8(k)

	var scratch combo.Combination
	p := picker.NewBrickPicker(v, 0, k)
	var count uint64
	for p.Next(&scratch, &relaxed) {
		count++
		for i := 0; i < k; i++ {
			scratch.RemoveLastBrick()
		}
	}
	return count
}
