package picker

import (
	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/combo"
)

// BrickPicker enumerates every way to choose numberOfBricksToPick bricks
// from v, in lexicographic index order, placing each candidate combination
// directly onto a caller-supplied Combination via AddBrick/RemoveLastBrick
// so callers can inspect or further extend the partial assembly between
// calls to Next.
type BrickPicker struct {
	v                    []brick.LayerBrick
	vIdx                 int
	numberOfBricksToPick int
	inner                *BrickPicker
}

// NewBrickPicker returns a picker over v[start:], picking
// numberOfBricksToPick bricks per call to Next.
func NewBrickPicker(v []brick.LayerBrick, start, numberOfBricksToPick int) *BrickPicker {
	return &BrickPicker{v: v, vIdx: start - 1, numberOfBricksToPick: numberOfBricksToPick}
}

// checkVIdx reports whether v[vIdx] can legally be added to c: its layer
// must not already be at maxCombination's target size, and it must not
// intersect any brick already placed on that layer.
func (p *BrickPicker) checkVIdx(c *combo.Combination, maxCombination *combo.Combination) bool {
	lb := p.v[p.vIdx]
	layer := lb.Layer
	if c.LayerSizes[layer] >= maxCombination.LayerSizes[layer] {
		return false
	}
	for i := uint8(0); i < c.LayerSizes[layer]; i++ {
		if c.Bricks[layer][i].Intersects(lb.Brick) {
			return false
		}
	}
	return true
}

// Next advances to the next valid numberOfBricksToPick-subset, leaving it
// placed on c via AddBrick, and returns true; it returns false once every
// subset has been produced, leaving c exactly as it was before the first
// call to Next.
func (p *BrickPicker) Next(c *combo.Combination, maxCombination *combo.Combination) bool {
	if p.numberOfBricksToPick == 1 {
		for {
			p.vIdx++
			if p.vIdx >= len(p.v) {
				return false
			}
			if p.checkVIdx(c, maxCombination) {
				lb := p.v[p.vIdx]
				c.AddBrick(lb.Brick, lb.Layer)
				return true
			}
		}
	}

	for {
		if p.inner != nil {
			// The caller removes every brick of a returned subset, so this
			// picker's own brick is placed again before the inner picker
			// extends it.
			lb := p.v[p.vIdx]
			c.AddBrick(lb.Brick, lb.Layer)
			if p.inner.Next(c, maxCombination) {
				return true
			}
			c.RemoveLastBrick()
			p.inner = nil
		}

		for {
			p.vIdx++
			if p.vIdx+p.numberOfBricksToPick-1 >= len(p.v) {
				return false
			}
			if p.checkVIdx(c, maxCombination) {
				break
			}
		}

		p.inner = NewBrickPicker(p.v, p.vIdx+1, p.numberOfBricksToPick-1)
	}
}
