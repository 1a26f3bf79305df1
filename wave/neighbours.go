package wave

import "github.com/katalvlaran/rectilinear/brick"

// waveBricks returns the slice of bricks placed in this builder's wave.
func (b *Builder) waveBricks() []brick.LayerBrick {
	out := make([]brick.LayerBrick, 0, b.waveSize)
	for i := b.waveStart; i < b.waveStart+b.waveSize; i++ {
		h := b.base.History[i]
		out = append(out, brick.LayerBrick{Brick: b.base.Bricks[h.Layer][h.Idx], Layer: h.Layer})
	}
	return out
}

// addWaveToNeighbours marks (delta>0) or unmarks (delta<0) every position
// a future brick could not occupy without colliding with this wave's own
// layer: crossing positions (opposite orientation, within +-2 in both
// axes) and parallel positions (same orientation, within the brick's own
// footprint minus one unit).
func (b *Builder) addWaveToNeighbours(delta int8) {
	for _, lb := range b.waveBricks() {
		plane := b.neighbours[lb.Layer]
		bk := lb.Brick
		for dx := int16(-2); dx <= 2; dx++ {
			for dy := int16(-2); dy <= 2; dy++ {
				plane.Add(brick.Brick{Vertical: !bk.Vertical, X: bk.X + dx, Y: bk.Y + dy}, delta)
			}
		}
		w, h := int16(4), int16(2)
		if bk.Vertical {
			w, h = 2, 4
		}
		for dx := -(w - 1); dx <= w-1; dx++ {
			for dy := -(h - 1); dy <= h-1; dy++ {
				plane.Add(brick.Brick{Vertical: bk.Vertical, X: bk.X + dx, Y: bk.Y + dy}, delta)
			}
		}
	}
}

// findPotentialBricksForNextWave discovers every candidate brick
// placement adjacent to this wave, on either neighbouring layer, that
// doesn't collide with anything already marked on that layer or the
// layers adjacent to it. Candidates are appended to v; every bitmap entry
// this call sets is cleared again before returning so the planes can be
// reused by sibling recursive calls.
func (b *Builder) findPotentialBricksForNextWave(v *[]brick.LayerBrick) {
	var marked []brick.LayerBrick

	for _, lb := range b.waveBricks() {
		bk := lb.Brick
		for _, layer2 := range []int{int(lb.Layer) - 1, int(lb.Layer) + 1} {
			if layer2 < 0 || layer2 >= int(b.maxCombination.Height) {
				continue
			}
			if b.base.LayerSizes[layer2] >= b.maxCombination.LayerSizes[layer2] {
				continue
			}
			plane := b.neighbours[layer2]

			tryCandidate := func(cand brick.Brick) {
				if plane.Contains(cand) {
					return
				}
				if layer2 > 0 && b.neighbours[layer2-1].Contains(cand) {
					return
				}
				if layer2+1 < len(b.neighbours) && b.neighbours[layer2+1].Contains(cand) {
					return
				}
				plane.Set(cand)
				marked = append(marked, brick.LayerBrick{Brick: cand, Layer: uint8(layer2)})
				*v = append(*v, brick.LayerBrick{Brick: cand, Layer: uint8(layer2)})
			}

			for dx := int16(-2); dx <= 2; dx++ {
				for dy := int16(-2); dy <= 2; dy++ {
					tryCandidate(brick.Brick{Vertical: !bk.Vertical, X: bk.X + dx, Y: bk.Y + dy})
				}
			}
			w, h := int16(4), int16(2)
			if bk.Vertical {
				w, h = 2, 4
			}
			for dx := -(w - 1); dx <= w-1; dx++ {
				for dy := -(h - 1); dy <= h-1; dy++ {
					tryCandidate(brick.Brick{Vertical: bk.Vertical, X: bk.X + dx, Y: bk.Y + dy})
				}
			}
		}
	}

	for _, m := range marked {
		b.neighbours[m.Layer].Unset(m.Brick)
	}
}

// canBecomeSymmetric reports whether the assembly, once completed, could
// still turn out 180-degree symmetric: every already-full layer must
// share the same doubled centroid and be individually symmetric about it.
func (b *Builder) canBecomeSymmetric() bool {
	var cx, cy int16
	haveCentre := false
	for l := uint8(0); l < b.base.Height; l++ {
		if b.base.LayerSizes[l] != b.maxCombination.LayerSizes[l] {
			continue
		}
		lx, ly := b.base.GetLayerCenter(l)
		if !haveCentre {
			cx, cy, haveCentre = lx, ly, true
		} else if lx != cx || ly != cy {
			return false
		}
		if !b.base.IsLayerSymmetric(l, cx, cy) {
			return false
		}
	}
	return true
}
