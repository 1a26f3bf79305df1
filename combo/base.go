package combo

import "github.com/katalvlaran/rectilinear/brick"

// Base is a layer-0-only projection of a Combination, used as the Lemma-3
// precomputation key.
type Base struct {
	LayerSize uint8
	Bricks    [brick.MaxLayerSize]brick.Brick
}

// CBase pairs each Base brick with its original index in some larger
// Combination, so a reduced/mirrored Base can still be mapped back to the
// full assembly's brick numbering when reporting.
type CBase struct {
	LayerSize uint8
	Bricks    [brick.MaxLayerSize]brick.Brick
	Orig      [brick.MaxLayerSize]uint8
}

func (b *Base) translateMinToOrigo() {
	min := b.Bricks[0]
	found := false
	for i := uint8(0); i < b.LayerSize; i++ {
		br := b.Bricks[i]
		if !br.Vertical {
			continue
		}
		if !found || br.X < min.X || (br.X == min.X && br.Y < min.Y) {
			min, found = br, true
		}
	}
	dx := brick.PlaneMid - min.X
	dy := brick.PlaneMid - min.Y
	for i := uint8(0); i < b.LayerSize; i++ {
		b.Bricks[i].X += dx
		b.Bricks[i].Y += dy
	}
}

func (b *Base) sortBricks() {
	n := int(b.LayerSize)
	bs := b.Bricks[:n]
	for i := 1; i < n; i++ {
		for j := i; j > 0 && bs[j].Less(bs[j-1]); j-- {
			bs[j], bs[j-1] = bs[j-1], bs[j]
		}
	}
}

func (b *Base) hasVerticalBrick() bool {
	for i := uint8(0); i < b.LayerSize; i++ {
		if b.Bricks[i].Vertical {
			return true
		}
	}
	return false
}

func (b *Base) canRotate90() bool {
	for i := uint8(0); i < b.LayerSize; i++ {
		if !b.Bricks[i].Vertical {
			return true
		}
	}
	return false
}

func (b *Base) rotate90() {
	for i := uint8(0); i < b.LayerSize; i++ {
		br := b.Bricks[i]
		b.Bricks[i] = brick.Brick{
			Vertical: !br.Vertical,
			X:        br.Y,
			Y:        brick.PlaneMid - (br.X - brick.PlaneMid),
		}
	}
	b.translateMinToOrigo()
	b.sortBricks()
}

func (b *Base) rotate180() {
	for i := uint8(0); i < b.LayerSize; i++ {
		br := b.Bricks[i]
		b.Bricks[i] = brick.Brick{Vertical: br.Vertical, X: 2*brick.PlaneMid - br.X, Y: 2*brick.PlaneMid - br.Y}
	}
	b.translateMinToOrigo()
	b.sortBricks()
}

func (b *Base) less(o *Base) bool {
	if b.LayerSize != o.LayerSize {
		return b.LayerSize < o.LayerSize
	}
	for i := uint8(0); i < b.LayerSize; i++ {
		a, c := b.Bricks[i], o.Bricks[i]
		if a.Vertical != c.Vertical {
			return a.Vertical
		}
		if a.X != c.X {
			return a.X < c.X
		}
		if a.Y != c.Y {
			return a.Y < c.Y
		}
	}
	return false
}

// Normalize canonicalises b the same way Combination.Normalize does.
func (b *Base) Normalize() {
	if b.hasVerticalBrick() {
		b.translateMinToOrigo()
		b.sortBricks()
	} else {
		b.rotate90()
	}
	if b.canRotate90() {
		best := *b
		cur := *b
		for i := 0; i < 3; i++ {
			cur.rotate90()
			if cur.less(&best) {
				best = cur
			}
		}
		*b = best
	} else {
		alt := *b
		alt.rotate180()
		if alt.less(b) {
			*b = alt
		}
	}
}

// MirrorX reflects b across the vertical-plane-mid X axis and
// renormalises.
func (b *Base) MirrorX() {
	for i := uint8(0); i < b.LayerSize; i++ {
		br := b.Bricks[i]
		b.Bricks[i] = brick.Brick{Vertical: br.Vertical, X: 2*brick.PlaneMid - br.X, Y: br.Y}
	}
	b.translateMinToOrigo()
	b.sortBricks()
}

// MirrorY reflects b across the horizontal-plane-mid Y axis and
// renormalises.
func (b *Base) MirrorY() {
	for i := uint8(0); i < b.LayerSize; i++ {
		br := b.Bricks[i]
		b.Bricks[i] = brick.Brick{Vertical: br.Vertical, X: br.X, Y: 2*brick.PlaneMid - br.Y}
	}
	b.translateMinToOrigo()
	b.sortBricks()
}

// Is180Symmetric reports whether b's single layer is invariant under a
// 180 degree rotation about its own centre.
func (b *Base) Is180Symmetric() bool {
	c := NewFromBase(*b)
	return c.Is180Symmetric()
}

// Is90Symmetric reports whether b's single layer is invariant under a 90
// degree rotation.
func (b *Base) Is90Symmetric() bool {
	c := NewFromBase(*b)
	return c.Is90Symmetric()
}

// unreachableDistOffset places synthetic placeholder bricks far enough
// away from every real brick that they can never intersect or be reached
// by any wave expansion bounded by maxCombination's size, while still
// contributing to the reported layer size.
func unreachableDistOffset(maxCombination *Combination) int16 {
	var maxDx, maxDy int16
	for i := uint8(0); i < maxCombination.LayerSizes[0]; i++ {
		b := maxCombination.Bricks[0][i]
		dx, dy := b.X-brick.PlaneMid, b.Y-brick.PlaneMid
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx > maxDx {
			maxDx = dx
		}
		if dy > maxDy {
			maxDy = dy
		}
	}
	return maxDx + maxDy + int16(maxCombination.Size-1)*3 + 1
}

// ReduceFromUnreachable keeps only the bricks of b that can reach some
// other brick in b within the number of intermediate bricks
// CountBricksToBridge allows, mapping each kept brick back to its original
// index via CBase.Orig. If none are reachable, brick 0 is kept as a
// fallback so the reduced base is never empty.
func (b *Base) ReduceFromUnreachable(maxCombination *Combination) CBase {
	bricksBetween := CountBricksToBridge(maxCombination)

	var out CBase
	for i := uint8(0); i < b.LayerSize; i++ {
		reachable := false
		for j := uint8(0); j < b.LayerSize; j++ {
			if i == j {
				continue
			}
			if brick.CanReach(b.Bricks[i], b.Bricks[j], bricksBetween) {
				reachable = true
				break
			}
		}
		if reachable {
			out.Bricks[out.LayerSize] = b.Bricks[i]
			out.Orig[out.LayerSize] = i
			out.LayerSize++
		}
	}
	if out.LayerSize == 0 {
		out.Bricks[0] = b.Bricks[0]
		out.Orig[0] = 0
		out.LayerSize = 1
	}
	out.normalize()
	return out
}

// PadWithPlaceholders appends synthetic far-away bricks to b (mutating a
// copy) until its LayerSize matches targetSize, used to rebuild a
// reduced base back up to its original reporting size without introducing
// any new geometric constraint.
func (b Base) PadWithPlaceholders(targetSize uint8, maxCombination *Combination) Base {
	dist := unreachableDistOffset(maxCombination)
	dirs := []struct{ dx, dy int16 }{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	d := 0
	for b.LayerSize < targetSize {
		dir := dirs[d%len(dirs)]
		b.Bricks[b.LayerSize] = brick.Brick{
			Vertical: true,
			X:        brick.PlaneMid + dir.dx*dist*int16(d/len(dirs)+1),
			Y:        brick.PlaneMid + dir.dy*dist*int16(d/len(dirs)+1),
		}
		b.LayerSize++
		d++
	}
	return b
}

func (cb *CBase) translateMinToOrigo() {
	min := cb.Bricks[0]
	found := false
	for i := uint8(0); i < cb.LayerSize; i++ {
		br := cb.Bricks[i]
		if !br.Vertical {
			continue
		}
		if !found || br.X < min.X || (br.X == min.X && br.Y < min.Y) {
			min, found = br, true
		}
	}
	dx := brick.PlaneMid - min.X
	dy := brick.PlaneMid - min.Y
	for i := uint8(0); i < cb.LayerSize; i++ {
		cb.Bricks[i].X += dx
		cb.Bricks[i].Y += dy
	}
}

func (cb *CBase) sortBricks() {
	n := int(cb.LayerSize)
	for i := 1; i < n; i++ {
		for j := i; j > 0 && cb.Bricks[j].Less(cb.Bricks[j-1]); j-- {
			cb.Bricks[j], cb.Bricks[j-1] = cb.Bricks[j-1], cb.Bricks[j]
			cb.Orig[j], cb.Orig[j-1] = cb.Orig[j-1], cb.Orig[j]
		}
	}
}

func (cb *CBase) hasVerticalBrick() bool {
	for i := uint8(0); i < cb.LayerSize; i++ {
		if cb.Bricks[i].Vertical {
			return true
		}
	}
	return false
}

func (cb *CBase) canRotate90() bool {
	for i := uint8(0); i < cb.LayerSize; i++ {
		if !cb.Bricks[i].Vertical {
			return true
		}
	}
	return false
}

func (cb *CBase) rotate90() {
	for i := uint8(0); i < cb.LayerSize; i++ {
		br := cb.Bricks[i]
		cb.Bricks[i] = brick.Brick{
			Vertical: !br.Vertical,
			X:        br.Y,
			Y:        brick.PlaneMid - (br.X - brick.PlaneMid),
		}
	}
	cb.translateMinToOrigo()
	cb.sortBricks()
}

func (cb *CBase) rotate180() {
	for i := uint8(0); i < cb.LayerSize; i++ {
		br := cb.Bricks[i]
		cb.Bricks[i] = brick.Brick{Vertical: br.Vertical, X: 2*brick.PlaneMid - br.X, Y: 2*brick.PlaneMid - br.Y}
	}
	cb.translateMinToOrigo()
	cb.sortBricks()
}

func (cb *CBase) less(o *CBase) bool {
	if cb.LayerSize != o.LayerSize {
		return cb.LayerSize < o.LayerSize
	}
	for i := uint8(0); i < cb.LayerSize; i++ {
		a, c := cb.Bricks[i], o.Bricks[i]
		if a.Vertical != c.Vertical {
			return a.Vertical
		}
		if a.X != c.X {
			return a.X < c.X
		}
		if a.Y != c.Y {
			return a.Y < c.Y
		}
	}
	return false
}

func (cb *CBase) normalize() {
	if cb.hasVerticalBrick() {
		cb.translateMinToOrigo()
		cb.sortBricks()
	} else {
		cb.rotate90()
	}
	if cb.canRotate90() {
		best := *cb
		cur := *cb
		for i := 0; i < 3; i++ {
			cur.rotate90()
			if cur.less(&best) {
				best = cur
			}
		}
		*cb = best
	} else {
		alt := *cb
		alt.rotate180()
		if alt.less(cb) {
			*cb = alt
		}
	}
}

// MirrorX reflects cb across the vertical-plane-mid X axis, renormalises,
// and keeps Orig in sync (mirrors Base.MirrorX).
func (cb *CBase) MirrorX() {
	for i := uint8(0); i < cb.LayerSize; i++ {
		br := cb.Bricks[i]
		cb.Bricks[i] = brick.Brick{Vertical: br.Vertical, X: 2*brick.PlaneMid - br.X, Y: br.Y}
	}
	cb.translateMinToOrigo()
	cb.sortBricks()
}

// MirrorY reflects cb across the horizontal-plane-mid Y axis, renormalises,
// and keeps Orig in sync (mirrors Base.MirrorY).
func (cb *CBase) MirrorY() {
	for i := uint8(0); i < cb.LayerSize; i++ {
		br := cb.Bricks[i]
		cb.Bricks[i] = brick.Brick{Vertical: br.Vertical, X: br.X, Y: 2*brick.PlaneMid - br.Y}
	}
	cb.translateMinToOrigo()
	cb.sortBricks()
}

// PlainBase drops CBase's original-index tracking, returning the Base it
// annotates.
func (cb CBase) PlainBase() Base {
	var b Base
	b.LayerSize = cb.LayerSize
	for i := uint8(0); i < cb.LayerSize; i++ {
		b.Bricks[i] = cb.Bricks[i]
	}
	return b
}
