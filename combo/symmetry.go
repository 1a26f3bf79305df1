package combo

import "github.com/katalvlaran/rectilinear/brick"

// Rotate90 rotates every brick 90 degrees about brick.PlaneMid, then
// re-normalises position (TranslateMinToOrigo) and order (SortBricks).
func (c *Combination) Rotate90() {
	for l := uint8(0); l < c.Height; l++ {
		for i := uint8(0); i < c.LayerSizes[l]; i++ {
			b := c.Bricks[l][i]
			c.Bricks[l][i] = brick.Brick{
				Vertical: !b.Vertical,
				X:        b.Y,
				Y:        brick.PlaneMid - (b.X - brick.PlaneMid),
			}
		}
	}
	c.TranslateMinToOrigo()
	c.SortBricks()
}

// Rotate180 rotates every brick 180 degrees about brick.PlaneMid, then
// re-normalises position and order.
func (c *Combination) Rotate180() {
	for l := uint8(0); l < c.Height; l++ {
		for i := uint8(0); i < c.LayerSizes[l]; i++ {
			b := c.Bricks[l][i]
			c.Bricks[l][i] = brick.Brick{
				Vertical: b.Vertical,
				X:        2*brick.PlaneMid - b.X,
				Y:        2*brick.PlaneMid - b.Y,
			}
		}
	}
	c.TranslateMinToOrigo()
	c.SortBricks()
}

// GetLayerCenter returns the doubled centroid (sum of coordinates times 2,
// divided by layer size) of the bricks on layer.
func (c *Combination) GetLayerCenter(layer uint8) (cx, cy int16) {
	var sx, sy int
	n := int(c.LayerSizes[layer])
	for i := 0; i < n; i++ {
		b := c.Bricks[layer][i]
		sx += int(b.X)
		sy += int(b.Y)
	}
	return int16(2 * sx / n), int16(2 * sy / n)
}

// IsLayerSymmetric reports whether layer's bricks are symmetric about the
// doubled centre (cx, cy): every brick either sits exactly on the centre
// or is paired with its mirror image elsewhere in the layer.
func (c *Combination) IsLayerSymmetric(layer uint8, cx, cy int16) bool {
	n := int(c.LayerSizes[layer])
	seen := make([]brick.Brick, 0, n)
	for i := 0; i < n; i++ {
		b := c.Bricks[layer][i]
		if b.MirrorEq(b, cx, cy) {
			continue // fixed point exactly on the mirror centre
		}
		matched := false
		for j, s := range seen {
			if b.MirrorEq(s, cx, cy) {
				seen = append(seen[:j], seen[j+1:]...)
				matched = true
				break
			}
		}
		if !matched {
			seen = append(seen, b)
		}
	}
	return len(seen) == 0
}

// Is180Symmetric reports whether the whole assembly is invariant under a
// 180 degree rotation about layer 0's centre.
func (c *Combination) Is180Symmetric() bool {
	cx, cy := c.GetLayerCenter(0)
	if !c.IsLayerSymmetric(0, cx, cy) {
		return false
	}
	for l := uint8(1); l < c.Height; l++ {
		lx, ly := c.GetLayerCenter(l)
		if lx != cx || ly != cy {
			return false
		}
		if !c.IsLayerSymmetric(l, cx, cy) {
			return false
		}
	}
	return true
}

// canRotate90 reports whether layer 0 contains at least one horizontal
// brick, a necessary precondition for a meaningful 90 degree rotation.
func (c *Combination) canRotate90() bool {
	for i := uint8(0); i < c.LayerSizes[0]; i++ {
		if !c.Bricks[0][i].Vertical {
			return true
		}
	}
	return false
}

// Is90Symmetric reports whether the assembly is invariant under a 90
// degree rotation; it implies Is180Symmetric (every caller should check
// that first, since this test is only meaningful when it holds).
func (c *Combination) Is90Symmetric() bool {
	if c.Size&3 != 0 {
		return false
	}
	if !c.canRotate90() {
		return false
	}
	for l := uint8(0); l < c.Height; l++ {
		if c.LayerSizes[l]&3 != 0 {
			return false
		}
	}
	rotated := *c
	rotated.Rotate90()

	reference := *c
	reference.TranslateMinToOrigo()
	reference.SortBricks()

	return rotated.structurallyEqual(&reference)
}

func (c *Combination) structurallyEqual(o *Combination) bool {
	if c.Height != o.Height || c.Size != o.Size {
		return false
	}
	for l := uint8(0); l < c.Height; l++ {
		if c.LayerSizes[l] != o.LayerSizes[l] {
			return false
		}
		for i := uint8(0); i < c.LayerSizes[l]; i++ {
			if c.Bricks[l][i] != o.Bricks[l][i] {
				return false
			}
		}
	}
	return true
}

// less compares two Combinations the way the original's brick-by-brick
// comparator does: by height, then per-layer size, then brick order.
func (c *Combination) less(o *Combination) bool {
	if c.Height != o.Height {
		return c.Height < o.Height
	}
	for l := uint8(0); l < c.Height; l++ {
		if c.LayerSizes[l] != o.LayerSizes[l] {
			return c.LayerSizes[l] < o.LayerSizes[l]
		}
	}
	for l := uint8(0); l < c.Height; l++ {
		for i := uint8(0); i < c.LayerSizes[l]; i++ {
			a, b := c.Bricks[l][i], o.Bricks[l][i]
			if a.Vertical != b.Vertical {
				return a.Vertical
			}
			if a.X != b.X {
				return a.X < b.X
			}
			if a.Y != b.Y {
				return a.Y < b.Y
			}
		}
	}
	return false
}

func (c *Combination) hasVerticalLayer0Brick() bool {
	for i := uint8(0); i < c.LayerSizes[0]; i++ {
		if c.Bricks[0][i].Vertical {
			return true
		}
	}
	return false
}

// Normalize canonicalises c to the lexicographically smallest of its
// translation/rotation-equivalent forms.
func (c *Combination) Normalize() {
	if c.hasVerticalLayer0Brick() {
		c.TranslateMinToOrigo()
		c.SortBricks()
	} else {
		c.Rotate90()
	}

	if c.canRotate90() {
		best := *c
		cur := *c
		for i := 0; i < 3; i++ {
			cur.Rotate90()
			if cur.less(&best) {
				best = cur
			}
		}
		*c = best
	} else {
		alt := *c
		alt.Rotate180()
		if alt.less(c) {
			*c = alt
		}
	}
}
