package combo

import "github.com/katalvlaran/rectilinear/brick"

// BrickIdentifier records where in a Combination a brick was placed:
// its layer and its index within that layer's slice.
type BrickIdentifier struct {
	Layer uint8
	Idx   uint8
}

// Combination is a (possibly partial) brick assembly: bricks grouped by
// layer, in placement order recorded by History so a builder can backtrack
// by truncating Size.
type Combination struct {
	LayerSizes [brick.MaxHeight]uint8
	Height     uint8
	Size       uint8
	Bricks     [brick.MaxHeight][brick.MaxLayerSize]brick.Brick
	History    [brick.MaxBricks]BrickIdentifier

	// colors is transient flood-fill/coloring scratch space, reset by
	// whichever method (ColorConnected, ColorFull, EncodeConnectivity)
	// uses it; it is not part of the assembly's identity.
	colors [brick.MaxHeight][brick.MaxLayerSize]uint8
}

// NewFromToken builds the starting skeleton of a Combination for token: a
// single brick, brick.FirstBrick, on layer 0, with Height set to token's
// layer count. The per-layer sizes in token's decimal digits are not
// stored; callers place the remaining bricks via AddBrick.
func NewFromToken(token int64) Combination {
	var c Combination
	sizes := GetLayerSizesFromToken(token)
	c.Height = HeightOfToken(token)
	copy(c.LayerSizes[:c.Height], sizes[:c.Height])
	// Target layer sizes are tracked by the caller (wave builder) from
	// the token directly; this skeleton only reflects what's actually
	// been placed so far, which is layer 0's first brick.
	_ = sizes
	c.LayerSizes = [brick.MaxHeight]uint8{}
	c.LayerSizes[0] = 1
	c.Bricks[0][0] = brick.FirstBrick
	c.Size = 1
	c.History[0] = BrickIdentifier{Layer: 0, Idx: 0}
	return c
}

// NewFromBase builds a height-1 Combination containing exactly b's bricks
// on layer 0.
func NewFromBase(b Base) Combination {
	var c Combination
	c.Height = 1
	c.LayerSizes[0] = b.LayerSize
	c.Size = b.LayerSize
	for i := uint8(0); i < b.LayerSize; i++ {
		c.Bricks[0][i] = b.Bricks[i]
		c.History[i] = BrickIdentifier{Layer: 0, Idx: i}
	}
	return c
}

// Copy returns an independent copy of c.
func (c Combination) Copy() Combination {
	return c
}

// AddBrick places b on layer, appending to History and growing Height if
// layer is a brand new top layer.
func (c *Combination) AddBrick(b brick.Brick, layer uint8) {
	idx := c.LayerSizes[layer]
	c.Bricks[layer][idx] = b
	c.History[c.Size] = BrickIdentifier{Layer: layer, Idx: idx}
	c.LayerSizes[layer]++
	c.Size++
	if layer == c.Height {
		c.Height++
	}
}

// RemoveLastBrick undoes the most recent AddBrick.
func (c *Combination) RemoveLastBrick() {
	c.Size--
	h := c.History[c.Size]
	c.LayerSizes[h.Layer]--
	if c.LayerSizes[h.Layer] == 0 {
		c.Height = h.Layer
	}
}

// TranslateMinToOrigo finds the lexicographically-smallest vertical layer-0
// brick and translates every brick so that one sits at
// (brick.PlaneMid, brick.PlaneMid).
func (c *Combination) TranslateMinToOrigo() {
	min := c.Bricks[0][0]
	found := false
	for i := uint8(0); i < c.LayerSizes[0]; i++ {
		b := c.Bricks[0][i]
		if !b.Vertical {
			continue
		}
		if !found || b.X < min.X || (b.X == min.X && b.Y < min.Y) {
			min, found = b, true
		}
	}
	dx := brick.PlaneMid - min.X
	dy := brick.PlaneMid - min.Y
	for l := uint8(0); l < c.Height; l++ {
		for i := uint8(0); i < c.LayerSizes[l]; i++ {
			c.Bricks[l][i].X += dx
			c.Bricks[l][i].Y += dy
		}
	}
}

// SortBricks sorts each layer's bricks by brick.Brick.Less.
func (c *Combination) SortBricks() {
	for l := uint8(0); l < c.Height; l++ {
		n := int(c.LayerSizes[l])
		bs := c.Bricks[l][:n]
		for i := 1; i < n; i++ {
			for j := i; j > 0 && bs[j].Less(bs[j-1]); j-- {
				bs[j], bs[j-1] = bs[j-1], bs[j]
			}
		}
	}
}

// GetTokenFromLayerSizes encodes c's current LayerSizes[0:Height] into a
// decimal token, leftmost digit = base layer.
func (c *Combination) GetTokenFromLayerSizes() int64 {
	var token int64
	for i := uint8(0); i < c.Height; i++ {
		token = token*10 + int64(c.LayerSizes[i])
	}
	return token
}

// ReverseToken reverses the decimal digit order of token.
func ReverseToken(token int64) int64 {
	var ret int64
	for token > 0 {
		ret = ret*10 + token%10
		token /= 10
	}
	return ret
}

// HeightOfToken returns the number of decimal digits in token.
func HeightOfToken(token int64) uint8 {
	var h uint8
	for token > 0 {
		h++
		token /= 10
	}
	return h
}

// SizeOfToken returns the sum of token's decimal digits.
func SizeOfToken(token int64) uint8 {
	var s uint8
	for token > 0 {
		s += uint8(token % 10)
		token /= 10
	}
	return s
}

// GetLayerSizesFromToken decodes token's decimal digits into per-layer
// sizes, leftmost digit = base layer (index 0).
func GetLayerSizesFromToken(token int64) [brick.MaxHeight]uint8 {
	var sizes [brick.MaxHeight]uint8
	h := HeightOfToken(token)
	for i := int(h) - 1; i >= 0; i-- {
		sizes[i] = uint8(token % 10)
		token /= 10
	}
	return sizes
}

// MaxCombinationFromToken builds a target-sized Combination whose
// LayerSizes/Height/Size describe token's shape, for use as a wave.Builder
// maxCombination (the capacity every BrickPicker/fillable check compares
// actual placements against), as distinct from NewFromToken's skeleton of
// what has actually been placed so far.
func MaxCombinationFromToken(token int64) Combination {
	var c Combination
	c.LayerSizes = GetLayerSizesFromToken(token)
	c.Height = HeightOfToken(token)
	c.Size = SizeOfToken(token)
	return c
}

// CountBricksToBridge returns how many non-base-layer bricks of maxCombination
// could plausibly bridge an unreachable base brick, used to bound
// Base.ReduceFromUnreachable's search.
func CountBricksToBridge(maxCombination *Combination) uint8 {
	switch maxCombination.Height {
	case 2:
		l1 := maxCombination.LayerSizes[1]
		if l1 < 2 {
			return l1
		}
		return 2
	case 3:
		l1, l2 := int(maxCombination.LayerSizes[1]), int(maxCombination.LayerSizes[2])
		usefulL1 := l1
		if usefulL1 > l2+2 {
			usefulL1 = l2 + 2
		}
		usefulL2 := l1
		if usefulL2 > l2 {
			usefulL2 = l2
		}
		return uint8(usefulL1 + usefulL2)
	default:
		return maxCombination.Size - maxCombination.LayerSizes[0]
	}
}
