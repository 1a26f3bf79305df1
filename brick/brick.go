package brick

import "errors"

// Geometry constants shared by the whole module. PlaneMid biases every
// coordinate non-negative so bricks can index directly into Plane;
// PlaneWidth bounds how far a refinement can wander from the origin.
const (
	PlaneMid       = 100
	PlaneWidth     = 200
	MaxBricks      = 11
	MaxHeight      = 5
	MaxLayerSize   = 7
)

// Orientation markers used when mirroring/rotating, matching the original
// NORMAL/MIRROR_X/MIRROR_Y/SMALLER_BASE classification of a base lookup.
const (
	Normal = iota
	MirrorX
	MirrorY
	SmallerBase
)

// ErrNoReach is returned by callers that expect CanReach to certify a path
// but found none within the requested budget.
var ErrNoReach = errors.New("brick: no reachable path within budget")

// Brick is a 2x4 rectangle centred at (X, Y). Vertical means the long axis
// runs along Y; horizontal means it runs along X. Coordinates are stored
// pre-biased by PlaneMid so that the origin brick sits at (PlaneMid, PlaneMid).
type Brick struct {
	Vertical bool
	X, Y     int16
}

// FirstBrick is the canonical origin brick every Combination's layer 0
// begins from.
var FirstBrick = Brick{Vertical: true, X: PlaneMid, Y: PlaneMid}

// LayerBrick pairs a candidate Brick with the layer it would be placed on.
type LayerBrick struct {
	Brick Brick
	Layer uint8
}

// Intersects reports whether two bricks, each a 2x4 rectangle, overlap.
// MX/MY are the centre-to-centre separations along each axis at or beyond
// which the bricks no longer overlap; MX shrinks and MY grows by one unit
// per vertical brick (a vertical brick is narrower in X and taller in Y
// than a horizontal one).
func (b Brick) Intersects(o Brick) bool {
	dx := int(b.X) - int(o.X)
	dy := int(b.Y) - int(o.Y)
	mx := 4
	if b.Vertical {
		mx--
	}
	if o.Vertical {
		mx--
	}
	my := 2
	if b.Vertical {
		my++
	}
	if o.Vertical {
		my++
	}
	return dx*dx < mx*mx && dy*dy < my*my
}

// Mirror reflects b through the point (cx, cy) (doubled centroid
// coordinates, i.e. true centre is (cx/2, cy/2)).
func (b Brick) Mirror(cx, cy int16) Brick {
	return Brick{Vertical: b.Vertical, X: cx - b.X, Y: cy - b.Y}
}

// MirrorEq reports whether o is exactly b mirrored through (cx, cy).
func (b Brick) MirrorEq(o Brick, cx, cy int16) bool {
	return b.Vertical == o.Vertical && o.X == cx-b.X && o.Y == cy-b.Y
}

// Dist is the Manhattan distance between two brick centres.
func (b Brick) Dist(o Brick) int {
	dx := int(b.X) - int(o.X)
	dy := int(b.Y) - int(o.Y)
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Less orders bricks by distance from FirstBrick, then orientation, then
// coordinates — the sort key Combination/Base/CBase use to normalise their
// brick arrays.
func (b Brick) Less(o Brick) bool {
	bd, od := b.Dist(FirstBrick), o.Dist(FirstBrick)
	if bd != od {
		return bd < od
	}
	if b.Vertical != o.Vertical {
		return b.Vertical
	}
	if b.X != o.X {
		return b.X < o.X
	}
	return b.Y < o.Y
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// CanReach reports whether a and b could be connected through at most
// toAdd intermediate bricks (toAdd == 0 means "must already touch").
// It mirrors the original's recursive bound-and-branch search: cheap
// Manhattan bounds rule most pairs in or out immediately, and only the
// remaining few recurse through one of two candidate intermediate
// placements (a vertical step or a horizontal step toward b).
func CanReach(a, b Brick, toAdd uint8) bool {
	if a.Intersects(b) {
		return true
	}
	if toAdd == 0 {
		return false
	}
	// Swap so that a is vertical whenever either brick is; a
	// horizontal/horizontal pair stays horizontal and is checked with the
	// same bounds as a vertical/vertical pair.
	if !a.Vertical {
		a, b = b, a
	}
	dx := absInt(int(a.X) - int(b.X))
	dy := absInt(int(a.Y) - int(b.Y))

	if toAdd == 1 {
		if !b.Vertical {
			return (dx < 6 && dy < 4) || (dx < 4 && dy < 6)
		}
		return (dx <= 2 && dy <= 6) || (dx <= 4 && dy <= 4)
	}

	n := int(toAdd) + 1
	if dx+dy <= 3*n-2 {
		return true
	}
	if dx+dy > 4*n {
		return false
	}

	sx := sign(int(b.X) - int(a.X))
	sy := sign(int(b.Y) - int(a.Y))
	cand1 := Brick{Vertical: true, X: a.X + int16(minInt(1, dx)*sx), Y: a.Y + int16(minInt(3, dy)*sy)}
	cand2 := Brick{Vertical: false, X: a.X + int16(minInt(2, dx)*sx), Y: a.Y + int16(minInt(2, dy)*sy)}
	return CanReach(cand1, b, toAdd-1) || CanReach(cand2, b, toAdd-1)
}
