package brick_test

import (
	"testing"

	"github.com/katalvlaran/rectilinear/brick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectsSelf(t *testing.T) {
	require.True(t, brick.FirstBrick.Intersects(brick.FirstBrick))
}

func TestIntersectsFarApart(t *testing.T) {
	a := brick.FirstBrick
	b := brick.Brick{Vertical: true, X: a.X + 100, Y: a.Y + 100}
	assert.False(t, a.Intersects(b))
}

func TestIntersectsAdjacentNonOverlapping(t *testing.T) {
	// Two horizontal bricks side by side along X should not intersect
	// once separated by their full width.
	a := brick.Brick{Vertical: false, X: brick.PlaneMid, Y: brick.PlaneMid}
	b := brick.Brick{Vertical: false, X: brick.PlaneMid + 4, Y: brick.PlaneMid}
	assert.False(t, a.Intersects(b))
}

func TestMirrorRoundTrip(t *testing.T) {
	a := brick.Brick{Vertical: true, X: 110, Y: 95}
	cx, cy := int16(200), int16(200)
	m := a.Mirror(cx, cy)
	assert.True(t, a.MirrorEq(m, cx, cy))
	back := m.Mirror(cx, cy)
	assert.Equal(t, a, back)
}

func TestDist(t *testing.T) {
	a := brick.Brick{X: 100, Y: 100}
	b := brick.Brick{X: 103, Y: 95}
	assert.Equal(t, 8, a.Dist(b))
}

func TestLess_OrdersByDistanceThenOrientationThenCoords(t *testing.T) {
	near := brick.Brick{Vertical: true, X: brick.PlaneMid + 1, Y: brick.PlaneMid}
	far := brick.Brick{Vertical: true, X: brick.PlaneMid + 10, Y: brick.PlaneMid}
	assert.True(t, near.Less(far))
	assert.False(t, far.Less(near))
}

func TestCanReach_ZeroBudgetRequiresIntersection(t *testing.T) {
	a := brick.FirstBrick
	b := brick.Brick{Vertical: true, X: a.X + 1, Y: a.Y}
	assert.True(t, brick.CanReach(a, b, 0))
	far := brick.Brick{Vertical: true, X: a.X + 10, Y: a.Y}
	assert.False(t, brick.CanReach(a, far, 0))
}

func TestCanReach_IntersectingAlwaysTrue(t *testing.T) {
	assert.True(t, brick.CanReach(brick.FirstBrick, brick.FirstBrick, 1))
}

func TestCanReach_FarAwayNeedsBudget(t *testing.T) {
	a := brick.FirstBrick
	far := brick.Brick{Vertical: true, X: a.X + 40, Y: a.Y + 40}
	assert.False(t, brick.CanReach(a, far, 1))
	assert.False(t, brick.CanReach(a, far, 2))
}

func TestPlane_SetUnsetContains(t *testing.T) {
	var p brick.Plane
	b := brick.FirstBrick
	assert.False(t, p.Contains(b))
	p.Set(b)
	assert.True(t, p.Contains(b))
	p.Set(b) // overlapping wave front marks twice
	p.Unset(b)
	assert.True(t, p.Contains(b), "one Unset should not clear a doubly-marked cell")
	p.Unset(b)
	assert.False(t, p.Contains(b))
}

func TestPlane_UnsetAll(t *testing.T) {
	var p brick.Plane
	p.Set(brick.FirstBrick)
	p.UnsetAll()
	assert.False(t, p.Contains(brick.FirstBrick))
}

func TestCountsArithmetic(t *testing.T) {
	a := brick.Counts{All: 10, Symmetric180: 4, Symmetric90: 2}
	b := brick.Counts{All: 3, Symmetric180: 1, Symmetric90: 0}
	sum := a.Add(b)
	assert.Equal(t, brick.Counts{All: 13, Symmetric180: 5, Symmetric90: 2}, sum)
	diff := sum.Sub(b)
	assert.Equal(t, a, diff)
	assert.True(t, brick.Counts{}.Empty())
	assert.False(t, a.Empty())
	assert.Equal(t, brick.Counts{All: 5, Symmetric180: 2, Symmetric90: 1}, a.Div(2))
}
