package brick

// Plane is a per-layer occupancy counter bitmap indexed by orientation and
// biased coordinate. It is a counter, not a boolean: overlapping wave
// fronts can mark the same cell more than once while expanding, and an
// early caller unmarking its own contribution must not clear a cell a
// sibling wave front still depends on.
type Plane struct {
	cells [2][PlaneWidth][PlaneWidth]int8
}

func orientIdx(v bool) int {
	if v {
		return 1
	}
	return 0
}

// Add adjusts the counter at b's cell by delta (positive to mark, negative
// to unmark).
func (p *Plane) Add(b Brick, delta int8) {
	p.cells[orientIdx(b.Vertical)][b.X][b.Y] += delta
}

// Set marks b's cell (Add with delta 1).
func (p *Plane) Set(b Brick) { p.Add(b, 1) }

// Unset unmarks b's cell (Add with delta -1).
func (p *Plane) Unset(b Brick) { p.Add(b, -1) }

// Contains reports whether b's cell currently has a positive counter.
func (p *Plane) Contains(b Brick) bool {
	return p.cells[orientIdx(b.Vertical)][b.X][b.Y] > 0
}

// UnsetAll zeroes every cell.
func (p *Plane) UnsetAll() {
	p.cells = [2][PlaneWidth][PlaneWidth]int8{}
}
