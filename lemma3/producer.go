package lemma3

import "github.com/katalvlaran/rectilinear/brick"

// candidatesAtDistance returns every brick position at exact Manhattan
// distance d from brick.FirstBrick, in both orientations: for each split
// d = dx+dy (dx, dy >= 0) and each of the (up to) four sign choices, skipping
// a sign combination that repeats a position already produced (this happens
// whenever dx or dy is zero), matching "all eight reflections ... for d =
// 0..D and each of four sign choices and two orientations".
func candidatesAtDistance(d int) []brick.Brick {
	seen := make(map[[2]int16]struct{}, 4*(d+1))
	var out []brick.Brick

	for split := 0; split <= d; split++ {
		dx, dy := int16(d-split), int16(split)
		for _, sx := range [2]int16{1, -1} {
			for _, sy := range [2]int16{1, -1} {
				x := brick.FirstBrick.X + sx*dx
				y := brick.FirstBrick.Y + sy*dy
				key := [2]int16{x, y}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, brick.Brick{Vertical: true, X: x, Y: y})
				out = append(out, brick.Brick{Vertical: false, X: x, Y: y})
			}
		}
	}
	return out
}

// innerBaseBuilder enumerates every base whose remaining bricks (beyond the
// fixed first brick) occupy positions at the distances given by sig, one
// position per distance entry, skipping any placement that intersects an
// already-chosen brick. It behaves like an odometer over per-distance
// candidate lists, trying every combination exactly once.
type innerBaseBuilder struct {
	sig        Signature
	candidates [][]brick.Brick
	idx        []int
	started    bool
	exhausted  bool
}

func newInnerBaseBuilder(sig Signature) *innerBaseBuilder {
	cands := make([][]brick.Brick, len(sig))
	for i, d := range sig {
		cands[i] = candidatesAtDistance(d)
	}
	return &innerBaseBuilder{sig: sig, candidates: cands, idx: make([]int, len(sig))}
}

// next fills base with brick.FirstBrick plus one brick per signature entry,
// returning false once every combination has been produced. Combinations
// that contain an intersecting pair are skipped silently.
func (p *innerBaseBuilder) next(base *brick.Brick, rest *[]brick.Brick) bool {
	if p.exhausted {
		return false
	}
	for {
		if !p.advance() {
			p.exhausted = true
			return false
		}
		if placed, ok := p.build(); ok {
			*base = brick.FirstBrick
			*rest = placed
			return true
		}
	}
}

func (p *innerBaseBuilder) advance() bool {
	if !p.started {
		p.started = true
		for _, c := range p.candidates {
			if len(c) == 0 {
				return false
			}
		}
		return true
	}
	for i := len(p.idx) - 1; i >= 0; i-- {
		p.idx[i]++
		if p.idx[i] < len(p.candidates[i]) {
			return true
		}
		p.idx[i] = 0
	}
	return len(p.idx) == 0 && !p.started
}

func (p *innerBaseBuilder) build() ([]brick.Brick, bool) {
	placed := make([]brick.Brick, 0, len(p.idx))
	placed = append(placed, brick.FirstBrick)
	for i, ci := range p.idx {
		cand := p.candidates[i][ci]
		for _, prev := range placed {
			if prev.Intersects(cand) {
				return nil, false
			}
		}
		placed = append(placed, cand)
	}
	return placed[1:], true
}
