package picker

import (
	"sync"

	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/combo"
)

// MultiBatchSizeBrickPicker hands out successive subsets of v, growing
// from size 1 up to maxPick, to any number of concurrent callers: each
// call to Next is serialised by an internal mutex so two workers never
// receive the same subset, matching the original's single shared
// work-queue pop point.
type MultiBatchSizeBrickPicker struct {
	mu      sync.Mutex
	v       []brick.LayerBrick
	maxPick int
	toPick  int
	inner   *BrickPicker
	scratch combo.Combination
}

// NewMultiBatchSizeBrickPicker returns a picker that will yield every
// subset of v of size 1 through maxPick, in that order.
func NewMultiBatchSizeBrickPicker(v []brick.LayerBrick, maxPick int) *MultiBatchSizeBrickPicker {
	return &MultiBatchSizeBrickPicker{v: v, maxPick: maxPick, toPick: 1}
}

// Next returns the next subset (as an independent copy, safe to hand to a
// worker goroutine), how many bricks it contains, and whether one was
// available. It returns ok=false once every subset of every size up to
// maxPick has been produced.
func (m *MultiBatchSizeBrickPicker) Next(maxCombination *combo.Combination) (picked []brick.LayerBrick, n int, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for {
		if m.toPick > m.maxPick {
			return nil, 0, false
		}
		if m.inner == nil {
			m.inner = NewBrickPicker(m.v, 0, m.toPick)
			m.scratch = combo.Combination{}
		}
		if m.inner.Next(&m.scratch, maxCombination) {
			out := make([]brick.LayerBrick, m.scratch.Size)
			for i := uint8(0); i < m.scratch.Size; i++ {
				h := m.scratch.History[i]
				out[i] = brick.LayerBrick{Brick: m.scratch.Bricks[h.Layer][h.Idx], Layer: h.Layer}
			}
			for i := 0; i < m.toPick; i++ {
				m.scratch.RemoveLastBrick()
			}
			return out, m.toPick, true
		}
		m.inner = nil
		m.toPick++
	}
}
