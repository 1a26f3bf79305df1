package lemma3

import (
	"github.com/katalvlaran/rectilinear/bitstream"
	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/combo"
)

// decodeDigits peels n trailing base-10 digits off token, most significant
// first, converting each from the wave package's 1-indexed colour
// convention down to a 0-indexed group id.
func decodeDigits(token int64, n int) []uint8 {
	out := make([]uint8, n)
	t := token
	for i := n - 1; i >= 0; i-- {
		d := uint8(t % 10)
		if d > 0 {
			d--
		}
		out[i] = d
		t /= 10
	}
	return out
}

// rootFullColors reconstructs one token's group id for every brick of
// root.Base (size root.Base.LayerSize), whether root was built directly or
// reduced. Reduced positions not present in the reduced build base (because
// ReduceFromUnreachable dropped them) get a synthetic, mutually-distinct
// negative id: an unreachable brick can never share a component with
// anything, so it must never collide with a real decoded group.
func rootFullColors(root *Record, token int64) []int {
	L := int(root.Base.LayerSize)
	full := make([]int, L)

	if root.Kind == KindReduced {
		rb := root.Reduced
		n := int(rb.LayerSize)
		digits := decodeDigits(token, n)
		for i := range full {
			full[i] = -(i + 1)
		}
		for p := 0; p < n; p++ {
			full[rb.Orig[p]] = int(digits[p])
		}
		return full
	}

	digits := decodeDigits(token, L)
	for i := range full {
		full[i] = int(digits[i])
	}
	return full
}

// relabelToBaseline relabels an arbitrary small-integer group assignment so
// that position 0's group becomes 0 and every other distinct group present
// gets a fresh sequential id in first-appearance order, preserving exactly
// which positions share a group.
func relabelToBaseline(full []int) []uint8 {
	out := make([]uint8, len(full))
	mapping := map[int]uint8{full[0]: 0}
	next := uint8(1)
	for i, g := range full {
		if i == 0 {
			continue
		}
		id, ok := mapping[g]
		if !ok {
			id = next
			mapping[g] = id
			next++
		}
		out[i] = id
	}
	return out
}

// resolvePermutation walks rec's MirrorOf chain back to the Record that was
// actually built (Kind KindBuilt or KindReduced), composing, at each step,
// the index permutation a CBase-tracked Mirror+Normalize applies. The
// returned perm maps a position in rec.Base to the corresponding position
// in the returned root's Base.
func resolvePermutation(rec *Record) (*Record, []uint8) {
	L := int(rec.Base.LayerSize)
	perm := make([]uint8, L)
	for i := range perm {
		perm[i] = uint8(i)
	}

	cur := rec
	for cur.Kind == KindMirrorX || cur.Kind == KindMirrorY {
		cb := combo.NewIdentityCBase(cur.MirrorOf.Base)
		if cur.Kind == KindMirrorX {
			cb.MirrorX()
		} else {
			cb.MirrorY()
		}
		cb.Normalize()

		next := make([]uint8, L)
		for i := 0; i < L; i++ {
			next[i] = cb.Orig[perm[i]]
		}
		perm = next
		cur = cur.MirrorOf
	}
	return cur, perm
}

// RootCounts walks rec's MirrorOf chain to the Record that was actually
// built and returns its per-token counts map. Unlike the colour remap Report
// performs, the aggregate All/Symmetric180/Symmetric90 totals a mirror
// represents are identical to its root's by construction, so callers that
// only need totals (not per-token colour breakdowns) can use this directly.
func RootCounts(rec *Record) map[int64]brick.Counts {
	root, _ := resolvePermutation(rec)
	return root.Counts
}

// Report streams every base discovered by this BaseBuilder to w, in
// discovery order, remapping mirrored and reduced bases' connectivity
// colours back into the base's own original brick ordering, per
// BaseBuilder::report.
func (bb *BaseBuilder) Report(w *bitstream.Writer) error {
	for _, rec := range bb.order {
		L := int(rec.Base.LayerSize)
		root, perm := resolvePermutation(rec)

		var baseBricks []brick.Brick
		if rec.Base.LayerSize <= 4 && L > 1 {
			baseBricks = append([]brick.Brick{}, rec.Base.Bricks[1:rec.Base.LayerSize]...)
		}
		if err := w.WriteBatch(baseBricks, rec.Base.Is180Symmetric(), rec.Base.Is90Symmetric()); err != nil {
			return err
		}

		root.mu.Lock()
		for token, counts := range root.Counts {
			full := rootFullColors(root, token)
			raw := make([]int, L)
			for i := 0; i < L; i++ {
				raw[i] = full[perm[i]]
			}
			colors := relabelToBaseline(raw)
			if err := w.WriteEntry(colors[1:], counts); err != nil {
				root.mu.Unlock()
				return err
			}
		}
		root.mu.Unlock()

		if err := w.EndBatch(); err != nil {
			return err
		}
	}
	return nil
}
