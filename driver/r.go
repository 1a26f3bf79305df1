package driver

import (
	"fmt"
	"time"

	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/combo"
	"github.com/katalvlaran/rectilinear/lemma3"
	"github.com/katalvlaran/rectilinear/wave"
)

// R computes the total count (all, symmetric180, symmetric90) of distinct
// connected assemblies for a single refinement token, per the "R refinement
// [threads]" CLI verb.
//
// When the base layer holds exactly one brick, the whole refinement is a
// single wave expansion rooted at brick.FirstBrick. Otherwise the base
// layer's own geometry isn't fixed by the token alone (only its brick
// count is), so R first enumerates every distinct base shape of that size
// — reusing lemma3's BaseBuilder/Runner dedup-and-build machinery, the same
// one Lemma-3 precomputation drives, just without persisting to disk — and
// sums each distinct shape's wave-expansion total. A base's farthest brick
// can never sit further from brick.FirstBrick than roughly twice the
// refinement's total size without becoming unreachable within the
// available bricks, so the base-distance search is capped there; see
// DESIGN.md for why this bound is a documented heuristic rather than a
// tight derived one.
func R(refinement int64, opts ...Option) (Result, error) {
	o := NewOptions(opts...)
	start := time.Now()

	maxCombination, err := validateRefinement(refinement)
	if err != nil {
		return Result{}, err
	}

	base := maxCombination.LayerSizes[0]
	var total brick.Counts

	if base == 1 {
		total, err = buildOneBase(combo.Base{LayerSize: 1, Bricks: [brick.MaxLayerSize]brick.Brick{brick.FirstBrick}}, &maxCombination)
		if err != nil {
			return Result{}, fmt.Errorf("driver: computing refinement %d: %w", refinement, err)
		}
	} else {
		maxDist := 2 * int(maxCombination.Size)
		for d := 2; d <= maxDist; d++ {
			for _, sig := range lemma3.Signatures(d, int(brick.MaxLayerSize)) {
				if len(sig) != int(base)-1 {
					continue
				}
				bb := lemma3.NewBaseBuilder(sig, &maxCombination)
				runner := lemma3.NewRunner(o.Threads)
				runner.Run(bb)
				runner.Close()

				found := 0
				for _, rec := range bb.Bases() {
					for _, c := range lemma3.RootCounts(rec) {
						total = total.Add(c)
					}
					found++
				}
				if o.Progress != nil && found > 0 {
					o.Progress(Event{Distance: d, Signature: sig, BasesFound: found, Message: "refinement base pass complete"})
				}
			}
		}
		// lemma3.RootCounts returns each base's raw, undivided counts (see
		// lemma3.Runner.Run), so the wave-expansion symmetry fold-and-divide
		// must happen exactly once, here, over the fully-aggregated total —
		// mirroring buildWithPartials' "fix final counts" step in the
		// reference implementation. Folding per-base and then summing would
		// silently corrupt the result, since Fold's division does not
		// distribute over addition.
		total = total.Fold(uint64(base))
	}

	return Result{Counts: map[int64]brick.Counts{refinement: total}, Elapsed: time.Since(start)}, nil
}

// buildOneBase runs a single wave expansion rooted at base, without per-token
// connectivity encoding, and returns the aggregate count under the
// sentinel token.
func buildOneBase(base combo.Base, maxCombination *combo.Combination) (brick.Counts, error) {
	neighbours := make([]*brick.Plane, maxCombination.Height)
	for i := range neighbours {
		neighbours[i] = &brick.Plane{}
	}
	b := wave.NewFromBase(base, neighbours, maxCombination, false)
	if err := b.Build(); err != nil {
		return brick.Counts{}, err
	}
	fin := b.Finalize()
	var total brick.Counts
	for _, c := range fin {
		total = total.Add(c)
	}
	return total, nil
}
