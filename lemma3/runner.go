package lemma3

import (
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/wave"
)

// Runner drives a BaseBuilder to completion using a persistent worker pool,
// grounded on workerpool.Pool's "spawn once, reuse across operations" model:
// each worker repeatedly pulls one base at a time from the shared,
// mutex-guarded BaseBuilder until the producer is exhausted.
type Runner struct {
	pool *workerpool.Pool
}

// NewRunner starts a pool of numThreads persistent workers. If numThreads
// <= 0, workerpool.New falls back to runtime.GOMAXPROCS(0).
func NewRunner(numThreads int) *Runner {
	return &Runner{pool: workerpool.New(numThreads)}
}

// Close shuts the underlying pool down. Safe to call more than once.
func (r *Runner) Close() {
	r.pool.Close()
}

// Run drives bb to completion: every worker goroutine loops pulling bases
// via BaseBuilder.NextBaseToBuildOn, runs a wave.Builder rooted at that base
// with connectivity encoding enabled (Lemma-3 bases always need per-token
// breakdown for later Report combination), and stores the raw, undivided
// result via RegisterCounts. The symmetry fold-and-divide
// (brick.Counts.Fold) is never applied here: BaseBuilder.Report streams
// these raw per-token counts straight to the bitstream, and report.CountUp
// only combines correctly when its inputs are raw per-half counts, not
// already-divided totals — mirroring BaseBuilder::report in the reference
// implementation, which writes counts through with no division. Blocks
// until every worker has drained the producer.
func (r *Runner) Run(bb *BaseBuilder) {
	r.pool.ParallelForAtomic(r.pool.NumWorkers(), func(int) {
		r.runWorker(bb)
	})
}

func (r *Runner) runWorker(bb *BaseBuilder) {
	neighbours := make([]*brick.Plane, bb.maxCombination.Height)
	for i := range neighbours {
		neighbours[i] = &brick.Plane{}
	}

	for {
		rec, buildBase, ok := bb.NextBaseToBuildOn()
		if !ok {
			return
		}

		for _, p := range neighbours {
			p.UnsetAll()
		}

		b := wave.NewFromBase(buildBase, neighbours, bb.maxCombination, true)
		if err := b.Build(); err != nil {
			// Build errors indicate a malformed maxCombination/signature
			// pairing upstream; there is no partial result to salvage, so
			// the worker records an empty map and moves on rather than
			// taking the whole pool down.
			bb.RegisterCounts(rec, map[int64]brick.Counts{})
			continue
		}
		bb.RegisterCounts(rec, b.Counts)
	}
}
