// Package lemma3 implements the "Lemma 3" base precomputation: for every
// distinct base-layer layout matching a given sorted pairwise-distance
// signature, build the wave expansion on top of it once, skipping bases
// that are a mirror image of one already computed, building bases with
// bricks that cannot be reached on their smaller
// combo.Base.ReduceFromUnreachable projection (padded with placeholders),
// and persist the results keyed by base via bitstream.Writer.
//
// BaseBuilder owns the dedup bookkeeping (index/order) behind a mutex so a
// Runner pool of worker goroutines can pull distinct bases to build
// concurrently, using go-highway's workerpool package (a persistent pool
// of goroutines draining one shared, mutex-guarded work source).
package lemma3
