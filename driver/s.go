package driver

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/katalvlaran/rectilinear/bitstream"
	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/report"
	"github.com/katalvlaran/rectilinear/rectio"
)

// S combines two refinements' precomputed half-assemblies that share a
// base layer, per the "S leftToken base rightToken maxDist" CLI verb.
// Both refinements must already have been precomputed (via P) for the
// given base up to maxDist; Lemma-3's base enumeration for a given
// (distance, signature) pair depends only on the base-layer size and the
// distance, not on the rest of either refinement's shape, so the two
// files' batches line up one-to-one in discovery order even though the
// two refinements' own geometry above layer 0 differs.
func S(leftToken int64, base uint8, rightToken int64, maxDist int, opts ...Option) (Result, error) {
	o := NewOptions(opts...)
	start := time.Now()

	leftMax, err := validateRefinement(leftToken)
	if err != nil {
		return Result{}, err
	}
	rightMax, err := validateRefinement(rightToken)
	if err != nil {
		return Result{}, err
	}
	if leftMax.LayerSizes[0] != base || rightMax.LayerSizes[0] != base {
		return Result{}, fmt.Errorf("%w: leftToken %d and rightToken %d must both have base-layer size %d", ErrInvalidInput, leftToken, rightToken, base)
	}

	leftLarge := bitstream.AreLargeCountsRequired(base, leftMax.Height, leftMax.Size)
	rightLarge := bitstream.AreLargeCountsRequired(base, rightMax.Height, rightMax.Size)
	leftLayout := rectio.Layout{Root: o.OutputDir, Base: base, Size: leftMax.Size, Refinement: leftToken}
	rightLayout := rectio.Layout{Root: o.OutputDir, Base: base, Size: rightMax.Size, Refinement: rightToken}

	var total brick.Counts
	for d := 2; d <= maxDist; d++ {
		lr, closeL, err := rectio.OpenReader(leftLayout, d, base, leftLarge)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %s", ErrMissingInput, unwrapPath(err))
		}
		rr, closeR, err := rectio.OpenReader(rightLayout, d, base, rightLarge)
		if err != nil {
			_ = closeL()
			return Result{}, fmt.Errorf("%w: %s", ErrMissingInput, unwrapPath(err))
		}

		if err := sumDistanceFile(lr, rr, base, &total); err != nil {
			_ = closeL()
			_ = closeR()
			return Result{}, err
		}
		_ = closeL()
		_ = closeR()
	}

	// report.CountUp combines one shared base's raw half-assembly counts
	// into that base's raw contribution to the combined refinement; total
	// sums this, raw, across every base found at every distance. The
	// wave-expansion symmetry fold-and-divide (brick.Counts.Fold) must run
	// exactly once, here, over that fully-aggregated total, mirroring R's
	// base>1 path — folding each base's contribution before summing would
	// silently corrupt the result.
	total = total.Fold(uint64(base))

	return Result{Counts: map[int64]brick.Counts{0: total}, Elapsed: time.Since(start)}, nil
}

func sumDistanceFile(lr, rr *bitstream.Reader, base uint8, total *brick.Counts) error {
	for {
		lBatch, _, lSentinel, err := lr.Next()
		if err != nil {
			return fmt.Errorf("%w: reading left stream: %v", ErrFileCorruption, err)
		}
		rBatch, _, rSentinel, err := rr.Next()
		if err != nil {
			return fmt.Errorf("%w: reading right stream: %v", ErrFileCorruption, err)
		}
		if lSentinel != rSentinel {
			return fmt.Errorf("%w: left and right streams have different batch counts", ErrBaseMismatch)
		}
		if lSentinel {
			return nil
		}

		for _, a := range lBatch.Entries {
			ra := report.Report{Base: base, Colors: a.Colors, BaseSymmetric180: lBatch.Symmetric180, BaseSymmetric90: lBatch.Symmetric90, Counts: a.Counts}
			for _, b := range rBatch.Entries {
				rb := report.Report{Base: base, Colors: b.Colors, BaseSymmetric180: rBatch.Symmetric180, BaseSymmetric90: rBatch.Symmetric90, Counts: b.Counts}
				*total = total.Add(report.CountUp(ra, rb))
			}
		}
	}
}

func unwrapPath(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Path
	}
	return err.Error()
}
