package driver

import (
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/rectilinear/bitstream"
	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/rectio"
)

// T regression-compares two precomputation runs for the same base and
// refinement across distances minDist..maxDist, one run read from
// "<Options.OutputDir>/<folderSuffixA>/..." and the other from
// "<Options.OutputDir>/<folderSuffixB>/...", per the "T base refinement
// minDist maxDist folderSuffix" CLI verb extended to compare two named
// output trees rather than one run against itself.
//
// The persisted format's per-batch stream doesn't mark where one
// signature's bases end and the next begin (see bitstream's batch/EOF
// format), so comparison happens at the coarser per-distance-file
// granularity: each d.bin's trailing cross-check Totals. This still
// reports every disagreement found, not just a final pass/fail, matching
// the spirit of the original's per-signature diffing without requiring a
// format change.
func T(base uint8, refinement int64, minDist, maxDist int, folderSuffixA, folderSuffixB string, opts ...Option) ([]SignatureDiff, error) {
	o := NewOptions(opts...)

	maxCombination, err := validateRefinement(refinement)
	if err != nil {
		return nil, err
	}
	if minDist < 2 || maxDist < minDist {
		return nil, fmt.Errorf("%w: need 2 <= minDist <= maxDist, got minDist=%d maxDist=%d", ErrInvalidInput, minDist, maxDist)
	}

	large := bitstream.AreLargeCountsRequired(base, maxCombination.Height, maxCombination.Size)
	layoutA := rectio.Layout{Root: filepath.Join(o.OutputDir, folderSuffixA), Base: base, Size: maxCombination.Size, Refinement: refinement}
	layoutB := rectio.Layout{Root: filepath.Join(o.OutputDir, folderSuffixB), Base: base, Size: maxCombination.Size, Refinement: refinement}

	var diffs []SignatureDiff
	for d := minDist; d <= maxDist; d++ {
		totalsA, err := readTotals(layoutA, d, base, large)
		if err != nil {
			return nil, err
		}
		totalsB, err := readTotals(layoutB, d, base, large)
		if err != nil {
			return nil, err
		}
		if totalsA.SumAll != totalsB.SumAll || totalsA.Sum180 != totalsB.Sum180 || totalsA.Sum90 != totalsB.Sum90 {
			diffs = append(diffs, SignatureDiff{
				Distance: d,
				Left:     sumToCounts(totalsA),
				Right:    sumToCounts(totalsB),
			})
		}
	}
	return diffs, nil
}

func sumToCounts(t bitstream.Totals) brick.Counts {
	return brick.Counts{All: t.SumAll, Symmetric180: t.Sum180, Symmetric90: t.Sum90}
}

func readTotals(l rectio.Layout, d int, base uint8, large bool) (bitstream.Totals, error) {
	r, closeF, err := rectio.OpenReader(l, d, base, large)
	if err != nil {
		return bitstream.Totals{}, fmt.Errorf("%w: %s", ErrMissingInput, l.DistanceFile(d))
	}
	defer closeF()

	for {
		_, totals, sentinel, err := r.Next()
		if err != nil {
			return bitstream.Totals{}, fmt.Errorf("%w: reading %s: %v", ErrFileCorruption, l.DistanceFile(d), err)
		}
		if sentinel {
			return totals, nil
		}
	}
}
