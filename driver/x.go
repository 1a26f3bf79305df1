package driver

import (
	"fmt"

	"github.com/katalvlaran/rectilinear/combo"
	"github.com/katalvlaran/rectilinear/registry"
)

// X runs the closed regression test suite: for every token in the
// known-counts registry whose total brick count is at most
// Options.MaxSize, it recomputes the refinement via R and compares against
// the registry entry, per the "X" CLI verb. It returns every mismatch
// found (an empty, non-nil slice means every entry checked, matched) and a
// non-nil error only for infrastructure failures (a malformed registry, an
// invalid registry token); a mismatch itself is reported via the returned
// slice, not an error, so a caller can see the full picture of a failing
// suite in one pass.
func X(opts ...Option) ([]Mismatch, error) {
	o := NewOptions(opts...)

	all, err := registry.All()
	if err != nil {
		return nil, fmt.Errorf("driver: loading registry: %w", err)
	}

	mismatches := []Mismatch{}
	for token, want := range all {
		if combo.SizeOfToken(token) > o.MaxSize {
			continue
		}
		result, err := R(token, WithThreads(o.Threads), WithProgress(o.Progress))
		if err != nil {
			return nil, fmt.Errorf("%w: computing refinement %d: %v", ErrCrossCheckMismatch, token, err)
		}
		got := result.Counts[token]
		if got != want {
			mismatches = append(mismatches, Mismatch{Token: token, Want: want, Got: got})
		}
	}
	return mismatches, nil
}
