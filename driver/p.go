package driver

import (
	"fmt"

	"github.com/katalvlaran/rectilinear/bitstream"
	"github.com/katalvlaran/rectilinear/lemma3"
	"github.com/katalvlaran/rectilinear/rectio"
)

// P runs Lemma-3 precomputation for refinement up to maxDist, writing one
// file per distance under
// "<Options.OutputDir>/base_<b>_size_<n>_refinement_<refinement>/d<d>.bin",
// per the "P refinement maxDist [threads]" CLI verb. Distance files that
// already exist are left untouched and not recomputed, matching
// Lemma3::precompute's resume-by-skip behaviour.
func P(refinement int64, maxDist int, opts ...Option) error {
	o := NewOptions(opts...)

	maxCombination, err := validateRefinement(refinement)
	if err != nil {
		return err
	}
	if maxDist < 2 {
		return fmt.Errorf("%w: maxDist must be >= 2, got %d", ErrInvalidInput, maxDist)
	}

	base := maxCombination.LayerSizes[0]
	layout := rectio.Layout{Root: o.OutputDir, Base: base, Size: maxCombination.Size, Refinement: refinement}
	large := bitstream.AreLargeCountsRequired(base, maxCombination.Height, maxCombination.Size)

	newWriter := func(d int) (*bitstream.Writer, func() error, error) {
		if rectio.Exists(layout, d) {
			return nil, nil, nil
		}
		return rectio.CreateWriter(layout, d, base, large)
	}

	progress := func(d int, sig lemma3.Signature, basesFound int) {
		if o.Progress != nil {
			o.Progress(Event{Distance: d, Signature: sig, BasesFound: basesFound, Message: "signature pass complete"})
		}
	}

	return lemma3.Precompute(maxDist, o.Threads, &maxCombination, newWriter, progress)
}
