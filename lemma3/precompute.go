package lemma3

import (
	"fmt"

	"github.com/katalvlaran/rectilinear/bitstream"
	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/combo"
)

// WriterFactory opens the destination bitstream.Writer for one distance's
// d.bin file. Returning a nil Writer and nil error means the file already
// exists and this distance should be skipped entirely, matching
// Lemma3::precompute's "skips d.bin files that already exist" behaviour;
// naming and the existence check themselves are the caller's concern, per
// rectio. closeFn must be called exactly once after every signature for
// that distance has been reported.
type WriterFactory func(d int) (w *bitstream.Writer, closeFn func() error, err error)

// ProgressFunc, if non-nil, is called once per (distance, signature) pass
// Precompute finishes, so a caller can report progress without Precompute
// doing any I/O itself.
type ProgressFunc func(d int, sig Signature, basesFound int)

// Precompute walks d = 2..maxDist; for each d it enumerates every monotone
// distance signature ending in d (Signatures), runs one BaseBuilder per
// signature through a pool of threads Runner workers, and streams the
// merged per-base results to newWriter(d)'s Writer, matching
// Lemma3::precompute's per-signature BaseBuilder/Lemma3Runner structure.
func Precompute(maxDist, threads int, maxCombination *combo.Combination, newWriter WriterFactory, progress ProgressFunc) error {
	for d := 2; d <= maxDist; d++ {
		w, closeFn, err := newWriter(d)
		if err != nil {
			return fmt.Errorf("lemma3: opening writer for distance %d: %w", d, err)
		}
		if w == nil {
			continue
		}

		if err := precomputeOneDistance(d, threads, maxCombination, w, progress); err != nil {
			_ = closeFn()
			return err
		}

		if err := w.Close(); err != nil {
			_ = closeFn()
			return fmt.Errorf("lemma3: closing writer for distance %d: %w", d, err)
		}
		if err := closeFn(); err != nil {
			return fmt.Errorf("lemma3: closing destination for distance %d: %w", d, err)
		}
	}
	return nil
}

func precomputeOneDistance(d, threads int, maxCombination *combo.Combination, w *bitstream.Writer, progress ProgressFunc) error {
	for _, sig := range Signatures(d, int(brick.MaxLayerSize)) {
		bb := NewBaseBuilder(sig, maxCombination)

		r := NewRunner(threads)
		r.Run(bb)
		r.Close()

		if err := bb.Report(w); err != nil {
			return fmt.Errorf("lemma3: reporting distance %d signature %v: %w", d, sig, err)
		}
		if progress != nil {
			progress(d, sig, len(bb.Bases()))
		}
	}
	return nil
}
