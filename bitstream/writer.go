package bitstream

import (
	"fmt"
	"io"

	"github.com/katalvlaran/rectilinear/brick"
)

// Writer persists Lemma-3 per-base results in the format documented in
// doc.go. AreLargeCountsRequired tells the caller whether a given
// maxCombination needs the wider 64/32/16-bit count fields.
type Writer struct {
	bw          *bitWriter
	base        uint8
	largeCounts bool

	sumAll, sum180, sum90 uint64
	lines                 uint64
}

// AreLargeCountsRequired reports whether counts for maxCombination can
// exceed the normal 32/16/8-bit field widths, matching the original's
// base==2 && height>2 && size>=8 threshold (the only regime it observed
// needing it; larger bases are conservatively left at normal width).
func AreLargeCountsRequired(base, height, size uint8) bool {
	return base == 2 && height > 2 && size >= 8
}

// NewWriter returns a Writer for the given base-layer size, writing to w.
func NewWriter(w io.Writer, base uint8, largeCounts bool) *Writer {
	return &Writer{bw: newBitWriter(w), base: base, largeCounts: largeCounts}
}

func (w *Writer) writeBrick(b brick.Brick) error {
	if err := w.bw.writeBit(b.Vertical); err != nil {
		return err
	}
	if err := w.bw.writeBits(uint64(uint16(b.X)), 16); err != nil {
		return err
	}
	return w.bw.writeBits(uint64(uint16(b.Y)), 16)
}

func (w *Writer) writeColor(c uint8) error {
	return w.bw.writeBits(uint64(c), 3)
}

func (w *Writer) writeCountFields(c brick.Counts) error {
	if w.largeCounts {
		if c.Symmetric180 >= 1<<32-1 || c.Symmetric90 >= 65535 {
			return fmt.Errorf("bitstream: counts %+v overflow large field width", c)
		}
		if err := w.bw.writeBits(c.All, 64); err != nil {
			return err
		}
		if err := w.bw.writeBits(c.Symmetric180, 32); err != nil {
			return err
		}
		return w.bw.writeBits(c.Symmetric90, 16)
	}
	if c.All >= 1<<32-1 || c.Symmetric180 >= 65535 || c.Symmetric90 >= 255 {
		return fmt.Errorf("bitstream: counts %+v overflow normal field width", c)
	}
	if err := w.bw.writeBits(c.All, 32); err != nil {
		return err
	}
	if err := w.bw.writeBits(c.Symmetric180, 16); err != nil {
		return err
	}
	return w.bw.writeBits(c.Symmetric90, 8)
}

// WriteBatch writes one base-layer's header: symmetry flags and, when
// base<=4, the base's own bricks (brick 0 is always implicit FirstBrick
// and is not written).
func (w *Writer) WriteBatch(baseBricks []brick.Brick, symmetric180, symmetric90 bool) error {
	if err := w.bw.writeBit(true); err != nil {
		return err
	}
	if err := w.bw.writeBit(symmetric180); err != nil {
		return err
	}
	if w.base&3 == 0 {
		if err := w.bw.writeBit(symmetric90); err != nil {
			return err
		}
	}
	if w.base <= 4 {
		for _, b := range baseBricks {
			if err := w.writeBrick(b); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteEntry writes one refinement's connectivity colours and counts
// within the current batch, preceded by a continuation bit.
func (w *Writer) WriteEntry(colors []uint8, counts brick.Counts) error {
	if err := w.bw.writeBit(true); err != nil {
		return err
	}
	for _, c := range colors {
		if err := w.writeColor(c); err != nil {
			return err
		}
	}
	if err := w.writeCountFields(counts); err != nil {
		return err
	}
	w.sumAll += counts.All
	w.sum180 += counts.Symmetric180
	w.sum90 += counts.Symmetric90
	w.lines++
	return nil
}

// EndBatch writes the batch-end continuation bit.
func (w *Writer) EndBatch() error {
	return w.bw.writeBit(false)
}

// Close writes the sentinel final batch and the five cross-check totals,
// then flushes the underlying writer.
func (w *Writer) Close() error {
	placeholders := make([]brick.Brick, 0)
	if w.base <= 4 {
		for i := uint8(0); i+1 < w.base; i++ {
			placeholders = append(placeholders, brick.FirstBrick)
		}
	}
	if err := w.WriteBatch(placeholders, false, false); err != nil {
		return err
	}
	if err := w.EndBatch(); err != nil {
		return err
	}
	for _, v := range []uint64{uint64(w.base), w.sumAll, w.sum180, w.sum90, w.lines} {
		if err := w.bw.writeBits(v, 64); err != nil {
			return err
		}
	}
	return w.bw.flush()
}
