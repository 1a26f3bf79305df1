package bitstream

import (
	"io"

	"github.com/katalvlaran/rectilinear/brick"
)

// Entry is one decoded (colours, counts) pair read from a batch.
type Entry struct {
	Colors []uint8
	Counts brick.Counts
}

// Batch is one decoded base-layer's worth of entries.
type Batch struct {
	Bricks        []brick.Brick
	Symmetric180  bool
	Symmetric90   bool
	Entries       []Entry
}

// Totals are the five trailing cross-check values written by Writer.Close.
type Totals struct {
	Base                  uint8
	SumAll, Sum180, Sum90 uint64
	Lines                 uint64
}

// Reader decodes the format Writer produces.
type Reader struct {
	br          *bitReader
	base        uint8
	largeCounts bool
}

// NewReader returns a Reader for the given base-layer size.
func NewReader(r io.Reader, base uint8, largeCounts bool) *Reader {
	return &Reader{br: newBitReader(r), base: base, largeCounts: largeCounts}
}

func (r *Reader) readBrick() (brick.Brick, error) {
	var b brick.Brick
	v, err := r.br.readBit()
	if err != nil {
		return b, err
	}
	b.Vertical = v
	x, err := r.br.readBits(16)
	if err != nil {
		return b, err
	}
	y, err := r.br.readBits(16)
	if err != nil {
		return b, err
	}
	b.X, b.Y = int16(x), int16(y)
	return b, nil
}

func (r *Reader) readColor() (uint8, error) {
	v, err := r.br.readBits(3)
	return uint8(v), err
}

func (r *Reader) readCountFields() (brick.Counts, error) {
	var c brick.Counts
	if r.largeCounts {
		all, err := r.br.readBits(64)
		if err != nil {
			return c, err
		}
		s180, err := r.br.readBits(32)
		if err != nil {
			return c, err
		}
		s90, err := r.br.readBits(16)
		if err != nil {
			return c, err
		}
		return brick.Counts{All: all, Symmetric180: s180, Symmetric90: s90}, nil
	}
	all, err := r.br.readBits(32)
	if err != nil {
		return c, err
	}
	s180, err := r.br.readBits(16)
	if err != nil {
		return c, err
	}
	s90, err := r.br.readBits(8)
	if err != nil {
		return c, err
	}
	return brick.Counts{All: all, Symmetric180: s180, Symmetric90: s90}, nil
}

// Next reads one batch, or returns io.EOF semantics via the new-batch bit:
// when the batch it reads is the sentinel (no entries, both symmetry bits
// false), it also reads and returns the trailing Totals, with isSentinel
// set true.
func (r *Reader) Next() (batch Batch, totals Totals, isSentinel bool, err error) {
	newBatch, err := r.br.readBit()
	if err != nil {
		return Batch{}, Totals{}, false, err
	}
	if !newBatch {
		return Batch{}, Totals{}, false, io.ErrUnexpectedEOF
	}

	s180, err := r.br.readBit()
	if err != nil {
		return Batch{}, Totals{}, false, err
	}
	var s90 bool
	if r.base&3 == 0 {
		s90, err = r.br.readBit()
		if err != nil {
			return Batch{}, Totals{}, false, err
		}
	}
	batch.Symmetric180, batch.Symmetric90 = s180, s90

	if r.base <= 4 {
		for i := uint8(0); i+1 < r.base; i++ {
			b, err := r.readBrick()
			if err != nil {
				return Batch{}, Totals{}, false, err
			}
			batch.Bricks = append(batch.Bricks, b)
		}
	}

	for {
		cont, err := r.br.readBit()
		if err != nil {
			return Batch{}, Totals{}, false, err
		}
		if !cont {
			break
		}
		colors := make([]uint8, 0, r.base-1)
		for i := uint8(0); i+1 < r.base; i++ {
			c, err := r.readColor()
			if err != nil {
				return Batch{}, Totals{}, false, err
			}
			colors = append(colors, c)
		}
		counts, err := r.readCountFields()
		if err != nil {
			return Batch{}, Totals{}, false, err
		}
		batch.Entries = append(batch.Entries, Entry{Colors: colors, Counts: counts})
	}

	if len(batch.Entries) == 0 && !batch.Symmetric180 && !batch.Symmetric90 {
		vals := make([]uint64, 5)
		for i := range vals {
			v, err := r.br.readBits(64)
			if err != nil {
				return batch, Totals{}, true, err
			}
			vals[i] = v
		}
		totals = Totals{Base: uint8(vals[0]), SumAll: vals[1], Sum180: vals[2], Sum90: vals[3], Lines: vals[4]}
		return batch, totals, true, nil
	}
	return batch, Totals{}, false, nil
}
