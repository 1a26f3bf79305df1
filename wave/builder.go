package wave

import (
	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/combo"
	"github.com/katalvlaran/rectilinear/picker"
)

// sentinelToken is the key used to accumulate counts that aren't broken
// down by base-layer connectivity colour, matching the reference
// implementation's reserved token value 1.
const sentinelToken int64 = 1

// Builder recursively completes a partial Combination up to
// maxCombination's target size, tallying the result by refinement token
// into Counts.
type Builder struct {
	base               combo.Combination
	waveStart          uint8
	waveSize           uint8
	neighbours         []*brick.Plane
	maxCombination     *combo.Combination
	isFirstBuilder     bool
	encodeConnectivity bool
	encodingLocked     bool

	Counts map[int64]brick.Counts
}

// NewFromCombination continues building from an existing partial
// Combination, treating History[waveStart:waveStart+waveSize] as the most
// recently placed wave.
func NewFromCombination(c combo.Combination, waveStart, waveSize uint8, neighbours []*brick.Plane, maxCombination *combo.Combination, encodeConnectivity, encodingLocked bool) *Builder {
	return &Builder{
		base:               c,
		waveStart:          waveStart,
		waveSize:           waveSize,
		neighbours:         neighbours,
		maxCombination:     maxCombination,
		encodeConnectivity: encodeConnectivity,
		encodingLocked:     encodingLocked,
		Counts:             make(map[int64]brick.Counts),
	}
}

// NewFromBase starts building from a finished base layer, treating the
// whole base as the first wave.
func NewFromBase(b combo.Base, neighbours []*brick.Plane, maxCombination *combo.Combination, encodeConnectivity bool) *Builder {
	c := combo.NewFromBase(b)
	bd := NewFromCombination(c, 0, b.LayerSize, neighbours, maxCombination, encodeConnectivity, false)
	bd.isFirstBuilder = true
	return bd
}

func (b *Builder) addCountsFrom(child *Builder) {
	for token, c := range child.Counts {
		b.Counts[token] = b.Counts[token].Add(c)
	}
}

// recordCompletedAssembly tallies b.base, which is already exactly
// maxCombination's target size, into Counts under its refinement token.
func (b *Builder) recordCompletedAssembly() {
	sym180 := b.base.Is180Symmetric()
	sym90 := sym180 && b.base.Is90Symmetric()

	token := sentinelToken
	if b.encodeConnectivity {
		token = b.base.EncodeConnectivity(0)
	}

	c := brick.Counts{All: 1}
	if sym180 {
		c.Symmetric180 = 1
	}
	if sym90 {
		c.Symmetric90 = 1
	}
	b.Counts[token] = b.Counts[token].Add(c)
}

// Build recursively completes the assembly, populating Counts.
func (b *Builder) Build() error {
	leftToPlace := b.maxCombination.Size - b.base.Size
	if leftToPlace == 0 {
		b.recordCompletedAssembly()
		return nil
	}

	var v []brick.LayerBrick
	b.findPotentialBricksForNextWave(&v)

	handled, err := b.placeAllLeftToPlace(v, leftToPlace)
	if err != nil {
		return err
	}
	if handled {
		return nil
	}

	b.addWaveToNeighbours(1)
	for toPick := uint8(1); toPick < leftToPlace; toPick++ {
		p := picker.NewBrickPicker(v, 0, int(toPick))
		for p.Next(&b.base, b.maxCombination) {
			nextEncodingLocked := b.encodingLocked || toPick == 1
			child := NewFromCombination(b.base, b.waveStart+b.waveSize, toPick, b.neighbours, b.maxCombination, b.encodeConnectivity, nextEncodingLocked)
			if err := child.Build(); err != nil {
				return err
			}
			b.addCountsFrom(child)
			for i := uint8(0); i < toPick; i++ {
				b.base.RemoveLastBrick()
			}
		}
	}
	b.addWaveToNeighbours(-1)
	return nil
}

// Finalize folds Symmetric90 into Symmetric180 into All, then divides by
// the orbit size (2*s0 for All, s0 for Symmetric180, s0/2 for
// Symmetric90), exactly mirroring the reference implementation's
// reporting pass, and returns the resulting per-token breakdown.
func (b *Builder) Finalize() map[int64]brick.Counts {
	s0 := uint64(b.maxCombination.LayerSizes[0])
	out := make(map[int64]brick.Counts, len(b.Counts))
	for token, c := range b.Counts {
		out[token] = c.Fold(s0)
	}
	return out
}
