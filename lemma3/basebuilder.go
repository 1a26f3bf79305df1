package lemma3

import (
	"sync"

	"github.com/katalvlaran/rectilinear/brick"
	"github.com/katalvlaran/rectilinear/combo"
)

// Kind classifies a base discovered by BaseBuilder.
type Kind uint8

const (
	// KindBuilt bases are built directly: the wave enumeration runs on
	// exactly this base.
	KindBuilt Kind = iota
	// KindReduced bases are built on a smaller ReduceFromUnreachable
	// projection; Reduced (with its Orig mapping) describes how to map the
	// build back.
	KindReduced
	// KindMirrorX/KindMirrorY bases are not built at all; their counts are
	// identical to MirrorOf's counts by construction.
	KindMirrorX
	KindMirrorY
)

// Record is one base discovered by a BaseBuilder, together with enough
// bookkeeping for BaseBuilder.Report to stream it out correctly.
type Record struct {
	Base     combo.Base
	Kind     Kind
	MirrorOf *Record   // set when Kind is KindMirrorX/KindMirrorY
	Reduced  combo.CBase // set when Kind is KindReduced

	mu     sync.Mutex
	built  bool
	Counts map[int64]brick.Counts
}

// BaseBuilder owns the dedup bookkeeping for one (d, signature) pass: the
// canonical-base -> Record map and the discovery order, both guarded by one
// mutex so a pool of workers can safely share it, matching
// "BaseBuilder::nextBaseToBuildOn ... mutex-guarded".
type BaseBuilder struct {
	mu             sync.Mutex
	maxCombination *combo.Combination
	producer       *innerBaseBuilder
	index          map[combo.Base]*Record
	order          []*Record
}

// NewBaseBuilder prepares a BaseBuilder over every base matching sig.
func NewBaseBuilder(sig Signature, maxCombination *combo.Combination) *BaseBuilder {
	return &BaseBuilder{
		maxCombination: maxCombination,
		producer:       newInnerBaseBuilder(sig),
		index:          make(map[combo.Base]*Record),
	}
}

// Bases returns every Record discovered so far, in discovery order. Safe to
// call only after every worker has returned from NextBaseToBuildOn with
// ok=false.
func (bb *BaseBuilder) Bases() []*Record {
	return bb.order
}

func rawBaseFrom(first brick.Brick, rest []brick.Brick) combo.Base {
	var b combo.Base
	b.Bricks[0] = first
	b.LayerSize = 1
	for _, r := range rest {
		b.Bricks[b.LayerSize] = r
		b.LayerSize++
	}
	return b
}

// NextBaseToBuildOn pulls the next not-yet-seen candidate base from the
// inner producer, applies the belongs-to-this-signature/seen-before/
// mirror-duplicate/reducible filter chain, and returns the Record a worker should build on plus the Base to
// pass to wave.NewFromBase (which differs from rec.Base when the base
// reduces). ok is false once the producer is exhausted.
func (bb *BaseBuilder) NextBaseToBuildOn() (rec *Record, buildBase combo.Base, ok bool) {
	bb.mu.Lock()
	defer bb.mu.Unlock()

	for {
		var first brick.Brick
		var rest []brick.Brick
		if !bb.producer.next(&first, &rest) {
			return nil, combo.Base{}, false
		}

		raw := rawBaseFrom(first, rest)
		canonical := raw
		canonical.Normalize()

		// Keep only bases whose own canonical distance vector is this
		// signature; any other base is produced by its own signature's pass.
		belongs := true
		for i := uint8(1); i < canonical.LayerSize; i++ {
			if canonical.Bricks[i].Dist(brick.FirstBrick) != bb.producer.sig[i-1] {
				belongs = false
				break
			}
		}
		if !belongs {
			continue
		}

		if _, seen := bb.index[canonical]; seen {
			continue
		}

		mx := canonical
		mx.MirrorX()
		mx.Normalize()
		if target, seen := bb.index[mx]; seen && mx != canonical {
			r := &Record{Base: canonical, Kind: KindMirrorX, MirrorOf: target}
			bb.index[canonical] = r
			bb.order = append(bb.order, r)
			continue
		}

		my := canonical
		my.MirrorY()
		my.Normalize()
		if target, seen := bb.index[my]; seen && my != canonical {
			r := &Record{Base: canonical, Kind: KindMirrorY, MirrorOf: target}
			bb.index[canonical] = r
			bb.order = append(bb.order, r)
			continue
		}

		r := &Record{Base: canonical}
		if !anyUnreachable(&canonical, bb.maxCombination) || canonical.Is180Symmetric() {
			r.Kind = KindBuilt
			bb.index[canonical] = r
			bb.order = append(bb.order, r)
			return r, canonical, true
		}

		reduced := canonical.ReduceFromUnreachable(bb.maxCombination)
		r.Kind = KindReduced
		r.Reduced = reduced
		bb.index[canonical] = r
		bb.order = append(bb.order, r)
		// The wave builder still needs maxCombination.LayerSizes[0] bricks
		// accounted for on layer 0; pad the reduced shape with far-away
		// placeholders so Size bookkeeping matches canonical's full size
		// without introducing any new reachable geometry.
		padded := reduced.PlainBase().PadWithPlaceholders(canonical.LayerSize, bb.maxCombination)
		return r, padded, true
	}
}

func anyUnreachable(b *combo.Base, maxCombination *combo.Combination) bool {
	bridge := combo.CountBricksToBridge(maxCombination)
	for i := uint8(0); i < b.LayerSize; i++ {
		reachable := false
		for j := uint8(0); j < b.LayerSize; j++ {
			if i == j {
				continue
			}
			if brick.CanReach(b.Bricks[i], b.Bricks[j], bridge) {
				reachable = true
				break
			}
		}
		if !reachable {
			return true
		}
	}
	return false
}

// RegisterCounts stores a worker's finished per-token counts map into rec,
// mutex-guarded per-record so Report can read it once every worker has
// joined.
func (bb *BaseBuilder) RegisterCounts(rec *Record, counts map[int64]brick.Counts) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.Counts = counts
	rec.built = true
}
