package brick

// Counts is the (all, symmetric180, symmetric90) accumulator threaded
// through every counting pass: All is the raw number of distinct
// assemblies found, Symmetric180/Symmetric90 are the subsets that are also
// fixed (up to translation) by a 180 degree / 90 degree rotation.
type Counts struct {
	All          uint64
	Symmetric180 uint64
	Symmetric90  uint64
}

// Add returns the element-wise sum of c and o.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		All:          c.All + o.All,
		Symmetric180: c.Symmetric180 + o.Symmetric180,
		Symmetric90:  c.Symmetric90 + o.Symmetric90,
	}
}

// Sub returns the element-wise difference c - o.
func (c Counts) Sub(o Counts) Counts {
	return Counts{
		All:          c.All - o.All,
		Symmetric180: c.Symmetric180 - o.Symmetric180,
		Symmetric90:  c.Symmetric90 - o.Symmetric90,
	}
}

// Div returns c with each field divided by n (integer division).
func (c Counts) Div(n uint64) Counts {
	if n == 0 {
		return c
	}
	return Counts{
		All:          c.All / n,
		Symmetric180: c.Symmetric180 / n,
		Symmetric90:  c.Symmetric90 / n,
	}
}

// Empty reports whether every field of c is zero.
func (c Counts) Empty() bool {
	return c.All == 0 && c.Symmetric180 == 0 && c.Symmetric90 == 0
}

// Fold applies the wave-expansion symmetry fold-and-divide that turns a raw,
// per-orbit accumulation into a final per-distinct-assembly total: it folds
// Symmetric90 into Symmetric180 and All, then divides each field by the
// layer-0 brick count s0 (2*s0 for All, s0 for Symmetric180, s0/2 for
// Symmetric90). This must run exactly once over the fully-aggregated total
// for a refinement, never per-base and never per-signature, since it is not
// additive: folding each addend separately then summing does not equal
// folding the sum.
func (c Counts) Fold(s0 uint64) Counts {
	c.Symmetric180 += c.Symmetric90
	c.All += c.Symmetric90
	c.All += c.Symmetric180
	c.All /= 2 * s0
	c.Symmetric180 /= s0
	if c.Symmetric90 > 0 {
		c.Symmetric90 /= s0 / 2
	}
	return c
}
