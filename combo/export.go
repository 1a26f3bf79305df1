package combo

// ColorFull colors every layer-0 brick not yet colored; exported so
// callers outside the package can read back per-brick colors via Color.
func (c *Combination) ColorFull() { c.colorFull() }

// Color returns the transient flood-fill color assigned to (layer, idx)
// by the most recent ColorFull/EncodeConnectivity call.
func (c *Combination) Color(layer, idx uint8) uint8 { return c.colors[layer][idx] }

// ResetColors clears the transient coloring scratch space.
func (c *Combination) ResetColors() { c.resetColors() }

// ColorConnected flood-fills color onto (layer, idx) and every brick
// connected to it.
func (c *Combination) ColorConnected(layer, idx, color uint8) { c.colorConnected(layer, idx, color) }

// CanRotate90 reports whether layer 0 has a horizontal brick.
func (c *Combination) CanRotate90() bool { return c.canRotate90() }

// NewIdentityCBase wraps b in a CBase whose Orig mapping is the identity,
// for callers (lemma3's mirror-colour remapping) that need to track how
// Normalize/MirrorX/MirrorY permute a base's bricks.
func NewIdentityCBase(b Base) CBase {
	var cb CBase
	cb.LayerSize = b.LayerSize
	for i := uint8(0); i < b.LayerSize; i++ {
		cb.Bricks[i] = b.Bricks[i]
		cb.Orig[i] = i
	}
	return cb
}

// Normalize canonicalises cb the same way Base.Normalize does, keeping Orig
// in sync with every swap/rotation so the resulting permutation can be read
// back afterwards.
func (cb *CBase) Normalize() { cb.normalize() }
