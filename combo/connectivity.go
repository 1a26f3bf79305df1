package combo

// resetColors clears the transient coloring scratch space.
func (c *Combination) resetColors() {
	c.colors = [5][7]uint8{}
}

// colorConnected flood-fills color onto (layer, idx) and every brick
// reachable from it through physical intersection on adjacent layers,
// skipping bricks already colored.
func (c *Combination) colorConnected(layer, idx uint8, color uint8) {
	if c.colors[layer][idx] != 0 {
		return
	}
	c.colors[layer][idx] = color
	b := c.Bricks[layer][idx]

	if layer > 0 {
		for i := uint8(0); i < c.LayerSizes[layer-1]; i++ {
			if c.colors[layer-1][i] == 0 && b.Intersects(c.Bricks[layer-1][i]) {
				c.colorConnected(layer-1, i, color)
			}
		}
	}
	if layer+1 < c.Height {
		for i := uint8(0); i < c.LayerSizes[layer+1]; i++ {
			if c.colors[layer+1][i] == 0 && b.Intersects(c.Bricks[layer+1][i]) {
				c.colorConnected(layer+1, i, color)
			}
		}
	}
}

// countConnected returns the number of bricks reachable from (layer, idx),
// including itself, via the same flood-fill adjacency colorConnected uses.
func (c *Combination) countConnected(layer, idx uint8, seen *[5][7]bool) uint8 {
	if seen[layer][idx] {
		return 0
	}
	seen[layer][idx] = true
	count := uint8(1)
	b := c.Bricks[layer][idx]

	if layer > 0 {
		for i := uint8(0); i < c.LayerSizes[layer-1]; i++ {
			if !seen[layer-1][i] && b.Intersects(c.Bricks[layer-1][i]) {
				count += c.countConnected(layer-1, i, seen)
			}
		}
	}
	if layer+1 < c.Height {
		for i := uint8(0); i < c.LayerSizes[layer+1]; i++ {
			if !seen[layer+1][i] && b.Intersects(c.Bricks[layer+1][i]) {
				count += c.countConnected(layer+1, i, seen)
			}
		}
	}
	return count
}

// IsConnected reports whether every brick in the assembly is reachable
// from (layer 0, index 0).
func (c *Combination) IsConnected() bool {
	var seen [5][7]bool
	return c.countConnected(0, 0, &seen) == c.Size
}

// colorFull colors every layer-0 brick not yet colored: layer-0 brick i,
// if still uncolored when reached, starts a flood fill with color i+1.
func (c *Combination) colorFull() {
	c.resetColors()
	for i := uint8(0); i < c.LayerSizes[0]; i++ {
		if c.colors[0][i] == 0 {
			c.colorConnected(0, i, i+1)
		}
	}
}

// EncodeConnectivity flood-fills layer 0's first (LayerSizes[0]-1) bricks
// (the last one is left implicit, since by the time every other brick's
// component is known, the last brick's own component is determined), and
// appends one decimal digit per layer-0 brick's color onto token.
func (c *Combination) EncodeConnectivity(token int64) int64 {
	c.resetColors()
	s0 := c.LayerSizes[0]
	for i := uint8(0); i+1 < s0; i++ {
		if c.colors[0][i] == 0 {
			c.colorConnected(0, i, i+1)
		}
	}
	if s0 > 0 && c.colors[0][s0-1] == 0 {
		c.colors[0][s0-1] = s0
	}
	for i := uint8(0); i < s0; i++ {
		token = token*10 + int64(c.colors[0][i])
	}
	return token
}
