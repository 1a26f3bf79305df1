package rectio

import (
	"fmt"
	"path/filepath"
)

// Layout names the directory holding one refinement's precomputed
// distance files.
type Layout struct {
	Root       string // parent directory P/S/T were pointed at
	Base       uint8  // base-layer size b
	Size       uint8  // total assembly size n
	Refinement int64  // refinement token r
}

// Dir returns "<root>/base_<b>_size_<n>_refinement_<r>".
func (l Layout) Dir() string {
	name := fmt.Sprintf("base_%d_size_%d_refinement_%d", l.Base, l.Size, l.Refinement)
	return filepath.Join(l.Root, name)
}

// DistanceFile returns "<dir>/d<d>.bin".
func (l Layout) DistanceFile(d int) string {
	return filepath.Join(l.Dir(), fmt.Sprintf("d%d.bin", d))
}
