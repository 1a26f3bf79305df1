package rectio

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/rectilinear/bitstream"
)

// ErrAlreadyExists is returned by CreateWriter when the destination d.bin
// already exists, matching "Lemma3::precompute skips d.bin files that
// already exist" rather than overwriting silently.
var ErrAlreadyExists = errors.New("rectio: distance file already exists")

// CreateWriter opens l.DistanceFile(d) for writing, creating l.Dir() as
// needed, and returns a bitstream.Writer plus a close function. Returns
// ErrAlreadyExists (wrapped) if the file is already present.
func CreateWriter(l Layout, d int, base uint8, largeCounts bool) (*bitstream.Writer, func() error, error) {
	if err := os.MkdirAll(l.Dir(), 0o755); err != nil {
		return nil, nil, fmt.Errorf("rectio: creating %s: %w", l.Dir(), err)
	}

	path := l.DistanceFile(d)
	if _, err := os.Stat(path); err == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrAlreadyExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, nil, fmt.Errorf("rectio: stat %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("rectio: creating %s: %w", path, err)
	}
	return bitstream.NewWriter(f, base, largeCounts), f.Close, nil
}

// OpenReader opens l.DistanceFile(d) for reading.
func OpenReader(l Layout, d int, base uint8, largeCounts bool) (*bitstream.Reader, func() error, error) {
	path := l.DistanceFile(d)
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("rectio: opening %s: %w", path, err)
	}
	return bitstream.NewReader(f, base, largeCounts), f.Close, nil
}

// Exists reports whether l.DistanceFile(d) is already present, so a caller
// (or Precompute's WriterFactory) can skip recomputing it.
func Exists(l Layout, d int) bool {
	_, err := os.Stat(l.DistanceFile(d))
	return err == nil
}
