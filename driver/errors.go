package driver

import "errors"

// Error kinds surfaced by the driver verbs, per the system's error handling
// design: invalid input is rejected before any work starts, cross-check and
// file-corruption failures can only be detected partway through a run.
var (
	ErrInvalidInput       = errors.New("driver: invalid input")
	ErrCrossCheckMismatch = errors.New("driver: cross-check mismatch")
	ErrFileCorruption     = errors.New("driver: file corruption")
	ErrOverflow           = errors.New("driver: counts overflow declared field width")
	ErrMissingInput       = errors.New("driver: missing input file")
	ErrBaseMismatch       = errors.New("driver: base shape mismatch between inputs")
)
