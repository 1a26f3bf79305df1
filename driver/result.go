package driver

import (
	"time"

	"github.com/katalvlaran/rectilinear/brick"
)

// Result is the outcome of a single driver verb invocation.
type Result struct {
	// Counts is keyed by refinement token for R (one entry per token
	// processed) and by the constant key 0 for S (a single combined total).
	Counts  map[int64]brick.Counts
	Elapsed time.Duration
}

// SignatureDiff is one distance file T found whose cross-check totals
// disagree between the two precomputation runs being compared.
type SignatureDiff struct {
	Distance int
	Left     brick.Counts
	Right    brick.Counts
}

// Mismatch is one registry entry X found to disagree with a freshly
// computed count.
type Mismatch struct {
	Token int64
	Want  brick.Counts
	Got   brick.Counts
}
