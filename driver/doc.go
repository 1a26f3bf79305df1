// Package driver implements the five CLI verbs described by the external
// interfaces section of the system design: R (single-refinement count),
// P (Lemma-3 precomputation to disk), S (combine two half-refinements'
// precomputed files), T (regression-compare two precomputation runs), and
// X (run the closed regression suite against the known-counts registry).
//
// Each verb is a plain function taking functional options (...Option). R
// and S return a Result, P returns only an error, T returns the
// []SignatureDiff it found and X the []Mismatch it found; every error wraps
// one of the sentinel kinds in errors.go. LoadOptionsFile reads an Options
// from a YAML file; no verb takes an Options value directly.
package driver
