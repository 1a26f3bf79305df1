// Package wave implements the breadth-first "wave expansion" construction
// of rectilinear brick assemblies: starting from a base layer (or a
// partially-built Combination), it repeatedly discovers every candidate
// brick placement adjacent to the most recently placed layer (the
// "wave"), then recursively tries every way to place between one and all
// of the remaining bricks from that candidate set.
//
// Builder unifies what the original implementation split into two
// parallel types (one that tracked base-layer connectivity encoding into
// a refinement token, one that didn't) behind a single EncodeConnectivity
// flag: when true, Builder enumerates every final-wave completion brick by
// brick and keeps a per-token Counts breakdown; when false, it only needs
// an aggregate count, and once 180-degree symmetry is ruled out it
// multiplies per-layer counts of non-intersecting candidate subsets
// instead of enumerating whole completions. Candidates are not grouped by
// the base colours they would bridge.
package wave
