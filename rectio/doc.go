// Package rectio names and opens the per-(base, refinement, distance)
// files a Lemma-3 precomputation run produces, and the helpers P, S, and T
// share to read them back: directory name
// "base_<b>_size_<n>_refinement_<r>", one file "d<d>.bin" per distance,
// per spec.md section 6's persisted-state layout.
//
// rectio never interprets file contents; that's bitstream's job. It only
// owns naming, existence checks (so Lemma3::precompute's "skip d.bin files
// that already exist" behaviour lives in one place), and open/create.
package rectio
