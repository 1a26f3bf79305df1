// Package combo models an in-progress or finished brick assembly
// (Combination), and the base-layer-only projections used by Lemma-3
// precomputation (Base, CBase).
//
// What:
//
//   - Combination holds every placed brick, grouped by layer, plus a
//     History of (layer, index) pairs recording placement order so the
//     wave builder can backtrack by simply truncating the slice.
//   - Normalize canonicalises a Combination/Base/CBase up to the rigid
//     symmetries that don't change the physical assembly (translation,
//     90/180 degree rotation about the vertical axis), so two assemblies
//     that differ only by a symmetry collapse to one counted instance.
//   - Is180Symmetric/Is90Symmetric detect self-symmetry, which lets the
//     reporting stage divide by a smaller orbit size for those assemblies.
//   - EncodeConnectivity flood-fills layer 0 into colour classes and folds
//     the result into a refinement token, so the wave builder can group
//     candidate placements by which colour(s) they would bridge.
//
// Why:
//
//   - The same physical assembly can be built starting from many
//     different first bricks and many different rotations; without
//     canonicalisation the enumerator would massively overcount.
package combo
