// Command-free library root for the rectilinear brick assembly enumerator.
//
// rectilinear counts distinct connected assemblies of axis-aligned bricks
// stacked in layers, subject to a refinement token describing how many
// bricks occupy each layer. The work is organized one concern per package:
//
//	brick/    — geometry primitives: Brick, LayerBrick, Plane, Counts
//	combo/    — Combination/Base assembly model, canonicalisation, symmetry
//	picker/   — k-subset enumeration (BrickPicker, MultiBatchSizeBrickPicker)
//	wave/     — wave-expansion Builder
//	lemma3/   — base precomputation and its worker pool
//	bitstream/ — binary report codec
//	report/   — combining two half-assemblies' reports
//	registry/ — known-counts regression table
//	rectio/   — precomputed-file layout helpers
//	driver/   — the R/P/S/T/X verbs as plain Go functions
//	cmd/rectilinear/ — the CLI entrypoint
//
// See driver's doc comment for the five operations this module exposes.
package rectilinear
