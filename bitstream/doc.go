// Package bitstream implements the bit-packed, MSB-first binary codec used
// to persist Lemma-3 base precomputation results to disk.
//
// Wire format, one base-layer batch at a time:
//
//	new-batch bit (always 1 while batches remain)
//	baseSymmetric180 bit
//	baseSymmetric90 bit                  -- only when base&3==0
//	base-1 placeholder/base bricks       -- only when base<=4
//	repeat:
//	  continuation bit (1 = entry follows, 0 = batch ends)
//	  base-1 connectivity-colour digits  -- 3 bits each
//	  Counts                             -- 32/16[/8]-bit fields, or
//	                                        64/32[/16]-bit fields when
//	                                        largeCounts is set
//
// After the final batch, a sentinel batch is written (new-batch bit 1,
// both symmetry bits 0, placeholder FirstBrick bricks if base<=4,
// continuation bit 0 immediately) followed by five 64-bit cross-check
// totals: base, the running sum of All/Symmetric180/Symmetric90 across
// every entry ever written, and the entry count.
package bitstream
