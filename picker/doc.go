// Package picker implements lexicographic k-subset iteration over a slice
// of candidate brick placements, with backtracking against a Combination
// under construction (BrickPicker), and a mutex-guarded variant that lets
// several worker goroutines pull disjoint batch-size/subset work from one
// shared candidate slice (MultiBatchSizeBrickPicker).
package picker
