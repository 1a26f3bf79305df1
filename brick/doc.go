// Package brick defines the geometric primitives shared by every higher
// layer of the enumerator: the 2x4 Brick itself, a Brick tagged with its
// layer (LayerBrick), the per-layer occupancy bitmap used to deduplicate
// wave-expansion candidates (Plane), and the Counts triple every
// counting pass accumulates into.
//
// What:
//
//   - Brick models a 2x4 rectangle on an integer grid: an orientation bit
//     plus a centre coordinate, biased non-negative by PlaneMid.
//   - Intersects/CanReach answer the two geometric questions the rest of
//     the system needs: do two bricks overlap, and can they be bridged by
//     at most k intermediate bricks.
//   - Plane is a small counter-per-cell bitmap: a wave brick can be
//     "blocked" by more than one overlapping wave front at once, so plain
//     booleans would let an early Unset free a position prematurely.
//
// Why:
//
//   - Every assembly is built by placing 2x4 bricks on stacked layers; the
//     intersection test is the only primitive that decides whether two
//     placements collide, and it is evaluated many millions of times per
//     refinement, so it stays allocation-free and branch-light.
//
// Complexity:
//
//   - Intersects, Mirror, Dist: O(1).
//   - CanReach: O(1) for k<=1, otherwise bounded recursion depth k.
package brick
