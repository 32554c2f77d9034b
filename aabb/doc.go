// Package aabb implements the axis-aligned and oriented bounding-box
// primitives the grid package depends on for query pruning: set-min-max,
// clamp, intersect, encapsulate, the classic 3-slab ray clip, an OBB-ray
// clip built on top of it, and a conservative OBB-to-AABB enclosure.
//
// None of this is "utility code" in the usual sense — correctness of the
// grid's query pruning rests directly on these functions, so every
// non-obvious contract (degenerate ray axes, conservative-vs-tight
// enclosure) is documented at the function that implements it rather than
// left to the caller to rediscover.
package aabb
