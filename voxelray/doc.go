// Package voxelray implements the Amanatides-Woo 3-D digital differential
// analyser: an amortised-O(1)-per-cell walk over the grid cells a ray
// crosses, independent of ray length. The grid package uses it for
// ray-vs-item queries; OBB queries enumerate their candidate cell range
// directly and do not go through this walk.
//
// The walk is parameterised by a Visitor rather than hard-coded against
// the grid package, the same way the teacher's graph/bfs.go and
// graph/dfs.go take caller-supplied OnVisit hooks instead of baking a
// fixed action into the traversal.
package voxelray
