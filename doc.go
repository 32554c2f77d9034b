// Package spatialgrid is a uniform-grid spatial index for axis-aligned
// bounded items in 3-D space, answering "which items overlap this AABB?",
// "which items overlap this oriented box?", and "what does this ray hit
// first?" at interactive rates for tens of thousands of items, with
// concurrent add/remove/move from many worker goroutines.
//
// Three tightly-coupled subsystems do the work:
//
//   - vecmath  — small-vector math (Int3/Float3) and cell hashing.
//   - aabb     — AABB/OBB primitives: slab ray clip, OBB-ray clip, and the
//     conservative OBB→AABB enclosure query pruning depends on.
//   - voxelray — an amortised-O(1)-per-cell 3-D DDA walk that drives
//     ray-cast.
//
// grid.SpatialHash ties them together: a bucketed multimap from cell
// coordinate to item id, plus two reverse maps (id→bounds, id→payload),
// kept coherent across add, remove, move and the two access disciplines it
// supports — an exclusive handle for arbitrary single-goroutine mutation
// and queries, and a cloneable grid.ConcurrentWriter for parallel insert.
//
// batch.Tick is the narrow adapter an entity orchestrator drives per tick;
// alloc attaches a diagnostic allocator identity and a preallocation
// sizing hint at construction.
//
//	go get github.com/voxelith/spatialgrid
package spatialgrid
