// Package grid implements SpatialHash: a uniform-grid spatial index over
// axis-aligned bounded items in 3-D space.
//
// SpatialHash owns three coherent tables — a forward index from cell hash
// to item ids, a reverse index from item id to clamped bounds, and a
// reverse index from item id to the caller's payload — and keeps them in
// lockstep across add, remove and move. Queries (AABB, OBB, ray-cast) run
// read-only against those tables; see query.go.
//
// Two access disciplines are supported (see concurrent.go): the owning
// handle (*SpatialHash[T]) permits arbitrary reads and writes from a
// single goroutine at a time ("exclusive mode"), and a cloneable
// ConcurrentWriter handle permits many goroutines to insert items in
// parallel ("shared-write mode"). Mixing queries with concurrent writes,
// or resizing during shared-write, is undefined by design — the caller is
// expected to separate ticks the way batch.Tick does.
package grid
