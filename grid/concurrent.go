package grid

import "github.com/voxelith/spatialgrid/vecmath"

// ConcurrentWriter is a cloneable, shared-write handle derived from a
// SpatialHash. It supports only TryAdd and AddFast: no removes, no queries,
// no resizes. It is safe to use from many goroutines at once and to copy
// across goroutine boundaries; it becomes invalid once the owning grid is
// no longer reachable.
//
// The caller must call PrepareFreePlace on the owning grid before handing
// out a ConcurrentWriter for parallel insertion: TryAdd never grows a
// table, it only reserves against the ceiling PrepareFreePlace raised.
type ConcurrentWriter[T Item] struct {
	sh *SpatialHash[T]
}

// ToConcurrent derives a ConcurrentWriter over sh.
func (sh *SpatialHash[T]) ToConcurrent() ConcurrentWriter[T] {
	return ConcurrentWriter[T]{sh: sh}
}

// TryAdd assigns item a fresh id (an atomic, strictly increasing
// fetch-and-add: concurrent callers observe ids in the order the counter is
// incremented, though bucket-append order across cells is unspecified),
// writes it back into item, and attempts to reserve a slot in both reverse
// tables. It returns false without mutating anything else if either
// reservation fails, and the caller must treat the item as not inserted.
//
// Complexity: O(cells overlapped).
func (cw ConcurrentWriter[T]) TryAdd(item T) bool {
	sh := cw.sh
	bounds := sh.clampToWorld(itemBounds(item))
	id := ItemID(sh.nextID.Add(1))
	item.SetItemID(id)

	if !sh.idToBounds.TryAdd(id, bounds) {
		return false
	}
	if !sh.idToItem.TryAdd(id, item) {
		return false
	}

	start, end := sh.cellRange(bounds)
	forEachCell(start, end, func(cell vecmath.Int3) {
		sh.buckets.Append(vecmath.HashCell(cell), id)
	})

	return true
}

// AddFast behaves exactly like SpatialHash.AddFast: it uses the id already
// present on item (written by a prior TryAdd or by exclusive-mode Add) and
// overwrites the reverse-table entries unconditionally. It is the
// concurrent-safe second half of a moved-item re-insert, since the forward
// index append it performs is already shard-safe under concurrent writers.
//
// Complexity: O(cells overlapped).
func (cw ConcurrentWriter[T]) AddFast(item T) {
	cw.sh.AddFast(item)
}
