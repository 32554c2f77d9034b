package grid

import (
	"github.com/pkg/errors"

	"github.com/voxelith/spatialgrid/aabb"
	"github.com/voxelith/spatialgrid/vecmath"
)

func itemBounds(item Item) aabb.Box {
	return aabb.NewBox(item.Center(), item.Size().Scale(0.5))
}

// Add clamps the item's bounds to the world, assigns it a fresh id
// (pre-increment of the internal counter), writes the id back into item,
// records it in both reverse tables, and inserts it into every cell its
// clamped bounds overlap.
//
// Complexity: O(cells overlapped).
func (sh *SpatialHash[T]) Add(item T) ItemID {
	bounds := sh.clampToWorld(itemBounds(item))
	id := ItemID(sh.nextID.Add(1))
	item.SetItemID(id)

	sh.idToBounds.Set(id, bounds)
	sh.idToItem.Set(id, item)

	start, end := sh.cellRange(bounds)
	forEachCell(start, end, func(cell vecmath.Int3) {
		sh.buckets.Append(vecmath.HashCell(cell), id)
	})

	return id
}

// AddFast behaves like Add but uses the id already present on item instead
// of assigning a new one, overwriting any existing reverse-table entries.
// It exists solely as the second half of a move whose first half was
// RemoveFast.
//
// Complexity: O(cells overlapped).
func (sh *SpatialHash[T]) AddFast(item T) {
	id := item.ItemID()
	bounds := sh.clampToWorld(itemBounds(item))

	sh.idToBounds.Set(id, bounds)
	sh.idToItem.Set(id, item)

	start, end := sh.cellRange(bounds)
	forEachCell(start, end, func(cell vecmath.Int3) {
		sh.buckets.Append(vecmath.HashCell(cell), id)
	})
}

// Remove deletes id from both reverse tables and from every cell in its
// cached [start,end). It returns ErrUnknownID if id is not present, and
// ErrInvariantViolation if a bucket is missing the entry its cached bounds
// say it should contain (a caller bug: double-remove, or a stale id used
// after Clear).
//
// Complexity: O(cells overlapped).
func (sh *SpatialHash[T]) Remove(id ItemID) error {
	bounds, ok := sh.idToBounds.Get(id)
	if !ok {
		return ErrUnknownID
	}

	sh.idToBounds.Delete(id)
	sh.idToItem.Delete(id)

	start, end := sh.cellRange(bounds)
	var missing vecmath.Int3
	found := true
	forEachCell(start, end, func(cell vecmath.Int3) {
		if !found {
			return
		}
		if !sh.buckets.Remove(vecmath.HashCell(cell), id) {
			missing = cell
			found = false
		}
	})
	if !found {
		return errors.Wrapf(ErrInvariantViolation, "grid: id %d missing from bucket for cell %v", id, missing)
	}

	return nil
}

// RemoveFast removes id only from the forward index (buckets), leaving
// both reverse tables intact so their cached bounds remain available for
// a pairing AddFast. It returns ErrUnknownID if id is not present.
//
// Complexity: O(cells overlapped).
func (sh *SpatialHash[T]) RemoveFast(id ItemID) error {
	bounds, ok := sh.idToBounds.Get(id)
	if !ok {
		return ErrUnknownID
	}

	start, end := sh.cellRange(bounds)
	var missing vecmath.Int3
	found := true
	forEachCell(start, end, func(cell vecmath.Int3) {
		if !found {
			return
		}
		if !sh.buckets.Remove(vecmath.HashCell(cell), id) {
			missing = cell
			found = false
		}
	})
	if !found {
		return errors.Wrapf(ErrInvariantViolation, "grid: id %d missing from bucket for cell %v", id, missing)
	}

	return nil
}

// Get returns the item stored under id, if it is currently live.
func (sh *SpatialHash[T]) Get(id ItemID) (T, bool) {
	return sh.idToItem.Get(id)
}

// Clear empties all three tables (buckets, id_to_bounds, id_to_item). The
// id counter is not reset: ids already issued are never reissued, even
// across a Clear.
func (sh *SpatialHash[T]) Clear() {
	sh.buckets.Clear()
	sh.idToBounds.Clear()
	sh.idToItem.Clear()
}

// PrepareFreePlace grows the reverse tables' capacity ceilings so each can
// accept n more entries without a concurrent writer ever observing
// CapacityExhausted. It must be called before entering a parallel insert
// pass (ConcurrentWriter cannot resize). Growth is in powers of two.
func (sh *SpatialHash[T]) PrepareFreePlace(n int) {
	target := int64(sh.idToItem.Len() + n)
	sh.idToBounds.Grow(target)
	sh.idToItem.Grow(target)
}
