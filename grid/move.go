package grid

import (
	"github.com/pkg/errors"

	"github.com/voxelith/spatialgrid/vecmath"
)

// MoveItem recomputes item's bounds from its current Center()/Size(),
// visits only the symmetric difference between its old and new cell
// ranges (cells in both ranges are left untouched), and refreshes the
// reverse tables. It returns ErrUnknownID if item's id is not present.
//
// This follows the corrected iteration order: walk the old range removing
// cells absent from the new range, then walk the new range adding cells
// absent from the old range — never the reverse, which would silently
// skip additions.
//
// Complexity: O(|oldCells ∪ newCells|).
func (sh *SpatialHash[T]) MoveItem(item T) error {
	id := item.ItemID()
	oldBounds, ok := sh.idToBounds.Get(id)
	if !ok {
		return ErrUnknownID
	}
	newBounds := sh.clampToWorld(itemBounds(item))

	oldStart, oldEnd := sh.cellRange(oldBounds)
	newStart, newEnd := sh.cellRange(newBounds)

	sh.moveMu.Lock()
	defer sh.moveMu.Unlock()

	clear(sh.oldSet)
	clear(sh.newSet)
	forEachCell(oldStart, oldEnd, func(c vecmath.Int3) { sh.oldSet[c] = struct{}{} })
	forEachCell(newStart, newEnd, func(c vecmath.Int3) { sh.newSet[c] = struct{}{} })

	var missing vecmath.Int3
	found := true
	forEachCell(oldStart, oldEnd, func(c vecmath.Int3) {
		if !found {
			return
		}
		if _, inNew := sh.newSet[c]; inNew {
			return
		}
		if !sh.buckets.Remove(vecmath.HashCell(c), id) {
			missing = c
			found = false
		}
	})
	if !found {
		return errors.Wrapf(ErrInvariantViolation, "grid: id %d missing from bucket for cell %v during move", id, missing)
	}

	forEachCell(newStart, newEnd, func(c vecmath.Int3) {
		if _, inOld := sh.oldSet[c]; inOld {
			return
		}
		sh.buckets.Append(vecmath.HashCell(c), id)
	})

	sh.idToBounds.Set(id, newBounds)
	sh.idToItem.Set(id, item)

	return nil
}
