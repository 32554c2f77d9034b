package grid

import (
	"github.com/voxelith/spatialgrid/aabb"
	"github.com/voxelith/spatialgrid/vecmath"
	"github.com/voxelith/spatialgrid/voxelray"
)

func cellToFloat3(c vecmath.Int3) vecmath.Float3 {
	return vecmath.NewFloat3(float64(c.X), float64(c.Y), float64(c.Z))
}

func (sh *SpatialHash[T]) cellOrigin(cell vecmath.Int3) vecmath.Float3 {
	return sh.worldBounds.Min().Add(cellToFloat3(cell).Mul(sh.cellSize))
}

// idsFor returns the items the supplied ids name, in whatever order the
// scratch set iterates in. Unknown ids (a transient race in shared-write
// mode, which callers are not supposed to mix with queries) are skipped
// rather than surfaced.
func (sh *SpatialHash[T]) idsFor(ids map[ItemID]struct{}, out []T) []T {
	for id := range ids {
		item, ok := sh.idToItem.Get(id)
		if !ok {
			continue
		}
		out = append(out, item)
	}

	return out
}

// QueryCell appends every item whose id appears in cell's bucket to out and
// returns the extended slice. Duplicate ids within the bucket (there should
// be none under normal operation) are collapsed.
//
// Complexity: O(items in the bucket).
func (sh *SpatialHash[T]) QueryCell(cell vecmath.Int3, out []T) []T {
	sh.queryMu.Lock()
	defer sh.queryMu.Unlock()

	clear(sh.seenIDs)
	ids := sh.buckets.AppendTo(vecmath.HashCell(cell), nil)
	for _, id := range ids {
		sh.seenIDs[id] = struct{}{}
	}

	return sh.idsFor(sh.seenIDs, out)
}

// QueryAABB appends every live item whose clamped bounds intersect bounds
// (itself clamped to the world) to out, each exactly once, and returns the
// extended slice. The bucket union is a necessary-not-sufficient candidate
// set; id_to_bounds.Intersects is the required second-stage filter.
//
// Complexity: O(cells overlapped + candidates).
func (sh *SpatialHash[T]) QueryAABB(bounds aabb.Box, out []T) []T {
	clamped := sh.clampToWorld(bounds)
	start, end := sh.cellRange(clamped)

	sh.queryMu.Lock()
	defer sh.queryMu.Unlock()

	clear(sh.seenIDs)
	forEachCell(start, end, func(cell vecmath.Int3) {
		ids := sh.buckets.AppendTo(vecmath.HashCell(cell), nil)
		for _, id := range ids {
			sh.seenIDs[id] = struct{}{}
		}
	})

	for id := range sh.seenIDs {
		itemBounds, ok := sh.idToBounds.Get(id)
		if !ok || !clamped.Intersects(itemBounds) {
			continue
		}
		item, ok := sh.idToItem.Get(id)
		if !ok {
			continue
		}
		out = append(out, item)
	}

	return out
}

// QueryCellsAABB appends every cell index in bounds' (clamped) [start,end)
// to outCells and returns the extended slice. Diagnostic use: lets a caller
// inspect exactly which cells a QueryAABB call would have visited.
//
// Complexity: O(cells overlapped).
func (sh *SpatialHash[T]) QueryCellsAABB(bounds aabb.Box, outCells []vecmath.Int3) []vecmath.Int3 {
	clamped := sh.clampToWorld(bounds)
	start, end := sh.cellRange(clamped)
	forEachCell(start, end, func(cell vecmath.Int3) {
		outCells = append(outCells, cell)
	})

	return outCells
}

// candidateCellsOBB returns the clamped [start,end) a QueryOBB/QueryCellsOBB
// call derives from obb's conservative enclosure, expanded by one cell on
// every axis for pruning slack, along with that expanded, clamped
// enclosure (used as the query's post-filter bounds).
func (sh *SpatialHash[T]) candidateCellsOBB(obb aabb.OBB) (start, end vecmath.Int3, clamped aabb.Box) {
	enclosing := aabb.TransformBounds(obb)
	expanded := enclosing.ExpandVec(sh.cellSize)
	clamped = sh.clampToWorld(expanded)
	start, end = sh.cellRange(clamped)

	return start, end, clamped
}

// cellSurvivesOBB reports whether cell should be treated as touched by obb,
// using the three-short-ray heuristic: for each axis, a ray from the cell's
// face on the negative side of that axis, centred on the other two axes,
// shot the positive direction for exactly one cell side's length. The cell
// survives if any of the three rays clips obb.
//
// This is not a conservative cell/OBB overlap test in every case (very thin
// boxes at acute rotations can be missed); QueryCellsOBB exposes the
// surviving cells directly for callers that need an exact post-filter.
func (sh *SpatialHash[T]) cellSurvivesOBB(obb aabb.OBB, cell vecmath.Int3) bool {
	min := sh.cellOrigin(cell)
	center := min.Add(sh.cellSize.Scale(0.5))

	originX := vecmath.NewFloat3(min.X, center.Y, center.Z)
	originY := vecmath.NewFloat3(center.X, min.Y, center.Z)
	originZ := vecmath.NewFloat3(center.X, center.Y, min.Z)

	if _, hit := obb.ClipRayOBB(originX, vecmath.NewFloat3(1, 0, 0), sh.cellSize.X); hit {
		return true
	}
	if _, hit := obb.ClipRayOBB(originY, vecmath.NewFloat3(0, 1, 0), sh.cellSize.Y); hit {
		return true
	}
	if _, hit := obb.ClipRayOBB(originZ, vecmath.NewFloat3(0, 0, 1), sh.cellSize.Z); hit {
		return true
	}

	return false
}

// QueryOBB appends every live item whose clamped bounds intersect obb's
// conservative world enclosure expanded by one cell on every axis, and
// whose owning cell survives the three-ray heuristic, to out, and returns
// the extended slice.
//
// Complexity: O(candidate cells * 3 + candidates).
func (sh *SpatialHash[T]) QueryOBB(obb aabb.OBB, out []T) []T {
	start, end, clamped := sh.candidateCellsOBB(obb)

	sh.queryMu.Lock()
	defer sh.queryMu.Unlock()

	clear(sh.seenIDs)
	forEachCell(start, end, func(cell vecmath.Int3) {
		if !sh.cellSurvivesOBB(obb, cell) {
			return
		}
		ids := sh.buckets.AppendTo(vecmath.HashCell(cell), nil)
		for _, id := range ids {
			sh.seenIDs[id] = struct{}{}
		}
	})

	for id := range sh.seenIDs {
		itemBounds, ok := sh.idToBounds.Get(id)
		if !ok || !clamped.Intersects(itemBounds) {
			continue
		}
		item, ok := sh.idToItem.Get(id)
		if !ok {
			continue
		}
		out = append(out, item)
	}

	return out
}

// QueryCellsOBB appends every candidate cell index obb's conservative
// enclosure touches that also survives the three-ray heuristic to
// outCells, and returns the extended slice. Diagnostic use, and the exactness escape hatch §9
// documents for QueryOBB's heuristic.
//
// Complexity: O(candidate cells).
func (sh *SpatialHash[T]) QueryCellsOBB(obb aabb.OBB, outCells []vecmath.Int3) []vecmath.Int3 {
	start, end, _ := sh.candidateCellsOBB(obb)
	forEachCell(start, end, func(cell vecmath.Int3) {
		if sh.cellSurvivesOBB(obb, cell) {
			outCells = append(outCells, cell)
		}
	})

	return outCells
}

// RayCast walks the voxel grid along origin -> origin+dir*length and
// returns the first item whose clamped bounds the ray enters, if any.
// Exclusive-mode only: it writes to internal scratch state shared with no
// other operation, so concurrent callers must serialise their own access.
//
// Complexity: O(cells crossed * items per cell), independent of length.
func (sh *SpatialHash[T]) RayCast(origin, dir vecmath.Float3, length float64) (T, bool) {
	sh.rayMu.Lock()
	defer sh.rayMu.Unlock()

	sh.rayOrigin = origin
	sh.rayDir = dir
	sh.rayLength = length
	sh.hasHit = false
	sh.hitID = 0

	voxelray.Walk(sh, origin, dir, length)

	if !sh.hasHit {
		var zero T
		return zero, false
	}

	item, _ := sh.idToItem.Get(sh.hitID)

	return item, true
}

// CellOf implements voxelray.Visitor.
func (sh *SpatialHash[T]) CellOf(p vecmath.Float3) vecmath.Int3 {
	return vecmath.FloorToInt3(p.Sub(sh.worldBounds.Min()).Div(sh.cellSize))
}

// PointOf implements voxelray.Visitor.
func (sh *SpatialHash[T]) PointOf(cell vecmath.Int3, centered bool) vecmath.Float3 {
	p := sh.cellOrigin(cell)
	if centered {
		p = p.Add(sh.cellSize.Scale(0.5))
	}

	return p
}

// OnCell implements voxelray.Visitor: it is the ray-cast hit test proper.
// A ray starting outside the world still walks through its pre-entry cells
// (negative or otherwise out-of-range on one axis) on its way in, so only
// the far side of [0,cellCount) — the ray having exited the world for
// good — is reported as a "stop" the same way a hit does.
func (sh *SpatialHash[T]) OnCell(cell vecmath.Int3) bool {
	if cell.X >= sh.cellCountV.X || cell.Y >= sh.cellCountV.Y || cell.Z >= sh.cellCountV.Z {
		return true
	}
	if cell.X < 0 || cell.Y < 0 || cell.Z < 0 {
		return false
	}

	ids := sh.buckets.AppendTo(vecmath.HashCell(cell), nil)
	for _, id := range ids {
		bounds, ok := sh.idToBounds.Get(id)
		if !ok {
			continue
		}
		if _, hit := bounds.ClipRay(sh.rayOrigin, sh.rayDir, sh.rayLength); hit {
			sh.hasHit = true
			sh.hitID = id

			return true
		}
	}

	return false
}
