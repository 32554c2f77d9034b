package grid

import (
	"github.com/voxelith/spatialgrid/aabb"
	"github.com/voxelith/spatialgrid/vecmath"
)

// clampToWorld clamps bounds into sh.worldBounds, the way Add/MoveItem
// must before computing a cell range.
func (sh *SpatialHash[T]) clampToWorld(bounds aabb.Box) aabb.Box {
	return bounds.Clamp(sh.worldBounds)
}

// cellRange returns the half-open cell interval [start,end) a (clamped)
// bounds box overlaps: start = floor((min-W.min)/C), end = ceil((max-W.min)/C).
func (sh *SpatialHash[T]) cellRange(bounds aabb.Box) (start, end vecmath.Int3) {
	origin := sh.worldBounds.Min()
	minRel := bounds.Min().Sub(origin).Div(sh.cellSize)
	maxRel := bounds.Max().Sub(origin).Div(sh.cellSize)

	return vecmath.FloorToInt3(minRel), vecmath.CeilToInt3(maxRel)
}

// forEachCell invokes fn(x,y,z) for every cell in the half-open interval
// [start,end), x outermost then y then z — the iteration order §4.D.3
// requires and tests rely on.
func forEachCell(start, end vecmath.Int3, fn func(vecmath.Int3)) {
	for x := start.X; x < end.X; x++ {
		for y := start.Y; y < end.Y; y++ {
			for z := start.Z; z < end.Z; z++ {
				fn(vecmath.NewInt3(x, y, z))
			}
		}
	}
}
