package voxelray

import "github.com/voxelith/spatialgrid/vecmath"

// Ray is an origin and a normalised direction, both in world space.
type Ray struct {
	Origin vecmath.Float3
	Dir    vecmath.Float3
}

// Visitor is the callback contract Walk drives. CellOf maps a world point
// to the cell that contains it; PointOf maps a cell back to a world point,
// either its corner (centered=false) or its centre (centered=true);
// CellSize reports the grid's fixed cell size.
//
// OnCell is invoked once per cell the ray crosses, in walk order. Returning
// true stops the walk immediately ("hit"); returning false continues it.
type Visitor interface {
	CellOf(p vecmath.Float3) vecmath.Int3
	PointOf(cell vecmath.Int3, centered bool) vecmath.Float3
	CellSize() vecmath.Float3
	OnCell(cell vecmath.Int3) bool
}
