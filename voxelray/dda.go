package voxelray

import (
	"math"

	"github.com/voxelith/spatialgrid/vecmath"
)

// epsilon bounds the ray-direction component below which an axis is
// treated as not moving at all, matching aabb's own slab-clip epsilon.
const epsilon = 1e-5

// Walk drives v over every cell the segment origin -> origin+dir*length
// crosses, in order, starting from v.CellOf(origin). It stops immediately
// once v.OnCell reports a hit, and otherwise after visiting
// 1+manhattan(startCell, endCell) cells — the exact number of cells a
// straight segment between those two cells can cross.
//
// A NaN direction component short-circuits to "hit nothing" without
// visiting any cell: there is no meaningful walk to perform.
//
// Complexity: O(cells crossed), independent of length.
func Walk(v Visitor, origin, dir vecmath.Float3, length float64) bool {
	if math.IsNaN(dir.X) || math.IsNaN(dir.Y) || math.IsNaN(dir.Z) {
		return false
	}

	cell := v.CellOf(origin)
	end := origin.Add(dir.Scale(length))
	endCell := v.CellOf(end)
	remaining := 1 + vecmath.ManhattanDistance(cell, endCell)

	cellSize := v.CellSize()

	stepX := vecmath.SignPositiveOrZero(dir.X)
	stepY := vecmath.SignPositiveOrZero(dir.Y)
	stepZ := vecmath.SignPositiveOrZero(dir.Z)

	tMaxX, tDeltaX := axisParams(v, cell, stepX, 0, origin.X, dir.X, cellSize.X)
	tMaxY, tDeltaY := axisParams(v, cell, stepY, 1, origin.Y, dir.Y, cellSize.Y)
	tMaxZ, tDeltaZ := axisParams(v, cell, stepZ, 2, origin.Z, dir.Z, cellSize.Z)

	if v.OnCell(cell) {
		return true
	}
	remaining--

	for remaining > 0 {
		if tMaxX <= tMaxY && tMaxX <= tMaxZ {
			cell.X += stepX
			tMaxX += tDeltaX
		} else if tMaxY <= tMaxZ {
			cell.Y += stepY
			tMaxY += tDeltaY
		} else {
			cell.Z += stepZ
			tMaxZ += tDeltaZ
		}

		if v.OnCell(cell) {
			return true
		}
		remaining--
	}

	return false
}

// axisParams computes t_max and t_delta for one axis, where axisIndex
// selects which component of the boundary corner point to read (0=X,
// 1=Y, 2=Z). A direction component with |d| below epsilon never advances
// on this axis, so both values are +Inf and the axis never wins the
// smallest-t_max comparison.
func axisParams(v Visitor, cell vecmath.Int3, step int32, axisIndex int, o, d, cellSize float64) (tMax, tDelta float64) {
	if d > -epsilon && d < epsilon {
		return math.Inf(1), math.Inf(1)
	}

	boundaryCell := cell
	offset := int32(1)
	if step < 0 {
		offset = 0
	}
	switch axisIndex {
	case 0:
		boundaryCell.X += offset
	case 1:
		boundaryCell.Y += offset
	case 2:
		boundaryCell.Z += offset
	}

	boundary := v.PointOf(boundaryCell, false)
	var boundaryComp float64
	switch axisIndex {
	case 0:
		boundaryComp = boundary.X
	case 1:
		boundaryComp = boundary.Y
	case 2:
		boundaryComp = boundary.Z
	}

	tMax = (boundaryComp - o) / d
	tDelta = float64(step) * cellSize / d

	return tMax, tDelta
}
