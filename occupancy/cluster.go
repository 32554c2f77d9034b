package occupancy

import (
	"github.com/voxelith/spatialgrid/grid"
	"github.com/voxelith/spatialgrid/vecmath"
)

// neighborOffsets are the six face-adjacent 3-D neighbours of a cell, the
// 3-D analogue of gridgraph's Conn4 offset table.
var neighborOffsets = [6]vecmath.Int3{
	{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0}, {X: 0, Y: -1, Z: 0},
	{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: -1},
}

// Clusters returns every maximal 6-connected run of occupied cells in sh,
// scanning its full [0,cellCount) range. Each cluster is the list of cell
// coordinates it contains, in BFS discovery order; cluster order itself
// follows sh's x-outermost/y/z iteration order.
//
// This walks every cell in the grid's cell-count volume once plus one
// QueryCell call per cell touched during flood-fill, so it is a diagnostic
// tool for inspecting item clustering, not a hot-path operation.
func Clusters[T grid.Item](sh *grid.SpatialHash[T]) [][]vecmath.Int3 {
	count := sh.CellCount()
	if count.X <= 0 || count.Y <= 0 || count.Z <= 0 {
		return nil
	}

	visited := make(map[vecmath.Int3]bool)
	occupied := func(cell vecmath.Int3) bool {
		if cell.X < 0 || cell.Y < 0 || cell.Z < 0 ||
			cell.X >= count.X || cell.Y >= count.Y || cell.Z >= count.Z {
			return false
		}
		var scratch []T
		scratch = sh.QueryCell(cell, scratch)

		return len(scratch) > 0
	}

	var components [][]vecmath.Int3
	for x := int32(0); x < count.X; x++ {
		for y := int32(0); y < count.Y; y++ {
			for z := int32(0); z < count.Z; z++ {
				start := vecmath.NewInt3(x, y, z)
				if visited[start] || !occupied(start) {
					visited[start] = true
					continue
				}

				queue := []vecmath.Int3{start}
				visited[start] = true
				var comp []vecmath.Int3

				for qi := 0; qi < len(queue); qi++ {
					cell := queue[qi]
					comp = append(comp, cell)

					for _, d := range neighborOffsets {
						n := vecmath.NewInt3(cell.X+d.X, cell.Y+d.Y, cell.Z+d.Z)
						if visited[n] {
							continue
						}
						visited[n] = true
						if occupied(n) {
							queue = append(queue, n)
						}
					}
				}

				components = append(components, comp)
			}
		}
	}

	return components
}
