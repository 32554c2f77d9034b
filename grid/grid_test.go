package grid_test

import (
	"github.com/voxelith/spatialgrid/aabb"
	"github.com/voxelith/spatialgrid/grid"
	"github.com/voxelith/spatialgrid/vecmath"
)

// testItem is the minimal grid.Item implementation every grid test in this
// package shares.
type testItem struct {
	center vecmath.Float3
	size   vecmath.Float3
	id     grid.ItemID
}

func newTestItem(center, size vecmath.Float3) *testItem {
	return &testItem{center: center, size: size}
}

func (t *testItem) Center() vecmath.Float3   { return t.center }
func (t *testItem) Size() vecmath.Float3     { return t.size }
func (t *testItem) ItemID() grid.ItemID      { return t.id }
func (t *testItem) SetItemID(id grid.ItemID) { t.id = id }

// specWorld is the W = centre (15,15,15), size (30,30,30) world every
// literal-value scenario in this package is built against.
func specWorld() aabb.Box {
	return aabb.NewBox(vecmath.NewFloat3(15, 15, 15), vecmath.NewFloat3(15, 15, 15))
}

func specCellSize() vecmath.Float3 {
	return vecmath.NewFloat3(1, 1, 1)
}

func newSpecGrid() *grid.SpatialHash[*testItem] {
	sh, err := grid.New[*testItem](specWorld(), specCellSize(), grid.WithShardCount(4))
	if err != nil {
		panic(err)
	}

	return sh
}
