package occupancy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelith/spatialgrid/aabb"
	"github.com/voxelith/spatialgrid/grid"
	"github.com/voxelith/spatialgrid/occupancy"
	"github.com/voxelith/spatialgrid/vecmath"
)

type clusterItem struct {
	center vecmath.Float3
	size   vecmath.Float3
	id     grid.ItemID
}

func (t *clusterItem) Center() vecmath.Float3   { return t.center }
func (t *clusterItem) Size() vecmath.Float3     { return t.size }
func (t *clusterItem) ItemID() grid.ItemID      { return t.id }
func (t *clusterItem) SetItemID(id grid.ItemID) { t.id = id }

func newClusterGrid(t *testing.T) *grid.SpatialHash[*clusterItem] {
	sh, err := grid.New[*clusterItem](
		aabb.NewBox(vecmath.NewFloat3(2, 2, 2), vecmath.NewFloat3(2, 2, 2)),
		vecmath.NewFloat3(1, 1, 1),
		grid.WithShardCount(2),
	)
	require.NoError(t, err)

	return sh
}

func TestClustersEmptyGrid(t *testing.T) {
	sh := newClusterGrid(t)
	require.Empty(t, occupancy.Clusters[*clusterItem](sh))
}

func TestClustersSingleOccupiedCell(t *testing.T) {
	sh := newClusterGrid(t)
	sh.Add(&clusterItem{center: vecmath.NewFloat3(0.5, 0.5, 0.5), size: vecmath.NewFloat3(1, 1, 1)})

	clusters := occupancy.Clusters[*clusterItem](sh)
	require.Len(t, clusters, 1)
	require.Len(t, clusters[0], 1)
	require.Equal(t, vecmath.NewInt3(0, 0, 0), clusters[0][0])
}

func TestClustersMergesAdjacentCells(t *testing.T) {
	sh := newClusterGrid(t)
	// An item spanning z in [0.4,1.6] touches cells (0,0,0) and (0,0,1):
	// one cluster of two face-adjacent cells, not two separate clusters.
	sh.Add(&clusterItem{center: vecmath.NewFloat3(0.5, 0.5, 1.0), size: vecmath.NewFloat3(1, 1, 1.2)})

	clusters := occupancy.Clusters[*clusterItem](sh)
	require.Len(t, clusters, 1)
	require.Len(t, clusters[0], 2)
}

func TestClustersSeparatesDisjointCells(t *testing.T) {
	sh := newClusterGrid(t)
	sh.Add(&clusterItem{center: vecmath.NewFloat3(0.5, 0.5, 0.5), size: vecmath.NewFloat3(1, 1, 1)})
	sh.Add(&clusterItem{center: vecmath.NewFloat3(3.5, 3.5, 3.5), size: vecmath.NewFloat3(1, 1, 1)})

	clusters := occupancy.Clusters[*clusterItem](sh)
	require.Len(t, clusters, 2)
}
