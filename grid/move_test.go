package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelith/spatialgrid/grid"
	"github.com/voxelith/spatialgrid/vecmath"
)

func TestMoveItemUpdatesBuckets(t *testing.T) {
	sh := newSpecGrid()
	item := newTestItem(vecmath.NewFloat3(5.5, 5.5, 5.5), vecmath.NewFloat3(1, 1, 1))
	sh.Add(item)

	item.center = vecmath.NewFloat3(20.5, 20.5, 20.5)
	require.NoError(t, sh.MoveItem(item))

	require.Equal(t, 1, sh.ItemCount())
	require.Equal(t, 1, sh.BucketItemCount())

	var out []*testItem
	out = sh.QueryCell(vecmath.NewInt3(20, 20, 20), out)
	require.Len(t, out, 1)
	require.Same(t, item, out[0])

	out = out[:0]
	out = sh.QueryCell(vecmath.NewInt3(5, 5, 5), out)
	require.Empty(t, out)
}

func TestMoveItemUnknownID(t *testing.T) {
	sh := newSpecGrid()
	item := newTestItem(vecmath.NewFloat3(5.5, 5.5, 5.5), vecmath.NewFloat3(1, 1, 1))
	item.SetItemID(grid.ItemID(42))

	err := sh.MoveItem(item)
	require.ErrorIs(t, err, grid.ErrUnknownID)
}

func TestMoveItemLeavesOverlapCellsUntouched(t *testing.T) {
	sh := newSpecGrid()
	item := newTestItem(vecmath.NewFloat3(5.5, 5.5, 5.5), vecmath.NewFloat3(3, 3, 3))
	sh.Add(item)
	before := sh.BucketItemCount()

	// Shift by one cell on the X axis only: most of the cell range overlaps.
	item.center = vecmath.NewFloat3(6.5, 5.5, 5.5)
	require.NoError(t, sh.MoveItem(item))

	require.Equal(t, before, sh.BucketItemCount())
}

func TestMoveRoundTripMatchesPlainAdd(t *testing.T) {
	shMoved := newSpecGrid()
	moved := newTestItem(vecmath.NewFloat3(5.5, 5.5, 5.5), vecmath.NewFloat3(1, 1, 1))
	sh := newSpecGrid()
	plain := newTestItem(vecmath.NewFloat3(5.5, 5.5, 5.5), vecmath.NewFloat3(1, 1, 1))

	shMoved.Add(moved)
	sh.Add(plain)

	moved.center = vecmath.NewFloat3(20.5, 20.5, 20.5)
	require.NoError(t, shMoved.MoveItem(moved))
	moved.center = vecmath.NewFloat3(5.5, 5.5, 5.5)
	require.NoError(t, shMoved.MoveItem(moved))

	require.Equal(t, sh.ItemCount(), shMoved.ItemCount())
	require.Equal(t, sh.BucketItemCount(), shMoved.BucketItemCount())

	var want, got []*testItem
	want = sh.QueryCell(vecmath.NewInt3(5, 5, 5), want)
	got = shMoved.QueryCell(vecmath.NewInt3(5, 5, 5), got)
	require.Len(t, want, 1)
	require.Len(t, got, 1)

	var wantEmpty, gotEmpty []*testItem
	wantEmpty = sh.QueryCell(vecmath.NewInt3(20, 20, 20), wantEmpty)
	gotEmpty = shMoved.QueryCell(vecmath.NewInt3(20, 20, 20), gotEmpty)
	require.Empty(t, wantEmpty)
	require.Empty(t, gotEmpty)
}
