package aabb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelith/spatialgrid/aabb"
	"github.com/voxelith/spatialgrid/vecmath"
)

func TestSetMinMax(t *testing.T) {
	b := aabb.SetMinMax(vecmath.NewFloat3(0, 0, 0), vecmath.NewFloat3(2, 4, 6))
	require.Equal(t, vecmath.NewFloat3(1, 2, 3), b.Center)
	require.Equal(t, vecmath.NewFloat3(1, 2, 3), b.Extents)
}

func TestEncapsulatePoint(t *testing.T) {
	b := aabb.NewBox(vecmath.NewFloat3(0, 0, 0), vecmath.NewFloat3(1, 1, 1))
	b2 := b.Encapsulate(vecmath.NewFloat3(5, 0, 0))
	require.Equal(t, vecmath.NewFloat3(-1, -1, -1), b2.Min())
	require.Equal(t, vecmath.NewFloat3(5, 1, 1), b2.Max())
}

func TestClampInside(t *testing.T) {
	world := aabb.NewBox(vecmath.NewFloat3(15, 15, 15), vecmath.NewFloat3(15, 15, 15))
	item := aabb.NewBox(vecmath.NewFloat3(5.5, 5.5, 5.5), vecmath.NewFloat3(0.5, 0.5, 0.5))
	clamped := item.Clamp(world)
	require.Equal(t, item.Min(), clamped.Min())
	require.Equal(t, item.Max(), clamped.Max())
}

func TestClampOutsideWorldCollapses(t *testing.T) {
	world := aabb.NewBox(vecmath.NewFloat3(15, 15, 15), vecmath.NewFloat3(15, 15, 15))
	// Entirely past the +X face of the world.
	item := aabb.NewBox(vecmath.NewFloat3(100, 15, 15), vecmath.NewFloat3(1, 1, 1))
	clamped := item.Clamp(world)
	require.Equal(t, world.Max().X, clamped.Min().X)
	require.Equal(t, world.Max().X, clamped.Max().X)
}

func TestIntersectsTouchingBoundary(t *testing.T) {
	a := aabb.NewBox(vecmath.NewFloat3(0, 0, 0), vecmath.NewFloat3(1, 1, 1))
	b := aabb.NewBox(vecmath.NewFloat3(2, 0, 0), vecmath.NewFloat3(1, 1, 1))
	require.True(t, a.Intersects(b))
}

func TestIntersectsDisjoint(t *testing.T) {
	a := aabb.NewBox(vecmath.NewFloat3(0, 0, 0), vecmath.NewFloat3(1, 1, 1))
	b := aabb.NewBox(vecmath.NewFloat3(3, 0, 0), vecmath.NewFloat3(1, 1, 1))
	require.False(t, a.Intersects(b))
}

func TestCellCountMultiCell(t *testing.T) {
	// size = 1.1 on every axis; ceil(1.1/1) = 2 cells spanned.
	b := aabb.NewBox(vecmath.NewFloat3(5.5, 5.5, 5.5), vecmath.NewFloat3(0.55, 0.55, 0.55))
	count := b.CellCount(vecmath.NewFloat3(1, 1, 1))
	require.Equal(t, vecmath.NewInt3(2, 2, 2), count)
}
