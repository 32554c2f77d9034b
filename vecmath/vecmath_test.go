package vecmath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelith/spatialgrid/vecmath"
)

func TestFloat3Arithmetic(t *testing.T) {
	a := vecmath.NewFloat3(1, 2, 3)
	b := vecmath.NewFloat3(4, -1, 0.5)

	require.Equal(t, vecmath.NewFloat3(5, 1, 3.5), a.Add(b))
	require.Equal(t, vecmath.NewFloat3(-3, 3, 2.5), a.Sub(b))
	require.Equal(t, vecmath.NewFloat3(2, 4, 6), a.Scale(2))
	require.InDelta(t, 4-2+1.5, a.Dot(b), 1e-9)
	require.Equal(t, vecmath.NewFloat3(4, 1, 0.5), b.Abs())
}

func TestMinMaxI3(t *testing.T) {
	a := vecmath.NewInt3(1, 5, -2)
	b := vecmath.NewInt3(3, 2, -9)

	require.Equal(t, vecmath.NewInt3(1, 2, -9), vecmath.MinI3(a, b))
	require.Equal(t, vecmath.NewInt3(3, 5, -2), vecmath.MaxI3(a, b))
}

func TestFloorCeilToInt3(t *testing.T) {
	v := vecmath.NewFloat3(1.9, -1.1, 2.0)
	require.Equal(t, vecmath.NewInt3(1, -2, 2), vecmath.FloorToInt3(v))
	require.Equal(t, vecmath.NewInt3(2, -1, 2), vecmath.CeilToInt3(v))
}

func TestManhattanDistance(t *testing.T) {
	a := vecmath.NewInt3(0, 0, 0)
	b := vecmath.NewInt3(3, -2, 5)
	require.Equal(t, int64(10), vecmath.ManhattanDistance(a, b))
}

func TestSignPositiveOrZero(t *testing.T) {
	require.Equal(t, int32(1), vecmath.SignPositiveOrZero(0))
	require.Equal(t, int32(1), vecmath.SignPositiveOrZero(0.5))
	require.Equal(t, int32(-1), vecmath.SignPositiveOrZero(-0.5))
}

func TestHashCellDeterministicAndVaries(t *testing.T) {
	c1 := vecmath.NewInt3(1, 2, 3)
	c2 := vecmath.NewInt3(1, 2, 3)
	c3 := vecmath.NewInt3(3, 2, 1)

	require.Equal(t, vecmath.HashCell(c1), vecmath.HashCell(c2))
	require.NotEqual(t, vecmath.HashCell(c1), vecmath.HashCell(c3))
}

func TestHashCellNegativeCoordinates(t *testing.T) {
	// Negative cell coordinates (items outside the world's positive octant
	// before clamping) must hash without panicking and stay deterministic.
	c := vecmath.NewInt3(-5, -100, 7)
	require.Equal(t, vecmath.HashCell(c), vecmath.HashCell(c))
}
