package vecmath

import "math"

// MinF3 returns the componentwise minimum of a and b.
func MinF3(a, b Float3) Float3 {
	return Float3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)}
}

// MaxF3 returns the componentwise maximum of a and b.
func MaxF3(a, b Float3) Float3 {
	return Float3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)}
}

// MinI3 returns the componentwise minimum of a and b.
func MinI3(a, b Int3) Int3 {
	return Int3{minI32(a.X, b.X), minI32(a.Y, b.Y), minI32(a.Z, b.Z)}
}

// MaxI3 returns the componentwise maximum of a and b.
func MaxI3(a, b Int3) Int3 {
	return Int3{maxI32(a.X, b.X), maxI32(a.Y, b.Y), maxI32(a.Z, b.Z)}
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// FloorToInt3 floors each component of v to the nearest integer below or
// equal to it, returning the resulting cell coordinate.
func FloorToInt3(v Float3) Int3 {
	return Int3{
		X: int32(math.Floor(v.X)),
		Y: int32(math.Floor(v.Y)),
		Z: int32(math.Floor(v.Z)),
	}
}

// CeilToInt3 ceils each component of v to the nearest integer at or above
// it, returning the resulting cell coordinate.
func CeilToInt3(v Float3) Int3 {
	return Int3{
		X: int32(math.Ceil(v.X)),
		Y: int32(math.Ceil(v.Y)),
		Z: int32(math.Ceil(v.Z)),
	}
}

// ManhattanDistance returns |a.X-b.X| + |a.Y-b.Y| + |a.Z-b.Z|, used by
// voxelray to bound the number of cells a ray can cross.
func ManhattanDistance(a, b Int3) int64 {
	return absI64(int64(a.X)-int64(b.X)) + absI64(int64(a.Y)-int64(b.Y)) + absI64(int64(a.Z)-int64(b.Z))
}

func absI64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// SignPositiveOrZero returns +1 for v >= 0 and -1 for v < 0. Used by the
// voxel DDA to pick a per-axis step direction where a zero direction
// component must still advance (it maps to +1, never to 0).
func SignPositiveOrZero(v float64) int32 {
	if v < 0 {
		return -1
	}
	return 1
}
