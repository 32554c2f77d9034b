package vecmath

// Int3 is an integer cell coordinate: the address of one voxel in the
// world grid.
type Int3 struct {
	X, Y, Z int32
}

// Float3 is a world-space point or extent.
type Float3 struct {
	X, Y, Z float64
}

// NewInt3 builds an Int3 from its three components.
func NewInt3(x, y, z int32) Int3 { return Int3{X: x, Y: y, Z: z} }

// NewFloat3 builds a Float3 from its three components.
func NewFloat3(x, y, z float64) Float3 { return Float3{X: x, Y: y, Z: z} }

// Add returns a+b, componentwise.
func (a Int3) Add(b Int3) Int3 { return Int3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a-b, componentwise.
func (a Int3) Sub(b Int3) Int3 { return Int3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Sum returns the componentwise sum x+y+z.
func (a Int3) Sum() int64 { return int64(a.X) + int64(a.Y) + int64(a.Z) }

// Product returns the componentwise product x*y*z. Used by callers to turn
// a cell count into a total cell budget; overflow is the caller's concern
// for pathologically large worlds.
func (a Int3) Product() int64 { return int64(a.X) * int64(a.Y) * int64(a.Z) }

// Add returns a+b, componentwise.
func (a Float3) Add(b Float3) Float3 { return Float3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a-b, componentwise.
func (a Float3) Sub(b Float3) Float3 { return Float3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Scale returns a scaled componentwise by s.
func (a Float3) Scale(s float64) Float3 { return Float3{a.X * s, a.Y * s, a.Z * s} }

// Mul returns a*b, componentwise.
func (a Float3) Mul(b Float3) Float3 { return Float3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }

// Div returns a/b, componentwise. The caller must ensure b has no zero
// components; this package never special-cases division by zero.
func (a Float3) Div(b Float3) Float3 { return Float3{a.X / b.X, a.Y / b.Y, a.Z / b.Z} }

// Dot returns the dot product of a and b.
func (a Float3) Dot(b Float3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Abs returns a with each component replaced by its absolute value.
func (a Float3) Abs() Float3 {
	return Float3{absF(a.X), absF(a.Y), absF(a.Z)}
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
