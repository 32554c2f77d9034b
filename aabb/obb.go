package aabb

import "github.com/voxelith/spatialgrid/vecmath"

// Mat3 is a 3x3 rotation matrix, row-major. It is the rotation
// representation OBB queries and transforms use; callers building an OBB
// from a quaternion or Euler angles convert to Mat3 at the boundary.
type Mat3 struct {
	Rows [3]vecmath.Float3
}

// Identity3 returns the identity rotation.
func Identity3() Mat3 {
	return Mat3{Rows: [3]vecmath.Float3{
		vecmath.NewFloat3(1, 0, 0),
		vecmath.NewFloat3(0, 1, 0),
		vecmath.NewFloat3(0, 0, 1),
	}}
}

// Apply rotates v by m.
func (m Mat3) Apply(v vecmath.Float3) vecmath.Float3 {
	return vecmath.NewFloat3(m.Rows[0].Dot(v), m.Rows[1].Dot(v), m.Rows[2].Dot(v))
}

// Transpose returns m's transpose. For an orthonormal rotation matrix this
// is also its inverse, which is how OBB queries undo a rotation without
// computing a matrix inverse.
func (m Mat3) Transpose() Mat3 {
	return Mat3{Rows: [3]vecmath.Float3{
		vecmath.NewFloat3(m.Rows[0].X, m.Rows[1].X, m.Rows[2].X),
		vecmath.NewFloat3(m.Rows[0].Y, m.Rows[1].Y, m.Rows[2].Y),
		vecmath.NewFloat3(m.Rows[0].Z, m.Rows[1].Z, m.Rows[2].Z),
	}}
}

// OBB is an oriented bounding box: an axis-aligned box (centre + extents)
// plus a rotation applied around its centre.
type OBB struct {
	Center   vecmath.Float3
	Extents  vecmath.Float3
	Rotation Mat3
}

// ClipRayOBB clips the segment origin -> origin+dir*length against obb by
// transforming the segment into the box's local frame (inverse rotation
// around the box centre) and delegating to Box.ClipRay. On a hit, entry is
// rotated back into world space.
//
// Complexity: O(1).
func (obb OBB) ClipRayOBB(origin, dir vecmath.Float3, length float64) (entry vecmath.Float3, hit bool) {
	inv := obb.Rotation.Transpose()
	localOrigin := inv.Apply(origin.Sub(obb.Center))
	localDir := inv.Apply(dir)

	local := NewBox(vecmath.Float3{}, obb.Extents)
	localEntry, ok := local.ClipRay(localOrigin, localDir, length)
	if !ok {
		return vecmath.Float3{}, false
	}

	return obb.Rotation.Apply(localEntry).Add(obb.Center), true
}

// TransformBounds returns a world-aligned Box guaranteed to cover obb. The
// enclosure's extents are |Rotation.Apply(extents)| componentwise and its
// centre is obb.Center unchanged: a deliberately conservative cover (it may
// be larger than the tight AABB of the rotated box) that OBB queries rely
// on for exactly this slack when deriving a candidate cell range.
//
// Complexity: O(1).
func TransformBounds(obb OBB) Box {
	worldExtents := obb.Rotation.Apply(obb.Extents).Abs()

	return Box{Center: obb.Center, Extents: worldExtents}
}
