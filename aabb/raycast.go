package aabb

import "github.com/voxelith/spatialgrid/vecmath"

// rayEpsilon is the threshold below which a ray-direction component is
// treated as exactly zero by the slab test, matching the voxel DDA's own
// epsilon (see voxelray package).
const rayEpsilon = 1e-5

// ClipRay clips the segment origin -> origin+dir*length against b using the
// classic 3-slab algorithm. It returns the entry point and true if the
// segment intersects b; otherwise it returns the zero point and false.
//
// An axis whose displacement over the segment (direction component times
// length) is below rayEpsilon in magnitude is treated as not moving at
// all: the corresponding slab test degenerates to "does the
// segment's constant coordinate on that axis lie within [min,max]", never
// dividing by zero.
//
// Complexity: O(1).
func (b Box) ClipRay(origin, dir vecmath.Float3, length float64) (vecmath.Float3, bool) {
	low, high := 0.0, 1.0
	bMin, bMax := b.Min(), b.Max()

	ok := clipAxis(origin.X, dir.X, length, bMin.X, bMax.X, &low, &high) &&
		clipAxis(origin.Y, dir.Y, length, bMin.Y, bMax.Y, &low, &high) &&
		clipAxis(origin.Z, dir.Z, length, bMin.Z, bMax.Z, &low, &high)
	if !ok || low > high {
		return vecmath.Float3{}, false
	}

	end := origin.Add(dir.Scale(length))
	entry := origin.Add(end.Sub(origin).Scale(low))

	return entry, true
}

// clipAxis narrows [low, high] to the parametric sub-interval along one
// axis for which origin+t*dir*length stays within [minB, maxB]. It returns
// false if the narrowed interval is empty.
func clipAxis(originA, dirA, length, minB, maxB float64, low, high *float64) bool {
	d := dirA * length
	if d > -rayEpsilon && d < rayEpsilon {
		// Degenerate axis: the segment doesn't move along it at all, so it
		// must already lie between the slabs, or it misses entirely.
		return originA >= minB && originA <= maxB
	}

	t0 := (minB - originA) / d
	t1 := (maxB - originA) / d
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 > *low {
		*low = t0
	}
	if t1 < *high {
		*high = t1
	}

	return *low <= *high
}
