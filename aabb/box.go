package aabb

import "github.com/voxelith/spatialgrid/vecmath"

// Box is an axis-aligned bounding box represented by its centre and
// half-size (extents). Min/Max/Size are derived, not stored.
type Box struct {
	Center  vecmath.Float3
	Extents vecmath.Float3
}

// NewBox builds a Box from a centre and half-extents directly.
func NewBox(center, extents vecmath.Float3) Box {
	return Box{Center: center, Extents: extents}
}

// Min returns the box's minimum corner.
func (b Box) Min() vecmath.Float3 { return b.Center.Sub(b.Extents) }

// Max returns the box's maximum corner.
func (b Box) Max() vecmath.Float3 { return b.Center.Add(b.Extents) }

// Size returns the box's full size (2*extents).
func (b Box) Size() vecmath.Float3 { return b.Extents.Scale(2) }

// SetMinMax returns the Box whose corners are exactly min and max.
// Complexity: O(1).
func SetMinMax(min, max vecmath.Float3) Box {
	extents := max.Sub(min).Scale(0.5)

	return Box{Center: min.Add(extents), Extents: extents}
}

// Encapsulate returns the smallest box that covers both b and the point p.
func (b Box) Encapsulate(p vecmath.Float3) Box {
	return SetMinMax(vecmath.MinF3(b.Min(), p), vecmath.MaxF3(b.Max(), p))
}

// EncapsulateBox returns the smallest box that covers both b and other.
func (b Box) EncapsulateBox(other Box) Box {
	return SetMinMax(vecmath.MinF3(b.Min(), other.Min()), vecmath.MaxF3(b.Max(), other.Max()))
}

// Clamp returns b with its min/max componentwise clamped into w. Used by
// the grid before computing a cell range, so that items wholly or
// partially outside the world bounds still produce a valid, finite range.
func (b Box) Clamp(w Box) Box {
	// Each corner is clamped into [w.Min, w.Max], so an input wholly outside
	// w collapses to a degenerate, zero-size box on w's nearest boundary.
	min := vecmath.MinF3(vecmath.MaxF3(b.Min(), w.Min()), w.Max())
	max := vecmath.MaxF3(vecmath.MinF3(b.Max(), w.Max()), w.Min())

	return SetMinMax(min, max)
}

// Expand returns b with its extents enlarged by f on every axis.
func (b Box) Expand(f float64) Box {
	return Box{Center: b.Center, Extents: b.Extents.Add(vecmath.NewFloat3(f, f, f))}
}

// ExpandVec returns b with its extents enlarged componentwise by v.
func (b Box) ExpandVec(v vecmath.Float3) Box {
	return Box{Center: b.Center, Extents: b.Extents.Add(v)}
}

// Intersects reports whether b and other overlap, including touching at a
// boundary.
func (b Box) Intersects(other Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := other.Min(), other.Max()

	return bMin.X <= oMax.X && bMax.X >= oMin.X &&
		bMin.Y <= oMax.Y && bMax.Y >= oMin.Y &&
		bMin.Z <= oMax.Z && bMax.Z >= oMin.Z
}

// CellCount returns ceil((max-min)/cell) componentwise: how many cells of
// size `cell` this box spans.
func (b Box) CellCount(cell vecmath.Float3) vecmath.Int3 {
	span := b.Max().Sub(b.Min()).Div(cell)

	return vecmath.CeilToInt3(span)
}
