package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// BoxFromCenterSize returns the box of the given size centred on center.
func BoxFromCenterSize(center, size mgl32.Vec3) AABB {
	half := size.Mul(0.5)
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// UnitCubeMatrix maps the unit cube centred on the origin onto b.
func (b AABB) UnitCubeMatrix() mgl32.Mat4 {
	c, s := b.Center(), b.Size()
	return mgl32.Translate3D(c.X(), c.Y(), c.Z()).Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z()))
}

// IsEmpty reports whether max < min on any axis.
func (b AABB) IsEmpty() bool {
	return b.Max.X() < b.Min.X() || b.Max.Y() < b.Min.Y() || b.Max.Z() < b.Min.Z()
}

// ContainsPoint checks if a point is inside the box, faces included
func (b AABB) ContainsPoint(p mgl32.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Overlaps checks if two boxes overlap on all three axes
func (b AABB) Overlaps(other AABB) bool {
	return b.Max.X() >= other.Min.X() && b.Min.X() <= other.Max.X() &&
		b.Max.Y() >= other.Min.Y() && b.Min.Y() <= other.Max.Y() &&
		b.Max.Z() >= other.Min.Z() && b.Min.Z() <= other.Max.Z()
}

// Corners returns the eight corners of the box.
func (b AABB) Corners() [8]mgl32.Vec3 {
	lo, hi := b.Min, b.Max
	return [8]mgl32.Vec3{
		{lo.X(), lo.Y(), lo.Z()},
		{hi.X(), lo.Y(), lo.Z()},
		{lo.X(), hi.Y(), lo.Z()},
		{hi.X(), hi.Y(), lo.Z()},
		{lo.X(), lo.Y(), hi.Z()},
		{hi.X(), lo.Y(), hi.Z()},
		{lo.X(), hi.Y(), hi.Z()},
		{hi.X(), hi.Y(), hi.Z()},
	}
}

// Transform returns the axis-aligned box enclosing b after applying m.
func (b AABB) Transform(m mgl32.Mat4) AABB {
	out := AABB{
		Min: mgl32.Vec3{math32.Inf(1), math32.Inf(1), math32.Inf(1)},
		Max: mgl32.Vec3{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)},
	}
	for _, c := range b.Corners() {
		p := mgl32.TransformCoordinate(c, m)
		for i := 0; i < 3; i++ {
			out.Min[i] = math32.Min(out.Min[i], p[i])
			out.Max[i] = math32.Max(out.Max[i], p[i])
		}
	}
	return out
}

// IntersectRay runs the slab test and returns the ray parameter where the ray
// enters the box. Rays starting inside the box, pointing away from it, or
// entering beyond r.Length (when set) do not hit.
func (b AABB) IntersectRay(r Ray) (float32, bool) {
	tNear := math32.Inf(-1)
	tFar := math32.Inf(1)

	for i := 0; i < 3; i++ {
		o, d := r.Origin[i], r.Direction[i]
		if d == 0 {
			// Parallel to this slab: must already be between its planes
			if o < b.Min[i] || o > b.Max[i] {
				return 0, false
			}
			continue
		}
		t1 := (b.Min[i] - o) / d
		t2 := (b.Max[i] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tNear = math32.Max(tNear, t1)
		tFar = math32.Min(tFar, t2)
		// Negated so a NaN slab parameter rejects too
		if !(tNear <= tFar) {
			return 0, false
		}
	}

	if !(tNear >= 0) {
		return 0, false
	}
	if r.Length > 0 && tNear > r.Length {
		return 0, false
	}
	return tNear, true
}
