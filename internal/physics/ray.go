package physics

import (
	"pickview/internal/viewport"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line from Origin along Direction. Length bounds the segment
// that can produce hits; zero means unbounded.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
	Length    float32
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform maps the ray through m without renormalizing the direction, so a
// parameter t names the same point before and after the transform.
func (r Ray) Transform(m mgl32.Mat4) Ray {
	return Ray{
		Origin:    m.Mul4x1(r.Origin.Vec4(1)).Vec3(),
		Direction: m.Mul4x1(r.Direction.Vec4(0)).Vec3(),
		Length:    r.Length,
	}
}

// RayFromCamera unprojects a normalized pointer through the inverse of the
// camera's projection*view matrix. The ray starts on the near plane and ends on
// the far plane. It reports false when the matrix cannot be inverted or the
// unprojected points are not finite.
func RayFromCamera(p viewport.NormalizedPointer, viewProj mgl32.Mat4) (Ray, bool) {
	if det := viewProj.Det(); det == 0 || !finite(det) {
		return Ray{}, false
	}
	inv := viewProj.Inv()

	near, ok := unproject(inv, p.X, p.Y, -1)
	if !ok {
		return Ray{}, false
	}
	far, ok := unproject(inv, p.X, p.Y, 1)
	if !ok {
		return Ray{}, false
	}

	if !finiteVec(near) || !finiteVec(far) {
		return Ray{}, false
	}

	dir := far.Sub(near)
	length := dir.Len()
	if length == 0 || !finite(length) {
		return Ray{}, false
	}
	return Ray{Origin: near, Direction: dir.Mul(1 / length), Length: length}, true
}

func unproject(inv mgl32.Mat4, x, y, z float32) (mgl32.Vec3, bool) {
	v := inv.Mul4x1(mgl32.Vec4{x, y, z, 1})
	if v.W() == 0 {
		return mgl32.Vec3{}, false
	}
	return v.Vec3().Mul(1 / v.W()), true
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

func finiteVec(v mgl32.Vec3) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}
