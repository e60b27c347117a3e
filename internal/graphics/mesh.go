package graphics

import "github.com/go-gl/mathgl/mgl32"

// Unit cube centred on the origin. Each face is spanned by u and v with
// u x v pointing along the outward normal, so triangles wind CCW from outside.
var cubeFaces = [6]struct{ normal, u, v mgl32.Vec3 }{
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
}

// CubeVertices returns 36 interleaved position/normal vertices (6 floats each).
func CubeVertices() []float32 {
	out := make([]float32, 0, 36*6)
	for _, f := range cubeFaces {
		c := f.normal.Mul(0.5)
		u, v := f.u.Mul(0.5), f.v.Mul(0.5)
		corners := [4]mgl32.Vec3{
			c.Sub(u).Sub(v),
			c.Add(u).Sub(v),
			c.Add(u).Add(v),
			c.Sub(u).Add(v),
		}
		for _, i := range [6]int{0, 1, 2, 2, 3, 0} {
			p := corners[i]
			out = append(out, p[0], p[1], p[2], f.normal[0], f.normal[1], f.normal[2])
		}
	}
	return out
}

// CubeWireframeVertices returns the 12 cube edges as 24 line vertices.
func CubeWireframeVertices() []float32 {
	out := make([]float32, 0, 24*3)
	for i := 0; i < 8; i++ {
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				continue
			}
			j := i | 1<<axis
			a, b := cubeCorner(i), cubeCorner(j)
			out = append(out, a[0], a[1], a[2], b[0], b[1], b[2])
		}
	}
	return out
}

func cubeCorner(bits int) mgl32.Vec3 {
	var p mgl32.Vec3
	for axis := 0; axis < 3; axis++ {
		p[axis] = -0.5
		if bits&(1<<axis) != 0 {
			p[axis] = 0.5
		}
	}
	return p
}
