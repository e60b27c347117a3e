package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	AspectRatio float32
	FOV         float32 // vertical, degrees
	Zoom        float32
	NearPlane   float32
	FarPlane    float32
}

func New(width, height int) *Camera {
	c := &Camera{
		Position:  mgl32.Vec3{8, 15, 12},
		Up:        mgl32.Vec3{0, 1, 0},
		FOV:       75.0,
		Zoom:      1.0,
		NearPlane: 0.1,
		FarPlane:  1000.0,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio after the surface resizes.
// A zero-height surface keeps the previous ratio.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// EffectiveFOV returns the vertical field of view in degrees after zoom.
func (c *Camera) EffectiveFOV() float32 {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	half := mgl32.DegToRad(c.FOV) / 2
	return mgl32.RadToDeg(2 * math32.Atan(math32.Tan(half)/zoom))
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.EffectiveFOV()), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.viewUp())
}

// viewUp returns Up, or a world axis across the view when the camera looks
// along Up and LookAtV would have no side vector.
func (c *Camera) viewUp() mgl32.Vec3 {
	forward := c.Target.Sub(c.Position)
	if c.Up.Cross(forward).Len() > 1e-6*c.Up.Len()*forward.Len() {
		return c.Up
	}
	if math32.Abs(forward.Z()) > math32.Abs(forward.Y()) {
		return mgl32.Vec3{0, 1, 0}
	}
	return mgl32.Vec3{0, 0, -1}
}

// ViewProjection returns projection * view, the clip transform of world points.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// Forward returns the unit viewing direction.
func (c *Camera) Forward() mgl32.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}
