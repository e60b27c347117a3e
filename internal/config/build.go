package config

import (
	"pickview/internal/camera"
	"pickview/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// BuildScene creates the scene objects and root transform described by c.
// c must have passed Validate.
func (c *Config) BuildScene() *scene.Scene {
	s := scene.New()
	s.Root.Position = mgl32.Vec3(c.Root.Position)
	s.Root.Rotation = mgl32.Vec3(c.Root.Rotation)

	for _, oc := range c.SceneObjects() {
		color, _ := ParseColor(oc.Color)
		obj := scene.NewBox(oc.Name, mgl32.Vec3(oc.Position), mgl32.Vec3(oc.Size), color)
		obj.Local.Rotation = mgl32.Vec3(oc.Rotation)
		obj.SetClickable(oc.IsClickable())
		s.Add(obj)
	}
	return s
}

// ApplyCamera copies the camera section onto cam, keeping its aspect ratio.
func (c *Config) ApplyCamera(cam *camera.Camera) {
	cam.Position = mgl32.Vec3(c.Camera.Position)
	cam.Target = mgl32.Vec3(c.Camera.Target)
	cam.FOV = c.Camera.FOV
	cam.Zoom = c.Camera.Zoom
	cam.NearPlane = c.Camera.Near
	cam.FarPlane = c.Camera.Far
}

// NewCamera returns a camera for the configured window size.
func (c *Config) NewCamera() *camera.Camera {
	cam := camera.New(c.Window.Width, c.Window.Height)
	c.ApplyCamera(cam)
	return cam
}

// HighlightColor returns the parsed highlight colour. c must have passed Validate.
func (c *Config) HighlightColor() mgl32.Vec3 {
	color, _ := ParseColor(c.Highlight.Color)
	return color
}
