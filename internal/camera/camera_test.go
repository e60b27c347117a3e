package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestEffectiveFOV(t *testing.T) {
	c := New(800, 600)
	c.FOV = 90

	if got := c.EffectiveFOV(); !mgl32.FloatEqualThreshold(got, 90, 1e-3) {
		t.Errorf("Expected 90 degrees at zoom 1, got %f", got)
	}

	// tan(45°) / 2 = 0.5 -> 2 * atan(0.5)
	c.Zoom = 2
	want := mgl32.RadToDeg(2 * 0.4636476)
	if got := c.EffectiveFOV(); !mgl32.FloatEqualThreshold(got, want, 1e-3) {
		t.Errorf("Expected %f degrees at zoom 2, got %f", want, got)
	}

	c.Zoom = 0
	if got := c.EffectiveFOV(); !mgl32.FloatEqualThreshold(got, 90, 1e-3) {
		t.Errorf("Expected non-positive zoom to be ignored, got %f", got)
	}
}

func TestSetViewport(t *testing.T) {
	c := New(900, 600)
	if !mgl32.FloatEqual(c.AspectRatio, 1.5) {
		t.Fatalf("Expected aspect 1.5, got %f", c.AspectRatio)
	}

	c.SetViewport(0, 0)
	if !mgl32.FloatEqual(c.AspectRatio, 1.5) {
		t.Errorf("Expected degenerate resize to keep aspect, got %f", c.AspectRatio)
	}

	c.SetViewport(400, 400)
	if !mgl32.FloatEqual(c.AspectRatio, 1) {
		t.Errorf("Expected aspect 1, got %f", c.AspectRatio)
	}
}

func TestViewProjectionMapsTargetToCenter(t *testing.T) {
	c := New(640, 480)
	c.Position = mgl32.Vec3{0, 0, 10}
	c.Target = mgl32.Vec3{0, 0, 0}

	clip := c.ViewProjection().Mul4x1(c.Target.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())

	if !mgl32.FloatEqualThreshold(ndc.X(), 0, 1e-5) || !mgl32.FloatEqualThreshold(ndc.Y(), 0, 1e-5) {
		t.Errorf("Expected target at NDC center, got %v", ndc)
	}
	if ndc.Z() <= -1 || ndc.Z() >= 1 {
		t.Errorf("Expected target depth inside the clip volume, got %f", ndc.Z())
	}

	fwd := c.Forward()
	if !fwd.ApproxEqual(mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Expected forward (0,0,-1), got %v", fwd)
	}
}

func TestViewMatrixLookingAlongUp(t *testing.T) {
	for _, pos := range []mgl32.Vec3{{0, 30, 0}, {0, -30, 0}} {
		c := New(800, 600)
		c.Position = pos
		c.Target = mgl32.Vec3{0, 0, 0}

		view := c.ViewMatrix()
		for i, v := range view {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				t.Fatalf("Expected a finite view matrix from %v, element %d is %f", pos, i, v)
			}
		}

		clip := c.ViewProjection().Mul4x1(c.Target.Vec4(1))
		ndc := clip.Vec3().Mul(1 / clip.W())
		if math.Abs(float64(ndc.X())) > 1e-5 || math.Abs(float64(ndc.Y())) > 1e-5 {
			t.Errorf("Expected target at NDC center from %v, got %v", pos, ndc)
		}
	}
}
