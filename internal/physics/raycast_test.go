package physics_test

import (
	"math"
	"testing"

	"pickview/internal/camera"
	"pickview/internal/physics"
	"pickview/internal/viewport"

	"github.com/go-gl/mathgl/mgl32"
)

// box is a minimal physics.Pickable for tests.
type box struct {
	name      string
	clickable bool
	bounds    physics.AABB
	transform mgl32.Mat4
}

func (b *box) Name() string          { return b.name }
func (b *box) Clickable() bool       { return b.clickable }
func (b *box) Bounds() physics.AABB  { return b.bounds }
func (b *box) Transform() mgl32.Mat4 { return b.transform }
func (b *box) String() string        { return b.name }

func newBox(name string, center mgl32.Vec3, size float32) *box {
	return &box{
		name:      name,
		clickable: true,
		bounds:    physics.BoxFromCenterSize(mgl32.Vec3{}, mgl32.Vec3{size, size, size}),
		transform: mgl32.Translate3D(center.X(), center.Y(), center.Z()),
	}
}

var forwardRay = physics.Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{0, 0, 1}}

func TestCastRayEmpty(t *testing.T) {
	if hits := physics.CastRay(forwardRay, nil); len(hits) != 0 {
		t.Fatalf("Expected no hits for empty candidate set, got %d", len(hits))
	}

	// Nothing along the ray
	objs := []physics.Pickable{newBox("off", mgl32.Vec3{10, 0, 10}, 2)}
	if hits := physics.CastRay(forwardRay, objs); len(hits) != 0 {
		t.Fatalf("Expected no hits, got %d", len(hits))
	}
}

func TestCastRaySingleHit(t *testing.T) {
	objs := []physics.Pickable{
		newBox("left", mgl32.Vec3{-10, 0, 10}, 2),
		newBox("middle", mgl32.Vec3{0, 0, 10}, 2),
		newBox("right", mgl32.Vec3{10, 0, 10}, 2),
	}

	hits := physics.CastRay(forwardRay, objs)
	if len(hits) != 1 {
		t.Fatalf("Expected exactly one hit, got %d", len(hits))
	}
	if hits[0].Object.Name() != "middle" {
		t.Errorf("Expected hit on middle, got %s", hits[0].Object.Name())
	}
	if !mgl32.FloatEqualThreshold(hits[0].Distance, 9, 1e-4) {
		t.Errorf("Expected distance 9, got %f", hits[0].Distance)
	}
	if !hits[0].Point.ApproxEqualThreshold(mgl32.Vec3{0, 0, 9}, 1e-4) {
		t.Errorf("Expected contact point (0,0,9), got %v", hits[0].Point)
	}
}

func TestCastRaySortsByDistance(t *testing.T) {
	far := newBox("far", mgl32.Vec3{0, 0, 11}, 2)
	near := newBox("near", mgl32.Vec3{0, 0, 6}, 2)
	floor := newBox("floor", mgl32.Vec3{0, 0, 4}, 2)
	floor.clickable = false

	hits := physics.CastRay(forwardRay, []physics.Pickable{far, near, floor})
	if len(hits) != 3 {
		t.Fatalf("Expected 3 hits, got %d", len(hits))
	}

	want := []struct {
		name string
		dist float32
	}{{"floor", 3}, {"near", 5}, {"far", 10}}
	for i, w := range want {
		if hits[i].Object.Name() != w.name {
			t.Errorf("hit %d: expected %s, got %s", i, w.name, hits[i].Object.Name())
		}
		if !mgl32.FloatEqualThreshold(hits[i].Distance, w.dist, 1e-4) {
			t.Errorf("hit %d: expected distance %f, got %f", i, w.dist, hits[i].Distance)
		}
	}
	if hits[0].Object.Clickable() {
		t.Errorf("Expected non-clickable floor to be reported as a hit")
	}
}

func TestCastRayOrientedAndScaled(t *testing.T) {
	// A 10x1x1 bar rotated a quarter turn about Y lies along Z.
	bar := &box{
		name:      "bar",
		clickable: true,
		bounds:    physics.BoxFromCenterSize(mgl32.Vec3{}, mgl32.Vec3{10, 1, 1}),
		transform: mgl32.HomogRotate3DY(mgl32.DegToRad(90)),
	}
	offAxis := physics.Ray{Origin: mgl32.Vec3{3, 0, -20}, Direction: mgl32.Vec3{0, 0, 1}}
	if hits := physics.CastRay(offAxis, []physics.Pickable{bar}); len(hits) != 0 {
		t.Errorf("Expected rotated bar to be missed at x=3, got %d hits", len(hits))
	}
	onAxis := physics.Ray{Origin: mgl32.Vec3{0, 0, -20}, Direction: mgl32.Vec3{0, 0, 1}}
	hits := physics.CastRay(onAxis, []physics.Pickable{bar})
	if len(hits) != 1 || !mgl32.FloatEqualThreshold(hits[0].Distance, 15, 1e-3) {
		t.Fatalf("Expected one hit at distance 15, got %v", hits)
	}

	scaled := &box{
		name:      "scaled",
		clickable: true,
		bounds:    physics.BoxFromCenterSize(mgl32.Vec3{}, mgl32.Vec3{2, 2, 2}),
		transform: mgl32.Translate3D(0, 0, 10).Mul4(mgl32.Scale3D(3, 3, 3)),
	}
	hits = physics.CastRay(forwardRay, []physics.Pickable{scaled})
	if len(hits) != 1 {
		t.Fatalf("Expected scaled box hit, got %d hits", len(hits))
	}
	if !mgl32.FloatEqualThreshold(hits[0].Distance, 7, 1e-4) {
		t.Errorf("Expected world distance 7, got %f", hits[0].Distance)
	}
}

func TestCastRaySkipsSingularTransform(t *testing.T) {
	flat := newBox("flat", mgl32.Vec3{0, 0, 10}, 2)
	flat.transform = mgl32.Scale3D(1, 1, 0)
	if hits := physics.CastRay(forwardRay, []physics.Pickable{flat}); len(hits) != 0 {
		t.Errorf("Expected object with singular transform to be skipped, got %d hits", len(hits))
	}
}

func testCamera() *camera.Camera {
	cam := camera.New(600, 600)
	cam.Position = mgl32.Vec3{0, 0, 10}
	cam.Target = mgl32.Vec3{0, 0, 0}
	cam.FOV = 90
	cam.NearPlane = 0.1
	cam.FarPlane = 100
	return cam
}

func TestRayFromCamera(t *testing.T) {
	cam := testCamera()

	ray, ok := physics.RayFromCamera(viewport.NormalizedPointer{X: 0, Y: 0}, cam.ViewProjection())
	if !ok {
		t.Fatalf("Expected a ray")
	}
	if !ray.Origin.ApproxEqualThreshold(mgl32.Vec3{0, 0, 9.9}, 1e-3) {
		t.Errorf("Expected origin on near plane (0,0,9.9), got %v", ray.Origin)
	}
	if !ray.Direction.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-4) {
		t.Errorf("Expected direction (0,0,-1), got %v", ray.Direction)
	}
	if !mgl32.FloatEqualThreshold(ray.Length, 99.9, 0.5) {
		t.Errorf("Expected length 99.9, got %f", ray.Length)
	}

	// Top-right corner of a 90 degree square frustum leans out at 45 degrees on both axes.
	corner, ok := physics.RayFromCamera(viewport.NormalizedPointer{X: 1, Y: 1}, cam.ViewProjection())
	if !ok {
		t.Fatalf("Expected a corner ray")
	}
	want := mgl32.Vec3{1, 1, -1}.Normalize()
	if !corner.Direction.ApproxEqualThreshold(want, 1e-3) {
		t.Errorf("Expected direction %v, got %v", want, corner.Direction)
	}

	if _, ok := physics.RayFromCamera(viewport.NormalizedPointer{}, mgl32.Mat4{}); ok {
		t.Errorf("Expected singular matrix to produce no ray")
	}
}

func TestCasterCast(t *testing.T) {
	cam := testCamera()
	center := newBox("center", mgl32.Vec3{0, 0, 0}, 2)
	objs := []physics.Pickable{center}

	var c physics.Caster
	hits := c.Cast(viewport.NormalizedPointer{X: 0, Y: 0}, cam, objs)
	if len(hits) != 1 {
		t.Fatalf("Expected one hit at viewport center, got %d", len(hits))
	}
	if !mgl32.FloatEqualThreshold(hits[0].Distance, 8.9, 1e-3) {
		t.Errorf("Expected distance 8.9 from the near plane, got %f", hits[0].Distance)
	}

	if hits := c.Cast(viewport.NormalizedPointer{X: 0.9, Y: 0.9}, cam, objs); len(hits) != 0 {
		t.Errorf("Expected miss near the corner, got %d hits", len(hits))
	}
}

func TestCasterFrustumCull(t *testing.T) {
	cam := testCamera()
	// An off-screen pointer at x=3 reaches x=30 at the depth of the origin.
	outside := newBox("outside", mgl32.Vec3{30, 0, 0}, 2)
	inside := newBox("inside", mgl32.Vec3{0, 0, 0}, 2)
	objs := []physics.Pickable{outside, inside}
	offscreen := viewport.NormalizedPointer{X: 3, Y: 0}

	plain := physics.Caster{}
	if hits := plain.Cast(offscreen, cam, objs); len(hits) != 1 || hits[0].Object != outside {
		t.Fatalf("Expected brute-force cast to hit the off-screen box, got %v", hits)
	}

	culled := physics.Caster{FrustumCull: true}
	if hits := culled.Cast(offscreen, cam, objs); len(hits) != 0 {
		t.Errorf("Expected frustum pre-filter to drop the off-screen box, got %d hits", len(hits))
	}
	if hits := culled.Cast(viewport.NormalizedPointer{}, cam, objs); len(hits) != 1 || hits[0].Object != inside {
		t.Errorf("Expected visible box to survive the pre-filter, got %v", hits)
	}
}

type singularCamera struct{}

func (singularCamera) ViewProjection() mgl32.Mat4 { return mgl32.Mat4{} }

func TestCasterSingularCamera(t *testing.T) {
	var c physics.Caster
	objs := []physics.Pickable{newBox("center", mgl32.Vec3{}, 2)}
	if hits := c.Cast(viewport.NormalizedPointer{}, singularCamera{}, objs); len(hits) != 0 {
		t.Errorf("Expected no hits from a singular camera, got %d", len(hits))
	}
}

type nanCamera struct{}

func (nanCamera) ViewProjection() mgl32.Mat4 {
	nan := float32(math.NaN())
	return mgl32.Mat4{nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan}
}

func TestCasterNonFiniteCamera(t *testing.T) {
	var c physics.Caster
	objs := []physics.Pickable{newBox("center", mgl32.Vec3{}, 2)}
	if hits := c.Cast(viewport.NormalizedPointer{}, nanCamera{}, objs); len(hits) != 0 {
		t.Errorf("Expected no hits from a NaN camera, got %v", hits)
	}
	if _, ok := physics.RayFromCamera(viewport.NormalizedPointer{}, nanCamera{}.ViewProjection()); ok {
		t.Error("Expected RayFromCamera to reject a NaN matrix")
	}
}

func TestCasterTopDownCamera(t *testing.T) {
	cam := camera.New(800, 600)
	cam.Position = mgl32.Vec3{0, 30, 0}
	cam.Target = mgl32.Vec3{0, 0, 0}
	cam.NearPlane = 0.1
	cam.FarPlane = 100

	center := newBox("center", mgl32.Vec3{0, 0, 0}, 2)
	far := newBox("far", mgl32.Vec3{50, 0, 50}, 2)

	var c physics.Caster
	hits := c.Cast(viewport.NormalizedPointer{}, cam, []physics.Pickable{far, center})
	if len(hits) != 1 || hits[0].Object != center {
		t.Fatalf("Expected only the box under the camera, got %v", hits)
	}
	if !mgl32.FloatEqualThreshold(hits[0].Distance, 28.9, 1e-3) {
		t.Errorf("Expected distance 28.9 from the near plane, got %f", hits[0].Distance)
	}
}
