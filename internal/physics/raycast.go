package physics

import (
	"cmp"
	"slices"

	"pickview/internal/profiling"
	"pickview/internal/viewport"

	"github.com/go-gl/mathgl/mgl32"
)

// Pickable is a scene object the ray caster can test. Bounds are in the
// object's local space; Transform maps local space to world space.
type Pickable interface {
	Name() string
	Clickable() bool
	Bounds() AABB
	Transform() mgl32.Mat4
}

// Camera supplies the combined projection*view matrix used to build pick rays.
type Camera interface {
	ViewProjection() mgl32.Mat4
}

// Hit is one ray/object intersection.
type Hit struct {
	Object   Pickable
	Distance float32    // from the ray origin, in world units
	Point    mgl32.Vec3 // world-space contact point
}

// Caster turns normalized pointer positions into sorted hit lists.
type Caster struct {
	// FrustumCull skips objects whose world bounds lie outside the view
	// frustum before running the ray test.
	FrustumCull bool
}

// Cast builds a pick ray for p through cam and intersects it with objects.
// Hits are sorted nearest first; hits at equal distance keep the order of
// objects. No intersection yields an empty result.
func (c *Caster) Cast(p viewport.NormalizedPointer, cam Camera, objects []Pickable) []Hit {
	defer profiling.Track("physics.Cast")()

	clip := cam.ViewProjection()
	ray, ok := RayFromCamera(p, clip)
	if !ok {
		return nil
	}
	if !c.FrustumCull {
		return CastRay(ray, objects)
	}

	frustum := NewFrustum(clip)
	var hits []Hit
	for _, obj := range objects {
		m := obj.Transform()
		if !frustum.IntersectsAABB(obj.Bounds().Transform(m)) {
			continue
		}
		if h, ok := intersect(ray, obj, m); ok {
			hits = append(hits, h)
		}
	}
	sortHits(hits)
	return hits
}

// CastRay intersects ray with every object, nearest hit first.
func CastRay(ray Ray, objects []Pickable) []Hit {
	var hits []Hit
	for _, obj := range objects {
		if h, ok := intersect(ray, obj, obj.Transform()); ok {
			hits = append(hits, h)
		}
	}
	sortHits(hits)
	return hits
}

// intersect tests the ray against the object's oriented box by moving the ray
// into local space. The direction is not renormalized there, so the local slab
// parameter is also the world distance along the unit world ray.
func intersect(ray Ray, obj Pickable, m mgl32.Mat4) (Hit, bool) {
	if m.Det() == 0 {
		return Hit{}, false
	}
	local := ray.Transform(m.Inv())
	t, ok := obj.Bounds().IntersectRay(local)
	if !ok {
		return Hit{}, false
	}
	return Hit{Object: obj, Distance: t, Point: ray.At(t)}, true
}

func sortHits(hits []Hit) {
	slices.SortStableFunc(hits, func(a, b Hit) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
}
