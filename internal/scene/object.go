package scene

import (
	"pickview/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// Material holds the surface properties the renderer reads each frame.
type Material struct {
	Color             mgl32.Vec3
	Emissive          mgl32.Vec3
	EmissiveIntensity float32
	Transparent       bool
}

// NewMaterial returns a material with the given base colour and no glow.
func NewMaterial(color mgl32.Vec3) Material {
	return Material{Color: color, EmissiveIntensity: 1}
}

// Transform is a position, Euler rotation (degrees, applied X then Y then Z)
// and scale.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// Identity returns the transform that leaves points unchanged.
func Identity() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Matrix returns T * Rx * Ry * Rz * S.
func (t Transform) Matrix() mgl32.Mat4 {
	scale := t.Scale
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.Rotation.X()))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.Rotation.Y()))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotation.Z()))).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// Object is a named, pickable box in the scene.
type Object struct {
	name      string
	clickable bool
	bounds    physics.AABB
	parent    *Transform

	Local    Transform
	Material Material
	Visible  bool
}

// NewBox creates a clickable box of the given size centred on position.
func NewBox(name string, position, size, color mgl32.Vec3) *Object {
	local := Identity()
	local.Position = position
	return &Object{
		name:      name,
		clickable: true,
		bounds:    physics.BoxFromCenterSize(mgl32.Vec3{}, size),
		Local:     local,
		Material:  NewMaterial(color),
		Visible:   true,
	}
}

func (o *Object) Name() string {
	return o.name
}

func (o *Object) Clickable() bool {
	return o.clickable
}

// SetClickable marks the object as interactive or passive scenery.
func (o *Object) SetClickable(clickable bool) *Object {
	o.clickable = clickable
	return o
}

// Bounds returns the local-space bounding box.
func (o *Object) Bounds() physics.AABB {
	return o.bounds
}

// Transform returns the local-to-world matrix, including the parent group.
func (o *Object) Transform() mgl32.Mat4 {
	m := o.Local.Matrix()
	if o.parent != nil {
		m = o.parent.Matrix().Mul4(m)
	}
	return m
}

// WorldBounds returns the world-space box enclosing the object.
func (o *Object) WorldBounds() physics.AABB {
	return o.bounds.Transform(o.Transform())
}

// SetEmissive sets the glow colour and its intensity.
func (o *Object) SetEmissive(color mgl32.Vec3, intensity float32) {
	o.Material.Emissive = color
	o.Material.EmissiveIntensity = intensity
}

// Emissive returns the glow colour and its intensity.
func (o *Object) Emissive() (mgl32.Vec3, float32) {
	return o.Material.Emissive, o.Material.EmissiveIntensity
}

func (o *Object) String() string {
	return o.name
}
