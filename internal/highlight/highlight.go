package highlight

import (
	"log"

	"pickview/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// HoverIntensity is the emissive intensity of an applied highlight.
	HoverIntensity = 0.9
	// BaselineIntensity is the emissive intensity restored by Revert.
	BaselineIntensity = 1.0
)

var (
	// HoverColor is the default highlight colour (0xff0000).
	HoverColor = mgl32.Vec3{1, 0, 0}
	// Baseline is the emissive colour restored by Revert.
	Baseline = mgl32.Vec3{0, 0, 0}
)

// Emissive is implemented by objects whose material can glow.
type Emissive interface {
	SetEmissive(color mgl32.Vec3, intensity float32)
	Emissive() (mgl32.Vec3, float32)
}

// Effector applies and reverts the hover highlight. At most one object
// carries the highlight at a time.
type Effector struct {
	Color     mgl32.Vec3
	Intensity float32

	active physics.Pickable
}

// New returns an effector using the default hover colour and intensity.
func New() *Effector {
	return &Effector{Color: HoverColor, Intensity: HoverIntensity}
}

// Apply makes obj glow with the effector's colour. Applying twice leaves the
// material as a single Apply would. If another object still carries the
// highlight it is reverted first.
func (e *Effector) Apply(obj physics.Pickable) {
	if obj == nil {
		return
	}
	if e.active != nil && e.active != obj {
		log.Printf("highlight: %s still active while applying to %s, reverting", e.active.Name(), obj.Name())
		e.Revert(e.active)
	}
	em, ok := obj.(Emissive)
	if !ok {
		return
	}
	em.SetEmissive(e.Color, e.Intensity)
	e.active = obj
}

// Revert resets obj's glow to the black baseline at full intensity. It does
// not restore any emissive colour the object had before Apply.
func (e *Effector) Revert(obj physics.Pickable) {
	if obj == nil {
		return
	}
	if em, ok := obj.(Emissive); ok {
		em.SetEmissive(Baseline, BaselineIntensity)
	}
	if e.active == obj {
		e.active = nil
	}
}

// Active returns the object currently carrying the highlight, or nil.
func (e *Effector) Active() physics.Pickable {
	return e.active
}

// SetStyle changes the highlight colour and intensity. The active object, if
// any, is re-applied with the new style.
func (e *Effector) SetStyle(color mgl32.Vec3, intensity float32) {
	e.Color = color
	e.Intensity = intensity
	if e.active != nil {
		if em, ok := e.active.(Emissive); ok {
			em.SetEmissive(e.Color, e.Intensity)
		}
	}
}
