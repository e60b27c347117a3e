package interaction

import (
	"log"

	"pickview/internal/input"
	"pickview/internal/physics"
	"pickview/internal/profiling"
	"pickview/internal/viewport"
)

// Candidates supplies the objects eligible for hit testing, in traversal order.
type Candidates interface {
	Pickables() []physics.Pickable
}

// resizer is implemented by cameras that track the surface aspect ratio.
type resizer interface {
	SetViewport(width, height int)
}

// Picker ties pointer input to the interaction machine: it maps device
// coordinates through the viewport, casts through the camera and feeds the
// sorted hits to the machine.
type Picker struct {
	Caster physics.Caster

	vp       viewport.Viewport
	cam      physics.Camera
	objs     Candidates
	machine  *Machine
	detach   []func()
	lastHits []physics.Hit
}

// NewPicker wires a picker over objs as seen through cam. hl receives the
// apply/revert calls for hover changes.
func NewPicker(vp viewport.Viewport, cam physics.Camera, objs Candidates, hl Highlighter) *Picker {
	return &Picker{
		vp:      vp,
		cam:     cam,
		objs:    objs,
		machine: NewMachine(hl),
	}
}

// Machine returns the state machine driven by the picker.
func (p *Picker) Machine() *Machine {
	return p.machine
}

// Viewport returns the surface rectangle pointer events are mapped against.
func (p *Picker) Viewport() viewport.Viewport {
	return p.vp
}

// SetViewport replaces the surface rectangle. A camera that tracks the aspect
// ratio is updated as well.
func (p *Picker) SetViewport(vp viewport.Viewport) {
	p.vp = vp
	if r, ok := p.cam.(resizer); ok {
		r.SetViewport(int(vp.Width), int(vp.Height))
	}
}

// LastHits returns the full sorted hit list of the latest pointer move,
// including non-clickable objects.
func (p *Picker) LastHits() []physics.Hit {
	return p.lastHits
}

// PointerMove picks at device position (x, y) and updates hover. On a
// degenerate viewport it returns the error and leaves the state untouched.
func (p *Picker) PointerMove(x, y float64) error {
	if p.machine.Closed() {
		return nil
	}
	np, err := viewport.Map(x, y, p.vp)
	if err != nil {
		return err
	}

	defer profiling.Track("interaction.PointerMove")()
	p.lastHits = p.Caster.Cast(np, p.cam, p.objs.Pickables())
	p.machine.PointerMoved(p.lastHits)
	return nil
}

// PointerClick commits the current hover as the selection.
func (p *Picker) PointerClick(x, y float64) {
	p.machine.PointerClicked(x, y)
}

// Handle routes one input event.
func (p *Picker) Handle(ev input.Event) {
	switch ev.Kind {
	case input.KindPointerMove:
		if err := p.PointerMove(ev.X, ev.Y); err != nil {
			log.Printf("pick skipped: %v", err)
		}
	case input.KindPointerClick:
		p.PointerClick(ev.X, ev.Y)
	case input.KindResize:
		p.SetViewport(viewport.New(ev.Width, ev.Height))
	}
}

// Attach subscribes the picker to src. Teardown detaches it again.
func (p *Picker) Attach(src input.Source) {
	if p.machine.Closed() {
		return
	}
	p.detach = append(p.detach, src.Subscribe(p.Handle))
}

// Teardown reverts any hover highlight and then detaches from every source.
// Safe to call more than once.
func (p *Picker) Teardown() {
	p.machine.Teardown()
	for _, fn := range p.detach {
		fn()
	}
	p.detach = nil
	p.lastHits = nil
}
