package interaction

import (
	"pickview/internal/physics"
)

// Phase names the interaction state derived from the hovered and selected objects.
type Phase int

const (
	PhaseIdle     Phase = iota // nothing hovered, nothing selected
	PhaseHovering              // something hovered, nothing selected
	PhaseSelected              // something selected, hover is independent
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseHovering:
		return "hovering"
	case PhaseSelected:
		return "selected"
	}
	return "unknown"
}

// State is the hover/selection record. Either field may be nil.
type State struct {
	Hovered  physics.Pickable
	Selected physics.Pickable
}

// Phase reports which of idle, hovering or selected s is in.
func (s State) Phase() Phase {
	switch {
	case s.Selected != nil:
		return PhaseSelected
	case s.Hovered != nil:
		return PhaseHovering
	}
	return PhaseIdle
}

// Highlighter applies and reverts the hover highlight on one object.
type Highlighter interface {
	Apply(obj physics.Pickable)
	Revert(obj physics.Pickable)
}

// Machine owns the interaction state. Hover follows the nearest clickable hit
// of the latest pointer move; a click copies hover into selection. It is not
// safe for concurrent use: events are handled one at a time in delivery order.
type Machine struct {
	state    State
	hl       Highlighter
	handlers handlerRegistry
	closed   bool
}

// NewMachine starts a machine in the idle state.
func NewMachine(hl Highlighter) *Machine {
	return &Machine{hl: hl}
}

// State returns a copy of the current hover/selection record.
func (m *Machine) State() State {
	return m.state
}

// Hovered returns the hovered object, or nil.
func (m *Machine) Hovered() physics.Pickable {
	return m.state.Hovered
}

// Selected returns the selected object, or nil.
func (m *Machine) Selected() physics.Pickable {
	return m.state.Selected
}

// Closed reports whether Teardown has run.
func (m *Machine) Closed() bool {
	return m.closed
}

// OnHoverChanged registers fn to run whenever the hovered object changes.
func (m *Machine) OnHoverChanged(fn func(HoverEvent)) CallbackHandle {
	return m.handlers.addHover(fn)
}

// OnSelectionChanged registers fn to run after every click.
func (m *Machine) OnSelectionChanged(fn func(SelectionEvent)) CallbackHandle {
	return m.handlers.addSelection(fn)
}

// FirstClickable returns the nearest hit whose object is clickable. Hits must
// be sorted nearest first; non-clickable hits are skipped, not ranked.
func FirstClickable(hits []physics.Hit) (physics.Hit, bool) {
	for _, h := range hits {
		if h.Object != nil && h.Object.Clickable() {
			return h, true
		}
	}
	return physics.Hit{}, false
}

// PointerMoved updates hover from a pick result. The previous hover target
// is reverted before the next one is highlighted, so two objects never glow
// at once.
func (m *Machine) PointerMoved(hits []physics.Hit) {
	if m.closed {
		return
	}
	var next physics.Pickable
	if h, ok := FirstClickable(hits); ok {
		next = h.Object
	}
	if next == m.state.Hovered {
		return
	}

	prev := m.state.Hovered
	if prev != nil {
		m.hl.Revert(prev)
	}
	m.state.Hovered = next
	if next != nil {
		m.hl.Apply(next)
	}
	m.handlers.fireHover(HoverEvent{Previous: prev, Current: next})
}

// PointerClicked selects the hovered object, or clears the selection when
// nothing is hovered. x and y are the device coordinates of the click.
func (m *Machine) PointerClicked(x, y float64) {
	if m.closed {
		return
	}
	prev := m.state.Selected
	m.state.Selected = m.state.Hovered
	m.handlers.fireSelection(SelectionEvent{Previous: prev, Current: m.state.Selected, X: x, Y: y})
}

// Teardown reverts any active hover highlight, drops every callback and stops
// the machine from handling further events. It is safe to call more than once.
func (m *Machine) Teardown() {
	if m.closed {
		return
	}
	m.closed = true
	if m.state.Hovered != nil {
		m.hl.Revert(m.state.Hovered)
	}
	m.state = State{}
	m.handlers.clear()
}
