package interaction

import (
	"slices"

	"pickview/internal/physics"
)

// HoverEvent is delivered when the hovered object changes.
type HoverEvent struct {
	Previous physics.Pickable // nil when nothing was hovered
	Current  physics.Pickable // nil when the pointer left every clickable object
}

// SelectionEvent is delivered on every click. Current is nil when the click
// cleared the selection.
type SelectionEvent struct {
	Previous physics.Pickable
	Current  physics.Pickable

	// Device coordinates of the click, for placing a detail popup.
	X, Y float64
}

// Name returns the identity of the selected object, or "" when cleared.
func (e SelectionEvent) Name() string {
	if e.Current == nil {
		return ""
	}
	return e.Current.Name()
}

type eventKind uint8

const (
	eventHover eventKind = iota
	eventSelection
)

type hoverHandler struct {
	id uint32
	fn func(HoverEvent)
}

type selectionHandler struct {
	id uint32
	fn func(SelectionEvent)
}

type handlerRegistry struct {
	hover     []hoverHandler
	selection []selectionHandler
	nextID    uint32
}

// CallbackHandle removes a registered notification callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind eventKind
}

// Remove unregisters the callback. Removing twice is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case eventHover:
		for i := range h.reg.hover {
			if h.reg.hover[i].id == h.id {
				h.reg.hover = append(h.reg.hover[:i], h.reg.hover[i+1:]...)
				return
			}
		}
	case eventSelection:
		for i := range h.reg.selection {
			if h.reg.selection[i].id == h.id {
				h.reg.selection = append(h.reg.selection[:i], h.reg.selection[i+1:]...)
				return
			}
		}
	}
}

func (r *handlerRegistry) addHover(fn func(HoverEvent)) CallbackHandle {
	r.nextID++
	r.hover = append(r.hover, hoverHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: eventHover}
}

func (r *handlerRegistry) addSelection(fn func(SelectionEvent)) CallbackHandle {
	r.nextID++
	r.selection = append(r.selection, selectionHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: eventSelection}
}

func (r *handlerRegistry) fireHover(ev HoverEvent) {
	// Handlers may remove themselves while firing
	for _, h := range slices.Clone(r.hover) {
		h.fn(ev)
	}
}

func (r *handlerRegistry) fireSelection(ev SelectionEvent) {
	for _, h := range slices.Clone(r.selection) {
		h.fn(ev)
	}
}

func (r *handlerRegistry) clear() {
	r.hover = nil
	r.selection = nil
}
