package input

import (
	"sync"
)

// Kind identifies a pointer event delivered to subscribers.
type Kind uint8

const (
	KindPointerMove Kind = iota
	KindPointerClick
	KindResize
)

func (k Kind) String() string {
	switch k {
	case KindPointerMove:
		return "move"
	case KindPointerClick:
		return "click"
	case KindResize:
		return "resize"
	}
	return "unknown"
}

// Button is a physical mouse button. Values match GLFW's button numbering.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Action represents a logical pointer action, not a physical button
type Action int

const (
	ActionSelect Action = iota
	ActionCount         // Sentinel value for array sizing
)

// Event is one pointer or surface event. X and Y are device pixels relative
// to the surface's top-left corner; Width and Height are set for resizes.
type Event struct {
	Kind   Kind
	X, Y   float64
	Width  int
	Height int
}

// Source delivers events to subscribers. The returned func detaches fn.
type Source interface {
	Subscribe(fn func(Event)) (unsubscribe func())
}

type subscriber struct {
	id uint32
	fn func(Event)
}

// Queue collects raw pointer input from the windowing callbacks and
// delivers it to subscribers strictly in arrival order. Buttons are mapped to
// logical actions; a press followed by a release of a button bound to
// ActionSelect becomes a click.
type Queue struct {
	mu sync.Mutex

	pending []Event

	subs   []subscriber
	nextID uint32

	buttonToActions map[Button][]Action
	held            [ActionCount]bool
	lastX, lastY    float64
}

// NewQueue creates a queue with the left button bound to ActionSelect
func NewQueue() *Queue {
	q := &Queue{buttonToActions: make(map[Button][]Action)}
	q.BindButton(ButtonLeft, ActionSelect)
	return q
}

// BindButton binds a mouse button to a logical action
func (q *Queue) BindButton(b Button, action Action) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}
	q.buttonToActions[b] = append(q.buttonToActions[b], action)
}

// UnbindButton removes all action bindings for a button
func (q *Queue) UnbindButton(b Button) {
	q.mu.Lock()
	defer q.mu.Unlock()

	delete(q.buttonToActions, b)
}

// PushMove records a cursor position.
func (q *Queue) PushMove(x, y float64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.lastX, q.lastY = x, y
	q.pending = append(q.pending, Event{Kind: KindPointerMove, X: x, Y: y})
}

// PushButton records a press or release at the last known cursor position.
func (q *Queue) PushButton(b Button, pressed bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, act := range q.buttonToActions[b] {
		if act != ActionSelect {
			continue
		}
		if pressed {
			q.held[act] = true
			continue
		}
		if q.held[act] {
			q.held[act] = false
			q.pending = append(q.pending, Event{Kind: KindPointerClick, X: q.lastX, Y: q.lastY})
		}
	}
}

// PushResize records a new surface size in device pixels.
func (q *Queue) PushResize(width, height int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending = append(q.pending, Event{Kind: KindResize, Width: width, Height: height})
}

// Len returns the number of events waiting for Dispatch.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Subscribe registers fn for every dispatched event.
func (q *Queue) Subscribe(fn func(Event)) func() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextID++
	id := q.nextID
	q.subs = append(q.subs, subscriber{id: id, fn: fn})
	return func() { q.unsubscribe(id) }
}

func (q *Queue) unsubscribe(id uint32) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.subs {
		if q.subs[i].id == id {
			q.subs = append(q.subs[:i], q.subs[i+1:]...)
			return
		}
	}
}

// Subscribers returns the number of attached subscribers.
func (q *Queue) Subscribers() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.subs)
}

// Dispatch delivers every pending event, oldest first, and returns how many
// were delivered. Each event reaches all subscribers before the next one.
// Call it from the render thread once per frame.
func (q *Queue) Dispatch() int {
	q.mu.Lock()
	events := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, ev := range events {
		q.mu.Lock()
		subs := make([]subscriber, len(q.subs))
		copy(subs, q.subs)
		q.mu.Unlock()

		for _, s := range subs {
			s.fn(ev)
		}
	}
	return len(events)
}
