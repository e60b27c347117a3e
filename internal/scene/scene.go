package scene

import "pickview/internal/physics"

// Scene is a flat collection of objects sharing one root transform. Hit
// testing consumes it through Pickables; nothing walks a deeper hierarchy.
type Scene struct {
	Root Transform

	objects   []*Object
	pickables []physics.Pickable
}

func New() *Scene {
	return &Scene{Root: Identity()}
}

// Add appends objects in traversal order and parents them to the root.
func (s *Scene) Add(objs ...*Object) {
	for _, o := range objs {
		o.parent = &s.Root
		s.objects = append(s.objects, o)
	}
	s.pickables = nil
}

// Remove detaches o from the scene. It reports whether o was present.
func (s *Scene) Remove(o *Object) bool {
	for i, cur := range s.objects {
		if cur == o {
			copy(s.objects[i:], s.objects[i+1:])
			s.objects[len(s.objects)-1] = nil
			s.objects = s.objects[:len(s.objects)-1]
			o.parent = nil
			s.pickables = nil
			return true
		}
	}
	return false
}

// Clear removes every object.
func (s *Scene) Clear() {
	for _, o := range s.objects {
		o.parent = nil
	}
	s.objects = nil
	s.pickables = nil
}

func (s *Scene) Len() int {
	return len(s.objects)
}

// Objects returns a copy of the objects in traversal order.
func (s *Scene) Objects() []*Object {
	out := make([]*Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// ByName returns the first object with the given name.
func (s *Scene) ByName(name string) (*Object, bool) {
	for _, o := range s.objects {
		if o.name == name {
			return o, true
		}
	}
	return nil, false
}

// Pickables returns the visible objects as hit-test candidates. The slice is
// cached until the scene changes and must not be modified.
func (s *Scene) Pickables() []physics.Pickable {
	if s.pickables != nil {
		return s.pickables
	}
	s.pickables = make([]physics.Pickable, 0, len(s.objects))
	for _, o := range s.objects {
		if o.Visible {
			s.pickables = append(s.pickables, o)
		}
	}
	return s.pickables
}

// Invalidate drops the cached candidate list after visibility changes.
func (s *Scene) Invalidate() {
	s.pickables = nil
}
