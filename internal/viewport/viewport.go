package viewport

import (
	"errors"
	"fmt"
)

// ErrDegenerateViewport is returned when a viewport has no area to map onto.
var ErrDegenerateViewport = errors.New("degenerate viewport")

// Viewport is the rendering surface rectangle in device pixels, origin top-left.
type Viewport struct {
	X, Y          float64
	Width, Height float64
}

// New returns a viewport of the given size anchored at the origin.
func New(width, height int) Viewport {
	return Viewport{Width: float64(width), Height: float64(height)}
}

// Valid reports whether the viewport has a positive area.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Contains reports whether the device point lies on the viewport rectangle.
func (v Viewport) Contains(px, py float64) bool {
	return px >= v.X && px <= v.X+v.Width &&
		py >= v.Y && py <= v.Y+v.Height
}

// AspectRatio returns width / height, or 0 for a degenerate viewport.
func (v Viewport) AspectRatio() float32 {
	if !v.Valid() {
		return 0
	}
	return float32(v.Width / v.Height)
}

// NormalizedPointer is a pointer position in [-1, 1] on both axes with +Y up.
type NormalizedPointer struct {
	X, Y float32
}

// Map converts device pointer coordinates to normalized viewport coordinates.
// Points outside the viewport map outside [-1, 1]; nothing is clamped.
func Map(px, py float64, v Viewport) (NormalizedPointer, error) {
	if !v.Valid() {
		return NormalizedPointer{}, fmt.Errorf("map pointer (%g, %g): %w: %gx%g", px, py, ErrDegenerateViewport, v.Width, v.Height)
	}
	nx := ((px-v.X)/v.Width)*2 - 1
	ny := -(((py-v.Y)/v.Height)*2 - 1)
	return NormalizedPointer{X: float32(nx), Y: float32(ny)}, nil
}
