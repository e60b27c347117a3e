package main

import (
	"log"

	"pickview/internal/config"
	"pickview/internal/graphics/renderer"
	"pickview/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// setupInputHandlers forwards glfw callbacks into q. Pointer coordinates and
// window sizes are in screen units; the framebuffer size only drives GL.
func setupInputHandlers(window *glfw.Window, q *input.Queue, r *renderer.Renderer) {
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		q.PushMove(xpos, ypos)
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			q.PushButton(input.Button(button), true)
		case glfw.Release:
			q.PushButton(input.Button(button), false)
		}
	})

	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		q.PushResize(width, height)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		r.UpdateViewport(fbWidth, fbHeight)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyC:
			log.Printf("frustum pre-filter: %v", config.ToggleFrustumCull())
		case glfw.KeyEqual, glfw.KeyKPAdd:
			config.SetHighlightIntensity(config.GetHighlightIntensity() + 0.1)
		case glfw.KeyMinus, glfw.KeyKPSubtract:
			config.SetHighlightIntensity(config.GetHighlightIntensity() - 0.1)
		}
	})
}

func clearInputHandlers(window *glfw.Window) {
	window.SetCursorPosCallback(nil)
	window.SetMouseButtonCallback(nil)
	window.SetSizeCallback(nil)
	window.SetFramebufferSizeCallback(nil)
	window.SetKeyCallback(nil)
}
