package main

import (
	"fmt"
	"log"

	"pickview/internal/camera"
	"pickview/internal/config"
	"pickview/internal/graphics/renderables/boxes"
	"pickview/internal/graphics/renderables/wireframe"
	"pickview/internal/graphics/renderer"
	"pickview/internal/highlight"
	"pickview/internal/input"
	"pickview/internal/interaction"
	"pickview/internal/scene"
	"pickview/internal/viewport"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow(wc config.WindowConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(wc.Width, wc.Height, wc.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, err
	}

	if wc.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return window, nil
}

// app holds the picking session for one loaded config. A reload tears the
// session down and builds a new one; the window and renderer survive.
type app struct {
	window   *glfw.Window
	renderer *renderer.Renderer
	queue    *input.Queue
	hand     *glfw.Cursor
	limiter  frameLimiter

	cfg    *config.Config
	scene  *scene.Scene
	cam    *camera.Camera
	fx     *highlight.Effector
	picker *interaction.Picker

	reloads chan *config.Config
}

func newApp(window *glfw.Window, cfg *config.Config) (*app, error) {
	a := &app{
		window:  window,
		queue:   input.NewQueue(),
		hand:    glfw.CreateStandardCursor(glfw.HandCursor),
		cam:     cfg.NewCamera(),
		reloads: make(chan *config.Config, 1),
	}

	r, err := renderer.NewRenderer(a.cam, boxes.NewBoxes(), wireframe.NewWireframe())
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	a.renderer = r
	fbW, fbH := window.GetFramebufferSize()
	r.UpdateViewport(fbW, fbH)

	setupInputHandlers(window, a.queue, r)
	a.load(cfg)
	return a, nil
}

// load builds the scene, camera settings and picker for cfg.
func (a *app) load(cfg *config.Config) {
	a.cfg = cfg
	a.scene = cfg.BuildScene()
	cfg.ApplyCamera(a.cam)

	a.fx = highlight.New()
	a.fx.SetStyle(cfg.HighlightColor(), config.GetHighlightIntensity())

	winW, winH := a.window.GetSize()
	a.cam.SetViewport(winW, winH)
	a.picker = interaction.NewPicker(viewport.New(winW, winH), a.cam, a.scene, a.fx)
	a.picker.Caster.FrustumCull = config.GetFrustumCull()
	a.picker.Attach(a.queue)

	m := a.picker.Machine()
	m.OnHoverChanged(a.onHover)
	m.OnSelectionChanged(a.onSelection)
	a.window.SetTitle(cfg.Window.Title)

	log.Printf("scene loaded: %d objects", a.scene.Len())
}

func (a *app) onHover(ev interaction.HoverEvent) {
	if ev.Current != nil {
		a.window.SetCursor(a.hand)
	} else {
		a.window.SetCursor(nil)
	}
}

func (a *app) onSelection(ev interaction.SelectionEvent) {
	if ev.Current == nil {
		a.window.SetTitle(a.cfg.Window.Title)
		if ev.Previous != nil {
			log.Println("selection cleared")
		}
		return
	}
	label := fmt.Sprintf("%s is selected", ev.Name())
	a.window.SetTitle(a.cfg.Window.Title + " - " + label)
	log.Printf("%s (click at %.0f, %.0f)", label, ev.X, ev.Y)
}

// queueReload runs on the config watcher goroutine. Only the latest config is
// kept; the render loop picks it up on its next frame.
func (a *app) queueReload(cfg *config.Config, err error) {
	if err != nil {
		log.Printf("config reload: %v", err)
		return
	}
	select {
	case <-a.reloads:
	default:
	}
	a.reloads <- cfg
}

func (a *app) applyReload(cfg *config.Config) {
	a.picker.Teardown()
	a.window.SetCursor(nil)
	config.ApplyRuntime(cfg)
	a.load(cfg)
}

// teardown reverts any highlight, detaches the picker and releases GL and
// glfw resources. It runs on the main thread.
func (a *app) teardown() {
	a.picker.Teardown()
	clearInputHandlers(a.window)
	a.renderer.Dispose()
	if a.hand != nil {
		a.hand.Destroy()
	}
}
