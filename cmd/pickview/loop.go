package main

import (
	"log"
	"time"

	"pickview/internal/config"
	"pickview/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// run drives the render loop until the window closes or stop is closed.
// Pointer events queued by glfw callbacks are handled here, one frame's
// worth at a time and in arrival order.
func (a *app) run(stop <-chan struct{}) {
	for !a.window.ShouldClose() {
		select {
		case <-stop:
			a.window.SetShouldClose(true)
			continue
		case cfg := <-a.reloads:
			log.Println("config changed, reloading scene")
			a.applyReload(cfg)
		default:
		}
		a.tick()
	}
}

func (a *app) tick() {
	profiling.ResetFrame()

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()
	a.syncRuntimeSettings()

	start := time.Now()
	n := a.queue.Dispatch()
	a.reportSlowEvents(n, time.Since(start))

	a.renderer.Render(a.scene, a.picker.Machine().Selected())
	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	if !a.cfg.Window.VSync {
		a.limiter.wait(a.cfg.Window.FPSLimit)
	}
}

// syncRuntimeSettings picks up values changed from the keyboard.
func (a *app) syncRuntimeSettings() {
	a.picker.Caster.FrustumCull = config.GetFrustumCull()
	if intensity := config.GetHighlightIntensity(); intensity != a.fx.Intensity {
		a.fx.SetStyle(a.fx.Color, intensity)
	}
}

func (a *app) reportSlowEvents(n int, took time.Duration) {
	limit := a.cfg.Picking.SlowEventMs
	if n == 0 || limit <= 0 {
		return
	}
	ms := float64(took.Microseconds()) / 1000.0
	if ms > limit {
		log.Printf("pointer events took %.2fms for %d events (limit %.2fms): %s", ms, n, limit, profiling.TopN(3))
	}
}
