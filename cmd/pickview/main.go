package main

import (
	"flag"
	"log"
	"runtime"
	"sync"
	"time"

	"pickview/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "scene file (.toml, .yaml); the built-in demo when empty")
	watch := flag.Bool("watch", false, "reload the scene file when it changes")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	config.ApplyRuntime(cfg)

	// Signals arrive on closer's goroutine, but GL and glfw teardown must run
	// here. The bound cleanup asks the loop to stop and waits for it.
	stop := make(chan struct{})
	done := make(chan struct{})
	var stopOnce sync.Once
	closer.Bind(func() {
		stopOnce.Do(func() { close(stop) })
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			log.Println("shutdown: render loop did not stop in time")
		}
	})

	if err := glfw.Init(); err != nil {
		panic(err)
	}

	window, err := setupWindow(cfg.Window)
	if err != nil {
		panic(err)
	}

	app, err := newApp(window, cfg)
	if err != nil {
		panic(err)
	}

	stopWatch := func() {}
	if *watch && *configPath != "" {
		if fn, err := config.Watch(*configPath, app.queueReload); err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			stopWatch = fn
		}
	}

	app.run(stop)
	stopWatch()
	app.teardown()
	window.Destroy()
	glfw.Terminate()

	close(done)
	stopOnce.Do(func() { close(stop) })
	closer.Close()
}
