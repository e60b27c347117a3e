package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config at path whenever it is written or replaced and
// passes the result to fn. fn runs on the watcher goroutine; callers that
// touch render state must hand the config over to the render thread. The
// returned stop func closes the watcher and waits for the goroutine to exit.
func Watch(path string, fn func(*Config, error)) (stop func(), err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	// Watch the directory: editors often save by renaming over the file,
	// which drops a watch placed on the file itself.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					fn(Load(abs))
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("config watch %s: %v", path, err)
			}
		}
	}()

	return func() {
		w.Close()
		<-done
	}, nil
}
