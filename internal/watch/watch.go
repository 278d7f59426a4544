// Package watch re-runs an interpreter run whenever its source file
// changes on disk.
package watch

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Run watches path and calls onChange once per write or create event,
// serially - onChange must return before the next event is handled, so a
// run is never interrupted by the one that triggered it. Run returns an
// error only if the watcher cannot be set up; otherwise it blocks until
// the watcher's channels close. Both onChange errors and watcher errors
// are forwarded to onError rather than stopping the watch.
func Run(path string, onChange func() error, onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch: watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := onChange(); err != nil {
				onError(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onError(fmt.Errorf("watch: %w", err))
		}
	}
}
