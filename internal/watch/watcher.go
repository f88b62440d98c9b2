// Package watch re-runs a callback whenever a configuration file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/crcsim/internal/ports"
)

// DefaultDebounceDelay is the quiet period after the last change event before
// the callback fires.
const DefaultDebounceDelay = 100 * time.Millisecond

// Watcher monitors a single file. Editors often replace files with a rename,
// so the parent directory is watched and events are filtered by base name.
type Watcher struct {
	mu sync.Mutex

	path          string
	debounceDelay time.Duration
	logger        ports.Logger
	onChange      func(ctx context.Context)

	debounce *time.Timer
	trigger  chan struct{}
}

// New creates a Watcher for path. onChange runs on the goroutine that called
// Run, one invocation at a time.
func New(path string, debounceDelay time.Duration, logger ports.Logger, onChange func(ctx context.Context)) *Watcher {
	if debounceDelay <= 0 {
		debounceDelay = DefaultDebounceDelay
	}
	return &Watcher{
		path:          path,
		debounceDelay: debounceDelay,
		logger:        logger,
		onChange:      onChange,
		trigger:       make(chan struct{}, 1),
	}
}

// Run watches until ctx is canceled. It returns ctx.Err() on cancellation and
// an error if the watch cannot be set up.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.logger.Info("watching config file", ports.String("path", w.path))

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			w.stopDebounce()
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug("config file changed",
				ports.String("path", event.Name),
				ports.String("op", event.Op.String()),
			)
			w.debounceTrigger()

		case <-w.trigger:
			w.onChange(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("config watcher error", ports.Err(err))
		}
	}
}

func (w *Watcher) debounceTrigger() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}

	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		select {
		case w.trigger <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
}
