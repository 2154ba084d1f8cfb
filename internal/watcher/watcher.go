// Package watcher refreshes panes when their directories change on disk.
package watcher

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher observes the directories the panes are showing and invokes
// callbacks when anything inside them changes.
type Watcher struct {
	fsw *fsnotify.Watcher
	log zerolog.Logger

	mu        sync.Mutex
	watched   map[string]struct{}
	callbacks []func(dir string)

	done chan struct{}
}

// New creates a Watcher. Call Start to begin delivering events.
func New(log zerolog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsw:     fsw,
		log:     log,
		watched: make(map[string]struct{}),
		done:    make(chan struct{}),
	}, nil
}

// OnChange registers a callback invoked with the directory that changed.
// Callbacks run on the watcher goroutine.
func (w *Watcher) OnChange(cb func(dir string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, cb)
}

// Update reconciles the watch set to exactly dirs. Directories that cannot
// be watched are logged and skipped.
func (w *Watcher) Update(dirs ...string) {
	want := make(map[string]struct{}, len(dirs))
	for _, d := range dirs {
		want[d] = struct{}{}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for d := range w.watched {
		if _, keep := want[d]; !keep {
			if err := w.fsw.Remove(d); err != nil {
				w.log.Debug().Err(err).Str("dir", d).Msg("failed to unwatch directory")
			}
			delete(w.watched, d)
		}
	}
	for d := range want {
		if _, have := w.watched[d]; have {
			continue
		}
		if err := w.fsw.Add(d); err != nil {
			w.log.Warn().Err(err).Str("dir", d).Msg("failed to watch directory")
			continue
		}
		w.watched[d] = struct{}{}
	}
}

// Start launches the event loop.
func (w *Watcher) Start() {
	go w.eventLoop()
}

// Stop shuts the watcher down and releases its OS resources.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watcher error")
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	dir := filepath.Dir(event.Name)

	w.mu.Lock()
	_, relevant := w.watched[dir]
	callbacks := make([]func(string), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	if !relevant {
		return
	}

	w.log.Debug().Str("dir", dir).Str("op", event.Op.String()).Msg("directory changed")
	for _, cb := range callbacks {
		cb(dir)
	}
}
