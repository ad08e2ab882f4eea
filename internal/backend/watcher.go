package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/atomicstack/arcmenu/internal/logging"
	"github.com/atomicstack/arcmenu/internal/logging/events"
	"github.com/fsnotify/fsnotify"
)

// Kind identifies which watched file changed.
type Kind int

const (
	KindMenu Kind = iota
	KindSettings
	KindProfile
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindSettings:
		return "settings"
	case KindProfile:
		return "profile"
	case KindError:
		return "error"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Target is a file whose changes should be reported as Kind.
type Target struct {
	Kind Kind
	Path string
}

// Event reports a settled change to a watched file, or a watcher error.
type Event struct {
	Kind Kind
	Path string
	Err  error
}

// DefaultDebounce coalesces the write bursts editors produce on save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches the parent directories of its targets so that files
// replaced by rename are still seen, and publishes debounced events.
type Watcher struct {
	mu      sync.Mutex
	targets map[string]Kind
	dirs    map[string]bool
	fs      *fsnotify.Watcher

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching targets. Empty paths are ignored; directories
// that cannot be watched are logged and skipped.
func NewWatcher(targets []Target, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		fs:     fsw,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
	}
	w.SetTargets(targets)

	w.wg.Add(1)
	go w.run(newDebouncer(debounce))

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// SetTargets replaces the watched files. Directories no longer holding a
// target are released; directories that cannot be watched are logged and
// skipped.
func (w *Watcher) SetTargets(targets []Target) {
	next := make(map[string]Kind, len(targets))
	dirs := make(map[string]bool)
	for _, target := range targets {
		path := strings.TrimSpace(target.Path)
		if path == "" {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		path = filepath.Clean(path)
		next[path] = target.Kind
		dirs[filepath.Dir(path)] = true
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for dir := range w.dirs {
		if !dirs[dir] {
			_ = w.fs.Remove(dir)
		}
	}
	for dir := range dirs {
		if w.dirs[dir] {
			continue
		}
		if err := w.fs.Add(dir); err != nil {
			err = fmt.Errorf("watch %s: %w", dir, err)
			events.Reload.Error(err)
			logging.Error(err)
			delete(dirs, dir)
		}
	}
	w.targets = next
	w.dirs = dirs
}

func (w *Watcher) kindOf(path string) (Kind, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	kind, ok := w.targets[filepath.Clean(path)]
	return kind, ok
}

// Events returns a channel of change events. It is closed after Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch loop has exited and the events channel is
// closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run(d *debouncer) {
	defer w.wg.Done()
	defer w.fs.Close()
	defer d.stop()

	send := func(evt Event) bool {
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) &&
				!ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			kind, watched := w.kindOf(ev.Name)
			if !watched {
				continue
			}
			d.add(kind, ev.Name)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if !send(Event{Kind: KindError, Err: err}) {
				return
			}
		case <-d.C():
			for _, evt := range d.flush() {
				events.Reload.Event(evt.Kind.String(), evt.Path)
				if !send(evt) {
					return
				}
			}
		}
	}
}
