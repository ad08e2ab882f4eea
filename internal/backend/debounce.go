package backend

import (
	"sort"
	"time"
)

// debouncer collects changes per kind and releases them once no further
// change has arrived for delay. It is owned by a single goroutine.
type debouncer struct {
	delay   time.Duration
	timer   *time.Timer
	pending map[Kind]string
}

func newDebouncer(delay time.Duration) *debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &debouncer{delay: delay, pending: make(map[Kind]string)}
}

// add records a change and restarts the quiet period.
func (d *debouncer) add(kind Kind, path string) {
	d.pending[kind] = path
	if d.timer == nil {
		d.timer = time.NewTimer(d.delay)
		return
	}
	if !d.timer.Stop() {
		select {
		case <-d.timer.C:
		default:
		}
	}
	d.timer.Reset(d.delay)
}

// C fires when the pending changes have settled. It is nil while nothing is
// pending, which blocks forever in a select.
func (d *debouncer) C() <-chan time.Time {
	if d.timer == nil || len(d.pending) == 0 {
		return nil
	}
	return d.timer.C
}

// flush returns the settled changes ordered by kind and clears them.
func (d *debouncer) flush() []Event {
	out := make([]Event, 0, len(d.pending))
	for kind, path := range d.pending {
		out = append(out, Event{Kind: kind, Path: path})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	d.pending = make(map[Kind]string)
	return out
}

func (d *debouncer) stop() {
	if d.timer != nil {
		d.timer.Stop()
	}
}
