package store

import (
	"sync"
	"time"

	"github.com/aretw0/quill/pkg/core"
)

// debouncer collapses bursts of filesystem events per path: only the
// last event within the interval is emitted. Editors and atomic renames
// produce several events for one logical change.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timers   map[string]*time.Timer
	wg       sync.WaitGroup
	stopped  bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{
		interval: interval,
		timers:   make(map[string]*time.Timer),
	}
}

// add schedules the event for emission, replacing any pending event for
// the same path.
func (d *debouncer) add(event core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if t, ok := d.timers[event.Path]; ok && t.Stop() {
		d.wg.Done()
	}

	d.wg.Add(1)
	d.timers[event.Path] = time.AfterFunc(d.interval, func() {
		defer d.wg.Done()
		d.mu.Lock()
		delete(d.timers, event.Path)
		stopped := d.stopped
		d.mu.Unlock()
		if stopped {
			return
		}
		emit(event)
	})
}

// stopAndWait stops accepting new events, cancels pending timers, and
// waits for in-flight emissions to finish (bounded by timeout).
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for path, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, path)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
