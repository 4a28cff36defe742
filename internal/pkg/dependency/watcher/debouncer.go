package watcher

import (
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// debouncer collects keys and flushes them, when no key has been added during the window.
// Flushes are serialized, onFlush must not call Stop.
type debouncer struct {
	clock   clockwork.Clock
	window  time.Duration
	onFlush func(keys []string)

	flushLock sync.Mutex
	lock      sync.Mutex
	keys    map[string]bool
	timer   clockwork.Timer
	stopped bool
}

func newDebouncer(clock clockwork.Clock, window time.Duration, onFlush func(keys []string)) *debouncer {
	return &debouncer{clock: clock, window: window, onFlush: onFlush, keys: make(map[string]bool)}
}

func (d *debouncer) Add(key string) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.stopped {
		return
	}

	d.keys[key] = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.window, d.flush)
}

// Stop discards pending keys and waits for a running flush, no flush is called after Stop returns.
func (d *debouncer) Stop() {
	d.lock.Lock()
	d.stopped = true
	d.keys = make(map[string]bool)
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.lock.Unlock()

	d.flushLock.Lock()
	d.flushLock.Unlock() // nolint: staticcheck
}

func (d *debouncer) flush() {
	d.flushLock.Lock()
	defer d.flushLock.Unlock()

	d.lock.Lock()
	if d.stopped || len(d.keys) == 0 {
		d.lock.Unlock()
		return
	}

	keys := make([]string, 0, len(d.keys))
	for k := range d.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	d.keys = make(map[string]bool)
	d.timer = nil
	d.lock.Unlock()

	d.onFlush(keys)
}
