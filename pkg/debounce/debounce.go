// Package debounce delays work until input has been quiet for a period and
// tags every run with a generation so stale results can be dropped.
package debounce

import (
	"sync"
	"time"
)

type Debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	timer  *time.Timer
	gen    uint64
	closed bool
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger restarts the quiet period. Only the last fn scheduled before the
// period elapses runs; it receives the generation it was scheduled with.
func (d *Debouncer) Trigger(fn func(gen uint64)) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen

	if d.closed {
		return gen
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, func() {
		if d.Current(gen) {
			fn(gen)
		}
	})

	return gen
}

// Current reports whether gen is still the latest generation.
func (d *Debouncer) Current(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return !d.closed && gen == d.gen
}

// Invalidate makes every outstanding generation stale without scheduling new work.
func (d *Debouncer) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++

	if d.timer != nil {
		d.timer.Stop()
	}
}

func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true

	if d.timer != nil {
		d.timer.Stop()
	}
}
