package cue

import (
	"sync"
	"time"
)

// Debouncer runs the latest triggered action once no new trigger arrived
// for its delay.
type Debouncer struct {
	delay time.Duration
	slot  Slot

	mu      sync.Mutex
	pending func()
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger replaces the pending action with fn.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	d.pending = fn
	d.mu.Unlock()
	d.slot.Schedule(d.delay, d.run)
}

// Flush runs the pending action now, if any.
func (d *Debouncer) Flush() {
	if d.slot.Cancel() {
		d.run()
	}
}

// Cancel drops the pending action.
func (d *Debouncer) Cancel() {
	d.slot.Cancel()
	d.mu.Lock()
	d.pending = nil
	d.mu.Unlock()
}

func (d *Debouncer) run() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
}
