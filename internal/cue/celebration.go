package cue

import (
	"sync"
	"time"

	"github.com/alexanderramin/lumieres/internal/domain"
	"github.com/alexanderramin/lumieres/internal/motivation"
)

// Timings are the delays of the completion sequence.
type Timings struct {
	Advance time.Duration // completion to moving the view to the next day
	Overlay time.Duration // advance (or completion on the last day) to overlay
	Dismiss time.Duration // overlay open to auto-close
}

// DefaultTimings match the reading screen.
var DefaultTimings = Timings{
	Advance: 1500 * time.Millisecond,
	Overlay: 300 * time.Millisecond,
	Dismiss: 5000 * time.Millisecond,
}

// Overlay is the motivation shown after a day is completed.
type Overlay struct {
	Day       int
	Message   string
	Reference string
}

// Hooks connect the sequence to a view. Nil hooks are skipped.
type Hooks struct {
	ViewedDay    func() int
	SetViewedDay func(day int)
	Open         func(Overlay)
	Close        func()
}

// Celebration runs the "day completed" sequence: advance the view to the
// next day if it still shows the completed one, then open the motivation
// overlay, then close it. A new completion replaces any pending step.
type Celebration struct {
	source  motivation.Source
	hooks   Hooks
	timings Timings

	advance Slot
	overlay Slot
	dismiss Slot

	mu     sync.Mutex
	idle   *sync.Cond
	active int
}

func NewCelebration(source motivation.Source, hooks Hooks, timings Timings) *Celebration {
	c := &Celebration{source: source, hooks: hooks, timings: timings}
	c.idle = sync.NewCond(&c.mu)
	return c
}

// DayCompleted starts the sequence for day.
func (c *Celebration) DayCompleted(day int) {
	c.cancel(&c.advance)
	c.cancel(&c.overlay)

	if day >= domain.TotalDays {
		c.schedule(&c.overlay, c.timings.Overlay, func() { c.open(day) })
		return
	}
	c.schedule(&c.advance, c.timings.Advance, func() {
		if c.hooks.ViewedDay != nil && c.hooks.SetViewedDay != nil && c.hooks.ViewedDay() == day {
			c.hooks.SetViewedDay(day + 1)
		}
		c.schedule(&c.overlay, c.timings.Overlay, func() { c.open(day) })
	})
}

// Dismiss closes the overlay now.
func (c *Celebration) Dismiss() {
	if c.cancel(&c.dismiss) && c.hooks.Close != nil {
		c.hooks.Close()
	}
}

// Stop cancels every pending step without running it.
func (c *Celebration) Stop() {
	c.cancel(&c.advance)
	c.cancel(&c.overlay)
	c.cancel(&c.dismiss)
}

// Wait blocks until no step is pending.
func (c *Celebration) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.active > 0 {
		c.idle.Wait()
	}
}

func (c *Celebration) open(day int) {
	m := c.source.ForDay(day)
	if c.hooks.Open != nil {
		c.hooks.Open(Overlay{Day: day, Message: m.Text, Reference: m.Reference})
	}
	c.schedule(&c.dismiss, c.timings.Dismiss, func() {
		if c.hooks.Close != nil {
			c.hooks.Close()
		}
	})
}

// schedule runs fn in slot and keeps the pending-step count.
func (c *Celebration) schedule(slot *Slot, delay time.Duration, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !slot.Schedule(delay, func() {
		defer c.finish()
		fn()
	}) {
		c.active++
	}
}

func (c *Celebration) cancel(slot *Slot) bool {
	if !slot.Cancel() {
		return false
	}
	c.finish()
	return true
}

func (c *Celebration) finish() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active--
	if c.active == 0 {
		c.idle.Broadcast()
	}
}
