// Package cue sequences delayed UI cues with single-slot, replace-pending
// timers.
package cue

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Slot holds at most one pending delayed task. Scheduling replaces the
// pending task; a timer that fires after being replaced does nothing.
type Slot struct {
	mu    sync.Mutex
	timer *time.Timer
	token uuid.UUID
}

// Schedule runs fn after delay, cancelling any pending task. It reports
// whether a pending task was replaced.
func (s *Slot) Schedule(delay time.Duration, fn func()) (replaced bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced = s.stopLocked()
	token := uuid.New()
	s.token = token
	s.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		if s.token != token {
			s.mu.Unlock()
			return
		}
		s.token = uuid.Nil
		s.timer = nil
		s.mu.Unlock()
		fn()
	})
	return replaced
}

// Cancel drops the pending task and reports whether there was one.
func (s *Slot) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopLocked()
}

// Pending reports whether a task is waiting to run.
func (s *Slot) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != uuid.Nil
}

func (s *Slot) stopLocked() bool {
	if s.token == uuid.Nil {
		return false
	}
	s.timer.Stop()
	s.timer = nil
	s.token = uuid.Nil
	return true
}
