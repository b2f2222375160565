package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/lumieres/internal/bible"
	"github.com/alexanderramin/lumieres/internal/domain"
	"github.com/alexanderramin/lumieres/internal/scheduler"
	"github.com/alexanderramin/lumieres/internal/stats"
)

// ErrNotStarted is returned by operations that need a plan start date.
var ErrNotStarted = errors.New("reading plan not started")

type TrackerService interface {
	Load(ctx context.Context) error
	StartDate() (time.Time, bool)
	Start(ctx context.Context, date time.Time) (int, error)
	Toggle(ctx context.Context, day int, slot domain.Slot) (*DayUpdate, error)
	MarkAllDone(ctx context.Context, day int) (*DayUpdate, error)
	Reset(ctx context.Context) error
	Dashboard(ctx context.Context) (*Dashboard, error)
	Day(ctx context.Context, n int) (*DayView, error)
}

type NotesService interface {
	Load(ctx context.Context) error
	Get(day int, slot domain.Slot) string
	Has(day int, slot domain.Slot) bool
	Set(ctx context.Context, day int, slot domain.Slot, text string) error
	All() domain.Notes
	// Flush fires a pending saved notification now.
	Flush()
}

type ReaderService interface {
	Read(ctx context.Context, day int, slot domain.Slot) (*Reading, error)
	ReadReference(ctx context.Context, ref string) bible.Passage
}

// CompletionListener is told when a day becomes fully validated.
type CompletionListener interface {
	DayCompleted(day int)
}

// DayUpdate is the outcome of a progress mutation.
type DayUpdate struct {
	Day      int
	Progress domain.DayProgress
	// JustCompleted is true when the day was not validated before the
	// mutation and is now.
	JustCompleted bool
}

// Dashboard is everything the overview screen shows for today.
type Dashboard struct {
	Start      time.Time
	Today      time.Time
	CurrentDay int
	Summary    stats.Summary
	Status     scheduler.Status
	Message    string
	Chart      []stats.DailyStat
}

// DayView is one plan day with its readings, progress and notes.
type DayView struct {
	Day      int
	Date     time.Time
	Plan     *domain.PlanDay
	Progress domain.DayProgress
	Stat     stats.DailyStat
}

// Reading is the text of one slot of a plan day.
type Reading struct {
	Day       int
	Slot      domain.Slot
	Reference string
	Passage   bible.Passage
}
