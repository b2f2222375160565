package scheduler

import (
	"time"

	"github.com/alexanderramin/lumieres/internal/dates"
	"github.com/alexanderramin/lumieres/internal/domain"
	"github.com/alexanderramin/lumieres/internal/stats"
)

type StatusInput struct {
	Start time.Time
	Today time.Time
	// TotalDays caps the elapsed count. Zero means domain.TotalDays.
	TotalDays int
	Stats     []stats.DailyStat
}

// Status compares validated days against elapsed calendar days.
type Status struct {
	DaysElapsed      int
	ValidatedElapsed int
	// Diff is ValidatedElapsed - DaysElapsed: positive when ahead.
	Diff  int
	Label domain.ScheduleLabel
}

// ComputeStatus classifies the reader as ahead, on time, behind or not
// started. It is recomputed on every call and never persisted.
func ComputeStatus(input StatusInput) Status {
	total := input.TotalDays
	if total <= 0 {
		total = domain.TotalDays
	}

	start := dates.Normalize(input.Start)
	today := dates.Normalize(input.Today)

	if today.Before(start) {
		return Status{Label: domain.ScheduleNotStarted}
	}

	elapsed := min(total, dates.DaysBetween(today, start)+1)
	validated := stats.ValidatedElapsed(input.Stats, today)
	diff := validated - elapsed

	result := Status{
		DaysElapsed:      elapsed,
		ValidatedElapsed: validated,
		Diff:             diff,
	}

	switch {
	case elapsed <= 0:
		result.Label = domain.ScheduleNotStarted
	case diff > 0:
		result.Label = domain.ScheduleAhead
	case diff < 0:
		result.Label = domain.ScheduleBehind
	default:
		result.Label = domain.ScheduleOnTime
	}
	return result
}
