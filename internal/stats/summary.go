package stats

import (
	"time"

	"github.com/alexanderramin/lumieres/internal/domain"
)

// Summary aggregates the dashboard figures derived from one stats sequence.
type Summary struct {
	DaysElapsed      int
	ValidatedDays    int
	ValidatedElapsed int
	Consistency      int
	CurrentStreak    int
	BestStreak       int
	CompletedParts   int
	PartsPercent     int
	DayPercent       int
	ValidatedWeeks   int
	TotalWeeks       int
}

// Summarize derives the aggregate figures for today.
func Summarize(stats []DailyStat, start, today time.Time) Summary {
	s := Summary{
		DaysElapsed:      DaysElapsed(start, today),
		ValidatedElapsed: ValidatedElapsed(stats, today),
		CurrentStreak:    CurrentStreak(stats, today),
		BestStreak:       BestStreak(stats, today),
	}
	for _, d := range stats {
		s.CompletedParts += d.CompletedSlots
		if d.Validated {
			s.ValidatedDays++
		}
	}
	s.Consistency = Consistency(s.DaysElapsed, s.ValidatedElapsed)
	s.PartsPercent = percent(s.CompletedParts, domain.TotalDays*domain.SlotsPerDay)
	s.DayPercent = percent(s.ValidatedDays, domain.TotalDays)
	s.ValidatedWeeks, s.TotalWeeks = validatedWeeks(stats)
	return s
}

// validatedWeeks counts 7-day chunks of the plan whose days are all
// validated. The last chunk is shorter when the plan length is not a
// multiple of a week.
func validatedWeeks(stats []DailyStat) (validated, total int) {
	for i := 0; i < len(stats); i += domain.DaysPerWeek {
		end := min(i+domain.DaysPerWeek, len(stats))
		total++
		complete := true
		for _, d := range stats[i:end] {
			if !d.Validated {
				complete = false
				break
			}
		}
		if complete {
			validated++
		}
	}
	return validated, total
}

// ChartWindow returns the prefix of stats worth plotting: every elapsed day,
// extended to the last day that has any recorded progress.
func ChartWindow(stats []DailyStat, daysElapsed int) []DailyStat {
	lastWithProgress := 0
	for _, d := range stats {
		if d.CompletedSlots > 0 && d.DayIndex > lastWithProgress {
			lastWithProgress = d.DayIndex
		}
	}
	n := min(max(daysElapsed, lastWithProgress), len(stats))
	out := make([]DailyStat, 0, n)
	for _, d := range stats {
		if d.DayIndex <= n {
			out = append(out, d)
		}
	}
	return out
}
