package stats

import (
	"math"
	"time"

	"github.com/alexanderramin/lumieres/internal/dates"
	"github.com/alexanderramin/lumieres/internal/domain"
)

// DailyStat is the derived view of one plan day. It is recomputed from the
// start date and progress on every read and never persisted.
type DailyStat struct {
	Date           time.Time
	DayIndex       int
	CompletedSlots int
	Progression    float64
	Validated      bool
}

// BuildDailyStats returns exactly domain.TotalDays entries ordered by day
// index, regardless of how far "today" is into the plan.
func BuildDailyStats(start time.Time, progress *domain.Progress) []DailyStat {
	start = dates.Normalize(start)
	out := make([]DailyStat, 0, domain.TotalDays)
	for day := 1; day <= domain.TotalDays; day++ {
		var p domain.DayProgress
		if progress != nil {
			p = progress.Day(day)
		}
		done := p.CompletedSlots()
		out = append(out, DailyStat{
			Date:           dates.AddDays(start, day-1),
			DayIndex:       day,
			CompletedSlots: done,
			Progression:    float64(done) / domain.SlotsPerDay,
			Validated:      done == domain.SlotsPerDay,
		})
	}
	return out
}

// isFuture reports whether the stat's date lies strictly after end of today.
func isFuture(s DailyStat, todayEnd time.Time) bool {
	return s.Date.After(todayEnd)
}

// CurrentStreak counts consecutive validated days walking back from the most
// recent non-future day. Future days are skipped, not treated as breaks; the
// first non-validated day stops the scan.
func CurrentStreak(stats []DailyStat, today time.Time) int {
	todayEnd := dates.EndOfDay(today)
	streak := 0
	for i := len(stats) - 1; i >= 0; i-- {
		s := stats[i]
		if isFuture(s, todayEnd) {
			continue
		}
		if !s.Validated {
			break
		}
		streak++
	}
	return streak
}

// BestStreak is the longest run of consecutive validated days up to today.
func BestStreak(stats []DailyStat, today time.Time) int {
	todayEnd := dates.EndOfDay(today)
	best, run := 0, 0
	for _, s := range stats {
		if isFuture(s, todayEnd) {
			break
		}
		if !s.Validated {
			run = 0
			continue
		}
		run++
		if run > best {
			best = run
		}
	}
	return best
}

// ValidatedElapsed counts validated days dated today or earlier.
func ValidatedElapsed(stats []DailyStat, today time.Time) int {
	todayEnd := dates.EndOfDay(today)
	n := 0
	for _, s := range stats {
		if s.Validated && !isFuture(s, todayEnd) {
			n++
		}
	}
	return n
}

// Consistency is the rounded percentage of elapsed days that are validated,
// clamped to [0, 100].
func Consistency(daysElapsed, validatedElapsed int) int {
	if daysElapsed == 0 {
		return 0
	}
	return percent(validatedElapsed, daysElapsed)
}

// DaysElapsed is the inclusive number of plan days since start, clamped to
// [0, domain.TotalDays].
func DaysElapsed(start, today time.Time) int {
	n := dates.DaysBetween(today, start) + 1
	return min(domain.TotalDays, max(0, n))
}

// CurrentDay is the plan day that falls on today, clamped to the plan.
// Before the start date this is day 1.
func CurrentDay(start, today time.Time) int {
	n := dates.DaysBetween(today, start) + 1
	return min(domain.TotalDays, max(1, n))
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	v := int(math.Round(float64(part) / float64(whole) * 100))
	return min(100, max(0, v))
}
