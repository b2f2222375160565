package stats

import (
	"testing"

	"github.com/alexanderramin/lumieres/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	days := map[int]domain.DayProgress{}
	for n := 1; n <= 7; n++ {
		days[n] = domain.FullDay()
	}
	days[8] = domain.DayProgress{Matin: true, Midi: true}
	days[20] = domain.FullDay() // validated ahead of schedule
	stats := BuildDailyStats(planStart, progressWith(t, days))

	s := Summarize(stats, planStart, dayDate(10))

	assert.Equal(t, 10, s.DaysElapsed)
	assert.Equal(t, 8, s.ValidatedDays)
	assert.Equal(t, 7, s.ValidatedElapsed)
	assert.Equal(t, 70, s.Consistency)
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 7, s.BestStreak)
	assert.Equal(t, 8*3+2, s.CompletedParts)
	assert.Equal(t, 2, s.PartsPercent) // 26 / 1095
	assert.Equal(t, 2, s.DayPercent)   // 8 / 365
	assert.Equal(t, 1, s.ValidatedWeeks)
	assert.Equal(t, 53, s.TotalWeeks)
}

func TestSummarize_FullPlanCountsShortLastWeek(t *testing.T) {
	var p domain.Progress
	for n := 1; n <= domain.TotalDays; n++ {
		_ = p.Set(n, domain.FullDay())
	}
	stats := BuildDailyStats(planStart, &p)

	s := Summarize(stats, planStart, dayDate(domain.TotalDays))
	assert.Equal(t, 53, s.ValidatedWeeks)
	assert.Equal(t, 100, s.PartsPercent)
	assert.Equal(t, 100, s.Consistency)
	assert.Equal(t, domain.TotalDays, s.CurrentStreak)
}

func TestChartWindow(t *testing.T) {
	stats := BuildDailyStats(planStart, progressWith(t, map[int]domain.DayProgress{
		12: {Soir: true},
	}))

	assert.Len(t, ChartWindow(stats, 5), 12)
	assert.Len(t, ChartWindow(stats, 30), 30)
	assert.Len(t, ChartWindow(stats, 1000), domain.TotalDays)

	empty := BuildDailyStats(planStart, nil)
	assert.Empty(t, ChartWindow(empty, 0))
}
