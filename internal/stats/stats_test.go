package stats

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/alexanderramin/lumieres/internal/dates"
	"github.com/alexanderramin/lumieres/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func progressWith(t *testing.T, days map[int]domain.DayProgress) *domain.Progress {
	t.Helper()
	var p domain.Progress
	for n, d := range days {
		require.NoError(t, p.Set(n, d))
	}
	return &p
}

func dayDate(n int) time.Time {
	return dates.AddDays(planStart, n-1)
}

func TestBuildDailyStats_CoversWholePlan(t *testing.T) {
	p := progressWith(t, map[int]domain.DayProgress{
		1:   domain.FullDay(),
		2:   {Matin: true},
		3:   {Matin: true, Soir: true},
		365: domain.FullDay(),
	})

	stats := BuildDailyStats(planStart, p)
	require.Len(t, stats, domain.TotalDays)

	for i, s := range stats {
		assert.Equal(t, i+1, s.DayIndex)
		assert.Equal(t, float64(s.CompletedSlots)/3, s.Progression)
		assert.Equal(t, s.Progression == 1, s.Validated)
		if i > 0 {
			assert.Equal(t, 1, dates.DaysBetween(s.Date, stats[i-1].Date), "day %d", s.DayIndex)
		}
	}

	assert.True(t, stats[0].Validated)
	assert.Equal(t, 1, stats[1].CompletedSlots)
	assert.InDelta(t, 2.0/3, stats[2].Progression, 1e-9)
	assert.Equal(t, 0, stats[3].CompletedSlots)
	assert.True(t, stats[364].Validated)
	assert.Equal(t, "2025-12-31", dates.FormatISO(stats[364].Date))
}

func TestBuildDailyStats_NormalizesStartAndIsPure(t *testing.T) {
	p := progressWith(t, map[int]domain.DayProgress{4: domain.FullDay()})
	afternoon := planStart.Add(15 * time.Hour)

	first := BuildDailyStats(afternoon, p)
	second := BuildDailyStats(afternoon, p)
	assert.Equal(t, first, second)
	assert.Equal(t, planStart, first[0].Date)
}

func TestBuildDailyStats_NilProgress(t *testing.T) {
	stats := BuildDailyStats(planStart, nil)
	require.Len(t, stats, domain.TotalDays)
	for _, s := range stats {
		assert.Zero(t, s.CompletedSlots)
	}
}

func TestStreaks_GapBreaksCurrentStreak(t *testing.T) {
	p := progressWith(t, map[int]domain.DayProgress{
		1: domain.FullDay(), 2: domain.FullDay(), 3: domain.FullDay(),
		4: domain.FullDay(), 5: domain.FullDay(),
		7: domain.FullDay(),
	})
	stats := BuildDailyStats(planStart, p)
	today := dayDate(7)

	assert.Equal(t, 1, CurrentStreak(stats, today))
	assert.Equal(t, 5, BestStreak(stats, today))
}

func TestCurrentStreak_TodayNotYetValidated(t *testing.T) {
	p := progressWith(t, map[int]domain.DayProgress{
		1: domain.FullDay(), 2: domain.FullDay(),
		3: {Matin: true},
	})
	stats := BuildDailyStats(planStart, p)

	assert.Equal(t, 0, CurrentStreak(stats, dayDate(3)))
	assert.Equal(t, 2, CurrentStreak(stats, dayDate(2)))
	assert.Equal(t, 2, BestStreak(stats, dayDate(3)))
}

func TestStreaks_IgnoreFutureDays(t *testing.T) {
	// Days validated ahead of schedule do not count until their date arrives.
	p := progressWith(t, map[int]domain.DayProgress{
		1: domain.FullDay(), 2: domain.FullDay(),
		3: domain.FullDay(), 4: domain.FullDay(), 5: domain.FullDay(),
	})
	stats := BuildDailyStats(planStart, p)
	today := dayDate(2).Add(23 * time.Hour)

	assert.Equal(t, 2, CurrentStreak(stats, today))
	assert.Equal(t, 2, BestStreak(stats, today))
	assert.Equal(t, 2, ValidatedElapsed(stats, today))
}

func TestStreaks_BeforeStart(t *testing.T) {
	p := progressWith(t, map[int]domain.DayProgress{1: domain.FullDay()})
	stats := BuildDailyStats(planStart, p)
	yesterday := planStart.AddDate(0, 0, -1)

	assert.Equal(t, 0, CurrentStreak(stats, yesterday))
	assert.Equal(t, 0, BestStreak(stats, yesterday))
}

func TestStreaks_BestNeverBelowCurrent(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 365))
	for iter := 0; iter < 200; iter++ {
		var p domain.Progress
		for day := 1; day <= domain.TotalDays; day++ {
			if rng.IntN(4) > 0 {
				_ = p.Set(day, domain.FullDay())
			}
		}
		stats := BuildDailyStats(planStart, &p)
		today := dayDate(rng.IntN(domain.TotalDays+40) - 20)

		cur := CurrentStreak(stats, today)
		best := BestStreak(stats, today)
		assert.GreaterOrEqual(t, best, cur, "iteration %d", iter)
	}
}

func TestConsistency(t *testing.T) {
	assert.Equal(t, 0, Consistency(0, 0))
	assert.Equal(t, 0, Consistency(0, 5))
	assert.Equal(t, 100, Consistency(4, 4))
	assert.Equal(t, 67, Consistency(3, 2))
	assert.Equal(t, 33, Consistency(3, 1))
	assert.Equal(t, 100, Consistency(2, 9))
}

func TestDaysElapsedAndCurrentDay(t *testing.T) {
	assert.Equal(t, 0, DaysElapsed(planStart, planStart.AddDate(0, 0, -3)))
	assert.Equal(t, 1, CurrentDay(planStart, planStart.AddDate(0, 0, -3)))

	assert.Equal(t, 1, DaysElapsed(planStart, planStart))
	assert.Equal(t, 10, DaysElapsed(planStart, dayDate(10).Add(20*time.Hour)))
	assert.Equal(t, 10, CurrentDay(planStart, dayDate(10)))

	late := planStart.AddDate(2, 0, 0)
	assert.Equal(t, domain.TotalDays, DaysElapsed(planStart, late))
	assert.Equal(t, domain.TotalDays, CurrentDay(planStart, late))
}
