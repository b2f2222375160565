package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/lumieres/internal/domain"
	"github.com/alexanderramin/lumieres/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func statsWithValidated(t *testing.T, days ...int) []stats.DailyStat {
	t.Helper()
	var p domain.Progress
	for _, n := range days {
		require.NoError(t, p.Set(n, domain.FullDay()))
	}
	return stats.BuildDailyStats(start, &p)
}

func TestComputeStatus_StartDayNoProgressIsBehind(t *testing.T) {
	got := ComputeStatus(StatusInput{
		Start: start,
		Today: start.Add(9 * time.Hour),
		Stats: statsWithValidated(t),
	})
	assert.Equal(t, Status{DaysElapsed: 1, ValidatedElapsed: 0, Diff: -1, Label: domain.ScheduleBehind}, got)
}

func TestComputeStatus_BeforeStartIsNotStarted(t *testing.T) {
	got := ComputeStatus(StatusInput{
		Start: start,
		Today: start.Add(-time.Minute),
		Stats: statsWithValidated(t, 1, 2),
	})
	assert.Equal(t, domain.ScheduleNotStarted, got.Label)
	assert.Equal(t, 0, got.DaysElapsed)
	assert.Equal(t, 0, got.ValidatedElapsed)
	assert.Equal(t, 0, got.Diff)
}

func TestComputeStatus_OnTime(t *testing.T) {
	got := ComputeStatus(StatusInput{
		Start: start,
		Today: start.AddDate(0, 0, 2),
		Stats: statsWithValidated(t, 1, 2, 3),
	})
	assert.Equal(t, domain.ScheduleOnTime, got.Label)
	assert.Equal(t, 3, got.DaysElapsed)
	assert.Equal(t, 0, got.Diff)
}

func TestComputeStatus_FutureValidationsDoNotCountAhead(t *testing.T) {
	// Days 1..5 validated but today is day 2: only the two elapsed days count.
	got := ComputeStatus(StatusInput{
		Start: start,
		Today: start.AddDate(0, 0, 1),
		Stats: statsWithValidated(t, 1, 2, 3, 4, 5),
	})
	assert.Equal(t, domain.ScheduleOnTime, got.Label)
	assert.Equal(t, 2, got.ValidatedElapsed)
}

func TestComputeStatus_Behind(t *testing.T) {
	got := ComputeStatus(StatusInput{
		Start: start,
		Today: start.AddDate(0, 0, 9),
		Stats: statsWithValidated(t, 1, 2, 3),
	})
	assert.Equal(t, domain.ScheduleBehind, got.Label)
	assert.Equal(t, -7, got.Diff)
}

func TestComputeStatus_AheadWithShortPlan(t *testing.T) {
	// A smaller TotalDays caps elapsed days so completed days can exceed it.
	got := ComputeStatus(StatusInput{
		Start:     start,
		Today:     start.AddDate(0, 0, 30),
		TotalDays: 3,
		Stats:     statsWithValidated(t, 1, 2, 3, 4),
	})
	assert.Equal(t, 3, got.DaysElapsed)
	assert.Equal(t, 4, got.ValidatedElapsed)
	assert.Equal(t, domain.ScheduleAhead, got.Label)
}

func TestComputeStatus_ElapsedCappedAtPlanLength(t *testing.T) {
	got := ComputeStatus(StatusInput{
		Start: start,
		Today: start.AddDate(3, 0, 0),
		Stats: statsWithValidated(t),
	})
	assert.Equal(t, domain.TotalDays, got.DaysElapsed)
	assert.Equal(t, -domain.TotalDays, got.Diff)
}

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   string
	}{
		{"ahead one", Status{Diff: 1, Label: domain.ScheduleAhead}, "Tu es en avance de 1 jour sur ton plan. Continue comme ça !"},
		{"ahead many", Status{Diff: 4, Label: domain.ScheduleAhead}, "Tu es en avance de 4 jours sur ton plan. Continue comme ça !"},
		{"behind one", Status{Diff: -1, Label: domain.ScheduleBehind}, "Tu as 1 jour de retard sur ton plan, mais tu peux rattraper en avançant un peu plus chaque jour."},
		{"behind many", Status{Diff: -12, Label: domain.ScheduleBehind}, "Tu as 12 jours de retard sur ton plan, mais tu peux rattraper en avançant un peu plus chaque jour."},
		{"on time", Status{Label: domain.ScheduleOnTime}, "Tu es à l'heure dans ton plan de lecture. Garde ce rythme !"},
		{"not started", Status{Label: domain.ScheduleNotStarted}, "Ton plan de lecture n'a pas encore commencé. Prépare ton coeur pour le grand départ."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusMessage(tt.status))
		})
	}
}
