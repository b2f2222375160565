package motivation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CoversEveryWeek(t *testing.T) {
	table := Default()
	assert.Equal(t, 53, table.Len())

	for week := 1; week <= 53; week++ {
		m := table.ForDay((week-1)*7 + 1)
		assert.Equal(t, week, m.Week)
		assert.NotEmpty(t, m.Reference)
	}
}

func TestForDay_SubstitutesDayNumber(t *testing.T) {
	m := Default().ForDay(9)

	assert.Equal(t, 2, m.Week)
	assert.Contains(t, m.Text, "Bravo journée 9 validée")
	assert.NotContains(t, m.Text, "{dayNumber}")
}

func TestWeekOf(t *testing.T) {
	tests := []struct{ day, week int }{
		{1, 1}, {7, 1}, {8, 2}, {14, 2}, {15, 3}, {364, 52}, {365, 53}, {0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.week, WeekOf(tt.day), "day %d", tt.day)
	}
}

func TestForDay_UnknownWeekFallsBackToFirst(t *testing.T) {
	table, err := Parse([]byte(`
motivations:
  - {id: 1, week: 1, text: "Jour {dayNumber} ({dayNumber})", reference: "Psaume 1"}
  - {id: 2, week: 2, text: "Semaine deux", reference: "Psaume 2"}
`))
	require.NoError(t, err)

	m := table.ForDay(50)
	assert.Equal(t, 1, m.ID)
	assert.Equal(t, "Jour 50 ({dayNumber})", m.Text, "only the first placeholder is replaced")
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("motivations: []"))
	assert.Error(t, err)

	_, err = Parse([]byte("motivations: [oops"))
	assert.Error(t, err)
}
