package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_TruncatesToMidnight(t *testing.T) {
	in := time.Date(2025, 3, 15, 17, 42, 11, 500, time.UTC)
	got := Normalize(in)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestEndOfDay(t *testing.T) {
	got := EndOfDay(time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 3, 15, 23, 59, 59, 999_000_000, time.UTC), got)
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(base, base))
	assert.Equal(t, 1, DaysBetween(base.AddDate(0, 0, 1), base))
	assert.Equal(t, -3, DaysBetween(base.AddDate(0, 0, -3), base))
	assert.Equal(t, 364, DaysBetween(time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC), base))
}

func TestDaysBetween_AcrossDSTTransition(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// Clocks go forward on 2025-03-30; that day is only 23 hours long.
	before := time.Date(2025, 3, 29, 0, 0, 0, 0, paris)
	after := time.Date(2025, 3, 31, 0, 0, 0, 0, paris)
	assert.Equal(t, 2, DaysBetween(after, before))

	// Autumn transition: 2025-10-26 is 25 hours long.
	assert.Equal(t, 1, DaysBetween(time.Date(2025, 10, 27, 0, 0, 0, 0, paris), time.Date(2025, 10, 26, 0, 0, 0, 0, paris)))
}

func TestAddDays_KeepsMidnightAcrossDST(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata not available")
	}
	start := time.Date(2025, 3, 29, 0, 0, 0, 0, paris)
	got := AddDays(start, 2)
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 31, got.Day())
}

func TestFormatISO_ZeroPads(t *testing.T) {
	assert.Equal(t, "2025-01-05", FormatISO(time.Date(2025, 1, 5, 13, 0, 0, 0, time.UTC)))
	assert.Equal(t, "0999-10-09", FormatISO(time.Date(999, 10, 9, 0, 0, 0, 0, time.UTC)))
}

func TestParseISO_Lenient(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-03-07", time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)},
		{"2025-3", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"2025", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-xx-yy", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-02-09T10:00:00Z", time.Date(2025, 2, 9, 0, 0, 0, 0, time.UTC)},
		{"", time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseISO(tt.in, time.UTC))
		})
	}
}

func TestParseStartDate(t *testing.T) {
	got, err := ParseStartDate("2025-09-01", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), got)

	// Persisted form: the UTC instant of local midnight.
	paris := time.FixedZone("CET", 3600)
	got, err = ParseStartDate("2025-08-31T23:00:00.000Z", paris)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, paris), got)
}

func TestParseStartDate_RejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "tomorrow", "2025-02-30", "2025-13-01", "2025/01/01"} {
		_, err := ParseStartDate(in, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", in)
	}
}

func TestFormatTimestamp_RoundTrips(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, loc)

	raw := FormatTimestamp(start)
	assert.Equal(t, "2025-05-31T22:00:00.000Z", raw)

	back, err := ParseStartDate(raw, loc)
	require.NoError(t, err)
	assert.True(t, back.Equal(start))
}
