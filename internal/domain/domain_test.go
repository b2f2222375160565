package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayID(t *testing.T) {
	n, err := ParseDayID("day_42")
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	assert.Equal(t, "day_42", DayID(n))

	for _, bad := range []string{"day_0", "day_366", "42", "day_x", "Day_1", ""} {
		_, err := ParseDayID(bad)
		assert.ErrorIs(t, err, ErrInvalidDay, "input %q", bad)
	}
}

func TestParseSlot(t *testing.T) {
	s, err := ParseSlot("Morning")
	require.NoError(t, err)
	assert.Equal(t, SlotMorning, s)

	s, err = ParseSlot("soir")
	require.NoError(t, err)
	assert.Equal(t, SlotEvening, s)

	_, err = ParseSlot("night")
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestDayProgress_ToggleAndCount(t *testing.T) {
	var p DayProgress
	assert.Equal(t, 0, p.CompletedSlots())

	p = p.Toggle(SlotMorning).Toggle(SlotEvening)
	assert.Equal(t, 2, p.CompletedSlots())
	assert.False(t, p.Complete())

	p = p.Toggle(SlotMidday)
	assert.True(t, p.Complete())

	p = p.Toggle(SlotMorning)
	assert.False(t, p.Done(SlotMorning))
	assert.Equal(t, 2, p.CompletedSlots())
}

func TestProgress_SetAndEntries(t *testing.T) {
	var p Progress
	require.NoError(t, p.Set(1, FullDay()))
	require.NoError(t, p.Set(365, DayProgress{Midi: true}))
	assert.ErrorIs(t, p.Set(0, FullDay()), ErrInvalidDay)
	assert.ErrorIs(t, p.Set(366, FullDay()), ErrInvalidDay)

	assert.Equal(t, FullDay(), p.Day(1))
	assert.Equal(t, DayProgress{}, p.Day(2))
	assert.Equal(t, DayProgress{}, p.Day(400))
	assert.Equal(t, 4, p.CompletedParts())

	entries := p.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, DayProgress{Midi: true}, entries["day_365"])

	p.Clear()
	assert.Empty(t, p.Entries())
}

func TestNotes_SetPrunesBlankText(t *testing.T) {
	notes := Notes{}
	notes.Set("day_3", SlotMorning, "  Psaume 23  ")
	assert.Equal(t, "Psaume 23", notes.Get("day_3", SlotMorning))
	assert.True(t, notes.Has("day_3", SlotMorning))

	notes.Set("day_3", SlotMorning, "   ")
	assert.False(t, notes.Has("day_3", SlotMorning))
	assert.NotContains(t, notes, "day_3")
}

func TestNotes_Prune(t *testing.T) {
	notes := Notes{
		"day_1": {SlotMorning: "", SlotEvening: "ok"},
		"day_2": {SlotMidday: "  \t"},
	}
	notes.Prune()
	assert.Equal(t, Notes{"day_1": {SlotEvening: "ok"}}, notes)
}
