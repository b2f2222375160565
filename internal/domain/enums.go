package domain

// Slot is one of the three daily reading assignments. The string values are
// the persisted JSON field names.
type Slot string

const (
	SlotMorning Slot = "matin"
	SlotMidday  Slot = "midi"
	SlotEvening Slot = "soir"
)

// Slots lists the daily slots in reading order.
var Slots = []Slot{SlotMorning, SlotMidday, SlotEvening}

// Label returns the display name of the slot.
func (s Slot) Label() string {
	switch s {
	case SlotMorning:
		return "Matin"
	case SlotMidday:
		return "Midi"
	case SlotEvening:
		return "Soir"
	default:
		return string(s)
	}
}

// ScheduleLabel classifies validated days against elapsed calendar days.
type ScheduleLabel string

const (
	ScheduleNotStarted ScheduleLabel = "not_started"
	ScheduleAhead      ScheduleLabel = "ahead"
	ScheduleOnTime     ScheduleLabel = "on_time"
	ScheduleBehind     ScheduleLabel = "behind"
)

const (
	// TotalDays is the fixed length of the plan.
	TotalDays = 365
	// SlotsPerDay is the number of readings that validate a day.
	SlotsPerDay = 3
	// DaysPerWeek groups plan days for the weekly views.
	DaysPerWeek = 7
)
