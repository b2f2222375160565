package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDay indicates a day number or identifier outside 1..TotalDays.
	ErrInvalidDay = errors.New("invalid plan day")

	// ErrInvalidSlot indicates an unknown slot name.
	ErrInvalidSlot = errors.New("invalid slot")
)

const dayIDPrefix = "day_"

// DayID returns the join key for plan day n, e.g. "day_12".
func DayID(n int) string {
	return dayIDPrefix + strconv.Itoa(n)
}

// ParseDayID parses a "day_<N>" key and checks N is within the plan.
func ParseDayID(id string) (int, error) {
	raw, ok := strings.CutPrefix(id, dayIDPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDay, id)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDay, id)
	}
	if err := ValidateDay(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateDay checks that n is a plan day number.
func ValidateDay(n int) error {
	if n < 1 || n > TotalDays {
		return fmt.Errorf("%w: %d (expected 1..%d)", ErrInvalidDay, n, TotalDays)
	}
	return nil
}

// ParseSlot accepts the persisted slot names and their English equivalents.
func ParseSlot(s string) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "matin", "morning":
		return SlotMorning, nil
	case "midi", "midday", "noon":
		return SlotMidday, nil
	case "soir", "evening":
		return SlotEvening, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSlot, s)
}

// PlanDay is one static entry of the reading plan.
type PlanDay struct {
	Index   int
	Weekday string
	Morning string
	Midday  string
	Evening string
}

// ID returns the day's join key.
func (d PlanDay) ID() string { return DayID(d.Index) }

// Reference returns the scripture reference assigned to slot.
func (d PlanDay) Reference(slot Slot) string {
	switch slot {
	case SlotMorning:
		return d.Morning
	case SlotMidday:
		return d.Midday
	case SlotEvening:
		return d.Evening
	default:
		return ""
	}
}
