package domain

import "strings"

// Notes maps a DayID to per-slot free text. Blank text is never stored:
// setting a blank note removes the slot, and a day without notes is removed.
type Notes map[string]map[Slot]string

// Get returns the note for (dayID, slot), or "" when there is none.
func (n Notes) Get(dayID string, slot Slot) string {
	return n[dayID][slot]
}

// Has reports whether a non-blank note exists.
func (n Notes) Has(dayID string, slot Slot) bool {
	return strings.TrimSpace(n.Get(dayID, slot)) != ""
}

// Set stores the trimmed text, pruning the entry when it is blank.
func (n Notes) Set(dayID string, slot Slot, text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		if day, ok := n[dayID]; ok {
			delete(day, slot)
			if len(day) == 0 {
				delete(n, dayID)
			}
		}
		return
	}
	if n[dayID] == nil {
		n[dayID] = make(map[Slot]string)
	}
	n[dayID][slot] = trimmed
}

// Prune removes blank slots and empty days in place.
func (n Notes) Prune() {
	for dayID, day := range n {
		for slot, text := range day {
			if strings.TrimSpace(text) == "" {
				delete(day, slot)
			}
		}
		if len(day) == 0 {
			delete(n, dayID)
		}
	}
}
