package domain

// DayProgress records which slots of a day are done.
type DayProgress struct {
	Matin bool `json:"matin"`
	Midi  bool `json:"midi"`
	Soir  bool `json:"soir"`
}

// FullDay is a DayProgress with every slot done.
func FullDay() DayProgress {
	return DayProgress{Matin: true, Midi: true, Soir: true}
}

func (p DayProgress) Done(slot Slot) bool {
	switch slot {
	case SlotMorning:
		return p.Matin
	case SlotMidday:
		return p.Midi
	case SlotEvening:
		return p.Soir
	default:
		return false
	}
}

// With returns a copy with slot set to done.
func (p DayProgress) With(slot Slot, done bool) DayProgress {
	switch slot {
	case SlotMorning:
		p.Matin = done
	case SlotMidday:
		p.Midi = done
	case SlotEvening:
		p.Soir = done
	}
	return p
}

// Toggle returns a copy with slot flipped.
func (p DayProgress) Toggle(slot Slot) DayProgress {
	return p.With(slot, !p.Done(slot))
}

// CompletedSlots counts the done slots (0..SlotsPerDay).
func (p DayProgress) CompletedSlots() int {
	n := 0
	for _, s := range Slots {
		if p.Done(s) {
			n++
		}
	}
	return n
}

// Complete reports whether every slot is done.
func (p DayProgress) Complete() bool {
	return p.CompletedSlots() == SlotsPerDay
}

// IsZero reports whether no slot is done. Such days are equivalent to absent
// entries in the persisted map.
func (p DayProgress) IsZero() bool {
	return p == DayProgress{}
}

// Progress holds the completion state of every plan day, indexed by day-1.
// The zero value is an empty plan.
type Progress struct {
	days [TotalDays]DayProgress
}

// Day returns the progress of day n; days outside the plan read as empty.
func (p *Progress) Day(n int) DayProgress {
	if ValidateDay(n) != nil {
		return DayProgress{}
	}
	return p.days[n-1]
}

// Set replaces the progress of day n.
func (p *Progress) Set(n int, d DayProgress) error {
	if err := ValidateDay(n); err != nil {
		return err
	}
	p.days[n-1] = d
	return nil
}

// Clear resets every day.
func (p *Progress) Clear() {
	p.days = [TotalDays]DayProgress{}
}

// CompletedParts sums done slots over the whole plan.
func (p *Progress) CompletedParts() int {
	total := 0
	for _, d := range p.days {
		total += d.CompletedSlots()
	}
	return total
}

// Entries returns the non-empty days keyed by DayID, the persisted shape.
func (p *Progress) Entries() map[string]DayProgress {
	out := make(map[string]DayProgress)
	for i, d := range p.days {
		if !d.IsZero() {
			out[DayID(i+1)] = d
		}
	}
	return out
}

// Clone returns an independent copy.
func (p *Progress) Clone() *Progress {
	c := *p
	return &c
}
