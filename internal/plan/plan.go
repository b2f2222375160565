// Package plan loads the static 365-day reading plan.
package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/lumieres/internal/domain"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoPlan is returned when no plan file exists.
	ErrNoPlan = errors.New("no reading plan configured")
	// ErrIncomplete is returned when a plan does not define every day.
	ErrIncomplete = errors.New("reading plan is incomplete")
)

// entry is the stored shape of one day.
type entry struct {
	Weekday string `yaml:"jour_semaine" json:"jour_semaine"`
	Morning string `yaml:"matin_ancien_testament" json:"matin_ancien_testament"`
	Midday  string `yaml:"midi_sagesse_poesie" json:"midi_sagesse_poesie"`
	Evening string `yaml:"soir_nouveau_testament" json:"soir_nouveau_testament"`
}

// Plan holds the reading assignments of every plan day.
type Plan struct {
	days [domain.TotalDays]domain.PlanDay
}

// Load reads a plan file. The format follows the extension: .yaml/.yml or
// .json; other extensions are tried as YAML, then JSON.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s not found", ErrNoPlan, path)
		}
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	return Parse(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
}

// Parse decodes a plan document in the given format ("yaml", "yml",
// "json", or anything else to try both).
func Parse(data []byte, format string) (*Plan, error) {
	var entries map[string]entry
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parse YAML plan: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parse JSON plan: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &entries); err != nil {
			if jsonErr := json.Unmarshal(data, &entries); jsonErr != nil {
				return nil, fmt.Errorf("parse plan (tried YAML and JSON): YAML error: %w, JSON error: %v", err, jsonErr)
			}
		}
	}

	days := make([]domain.PlanDay, 0, len(entries))
	for key, e := range entries {
		n, err := domain.ParseDayID(key)
		if err != nil {
			return nil, fmt.Errorf("plan key %q: %w", key, err)
		}
		days = append(days, domain.PlanDay{
			Index:   n,
			Weekday: e.Weekday,
			Morning: e.Morning,
			Midday:  e.Midday,
			Evening: e.Evening,
		})
	}
	return FromDays(days)
}

// FromDays builds a plan from explicit days. Every day 1..365 must be
// present exactly once with all three references.
func FromDays(days []domain.PlanDay) (*Plan, error) {
	p := &Plan{}
	var seen [domain.TotalDays]bool
	for _, d := range days {
		if err := domain.ValidateDay(d.Index); err != nil {
			return nil, err
		}
		if seen[d.Index-1] {
			return nil, fmt.Errorf("plan defines %s twice", d.ID())
		}
		for _, slot := range domain.Slots {
			if strings.TrimSpace(d.Reference(slot)) == "" {
				return nil, fmt.Errorf("%w: %s has no %s reading", ErrIncomplete, d.ID(), slot)
			}
		}
		seen[d.Index-1] = true
		p.days[d.Index-1] = d
	}

	var missing []string
	for i, ok := range seen {
		if !ok {
			missing = append(missing, domain.DayID(i+1))
		}
	}
	if len(missing) > 0 {
		if len(missing) > 5 {
			missing = append(missing[:5], fmt.Sprintf("and %d more", len(missing)-5))
		}
		return nil, fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}
	return p, nil
}

// Day returns plan day n.
func (p *Plan) Day(n int) (domain.PlanDay, error) {
	if err := domain.ValidateDay(n); err != nil {
		return domain.PlanDay{}, err
	}
	return p.days[n-1], nil
}

// Weeks splits the plan into consecutive 7-day chunks; the last holds the
// remaining day.
func (p *Plan) Weeks() [][]domain.PlanDay {
	var weeks [][]domain.PlanDay
	for start := 0; start < domain.TotalDays; start += domain.DaysPerWeek {
		end := min(start+domain.DaysPerWeek, domain.TotalDays)
		weeks = append(weeks, p.days[start:end:end])
	}
	return weeks
}
