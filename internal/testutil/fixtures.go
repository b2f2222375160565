package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/lumieres/internal/bible"
	"github.com/alexanderramin/lumieres/internal/domain"
	"github.com/alexanderramin/lumieres/internal/plan"
)

// Progress options
type ProgressOption func(*domain.Progress)

// WithValidatedDays marks every slot of the given days done.
func WithValidatedDays(days ...int) ProgressOption {
	return func(p *domain.Progress) {
		for _, d := range days {
			_ = p.Set(d, domain.FullDay())
		}
	}
}

// WithValidatedRange marks days from..to (inclusive) done.
func WithValidatedRange(from, to int) ProgressOption {
	return func(p *domain.Progress) {
		for d := from; d <= to; d++ {
			_ = p.Set(d, domain.FullDay())
		}
	}
}

// WithSlots marks the given slots of day done.
func WithSlots(day int, slots ...domain.Slot) ProgressOption {
	return func(p *domain.Progress) {
		dp := p.Day(day)
		for _, s := range slots {
			dp = dp.With(s, true)
		}
		_ = p.Set(day, dp)
	}
}

func NewTestProgress(opts ...ProgressOption) *domain.Progress {
	p := &domain.Progress{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var testWeekdays = []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche"}

// NewTestPlan returns a complete plan whose readings all resolve against
// NewTestCorpus: Genèse 1:1-2 in the morning, Psaumes 23 at midday and
// Jean 3:16-18 in the evening.
func NewTestPlan(t *testing.T) *plan.Plan {
	t.Helper()
	days := make([]domain.PlanDay, 0, domain.TotalDays)
	for n := 1; n <= domain.TotalDays; n++ {
		days = append(days, domain.PlanDay{
			Index:   n,
			Weekday: testWeekdays[(n-1)%7],
			Morning: "Genèse 1:1-2",
			Midday:  "Psaumes 23",
			Evening: "Jean 3:16-18",
		})
	}
	p, err := plan.FromDays(days)
	if err != nil {
		t.Fatalf("building test plan: %v", err)
	}
	return p
}

// NewTestCorpus returns a small corpus covering NewTestPlan's readings.
func NewTestCorpus() *bible.Corpus {
	return &bible.Corpus{
		Metadata: map[string]any{"name": "Louis Segond 1910", "shortname": "LSG"},
		Verses: []bible.Verse{
			{BookName: "Genèse", Book: 1, Chapter: 1, Verse: 1, Text: "Au commencement, Dieu créa les cieux et la terre."},
			{BookName: "Genèse", Book: 1, Chapter: 1, Verse: 2, Text: "La terre était informe et vide."},
			{BookName: "Psaumes", Book: 19, Chapter: 23, Verse: 1, Text: "L'Éternel est mon berger: je ne manquerai de rien."},
			{BookName: "Psaumes", Book: 19, Chapter: 23, Verse: 2, Text: "Il me fait reposer dans de verts pâturages."},
			{BookName: "Jean", Book: 43, Chapter: 3, Verse: 16, Text: "Car Dieu a tant aimé le monde qu'il a donné son Fils unique."},
			{BookName: "Jean", Book: 43, Chapter: 3, Verse: 17, Text: "Dieu, en effet, n'a pas envoyé son Fils dans le monde pour qu'il juge le monde."},
			{BookName: "Jean", Book: 43, Chapter: 3, Verse: 18, Text: "Celui qui croit en lui n'est point jugé."},
		},
	}
}
