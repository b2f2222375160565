package cli

import (
	"sync"
	"time"

	"github.com/alexanderramin/lumieres/internal/dates"
	"github.com/alexanderramin/lumieres/internal/domain"
	"github.com/alexanderramin/lumieres/internal/motivation"
	"github.com/alexanderramin/lumieres/internal/service"
	"github.com/spf13/cobra"
)

// KeyStore manages the fallback service API key.
type KeyStore interface {
	SetAPIKey(key string) error
	DeleteAPIKey() error
}

// App holds references to all services used by CLI commands.
type App struct {
	Tracker    service.TrackerService
	Notes      service.NotesService
	Reader     service.ReaderService
	Motivation motivation.Source
	Keys       KeyStore
	Clock      dates.Clock
	Relay      *Relay

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Confirm asks a yes/no question. Nil uses a huh form.
	Confirm func(title string) (bool, error)
	// ReadSecret prompts for a hidden value. Nil uses a huh form.
	ReadSecret func(title string) (string, error)
}

// NewRootCmd creates the top-level "lumieres" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Relay == nil {
		app.Relay = &Relay{}
	}
	if app.Clock == nil {
		app.Clock = dates.SystemClock{}
	}
	if app.Motivation == nil {
		app.Motivation = motivation.Default()
	}

	root := &cobra.Command{
		Use:           "lumieres",
		Short:         "365 Lumières: suivi d'un plan de lecture biblique en un an",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStartCmd(app),
		newStatusCmd(app),
		newTodayCmd(app),
		newDayCmd(app),
		newToggleCmd(app),
		newDoneCmd(app),
		newReadCmd(app),
		newNoteCmd(app),
		newResetCmd(app),
		newKeyCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// Relay forwards service notifications to whichever command is running.
// Services are wired once at startup; commands attach handlers per run.
type Relay struct {
	mu        sync.Mutex
	completed func(day int)
	saved     func(day int, slot domain.Slot)
}

func (r *Relay) DayCompleted(day int) {
	r.mu.Lock()
	fn := r.completed
	r.mu.Unlock()
	if fn != nil {
		fn(day)
	}
}

func (r *Relay) NoteSaved(day int, slot domain.Slot) {
	r.mu.Lock()
	fn := r.saved
	r.mu.Unlock()
	if fn != nil {
		fn(day, slot)
	}
}

func (r *Relay) onCompleted(fn func(day int)) (detach func()) {
	r.mu.Lock()
	r.completed = fn
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		r.completed = nil
		r.mu.Unlock()
	}
}

func (r *Relay) onSaved(fn func(day int, slot domain.Slot)) (detach func()) {
	r.mu.Lock()
	r.saved = fn
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		r.saved = nil
		r.mu.Unlock()
	}
}

func (a *App) today() time.Time {
	return dates.Normalize(a.Clock.Now())
}
