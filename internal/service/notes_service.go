package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/lumieres/internal/cue"
	"github.com/alexanderramin/lumieres/internal/domain"
	"github.com/alexanderramin/lumieres/internal/repository"
)

// SavedIndicatorDelay is how long edits must pause before a note reports
// itself saved.
const SavedIndicatorDelay = 500 * time.Millisecond

type notesService struct {
	repo     *repository.NotesRepo
	logger   *slog.Logger
	observer UseCaseObserver
	onSaved  func(day int, slot domain.Slot)
	saved    *cue.Debouncer

	mu    sync.Mutex
	notes domain.Notes
}

// NewNotesService keeps reading notes in memory and writes the whole
// document back on every edit. onSaved, when set, is called once edits have
// paused for SavedIndicatorDelay.
func NewNotesService(kv repository.KVStore, logger *slog.Logger, onSaved func(day int, slot domain.Slot), observers ...UseCaseObserver) NotesService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &notesService{
		repo:     repository.NewNotesRepo(kv),
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
		onSaved:  onSaved,
		saved:    cue.NewDebouncer(SavedIndicatorDelay),
		notes:    domain.Notes{},
	}
}

func (s *notesService) Load(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "notes.load", startedAt, err, nil) }()

	notes, err := s.repo.Load(ctx)
	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()

	if errors.Is(err, repository.ErrCorrupt) {
		s.logger.Warn("ignoring stored notes", "error", err)
		return nil
	}
	return err
}

func (s *notesService) Get(day int, slot domain.Slot) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes.Get(domain.DayID(day), slot)
}

func (s *notesService) Has(day int, slot domain.Slot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes.Has(domain.DayID(day), slot)
}

// Set stores the trimmed text; blank text deletes the note.
func (s *notesService) Set(ctx context.Context, day int, slot domain.Slot, text string) (err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "notes.set", startedAt, err, map[string]any{"day": day}) }()

	if err := domain.ValidateDay(day); err != nil {
		return err
	}
	if err := validateSlot(slot); err != nil {
		return err
	}

	s.mu.Lock()
	s.notes.Set(domain.DayID(day), slot, text)
	snapshot := s.copyLocked()
	s.mu.Unlock()

	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.logger.Warn("notes not persisted", "day", day, "error", err)
	}
	if s.onSaved != nil {
		s.saved.Trigger(func() { s.onSaved(day, slot) })
	}
	return nil
}

// All returns a copy of every note.
func (s *notesService) All() domain.Notes {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

func (s *notesService) Flush() {
	s.saved.Flush()
}

func (s *notesService) copyLocked() domain.Notes {
	out := make(domain.Notes, len(s.notes))
	for dayID, slots := range s.notes {
		day := make(map[domain.Slot]string, len(slots))
		for slot, text := range slots {
			day[slot] = text
		}
		out[dayID] = day
	}
	return out
}
