package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/lumieres/internal/dates"
	"github.com/alexanderramin/lumieres/internal/db"
	"github.com/alexanderramin/lumieres/internal/domain"
	"github.com/alexanderramin/lumieres/internal/plan"
	"github.com/alexanderramin/lumieres/internal/repository"
	"github.com/alexanderramin/lumieres/internal/scheduler"
	"github.com/alexanderramin/lumieres/internal/stats"
)

// TrackerDeps wires a TrackerService. KV is required; everything else has a
// default. When UoW and Factory are both set, Reset clears the stored
// documents in one transaction.
type TrackerDeps struct {
	KV       repository.KVStore
	UoW      db.UnitOfWork
	Factory  repository.KVFactory
	Plan     *plan.Plan
	Clock    dates.Clock
	Logger   *slog.Logger
	Listener CompletionListener
}

type trackerService struct {
	kv        repository.KVStore
	startDate *repository.StartDateRepo
	progress  *repository.ProgressRepo
	uow       db.UnitOfWork
	factory   repository.KVFactory
	plan      *plan.Plan
	clock     dates.Clock
	logger    *slog.Logger
	listener  CompletionListener
	observer  UseCaseObserver

	mu      sync.Mutex
	start   time.Time
	started bool
	current *domain.Progress
}

func NewTrackerService(deps TrackerDeps, observers ...UseCaseObserver) TrackerService {
	clock := deps.Clock
	if clock == nil {
		clock = dates.SystemClock{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &trackerService{
		kv:        deps.KV,
		startDate: repository.NewStartDateRepo(deps.KV),
		progress:  repository.NewProgressRepo(deps.KV),
		uow:       deps.UoW,
		factory:   deps.Factory,
		plan:      deps.Plan,
		clock:     clock,
		logger:    logger,
		listener:  deps.Listener,
		observer:  useCaseObserverOrNoop(observers),
		current:   &domain.Progress{},
	}
}

// Load reads the start date and progress once. Corrupt documents are logged
// and read as empty; only store failures are returned.
func (s *trackerService) Load(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "tracker.load", startedAt, err, nil) }()

	loc := s.clock.Now().Location()
	start, startErr := s.startDate.Get(ctx, loc)
	progress, progressErr := s.progress.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = progress
	s.start, s.started = start, startErr == nil

	switch {
	case startErr == nil, errors.Is(startErr, repository.ErrNotFound):
	case errors.Is(startErr, repository.ErrCorrupt):
		s.logger.Warn("ignoring stored start date", "error", startErr)
	default:
		return startErr
	}
	switch {
	case progressErr == nil:
	case errors.Is(progressErr, repository.ErrCorrupt):
		s.logger.Warn("ignoring stored progress", "error", progressErr)
	default:
		return progressErr
	}
	return nil
}

func (s *trackerService) StartDate() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start, s.started
}

// Start sets the plan start date to the calendar day of date and returns the
// plan day that falls on today.
func (s *trackerService) Start(ctx context.Context, date time.Time) (day int, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "tracker.start", startedAt, err, map[string]any{"day": day})
	}()

	if date.IsZero() {
		return 0, fmt.Errorf("start date: %w", dates.ErrInvalidDate)
	}
	today := s.clock.Now()
	start := dates.Normalize(date.In(today.Location()))

	s.mu.Lock()
	s.start, s.started = start, true
	s.mu.Unlock()

	if err := s.startDate.Set(ctx, start); err != nil {
		s.logger.Warn("start date not persisted", "error", err)
	}
	return stats.CurrentDay(start, today), nil
}

func (s *trackerService) Toggle(ctx context.Context, day int, slot domain.Slot) (*DayUpdate, error) {
	if err := validateSlot(slot); err != nil {
		return nil, err
	}
	return s.update(ctx, "tracker.toggle", day, func(p domain.DayProgress) domain.DayProgress {
		return p.Toggle(slot)
	})
}

func (s *trackerService) MarkAllDone(ctx context.Context, day int) (*DayUpdate, error) {
	return s.update(ctx, "tracker.mark_all_done", day, func(domain.DayProgress) domain.DayProgress {
		return domain.FullDay()
	})
}

// update applies fn to one day, persists the whole progress document and
// notifies the listener when the day just became validated.
func (s *trackerService) update(ctx context.Context, name string, day int, fn func(domain.DayProgress) domain.DayProgress) (result *DayUpdate, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, name, startedAt, err, map[string]any{"day": day}) }()

	if err := domain.ValidateDay(day); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil, ErrNotStarted
	}
	before := s.current.Day(day)
	after := fn(before)
	_ = s.current.Set(day, after)
	snapshot := s.current.Clone()
	s.mu.Unlock()

	s.logDayStats(day, after)
	if err := s.progress.Save(ctx, snapshot); err != nil {
		s.logger.Warn("progress not persisted", "day", day, "error", err)
	}

	result = &DayUpdate{Day: day, Progress: after, JustCompleted: !before.Complete() && after.Complete()}
	if result.JustCompleted && s.listener != nil {
		s.listener.DayCompleted(day)
	}
	return result, nil
}

func (s *trackerService) logDayStats(day int, p domain.DayProgress) {
	done := p.CompletedSlots()
	s.logger.Debug(fmt.Sprintf("[Stats] %s -> lectures terminées: %d/%d | progression=%.2f | jour_valide=%t",
		domain.DayID(day), done, domain.SlotsPerDay, float64(done)/domain.SlotsPerDay, p.Complete()))
}

// Reset forgets the start date and all progress. Notes are kept.
func (s *trackerService) Reset(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "tracker.reset", startedAt, err, nil) }()

	s.mu.Lock()
	s.start, s.started = time.Time{}, false
	s.current = &domain.Progress{}
	s.mu.Unlock()

	if err := s.clearStored(ctx); err != nil {
		s.logger.Warn("reset not persisted", "error", err)
	}
	return nil
}

func (s *trackerService) clearStored(ctx context.Context) error {
	clearAll := func(ctx context.Context, kv repository.KVStore) error {
		if err := repository.NewStartDateRepo(kv).Clear(ctx); err != nil {
			return err
		}
		return repository.NewProgressRepo(kv).Clear(ctx)
	}
	if s.uow == nil || s.factory == nil {
		return clearAll(ctx, s.kv)
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return clearAll(ctx, s.factory(tx))
	})
}

func (s *trackerService) Dashboard(ctx context.Context) (dash *Dashboard, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "tracker.dashboard", startedAt, err, nil) }()

	start, daily, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	today := dates.Normalize(s.clock.Now())

	summary := stats.Summarize(daily, start, today)
	status := scheduler.ComputeStatus(scheduler.StatusInput{Start: start, Today: today, Stats: daily})
	return &Dashboard{
		Start:      start,
		Today:      today,
		CurrentDay: stats.CurrentDay(start, today),
		Summary:    summary,
		Status:     status,
		Message:    scheduler.StatusMessage(status),
		Chart:      stats.ChartWindow(daily, summary.DaysElapsed),
	}, nil
}

func (s *trackerService) Day(ctx context.Context, n int) (view *DayView, err error) {
	startedAt := time.Now()
	defer func() { observe(ctx, s.observer, "tracker.day", startedAt, err, map[string]any{"day": n}) }()

	if err := domain.ValidateDay(n); err != nil {
		return nil, err
	}
	_, daily, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	stat := daily[n-1]
	view = &DayView{
		Day:  n,
		Date: stat.Date,
		Stat: stat,
	}
	s.mu.Lock()
	view.Progress = s.current.Day(n)
	s.mu.Unlock()

	if s.plan != nil {
		pd, err := s.plan.Day(n)
		if err != nil {
			return nil, err
		}
		view.Plan = &pd
	}
	return view, nil
}

// snapshot derives the daily stats from the current state.
func (s *trackerService) snapshot() (time.Time, []stats.DailyStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return time.Time{}, nil, ErrNotStarted
	}
	return s.start, stats.BuildDailyStats(s.start, s.current), nil
}

func validateSlot(slot domain.Slot) error {
	for _, s := range domain.Slots {
		if s == slot {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", domain.ErrInvalidSlot, slot)
}
