package service

import (
	"context"
	"time"

	"github.com/alexanderramin/lumieres/internal/bible"
	"github.com/alexanderramin/lumieres/internal/domain"
	"github.com/alexanderramin/lumieres/internal/plan"
)

// PassageResolver turns a reference into displayable text.
type PassageResolver interface {
	Passage(ctx context.Context, ref string) bible.Passage
}

type readerService struct {
	plan     *plan.Plan
	resolver PassageResolver
	observer UseCaseObserver
}

// NewReaderService resolves plan readings through resolver. A nil plan makes
// Read fail with plan.ErrNoPlan; ReadReference still works.
func NewReaderService(p *plan.Plan, resolver PassageResolver, observers ...UseCaseObserver) ReaderService {
	return &readerService{plan: p, resolver: resolver, observer: useCaseObserverOrNoop(observers)}
}

func (s *readerService) Read(ctx context.Context, day int, slot domain.Slot) (reading *Reading, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "reader.read", startedAt, err, map[string]any{"day": day, "slot": string(slot)})
	}()

	if err := validateSlot(slot); err != nil {
		return nil, err
	}
	if s.plan == nil {
		return nil, plan.ErrNoPlan
	}
	pd, err := s.plan.Day(day)
	if err != nil {
		return nil, err
	}
	ref := pd.Reference(slot)
	return &Reading{
		Day:       day,
		Slot:      slot,
		Reference: ref,
		Passage:   s.resolver.Passage(ctx, ref),
	}, nil
}

func (s *readerService) ReadReference(ctx context.Context, ref string) bible.Passage {
	startedAt := time.Now()
	p := s.resolver.Passage(ctx, ref)
	observe(ctx, s.observer, "reader.read_reference", startedAt, nil, map[string]any{
		"source": string(p.Source),
		"verses": p.VerseCount(),
	})
	return p
}
