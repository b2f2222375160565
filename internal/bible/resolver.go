package bible

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alexanderramin/lumieres/internal/llm"
)

// CorpusSource provides the verse corpus.
type CorpusSource interface {
	Load(ctx context.Context) (*Corpus, error)
}

// Resolver turns reference strings into passages, from the corpus when it
// can and from the fallback otherwise. It never fails: problems surface as
// marker or placeholder content.
type Resolver struct {
	corpus   CorpusSource
	fallback Fallback
	logger   *slog.Logger
}

// NewResolver creates a Resolver. fallback may be nil, in which case the
// not-configured placeholder stands in for it.
func NewResolver(corpus CorpusSource, fallback Fallback, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{corpus: corpus, fallback: fallback, logger: logger}
}

// Passage resolves ref. The fallback is used when the corpus is unavailable
// or when the corpus holds no verse for any segment of ref.
func (r *Resolver) Passage(ctx context.Context, ref string) Passage {
	if CleanReference(ref) == "" {
		return Passage{Title: ref, Content: []ContentItem{}, Source: SourceLocal}
	}

	var local *Passage
	corpus, err := r.corpus.Load(ctx)
	if err == nil {
		p := Render(corpus, ref)
		if p.VerseCount() > 0 {
			return p
		}
		local = &p
		r.logger.Debug("corpus has no verses for reference", "ref", ref)
	}

	if r.fallback == nil {
		if local != nil {
			return *local
		}
		return NotConfiguredPassage()
	}

	p, err := r.fallback.Passage(ctx, ref)
	if err == nil {
		return p
	}
	r.logger.Warn("passage fallback failed", "ref", ref, "error", err)

	switch {
	case local != nil:
		return *local
	case errors.Is(err, llm.ErrMissingAPIKey), errors.Is(err, llm.ErrDisabled):
		return NotConfiguredPassage()
	default:
		return UnavailablePassage(ref)
	}
}
