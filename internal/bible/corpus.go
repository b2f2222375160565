package bible

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// DefaultCorpusURL serves the Louis Segond 1910 verse corpus.
const DefaultCorpusURL = "https://cdn.jsdelivr.net/gh/HardyNk242/lsg_bible@main/segond_1910.json"

// ErrCorpusUnavailable is returned once a corpus download has failed. The
// loader does not try again for the rest of the process.
var ErrCorpusUnavailable = errors.New("verse corpus unavailable")

// CorpusLoader downloads the verse corpus once and keeps it. The first
// success is cached and the first failure is permanent.
type CorpusLoader struct {
	url    string
	http   *http.Client
	logger *slog.Logger

	mu          sync.Mutex
	corpus      *Corpus
	unavailable bool
}

// NewCorpusLoader creates a loader for url. A nil client gets a default with
// a one minute timeout.
func NewCorpusLoader(url string, client *http.Client, logger *slog.Logger) *CorpusLoader {
	if client == nil {
		client = &http.Client{Timeout: time.Minute}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CorpusLoader{url: url, http: client, logger: logger}
}

// Load returns the cached corpus, downloading it on first use. Concurrent
// callers wait for the same download.
func (l *CorpusLoader) Load(ctx context.Context) (*Corpus, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.corpus != nil {
		return l.corpus, nil
	}
	if l.unavailable {
		return nil, ErrCorpusUnavailable
	}

	l.logger.Info("downloading verse corpus", "url", l.url)
	start := time.Now()
	corpus, err := l.fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			// The caller gave up; the source itself has not failed.
			return nil, ctx.Err()
		}
		l.unavailable = true
		l.logger.Warn("verse corpus unavailable, using fallback for the rest of the session",
			"url", l.url, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}

	corpus.Books()
	l.corpus = corpus
	l.logger.Info("verse corpus loaded",
		"verses", len(corpus.Verses),
		"books", len(corpus.books),
		"latency_ms", time.Since(start).Milliseconds())
	return corpus, nil
}

// Unavailable reports whether a download has failed.
func (l *CorpusLoader) Unavailable() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.unavailable
}

func (l *CorpusLoader) fetch(ctx context.Context) (*Corpus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("corpus download returned status %d", resp.StatusCode)
	}

	var corpus Corpus
	if err := json.NewDecoder(resp.Body).Decode(&corpus); err != nil {
		return nil, fmt.Errorf("decoding corpus: %w", err)
	}
	if len(corpus.Verses) == 0 {
		return nil, errors.New("corpus has no verses")
	}
	return &corpus, nil
}
