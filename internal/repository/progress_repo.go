package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/lumieres/internal/domain"
)

// ProgressRepo persists plan progress as a JSON object keyed by day ID.
type ProgressRepo struct {
	kv KVStore
}

func NewProgressRepo(kv KVStore) *ProgressRepo {
	return &ProgressRepo{kv: kv}
}

// Load reads the stored progress. A missing document is an empty plan. A
// document that is not a JSON object yields an empty plan and ErrCorrupt.
func (r *ProgressRepo) Load(ctx context.Context) (*domain.Progress, error) {
	raw, ok, err := getOptional(ctx, r.kv, KeyProgress)
	if err != nil {
		return &domain.Progress{}, fmt.Errorf("loading progress: %w", err)
	}
	if !ok {
		return &domain.Progress{}, nil
	}
	return DecodeProgress(raw)
}

// Save writes the non-empty days of p.
func (r *ProgressRepo) Save(ctx context.Context, p *domain.Progress) error {
	data, err := EncodeProgress(p)
	if err != nil {
		return err
	}
	if err := r.kv.Set(ctx, KeyProgress, data); err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}
	return nil
}

// Clear removes the stored progress.
func (r *ProgressRepo) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, KeyProgress); err != nil {
		return fmt.Errorf("clearing progress: %w", err)
	}
	return nil
}

// DecodeProgress parses a stored progress document, upgrading legacy
// entries. Keys that are not plan day IDs are dropped.
func DecodeProgress(raw string) (*domain.Progress, error) {
	p := &domain.Progress{}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return p, fmt.Errorf("progress: %w: %v", ErrCorrupt, err)
	}

	for key, d := range MigrateLegacyProgress(entries) {
		n, err := domain.ParseDayID(key)
		if err != nil {
			continue
		}
		_ = p.Set(n, d)
	}
	return p, nil
}

// MigrateLegacyProgress converts stored entries to DayProgress. Older
// versions stored a bare boolean per day: true means every slot is done and
// false means nothing is. Object entries pass through; any other value is
// dropped.
func MigrateLegacyProgress(entries map[string]json.RawMessage) map[string]domain.DayProgress {
	out := make(map[string]domain.DayProgress, len(entries))
	for key, raw := range entries {
		raw = bytes.TrimSpace(raw)
		switch {
		case bytes.Equal(raw, []byte("true")):
			out[key] = domain.FullDay()
		case len(raw) > 0 && raw[0] == '{':
			var d domain.DayProgress
			if err := json.Unmarshal(raw, &d); err != nil {
				continue
			}
			out[key] = d
		}
	}
	return out
}

// EncodeProgress renders the persisted form of p.
func EncodeProgress(p *domain.Progress) (string, error) {
	data, err := json.Marshal(p.Entries())
	if err != nil {
		return "", fmt.Errorf("encoding progress: %w", err)
	}
	return string(data), nil
}
