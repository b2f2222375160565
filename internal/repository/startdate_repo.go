package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lumieres/internal/dates"
)

// StartDateRepo persists the plan start date as an ISO-8601 timestamp.
type StartDateRepo struct {
	kv KVStore
}

func NewStartDateRepo(kv KVStore) *StartDateRepo {
	return &StartDateRepo{kv: kv}
}

// Get returns the start date as local midnight in loc. A missing value
// returns ErrNotFound; an unparseable one returns ErrCorrupt.
func (r *StartDateRepo) Get(ctx context.Context, loc *time.Location) (time.Time, error) {
	raw, err := r.kv.Get(ctx, KeyStartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("loading start date: %w", err)
	}
	t, err := dates.ParseStartDate(raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("start date %q: %w", raw, ErrCorrupt)
	}
	return t, nil
}

// Set stores local midnight of t.
func (r *StartDateRepo) Set(ctx context.Context, t time.Time) error {
	if err := r.kv.Set(ctx, KeyStartDate, dates.FormatTimestamp(dates.Normalize(t))); err != nil {
		return fmt.Errorf("saving start date: %w", err)
	}
	return nil
}

// Clear removes the stored start date.
func (r *StartDateRepo) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, KeyStartDate); err != nil {
		return fmt.Errorf("clearing start date: %w", err)
	}
	return nil
}
