package repository

import (
	"context"
	"errors"
	"time"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// getOptional reads key, reporting a missing key as ok=false rather than an
// error.
func getOptional(ctx context.Context, kv KVStore, key string) (value string, ok bool, err error) {
	value, err = kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}
