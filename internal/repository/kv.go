package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/lumieres/internal/db"
)

var (
	// ErrNotFound is returned when a key has no stored value.
	ErrNotFound = errors.New("not found")
	// ErrCorrupt is returned when a stored document cannot be decoded.
	// Loaders return it together with an empty, usable value.
	ErrCorrupt = errors.New("stored value is corrupt")
)

// Keys of the reading-plan documents.
const (
	KeyStartDate = "biblePlanStartDate"
	KeyProgress  = "biblePlanProgress"
	KeyNotes     = "biblePlanNotes_v1"
)

// KVStore is a string key-value store.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// KVFactory builds a store bound to a connection or transaction.
type KVFactory func(conn db.DBTX) KVStore
