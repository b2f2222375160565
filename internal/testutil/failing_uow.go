package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/alexanderramin/lumieres/internal/db"
)

// FailOnNthExecUoW is a test UoW that injects an error on the Nth ExecContext
// call within a transaction. This enables rollback integration tests by
// simulating failures at precise points in multi-write operations.
//
// ExecContext calls are counted starting at 1. QueryContext and QueryRowContext
// are not counted (reads pass through normally).
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failOnNthExec{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.count.Add(1)
	if n == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// KV mirrors repository.KVStore without importing it.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// FailingKV wraps a store and injects Err into the operations whose Fail
// flag is set. Writes counts every Set call, failed or not.
type FailingKV struct {
	Inner      KV
	Err        error
	FailGet    bool
	FailSet    bool
	FailDelete bool

	mu     sync.Mutex
	writes int
}

func NewFailingKV(inner KV, err error) *FailingKV {
	return &FailingKV{Inner: inner, Err: err}
}

func (f *FailingKV) Get(ctx context.Context, key string) (string, error) {
	if f.FailGet {
		return "", f.Err
	}
	return f.Inner.Get(ctx, key)
}

func (f *FailingKV) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	f.writes++
	f.mu.Unlock()
	if f.FailSet {
		return f.Err
	}
	return f.Inner.Set(ctx, key, value)
}

func (f *FailingKV) Delete(ctx context.Context, key string) error {
	if f.FailDelete {
		return f.Err
	}
	return f.Inner.Delete(ctx, key)
}

// Writes returns the number of Set calls.
func (f *FailingKV) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}
