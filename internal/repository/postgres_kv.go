package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/lumieres/internal/db"
)

// PostgresKVStore implements KVStore on the kv table of a PostgreSQL
// database.
type PostgresKVStore struct {
	db db.DBTX
}

// NewPostgresKVStore creates a new PostgresKVStore.
func NewPostgresKVStore(conn db.DBTX) *PostgresKVStore {
	return &PostgresKVStore{db: conn}
}

// PostgresKVFactory is a KVFactory for Postgres connections.
func PostgresKVFactory(conn db.DBTX) KVStore {
	return NewPostgresKVStore(conn)
}

func (s *PostgresKVStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("key %s: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading key %s: %w", key, err)
	}
	return value, nil
}

func (s *PostgresKVStore) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("writing key %s: %w", key, err)
	}
	return nil
}

func (s *PostgresKVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = $1`, key); err != nil {
		return fmt.Errorf("deleting key %s: %w", key, err)
	}
	return nil
}
