package repository

import (
	"context"
	"os"
	"testing"

	"github.com/alexanderramin/lumieres/internal/db"
	"github.com/alexanderramin/lumieres/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kvContract exercises the behaviour every KVStore shares.
func kvContract(t *testing.T, kv KVStore) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, "k", "v1"))
	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	require.NoError(t, kv.Set(ctx, "k", "v2"))
	got, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)

	require.NoError(t, kv.Delete(ctx, "k"))
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Delete(ctx, "k"), "deleting a missing key is not an error")
}

func TestSQLiteKVStore(t *testing.T) {
	kvContract(t, NewSQLiteKVStore(testutil.NewTestDB(t)))
}

func TestMemoryKVStore(t *testing.T) {
	kvContract(t, NewMemoryKVStore())
}

func TestPostgresKVStore(t *testing.T) {
	dsn := os.Getenv("LUMIERES_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("LUMIERES_TEST_POSTGRES_DSN not set")
	}
	conn, err := db.OpenPostgres(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	kv := NewPostgresKVStore(conn)
	t.Cleanup(func() { _ = kv.Delete(context.Background(), "k") })
	kvContract(t, kv)
}

func TestSQLiteKVStore_RecordsUpdateTime(t *testing.T) {
	database := testutil.NewTestDB(t)
	kv := NewSQLiteKVStore(database)
	require.NoError(t, kv.Set(context.Background(), KeyProgress, "{}"))

	var updated string
	require.NoError(t, database.QueryRow(`SELECT updated_at FROM kv WHERE key = ?`, KeyProgress).Scan(&updated))
	assert.NotEmpty(t, updated)
}

func TestSQLiteKVStore_RollbackDiscardsWrites(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: assert.AnError}

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		kv := SQLiteKVFactory(tx)
		if err := kv.Set(ctx, KeyStartDate, "2025-01-01"); err != nil {
			return err
		}
		return kv.Set(ctx, KeyProgress, "{}")
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = NewSQLiteKVStore(database).Get(ctx, KeyStartDate)
	assert.ErrorIs(t, err, ErrNotFound)
}
