package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/lumieres/internal/domain"
	"github.com/alexanderramin/lumieres/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewSQLiteKVStore(testutil.NewTestDB(t))
	repo := NewNotesRepo(kv)

	notes := domain.Notes{
		"day_1": {domain.SlotMorning: "  Genèse 1, la lumière  ", domain.SlotEvening: "   "},
		"day_2": {domain.SlotMidday: ""},
	}
	require.NoError(t, repo.Save(ctx, notes))

	raw, err := kv.Get(ctx, KeyNotes)
	require.NoError(t, err)
	assert.JSONEq(t, `{"day_1":{"matin":"Genèse 1, la lumière"}}`, raw)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Notes{"day_1": {domain.SlotMorning: "Genèse 1, la lumière"}}, got)

	assert.Len(t, notes["day_1"], 2, "Save does not modify its argument")
}

func TestNotesRepo_MissingIsEmpty(t *testing.T) {
	got, err := NewNotesRepo(NewMemoryKVStore()).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNotesRepo_DropsUnknownEntries(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKVStore()
	require.NoError(t, kv.Set(ctx, KeyNotes, `{
		"day_1": {"matin": "ok", "morning": "alias", "midi": 3, "soir": " "},
		"day_2": {"other": "x"}
	}`))

	got, err := NewNotesRepo(kv).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Notes{"day_1": {domain.SlotMorning: "ok"}}, got)
}

func TestNotesRepo_Corrupt(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKVStore()
	require.NoError(t, kv.Set(ctx, KeyNotes, `{"day_1": "flat"}`))

	got, err := NewNotesRepo(kv).Load(ctx)
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
