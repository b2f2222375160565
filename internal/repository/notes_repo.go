package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/lumieres/internal/domain"
)

// NotesRepo persists reading notes as a JSON object keyed by day ID.
type NotesRepo struct {
	kv KVStore
}

func NewNotesRepo(kv KVStore) *NotesRepo {
	return &NotesRepo{kv: kv}
}

// Load reads the stored notes, pruned of blank entries. Unknown slots and
// non-string values are dropped. An undecodable document yields empty notes
// and ErrCorrupt.
func (r *NotesRepo) Load(ctx context.Context) (domain.Notes, error) {
	raw, ok, err := getOptional(ctx, r.kv, KeyNotes)
	if err != nil {
		return domain.Notes{}, fmt.Errorf("loading notes: %w", err)
	}
	if !ok {
		return domain.Notes{}, nil
	}

	var stored map[string]map[string]any
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return domain.Notes{}, fmt.Errorf("notes: %w: %v", ErrCorrupt, err)
	}

	notes := domain.Notes{}
	for dayID, slots := range stored {
		for key, v := range slots {
			text, isString := v.(string)
			if !isString {
				continue
			}
			slot, err := domain.ParseSlot(key)
			if err != nil || string(slot) != key {
				continue
			}
			notes.Set(dayID, slot, text)
		}
	}
	return notes, nil
}

// Save writes notes after pruning blank entries from a copy.
func (r *NotesRepo) Save(ctx context.Context, notes domain.Notes) error {
	pruned := domain.Notes{}
	for dayID, slots := range notes {
		for slot, text := range slots {
			pruned.Set(dayID, slot, text)
		}
	}
	data, err := json.Marshal(pruned)
	if err != nil {
		return fmt.Errorf("encoding notes: %w", err)
	}
	if err := r.kv.Set(ctx, KeyNotes, string(data)); err != nil {
		return fmt.Errorf("saving notes: %w", err)
	}
	return nil
}
