// Package persist bridges the board to durable storage: the key/value store
// that survives restarts, and project files that users download and import.
package persist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mmynk/classboard/internal/models"
	"github.com/mmynk/classboard/internal/storage"
)

// StorageKey is the key the whole board is stored under.
const StorageKey = "classHelperData"

// Local saves the board as one JSON document in a storage.Store.
type Local struct {
	store storage.Store
	key   string
}

// NewLocal creates a Local on top of store using StorageKey.
func NewLocal(store storage.Store) *Local {
	return &Local{store: store, key: StorageKey}
}

// Load returns the saved state, or storage.ErrNotFound when nothing was saved.
func (l *Local) Load(ctx context.Context) (models.AppState, error) {
	data, err := l.store.Get(ctx, l.key)
	if err != nil {
		return models.AppState{}, err
	}
	var state models.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return models.AppState{}, fmt.Errorf("failed to decode saved board: %w", err)
	}
	return state, nil
}

// Save replaces the saved state.
func (l *Local) Save(ctx context.Context, state models.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}
	return l.store.Put(ctx, l.key, data)
}
