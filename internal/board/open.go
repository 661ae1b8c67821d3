package board

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmynk/classboard/internal/models"
	"github.com/mmynk/classboard/internal/storage"
)

// Persister loads and saves the whole board state.
type Persister interface {
	Load(ctx context.Context) (models.AppState, error)
	Save(ctx context.Context, state models.AppState) error
}

// Open builds a board with defaults, rehydrates it once from p, and then
// writes every state change back through p. A failed load is logged and the
// defaults are kept; a failed save is logged and does not undo the change.
func Open(ctx context.Context, p Persister, opts Options) *Board {
	if opts.Limits.Capacities == nil {
		opts.Limits = DefaultLimits()
	}

	initial := opts.Limits.DefaultState()
	saved, err := p.Load(ctx)
	switch {
	case err == nil:
		initial = saved
		slog.Info("Board rehydrated", "people_count", len(saved.People))
	case errors.Is(err, storage.ErrNotFound):
		slog.Info("No saved board, starting from defaults")
	default:
		slog.Error("Failed to load saved board, keeping defaults", "error", err)
	}

	b := New(initial, opts)

	saveCtx := context.WithoutCancel(ctx)
	b.store.OnChange(func(state models.AppState) {
		if err := p.Save(saveCtx, state); err != nil {
			slog.Error("Failed to save board", "error", err)
		}
	})
	return b
}
