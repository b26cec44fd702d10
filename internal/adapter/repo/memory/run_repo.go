package memory

import (
	"context"

	"dragonbot/internal/app/ports"
	"dragonbot/internal/domain/game"
)

type RunRepo struct {
	store *Store
}

func NewRunRepo(store *Store) RunRepo {
	return RunRepo{store: store}
}

func (r RunRepo) Save(_ context.Context, record game.RunRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.runs[record.GameID]; !exists {
		r.store.order = append(r.store.order, record.GameID)
	}
	r.store.runs[record.GameID] = record
	return nil
}

func (r RunRepo) GetByGameID(_ context.Context, gameID string) (game.RunRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	record, ok := r.store.runs[gameID]
	if !ok {
		return game.RunRecord{}, ports.ErrNotFound
	}
	return record, nil
}

// List returns the most recent runs first.
func (r RunRepo) List(_ context.Context, limit int) ([]game.RunRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]game.RunRecord, 0, len(r.store.order))
	for i := len(r.store.order) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, r.store.runs[r.store.order[i]])
	}
	return out, nil
}
