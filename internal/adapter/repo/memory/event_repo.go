package memory

import (
	"context"

	"dragonbot/internal/app/ports"
	"dragonbot/internal/domain/game"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, gameID string, entries []game.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events[gameID] = append(r.store.events[gameID], entries...)
	return nil
}

func (r EventRepo) ListByGameID(_ context.Context, gameID string, limit int) ([]game.LogEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	entries, ok := r.store.events[gameID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	out := make([]game.LogEntry, len(entries))
	copy(out, entries)
	return out, nil
}
