package session

import (
	"context"
	"sync"
	"time"

	"dragonbot/internal/app/play"
	"dragonbot/internal/app/ports"
	"dragonbot/internal/domain/game"
)

const DefaultTTL = time.Hour

// Registry tracks live sessions by their remote game id. It replaces the
// ambient global map of the earlier design: handlers get it injected and
// stale sessions age out instead of leaking.
type Registry struct {
	factory func() *play.Session
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]entry
}

type entry struct {
	session   *play.Session
	createdAt time.Time
}

func NewRegistry(factory func() *play.Session, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		factory:  factory,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]entry),
	}
}

// Create starts a new remote game and registers the session under the game
// id the service issued.
func (r *Registry) Create(ctx context.Context) (*play.Session, game.State, error) {
	s := r.factory()
	state, err := s.Start(ctx)
	if err != nil {
		return nil, game.State{}, err
	}

	r.mu.Lock()
	r.expireLocked()
	r.sessions[state.GameID] = entry{session: s, createdAt: r.now()}
	r.mu.Unlock()
	return s, state, nil
}

func (r *Registry) Lookup(gameID string) (*play.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expireLocked()
	e, ok := r.sessions[gameID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return e.session, nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expireLocked()
	return len(r.sessions)
}

func (r *Registry) expireLocked() {
	cutoff := r.now().Add(-r.ttl)
	for id, e := range r.sessions {
		if e.createdAt.Before(cutoff) {
			delete(r.sessions, id)
		}
	}
}
