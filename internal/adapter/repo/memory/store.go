package memory

import (
	"sync"

	"dragonbot/internal/domain/game"
)

// Store is the process-local stand-in for postgres, used when no DB_DSN is
// configured. One mutex guards both tables; the write volume is one run
// record plus its log per finished game.
type Store struct {
	mu     sync.RWMutex
	runs   map[string]game.RunRecord
	order  []string
	events map[string][]game.LogEntry
}

func NewStore() *Store {
	return &Store{
		runs:   make(map[string]game.RunRecord),
		events: make(map[string][]game.LogEntry),
	}
}
