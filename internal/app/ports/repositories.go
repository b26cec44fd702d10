package ports

import (
	"context"

	"dragonbot/internal/domain/game"
)

type RunRepository interface {
	Save(ctx context.Context, record game.RunRecord) error
	GetByGameID(ctx context.Context, gameID string) (game.RunRecord, error)
	List(ctx context.Context, limit int) ([]game.RunRecord, error)
}

type RunEventRepository interface {
	Append(ctx context.Context, gameID string, entries []game.LogEntry) error
	ListByGameID(ctx context.Context, gameID string, limit int) ([]game.LogEntry, error)
}
