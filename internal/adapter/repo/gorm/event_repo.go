package gormrepo

import (
	"context"

	"dragonbot/internal/adapter/repo/gorm/model"
	"dragonbot/internal/app/ports"
	"dragonbot/internal/domain/game"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, gameID string, entries []game.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	rows := make([]model.RunEvent, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, model.RunEvent{
			GameID:     gameID,
			Turn:       int32(e.Turn),
			OccurredAt: e.At,
			Text:       e.Text,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

// ListByGameID returns entries in insertion order; a positive limit keeps
// only the newest ones, matching the live session log's tail behavior.
func (r EventRepo) ListByGameID(ctx context.Context, gameID string, limit int) ([]game.LogEntry, error) {
	rows := []model.RunEvent{}
	query := getDBFromCtx(ctx, r.db).
		Where("game_id = ?", gameID).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "id"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}
	out := make([]game.LogEntry, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = game.LogEntry{
			Turn: int(row.Turn),
			At:   row.OccurredAt,
			Text: row.Text,
		}
	}
	return out, nil
}
