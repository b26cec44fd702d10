package gormrepo

import (
	"context"
	"errors"

	"dragonbot/internal/adapter/repo/gorm/model"
	"dragonbot/internal/app/ports"
	"dragonbot/internal/domain/game"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RunRepo struct {
	db *gorm.DB
}

func NewRunRepo(db *gorm.DB) RunRepo {
	return RunRepo{db: db}
}

func (r RunRepo) Save(ctx context.Context, record game.RunRecord) error {
	m := toRunModel(record)
	// Re-archiving the same game id overwrites the previous summary.
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "game_id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}

func (r RunRepo) GetByGameID(ctx context.Context, gameID string) (game.RunRecord, error) {
	var m model.Run
	if err := getDBFromCtx(ctx, r.db).Where("game_id = ?", gameID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.RunRecord{}, ports.ErrNotFound
		}
		return game.RunRecord{}, err
	}
	return fromRunModel(m), nil
}

func (r RunRepo) List(ctx context.Context, limit int) ([]game.RunRecord, error) {
	rows := []model.Run{}
	query := getDBFromCtx(ctx, r.db).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "ended_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]game.RunRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromRunModel(row))
	}
	return out, nil
}

func toRunModel(record game.RunRecord) model.Run {
	return model.Run{
		RunID:     record.RunID,
		GameID:    record.GameID,
		Lives:     int32(record.Lives),
		Gold:      int32(record.Gold),
		Level:     int32(record.Level),
		Score:     int32(record.Score),
		HighScore: int32(record.HighScore),
		Turn:      int32(record.Turn),
		Outcome:   string(record.Outcome),
		StartedAt: record.StartedAt,
		EndedAt:   record.EndedAt,
	}
}

func fromRunModel(m model.Run) game.RunRecord {
	return game.RunRecord{
		RunID:     m.RunID,
		GameID:    m.GameID,
		Lives:     int(m.Lives),
		Gold:      int(m.Gold),
		Level:     int(m.Level),
		Score:     int(m.Score),
		HighScore: int(m.HighScore),
		Turn:      int(m.Turn),
		Outcome:   game.RunOutcome(m.Outcome),
		StartedAt: m.StartedAt,
		EndedAt:   m.EndedAt,
	}
}
