package model

import "time"

type Run struct {
	RunID     string    `gorm:"column:run_id;primaryKey"`
	GameID    string    `gorm:"column:game_id;uniqueIndex"`
	Lives     int32     `gorm:"column:lives"`
	Gold      int32     `gorm:"column:gold"`
	Level     int32     `gorm:"column:level"`
	Score     int32     `gorm:"column:score"`
	HighScore int32     `gorm:"column:high_score"`
	Turn      int32     `gorm:"column:turn"`
	Outcome   string    `gorm:"column:outcome"`
	StartedAt time.Time `gorm:"column:started_at"`
	EndedAt   time.Time `gorm:"column:ended_at"`
}

func (Run) TableName() string { return "runs" }

type RunEvent struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	GameID     string    `gorm:"column:game_id;index"`
	Turn       int32     `gorm:"column:turn"`
	OccurredAt time.Time `gorm:"column:occurred_at"`
	Text       string    `gorm:"column:text"`
}

func (RunEvent) TableName() string { return "run_events" }
