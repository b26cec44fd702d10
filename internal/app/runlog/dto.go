package runlog

import "dragonbot/internal/domain/game"

type Request struct {
	GameID string
	Limit  int
}

type Response struct {
	Entries []game.LogEntry `json:"entries"`
}
