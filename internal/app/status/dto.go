package status

import "dragonbot/internal/domain/game"

type Request struct {
	GameID string
}

type Response struct {
	State   game.State      `json:"state"`
	Outcome game.RunOutcome `json:"outcome,omitempty"`
}
