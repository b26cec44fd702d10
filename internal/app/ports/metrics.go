package ports

import "dragonbot/internal/domain/game"

type RunMetrics interface {
	RecordRunStarted()
	RecordRunFinished(outcome game.RunOutcome)
	RecordAttempt(success bool)
	RecordPurchase(goldSpent int)
}
