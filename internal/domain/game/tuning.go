package game

import "time"

const (
	// TargetScore ends a run as a success once reached.
	TargetScore = 30000

	// MinShoppingGold is the flat floor below which the shop is not even
	// listed; spending the whole buffer on trivia is worse than holding.
	MinShoppingGold = 50

	// Emergency healing triggers when lives <= turn/DangerTurnDivisor
	// (rounded) + DangerBaseLives. The margin loosens as turns accumulate.
	DangerTurnDivisor = 20
	DangerBaseLives   = 2

	// DefaultMaxTurns is a safety valve against a runaway loop on a live
	// remote; a winning run finishes well under it.
	DefaultMaxTurns = 400

	// DefaultTurnDelay paces remote calls between turns.
	DefaultTurnDelay = 500 * time.Millisecond
)

// DangerThreshold reports the lives level at or below which healing becomes
// the only acceptable purchase for the turn.
func DangerThreshold(turn int) int {
	return roundDiv(turn, DangerTurnDivisor) + DangerBaseLives
}

func roundDiv(n, d int) int {
	return (n + d/2) / d
}
