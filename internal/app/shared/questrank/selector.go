package questrank

import (
	"sort"
	"strings"

	"dragonbot/internal/domain/game"
)

const (
	// Scores of 0 and 1 (Impossible, Suicide mission) are only played when
	// nothing better is on offer.
	minViableRiskScore = 2

	// Quests at or below this expiry vanish before or right after this turn.
	expiryHorizon = 1
)

const stealMarker = "Steal"
const profitShareMarker = "share some of the profits with the people"

type rankedQuest struct {
	quest     game.Quest
	riskScore int
}

// SelectBest decodes the turn's quest listing and picks the one to attempt.
// Each filter stage falls back to its input pool rather than emptying the
// candidate set: when the listing is non-empty, something is always selected.
func SelectBest(raws []game.RawQuest) (game.Quest, bool) {
	if len(raws) == 0 {
		return game.Quest{}, false
	}

	pool := make([]rankedQuest, 0, len(raws))
	for _, raw := range raws {
		q := game.Decode(raw)
		pool = append(pool, rankedQuest{quest: q, riskScore: game.RiskScore(q.RiskLevel)})
	}

	pool = keepOrFallBack(pool, func(r rankedQuest) bool {
		return r.riskScore >= minViableRiskScore
	})
	pool = keepOrFallBack(pool, func(r rankedQuest) bool {
		return r.quest.ExpiresIn > expiryHorizon
	})
	pool = keepOrFallBack(pool, isEthical)

	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].riskScore != pool[j].riskScore {
			return pool[i].riskScore > pool[j].riskScore
		}
		return pool[i].quest.Reward > pool[j].quest.Reward
	})
	return pool[0].quest, true
}

// isEthical rejects theft jobs unless the proceeds are shared with the people
// they were taken from.
func isEthical(r rankedQuest) bool {
	if !strings.Contains(r.quest.Description, stealMarker) {
		return true
	}
	return strings.Contains(r.quest.Description, profitShareMarker)
}

func keepOrFallBack(pool []rankedQuest, keep func(rankedQuest) bool) []rankedQuest {
	kept := make([]rankedQuest, 0, len(pool))
	for _, r := range pool {
		if keep(r) {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return pool
	}
	return kept
}
