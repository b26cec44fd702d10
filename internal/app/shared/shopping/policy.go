package shopping

import (
	"strings"

	"dragonbot/internal/domain/game"
)

const healingMarker = "healing"

// Decision is what the policy wants bought this turn, if anything.
type Decision struct {
	Buy       bool
	Item      game.ShopItem
	Emergency bool
}

// Decide picks at most one purchase for the turn. Priority order: an
// emergency healing buy when lives sit at or under the danger threshold,
// then the most expensive affordable unowned item (collection), then the
// most expensive affordable item outright (upgrade). Healing items are
// reserved for the emergency branch; picking one outside it skips the
// purchase instead. Cost ties go to the first item in listing order.
func Decide(state game.State, owned map[string]bool, items []game.ShopItem) Decision {
	if state.Gold < game.MinShoppingGold {
		return Decision{}
	}

	affordable := make([]game.ShopItem, 0, len(items))
	for _, item := range items {
		if item.Cost <= state.Gold {
			affordable = append(affordable, item)
		}
	}

	if state.Lives <= game.DangerThreshold(state.Turn) {
		if potion, ok := firstHealing(affordable); ok {
			return Decision{Buy: true, Item: potion, Emergency: true}
		}
	}

	if len(affordable) == 0 {
		return Decision{}
	}

	unowned := make([]game.ShopItem, 0, len(affordable))
	for _, item := range affordable {
		if !owned[item.ID] {
			unowned = append(unowned, item)
		}
	}

	pick := mostExpensive(affordable)
	if len(unowned) > 0 {
		pick = mostExpensive(unowned)
	}
	if isHealing(pick) {
		return Decision{}
	}
	return Decision{Buy: true, Item: pick}
}

func firstHealing(items []game.ShopItem) (game.ShopItem, bool) {
	for _, item := range items {
		if isHealing(item) {
			return item, true
		}
	}
	return game.ShopItem{}, false
}

func isHealing(item game.ShopItem) bool {
	return strings.Contains(strings.ToLower(item.Name), healingMarker)
}

func mostExpensive(items []game.ShopItem) game.ShopItem {
	best := items[0]
	for _, item := range items[1:] {
		if item.Cost > best.Cost {
			best = item
		}
	}
	return best
}
