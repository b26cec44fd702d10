package ports

import (
	"context"

	"dragonbot/internal/domain/game"
)

// GameClient is the remote game service. Implementations translate transport
// failures into *APIError; they never retry.
type GameClient interface {
	StartGame(ctx context.Context) (game.State, error)
	Messages(ctx context.Context, gameID string) ([]game.RawQuest, error)
	Solve(ctx context.Context, gameID, adID string) (game.SolveResult, error)
	Shop(ctx context.Context, gameID string) ([]game.ShopItem, error)
	Buy(ctx context.Context, gameID, itemID string) (game.PurchaseResult, error)
	Reputation(ctx context.Context, gameID string) (game.Reputation, error)
}
