package probe

import (
	"context"
	"errors"
	"strings"

	"dragonbot/internal/app/ports"
	"dragonbot/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid probe request")

// UseCase exposes read-only looks at the remote game without touching any
// session state: the current quest listing, the shop, and reputation.
type UseCase struct {
	Client ports.GameClient
}

func (u UseCase) Messages(ctx context.Context, gameID string) ([]game.Quest, error) {
	if strings.TrimSpace(gameID) == "" {
		return nil, ErrInvalidRequest
	}
	raws, err := u.Client.Messages(ctx, gameID)
	if err != nil {
		return nil, err
	}
	quests := make([]game.Quest, 0, len(raws))
	for _, raw := range raws {
		quests = append(quests, game.Decode(raw))
	}
	return quests, nil
}

func (u UseCase) Shop(ctx context.Context, gameID string) ([]game.ShopItem, error) {
	if strings.TrimSpace(gameID) == "" {
		return nil, ErrInvalidRequest
	}
	return u.Client.Shop(ctx, gameID)
}

func (u UseCase) Reputation(ctx context.Context, gameID string) (game.Reputation, error) {
	if strings.TrimSpace(gameID) == "" {
		return game.Reputation{}, ErrInvalidRequest
	}
	return u.Client.Reputation(ctx, gameID)
}
