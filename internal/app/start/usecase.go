package start

import (
	"context"

	"dragonbot/internal/app/session"
	"dragonbot/internal/domain/game"
)

type UseCase struct {
	Registry *session.Registry
}

type Request struct{}

type Response struct {
	State game.State `json:"state"`
}

func (u UseCase) Execute(ctx context.Context, _ Request) (Response, error) {
	_, state, err := u.Registry.Create(ctx)
	if err != nil {
		return Response{}, err
	}
	return Response{State: state}, nil
}
