package status

import (
	"context"
	"errors"
	"strings"

	"dragonbot/internal/app/session"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	Registry *session.Registry
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.GameID) == "" {
		return Response{}, ErrInvalidRequest
	}
	s, err := u.Registry.Lookup(req.GameID)
	if err != nil {
		return Response{}, err
	}
	return Response{State: s.State(), Outcome: s.Outcome()}, nil
}
