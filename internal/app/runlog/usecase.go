package runlog

import (
	"context"
	"errors"
	"strings"

	"dragonbot/internal/app/ports"
	"dragonbot/internal/app/session"
)

var ErrInvalidRequest = errors.New("invalid runlog request")

type UseCase struct {
	Registry *session.Registry
	Events   ports.RunEventRepository
}

// Execute returns the run narrative for a game: the live session log while
// the session is still registered, the archived events afterwards.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.GameID) == "" {
		return Response{}, ErrInvalidRequest
	}

	if s, err := u.Registry.Lookup(req.GameID); err == nil {
		entries := s.Log()
		if req.Limit > 0 && len(entries) > req.Limit {
			entries = entries[len(entries)-req.Limit:]
		}
		return Response{Entries: entries}, nil
	}

	if u.Events == nil {
		return Response{}, ports.ErrNotFound
	}
	entries, err := u.Events.ListByGameID(ctx, req.GameID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	return Response{Entries: entries}, nil
}
