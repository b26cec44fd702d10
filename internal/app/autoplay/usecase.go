package autoplay

import (
	"context"
	"errors"
	"strings"

	"dragonbot/internal/app/play"
	"dragonbot/internal/app/ports"
	"dragonbot/internal/app/session"
	"dragonbot/internal/domain/game"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidRequest = errors.New("invalid autoplay request")

type UseCase struct {
	Registry *session.Registry
	Runs     ports.RunRepository
	Events   ports.RunEventRepository
	Tx       ports.TxManager
	Logger   *zap.Logger
}

// Execute plays a started session to completion and archives the result.
// Archival is best-effort: a storage failure is logged but never turns a
// finished run into an API error.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.GameID) == "" {
		return Response{}, ErrInvalidRequest
	}
	s, err := u.Registry.Lookup(req.GameID)
	if err != nil {
		return Response{}, err
	}

	final, err := s.Play(ctx)
	if err != nil {
		return Response{}, err
	}

	resp := Response{State: final, Outcome: s.Outcome()}
	if u.Runs != nil {
		resp.RunID = u.archive(ctx, s)
	}
	return resp, nil
}

func (u UseCase) archive(ctx context.Context, s *play.Session) string {
	final := s.State()
	startedAt, endedAt := s.Window()
	record := game.NewRunRecord(uuid.NewString(), final, s.Outcome(), startedAt, endedAt)

	save := func(ctx context.Context) error {
		if err := u.Runs.Save(ctx, record); err != nil {
			return err
		}
		if u.Events == nil {
			return nil
		}
		return u.Events.Append(ctx, final.GameID, s.Log())
	}

	var err error
	if u.Tx != nil {
		err = u.Tx.RunInTx(ctx, save)
	} else {
		err = save(ctx)
	}
	if err != nil {
		u.log().Warn("failed to archive run",
			zap.String("game_id", final.GameID),
			zap.String("run_id", record.RunID),
			zap.Error(err),
		)
		return ""
	}
	return record.RunID
}

func (u UseCase) log() *zap.Logger {
	if u.Logger == nil {
		return zap.NewNop()
	}
	return u.Logger
}
