package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	metricsinmem "dragonbot/internal/adapter/metrics/inmemory"
	"dragonbot/internal/adapter/mugloar"
	"dragonbot/internal/app/play"
	"dragonbot/internal/config"
	"dragonbot/internal/domain/game"
	"dragonbot/internal/platform/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Console runner: plays a single game to completion and prints the result.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := mugloar.NewClient(cfg.GameAPIBaseURL, cfg.GameAPITimeout)
	recorder := metricsinmem.NewRecorder()
	s := play.NewSession(client, recorder, zlog, play.Config{
		TargetScore: cfg.TargetScore,
		MaxTurns:    cfg.MaxTurns,
		TurnDelay:   cfg.TurnDelay,
	})

	state, err := s.Start(ctx)
	if err != nil {
		zlog.Error("start game", zap.Error(err))
		os.Exit(1)
	}
	zlog.Info("game started", zap.String("gameId", state.GameID))

	final, err := s.Play(ctx)
	if err != nil {
		zlog.Error("play game", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("game %s finished: %s\n", final.GameID, s.Outcome())
	fmt.Printf("score=%d lives=%d gold=%d level=%d turn=%d\n",
		final.Score, final.Lives, final.Gold, final.Level, final.Turn)
	if s.Outcome() != game.OutcomeTargetReached {
		os.Exit(2)
	}
}
