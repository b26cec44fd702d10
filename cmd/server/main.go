package main

import (
	"context"
	"log"
	"time"

	httpadapter "dragonbot/internal/adapter/http"
	metricsinmem "dragonbot/internal/adapter/metrics/inmemory"
	"dragonbot/internal/adapter/mugloar"
	gormrepo "dragonbot/internal/adapter/repo/gorm"
	"dragonbot/internal/adapter/repo/memory"
	"dragonbot/internal/app/autoplay"
	"dragonbot/internal/app/play"
	"dragonbot/internal/app/ports"
	"dragonbot/internal/app/probe"
	"dragonbot/internal/app/runlog"
	"dragonbot/internal/app/session"
	"dragonbot/internal/app/start"
	"dragonbot/internal/app/status"
	"dragonbot/internal/config"
	"dragonbot/internal/platform/logger"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

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

	client := mugloar.NewClient(cfg.GameAPIBaseURL, cfg.GameAPITimeout)
	recorder := metricsinmem.NewRecorder()
	runs, events, tx := buildRepos(cfg, zlog)

	registry := session.NewRegistry(func() *play.Session {
		return play.NewSession(client, recorder, zlog.Named("session"), play.Config{
			TargetScore: cfg.TargetScore,
			MaxTurns:    cfg.MaxTurns,
			TurnDelay:   cfg.TurnDelay,
		})
	}, cfg.SessionTTL)

	h := httpadapter.Handler{
		StartUC:  start.UseCase{Registry: registry},
		StatusUC: status.UseCase{Registry: registry},
		AutoplayUC: autoplay.UseCase{
			Registry: registry,
			Runs:     runs,
			Events:   events,
			Tx:       tx,
			Logger:   zlog.Named("autoplay"),
		},
		RunlogUC: runlog.UseCase{Registry: registry, Events: events},
		ProbeUC:  probe.UseCase{Client: client},
		KPI:      recorder,
	}

	s := server.Default(server.WithHostPorts(":" + cfg.Port))
	h.RegisterRoutes(s)

	zlog.Info("dragonbot server listening",
		zap.String("port", cfg.Port),
		zap.String("remote", cfg.GameAPIBaseURL),
	)
	s.Spin()
}

// buildRepos selects postgres-backed run history when a DSN is configured
// and the in-memory store otherwise.
func buildRepos(cfg *config.Config, zlog *zap.Logger) (ports.RunRepository, ports.RunEventRepository, ports.TxManager) {
	if cfg.DBDSN == "" {
		store := memory.NewStore()
		return memory.NewRunRepo(store), memory.NewEventRepo(store), memory.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		zlog.Fatal("open postgres", zap.Error(err))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := gormrepo.ApplyMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		zlog.Fatal("apply migrations", zap.Error(err))
	}
	return gormrepo.NewRunRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db)
}
