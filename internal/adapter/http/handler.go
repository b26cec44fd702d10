package httpadapter

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"dragonbot/internal/app/autoplay"
	"dragonbot/internal/app/ports"
	"dragonbot/internal/app/probe"
	"dragonbot/internal/app/runlog"
	"dragonbot/internal/app/start"
	"dragonbot/internal/app/status"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	StartUC    start.UseCase
	StatusUC   status.UseCase
	AutoplayUC autoplay.UseCase
	RunlogUC   runlog.UseCase
	ProbeUC    probe.UseCase
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api/game")
	api.POST("/start", h.start)
	api.GET("/:gameId/state", h.state)
	api.POST("/:gameId/auto-play", h.autoPlay)
	api.GET("/:gameId/messages", h.messages)
	api.GET("/:gameId/shop", h.shop)
	api.GET("/:gameId/reputation", h.reputation)
	api.GET("/:gameId/log", h.log)

	s.GET("/health", h.health)
	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) start(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StartUC.Execute(c, start.Request{})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) state(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{GameID: gameIDParam(ctx)})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) autoPlay(c context.Context, ctx *app.RequestContext) {
	resp, err := h.AutoplayUC.Execute(c, autoplay.Request{GameID: gameIDParam(ctx)})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) messages(c context.Context, ctx *app.RequestContext) {
	quests, err := h.ProbeUC.Messages(c, gameIDParam(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"messages": quests})
}

func (h Handler) shop(c context.Context, ctx *app.RequestContext) {
	items, err := h.ProbeUC.Shop(c, gameIDParam(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"items": items})
}

func (h Handler) reputation(c context.Context, ctx *app.RequestContext) {
	rep, err := h.ProbeUC.Reputation(c, gameIDParam(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, rep)
}

func (h Handler) log(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	resp, err := h.RunlogUC.Execute(c, runlog.Request{GameID: gameIDParam(ctx), Limit: limit})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) health(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func gameIDParam(ctx *app.RequestContext) string {
	return strings.TrimSpace(ctx.Param("gameId"))
}

func writeError(ctx *app.RequestContext, err error) {
	var apiErr *ports.APIError
	switch {
	case errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, autoplay.ErrInvalidRequest),
		errors.Is(err, runlog.ErrInvalidRequest),
		errors.Is(err, probe.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotStarted):
		writeErrorBody(ctx, consts.StatusConflict, "game_not_started", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.As(err, &apiErr):
		writeErrorBody(ctx, consts.StatusBadGateway, "remote_error", apiErr.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
