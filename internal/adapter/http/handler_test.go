package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dragonbot/internal/app/play"
	"dragonbot/internal/app/ports"
	"dragonbot/internal/app/probe"
	"dragonbot/internal/app/session"
	"dragonbot/internal/app/start"
	"dragonbot/internal/app/status"
	"dragonbot/internal/domain/game"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route/param"
)

func TestStart_OK(t *testing.T) {
	reg := newTestRegistry(&fakeGameClient{
		startState: game.State{GameID: "g-1", Lives: 3, Gold: 0},
	})
	h := Handler{StartUC: start.UseCase{Registry: reg}}
	ctx := &app.RequestContext{}

	h.start(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusCreated; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]game.State
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["state"].GameID, "g-1"; got != want {
		t.Fatalf("game id mismatch: got=%q want=%q", got, want)
	}
}

func TestStart_RemoteFailure(t *testing.T) {
	reg := newTestRegistry(&fakeGameClient{
		startErr: &ports.APIError{Message: "start failed", Status: 503},
	})
	h := Handler{StartUC: start.UseCase{Registry: reg}}
	ctx := &app.RequestContext{}

	h.start(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadGateway; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "remote_error"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestState_UnknownGame(t *testing.T) {
	reg := newTestRegistry(&fakeGameClient{})
	h := Handler{StatusUC: status.UseCase{Registry: reg}}
	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "gameId", Value: "missing"}}

	h.state(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestState_OK(t *testing.T) {
	reg := newTestRegistry(&fakeGameClient{
		startState: game.State{GameID: "g-2", Lives: 3, Gold: 10},
	})
	if _, _, err := reg.Create(context.Background()); err != nil {
		t.Fatalf("create session: %v", err)
	}
	h := Handler{StatusUC: status.UseCase{Registry: reg}}
	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "gameId", Value: "g-2"}}

	h.state(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	var st game.State
	if err := json.Unmarshal(body["state"], &st); err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if got, want := st.Lives, 3; got != want {
		t.Fatalf("lives mismatch: got=%d want=%d", got, want)
	}
}

func TestShop_OK(t *testing.T) {
	h := Handler{ProbeUC: probe.UseCase{Client: &fakeGameClient{
		shopItems: []game.ShopItem{{ID: "hpot", Name: "Healing potion", Cost: 50}},
	}}}
	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "gameId", Value: "g-3"}}

	h.shop(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string][]game.ShopItem
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(body["items"]) != 1 || body["items"][0].ID != "hpot" {
		t.Fatalf("unexpected items: %+v", body["items"])
	}
}

func TestMessages_MissingGameID(t *testing.T) {
	h := Handler{ProbeUC: probe.UseCase{Client: &fakeGameClient{}}}
	ctx := &app.RequestContext{}

	h.messages(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "bad_request"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_NotStarted(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, ports.ErrNotStarted)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "game_not_started"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_Unknown(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, errors.New("boom"))

	if got, want := ctx.Response.StatusCode(), consts.StatusInternalServerError; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["message"], "internal error"; got != want {
		t.Fatalf("error message mismatch: got=%q want=%q", got, want)
	}
}

func TestKPI_NotConfigured(t *testing.T) {
	h := Handler{}
	ctx := &app.RequestContext{}

	h.kpi(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func newTestRegistry(client ports.GameClient) *session.Registry {
	return session.NewRegistry(func() *play.Session {
		return play.NewSession(client, nil, nil, play.Config{TurnDelay: time.Millisecond})
	}, time.Hour)
}

type fakeGameClient struct {
	startState game.State
	startErr   error
	quests     []game.RawQuest
	shopItems  []game.ShopItem
}

func (c *fakeGameClient) StartGame(_ context.Context) (game.State, error) {
	if c.startErr != nil {
		return game.State{}, c.startErr
	}
	return c.startState, nil
}

func (c *fakeGameClient) Messages(_ context.Context, _ string) ([]game.RawQuest, error) {
	return c.quests, nil
}

func (c *fakeGameClient) Solve(_ context.Context, _, _ string) (game.SolveResult, error) {
	return game.SolveResult{}, nil
}

func (c *fakeGameClient) Shop(_ context.Context, _ string) ([]game.ShopItem, error) {
	return c.shopItems, nil
}

func (c *fakeGameClient) Buy(_ context.Context, _, _ string) (game.PurchaseResult, error) {
	return game.PurchaseResult{}, nil
}

func (c *fakeGameClient) Reputation(_ context.Context, _ string) (game.Reputation, error) {
	return game.Reputation{}, nil
}
