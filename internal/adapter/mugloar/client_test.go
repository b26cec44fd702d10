package mugloar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dragonbot/internal/app/ports"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestStartGame(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/game/start" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"gameId":"abc","lives":3,"gold":0,"level":0,"score":0,"highScore":0,"turn":0}`))
	})

	state, err := c.StartGame(context.Background())
	if err != nil {
		t.Fatalf("start game: %v", err)
	}
	if state.GameID != "abc" || state.Lives != 3 {
		t.Fatalf("unexpected state: %+v", state)
	}
}

func TestMessages_MixedListing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/g-1/messages" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"adId":"a1","message":"Help the farmer","reward":50,"expiresIn":5,"probability":"Quite likely"},
			{"adId":"YWQtMg==","message":"U2F2ZSB0aGUgY2F0","reward":"OTA=","expiresIn":3,"encrypted":1,"probability":"Umlza3k="}
		]`))
	})

	quests, err := c.Messages(context.Background(), "g-1")
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(quests) != 2 {
		t.Fatalf("expected 2 quests, got %d", len(quests))
	}

	plain := quests[0]
	if plain.Obfuscated {
		t.Fatalf("first quest should be plain: %+v", plain)
	}
	if plain.Reward != "50" {
		t.Fatalf("numeric reward should arrive as text, got %q", plain.Reward)
	}

	armored := quests[1]
	if !armored.Obfuscated {
		t.Fatalf("second quest should be flagged obfuscated: %+v", armored)
	}
	if armored.ID != "YWQtMg==" {
		t.Fatalf("armored id must pass through untouched, got %q", armored.ID)
	}
}

func TestSolve(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/g-1/solve/ad-7" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"lives":3,"gold":55,"score":120,"highScore":120,"turn":4,"message":"You did it"}`))
	})

	result, err := c.Solve(context.Background(), "g-1", "ad-7")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !result.Success || result.Gold != 55 || result.Turn != 4 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestShop_BareArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"hpot","name":"Healing potion","cost":50}]`))
	})

	items, err := c.Shop(context.Background(), "g-1")
	if err != nil {
		t.Fatalf("shop: %v", err)
	}
	if len(items) != 1 || items[0].ID != "hpot" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestShop_WrappedObject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"id":"cs","name":"Claw Sharpening","cost":100}]}`))
	})

	items, err := c.Shop(context.Background(), "g-1")
	if err != nil {
		t.Fatalf("shop: %v", err)
	}
	if len(items) != 1 || items[0].Cost != 100 {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestBuy(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/g-1/shop/buy/hpot" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"shoppingSuccess":"true","gold":10,"lives":4,"level":1,"turn":9}`))
	})

	result, err := c.Buy(context.Background(), "g-1", "hpot")
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if result.ShoppingSuccess != "true" || result.Lives != 4 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestReputation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/g-1/investigate/reputation" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"people":2.5,"state":-1,"underworld":0}`))
	})

	rep, err := c.Reputation(context.Background(), "g-1")
	if err != nil {
		t.Fatalf("reputation: %v", err)
	}
	if rep.People != 2.5 || rep.State != -1 {
		t.Fatalf("unexpected reputation: %+v", rep)
	}
}

func TestCall_RemoteErrorMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
		w.Write([]byte(`{"message":"Game is over","status":"Game over"}`))
	})

	_, err := c.Solve(context.Background(), "g-1", "ad-1")
	var apiErr *ports.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *ports.APIError, got %v", err)
	}
	if apiErr.Status != http.StatusGone {
		t.Fatalf("status mismatch: got=%d", apiErr.Status)
	}
	if want := "failed to solve message: Game is over"; apiErr.Message != want {
		t.Fatalf("message mismatch: got=%q want=%q", apiErr.Message, want)
	}
}

func TestCall_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	c := NewClient(srv.URL, time.Second)

	_, err := c.StartGame(context.Background())
	var apiErr *ports.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *ports.APIError, got %v", err)
	}
	if apiErr.Status != 0 {
		t.Fatalf("transport failures carry no status, got %d", apiErr.Status)
	}
}
