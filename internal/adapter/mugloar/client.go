package mugloar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dragonbot/internal/app/ports"
	"dragonbot/internal/domain/game"
)

const DefaultBaseURL = "https://dragonsofmugloar.com/api/v2"

// Client speaks to the Dragons of Mugloar service. Every failure comes back
// as *ports.APIError; calls are never retried here.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) StartGame(ctx context.Context) (game.State, error) {
	var out startResponse
	if err := c.call(ctx, http.MethodPost, "/game/start", &out, "failed to start game"); err != nil {
		return game.State{}, err
	}
	return game.State{
		GameID:    out.GameID,
		Lives:     out.Lives,
		Gold:      out.Gold,
		Level:     out.Level,
		Score:     out.Score,
		HighScore: out.HighScore,
		Turn:      out.Turn,
	}, nil
}

func (c *Client) Messages(ctx context.Context, gameID string) ([]game.RawQuest, error) {
	var out []messageEntry
	path := fmt.Sprintf("/%s/messages", gameID)
	if err := c.call(ctx, http.MethodGet, path, &out, "failed to get messages"); err != nil {
		return nil, err
	}
	quests := make([]game.RawQuest, 0, len(out))
	for _, m := range out {
		quests = append(quests, game.RawQuest{
			ID:          m.AdID,
			Description: m.Message,
			Reward:      string(m.Reward),
			ExpiresIn:   m.ExpiresIn,
			RiskLevel:   m.Probability,
			Obfuscated:  m.Encrypted != nil,
		})
	}
	return quests, nil
}

func (c *Client) Solve(ctx context.Context, gameID, adID string) (game.SolveResult, error) {
	var out game.SolveResult
	path := fmt.Sprintf("/%s/solve/%s", gameID, adID)
	if err := c.call(ctx, http.MethodPost, path, &out, "failed to solve message"); err != nil {
		return game.SolveResult{}, err
	}
	return out, nil
}

func (c *Client) Shop(ctx context.Context, gameID string) ([]game.ShopItem, error) {
	var out shopListing
	path := fmt.Sprintf("/%s/shop", gameID)
	if err := c.call(ctx, http.MethodGet, path, &out, "failed to get shop"); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) Buy(ctx context.Context, gameID, itemID string) (game.PurchaseResult, error) {
	var out game.PurchaseResult
	path := fmt.Sprintf("/%s/shop/buy/%s", gameID, itemID)
	if err := c.call(ctx, http.MethodPost, path, &out, "failed to buy item"); err != nil {
		return game.PurchaseResult{}, err
	}
	return out, nil
}

func (c *Client) Reputation(ctx context.Context, gameID string) (game.Reputation, error) {
	var out game.Reputation
	path := fmt.Sprintf("/%s/investigate/reputation", gameID)
	if err := c.call(ctx, http.MethodPost, path, &out, "failed to get reputation"); err != nil {
		return game.Reputation{}, err
	}
	return out, nil
}

func (c *Client) call(ctx context.Context, method, path string, out any, failMsg string) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return &ports.APIError{Message: fmt.Sprintf("%s: %v", failMsg, err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &ports.APIError{Message: fmt.Sprintf("%s: %v", failMsg, err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ports.APIError{Message: fmt.Sprintf("%s: %v", failMsg, err), Status: resp.StatusCode}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &ports.APIError{
			Message: fmt.Sprintf("%s: %s", failMsg, remoteMessage(body, resp.Status)),
			Status:  resp.StatusCode,
		}
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ports.APIError{Message: fmt.Sprintf("%s: %v", failMsg, err), Status: resp.StatusCode}
	}
	return nil
}

// remoteMessage prefers the service's own error text over the bare status.
func remoteMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fallback
}
