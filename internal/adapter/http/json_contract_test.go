package httpadapter

import (
	"encoding/json"
	"testing"
	"time"

	"dragonbot/internal/app/autoplay"
	"dragonbot/internal/app/runlog"
	"dragonbot/internal/app/status"
	"dragonbot/internal/domain/game"
)

func TestResponseJSONUsesSnakeCase(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	state := game.State{
		GameID:    "g-1",
		Lives:     3,
		Gold:      120,
		Level:     2,
		Score:     4500,
		HighScore: 4500,
		Turn:      37,
	}
	entry := game.LogEntry{Turn: 37, At: now, Text: "solved quest"}

	cases := []struct {
		name    string
		payload any
		want    []string
		notWant []string
	}{
		{
			name:    "status",
			payload: status.Response{State: state, Outcome: game.OutcomeTargetReached},
			want:    []string{"state", "outcome"},
			notWant: []string{"State", "Outcome"},
		},
		{
			name:    "autoplay",
			payload: autoplay.Response{State: state, Outcome: game.OutcomeOutOfLives, RunID: "r-1"},
			want:    []string{"state", "outcome", "run_id"},
			notWant: []string{"State", "RunID"},
		},
		{
			name:    "runlog",
			payload: runlog.Response{Entries: []game.LogEntry{entry}},
			want:    []string{"entries"},
			notWant: []string{"Entries"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.payload)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal(b, &got); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			for _, key := range tc.want {
				if _, ok := got[key]; !ok {
					t.Fatalf("expected key %q in %s", key, string(b))
				}
			}
			for _, key := range tc.notWant {
				if _, ok := got[key]; ok {
					t.Fatalf("unexpected key %q in %s", key, string(b))
				}
			}
			if tc.name == "status" {
				stateMap := asMap(got["state"])
				if _, ok := stateMap["game_id"]; !ok {
					t.Fatalf("expected nested snake_case key state.game_id in %s", string(b))
				}
				if _, ok := stateMap["HighScore"]; ok {
					t.Fatalf("unexpected nested key state.HighScore in %s", string(b))
				}
			}
		})
	}
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
