package mugloar

import (
	"encoding/json"
	"strings"

	"dragonbot/internal/domain/game"
)

type startResponse struct {
	GameID    string `json:"gameId"`
	Lives     int    `json:"lives"`
	Gold      int    `json:"gold"`
	Level     int    `json:"level"`
	Score     int    `json:"score"`
	HighScore int    `json:"highScore"`
	Turn      int    `json:"turn"`
}

type messageEntry struct {
	AdID        string     `json:"adId"`
	Message     string     `json:"message"`
	Reward      flexString `json:"reward"`
	ExpiresIn   int        `json:"expiresIn"`
	Encrypted   *int       `json:"encrypted"`
	Probability string     `json:"probability"`
}

// flexString tolerates the reward field arriving either as a JSON number
// (plain quests) or as a base64 string (obfuscated quests).
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(trimmed)
	return nil
}

// shopListing absorbs the service's two shop shapes, a bare item array and a
// wrapper object, so callers only ever see the item slice.
type shopListing struct {
	Items []game.ShopItem
}

func (l *shopListing) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		return json.Unmarshal(data, &l.Items)
	}
	var wrapped struct {
		Items []game.ShopItem `json:"items"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	l.Items = wrapped.Items
	return nil
}
