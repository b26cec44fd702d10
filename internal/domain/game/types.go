package game

import "time"

// State is the authoritative view of one play-through. Every field except
// GameID is overwritten from the remote response after each effect.
type State struct {
	GameID    string `json:"game_id"`
	Lives     int    `json:"lives"`
	Gold      int    `json:"gold"`
	Level     int    `json:"level"`
	Score     int    `json:"score"`
	HighScore int    `json:"high_score"`
	Turn      int    `json:"turn"`
}

// RawQuest is a quest exactly as it arrives on the wire. When Obfuscated is
// set, ID, Description, Reward and RiskLevel are base64-armored and must be
// decoded together before the quest is usable.
type RawQuest struct {
	ID          string
	Description string
	Reward      string
	ExpiresIn   int
	RiskLevel   string
	Obfuscated  bool
}

// Quest is a decoded, ready-to-use quest. Its ID is always the id to send on
// an attempt; callers never see a still-armored id.
type Quest struct {
	ID            string `json:"id"`
	Description   string `json:"description"`
	Reward        int    `json:"reward"`
	ExpiresIn     int    `json:"expires_in"`
	RiskLevel     string `json:"risk_level"`
	WasObfuscated bool   `json:"was_obfuscated"`
}

type ShopItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

type SolveResult struct {
	Success   bool   `json:"success"`
	Lives     int    `json:"lives"`
	Gold      int    `json:"gold"`
	Score     int    `json:"score"`
	HighScore int    `json:"highScore"`
	Turn      int    `json:"turn"`
	Message   string `json:"message"`
}

type PurchaseResult struct {
	ShoppingSuccess string `json:"shoppingSuccess"`
	Gold            int    `json:"gold"`
	Lives           int    `json:"lives"`
	Level           int    `json:"level"`
	Turn            int    `json:"turn"`
}

type Reputation struct {
	People     float64 `json:"people"`
	State      float64 `json:"state"`
	Underworld float64 `json:"underworld"`
}

// LogEntry is one line of the run narrative.
type LogEntry struct {
	Turn int       `json:"turn"`
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

type RunOutcome string

const (
	OutcomeTargetReached RunOutcome = "target_reached"
	OutcomeOutOfLives    RunOutcome = "out_of_lives"
	OutcomeTurnBudget    RunOutcome = "turn_budget"
	OutcomeAborted       RunOutcome = "aborted"
)

// NewRunRecord snapshots a finished run for archival.
func NewRunRecord(runID string, state State, outcome RunOutcome, startedAt, endedAt time.Time) RunRecord {
	return RunRecord{
		RunID:     runID,
		GameID:    state.GameID,
		Lives:     state.Lives,
		Gold:      state.Gold,
		Level:     state.Level,
		Score:     state.Score,
		HighScore: state.HighScore,
		Turn:      state.Turn,
		Outcome:   outcome,
		StartedAt: startedAt,
		EndedAt:   endedAt,
	}
}

// RunRecord is the persisted summary of one finished run.
type RunRecord struct {
	RunID     string
	GameID    string
	Lives     int
	Gold      int
	Level     int
	Score     int
	HighScore int
	Turn      int
	Outcome   RunOutcome
	StartedAt time.Time
	EndedAt   time.Time
}
