package play

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dragonbot/internal/app/ports"
	"dragonbot/internal/app/shared/questrank"
	"dragonbot/internal/app/shared/shopping"
	"dragonbot/internal/domain/game"

	"go.uber.org/zap"
)

type Config struct {
	TargetScore int
	MaxTurns    int
	TurnDelay   time.Duration
}

func (c Config) withDefaults() Config {
	if c.TargetScore <= 0 {
		c.TargetScore = game.TargetScore
	}
	if c.MaxTurns <= 0 {
		c.MaxTurns = game.DefaultMaxTurns
	}
	return c
}

// Session owns one play-through: the mutable game state, the owned-item set
// and the run narrative. The turn loop is strictly sequential; the mutex only
// shields concurrent readers (the state endpoint) from the loop's writes.
type Session struct {
	client  ports.GameClient
	metrics ports.RunMetrics
	logger  *zap.Logger
	cfg     Config

	mu        sync.RWMutex
	started   bool
	state     game.State
	owned     map[string]bool
	entries   []game.LogEntry
	outcome   game.RunOutcome
	startedAt time.Time
	endedAt   time.Time
}

func NewSession(client ports.GameClient, metrics ports.RunMetrics, logger *zap.Logger, cfg Config) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		client:  client,
		metrics: metrics,
		logger:  logger,
		cfg:     cfg.withDefaults(),
	}
}

// Start begins a fresh game on the remote service and resets all per-run
// bookkeeping.
func (s *Session) Start(ctx context.Context) (game.State, error) {
	state, err := s.client.StartGame(ctx)
	if err != nil {
		return game.State{}, err
	}

	s.mu.Lock()
	s.started = true
	s.state = state
	s.owned = map[string]bool{}
	s.entries = nil
	s.outcome = ""
	s.startedAt = time.Now()
	s.endedAt = time.Time{}
	s.mu.Unlock()

	s.appendLog(fmt.Sprintf("game %s started with %d lives and %d gold", state.GameID, state.Lives, state.Gold))
	if s.metrics != nil {
		s.metrics.RecordRunStarted()
	}
	s.logger.Info("game started",
		zap.String("game_id", state.GameID),
		zap.Int("lives", state.Lives),
		zap.Int("gold", state.Gold),
	)
	return state, nil
}

// Play drives turns until a terminal condition: no lives, target score
// reached, turn budget exhausted, or the context cancelled. A remote failure
// outside the shopping step ends the run early; it is logged, not returned.
// Calling Play before Start is a contract violation.
func (s *Session) Play(ctx context.Context) (game.State, error) {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()
	if !started {
		return game.State{}, ports.ErrNotStarted
	}

	aborted := false
	for turns := 0; turns < s.cfg.MaxTurns; turns++ {
		state := s.State()
		if state.Lives <= 0 || state.Score >= s.cfg.TargetScore {
			break
		}
		if err := ctx.Err(); err != nil {
			s.appendLog(fmt.Sprintf("run stopped: %v", err))
			aborted = true
			break
		}
		if err := s.playTurn(ctx); err != nil {
			s.appendLog(fmt.Sprintf("run aborted: %v", err))
			s.logger.Warn("turn failed, ending run", zap.Error(err))
			aborted = true
			break
		}
		if s.cfg.TurnDelay > 0 {
			select {
			case <-time.After(s.cfg.TurnDelay):
			case <-ctx.Done():
			}
		}
	}

	final := s.State()
	outcome := finalOutcome(final, s.cfg.TargetScore, aborted)

	s.mu.Lock()
	s.outcome = outcome
	s.endedAt = time.Now()
	s.mu.Unlock()

	s.appendLog(fmt.Sprintf("run finished (%s): score %d, lives %d, turn %d", outcome, final.Score, final.Lives, final.Turn))
	if s.metrics != nil {
		s.metrics.RecordRunFinished(outcome)
	}
	s.logger.Info("run finished",
		zap.String("game_id", final.GameID),
		zap.String("outcome", string(outcome)),
		zap.Int("score", final.Score),
		zap.Int("lives", final.Lives),
		zap.Int("turn", final.Turn),
	)
	return final, nil
}

func (s *Session) playTurn(ctx context.Context) error {
	// Shopping first: a purchase advances the turn counter, so the quest
	// listing must be fetched after it. Shopping failures never sink the
	// turn; the quest step is the one that matters.
	s.shoppingStep(ctx)

	state := s.State()
	raws, err := s.client.Messages(ctx, state.GameID)
	if err != nil {
		return err
	}
	if len(raws) == 0 {
		s.appendLog("no quests available")
		return nil
	}

	quest, ok := questrank.SelectBest(raws)
	if !ok {
		return nil
	}

	result, err := s.client.Solve(ctx, state.GameID, quest.ID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.state.Lives = result.Lives
	s.state.Gold = result.Gold
	s.state.Score = result.Score
	s.state.HighScore = result.HighScore
	s.state.Turn = result.Turn
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.RecordAttempt(result.Success)
	}
	verdict := "failed"
	if result.Success {
		verdict = "solved"
	}
	s.appendLog(fmt.Sprintf("%s %q for %d gold (%s): %s", verdict, quest.Description, quest.Reward, quest.RiskLevel, result.Message))
	s.logger.Debug("quest attempted",
		zap.String("ad_id", quest.ID),
		zap.Bool("success", result.Success),
		zap.Int("score", result.Score),
		zap.Int("lives", result.Lives),
	)
	return nil
}

func (s *Session) shoppingStep(ctx context.Context) {
	state := s.State()
	if state.Gold < game.MinShoppingGold {
		return
	}

	items, err := s.client.Shop(ctx, state.GameID)
	if err != nil {
		s.appendLog(fmt.Sprintf("shopping skipped: %v", err))
		s.logger.Warn("shop listing failed", zap.Error(err))
		return
	}

	s.mu.RLock()
	owned := make(map[string]bool, len(s.owned))
	for id := range s.owned {
		owned[id] = true
	}
	s.mu.RUnlock()

	decision := shopping.Decide(state, owned, items)
	if !decision.Buy {
		return
	}

	result, err := s.client.Buy(ctx, state.GameID, decision.Item.ID)
	if err != nil {
		s.appendLog(fmt.Sprintf("purchase of %q failed: %v", decision.Item.Name, err))
		s.logger.Warn("purchase failed", zap.String("item_id", decision.Item.ID), zap.Error(err))
		return
	}

	s.mu.Lock()
	s.state.Gold = result.Gold
	s.state.Lives = result.Lives
	s.state.Level = result.Level
	s.state.Turn = result.Turn
	s.owned[decision.Item.ID] = true
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.RecordPurchase(decision.Item.Cost)
	}
	if decision.Emergency {
		s.appendLog(fmt.Sprintf("emergency: bought %q for %d gold", decision.Item.Name, decision.Item.Cost))
	} else {
		s.appendLog(fmt.Sprintf("bought %q for %d gold", decision.Item.Name, decision.Item.Cost))
	}
}

// State returns a copy of the current game state.
func (s *Session) State() game.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) Started() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}

// Log returns a copy of the run narrative so far.
func (s *Session) Log() []game.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]game.LogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Session) Outcome() game.RunOutcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.outcome
}

func (s *Session) Window() (started, ended time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.startedAt, s.endedAt
}

func (s *Session) appendLog(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, game.LogEntry{
		Turn: s.state.Turn,
		At:   time.Now(),
		Text: text,
	})
}

func finalOutcome(state game.State, targetScore int, aborted bool) game.RunOutcome {
	switch {
	case state.Lives <= 0:
		return game.OutcomeOutOfLives
	case state.Score >= targetScore:
		return game.OutcomeTargetReached
	case aborted:
		return game.OutcomeAborted
	default:
		return game.OutcomeTurnBudget
	}
}
