package inmemory

import (
	"sync"

	"dragonbot/internal/domain/game"
)

type Snapshot struct {
	RunsStarted    uint64            `json:"runs_started"`
	RunsFinished   uint64            `json:"runs_finished"`
	ByOutcome      map[string]uint64 `json:"by_outcome"`
	AttemptTotal   uint64            `json:"attempt_total"`
	AttemptSuccess uint64            `json:"attempt_success"`
	AttemptFailure uint64            `json:"attempt_failure"`
	Purchases      uint64            `json:"purchases"`
	GoldSpent      uint64            `json:"gold_spent"`
}

type Recorder struct {
	mu             sync.Mutex
	runsStarted    uint64
	runsFinished   uint64
	byOutcome      map[string]uint64
	attemptSuccess uint64
	attemptFailure uint64
	purchases      uint64
	goldSpent      uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOutcome: map[string]uint64{},
	}
}

func (r *Recorder) RecordRunStarted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runsStarted++
}

func (r *Recorder) RecordRunFinished(outcome game.RunOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runsFinished++
	r.byOutcome[string(outcome)]++
}

func (r *Recorder) RecordAttempt(success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if success {
		r.attemptSuccess++
	} else {
		r.attemptFailure++
	}
}

func (r *Recorder) RecordPurchase(goldSpent int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purchases++
	if goldSpent > 0 {
		r.goldSpent += uint64(goldSpent)
	}
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		RunsStarted:    r.runsStarted,
		RunsFinished:   r.runsFinished,
		AttemptSuccess: r.attemptSuccess,
		AttemptFailure: r.attemptFailure,
		AttemptTotal:   r.attemptSuccess + r.attemptFailure,
		Purchases:      r.purchases,
		GoldSpent:      r.goldSpent,
		ByOutcome:      make(map[string]uint64, len(r.byOutcome)),
	}
	for k, v := range r.byOutcome {
		out.ByOutcome[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
