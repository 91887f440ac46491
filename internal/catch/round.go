// Package catch implements the Star Catch simulation: a timed round in
// which stars fall through the field and the player moves a basket to
// catch them.
//
// The package is pure logic. Rendering, input capture and the timers that
// drive a round are collaborators: they read State snapshots and call
// Round methods from a single goroutine.
package catch

import (
	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
)

// Phase is the lifecycle stage of a round.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// State is a read-only snapshot of a round for renderers and UI text.
type State struct {
	Phase         Phase
	Score         int
	TimeRemaining int
	Elapsed       int
	Duration      int
	Speed         float64 // Current base fall speed
	Level         int     // Difficulty steps applied
	Caught        int
	Missed        int
	Ticks         int
	Generation    int // Incremented by every Start
	Collector     Collector
	Objects       []FallingObject
	FieldW        float64
	FieldH        float64
}

// Listener receives round lifecycle notifications. Calls happen
// synchronously on the goroutine driving the round.
type Listener interface {
	RoundStarted(s State)
	Scored(s State, caught int)
	RoundEnded(s State)
}

// Round is the round state machine. It owns the score, the timer, the
// collector, the object pool and the difficulty params.
//
// Round is not safe for concurrent use: the per-frame and per-second
// drivers must call it from the same goroutine.
type Round struct {
	cfg        config.CatchConfig
	phase      Phase
	score      int
	remaining  int
	caught     int
	missed     int
	ticks      int
	generation int
	collector  Collector
	pool       *ObjectPool
	difficulty DifficultyParams
	listeners  []Listener
}

// NewRound creates an idle round. Call Start to begin play.
func NewRound(cfg config.CatchConfig, rng Rand) *Round {
	return &Round{
		cfg:        cfg,
		phase:      PhaseIdle,
		remaining:  cfg.Round.Duration,
		collector:  NewCollector(cfg.Collector),
		pool:       NewObjectPool(cfg.Objects, rng),
		difficulty: NewDifficulty(cfg.Difficulty),
	}
}

// AddListener registers a lifecycle listener.
func (r *Round) AddListener(l Listener) {
	r.listeners = append(r.listeners, l)
}

// Start resets the round to a fresh running state. Calling it while a
// round is running discards that round.
func (r *Round) Start() {
	r.phase = PhaseRunning
	r.score = 0
	r.remaining = r.cfg.Round.Duration
	r.caught = 0
	r.missed = 0
	r.ticks = 0
	r.generation++
	r.collector = NewCollector(r.cfg.Collector)
	r.pool.Clear()
	r.difficulty.Reset()

	s := r.Snapshot()
	for _, l := range r.listeners {
		l.RoundStarted(s)
	}
}

// Tick advances the simulation by one frame. It is a no-op unless the
// round is running.
func (r *Round) Tick(in core.Intent) {
	if r.phase != PhaseRunning {
		return
	}
	r.ticks++

	elapsed := r.Elapsed()
	r.collector.Apply(in, r.cfg.Field.Width)
	r.pool.MaybeSpawn(elapsed, r.cfg.Field.Width, r.difficulty.BaseSpeed)
	r.missed += r.pool.AdvanceAndPrune(r.cfg.Field.Height)

	if n := Resolve(r.collector, r.pool); n > 0 {
		r.score += n
		r.caught += n
		s := r.Snapshot()
		for _, l := range r.listeners {
			l.Scored(s, n)
		}
	}

	r.difficulty.UpdateSpeed(elapsed)
}

// SecondTick counts down one second and ends the round at zero. It is a
// no-op unless the round is running.
func (r *Round) SecondTick() {
	if r.phase != PhaseRunning {
		return
	}
	r.remaining--
	if r.remaining <= 0 {
		r.remaining = 0
		r.End()
	}
}

// End stops a running round and returns the final score. Recording a
// high score is left to the caller. Ending a round that is not running
// only returns the current score.
func (r *Round) End() int {
	if r.phase != PhaseRunning {
		return r.score
	}
	r.phase = PhaseEnded

	s := r.Snapshot()
	for _, l := range r.listeners {
		l.RoundEnded(s)
	}
	return r.score
}

// Phase returns the current lifecycle phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Score returns the current score.
func (r *Round) Score() int {
	return r.score
}

// TimeRemaining returns the seconds left on the round timer.
func (r *Round) TimeRemaining() int {
	return r.remaining
}

// Elapsed returns the number of whole seconds played so far.
func (r *Round) Elapsed() int {
	return r.cfg.Round.Duration - r.remaining
}

// Generation identifies the current round; it changes on every Start.
// Timer collaborators tag their events with it to drop stale ones.
func (r *Round) Generation() int {
	return r.generation
}

// Pool exposes the object pool, mainly for setup in tests and tools.
func (r *Round) Pool() *ObjectPool {
	return r.pool
}

// Collector returns a copy of the collector.
func (r *Round) Collector() Collector {
	return r.collector
}

// Snapshot returns a copy of the round state.
func (r *Round) Snapshot() State {
	return State{
		Phase:         r.phase,
		Score:         r.score,
		TimeRemaining: r.remaining,
		Elapsed:       r.Elapsed(),
		Duration:      r.cfg.Round.Duration,
		Speed:         r.difficulty.BaseSpeed,
		Level:         r.difficulty.Level(),
		Caught:        r.caught,
		Missed:        r.missed,
		Ticks:         r.ticks,
		Generation:    r.generation,
		Collector:     r.collector,
		Objects:       r.pool.Objects(),
		FieldW:        r.cfg.Field.Width,
		FieldH:        r.cfg.Field.Height,
	}
}
