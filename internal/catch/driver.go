package catch

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/core"
)

// InputSource supplies the movement intent for each frame.
type InputSource interface {
	Intent() core.Intent
}

// InputFunc adapts a function to InputSource.
type InputFunc func() core.Intent

// Intent calls f.
func (f InputFunc) Intent() core.Intent {
	return f()
}

// Driver runs a Round with two repeating tasks, a frame ticker and a
// one-second countdown ticker. Both are serviced by a single goroutine,
// so the round is never touched concurrently, and both are stopped before
// that goroutine moves on from a round that has left the running phase.
type Driver struct {
	round   *Round
	frame   time.Duration
	second  time.Duration
	logger  *log.Logger
	restart chan struct{}
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithFrameInterval sets the period of the frame ticker.
func WithFrameInterval(d time.Duration) DriverOption {
	return func(dr *Driver) {
		if d > 0 {
			dr.frame = d
		}
	}
}

// WithTickRate sets the frame ticker from a rate in ticks per second.
func WithTickRate(rate int) DriverOption {
	return func(dr *Driver) {
		if rate > 0 {
			dr.frame = time.Second / time.Duration(rate)
		}
	}
}

// WithSecondInterval sets the period of the countdown ticker. Shorter
// periods run rounds faster than real time.
func WithSecondInterval(d time.Duration) DriverOption {
	return func(dr *Driver) {
		if d > 0 {
			dr.second = d
		}
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) DriverOption {
	return func(dr *Driver) {
		if l != nil {
			dr.logger = l
		}
	}
}

// NewDriver creates a driver for the given round, ticking at 60 frames
// per second by default.
func NewDriver(r *Round, opts ...DriverOption) *Driver {
	d := &Driver{
		round:   r,
		frame:   time.Second / 60,
		second:  time.Second,
		logger:  log.New(io.Discard),
		restart: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Restart asks the running loop to discard the current round and start a
// fresh one. Safe to call from any goroutine.
func (d *Driver) Restart() {
	select {
	case d.restart <- struct{}{}:
	default: // A restart is already pending
	}
}

// Run starts a round and services both tickers until it ends or ctx is
// cancelled. Returns the final score. On cancellation the round is ended
// and ctx.Err() is returned alongside the score.
func (d *Driver) Run(ctx context.Context, input InputSource) (int, error) {
	d.round.Start()
	d.logger.Info("round started",
		"generation", d.round.Generation(),
		"duration", d.round.TimeRemaining(),
	)

	frames := time.NewTicker(d.frame)
	seconds := time.NewTicker(d.second)
	stop := func() {
		frames.Stop()
		seconds.Stop()
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			stop()
			score := d.round.End()
			d.logger.Warn("round aborted", "score", score, "reason", ctx.Err())
			return score, ctx.Err()

		case <-d.restart:
			stop()
			d.round.Start()
			d.logger.Info("round restarted", "generation", d.round.Generation())
			frames.Reset(d.frame)
			seconds.Reset(d.second)

		case <-frames.C:
			d.round.Tick(input.Intent())

		case <-seconds.C:
			if d.round.TimeRemaining() <= 1 {
				// Last second: tear both tickers down before the round ends.
				stop()
			}
			d.round.SecondTick()
			if d.round.Phase() != PhaseRunning {
				s := d.round.Snapshot()
				d.logger.Info("round ended",
					"score", s.Score,
					"caught", s.Caught,
					"missed", s.Missed,
					"ticks", s.Ticks,
				)
				return s.Score, nil
			}
			d.logger.Debug("second", "remaining", d.round.TimeRemaining(), "speed", d.round.difficulty.BaseSpeed)
		}
	}
}
