package catch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
)

func shortRound(rng Rand) *Round {
	cfg := config.DefaultCatchConfig()
	cfg.Round.Duration = 3
	return NewRound(cfg, rng)
}

func TestDriverRunsRoundToCompletion(t *testing.T) {
	r := shortRound(seeded(8))
	rec := &recorder{}
	r.AddListener(rec)

	d := NewDriver(r,
		WithFrameInterval(time.Millisecond),
		WithSecondInterval(10*time.Millisecond),
	)

	frames := 0
	score, err := d.Run(context.Background(), InputFunc(func() core.Intent {
		frames++
		return core.IntentNone
	}))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if r.Phase() != PhaseEnded {
		t.Errorf("Phase() = %v, expected ended", r.Phase())
	}
	if score != r.Score() {
		t.Errorf("Run() = %d, round score = %d", score, r.Score())
	}
	if frames == 0 {
		t.Error("frame driver never fired")
	}
	if len(rec.ended) != 1 {
		t.Errorf("expected one RoundEnded, got %d", len(rec.ended))
	}

	// Drivers are torn down: nothing mutates the round afterwards
	before := r.Snapshot()
	time.Sleep(20 * time.Millisecond)
	if r.Snapshot().Ticks != before.Ticks {
		t.Error("round ticked after Run returned")
	}
}

func TestDriverCancel(t *testing.T) {
	r := shortRound(neverSpawn())
	d := NewDriver(r,
		WithFrameInterval(time.Millisecond),
		WithSecondInterval(time.Hour),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := d.Run(ctx, InputFunc(func() core.Intent { return core.IntentRight }))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, expected deadline exceeded", err)
	}
	if r.Phase() != PhaseEnded {
		t.Errorf("cancelled round should be ended, phase = %v", r.Phase())
	}
	if r.TimeRemaining() != 3 {
		t.Errorf("countdown should not have fired, remaining = %d", r.TimeRemaining())
	}
}

func TestDriverRestart(t *testing.T) {
	r := shortRound(neverSpawn())
	rec := &recorder{}
	r.AddListener(rec)

	d := NewDriver(r,
		WithFrameInterval(time.Millisecond),
		WithSecondInterval(10*time.Millisecond),
	)

	restarted := false
	_, err := d.Run(context.Background(), InputFunc(func() core.Intent {
		if !restarted {
			restarted = true
			d.Restart()
		}
		return core.IntentNone
	}))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(rec.started) != 2 {
		t.Errorf("expected 2 RoundStarted notifications, got %d", len(rec.started))
	}
	if r.Generation() != 2 {
		t.Errorf("Generation() = %d, expected 2", r.Generation())
	}
	if len(rec.ended) != 1 {
		t.Errorf("expected one RoundEnded, got %d", len(rec.ended))
	}
}

func TestWithTickRate(t *testing.T) {
	d := NewDriver(newTestRound(neverSpawn()), WithTickRate(30))
	if d.frame != time.Second/30 {
		t.Errorf("frame = %v, expected %v", d.frame, time.Second/30)
	}

	d = NewDriver(newTestRound(neverSpawn()), WithTickRate(0))
	if d.frame != time.Second/60 {
		t.Errorf("zero rate should keep default, got %v", d.frame)
	}
}
