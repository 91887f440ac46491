package catch

import "github.com/vovakirdan/starcatch/internal/config"

// DifficultyParams tracks the stepped fall speed of new objects.
type DifficultyParams struct {
	BaseSpeed       float64 // Current base speed read at spawn time
	InitialSpeed    float64
	Increment       float64
	Interval        int // Seconds between steps
	LastStepElapsed int // Elapsed second of the last applied step
	Enabled         bool
}

// NewDifficulty creates difficulty params at their initial speed.
func NewDifficulty(cfg config.DifficultyConfig) DifficultyParams {
	return DifficultyParams{
		BaseSpeed:    cfg.BaseSpeed,
		InitialSpeed: cfg.BaseSpeed,
		Increment:    cfg.SpeedIncrement,
		Interval:     cfg.StepInterval,
		Enabled:      cfg.Enabled,
	}
}

// Reset restores the initial speed and forgets applied steps.
func (d *DifficultyParams) Reset() {
	d.BaseSpeed = d.InitialSpeed
	d.LastStepElapsed = 0
}

// UpdateSpeed applies one increment for every multiple of Interval that
// elapsed has reached since the last applied step. Calling it repeatedly
// with the same elapsed value is a no-op. Returns the number of steps applied.
func (d *DifficultyParams) UpdateSpeed(elapsed int) int {
	if !d.Enabled || d.Interval <= 0 {
		return 0
	}

	steps := 0
	for next := d.LastStepElapsed + d.Interval; next <= elapsed; next += d.Interval {
		d.BaseSpeed += d.Increment
		d.LastStepElapsed = next
		steps++
	}
	return steps
}

// Level returns how many steps have been applied so far.
func (d DifficultyParams) Level() int {
	if d.Interval <= 0 {
		return 0
	}
	return d.LastStepElapsed / d.Interval
}
