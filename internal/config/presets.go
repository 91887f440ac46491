package config

import (
	"errors"
	"fmt"
)

// ApplyPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyPreset(cfg *CatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseSpeed = 1.5
		cfg.Objects.ProbabilityRamp = 0.0005
		cfg.Collector.Width = 120
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseSpeed = 3
		cfg.Difficulty.SpeedIncrement = 1
		cfg.Difficulty.StepInterval = 10
		cfg.Collector.Width = 80
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}

	// Keep the basket inside the field after a width change.
	if maxX := cfg.CollectorMaxX(); cfg.Collector.X > maxX {
		cfg.Collector.X = maxX
	}
}

// Validate reports every parameter that would make the simulation
// meaningless. All problems are joined into one error.
func (c CatchConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must have positive size, got %gx%g", c.Field.Width, c.Field.Height))
	}
	if c.Collector.Width <= 0 || c.Collector.Height <= 0 {
		errs = append(errs, fmt.Errorf("collector must have positive size, got %gx%g", c.Collector.Width, c.Collector.Height))
	}
	if c.Collector.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("collector width %g exceeds field width %g", c.Collector.Width, c.Field.Width))
	}
	if c.Collector.Step < 0 {
		errs = append(errs, fmt.Errorf("collector step must not be negative, got %g", c.Collector.Step))
	}
	if c.Objects.Size <= 0 {
		errs = append(errs, fmt.Errorf("object size must be positive, got %g", c.Objects.Size))
	}
	if c.Objects.SpawnOffset < 0 || c.Objects.SpawnOffset > c.Field.Width {
		errs = append(errs, fmt.Errorf("spawn offset %g out of range", c.Objects.SpawnOffset))
	}
	if c.Objects.BaseProbability < 0 || c.Objects.ProbabilityRamp < 0 {
		errs = append(errs, errors.New("spawn probabilities must not be negative"))
	}
	if c.Objects.SpeedJitter < 0 {
		errs = append(errs, fmt.Errorf("speed jitter must not be negative, got %g", c.Objects.SpeedJitter))
	}
	if c.Difficulty.BaseSpeed < 0 {
		errs = append(errs, fmt.Errorf("base speed must not be negative, got %g", c.Difficulty.BaseSpeed))
	}
	if c.Difficulty.StepInterval <= 0 {
		errs = append(errs, fmt.Errorf("step interval must be positive, got %d", c.Difficulty.StepInterval))
	}
	if c.Round.Duration <= 0 {
		errs = append(errs, fmt.Errorf("round duration must be positive, got %d", c.Round.Duration))
	}

	return errors.Join(errs...)
}
