package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the default configuration.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Collector: CollectorConfig{
			X:      350,
			Y:      550,
			Width:  100,
			Height: 30,
			Step:   5,
		},
		Objects: ObjectsConfig{
			Size:            15,
			SpawnOffset:     20,
			BaseProbability: 0.02,
			ProbabilityRamp: 0.001,
			SpeedJitter:     2,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			BaseSpeed:      2,
			SpeedIncrement: 0.5,
			StepInterval:   15,
		},
		Round: RoundConfig{
			Duration: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultCatchYAML
}
