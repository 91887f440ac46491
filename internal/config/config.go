// Package config provides YAML and TOML configuration loading and
// difficulty presets for Star Catch.
package config

// CatchConfig contains all tunable parameters of a round.
type CatchConfig struct {
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Collector  CollectorConfig  `yaml:"collector" toml:"collector"`
	Objects    ObjectsConfig    `yaml:"objects" toml:"objects"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Round      RoundConfig      `yaml:"round" toml:"round"`
}

// FieldConfig defines the playing field in field pixels.
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// CollectorConfig defines the player-controlled basket.
type CollectorConfig struct {
	X      float64 `yaml:"x" toml:"x"` // Starting left edge
	Y      float64 `yaml:"y" toml:"y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Step   float64 `yaml:"step" toml:"step"` // Pixels moved per tick per held direction
}

// ObjectsConfig defines falling star spawning.
type ObjectsConfig struct {
	Size            float64 `yaml:"size" toml:"size"`
	SpawnOffset     float64 `yaml:"spawn_offset" toml:"spawn_offset"` // Stars spawn at y = -offset; also the x margin
	BaseProbability float64 `yaml:"base_probability" toml:"base_probability"`
	ProbabilityRamp float64 `yaml:"probability_ramp" toml:"probability_ramp"` // Added per elapsed second
	SpeedJitter     float64 `yaml:"speed_jitter" toml:"speed_jitter"`
	// ClampProbability caps the spawn probability at 1. Off by default so
	// long rounds keep the unbounded ramp.
	ClampProbability bool `yaml:"clamp_probability" toml:"clamp_probability"`
}

// DifficultyConfig defines the stepped fall speed curve.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled" toml:"enabled"`
	BaseSpeed      float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment" toml:"speed_increment"`
	StepInterval   int     `yaml:"step_interval" toml:"step_interval"` // Seconds between speed steps
}

// RoundConfig defines the round timer.
type RoundConfig struct {
	Duration int `yaml:"duration" toml:"duration"` // Seconds
}

// CollectorMaxX returns the largest valid left edge for the collector.
func (c CatchConfig) CollectorMaxX() float64 {
	return c.Field.Width - c.Collector.Width
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield
// the empty preset, meaning "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
