package catch

import (
	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
)

// Collector is the player-controlled basket.
type Collector struct {
	X, Y float64 // Top-left corner
	W, H float64
	Step float64 // Pixels moved per tick per held direction
}

// NewCollector places a collector at its configured starting position.
func NewCollector(cfg config.CollectorConfig) Collector {
	return Collector{
		X:    cfg.X,
		Y:    cfg.Y,
		W:    cfg.Width,
		H:    cfg.Height,
		Step: cfg.Step,
	}
}

// Apply moves the collector by one step per held direction and clamps it
// to [0, fieldW-W]. Left and right held together cancel out.
func (c *Collector) Apply(in core.Intent, fieldW float64) {
	dx := 0.0
	if in.Left {
		dx -= c.Step
	}
	if in.Right {
		dx += c.Step
	}
	c.X = core.ClampF(c.X+dx, 0, fieldW-c.W)
}

// Rect returns the collector's bounding box.
func (c Collector) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}
