package catch

import (
	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
)

// Rand is the source of uniform samples in [0, 1) used for spawning.
// *rand.Rand satisfies it; tests can script the samples.
type Rand interface {
	Float64() float64
}

// FallingObject is a single star falling through the field.
type FallingObject struct {
	X, Y  float64 // Top-left of the bounding box
	Size  float64
	Speed float64 // Pixels per tick
}

// Rect returns the bounding box of the object.
func (o FallingObject) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Size, o.Size)
}

// ObjectPool owns the active falling objects: it spawns, advances and
// prunes them.
type ObjectPool struct {
	objects []FallingObject
	rng     Rand
	cfg     config.ObjectsConfig
}

// NewObjectPool creates an empty pool drawing samples from rng.
func NewObjectPool(cfg config.ObjectsConfig, rng Rand) *ObjectPool {
	return &ObjectPool{
		objects: make([]FallingObject, 0, 32),
		rng:     rng,
		cfg:     cfg,
	}
}

// SpawnProbability returns the per-tick spawn chance after elapsed seconds.
// The ramp is unbounded unless ClampProbability is set, so past a certain
// point every tick spawns.
func (p *ObjectPool) SpawnProbability(elapsed int) float64 {
	prob := p.cfg.BaseProbability + float64(elapsed)*p.cfg.ProbabilityRamp
	if p.cfg.ClampProbability && prob > 1 {
		return 1
	}
	return prob
}

// MaybeSpawn draws one sample and spawns a new object just above the
// field if it falls under the current spawn probability.
// Returns true if an object was spawned.
func (p *ObjectPool) MaybeSpawn(elapsed int, fieldW, baseSpeed float64) bool {
	if p.rng.Float64() >= p.SpawnProbability(elapsed) {
		return false
	}

	margin := p.margin()
	p.objects = append(p.objects, FallingObject{
		X:     p.rng.Float64() * (fieldW - margin),
		Y:     -margin,
		Size:  p.cfg.Size,
		Speed: baseSpeed + p.rng.Float64()*p.cfg.SpeedJitter,
	})
	return true
}

// margin is both the spawn height above the field and the right-hand x
// margin. It never drops below the object size so spawns stay in bounds.
func (p *ObjectPool) margin() float64 {
	if p.cfg.SpawnOffset > p.cfg.Size {
		return p.cfg.SpawnOffset
	}
	return p.cfg.Size
}

// AdvanceAndPrune moves every object down by its speed, then drops the
// ones whose top edge is below fieldH. Returns the number dropped.
func (p *ObjectPool) AdvanceAndPrune(fieldH float64) int {
	for i := range p.objects {
		p.objects[i].Y += p.objects[i].Speed
	}
	return p.removeWhere(func(o FallingObject) bool {
		return o.Y > fieldH
	})
}

// removeWhere filters the pool in place and returns how many objects matched.
func (p *ObjectPool) removeWhere(match func(FallingObject) bool) int {
	kept := p.objects[:0]
	for _, o := range p.objects {
		if !match(o) {
			kept = append(kept, o)
		}
	}
	removed := len(p.objects) - len(kept)

	// Zero the tail so dropped objects do not linger in the backing array
	for i := len(kept); i < len(p.objects); i++ {
		p.objects[i] = FallingObject{}
	}
	p.objects = kept
	return removed
}

// Add inserts an object directly, bypassing the spawn roll.
func (p *ObjectPool) Add(o FallingObject) {
	p.objects = append(p.objects, o)
}

// Clear removes all objects.
func (p *ObjectPool) Clear() {
	p.objects = p.objects[:0]
}

// Len returns the number of active objects.
func (p *ObjectPool) Len() int {
	return len(p.objects)
}

// Objects returns a copy of the active objects.
func (p *ObjectPool) Objects() []FallingObject {
	out := make([]FallingObject, len(p.objects))
	copy(out, p.objects)
	return out
}
