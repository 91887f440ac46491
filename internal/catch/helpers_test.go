package catch

import (
	"math/rand"

	"github.com/vovakirdan/starcatch/internal/config"
)

// scriptedRand returns the given samples in order, then repeats the last one.
type scriptedRand struct {
	samples []float64
	i       int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	v := s.samples[s.i]
	if s.i < len(s.samples)-1 {
		s.i++
	}
	return v
}

// neverSpawn always rolls above any probability below 1.
func neverSpawn() *scriptedRand {
	return &scriptedRand{samples: []float64{0.999999}}
}

func newTestRound(rng Rand) *Round {
	return NewRound(config.DefaultCatchConfig(), rng)
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// recorder captures listener calls.
type recorder struct {
	started []State
	scored  []int
	ended   []State
}

func (r *recorder) RoundStarted(s State)       { r.started = append(r.started, s) }
func (r *recorder) Scored(_ State, caught int) { r.scored = append(r.scored, caught) }
func (r *recorder) RoundEnded(s State)         { r.ended = append(r.ended, s) }
