package generation

import (
	"math/rand"
	"time"

	"retro3d/components"
)

// RandomSource is the randomness the maze generator consumes: uniform floats
// for palette colors and half-open integer ranges for split positions.
type RandomSource interface {
	components.ColorSource
	IntRange(lo, hi int) int
}

// RandSource is the default RandomSource backed by math/rand
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a source seeded from the clock
func NewRandSource() *RandSource {
	return &RandSource{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed allows setting a specific seed for reproducible mazes
func (s *RandSource) SetSeed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Float64 returns a uniform sample in [0, 1)
func (s *RandSource) Float64() float64 {
	return s.rng.Float64()
}

// IntRange returns a uniform integer in [lo, hi). An empty range yields lo.
func (s *RandSource) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo)
}
