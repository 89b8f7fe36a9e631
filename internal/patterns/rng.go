package patterns

import (
	"math/rand/v2"

	"gol-sandbox/internal/core"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Random fills the board uniformly at opts.Density.
func Random(opts Options) []core.Point {
	density := opts.Density
	if density <= 0 {
		return nil
	}
	rng := NewRNG(opts.Seed)
	var pts []core.Point
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			if rng.Chance(density) {
				pts = append(pts, core.Point{X: x, Y: y})
			}
		}
	}
	return pts
}
