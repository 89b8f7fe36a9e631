package patterns

import (
	"github.com/aquilax/go-perlin"

	"gol-sandbox/internal/core"
)

const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3
)

// Noise marks cells where 2D perlin noise exceeds opts.NoiseThreshold. Low
// scales give large blobs; high scales approach uniform random.
func Noise(opts Options) []core.Point {
	scale := opts.NoiseScale
	if scale <= 0 {
		scale = 0.08
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, opts.Seed)
	var pts []core.Point
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			if p.Noise2D(float64(x)*scale, float64(y)*scale) > opts.NoiseThreshold {
				pts = append(pts, core.Point{X: x, Y: y})
			}
		}
	}
	return pts
}
