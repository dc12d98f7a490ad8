package seed

import (
	"slices"

	"gh-life/internal/core"

	"github.com/aquilax/go-perlin"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 0.35
)

// Random marks each cell alive with probability c.Density.
func Random(c Config) core.Snapshot {
	rng := core.NewRNG(c.Seed)
	snap := core.NewSnapshot(c.Width, c.Height)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if rng.Chance(c.Density) {
				snap.Cells[core.Cell{X: x, Y: y}] = true
			}
		}
	}
	return snap
}

// Noise seeds clustered live regions by thresholding 2D perlin noise. Roughly
// c.Density of the cells end up alive.
func Noise(c Config) core.Snapshot {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, c.Seed)
	snap := core.NewSnapshot(c.Width, c.Height)
	if c.Density <= 0 {
		return snap
	}

	values := make([]float64, 0, c.Width*c.Height)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			values = append(values, p.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale))
		}
	}
	threshold := quantile(values, 1-c.Density)
	for i, v := range values {
		if v >= threshold {
			snap.Cells[core.Cell{X: i % c.Width, Y: i / c.Width}] = true
		}
	}
	return snap
}

// quantile returns the value below which a fraction q of values fall.
func quantile(values []float64, q float64) float64 {
	sorted := append([]float64(nil), values...)
	slices.Sort(sorted)
	idx := int(q * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}
