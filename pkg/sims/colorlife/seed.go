package colorlife

import (
	"github.com/aquilax/go-perlin"

	"chromalife/pkg/core"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 0.08
)

// seed lays out the initial population in the current buffer.
func (e *Engine) seed() {
	switch e.cfg.SeedPattern {
	case SeedNoise:
		e.seedNoise()
	default:
		e.rng.FillDensity(e.cur, e.cfg.InitialDensity, e.cfg.InitialColor)
	}
}

// seedNoise scales the configured density by a Perlin field so the starting
// population forms blobs instead of an even scatter. The noise seed derives
// from the engine RNG, keeping the whole layout reproducible from one seed.
func (e *Engine) seedNoise() {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, int64(e.rng.IntN(1<<31)))
	for row := 0; row < e.h; row++ {
		for col := 0; col < e.w; col++ {
			// Noise2D returns roughly [-1, 1]; fold to [0, 1].
			n := (p.Noise2D(float64(col)*noiseScale, float64(row)*noiseScale) + 1) / 2
			idx := core.Index(e.w, row, col)
			if e.rng.Chance(e.cfg.InitialDensity * n) {
				e.cur[idx] = core.Cell{Color: e.cfg.InitialColor, Alive: true}
			} else {
				e.cur[idx] = core.Cell{}
			}
		}
	}
}
