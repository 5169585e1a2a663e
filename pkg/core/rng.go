package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. Simulations receive it as an injected capability so tests can run
// against fixed seeds.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Color returns a random color, uniform per channel with a brightness floor
// so spawned clusters stay visible against the background.
func (r *RNG) Color() Color {
	c := Color{
		R: uint8(r.r.IntN(256)),
		G: uint8(r.r.IntN(256)),
		B: uint8(r.r.IntN(256)),
	}
	if c.R < 40 {
		c.R += 40
	}
	if c.G < 40 {
		c.G += 40
	}
	if c.B < 40 {
		c.B += 40
	}
	return c
}

// FillDensity marks each cell alive with probability density, all sharing the
// provided color, and clears the rest.
func (r *RNG) FillDensity(cells []Cell, density float64, color Color) {
	for i := range cells {
		if r.Chance(density) {
			cells[i] = Cell{Color: color, Alive: true}
		} else {
			cells[i] = Cell{}
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
