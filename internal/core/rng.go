package core

import (
	"math"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand

	spare    float64
	hasSpare bool
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Uint8n returns a random uint8 in [0, n) for n up to MaxStates.
func (r *RNG) Uint8n(n int) uint8 {
	if n <= 0 {
		return 0
	}
	if n > MaxStates {
		n = MaxStates
	}
	return uint8(r.r.IntN(n))
}

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Normal draws from a normal distribution using the Marsaglia polar method.
// Each accepted pair yields two variates; the second is kept for the next call.
func (r *RNG) Normal(mean, stddev float64) float64 {
	if r.hasSpare {
		r.hasSpare = false
		return mean + stddev*r.spare
	}
	var u, v, s float64
	for {
		u = r.r.Float64()*2 - 1
		v = r.r.Float64()*2 - 1
		s = u*u + v*v
		if s < 1 && s != 0 {
			break
		}
	}
	s = math.Sqrt(-2 * math.Log(s) / s)
	r.spare = v * s
	r.hasSpare = true
	return mean + stddev*u*s
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
