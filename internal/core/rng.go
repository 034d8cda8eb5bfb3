package core

import "math/rand/v2"

// Source yields uniform random values in [0, 1). Simulations draw every
// random decision from a Source so tests can swap in a rigged one.
type Source func() float64

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Reseed restarts the generator from seed.
func (r *RNG) Reseed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Source adapts the RNG to the Source signature. The returned function keeps
// following the RNG across Reseed calls.
func (r *RNG) Source() Source {
	return func() float64 { return r.r.Float64() }
}

// Fixed returns a Source that always yields v.
func Fixed(v float64) Source {
	return func() float64 { return v }
}

// Sequence returns a Source that replays vals in order and then repeats the
// last value forever. An empty sequence yields 0.
func Sequence(vals ...float64) Source {
	var i int
	return func() float64 {
		if len(vals) == 0 {
			return 0
		}
		if i >= len(vals) {
			return vals[len(vals)-1]
		}
		v := vals[i]
		i++
		return v
	}
}
