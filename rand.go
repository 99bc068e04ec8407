package codewing

import (
	"math/rand/v2"
	"time"
)

// NewRand returns a PCG-backed generator seeded with seed. Engines, samplers
// and tests take a *rand.Rand explicitly so a fixed seed reproduces a run.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewTimeRand returns a generator seeded from the wall clock, for demos.
func NewTimeRand() *rand.Rand {
	return NewRand(uint64(time.Now().UnixNano()))
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// centered returns a value uniform in [-span/2, span/2).
func centered(rng *rand.Rand, span float64) float64 {
	return (rng.Float64() - 0.5) * span
}

// pick returns a random element of words, or "" when words is empty.
func pick(rng *rand.Rand, words []string) string {
	if len(words) == 0 {
		return ""
	}
	return words[rng.IntN(len(words))]
}
