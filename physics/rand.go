package physics

import "math/rand/v2"

// Rand is the random source for hit responses and spawns
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded PCG source
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Uniform draws from [lo, hi)
func Uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Intn draws an integer in [0, n) from r, n <= 0 returns 0
func Intn(r Rand, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
