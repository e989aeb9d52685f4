package util

import "math/rand"

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Jitter returns a uniform offset in [-spread, spread).
func Jitter(r *rand.Rand, spread float64) float64 {
	return (r.Float64()*2 - 1) * spread
}

// Derive spreads batch run i away from the base seed so neighbouring runs
// do not share a stream.
func Derive(seed int64, i int) int64 {
	return seed + int64(i)*7919
}
