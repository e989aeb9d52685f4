package combat

import "math/rand"

// countdown decrements a timer by dt and clamps it at zero, so a large
// frame never leaves a timer negative.
func countdown(v, dt float64) float64 {
	v -= dt
	if v < 0 {
		v = 0
	}
	return v
}

// rollInterval picks a uniform duration in [min, max].
func rollInterval(min, max float64, rng *rand.Rand) float64 {
	if max <= 0 {
		return min
	}
	if max < min {
		max = min
	}
	if min == max {
		return min
	}
	return min + rng.Float64()*(max-min)
}
