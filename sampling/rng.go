package sampling

import "math/rand"

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id into an independent seed
// (SplitMix64 finalizer).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// draw picks an index of the distribution p by inversion; rounding shortfall
// at the top goes to the last state with positive mass.
func draw(r *rand.Rand, p []float64) int {
	u := r.Float64()
	acc := 0.0
	last := 0
	for i, x := range p {
		if x <= 0 {
			continue
		}
		last = i
		acc += x
		if u < acc {
			return i
		}
	}

	return last
}
