package centrality

import "math/rand"

// defaultRNGSeed replaces a zero seed so the zero Options value stays
// reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier with the SplitMix64
// finalizer, so neighbouring stream IDs get uncorrelated seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// targetRNG returns the sampling stream of the target at position pos in the
// sorted vertex list. A *rand.Rand is not goroutine-safe; each target owns
// its stream, so the trajectory of a target does not depend on which worker
// runs it or in what order.
func targetRNG(seed int64, pos int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rngFromSeed(deriveSeed(seed, uint64(pos)))
}

// RepetitionSeed returns the parent seed of repetition rep of a run seeded
// with seed. Repetitions of one run sample independent streams, and the
// same (seed, rep) always yields the same stream.
func RepetitionSeed(seed int64, rep int) int64 {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return deriveSeed(seed, uint64(rep)<<32|0xffffffff)
}
