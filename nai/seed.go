package nai

import "math/rand"

// normalizeSeed turns the optional request seed into a concrete one: nil or
// negative picks a random 10-digit seed, everything else is used as-is.
func normalizeSeed(seed *int64) uint64 {
	if seed == nil || *seed < 0 {
		return RandomSeed()
	}
	return uint64(*seed)
}

// RandomSeed returns a uniform seed in [1_000_000_000, 9_999_999_999].
func RandomSeed() uint64 {
	return 1_000_000_000 + uint64(rand.Int63n(9_000_000_000))
}
