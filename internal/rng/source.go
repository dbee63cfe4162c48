package rng

import "math/rand"

// Source is a seeded random number generator. Unlike Crypto, a Source is
// deterministic: two sources built from the same seed produce the same
// sequence of values. The internal state advances on every call, so repeated
// shuffles against one source differ from each other but the whole run is
// reproducible from the seed alone.
type Source struct {
	seed int64
	rand *rand.Rand
}

// NewSource returns a Source seeded with seed
func NewSource(seed int64) *Source {
	return &Source{
		seed: seed,
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Intn will return a random number up to but not including n
func (s *Source) Intn(n int) int {
	return s.rand.Intn(n)
}

// Seed returns the seed the source was created with
func (s *Source) Seed() int64 {
	return s.seed
}
