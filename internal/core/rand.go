package core

import "math/rand"

// Rand is the random source threaded through every component that breaks
// ties or places things at random. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded source. The same seed always yields the same
// sequence, which is what tests and replays rely on.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

var _ Rand = (*rand.Rand)(nil)
