// Package rng provides the seeded deterministic random source of a
// randomization run.
package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
)

// Source is a deterministic random stream derived from a seed string.
// The same seed always produces the same sequence of values.
type Source struct {
	seed string
	r    *rand.Rand
}

// New returns a source seeded by the given seed string. Numeric and
// arbitrary strings are both accepted.
func New(seed string) *Source {
	sum := sha256.Sum256([]byte(seed))
	hi := binary.LittleEndian.Uint64(sum[0:8])
	lo := binary.LittleEndian.Uint64(sum[8:16])

	return &Source{
		seed: seed,
		r:    rand.New(rand.NewPCG(hi, lo)),
	}
}

// Seed returns the seed string the source was created with.
func (s *Source) Seed() string {
	return s.seed
}

// IntN returns a uniform value in [0, n). It panics if n <= 0.
func (s *Source) IntN(n int) int {
	return s.r.IntN(n)
}

// IntRange returns a uniform value in [lo, hi].
func (s *Source) IntRange(lo, hi int) int {
	return lo + s.r.IntN(hi-lo+1)
}

// Float64 returns a uniform value in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Shuffle pseudo-randomizes the order of n elements.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}
