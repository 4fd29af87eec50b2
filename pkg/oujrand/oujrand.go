// Package oujrand provides deterministic, stream-keyed random number
// generation for the content provider reference implementation.
package oujrand

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// Stream is a deterministic PRNG cursor keyed by (seed, streamKey). Each
// stream derives its own sub-seed so that two streams opened for the same
// seed but different keys (e.g. "sho2" vs "ar11" — shop-ante-2 vs arcana-ante-1)
// are independent, while the same (seed, key) pair always reproduces the
// identical draw sequence. The derivation is:
//
//	subSeed = H(seed, streamKey)[0:8]
//
// where H is SHA-256.
type Stream struct {
	seed      string
	streamKey string
	source    *rand.Rand
}

// New derives a stream-specific generator from the game seed and a canonical
// stream key (see pkg/streamcache.CacheKey.String()).
func New(seed, streamKey string) *Stream {
	h := sha256.New()
	h.Write([]byte(seed))
	h.Write([]byte{0})
	h.Write([]byte(streamKey))
	sum := h.Sum(nil)
	sub := binary.BigEndian.Uint64(sum[:8])

	return &Stream{
		seed:      seed,
		streamKey: streamKey,
		source:    rand.New(rand.NewSource(int64(sub))),
	}
}

// Uint64 returns a pseudo-random 64-bit unsigned integer.
func (s *Stream) Uint64() uint64 {
	return s.source.Uint64()
}

// Intn returns a pseudo-random integer in [0, n). Panics if n <= 0.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		panic("oujrand: Intn argument must be positive")
	}
	return s.source.Intn(n)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (s *Stream) Float64() float64 {
	return s.source.Float64()
}

// Shuffle pseudo-randomizes the order of elements in place.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	s.source.Shuffle(n, swap)
}

// Key returns the canonical stream key this generator was derived from.
func (s *Stream) Key() string {
	return s.streamKey
}

// WeightedChoice selects an index from weights using weighted random
// selection. Weights must be non-negative. Returns -1 if all weights are
// zero or weights is empty.
func (s *Stream) WeightedChoice(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		if w < 0 {
			panic("oujrand: WeightedChoice weights must be non-negative")
		}
		total += w
	}
	if total == 0 {
		return -1
	}

	randVal := s.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if randVal < cumulative {
			return i
		}
	}
	return len(weights) - 1
}
