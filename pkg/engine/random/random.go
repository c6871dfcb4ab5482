// Package random provides the injectable randomness used by maze generation
// and enemy movement, so both can be replayed from a seed or scripted in tests.
package random

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the game relies on
type Source interface {
	Float64() float64
	Intn(n int) int
}

// New returns a seeded source. A zero seed picks one from the clock.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Choice returns a uniformly chosen element of items. items must not be empty.
func Choice[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// Scripted replays fixed draws. Once a script runs out, Float64 returns
// FloatFallback and Intn returns 0.
type Scripted struct {
	Floats        []float64
	Ints          []int
	FloatFallback float64

	floatPos int
	intPos   int
}

// NewScripted creates a scripted source that descends (Float64 close to 1)
// once its float script is exhausted
func NewScripted(floats []float64, ints []int) *Scripted {
	return &Scripted{
		Floats:        floats,
		Ints:          ints,
		FloatFallback: 0.999,
	}
}

// Float64 returns the next scripted float
func (s *Scripted) Float64() float64 {
	if s.floatPos >= len(s.Floats) {
		return s.FloatFallback
	}
	f := s.Floats[s.floatPos]
	s.floatPos++
	return f
}

// Intn returns the next scripted int, reduced into [0, n)
func (s *Scripted) Intn(n int) int {
	if n <= 0 {
		panic("random: invalid argument to Intn")
	}
	if s.intPos >= len(s.Ints) {
		return 0
	}
	v := s.Ints[s.intPos] % n
	s.intPos++
	if v < 0 {
		v += n
	}
	return v
}

// Draws reports how many floats and ints have been consumed
func (s *Scripted) Draws() (floats, ints int) {
	return s.floatPos, s.intPos
}
