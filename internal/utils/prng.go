// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// Source is a uniform random source in [0, 1).
type Source interface {
	Float64() float64
}

// PRNGService — обертка над стандартным генератором, чтобы сид можно было
// задать извне и воспроизвести анимацию.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service seeded with seed. A zero seed uses the
// current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// SequenceSource replays a fixed sequence of values, wrapping around at the
// end. An empty sequence always yields 0.
type SequenceSource struct {
	Values []float64
	next   int
}

func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{Values: values}
}

func (s *SequenceSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Draws reports how many values have been consumed.
func (s *SequenceSource) Draws() int {
	return s.next
}

// ConstSource always returns the same value.
type ConstSource float64

func (c ConstSource) Float64() float64 {
	return float64(c)
}
