package core

import (
	"math/rand"
	"time"
)

// Rand is the randomness seam used by the simulation.
// Range returns a value in the half-open interval [low, high).
// When high <= low it returns low.
type Rand interface {
	Range(low, high int) int
}

type mathRand struct {
	r *rand.Rand
}

// NewRand returns a Rand backed by math/rand. A zero seed uses the clock.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathRand{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRand) Range(low, high int) int {
	if high <= low {
		return low
	}
	return low + m.r.Intn(high-low)
}

// SequenceRand replays a fixed list of draws, in order.
// Each value is clamped into the requested range so a script can never produce
// an illegal draw; once exhausted it returns low.
type SequenceRand struct {
	values []int
	pos    int
}

// NewSequenceRand creates a scripted source.
func NewSequenceRand(values ...int) *SequenceRand {
	return &SequenceRand{values: values}
}

// Range returns the next scripted value clamped to [low, high).
func (s *SequenceRand) Range(low, high int) int {
	if high <= low {
		return low
	}
	if s.pos >= len(s.values) {
		return low
	}
	v := s.values[s.pos]
	s.pos++
	return Clamp(v, low, high-1)
}

// Remaining returns how many scripted draws have not been consumed.
func (s *SequenceRand) Remaining() int {
	return len(s.values) - s.pos
}
