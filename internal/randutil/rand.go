package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences. The result satisfies
// deck.Source.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewOrTime seeds from seed, or from the wall clock when seed is zero.
func NewOrTime(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(seed)
}

// Sequence is a scripted source that replays fixed values, clamped into range.
// Once exhausted it returns zero.
type Sequence struct {
	values []int
	pos    int
}

// NewSequence returns a scripted source
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntN returns the next scripted value modulo n
func (s *Sequence) IntN(n int) int {
	if n <= 0 || s.pos >= len(s.values) {
		return 0
	}
	v := s.values[s.pos] % n
	s.pos++
	if v < 0 {
		v += n
	}
	return v
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
