package game

import (
	"sync"
	"time"
)

// Source supplies the uniform draws consumed by break attempts. The store
// takes it as a constructor argument so tests can feed fixed sequences.
type Source interface {
	Float64() float64
}

type XorShift32 struct {
	state uint32
}

func NewXorShift32(seed uint32) *XorShift32 {
	if seed == 0 {
		seed = 0x12345678
	}
	return &XorShift32{state: seed}
}

func (x *XorShift32) Next() uint32 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return s
}

func (x *XorShift32) Float64() float64 {
	const maxUint32 = float64(^uint32(0))
	return float64(x.Next()) / maxUint32
}

type lockedSource struct {
	mu  sync.Mutex
	rng *XorShift32
}

// DefaultSource returns a time-seeded generator safe for concurrent use.
func DefaultSource() Source {
	return &lockedSource{rng: NewXorShift32(uint32(time.Now().UnixNano()))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
