package vmath

import "time"

// Source is the random stream consumed by entity construction and simulation
// Float64 returns values in [0, 1)
type Source interface {
	Float64() float64
}

// Range returns a value uniformly distributed in [lo, hi)
func Range(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Centered returns a value uniformly distributed in [-span/2, span/2)
func Centered(src Source, span float64) float64 {
	return (src.Float64() - 0.5) * span
}

// Intn returns an int in [0, n), 0 for non-positive n
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator, zero seed is replaced since xorshift sticks at 0
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewEntropyRand seeds a FastRand from the wall clock
func NewEntropyRand() *FastRand {
	return NewFastRand(uint64(time.Now().UnixNano()))
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 uses the top 53 bits for a uniform mantissa
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// CounterRand is a counter-based generator: output i depends only on seed and i
// Two generators with the same seed yield identical sequences
type CounterRand struct {
	seed    uint64
	counter uint64
}

// NewCounterRand creates a counter-based generator
func NewCounterRand(seed uint64) *CounterRand {
	return &CounterRand{seed: seed}
}

// At returns the value at position i without advancing
func (r *CounterRand) At(i uint64) float64 {
	return float64(splitmix64(r.seed+i*0x9E3779B97F4A7C15)>>11) / (1 << 53)
}

func (r *CounterRand) Float64() float64 {
	v := r.At(r.counter)
	r.counter++
	return v
}

// Position returns how many values have been drawn
func (r *CounterRand) Position() uint64 {
	return r.counter
}

func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// Sequence replays a fixed list of values in a cycle, for scripted tests
type Sequence struct {
	values []float64
	pos    int
}

// NewSequence creates a scripted source, values outside [0,1) are clamped
func NewSequence(values ...float64) *Sequence {
	vals := make([]float64, len(values))
	for i, v := range values {
		vals[i] = Clamp(v, 0, 0.9999999999)
	}
	return &Sequence{values: vals}
}

func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}
