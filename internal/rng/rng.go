// Package rng provides the uniform random sources consumed by the accretion
// engine.
package rng

import "math/rand"

// Source yields uniform variates in [0, 1).
type Source interface {
	Float64() float64
}

const (
	javaMultiplier = 0x5DEECE66D
	javaAddend     = 0xB
	javaMask       = (1 << 48) - 1
	doubleUnit     = 1.0 / (1 << 53)
)

// Java reproduces the stream of java.util.Random for a given seed, so seeds
// recorded against the reference generator replay identically.
type Java struct {
	seed int64
}

func NewJava(seed int64) *Java {
	return &Java{seed: (seed ^ javaMultiplier) & javaMask}
}

func (r *Java) next(bits uint) int64 {
	r.seed = (r.seed*javaMultiplier + javaAddend) & javaMask
	return int64(int32(r.seed >> (48 - bits)))
}

func (r *Java) Float64() float64 {
	hi := r.next(26)
	lo := r.next(27)
	return float64(hi<<27+lo) * doubleUnit
}

// Math adapts a math/rand generator.
type Math struct {
	r *rand.Rand
}

func NewMath(seed int64) *Math {
	return &Math{r: rand.New(rand.NewSource(seed))}
}

func (m *Math) Float64() float64 { return m.r.Float64() }

// Sequence replays a fixed list of variates, wrapping around at the end.
type Sequence struct {
	values []float64
	pos    int
}

func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// Counter wraps a Source and counts the variates drawn from it.
type Counter struct {
	Source
	Drawn int
}

func (c *Counter) Float64() float64 {
	c.Drawn++
	return c.Source.Float64()
}
