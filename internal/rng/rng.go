// Package rng provides the uniform random draws consumed by the trial simulators.
package rng

import (
	"fmt"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source produces independent uniform draws in [0,1).
type Source interface {
	Float64() float64
}

// Uniform draws from a unit uniform distribution over a PCG stream.
type Uniform struct {
	dist distuv.Uniform
	seed uint64
}

// NewUniform creates a uniform source. A zero seed picks a time-derived seed,
// so unseeded runs differ from each other.
func NewUniform(seed uint64) *Uniform {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Uniform{
		dist: distuv.Uniform{Min: 0, Max: 1, Src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)},
		seed: seed,
	}
}

// Float64 returns the next draw.
func (u *Uniform) Float64() float64 {
	return u.dist.Rand()
}

// Seed returns the seed the stream was created with.
func (u *Uniform) Seed() uint64 {
	return u.seed
}

// Scripted replays a fixed sequence of draws. Used to pin trial outcomes in tests.
type Scripted struct {
	draws []float64
	next  int
}

// NewScripted creates a source that returns draws in order.
func NewScripted(draws ...float64) *Scripted {
	return &Scripted{draws: draws}
}

// Float64 returns the next scripted draw. Panics when the script is exhausted.
func (s *Scripted) Float64() float64 {
	if s.next >= len(s.draws) {
		panic(fmt.Sprintf("rng: scripted source exhausted after %d draws", len(s.draws)))
	}
	v := s.draws[s.next]
	s.next++
	return v
}

// Used returns how many draws have been consumed.
func (s *Scripted) Used() int {
	return s.next
}

// Remaining returns how many scripted draws are left.
func (s *Scripted) Remaining() int {
	return len(s.draws) - s.next
}

// Constant returns the same draw forever.
type Constant float64

// Float64 returns c.
func (c Constant) Float64() float64 {
	return float64(c)
}

// Counting wraps a source and counts draws.
type Counting struct {
	Source Source
	Draws  int
}

// Float64 forwards to the wrapped source.
func (c *Counting) Float64() float64 {
	c.Draws++
	return c.Source.Float64()
}
