// SPDX-License-Identifier: MIT

package generator

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// pcgStream is the fixed second PCG word; the seed selects the sequence.
const pcgStream = 0x9e3779b97f4a7c15

// Source draws floating-point values uniformly from [0,1).
type Source interface {
	Float64() float64
}

// UniformSource is a seeded U[0,1) stream backed by gonum's distuv.Uniform.
// It is not safe for concurrent use; each caller owns its own instance.
type UniformSource struct {
	dist distuv.Uniform
}

// NewUniformSource returns a deterministic U[0,1) source for seed.
// Two sources built from the same seed yield identical sequences.
func NewUniformSource(seed uint64) *UniformSource {
	return &UniformSource{
		dist: distuv.Uniform{
			Min: 0,
			Max: 1,
			Src: rand.NewPCG(seed, pcgStream),
		},
	}
}

// Float64 draws the next value.
func (s *UniformSource) Float64() float64 { return s.dist.Rand() }

// ConstantSource returns the same draw forever.
type ConstantSource float64

// Float64 returns the constant.
func (c ConstantSource) Float64() float64 { return float64(c) }

// SequenceSource replays a fixed list of draws, wrapping around at the end.
type SequenceSource struct {
	draws []float64
	next  int
}

// NewSequenceSource copies draws into a replaying source.
// An empty list behaves like ConstantSource(0).
func NewSequenceSource(draws ...float64) *SequenceSource {
	cp := make([]float64, len(draws))
	copy(cp, draws)

	return &SequenceSource{draws: cp}
}

// Float64 returns the next draw in the sequence.
func (s *SequenceSource) Float64() float64 {
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[s.next]
	s.next = (s.next + 1) % len(s.draws)

	return v
}
