// Package sampling draws from common distributions using any rng.Generator.
//
// Samplers hold no state besides their parameters and generator (the
// Box-Muller sampler also keeps its spare deviate). WithGenerator returns a
// copy bound to another generator, which pairs with jump and split streams:
//
//	s, _ := sampling.NewGaussian(g, 10, 2)
//	for c := range jumps.All() {
//		go work(s.WithGenerator(c))
//	}
package sampling

import (
	"math"

	"golang.org/x/xerrors"

	"github.com/nozzle/rng"
)

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func invalid(format string, args ...any) error {
	return xerrors.Errorf(format+": %w", append(args, rng.ErrInvalidArgument)...)
}

// ContinuousUniform samples uniformly from [lower, upper).
type ContinuousUniform struct {
	g            rng.Generator
	lower, upper float64
}

// NewContinuousUniform returns a sampler of [lower, upper). The bounds may
// be given in either order.
func NewContinuousUniform(g rng.Generator, lower, upper float64) (*ContinuousUniform, error) {
	if !finite(lower) || !finite(upper) {
		return nil, invalid("uniform bounds [%v, %v)", lower, upper)
	}
	return &ContinuousUniform{g: g, lower: lower, upper: upper}, nil
}

// Sample returns the next value.
func (s *ContinuousUniform) Sample() float64 {
	u := s.g.Float64()
	return u*s.upper + (1-u)*s.lower
}

// WithGenerator returns a copy bound to g.
func (s *ContinuousUniform) WithGenerator(g rng.Generator) *ContinuousUniform {
	c := *s
	c.g = g
	return &c
}

// DiscreteUniform samples uniformly from the integers in [lower, upper].
type DiscreteUniform struct {
	g            rng.Generator
	lower, upper int64
	// n is upper-lower+1, or 0 when the range covers more than MaxInt64 values.
	n int64
}

// NewDiscreteUniform returns a sampler of [lower, upper]. lower must not exceed upper.
func NewDiscreteUniform(g rng.Generator, lower, upper int64) (*DiscreteUniform, error) {
	if lower > upper {
		return nil, invalid("discrete uniform lower %d above upper %d", lower, upper)
	}
	n := upper - lower + 1
	if n <= 0 {
		n = 0
	}
	return &DiscreteUniform{g: g, lower: lower, upper: upper, n: n}, nil
}

// Sample returns the next value.
func (s *DiscreteUniform) Sample() int64 {
	if s.n == 0 {
		for {
			v := s.g.Int64()
			if v >= s.lower && v <= s.upper {
				return v
			}
		}
	}
	v, _ := s.g.Int64N(s.n) // n > 0
	return s.lower + v
}

// WithGenerator returns a copy bound to g.
func (s *DiscreteUniform) WithGenerator(g rng.Generator) *DiscreteUniform {
	c := *s
	c.g = g
	return &c
}
