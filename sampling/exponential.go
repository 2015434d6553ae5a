package sampling

import (
	"math"

	"github.com/nozzle/rng"
)

// Exponential samples the exponential distribution by inversion.
type Exponential struct {
	g    rng.Generator
	mean float64
}

// NewExponential returns a sampler with the given mean, which must be positive.
func NewExponential(g rng.Generator, mean float64) (*Exponential, error) {
	if !(mean > 0) || !finite(mean) {
		return nil, invalid("exponential mean %v", mean)
	}
	return &Exponential{g: g, mean: mean}, nil
}

// Sample returns the next deviate.
func (s *Exponential) Sample() float64 {
	return -s.mean * math.Log1p(-s.g.Float64())
}

// WithGenerator returns a copy bound to g.
func (s *Exponential) WithGenerator(g rng.Generator) *Exponential {
	c := *s
	c.g = g
	return &c
}

// SmallMeanPoisson samples the Poisson distribution by multiplying uniform
// deviates until the product falls below exp(-mean). It suits means up to a
// few tens; the cost of a sample grows with the mean.
type SmallMeanPoisson struct {
	g     rng.Generator
	p0    float64
	limit int
}

// maxSmallPoissonMean keeps exp(-mean) a normal float64.
const maxSmallPoissonMean = 700

// NewSmallMeanPoisson returns a sampler with the given mean.
func NewSmallMeanPoisson(g rng.Generator, mean float64) (*SmallMeanPoisson, error) {
	if !(mean > 0) || mean > maxSmallPoissonMean {
		return nil, invalid("poisson mean %v outside (0, %d]", mean, maxSmallPoissonMean)
	}
	return &SmallMeanPoisson{
		g:     g,
		p0:    math.Exp(-mean),
		limit: int(math.Ceil(1000 * mean)),
	}, nil
}

// Sample returns the next count.
func (s *SmallMeanPoisson) Sample() int {
	n := 0
	r := 1.0
	for n < s.limit {
		r *= s.g.Float64()
		if r < s.p0 {
			break
		}
		n++
	}
	return n
}

// WithGenerator returns a copy bound to g.
func (s *SmallMeanPoisson) WithGenerator(g rng.Generator) *SmallMeanPoisson {
	c := *s
	c.g = g
	return &c
}
