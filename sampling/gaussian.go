package sampling

import (
	"math"

	"github.com/nozzle/rng"
)

// BoxMuller samples the standard normal distribution with the Box-Muller
// transform. Each transform yields two deviates; the second is kept for the
// next call.
type BoxMuller struct {
	g       rng.Generator
	next    float64
	hasNext bool
}

// NewBoxMuller returns a standard normal sampler drawing from g.
func NewBoxMuller(g rng.Generator) *BoxMuller {
	return &BoxMuller{g: g}
}

// Sample returns the next deviate, computing a new pair every other call.
func (s *BoxMuller) Sample() float64 {
	if s.hasNext {
		s.hasNext = false
		return s.next
	}
	// 1-u is in (0, 1], keeping the logarithm finite.
	x := s.g.Float64()
	y := 1 - s.g.Float64()
	alpha := 2 * math.Pi * x
	r := math.Sqrt(-2 * math.Log(y))
	sin, cos := math.Sincos(alpha)
	s.next = r * sin
	s.hasNext = true
	return r * cos
}

// WithGenerator returns a sampler bound to g. The spare deviate is not
// carried over.
func (s *BoxMuller) WithGenerator(g rng.Generator) *BoxMuller {
	return NewBoxMuller(g)
}

// Gaussian samples a normal distribution with the given mean and standard
// deviation.
type Gaussian struct {
	normalized *BoxMuller
	mean, sd   float64
}

// NewGaussian returns a sampler with the given mean and positive standard deviation.
func NewGaussian(g rng.Generator, mean, sd float64) (*Gaussian, error) {
	if !finite(mean) {
		return nil, invalid("gaussian mean %v", mean)
	}
	if !(sd > 0) || !finite(sd) {
		return nil, invalid("gaussian standard deviation %v", sd)
	}
	return &Gaussian{normalized: NewBoxMuller(g), mean: mean, sd: sd}, nil
}

// Sample returns the next deviate.
func (s *Gaussian) Sample() float64 {
	return s.mean + s.sd*s.normalized.Sample()
}

// WithGenerator returns a copy bound to g.
func (s *Gaussian) WithGenerator(g rng.Generator) *Gaussian {
	return &Gaussian{normalized: NewBoxMuller(g), mean: s.mean, sd: s.sd}
}
