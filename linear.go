package rng

import (
	"slices"
	"sync"

	"github.com/nozzle/rng/internal/gf2"
)

// LinearEngine is the F2-linear state transition shared by a family of
// scrambled generators (xoshiro, xoroshiro). Engines are process-wide
// values; the jump polynomials are derived once on first use and are
// read-only afterwards.
type LinearEngine[W Word] struct {
	// Size is the number of state words.
	Size int
	// LogPeriod bounds arbitrary jumps to distances below 2^LogPeriod.
	LogPeriod int
	// Step applies the transition in place.
	Step func(s []W)

	// JumpLog and LongJumpLog are log2 of the fixed jump distances.
	JumpLog     int
	LongJumpLog int
	// JumpTable and LongJumpTable hold the published coefficients of
	// x^(2^JumpLog) and x^(2^LongJumpLog) modulo the characteristic
	// polynomial. Nil tables are derived.
	JumpTable     []W
	LongJumpTable []W

	once   sync.Once
	jumper *gf2.Jumper
}

func (e *LinearEngine[W]) jumps() *gf2.Jumper {
	e.once.Do(func() {
		e.jumper = gf2.NewJumper(gf2.MinimalPolynomial(e.Size, e.Step), e.LogPeriod)
	})
	return e.jumper
}

// Degree returns the degree of the characteristic polynomial of the transition.
func (e *LinearEngine[W]) Degree() int {
	return e.jumps().Degree()
}

// PowerOfTwoTable returns the coefficients of x^(2^logDistance) modulo the
// characteristic polynomial, in the layout of the published jump tables.
func (e *LinearEngine[W]) PowerOfTwoTable(logDistance int) []W {
	return gf2.Words[W](e.jumps().Power(logDistance), e.Size*wordSize[W]()*8)
}

// advance moves s forward by 2^logDistance steps.
func (e *LinearEngine[W]) advance(s []W, logDistance int) {
	switch {
	case logDistance == e.JumpLog && e.JumpTable != nil:
		gf2.ApplyTable(e.JumpTable, s, e.Step)
	case logDistance == e.LongJumpLog && e.LongJumpTable != nil:
		gf2.ApplyTable(e.LongJumpTable, s, e.Step)
	default:
		gf2.Apply(e.jumps().Power(logDistance), s, e.Step)
	}
}

// LinearAlgorithm couples an engine with an output scrambler.
type LinearAlgorithm[W Word] struct {
	Name   string
	Engine *LinearEngine[W]
	// Output computes the output word from the state before it is stepped.
	Output func(s []W) W
}

// Linear is a generator driven by a LinearAlgorithm. It supports jump,
// long jump and arbitrary jumps through the engine's polynomials.
type Linear[W Word] struct {
	Provider[W]
	alg *LinearAlgorithm[W]
	s   []W
}

// NewLinear returns a generator seeded with seed, expanded to the state size.
func NewLinear[W Word](alg *LinearAlgorithm[W], seed []W) *Linear[W] {
	g := &Linear[W]{alg: alg, s: ExpandSeed(seed, alg.Engine.Size)}
	g.Init(alg.Name, g)
	return g
}

// Next returns the next output word.
func (g *Linear[W]) Next() W {
	r := g.alg.Output(g.s)
	g.alg.Engine.Step(g.s)
	return r
}

// StateWords returns a copy of the state.
func (g *Linear[W]) StateWords() []W {
	return slices.Clone(g.s)
}

// SetStateWords replaces the state.
func (g *Linear[W]) SetStateWords(s []W) {
	copy(g.s, s)
}

func (g *Linear[W]) clone() *Linear[W] {
	c := &Linear[W]{alg: g.alg, s: slices.Clone(g.s)}
	c.Init(g.alg.Name, c)
	return c
}

// Jump returns a copy and advances the generator by 2^JumpLog steps.
func (g *Linear[W]) Jump() Generator {
	c := g.clone()
	g.alg.Engine.advance(g.s, g.alg.Engine.JumpLog)
	g.ResetCache()
	return c
}

// LongJump returns a copy and advances the generator by 2^LongJumpLog steps.
func (g *Linear[W]) LongJump() Jumpable {
	c := g.clone()
	g.alg.Engine.advance(g.s, g.alg.Engine.LongJumpLog)
	g.ResetCache()
	return c
}

// JumpDistance returns a copy and advances the generator by floor(distance) steps.
func (g *Linear[W]) JumpDistance(distance float64) (ArbitrarilyJumpable, error) {
	e := g.alg.Engine
	if err := ValidateDistance(distance, e.LogPeriod); err != nil {
		return nil, err
	}
	c := g.clone()
	if distance >= 1 {
		d := IntegerWords[uint64](distance, (e.LogPeriod+63)/64)
		gf2.Apply(e.jumps().Distance(d), g.s, e.Step)
	}
	g.ResetCache()
	return c, nil
}

// JumpPowerOfTwo returns a copy and advances the generator by 2^logDistance
// steps. A negative logDistance leaves the state unchanged.
func (g *Linear[W]) JumpPowerOfTwo(logDistance int) (ArbitrarilyJumpable, error) {
	e := g.alg.Engine
	if err := ValidatePowerOfTwo(logDistance, e.LogPeriod); err != nil {
		return nil, err
	}
	c := g.clone()
	if logDistance >= 0 {
		e.advance(g.s, logDistance)
	}
	g.ResetCache()
	return c, nil
}
