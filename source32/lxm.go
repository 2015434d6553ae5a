package source32

import (
	"math/bits"

	"github.com/nozzle/rng"
)

const (
	m32  = 0xadb4a92d
	m32p = 0x65640001
	c32p = 0x046b0000
)

// lea32 is Doug Lea's 32-bit mixer.
func lea32(x uint32) uint32 {
	x = (x ^ x>>16) * 0xd36d884b
	x = (x ^ x>>16) * 0xd36d884b
	return x ^ x>>16
}

// L32X64Mix combines a 32-bit LCG with xoroshiro64 through the lea32
// mixer. Jump advances the LCG one step and LongJump 2^16 steps.
type L32X64Mix struct {
	rng.Provider[uint32]
	la, ls uint32
	x0, x1 uint32
}

// NewL32X64Mix returns a generator seeded with the LCG increment, the LCG
// state and the two xoroshiro words. The increment is made odd. Short
// seeds are expanded.
func NewL32X64Mix(seed ...uint32) *L32X64Mix {
	g := &L32X64Mix{}
	g.SetStateWords(rng.ExpandSeed(seed, 4))
	g.Init("L32_X64_MIX", g)
	return g
}

func (g *L32X64Mix) Next() uint32 {
	s0 := g.x0
	z := lea32(g.ls + s0)
	g.ls = m32*g.ls + g.la
	s1 := g.x1 ^ s0
	g.x0 = bits.RotateLeft32(s0, 26) ^ s1 ^ s1<<9
	g.x1 = bits.RotateLeft32(s1, 13)
	return z
}

func (g *L32X64Mix) StateWords() []uint32 { return []uint32{g.la, g.ls, g.x0, g.x1} }

func (g *L32X64Mix) SetStateWords(s []uint32) {
	g.la, g.ls, g.x0, g.x1 = s[0]|1, s[1], s[2], s[3]
}

func (g *L32X64Mix) clone() *L32X64Mix {
	c := *g
	c.Bind(&c)
	return &c
}

// Jump returns a copy and advances the LCG by one step.
func (g *L32X64Mix) Jump() rng.Generator {
	c := g.clone()
	g.ls = m32*g.ls + g.la
	g.ResetCache()
	return c
}

// LongJump returns a copy and advances the LCG by 2^16 steps.
func (g *L32X64Mix) LongJump() rng.Jumpable {
	c := g.clone()
	g.ls = m32p*g.ls + c32p*g.la
	g.ResetCache()
	return c
}

// Split returns a new generator seeded from source.
func (g *L32X64Mix) Split(source rng.Generator) (rng.Splittable, error) {
	if source == nil {
		return nil, rng.ErrNilSource
	}
	return createL32X64Mix(source.Uint64(), source), nil
}

// Splits returns a stream of count generators seeded from source. The LCG
// increment of each element comes from the low bits of its stream seed.
func (g *L32X64Mix) Splits(count int64, source rng.Splittable) (*rng.Stream[rng.Splittable], error) {
	return rng.GenerateWithSeed[rng.Splittable](count, source, createL32X64Mix)
}

func createL32X64Mix(seed uint64, source rng.Generator) rng.Splittable {
	s := []uint32{uint32(seed << 1), source.Uint32(), source.Uint32(), source.Uint32()}
	if s[2] == 0 && s[3] == 0 {
		z := s[1]
		s[2] = lea32(z)
		s[3] = lea32(z + rng.GoldenRatio32)
	}
	return NewL32X64Mix(s...)
}
