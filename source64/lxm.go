package source64

import (
	"math/bits"

	"github.com/nozzle/rng"
)

// LCG constants of the LXM family. The long jump pairs (m64p, c64p) and
// (m128ph, c128ph) advance the LCG by 2^32 and 2^64 steps.
const (
	m64    = 0xd1342543de82ef95
	m64p   = 0x8d23804c00000001
	c64p   = 0x16691c9700000000
	m128l  = 0xd605bbb58c8abbfd
	m128ph = 0x31f179f5224754f4
	c128ph = 0x61139b28883277c3
)

// lea64 is Doug Lea's 64-bit mixer.
func lea64(x uint64) uint64 {
	x = (x ^ x>>32) * 0xdaba0b6eb09322e3
	x = (x ^ x>>32) * 0xdaba0b6eb09322e3
	return x ^ x>>32
}

// nonZeroXBG fills an all-zero xor-based state from lea64 of a golden-ratio
// sequence starting at z.
func nonZeroXBG(x []uint64, z uint64) {
	for _, v := range x {
		if v != 0 {
			return
		}
	}
	for i := range x {
		x[i] = lea64(z)
		z += rng.GoldenRatio64
	}
}

// L64X128Mix combines a 64-bit LCG with xoroshiro128 through the lea64
// mixer. Jumps move the LCG only: Jump advances it one step and LongJump
// 2^32 steps, which places the copies on distinct LCG sub-sequences.
type L64X128Mix struct {
	rng.Provider[uint64]
	la, ls uint64
	x0, x1 uint64
}

// NewL64X128Mix returns a generator seeded with the LCG increment, the LCG
// state and the two xoroshiro words, in that order. The increment is made
// odd. Short seeds are expanded.
func NewL64X128Mix(seed ...uint64) *L64X128Mix {
	g := &L64X128Mix{}
	g.SetStateWords(rng.ExpandSeed(seed, 4))
	g.Init("L64_X128_MIX", g)
	return g
}

func (g *L64X128Mix) Next() uint64 {
	s0 := g.x0
	z := lea64(g.ls + s0)
	g.ls = m64*g.ls + g.la
	s1 := g.x1 ^ s0
	g.x0 = bits.RotateLeft64(s0, 24) ^ s1 ^ s1<<16
	g.x1 = bits.RotateLeft64(s1, 37)
	return z
}

func (g *L64X128Mix) StateWords() []uint64 { return []uint64{g.la, g.ls, g.x0, g.x1} }

func (g *L64X128Mix) SetStateWords(s []uint64) {
	g.la, g.ls, g.x0, g.x1 = s[0]|1, s[1], s[2], s[3]
}

func (g *L64X128Mix) clone() *L64X128Mix {
	c := *g
	c.Bind(&c)
	return &c
}

// Jump returns a copy and advances the LCG by one step.
func (g *L64X128Mix) Jump() rng.Generator {
	c := g.clone()
	g.ls = m64*g.ls + g.la
	g.ResetCache()
	return c
}

// LongJump returns a copy and advances the LCG by 2^32 steps.
func (g *L64X128Mix) LongJump() rng.Jumpable {
	c := g.clone()
	g.ls = m64p*g.ls + c64p*g.la
	g.ResetCache()
	return c
}

// Split returns a new generator seeded from source.
func (g *L64X128Mix) Split(source rng.Generator) (rng.Splittable, error) {
	if source == nil {
		return nil, rng.ErrNilSource
	}
	return createL64X128Mix(source.Uint64(), source), nil
}

// Splits returns a stream of count generators seeded from source. Each
// element gets a distinct LCG increment.
func (g *L64X128Mix) Splits(count int64, source rng.Splittable) (*rng.Stream[rng.Splittable], error) {
	return rng.GenerateWithSeed[rng.Splittable](count, source, createL64X128Mix)
}

func createL64X128Mix(seed uint64, source rng.Generator) rng.Splittable {
	s := []uint64{seed << 1, source.Uint64(), source.Uint64(), source.Uint64()}
	nonZeroXBG(s[2:], s[1])
	return NewL64X128Mix(s...)
}

// L128X256Mix combines a 128-bit LCG with xoshiro256 through the lea64
// mixer. Jump advances the LCG one step and LongJump 2^64 steps.
type L128X256Mix struct {
	rng.Provider[uint64]
	lah, lal, lsh, lsl uint64
	x                  [4]uint64
}

// NewL128X256Mix returns a generator seeded with the high and low LCG
// increment, the high and low LCG state and the four xoshiro words. The
// increment is made odd. Short seeds are expanded.
func NewL128X256Mix(seed ...uint64) *L128X256Mix {
	g := &L128X256Mix{}
	g.SetStateWords(rng.ExpandSeed(seed, 8))
	g.Init("L128_X256_MIX", g)
	return g
}

// lcg advances the 128-bit LCG one step. The multiplier is 2^64 + m128l.
func (g *L128X256Mix) lcg() {
	sh, sl := g.lsh, g.lsl
	hi, u := bits.Mul64(m128l, sl)
	lsl, carry := bits.Add64(u, g.lal, 0)
	g.lsh = m128l*sh + hi + sl + g.lah + carry
	g.lsl = lsl
}

func (g *L128X256Mix) Next() uint64 {
	x := &g.x
	z := lea64(g.lsh + x[0])
	g.lcg()
	t := x[1] << 17
	x[2] ^= x[0]
	x[3] ^= x[1]
	x[1] ^= x[2]
	x[0] ^= x[3]
	x[2] ^= t
	x[3] = bits.RotateLeft64(x[3], 45)
	return z
}

func (g *L128X256Mix) StateWords() []uint64 {
	return []uint64{g.lah, g.lal, g.lsh, g.lsl, g.x[0], g.x[1], g.x[2], g.x[3]}
}

func (g *L128X256Mix) SetStateWords(s []uint64) {
	g.lah, g.lal, g.lsh, g.lsl = s[0], s[1]|1, s[2], s[3]
	copy(g.x[:], s[4:])
}

func (g *L128X256Mix) clone() *L128X256Mix {
	c := *g
	c.Bind(&c)
	return &c
}

// Jump returns a copy and advances the LCG by one step.
func (g *L128X256Mix) Jump() rng.Generator {
	c := g.clone()
	g.lcg()
	g.ResetCache()
	return c
}

// LongJump returns a copy and advances the LCG by 2^64 steps. Only the
// high state word changes.
func (g *L128X256Mix) LongJump() rng.Jumpable {
	c := g.clone()
	g.lsh += m128ph*g.lsl + c128ph*g.lal
	g.ResetCache()
	return c
}

// Split returns a new generator seeded from source.
func (g *L128X256Mix) Split(source rng.Generator) (rng.Splittable, error) {
	if source == nil {
		return nil, rng.ErrNilSource
	}
	return createL128X256Mix(source.Uint64(), source), nil
}

// Splits returns a stream of count generators seeded from source.
func (g *L128X256Mix) Splits(count int64, source rng.Splittable) (*rng.Stream[rng.Splittable], error) {
	return rng.GenerateWithSeed[rng.Splittable](count, source, createL128X256Mix)
}

func createL128X256Mix(seed uint64, source rng.Generator) rng.Splittable {
	s := make([]uint64, 8)
	s[0] = source.Uint64()
	s[1] = seed << 1
	for i := 2; i < len(s); i++ {
		s[i] = source.Uint64()
	}
	nonZeroXBG(s[4:], s[3])
	return NewL128X256Mix(s...)
}
