package source64

import (
	"math/bits"

	"github.com/nozzle/rng"
)

const (
	philoxM0 = 0xD2E7470EE14C6C93
	philoxM1 = 0xCA5A826395121157
	philoxW0 = 0x9E3779B97F4A7C15
	philoxW1 = 0xBB67AE8584CAA73B

	philoxBlock     = 4
	philoxLogPeriod = 258
)

// Philox4x64 is the counter-based Philox-4x64-10 generator. Each 256-bit
// counter value is encrypted under a 128-bit key into a block of four
// outputs, so the period is 2^258 and jumps are counter additions.
type Philox4x64 struct {
	rng.Provider[uint64]
	key     [2]uint64
	counter [4]uint64
	buf     [philoxBlock]uint64
	// pos is the next block index; philoxBlock means the block is used up.
	pos int
}

// NewPhilox4x64 returns a generator seeded with the key (two words) and the
// counter (four words). Missing words are zero.
func NewPhilox4x64(seed ...uint64) *Philox4x64 {
	var s [6]uint64
	copy(s[:], seed)
	g := &Philox4x64{
		key:     [2]uint64{s[0], s[1]},
		counter: [4]uint64{s[2], s[3], s[4], s[5]},
		pos:     philoxBlock,
	}
	g.Init("PHILOX_4X64", g)
	return g
}

func (g *Philox4x64) Next() uint64 {
	if p := g.pos; p < philoxBlock {
		g.pos = p + 1
		return g.buf[p]
	}
	g.incrementCounter()
	g.rand10()
	g.pos = 1
	return g.buf[0]
}

func (g *Philox4x64) incrementCounter() {
	for i := range g.counter {
		g.counter[i]++
		if g.counter[i] != 0 {
			return
		}
	}
}

func (g *Philox4x64) rand10() {
	b := g.counter
	k0, k1 := g.key[0], g.key[1]
	for range 10 {
		hi0, lo0 := bits.Mul64(philoxM0, b[0])
		hi1, lo1 := bits.Mul64(philoxM1, b[2])
		b = [4]uint64{hi1 ^ b[1] ^ k0, lo1, hi0 ^ b[3] ^ k1, lo0}
		k0 += philoxW0
		k1 += philoxW1
	}
	g.buf = b
}

// StateWords returns the key, the counter and the block position.
func (g *Philox4x64) StateWords() []uint64 {
	return []uint64{
		g.key[0], g.key[1],
		g.counter[0], g.counter[1], g.counter[2], g.counter[3],
		uint64(g.pos),
	}
}

func (g *Philox4x64) SetStateWords(s []uint64) {
	g.key = [2]uint64{s[0], s[1]}
	g.counter = [4]uint64{s[2], s[3], s[4], s[5]}
	g.pos = int(min(s[6], philoxBlock))
	g.rand10()
}

func (g *Philox4x64) clone() *Philox4x64 {
	c := *g
	c.Bind(&c)
	return &c
}

// finishJump regenerates the block when part of it is still to be read.
func (g *Philox4x64) finishJump() {
	g.ResetCache()
	if g.pos < philoxBlock {
		g.rand10()
	}
}

// Jump returns a copy and advances the generator by 2^130 outputs.
func (g *Philox4x64) Jump() rng.Generator {
	c := g.clone()
	g.counter[2]++
	if g.counter[2] == 0 {
		g.counter[3]++
	}
	g.finishJump()
	return c
}

// LongJump returns a copy and advances the generator by 2^194 outputs.
func (g *Philox4x64) LongJump() rng.Jumpable {
	c := g.clone()
	g.counter[3]++
	g.finishJump()
	return c
}

// JumpDistance returns a copy and advances the generator by floor(distance)
// outputs, for 0 <= distance < 2^258.
func (g *Philox4x64) JumpDistance(distance float64) (rng.ArbitrarilyJumpable, error) {
	if err := rng.ValidateDistance(distance, philoxLogPeriod); err != nil {
		return nil, err
	}
	d := rng.IntegerWords[uint64](distance, 5)
	var inc [4]uint64
	for i := range inc {
		inc[i] = d[i]>>2 | d[i+1]<<62
	}
	return g.jump(int(d[0]&3), inc), nil
}

// JumpPowerOfTwo returns a copy and advances the generator by
// 2^logDistance outputs. A negative logDistance is a zero jump.
func (g *Philox4x64) JumpPowerOfTwo(logDistance int) (rng.ArbitrarilyJumpable, error) {
	if err := rng.ValidatePowerOfTwo(logDistance, philoxLogPeriod); err != nil {
		return nil, err
	}
	skip := 0
	var inc [4]uint64
	switch {
	case logDistance < 0:
	case logDistance <= 1:
		skip = 1 << logDistance
	default:
		n := logDistance - 2
		inc[n>>6] = 1 << (n & 63)
	}
	return g.jump(skip, inc), nil
}

// jump moves the block position by skip outputs and the counter by inc blocks.
func (g *Philox4x64) jump(skip int, inc [4]uint64) *Philox4x64 {
	c := g.clone()
	g.pos += skip
	if g.pos > philoxBlock {
		g.pos -= philoxBlock
		g.incrementCounter()
	}
	var carry uint64
	for i := range g.counter {
		g.counter[i], carry = bits.Add64(g.counter[i], inc[i], carry)
	}
	g.finishJump()
	return c
}
