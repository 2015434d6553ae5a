package source32

import (
	"math/bits"

	"github.com/nozzle/rng"
)

const (
	philoxM0 = 0xD2511F53
	philoxM1 = 0xCD9E8D57
	philoxW0 = 0x9E3779B9
	philoxW1 = 0xBB67AE85

	philoxBlock     = 4
	philoxLogPeriod = 130
)

// Philox4x32 is the counter-based Philox-4x32-10 generator. A 128-bit
// counter is encrypted under a 64-bit key into blocks of four outputs.
type Philox4x32 struct {
	rng.Provider[uint32]
	key     [2]uint32
	counter [4]uint32
	buf     [philoxBlock]uint32
	pos     int
}

// NewPhilox4x32 returns a generator seeded with the key (two words) and the
// counter (four words). Missing words are zero.
func NewPhilox4x32(seed ...uint32) *Philox4x32 {
	var s [6]uint32
	copy(s[:], seed)
	g := &Philox4x32{
		key:     [2]uint32{s[0], s[1]},
		counter: [4]uint32{s[2], s[3], s[4], s[5]},
		pos:     philoxBlock,
	}
	g.Init("PHILOX_4X32", g)
	return g
}

func (g *Philox4x32) Next() uint32 {
	if p := g.pos; p < philoxBlock {
		g.pos = p + 1
		return g.buf[p]
	}
	g.incrementCounter()
	g.rand10()
	g.pos = 1
	return g.buf[0]
}

func (g *Philox4x32) incrementCounter() {
	for i := range g.counter {
		g.counter[i]++
		if g.counter[i] != 0 {
			return
		}
	}
}

func (g *Philox4x32) rand10() {
	b := g.counter
	k0, k1 := g.key[0], g.key[1]
	for range 10 {
		hi0, lo0 := bits.Mul32(philoxM0, b[0])
		hi1, lo1 := bits.Mul32(philoxM1, b[2])
		b = [4]uint32{hi1 ^ b[1] ^ k0, lo1, hi0 ^ b[3] ^ k1, lo0}
		k0 += philoxW0
		k1 += philoxW1
	}
	g.buf = b
}

// StateWords returns the key, the counter and the block position.
func (g *Philox4x32) StateWords() []uint32 {
	return []uint32{
		g.key[0], g.key[1],
		g.counter[0], g.counter[1], g.counter[2], g.counter[3],
		uint32(g.pos),
	}
}

func (g *Philox4x32) SetStateWords(s []uint32) {
	g.key = [2]uint32{s[0], s[1]}
	g.counter = [4]uint32{s[2], s[3], s[4], s[5]}
	g.pos = int(min(s[6], philoxBlock))
	g.rand10()
}

func (g *Philox4x32) clone() *Philox4x32 {
	c := *g
	c.Bind(&c)
	return &c
}

func (g *Philox4x32) finishJump() {
	g.ResetCache()
	if g.pos < philoxBlock {
		g.rand10()
	}
}

// Jump returns a copy and advances the generator by 2^66 outputs.
func (g *Philox4x32) Jump() rng.Generator {
	c := g.clone()
	g.counter[2]++
	if g.counter[2] == 0 {
		g.counter[3]++
	}
	g.finishJump()
	return c
}

// LongJump returns a copy and advances the generator by 2^98 outputs.
func (g *Philox4x32) LongJump() rng.Jumpable {
	c := g.clone()
	g.counter[3]++
	g.finishJump()
	return c
}

// JumpDistance returns a copy and advances the generator by floor(distance)
// outputs, for 0 <= distance < 2^130.
func (g *Philox4x32) JumpDistance(distance float64) (rng.ArbitrarilyJumpable, error) {
	if err := rng.ValidateDistance(distance, philoxLogPeriod); err != nil {
		return nil, err
	}
	d := rng.IntegerWords[uint32](distance, 5)
	var inc [4]uint32
	for i := range inc {
		inc[i] = d[i]>>2 | d[i+1]<<30
	}
	return g.jump(int(d[0]&3), inc), nil
}

// JumpPowerOfTwo returns a copy and advances the generator by
// 2^logDistance outputs. A negative logDistance is a zero jump.
func (g *Philox4x32) JumpPowerOfTwo(logDistance int) (rng.ArbitrarilyJumpable, error) {
	if err := rng.ValidatePowerOfTwo(logDistance, philoxLogPeriod); err != nil {
		return nil, err
	}
	skip := 0
	var inc [4]uint32
	switch {
	case logDistance < 0:
	case logDistance <= 1:
		skip = 1 << logDistance
	default:
		n := logDistance - 2
		inc[n>>5] = 1 << (n & 31)
	}
	return g.jump(skip, inc), nil
}

func (g *Philox4x32) jump(skip int, inc [4]uint32) *Philox4x32 {
	c := g.clone()
	g.pos += skip
	if g.pos > philoxBlock {
		g.pos -= philoxBlock
		g.incrementCounter()
	}
	var carry uint32
	for i := range g.counter {
		g.counter[i], carry = bits.Add32(g.counter[i], inc[i], carry)
	}
	g.finishJump()
	return c
}
