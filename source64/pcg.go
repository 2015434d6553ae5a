package source64

import "github.com/nozzle/rng"

// pcgMultiplier is the 64-bit LCG multiplier shared by the PCG family.
const pcgMultiplier = 6364136223846793005

// PcgRxsMXs64 is the PCG generator with a 64-bit LCG and the
// random xorshift, multiply, fixed xorshift output function.
type PcgRxsMXs64 struct {
	rng.Provider[uint64]
	state uint64
	// inc is always odd.
	inc uint64
}

// NewPcgRxsMXs64 returns a generator seeded with the LCG state and stream
// selector. Short seeds are expanded.
func NewPcgRxsMXs64(seed ...uint64) *PcgRxsMXs64 {
	s := rng.ExpandSeed(seed, 2)
	g := &PcgRxsMXs64{inc: s[1]<<1 | 1}
	g.state = g.bump(s[0] + g.inc)
	g.Init("PCG_RXS_M_XS_64", g)
	return g
}

func (g *PcgRxsMXs64) bump(x uint64) uint64 {
	return x*pcgMultiplier + g.inc
}

func (g *PcgRxsMXs64) Next() uint64 {
	x := g.state
	g.state = g.bump(x)
	word := (x>>(x>>59+5) ^ x) * 0xaef17502108ef2d9
	return word>>43 ^ word
}

// StateWords returns the LCG state and the stream selector.
func (g *PcgRxsMXs64) StateWords() []uint64 { return []uint64{g.state, g.inc >> 1} }

func (g *PcgRxsMXs64) SetStateWords(s []uint64) {
	g.state = s[0]
	g.inc = s[1]<<1 | 1
}
