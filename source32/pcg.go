package source32

import (
	"math/bits"

	"github.com/nozzle/rng"
)

const pcgMultiplier = 6364136223846793005

// PcgXshRr32 is the PCG generator with a 64-bit LCG and the xorshift high,
// random rotation output function.
type PcgXshRr32 struct {
	rng.Provider[uint32]
	state uint64
	// inc is always odd.
	inc uint64
}

// NewPcgXshRr32 returns a generator seeded with the LCG state and stream
// selector. Short seeds are expanded.
func NewPcgXshRr32(seed ...uint64) *PcgXshRr32 {
	s := rng.ExpandSeed(seed, 2)
	g := &PcgXshRr32{inc: s[1]<<1 | 1}
	g.state = g.bump(s[0] + g.inc)
	g.Init("PCG_XSH_RR_32", g)
	return g
}

func (g *PcgXshRr32) bump(x uint64) uint64 {
	return x*pcgMultiplier + g.inc
}

func (g *PcgXshRr32) Next() uint32 {
	x := g.state
	g.state = g.bump(x)
	return bits.RotateLeft32(uint32((x^x>>18)>>27), -int(x>>59))
}

// StateWords returns the LCG state and the stream selector, low word first.
func (g *PcgXshRr32) StateWords() []uint32 {
	sel := g.inc >> 1
	return []uint32{uint32(g.state), uint32(g.state >> 32), uint32(sel), uint32(sel >> 32)}
}

func (g *PcgXshRr32) SetStateWords(s []uint32) {
	g.state = uint64(s[1])<<32 | uint64(s[0])
	g.inc = (uint64(s[3])<<32|uint64(s[2]))<<1 | 1
}
