package source64

import (
	"math/bits"

	"github.com/nozzle/rng"
)

// SFC64 is Chris Doty-Humphrey's Small Fast Chaotic generator.
type SFC64 struct {
	rng.Provider[uint64]
	a, b, c, counter uint64
}

// NewSFC64 returns a generator seeded with three words. The counter starts
// at one and 18 outputs are discarded.
func NewSFC64(seed ...uint64) *SFC64 {
	s := rng.ExpandSeed(seed, 3)
	g := &SFC64{a: s[0], b: s[1], c: s[2], counter: 1}
	for range 18 {
		g.Next()
	}
	g.Init("SFC_64", g)
	return g
}

func (g *SFC64) Next() uint64 {
	tmp := g.a + g.b + g.counter
	g.counter++
	g.a = g.b ^ g.b>>11
	g.b = g.c + g.c<<3
	g.c = bits.RotateLeft64(g.c, 24) + tmp
	return tmp
}

func (g *SFC64) StateWords() []uint64 { return []uint64{g.a, g.b, g.c, g.counter} }

func (g *SFC64) SetStateWords(s []uint64) {
	g.a, g.b, g.c, g.counter = s[0], s[1], s[2], s[3]
}
