package source64

import "github.com/nozzle/rng"

// SplitMix64 is a Weyl sequence with a golden-ratio increment passed
// through Stafford's variant 13 mixer.
type SplitMix64 struct {
	rng.Provider[uint64]
	state uint64
}

// NewSplitMix64 returns a SplitMix64 generator starting at seed.
func NewSplitMix64(seed uint64) *SplitMix64 {
	g := &SplitMix64{state: seed}
	g.Init("SPLIT_MIX_64", g)
	return g
}

func (g *SplitMix64) Next() uint64 {
	g.state += rng.GoldenRatio64
	return rng.Mix64(g.state)
}

func (g *SplitMix64) StateWords() []uint64 { return []uint64{g.state} }

func (g *SplitMix64) SetStateWords(s []uint64) { g.state = s[0] }
