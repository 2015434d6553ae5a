package source32

import (
	"math/bits"

	"github.com/nozzle/rng"
)

// xoroshiro64 has no published jump polynomials; both fixed jumps are
// derived from the characteristic polynomial on first use.
var xoroshiro64 = &rng.LinearEngine[uint32]{
	Size:      2,
	LogPeriod: 64,
	Step: func(s []uint32) {
		s0, s1 := s[0], s[1]^s[0]
		s[0] = bits.RotateLeft32(s0, 26) ^ s1 ^ s1<<9
		s[1] = bits.RotateLeft32(s1, 13)
	},
	JumpLog:     32,
	LongJumpLog: 48,
}

const xoroshiro64Multiplier = 0x9e3779bb

var (
	xoroshiro64Star = &rng.LinearAlgorithm[uint32]{
		Name:   "XO_RO_SHI_RO_64_S",
		Engine: xoroshiro64,
		Output: func(s []uint32) uint32 { return s[0] * xoroshiro64Multiplier },
	}
	xoroshiro64StarStar = &rng.LinearAlgorithm[uint32]{
		Name:   "XO_RO_SHI_RO_64_SS",
		Engine: xoroshiro64,
		Output: func(s []uint32) uint32 { return bits.RotateLeft32(s[0]*xoroshiro64Multiplier, 5) * 5 },
	}
)

// NewXoRoShiRo64Star returns a xoroshiro64* generator. Seeds shorter than
// two words are expanded.
func NewXoRoShiRo64Star(seed ...uint32) *rng.Linear[uint32] {
	return rng.NewLinear(xoroshiro64Star, seed)
}

// NewXoRoShiRo64StarStar returns a xoroshiro64** generator.
func NewXoRoShiRo64StarStar(seed ...uint32) *rng.Linear[uint32] {
	return rng.NewLinear(xoroshiro64StarStar, seed)
}
