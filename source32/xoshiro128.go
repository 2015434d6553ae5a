// Package source32 implements generators producing 32-bit words.
//
// Wider outputs are composed from consecutive words by the embedded
// provider: Uint64 takes the first word as the high half.
package source32

import (
	"math/bits"

	"github.com/nozzle/rng"
)

var xoshiro128 = &rng.LinearEngine[uint32]{
	Size:      4,
	LogPeriod: 128,
	Step: func(s []uint32) {
		t := s[1] << 9
		s[2] ^= s[0]
		s[3] ^= s[1]
		s[1] ^= s[2]
		s[0] ^= s[3]
		s[2] ^= t
		s[3] = bits.RotateLeft32(s[3], 11)
	},
	JumpLog:       64,
	LongJumpLog:   96,
	JumpTable:     []uint32{0x8764000b, 0xf542d2d3, 0x6fa035c3, 0x77f2db5b},
	LongJumpTable: []uint32{0xb523952e, 0x0b6f099f, 0xccf5a0ef, 0x1c580662},
}

var (
	xoshiro128Plus = &rng.LinearAlgorithm[uint32]{
		Name:   "XO_SHI_RO_128_PLUS",
		Engine: xoshiro128,
		Output: func(s []uint32) uint32 { return s[0] + s[3] },
	}
	// The ** scrambler reads the first word, as in the reference test data.
	xoshiro128StarStar = &rng.LinearAlgorithm[uint32]{
		Name:   "XO_SHI_RO_128_SS",
		Engine: xoshiro128,
		Output: func(s []uint32) uint32 { return bits.RotateLeft32(s[0]*5, 7) * 9 },
	}
	xoshiro128PlusPlus = &rng.LinearAlgorithm[uint32]{
		Name:   "XO_SHI_RO_128_PP",
		Engine: xoshiro128,
		Output: func(s []uint32) uint32 { return bits.RotateLeft32(s[0]+s[3], 7) + s[0] },
	}
)

// NewXoShiRo128Plus returns a xoshiro128+ generator. Seeds shorter than
// four words are expanded.
func NewXoShiRo128Plus(seed ...uint32) *rng.Linear[uint32] {
	return rng.NewLinear(xoshiro128Plus, seed)
}

// NewXoShiRo128StarStar returns a xoshiro128** generator.
func NewXoShiRo128StarStar(seed ...uint32) *rng.Linear[uint32] {
	return rng.NewLinear(xoshiro128StarStar, seed)
}

// NewXoShiRo128PlusPlus returns a xoshiro128++ generator.
func NewXoShiRo128PlusPlus(seed ...uint32) *rng.Linear[uint32] {
	return rng.NewLinear(xoshiro128PlusPlus, seed)
}
