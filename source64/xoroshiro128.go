// Package source64 implements generators producing 64-bit words.
//
// The xoshiro and xoroshiro families share an F2-linear engine per state
// size and differ in their output scrambler. Their fixed jumps use the
// published jump polynomials; arbitrary jumps are derived from the
// engine's characteristic polynomial.
package source64

import (
	"math/bits"

	"github.com/nozzle/rng"
)

// xoroshiro128 is the (24, 16, 37) engine of XoRoShiRo128Plus and
// XoRoShiRo128StarStar.
var xoroshiro128 = &rng.LinearEngine[uint64]{
	Size:      2,
	LogPeriod: 128,
	Step: func(s []uint64) {
		s0, s1 := s[0], s[1]^s[0]
		s[0] = bits.RotateLeft64(s0, 24) ^ s1 ^ s1<<16
		s[1] = bits.RotateLeft64(s1, 37)
	},
	JumpLog:       64,
	LongJumpLog:   96,
	JumpTable:     []uint64{0xdf900294d8f554a5, 0x170865df4b3201fc},
	LongJumpTable: []uint64{0xd2a98b26625eee7b, 0xdddf9b1090aa7ac1},
}

// xoroshiro128pp uses the (49, 21, 28) parameters, so it has its own jump tables.
var xoroshiro128pp = &rng.LinearEngine[uint64]{
	Size:      2,
	LogPeriod: 128,
	Step: func(s []uint64) {
		s0, s1 := s[0], s[1]^s[0]
		s[0] = bits.RotateLeft64(s0, 49) ^ s1 ^ s1<<21
		s[1] = bits.RotateLeft64(s1, 28)
	},
	JumpLog:       64,
	LongJumpLog:   96,
	JumpTable:     []uint64{0x2bd7a6a6e99c2ddc, 0x0992ccaf6a6fca05},
	LongJumpTable: []uint64{0x360fd5f2cf8d5d99, 0x9c6e6877736c46e3},
}

var (
	xoroshiro128Plus = &rng.LinearAlgorithm[uint64]{
		Name:   "XO_RO_SHI_RO_128_PLUS",
		Engine: xoroshiro128,
		Output: func(s []uint64) uint64 { return s[0] + s[1] },
	}
	xoroshiro128StarStar = &rng.LinearAlgorithm[uint64]{
		Name:   "XO_RO_SHI_RO_128_SS",
		Engine: xoroshiro128,
		Output: func(s []uint64) uint64 { return bits.RotateLeft64(s[0]*5, 7) * 9 },
	}
	xoroshiro128PlusPlus = &rng.LinearAlgorithm[uint64]{
		Name:   "XO_RO_SHI_RO_128_PP",
		Engine: xoroshiro128pp,
		Output: func(s []uint64) uint64 { return bits.RotateLeft64(s[0]+s[1], 17) + s[0] },
	}
)

// NewXoRoShiRo128Plus returns a xoroshiro128+ generator. Seeds shorter than
// two words are expanded.
func NewXoRoShiRo128Plus(seed ...uint64) *rng.Linear[uint64] {
	return rng.NewLinear(xoroshiro128Plus, seed)
}

// NewXoRoShiRo128StarStar returns a xoroshiro128** generator.
func NewXoRoShiRo128StarStar(seed ...uint64) *rng.Linear[uint64] {
	return rng.NewLinear(xoroshiro128StarStar, seed)
}

// NewXoRoShiRo128PlusPlus returns a xoroshiro128++ generator.
func NewXoRoShiRo128PlusPlus(seed ...uint64) *rng.Linear[uint64] {
	return rng.NewLinear(xoroshiro128PlusPlus, seed)
}
