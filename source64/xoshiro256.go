package source64

import (
	"math/bits"

	"github.com/nozzle/rng"
)

var xoshiro256 = &rng.LinearEngine[uint64]{
	Size:      4,
	LogPeriod: 256,
	Step: func(s []uint64) {
		t := s[1] << 17
		s[2] ^= s[0]
		s[3] ^= s[1]
		s[1] ^= s[2]
		s[0] ^= s[3]
		s[2] ^= t
		s[3] = bits.RotateLeft64(s[3], 45)
	},
	JumpLog:       128,
	LongJumpLog:   192,
	JumpTable:     []uint64{0x180ec6d33cfd0aba, 0xd5a61266f0c9392c, 0xa9582618e03fc9aa, 0x39abdc4529b1661c},
	LongJumpTable: []uint64{0x76e15d3efefdcbbf, 0xc5004e441c522fb3, 0x77710069854ee241, 0x39109bb02acbe635},
}

var (
	xoshiro256Plus = &rng.LinearAlgorithm[uint64]{
		Name:   "XO_SHI_RO_256_PLUS",
		Engine: xoshiro256,
		Output: func(s []uint64) uint64 { return s[0] + s[3] },
	}
	xoshiro256StarStar = &rng.LinearAlgorithm[uint64]{
		Name:   "XO_SHI_RO_256_SS",
		Engine: xoshiro256,
		Output: func(s []uint64) uint64 { return bits.RotateLeft64(s[1]*5, 7) * 9 },
	}
	xoshiro256PlusPlus = &rng.LinearAlgorithm[uint64]{
		Name:   "XO_SHI_RO_256_PP",
		Engine: xoshiro256,
		Output: func(s []uint64) uint64 { return bits.RotateLeft64(s[0]+s[3], 23) + s[0] },
	}
)

// NewXoShiRo256Plus returns a xoshiro256+ generator. Seeds shorter than
// four words are expanded.
func NewXoShiRo256Plus(seed ...uint64) *rng.Linear[uint64] {
	return rng.NewLinear(xoshiro256Plus, seed)
}

// NewXoShiRo256StarStar returns a xoshiro256** generator.
func NewXoShiRo256StarStar(seed ...uint64) *rng.Linear[uint64] {
	return rng.NewLinear(xoshiro256StarStar, seed)
}

// NewXoShiRo256PlusPlus returns a xoshiro256++ generator.
func NewXoShiRo256PlusPlus(seed ...uint64) *rng.Linear[uint64] {
	return rng.NewLinear(xoshiro256PlusPlus, seed)
}
