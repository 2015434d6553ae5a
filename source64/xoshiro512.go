package source64

import (
	"math/bits"

	"github.com/nozzle/rng"
)

var xoshiro512 = &rng.LinearEngine[uint64]{
	Size:      8,
	LogPeriod: 512,
	Step: func(s []uint64) {
		t := s[1] << 11
		s[2] ^= s[0]
		s[5] ^= s[1]
		s[1] ^= s[2]
		s[7] ^= s[3]
		s[3] ^= s[4]
		s[4] ^= s[5]
		s[0] ^= s[6]
		s[6] ^= s[7]
		s[6] ^= t
		s[7] = bits.RotateLeft64(s[7], 21)
	},
	JumpLog:     256,
	LongJumpLog: 384,
	JumpTable: []uint64{
		0x33ed89b6e7a353f9, 0x760083d7955323be, 0x2837f2fbb5f22fae, 0x4b8c5674d309511c,
		0xb11ac47a7ba28c25, 0xf1be7667092bcc1c, 0x53851efdb6df0aaf, 0x1ebbc8b23eaf25db,
	},
	LongJumpTable: []uint64{
		0x11467fef8f921d28, 0xa2a819f2e79c8ea8, 0xa8299fc284b3959a, 0xb4d347340ca63ee1,
		0x1cb0940bedbff6ce, 0xd956c5c4fa1f8e17, 0x915e38fd4eda93bc, 0x5b3ccdfa5d7daca5,
	},
}

var (
	xoshiro512Plus = &rng.LinearAlgorithm[uint64]{
		Name:   "XO_SHI_RO_512_PLUS",
		Engine: xoshiro512,
		Output: func(s []uint64) uint64 { return s[0] + s[2] },
	}
	xoshiro512StarStar = &rng.LinearAlgorithm[uint64]{
		Name:   "XO_SHI_RO_512_SS",
		Engine: xoshiro512,
		Output: func(s []uint64) uint64 { return bits.RotateLeft64(s[1]*5, 7) * 9 },
	}
	xoshiro512PlusPlus = &rng.LinearAlgorithm[uint64]{
		Name:   "XO_SHI_RO_512_PP",
		Engine: xoshiro512,
		Output: func(s []uint64) uint64 { return bits.RotateLeft64(s[0]+s[2], 17) + s[2] },
	}
)

// NewXoShiRo512Plus returns a xoshiro512+ generator. Seeds shorter than
// eight words are expanded.
func NewXoShiRo512Plus(seed ...uint64) *rng.Linear[uint64] {
	return rng.NewLinear(xoshiro512Plus, seed)
}

// NewXoShiRo512StarStar returns a xoshiro512** generator.
func NewXoShiRo512StarStar(seed ...uint64) *rng.Linear[uint64] {
	return rng.NewLinear(xoshiro512StarStar, seed)
}

// NewXoShiRo512PlusPlus returns a xoshiro512++ generator.
func NewXoShiRo512PlusPlus(seed ...uint64) *rng.Linear[uint64] {
	return rng.NewLinear(xoshiro512PlusPlus, seed)
}
