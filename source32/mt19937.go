package source32

import "github.com/nozzle/rng"

const (
	mtN        = 624
	mtM        = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000
)

// MT19937 is the Mersenne Twister. The state is 624 words and the
// position in the current block.
type MT19937 struct {
	rng.Provider[uint32]
	mt  [mtN]uint32
	mti int
}

// NewMT19937 returns a Mersenne Twister seeded from a key array with the
// reference init_by_array routine. An empty key is expanded to one word.
func NewMT19937(key ...uint32) *MT19937 {
	mt := &MT19937{}
	mt.SeedKeys(key)
	mt.Init("MT", mt)
	return mt
}

// Seed initializes the generator from a single word with init_genrand.
// This matches numpy.random.RandomState(seed).
func (mt *MT19937) Seed(seed uint32) {
	mt.mt[0] = seed
	for i := 1; i < mtN; i++ {
		mt.mt[i] = 1812433253*(mt.mt[i-1]^(mt.mt[i-1]>>30)) + uint32(i)
	}
	mt.mti = mtN
	mt.ResetCache()
}

// SeedKeys initializes the generator from a key array with init_by_array.
func (mt *MT19937) SeedKeys(key []uint32) {
	if len(key) == 0 {
		key = rng.ExpandSeed(key, 1)
	}
	mt.Seed(19650218)
	i, j := 1, 0
	for k := max(mtN, len(key)); k > 0; k-- {
		mt.mt[i] = (mt.mt[i] ^ (mt.mt[i-1]^(mt.mt[i-1]>>30))*1664525) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			mt.mt[0] = mt.mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k := mtN - 1; k > 0; k-- {
		mt.mt[i] = (mt.mt[i] ^ (mt.mt[i-1]^(mt.mt[i-1]>>30))*1566083941) - uint32(i)
		i++
		if i >= mtN {
			mt.mt[0] = mt.mt[mtN-1]
			i = 1
		}
	}
	mt.mt[0] = upperMask
}

// Next returns the next tempered word.
func (mt *MT19937) Next() uint32 {
	var y uint32
	mag01 := [2]uint32{0, matrixA}

	if mt.mti >= mtN {
		// Generate N words at a time
		var kk int
		for kk = 0; kk < mtN-mtM; kk++ {
			y = (mt.mt[kk] & upperMask) | (mt.mt[kk+1] & lowerMask)
			mt.mt[kk] = mt.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
		}
		for ; kk < mtN-1; kk++ {
			y = (mt.mt[kk] & upperMask) | (mt.mt[kk+1] & lowerMask)
			mt.mt[kk] = mt.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&1]
		}
		y = (mt.mt[mtN-1] & upperMask) | (mt.mt[0] & lowerMask)
		mt.mt[mtN-1] = mt.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
		mt.mti = 0
	}

	y = mt.mt[mt.mti]
	mt.mti++

	// Tempering
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// StateWords returns the 624 state words followed by the block position.
func (mt *MT19937) StateWords() []uint32 {
	s := make([]uint32, mtN+1)
	copy(s, mt.mt[:])
	s[mtN] = uint32(mt.mti)
	return s
}

func (mt *MT19937) SetStateWords(s []uint32) {
	copy(mt.mt[:], s)
	mt.mti = int(min(s[mtN], mtN))
}
