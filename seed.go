package rng

const (
	// GoldenRatio64 is the fractional part of the golden ratio scaled to 64 bits, rounded to odd.
	GoldenRatio64 = 0x9e3779b97f4a7c15
	// GoldenRatio32 is the fractional part of the golden ratio scaled to 32 bits, rounded to odd.
	GoldenRatio32 = 0x9e3779b9
)

// Mix64 is variant 13 of Stafford's 64-bit mixer, the output function of SplitMix64.
func Mix64(x uint64) uint64 {
	x = (x ^ x>>30) * 0xbf58476d1ce4e5b9
	x = (x ^ x>>27) * 0x94d049bb133111eb
	return x ^ x>>31
}

// Mix32 is the 32-bit finalizer of MurmurHash3.
func Mix32(x uint32) uint32 {
	x = (x ^ x>>16) * 0x85ebca6b
	x = (x ^ x>>13) * 0xc2b2ae35
	return x ^ x>>16
}

// ExpandSeed returns a new slice of n words. The first min(len(seed), n)
// words are copied verbatim. Missing words are filled from a SplitMix-style
// sequence started at seed[0] (zero for an empty seed): Mix64 over a
// GoldenRatio64 increment for 64-bit words, Mix32 over GoldenRatio32 for
// 32-bit words.
func ExpandSeed[W Word](seed []W, n int) []W {
	s := make([]W, n)
	copy(s, seed)
	if len(seed) >= n {
		return s
	}
	if wide[W]() {
		x := uint64(s[0])
		for i := len(seed); i < n; i++ {
			x += GoldenRatio64
			s[i] = W(Mix64(x))
		}
		return s
	}
	x := uint32(s[0])
	for i := len(seed); i < n; i++ {
		x += GoldenRatio32
		s[i] = W(Mix32(x))
	}
	return s
}
