package randomsource

import (
	"encoding/binary"

	"golang.org/x/xerrors"

	"github.com/nozzle/rng"
)

// convertSeed turns a user seed into the native seed of type t. Array seeds
// keep their own length; the generator expands short ones. Scalars are
// expanded to size words here.
func convertSeed(seed any, t SeedType, size int) (any, error) {
	switch s := seed.(type) {
	case uint64:
		return fromUint64(s, t, size), nil
	case int64:
		return fromUint64(uint64(s), t, size), nil
	case int:
		return fromUint64(uint64(s), t, size), nil
	case uint32:
		return fromUint64(uint32ToUint64(s), t, size), nil
	case []uint32:
		return fromUint32s(s, t), nil
	case []uint64:
		return fromUint64s(s, t), nil
	case []byte:
		return fromBytes(s, t), nil
	}
	return nil, xerrors.Errorf("unsupported seed type %T: %w", seed, rng.ErrInvalidArgument)
}

// uint32ToUint64 mixes a sign-extended 32-bit seed with one SplitMix64 step.
func uint32ToUint64(x uint32) uint64 {
	return rng.Mix64(uint64(int64(int32(x))) + rng.GoldenRatio64)
}

func fromUint64(x uint64, t SeedType, size int) any {
	switch t {
	case SeedUint64:
		return x
	case SeedUint64s:
		out := make([]uint64, size)
		for i := range out {
			x += rng.GoldenRatio64
			out[i] = rng.Mix64(x)
		}
		return out
	}
	// Two 32-bit words per SplitMix64 output, low half first. The one input
	// whose first output would be the mixer's fixed zero is complemented.
	v := x
	if v == 1<<64-rng.GoldenRatio64 {
		v = ^v
	}
	out := make([]uint32, size)
	for i := 0; i < size; i += 2 {
		v += rng.GoldenRatio64
		w := rng.Mix64(v)
		out[i] = uint32(w)
		if i+1 < size {
			out[i+1] = uint32(w >> 32)
		}
	}
	return out
}

func fromUint32s(s []uint32, t SeedType) any {
	switch t {
	case SeedUint32s:
		return s
	case SeedUint64:
		var x uint32
		for _, w := range s {
			x ^= w
		}
		return uint32ToUint64(x)
	}
	out := make([]uint64, (len(s)+1)/2)
	for i, w := range s {
		out[i/2] |= uint64(w) << (32 * uint(i%2))
	}
	return out
}

func fromUint64s(s []uint64, t SeedType) any {
	switch t {
	case SeedUint64s:
		return s
	case SeedUint64:
		var x uint64
		for _, w := range s {
			x ^= w
		}
		return x
	}
	out := make([]uint32, 2*len(s))
	for i := range out {
		out[i] = uint32(s[i/2] >> (32 * uint(i%2)))
	}
	return out
}

func fromBytes(b []byte, t SeedType) any {
	if t == SeedUint32s {
		out := make([]uint32, (len(b)+3)/4)
		for i := range out {
			out[i] = binary.LittleEndian.Uint32(padded(b[4*i:], 4))
		}
		return out
	}
	words := make([]uint64, (len(b)+7)/8)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(padded(b[8*i:], 8))
	}
	if t == SeedUint64 {
		return fromUint64s(words, t)
	}
	return words
}

// padded returns the first n bytes of b, zero-extended when b is shorter.
func padded(b []byte, n int) []byte {
	if len(b) >= n {
		return b[:n]
	}
	p := make([]byte, n)
	copy(p, b)
	return p
}
