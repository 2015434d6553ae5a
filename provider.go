package rng

import (
	"encoding/binary"
	"math"

	"golang.org/x/xerrors"
)

// Recurrence is the bit-output core of one algorithm.
type Recurrence[W Word] interface {
	// Next advances the state and returns one output word.
	Next() W
	// StateWords returns a copy of the algorithm state.
	StateWords() []W
	// SetStateWords replaces the algorithm state. The length matches StateWords.
	SetStateWords(s []W)
}

// Provider implements Generator on top of a Recurrence. Algorithms embed a
// Provider and bind it to themselves with Init.
//
// The provider owns the cached sub-state used by Bool and, for 64-bit
// recurrences, by Uint32. The cache is serialized after the algorithm
// words and is all zero when empty.
type Provider[W Word] struct {
	src  Recurrence[W]
	name string

	// Unused bits of the last word drawn by Bool, below a marker bit.
	// Values 0 and 1 mean empty.
	bools uint64
	// Spare upper half of the last 64-bit word drawn by Uint32, with bit 32
	// set when present.
	ints uint64
}

func wide[W Word]() bool {
	var z W
	return uint64(^z) > math.MaxUint32
}

func wordSize[W Word]() int {
	if wide[W]() {
		return 8
	}
	return 4
}

func cacheSize[W Word]() int {
	if wide[W]() {
		return 16
	}
	return 4
}

// Init names the algorithm and binds the provider to src.
func (p *Provider[W]) Init(name string, src Recurrence[W]) {
	p.name = name
	p.Bind(src)
}

// Bind attaches the provider to src and clears the cached sub-state. Copies
// of a generator call Bind so they do not drive the original's recurrence.
func (p *Provider[W]) Bind(src Recurrence[W]) {
	p.src = src
	p.ResetCache()
}

// ResetCache empties the cached sub-state.
func (p *Provider[W]) ResetCache() {
	p.bools = 0
	p.ints = 0
}

// Algorithm returns the algorithm name.
func (p *Provider[W]) Algorithm() string {
	return p.name
}

// Uint64 returns a 64-bit value. A 32-bit recurrence supplies the high half first.
func (p *Provider[W]) Uint64() uint64 {
	if wide[W]() {
		return uint64(p.src.Next())
	}
	hi := uint64(p.src.Next())
	return hi<<32 | uint64(p.src.Next())
}

// Uint32 returns a 32-bit value. A 64-bit recurrence supplies the low half
// and keeps the high half for the next call.
func (p *Provider[W]) Uint32() uint32 {
	if !wide[W]() {
		return uint32(p.src.Next())
	}
	if p.ints != 0 {
		v := uint32(p.ints)
		p.ints = 0
		return v
	}
	v := uint64(p.src.Next())
	p.ints = 1<<32 | v>>32
	return uint32(v)
}

// Int32 returns a value over the full int32 range.
func (p *Provider[W]) Int32() int32 {
	return int32(p.Uint32())
}

// Int64 returns a value over the full int64 range.
func (p *Provider[W]) Int64() int64 {
	return int64(p.Uint64())
}

// Bool returns a random boolean, using one word per 64 (or 32) calls.
func (p *Provider[W]) Bool() bool {
	b := p.bools
	if b <= 1 {
		v := uint64(p.src.Next())
		marker := uint64(1) << 31
		if wide[W]() {
			marker = 1 << 63
		}
		p.bools = marker | v>>1
		return v&1 == 1
	}
	p.bools = b >> 1
	return b&1 == 1
}

// Float32 returns a value in [0, 1) with 24 bits of precision.
func (p *Provider[W]) Float32() float32 {
	return float32(p.Uint32()>>8) * 0x1.0p-24
}

// Float64 returns a value in [0, 1) with 53 bits of precision.
func (p *Provider[W]) Float64() float64 {
	if wide[W]() {
		return float64(uint64(p.src.Next())>>11) * 0x1.0p-53
	}
	hi := uint64(p.src.Next()) >> 6
	lo := uint64(p.src.Next()) >> 5
	return float64(hi<<27|lo) * 0x1.0p-53
}

// Int32N returns a value in [0, n).
func (p *Provider[W]) Int32N(n int32) (int32, error) {
	if n <= 0 {
		return 0, xerrors.Errorf("upper bound must be above zero: %d: %w", n, ErrInvalidArgument)
	}
	return p.int32n(uint32(n)), nil
}

// int32n is Lemire's multiply-shift with rejection of the biased low range.
func (p *Provider[W]) int32n(n uint32) int32 {
	m := uint64(p.Uint32()) * uint64(n)
	l := uint32(m)
	if l < n {
		t := -n % n // 2^32 mod n
		for l < t {
			m = uint64(p.Uint32()) * uint64(n)
			l = uint32(m)
		}
	}
	return int32(m >> 32)
}

// Int64N returns a value in [0, n).
func (p *Provider[W]) Int64N(n int64) (int64, error) {
	if n <= 0 {
		return 0, xerrors.Errorf("upper bound must be above zero: %d: %w", n, ErrInvalidArgument)
	}
	return p.int64n(n), nil
}

func (p *Provider[W]) int64n(n int64) int64 {
	if n&(n-1) == 0 {
		return int64(p.Uint64()>>1) & (n - 1)
	}
	for {
		bits := int64(p.Uint64() >> 1)
		val := bits % n
		// Overflow marks a draw from the incomplete last block.
		if bits-val+(n-1) >= 0 {
			return val
		}
	}
}

// Int32Range returns a value in [origin, bound).
func (p *Provider[W]) Int32Range(origin, bound int32) (int32, error) {
	if origin >= bound {
		return 0, xerrors.Errorf("invalid range [%d, %d): %w", origin, bound, ErrInvalidArgument)
	}
	if n := bound - origin; n > 0 {
		return p.int32n(uint32(n)) + origin, nil
	}
	// The range does not fit in a positive int32.
	v := p.Int32()
	for v < origin || v >= bound {
		v = p.Int32()
	}
	return v, nil
}

// Int64Range returns a value in [origin, bound).
func (p *Provider[W]) Int64Range(origin, bound int64) (int64, error) {
	if origin >= bound {
		return 0, xerrors.Errorf("invalid range [%d, %d): %w", origin, bound, ErrInvalidArgument)
	}
	if n := bound - origin; n > 0 {
		return p.int64n(n) + origin, nil
	}
	v := p.Int64()
	for v < origin || v >= bound {
		v = p.Int64()
	}
	return v, nil
}

// Float64N returns a value in [0, bound).
func (p *Provider[W]) Float64N(bound float64) (float64, error) {
	if !(bound > 0 && bound <= math.MaxFloat64) {
		return 0, xerrors.Errorf("upper bound must be above zero: %v: %w", bound, ErrInvalidArgument)
	}
	v := p.Float64() * bound
	if v >= bound {
		v = math.Nextafter(bound, math.Inf(-1))
	}
	return v, nil
}

// Float64Range returns a value in [origin, bound). The width of the range
// may exceed math.MaxFloat64.
func (p *Provider[W]) Float64Range(origin, bound float64) (float64, error) {
	if !(origin < bound) || math.IsInf(origin, 0) || math.IsInf(bound, 0) {
		return 0, xerrors.Errorf("invalid range [%v, %v): %w", origin, bound, ErrInvalidArgument)
	}
	v := p.Float64()
	v = (1-v)*origin + v*bound
	if v >= bound {
		v = math.Nextafter(bound, math.Inf(-1))
	}
	return v, nil
}

// Bytes fills buf with random bytes.
func (p *Provider[W]) Bytes(buf []byte) {
	p.fill(buf)
}

// BytesRange fills buf[offset:offset+length]. An offset equal to len(buf)
// with a zero length is allowed.
func (p *Provider[W]) BytesRange(buf []byte, offset, length int) error {
	if (offset|length) < 0 || length > len(buf)-offset {
		return xerrors.Errorf("range [%d, %d + %d) out of bounds for length %d: %w",
			offset, offset, length, len(buf), ErrOutOfBounds)
	}
	p.fill(buf[offset : offset+length])
	return nil
}

// fill writes whole words little-endian, then the low bytes of one more word.
func (p *Provider[W]) fill(b []byte) {
	size := wordSize[W]()
	i := 0
	for ; i+size <= len(b); i += size {
		v := uint64(p.src.Next())
		if size == 8 {
			binary.LittleEndian.PutUint64(b[i:], v)
		} else {
			binary.LittleEndian.PutUint32(b[i:], uint32(v))
		}
	}
	if i < len(b) {
		v := uint64(p.src.Next())
		for ; i < len(b); i++ {
			b[i] = byte(v)
			v >>= 8
		}
	}
}

// SaveState returns a snapshot of the algorithm words followed by the cache.
func (p *Provider[W]) SaveState() State {
	data := AppendWords(nil, p.src.StateWords())
	if wide[W]() {
		data = binary.LittleEndian.AppendUint64(data, p.bools)
		data = binary.LittleEndian.AppendUint64(data, p.ints)
	} else {
		data = binary.LittleEndian.AppendUint32(data, uint32(p.bools))
	}
	return State{Algorithm: p.name, Data: data}
}

// RestoreState restores a snapshot taken by SaveState on the same algorithm.
func (p *Provider[W]) RestoreState(s State) error {
	if s.Algorithm != p.name {
		return xerrors.Errorf("restore %s from %q: %w", p.name, s.Algorithm, ErrForeignState)
	}
	n := len(p.src.StateWords()) * wordSize[W]()
	if want := n + cacheSize[W](); len(s.Data) != want {
		return xerrors.Errorf("%s state is %d bytes, expected %d: %w", p.name, len(s.Data), want, ErrInvalidState)
	}
	p.src.SetStateWords(DecodeWords[W](s.Data[:n]))
	c := s.Data[n:]
	if wide[W]() {
		p.bools = binary.LittleEndian.Uint64(c)
		p.ints = binary.LittleEndian.Uint64(c[8:])
	} else {
		p.bools = uint64(binary.LittleEndian.Uint32(c))
		p.ints = 0
	}
	return nil
}
