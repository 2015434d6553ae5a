// Package gf2 implements polynomial arithmetic over GF(2).
//
// It is used to jump F2-linear generators (xorshift, xoshiro, xoroshiro) by an arbitrary
// number of steps: the characteristic polynomial p(x) of the state transition is recovered
// with Berlekamp-Massey, the jump polynomial x^D mod p(x) is built from a table of
// repeated squares, and the result is applied to a state with Apply.
package gf2

import "math/bits"

// Poly is a polynomial over GF(2). Bit i%64 of word i/64 is the coefficient of x^i.
type Poly []uint64

// New returns the zero polynomial with room for n coefficients.
func New(n int) Poly {
	return make(Poly, (n+63)/64)
}

// One returns the constant polynomial 1 with room for n coefficients.
func One(n int) Poly {
	p := New(max(n, 1))
	p[0] = 1
	return p
}

// Bit reports whether the coefficient of x^i is set.
func (p Poly) Bit(i int) bool {
	w := i >> 6
	if w >= len(p) {
		return false
	}
	return p[w]>>(uint(i)&63)&1 == 1
}

// Set sets the coefficient of x^i.
func (p Poly) Set(i int) {
	p[i>>6] |= 1 << (uint(i) & 63)
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i*64 + 63 - bits.LeadingZeros64(p[i])
		}
	}
	return -1
}

// Clone returns a copy of p.
func (p Poly) Clone() Poly {
	c := make(Poly, len(p))
	copy(c, p)
	return c
}

// Equal reports whether p and q have the same coefficients.
func (p Poly) Equal(q Poly) bool {
	n := max(len(p), len(q))
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(p) {
			a = p[i]
		}
		if i < len(q) {
			b = q[i]
		}
		if a != b {
			return false
		}
	}
	return true
}

// xorShifted adds src·x^shift into dst. Terms beyond the length of dst are dropped.
func xorShifted(dst, src Poly, shift int) {
	ws := shift >> 6
	bs := uint(shift) & 63
	for j, w := range src {
		if w == 0 {
			continue
		}
		k := j + ws
		if k >= len(dst) {
			return
		}
		dst[k] ^= w << bs
		if bs != 0 && k+1 < len(dst) {
			dst[k+1] ^= w >> (64 - bs)
		}
	}
}

// spread interleaves the bits of x with zeros: bit i moves to bit 2i.
func spread(x uint32) uint64 {
	v := uint64(x)
	v = (v | v<<16) & 0x0000ffff0000ffff
	v = (v | v<<8) & 0x00ff00ff00ff00ff
	v = (v | v<<4) & 0x0f0f0f0f0f0f0f0f
	v = (v | v<<2) & 0x3333333333333333
	v = (v | v<<1) & 0x5555555555555555
	return v
}

// FromWords packs a little-endian table of 32 or 64-bit words into a polynomial.
func FromWords[W ~uint32 | ~uint64](t []W) Poly {
	var z W
	if uint64(^z) == 1<<32-1 {
		p := New(len(t) * 32)
		for i, w := range t {
			p[i>>1] |= uint64(w) << (32 * uint(i&1))
		}
		return p
	}
	p := make(Poly, len(t))
	for i, w := range t {
		p[i] = uint64(w)
	}
	return p
}

// Words unpacks the first n coefficients of p into a little-endian table of words.
func Words[W ~uint32 | ~uint64](p Poly, n int) []W {
	var z W
	if uint64(^z) == 1<<32-1 {
		t := make([]W, (n+31)/32)
		for i := range t {
			if i>>1 < len(p) {
				t[i] = W(p[i>>1] >> (32 * uint(i&1)))
			}
		}
		return t
	}
	t := make([]W, (n+63)/64)
	for i := range t {
		if i < len(p) {
			t[i] = W(p[i])
		}
	}
	return t
}
