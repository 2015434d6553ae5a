package gf2

import "math/bits"

// BerlekampMassey returns the minimal polynomial of the first n bits of the
// linear recurring sequence s. The result is monic, oriented so that
// p(T) = 0 for the transition T that produced the sequence.
func BerlekampMassey(s Poly, n int) Poly {
	c := One(n + 2) // connection polynomial
	b := One(n + 2)
	l, m := 0, 1
	for k := 0; k < n; k++ {
		d := s.Bit(k)
		for i := 1; i <= l; i++ {
			if c.Bit(i) && s.Bit(k-i) {
				d = !d
			}
		}
		switch {
		case !d:
			m++
		case 2*l <= k:
			t := c.Clone()
			xorShifted(c, b, m)
			l = k + 1 - l
			b = t
			m = 1
		default:
			xorShifted(c, b, m)
			m++
		}
	}
	// Reverse the connection polynomial over degree l.
	p := New(l + 1)
	for i := 0; i <= l; i++ {
		if c.Bit(i) {
			p.Set(l - i)
		}
	}
	return p
}

// MinimalPolynomial derives the characteristic polynomial of an F2-linear
// transition over size words. The bit sequence is read from the lowest bit
// of the first state word starting from the unit state.
func MinimalPolynomial[W ~uint32 | ~uint64](size int, step func(s []W)) Poly {
	var z W
	wordBits := 64
	if uint64(^z) == 1<<32-1 {
		wordBits = 32
	}
	n := 2 * size * wordBits
	s := make([]W, size)
	s[0] = 1
	seq := New(n)
	for i := 0; i < n; i++ {
		if s[0]&1 == 1 {
			seq.Set(i)
		}
		step(s)
	}
	return BerlekampMassey(seq, n)
}

// Jumper holds x^(2^k) mod p(x) for k in [0, logPeriod). It is immutable
// once built and safe for concurrent use.
type Jumper struct {
	mod    *Modulus
	powers []Poly
}

// NewJumper tabulates the power-of-two jump polynomials modulo p.
func NewJumper(p Poly, logPeriod int) *Jumper {
	mod := NewModulus(p)
	x := New(mod.deg)
	if mod.deg > 1 {
		x.Set(1)
	} else {
		x = mod.Reduce(Poly{2})
	}
	powers := make([]Poly, logPeriod)
	if logPeriod > 0 {
		powers[0] = x
	}
	for k := 1; k < logPeriod; k++ {
		powers[k] = mod.Square(powers[k-1])
	}
	return &Jumper{mod: mod, powers: powers}
}

// Degree returns the degree of the characteristic polynomial.
func (j *Jumper) Degree() int {
	return j.mod.deg
}

// LogPeriod returns the number of tabulated powers.
func (j *Jumper) LogPeriod() int {
	return len(j.powers)
}

// Modulus returns the characteristic polynomial.
func (j *Jumper) Modulus() Poly {
	return j.mod.Poly()
}

// Power returns x^(2^k) mod p. The result must not be modified.
func (j *Jumper) Power(k int) Poly {
	return j.powers[k]
}

// Distance returns x^D mod p where D is the unsigned integer held in the
// little-endian words d. Bits at or above LogPeriod are ignored.
func (j *Jumper) Distance(d []uint64) Poly {
	q := One(j.mod.deg)
	for i, w := range d {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			w &= w - 1
			k := i*64 + b
			if k >= len(j.powers) {
				return q
			}
			q = j.mod.Mul(q, j.powers[k])
		}
	}
	return q
}

// Apply replaces the state s with q(T)·s where step applies T in place.
func Apply[W ~uint32 | ~uint64](q Poly, s []W, step func(s []W)) {
	acc := make([]W, len(s))
	for i, n := 0, q.Degree(); i <= n; i++ {
		if q.Bit(i) {
			for k := range s {
				acc[k] ^= s[k]
			}
		}
		step(s)
	}
	copy(s, acc)
}

// ApplyTable applies a published jump table, given as little-endian
// coefficient words, in the same way as Apply.
func ApplyTable[W ~uint32 | ~uint64](t []W, s []W, step func(s []W)) {
	Apply(FromWords(t), s, step)
}
