package gf2

// Modulus performs arithmetic in GF(2)[x]/p(x).
type Modulus struct {
	p   Poly
	deg int
	n   int // words in a reduced polynomial
}

// NewModulus returns arithmetic modulo p. The degree of p must be at least 1.
func NewModulus(p Poly) *Modulus {
	deg := p.Degree()
	if deg < 1 {
		panic("gf2: modulus must have degree >= 1")
	}
	return &Modulus{p: p.Clone(), deg: deg, n: (deg + 63) / 64}
}

// Degree returns the degree of the modulus.
func (m *Modulus) Degree() int {
	return m.deg
}

// Poly returns a copy of the modulus polynomial.
func (m *Modulus) Poly() Poly {
	return m.p.Clone()
}

// Reduce returns a mod p. The argument is not modified.
func (m *Modulus) Reduce(a Poly) Poly {
	w := a.Clone()
	for i := w.Degree(); i >= m.deg; i-- {
		if w.Bit(i) {
			xorShifted(w, m.p, i-m.deg)
		}
	}
	r := make(Poly, m.n)
	copy(r, w)
	return r
}

// Mul returns a·b mod p.
func (m *Modulus) Mul(a, b Poly) Poly {
	prod := make(Poly, len(a)+len(b)+1)
	for i, n := 0, a.Degree(); i <= n; i++ {
		if a.Bit(i) {
			xorShifted(prod, b, i)
		}
	}
	return m.Reduce(prod)
}

// Square returns a² mod p. Squaring over GF(2) interleaves the coefficients with zeros.
func (m *Modulus) Square(a Poly) Poly {
	sq := make(Poly, 2*len(a))
	for i, w := range a {
		sq[2*i] = spread(uint32(w))
		sq[2*i+1] = spread(uint32(w >> 32))
	}
	return m.Reduce(sq)
}
