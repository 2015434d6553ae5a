package rng

import "sync"

// Locked serializes access to a shared generator. Prefer giving each
// goroutine its own generator through Jump or Split; Locked is for the
// cases where one sequence must be shared.
type Locked struct {
	mu sync.Mutex
	g  Generator
}

// NewLocked wraps g. g must not be used directly afterwards.
func NewLocked(g Generator) *Locked {
	return &Locked{g: g}
}

// Uint32 draws from the wrapped generator under the lock.
func (l *Locked) Uint32() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Uint32()
}

// Uint64 draws from the wrapped generator under the lock.
func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Uint64()
}

// Int32 draws from the wrapped generator under the lock.
func (l *Locked) Int32() int32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Int32()
}

// Int64 draws from the wrapped generator under the lock.
func (l *Locked) Int64() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Int64()
}

// Int32N returns a value in [0, n).
func (l *Locked) Int32N(n int32) (int32, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Int32N(n)
}

// Int64N returns a value in [0, n).
func (l *Locked) Int64N(n int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Int64N(n)
}

// Int32Range returns a value in [origin, bound).
func (l *Locked) Int32Range(origin, bound int32) (int32, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Int32Range(origin, bound)
}

// Int64Range returns a value in [origin, bound).
func (l *Locked) Int64Range(origin, bound int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Int64Range(origin, bound)
}

// Bool draws one bit.
func (l *Locked) Bool() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Bool()
}

// Float32 returns a value in [0, 1).
func (l *Locked) Float32() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Float32()
}

// Float64 returns a value in [0, 1).
func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Float64()
}

// Float64N returns a value in [0, bound).
func (l *Locked) Float64N(bound float64) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Float64N(bound)
}

// Float64Range returns a value in [origin, bound).
func (l *Locked) Float64Range(origin, bound float64) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Float64Range(origin, bound)
}

// Bytes fills buf.
func (l *Locked) Bytes(buf []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.g.Bytes(buf)
}

// BytesRange fills buf[offset:offset+length].
func (l *Locked) BytesRange(buf []byte, offset, length int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.BytesRange(buf, offset, length)
}

// Do runs fn with exclusive access to the wrapped generator.
func (l *Locked) Do(fn func(g Generator)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.g)
}
