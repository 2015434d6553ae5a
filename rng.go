// Package rng provides pseudo-random number generators with reproducible
// jump, long-jump, arbitrary-distance jump and split operations.
//
// Generators are built from a per-algorithm Recurrence that produces one
// 32 or 64-bit word per call. Provider derives every other output (bounded
// integers, floats, booleans, bytes) from those words, so the derived
// sequences are identical across algorithms of the same word width.
//
// Algorithms live in the source32 and source64 packages; randomsource
// creates them by name. Capabilities are opted into through the Jumpable,
// LongJumpable, ArbitrarilyJumpable and Splittable interfaces.
//
// Basic usage:
//
//	g := source64.NewXoShiRo256StarStar(seed...)
//	workers := make([]rng.Generator, 4)
//	for i := range workers {
//		workers[i] = g.Jump()
//	}
//
// A generator is not safe for concurrent use. Give each goroutine its own
// instance through Jump or Split, or wrap a shared one with NewLocked.
package rng

// Word is the output width of a generator.
type Word interface {
	~uint32 | ~uint64
}

// Generator is a uniform source of random values.
type Generator interface {
	Uint32() uint32
	Uint64() uint64
	Int32() int32
	Int64() int64

	// Int32N returns a value in [0, n). n must be positive.
	Int32N(n int32) (int32, error)
	// Int64N returns a value in [0, n). n must be positive.
	Int64N(n int64) (int64, error)
	// Int32Range returns a value in [origin, bound).
	Int32Range(origin, bound int32) (int32, error)
	// Int64Range returns a value in [origin, bound).
	Int64Range(origin, bound int64) (int64, error)

	Bool() bool
	// Float32 returns a value in [0, 1).
	Float32() float32
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Float64N returns a value in [0, bound).
	Float64N(bound float64) (float64, error)
	// Float64Range returns a value in [origin, bound).
	Float64Range(origin, bound float64) (float64, error)

	// Bytes fills buf with random bytes.
	Bytes(buf []byte)
	// BytesRange fills buf[offset:offset+length] with random bytes.
	BytesRange(buf []byte, offset, length int) error
}

// Jumpable generators can advance by a fixed large distance.
type Jumpable interface {
	Generator

	// Jump returns a copy of the generator and then advances the
	// generator by the algorithm's jump distance.
	Jump() Generator
}

// LongJumpable generators support a second, larger fixed jump.
type LongJumpable interface {
	Jumpable

	// LongJump returns a copy of the generator and then advances the
	// generator by the algorithm's long jump distance.
	LongJump() Jumpable
}

// ArbitrarilyJumpable generators can advance by any distance below their period.
type ArbitrarilyJumpable interface {
	Generator

	// JumpDistance returns a copy of the generator and then advances the
	// generator by floor(distance) steps.
	JumpDistance(distance float64) (ArbitrarilyJumpable, error)

	// JumpPowerOfTwo is JumpDistance(2^logDistance). A negative
	// logDistance is a zero jump.
	JumpPowerOfTwo(logDistance int) (ArbitrarilyJumpable, error)
}

// Splittable generators create independent children from an external
// source of randomness.
type Splittable interface {
	Generator

	// Split returns a new generator of the same algorithm seeded from source.
	Split(source Generator) (Splittable, error)
}

// Restorable generators can save and restore their state.
type Restorable interface {
	SaveState() State
	RestoreState(s State) error
}
