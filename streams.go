package rng

import (
	"iter"
	"math"

	"golang.org/x/xerrors"
)

// Characteristics describe the structure of a Stream.
type Characteristics uint8

const (
	// Sized streams report an exact EstimateSize.
	Sized Characteristics = 1 << iota
	// Subsized streams produce sized children from TrySplit.
	Subsized
	// Immutable streams have a source that cannot be modified by the consumer.
	Immutable
	// Concurrent streams may be consumed from several goroutines. No stream
	// built from a mutating generator has this flag.
	Concurrent
)

// Has reports whether all flags in f are set.
func (c Characteristics) Has(f Characteristics) bool {
	return c&f == f
}

// spliterator is the traversal behind a Stream.
type spliterator[T any] interface {
	advance() (T, bool, error)
	split() spliterator[T]
	size() int64
	flags() Characteristics
}

// Stream is a lazy, possibly unbounded, sequence. A Stream is consumed
// sequentially by one goroutine; streams that support it can hand part of
// their range to another goroutine through TrySplit.
type Stream[T any] struct {
	sp  spliterator[T]
	err error
}

// Next returns the next element. It returns false at the end of the stream
// or after an error, which is then reported by Err.
func (s *Stream[T]) Next() (T, bool) {
	var zero T
	if s.err != nil {
		return zero, false
	}
	v, ok, err := s.sp.advance()
	if err != nil {
		s.err = err
		return zero, false
	}
	return v, ok
}

// Err returns the first error met while producing elements.
func (s *Stream[T]) Err() error {
	return s.err
}

// All returns an iterator over the remaining elements.
func (s *Stream[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the stream into a slice.
func (s *Stream[T]) Collect() ([]T, error) {
	var out []T
	for v := range s.All() {
		out = append(out, v)
	}
	return out, s.err
}

// EstimateSize returns the number of remaining elements, or math.MaxInt64
// for an unbounded stream.
func (s *Stream[T]) EstimateSize() int64 {
	return s.sp.size()
}

// Characteristics returns the stream flags.
func (s *Stream[T]) Characteristics() Characteristics {
	return s.sp.flags()
}

// TrySplit moves a prefix of the remaining elements into a new stream and
// returns it, or returns nil when the stream cannot be split.
func (s *Stream[T]) TrySplit() *Stream[T] {
	c := s.sp.split()
	if c == nil {
		return nil
	}
	return &Stream[T]{sp: c}
}

func validateStreamSize(count int64) error {
	if count < 0 {
		return xerrors.Errorf("invalid stream size %d: %w", count, ErrInvalidArgument)
	}
	return nil
}

// generated repeats a mutating function. It never splits.
type generated[T any] struct {
	next      func() (T, error)
	remaining int64
	bounded   bool
}

func (g *generated[T]) advance() (T, bool, error) {
	var zero T
	if g.bounded {
		if g.remaining <= 0 {
			return zero, false, nil
		}
		g.remaining--
	}
	v, err := g.next()
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func (g *generated[T]) split() spliterator[T] { return nil }

func (g *generated[T]) size() int64 {
	if !g.bounded {
		return math.MaxInt64
	}
	return g.remaining
}

func (g *generated[T]) flags() Characteristics {
	if g.bounded {
		return Sized | Immutable
	}
	return Immutable
}

func generate[T any](count int64, bounded bool, next func() (T, error)) *Stream[T] {
	return &Stream[T]{sp: &generated[T]{next: next, remaining: count, bounded: bounded}}
}

// Jumps returns a stream of count copies of g, each one jump apart. Each
// element is taken with g.Jump as the stream is consumed, so g ends up
// advanced by as many jumps as elements were read.
func Jumps(g Jumpable, count int64) (*Stream[Generator], error) {
	if err := validateStreamSize(count); err != nil {
		return nil, err
	}
	return generate(count, true, func() (Generator, error) { return g.Jump(), nil }), nil
}

// UnboundedJumps is Jumps without a size limit.
func UnboundedJumps(g Jumpable) *Stream[Generator] {
	return generate(0, false, func() (Generator, error) { return g.Jump(), nil })
}

// LongJumps returns a stream of count copies of g, each one long jump apart.
func LongJumps(g LongJumpable, count int64) (*Stream[Jumpable], error) {
	if err := validateStreamSize(count); err != nil {
		return nil, err
	}
	return generate(count, true, func() (Jumpable, error) { return g.LongJump(), nil }), nil
}

// UnboundedLongJumps is LongJumps without a size limit.
func UnboundedLongJumps(g LongJumpable) *Stream[Jumpable] {
	return generate(0, false, func() (Jumpable, error) { return g.LongJump(), nil })
}

// JumpsDistance returns a stream of count copies of g, each distance steps
// apart. A negative or non-finite distance is rejected up front; a distance
// beyond the period of g ends the stream with the error of JumpDistance.
func JumpsDistance(g ArbitrarilyJumpable, count int64, distance float64) (*Stream[ArbitrarilyJumpable], error) {
	if err := validateStreamSize(count); err != nil {
		return nil, err
	}
	if err := validateFiniteDistance(distance); err != nil {
		return nil, err
	}
	return generate(count, true, func() (ArbitrarilyJumpable, error) { return g.JumpDistance(distance) }), nil
}

// UnboundedJumpsDistance is JumpsDistance without a size limit.
func UnboundedJumpsDistance(g ArbitrarilyJumpable, distance float64) (*Stream[ArbitrarilyJumpable], error) {
	if err := validateFiniteDistance(distance); err != nil {
		return nil, err
	}
	return generate(0, false, func() (ArbitrarilyJumpable, error) { return g.JumpDistance(distance) }), nil
}

func validateFiniteDistance(d float64) error {
	if !(d >= 0 && d <= math.MaxFloat64) {
		return xerrors.Errorf("invalid jump distance %v: %w", d, ErrInvalidArgument)
	}
	return nil
}

// providerSplits creates one child of g per element, drawing from source.
type providerSplits struct {
	pos, end int64
	g        Splittable
	source   Splittable
}

func (p *providerSplits) advance() (Splittable, bool, error) {
	if p.pos >= p.end {
		return nil, false, nil
	}
	p.pos++
	c, err := p.g.Split(p.source)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

func (p *providerSplits) split() spliterator[Splittable] {
	start := p.pos
	middle := int64(uint64(start+p.end) >> 1)
	if middle <= start {
		return nil
	}
	src, err := p.source.Split(p.source)
	if err != nil {
		return nil
	}
	p.pos = middle
	return &providerSplits{pos: start, end: middle, g: p.g, source: src}
}

func (p *providerSplits) size() int64 { return p.end - p.pos }

func (p *providerSplits) flags() Characteristics { return Sized | Subsized | Immutable }

// Splits returns a stream of count children of g, each split from source.
// TrySplit hands the prefix a child of source, so the halves draw from
// independent sources.
func Splits(g Splittable, count int64, source Splittable) (*Stream[Splittable], error) {
	if err := validateStreamSize(count); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, ErrNilSource
	}
	return &Stream[Splittable]{sp: &providerSplits{end: count, g: g, source: source}}, nil
}

// UnboundedSplits is Splits with a size of math.MaxInt64.
func UnboundedSplits(g Splittable, source Splittable) (*Stream[Splittable], error) {
	return Splits(g, math.MaxInt64, source)
}

const seedCharBits = 4

// createSeed draws a 64-bit seed whose lowest 4-bit character is unique
// among the 16 characters of the seed. Combined with a position this keeps
// the seeds of all stream elements distinct.
func createSeed(g Generator) uint64 {
	bits := g.Uint64() | 1
	const n = 1<<seedCharBits - 1
	unique := bits & n
	for i := seedCharBits; i < 64; i += seedCharBits {
		c := bits >> uint(i) & n
		if c == unique {
			// Uniform in [0, 14] from the top of a 32-bit draw.
			c = n * uint64(g.Uint32()) >> 32
			c = (unique + c + 1) & n
			bits = bits&^(n<<uint(i)) | c<<uint(i)
		}
	}
	return bits
}

// SeedFactory builds one stream element from a seed and a source of
// randomness.
type SeedFactory[T any] func(seed uint64, source Generator) T

type seededSplits[T any] struct {
	pos, end int64
	seed     uint64
	source   Splittable
	factory  SeedFactory[T]
}

func (p *seededSplits[T]) advance() (T, bool, error) {
	var zero T
	pos := p.pos
	if pos >= p.end {
		return zero, false, nil
	}
	p.pos = pos + 1
	v := p.factory(p.seed|uint64(pos), p.source)
	// Shift the seed by one character once the position overlaps it.
	if uint64(p.pos)&p.seed != 0 {
		p.seed <<= seedCharBits
	}
	return v, true, nil
}

func (p *seededSplits[T]) split() spliterator[T] {
	start := p.pos
	middle := int64(uint64(start+p.end) >> 1)
	if middle <= start {
		return nil
	}
	src, err := p.source.Split(p.source)
	if err != nil {
		return nil
	}
	// The child keeps the seed since its positions do not overlap ours.
	c := &seededSplits[T]{pos: start, end: middle, seed: p.seed, source: src, factory: p.factory}
	p.pos = middle
	for p.seed != 0 && p.seed&-p.seed <= uint64(middle) {
		p.seed <<= seedCharBits
	}
	return c
}

func (p *seededSplits[T]) size() int64 { return p.end - p.pos }

func (p *seededSplits[T]) flags() Characteristics { return Sized | Subsized | Immutable }

// GenerateWithSeed returns a stream of count elements built by factory. Each
// element receives a distinct seed made of a random prefix drawn once from
// source and the element position.
func GenerateWithSeed[T any](count int64, source Splittable, factory SeedFactory[T]) (*Stream[T], error) {
	if err := validateStreamSize(count); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, ErrNilSource
	}
	if factory == nil {
		return nil, xerrors.Errorf("nil factory: %w", ErrInvalidArgument)
	}
	sp := &seededSplits[T]{end: count, seed: createSeed(source), source: source, factory: factory}
	return &Stream[T]{sp: sp}, nil
}
