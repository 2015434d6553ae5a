// Package randomsource creates generators by name. It converts seeds of
// any supported type to the native seed of the algorithm and self-seeds
// from the operating system when no seed is given.
//
// Basic usage:
//
//	g, err := randomsource.Create("XO_SHI_RO_256_PP", uint64(42))
//	cfg := randomsource.DefaultConfig()
//	g, err = randomsource.New(cfg)
package randomsource

import (
	"slices"

	"golang.org/x/xerrors"

	"github.com/nozzle/rng"
	"github.com/nozzle/rng/source32"
	"github.com/nozzle/rng/source64"
)

// ErrUnknownAlgorithm is returned for names missing from the registry.
var ErrUnknownAlgorithm = xerrors.Errorf("unknown algorithm: %w", rng.ErrInvalidArgument)

// SeedType is the native seed representation of an algorithm.
type SeedType int

const (
	// SeedUint64 is a single 64-bit word.
	SeedUint64 SeedType = iota
	// SeedUint32s is an array of 32-bit words.
	SeedUint32s
	// SeedUint64s is an array of 64-bit words.
	SeedUint64s
)

func (t SeedType) String() string {
	switch t {
	case SeedUint64:
		return "uint64"
	case SeedUint32s:
		return "[]uint32"
	case SeedUint64s:
		return "[]uint64"
	}
	return "unknown"
}

// wordBytes returns the size in bytes of one seed word.
func (t SeedType) wordBytes() int {
	if t == SeedUint32s {
		return 4
	}
	return 8
}

// Capability flags what a generator supports beyond rng.Generator.
type Capability uint8

const (
	Restorable Capability = 1 << iota
	Jumpable
	LongJumpable
	ArbitrarilyJumpable
	Splittable
)

// Has reports whether all flags in c are set.
func (c Capability) Has(f Capability) bool {
	return c&f == f
}

const (
	linearCaps = Restorable | Jumpable | LongJumpable | ArbitrarilyJumpable
	lxmCaps    = Restorable | Jumpable | LongJumpable | Splittable
)

// Descriptor describes one registered algorithm.
type Descriptor struct {
	// Name is the canonical name, also used as rng.State.Algorithm.
	Name string
	// WordBits is the width of the words the generator produces.
	WordBits int
	// Seed and SeedSize give the native seed type and its length in words.
	Seed     SeedType
	SeedSize int
	// Capabilities lists the optional interfaces the generator implements.
	Capabilities Capability

	build func(seed any) rng.Generator
}

func words64[G rng.Generator](f func(...uint64) G) func(any) rng.Generator {
	return func(seed any) rng.Generator { return f(seed.([]uint64)...) }
}

func words32[G rng.Generator](f func(...uint32) G) func(any) rng.Generator {
	return func(seed any) rng.Generator { return f(seed.([]uint32)...) }
}

var descriptors = []Descriptor{
	{"SPLIT_MIX_64", 64, SeedUint64, 1, Restorable,
		func(seed any) rng.Generator { return source64.NewSplitMix64(seed.(uint64)) }},
	{"XO_RO_SHI_RO_128_PLUS", 64, SeedUint64s, 2, linearCaps, words64(source64.NewXoRoShiRo128Plus)},
	{"XO_RO_SHI_RO_128_SS", 64, SeedUint64s, 2, linearCaps, words64(source64.NewXoRoShiRo128StarStar)},
	{"XO_RO_SHI_RO_128_PP", 64, SeedUint64s, 2, linearCaps, words64(source64.NewXoRoShiRo128PlusPlus)},
	{"XO_SHI_RO_256_PLUS", 64, SeedUint64s, 4, linearCaps, words64(source64.NewXoShiRo256Plus)},
	{"XO_SHI_RO_256_SS", 64, SeedUint64s, 4, linearCaps, words64(source64.NewXoShiRo256StarStar)},
	{"XO_SHI_RO_256_PP", 64, SeedUint64s, 4, linearCaps, words64(source64.NewXoShiRo256PlusPlus)},
	{"XO_SHI_RO_512_PLUS", 64, SeedUint64s, 8, linearCaps, words64(source64.NewXoShiRo512Plus)},
	{"XO_SHI_RO_512_SS", 64, SeedUint64s, 8, linearCaps, words64(source64.NewXoShiRo512StarStar)},
	{"XO_SHI_RO_512_PP", 64, SeedUint64s, 8, linearCaps, words64(source64.NewXoShiRo512PlusPlus)},
	{"L64_X128_MIX", 64, SeedUint64s, 4, lxmCaps, words64(source64.NewL64X128Mix)},
	{"L128_X256_MIX", 64, SeedUint64s, 8, lxmCaps, words64(source64.NewL128X256Mix)},
	{"PHILOX_4X64", 64, SeedUint64s, 6, linearCaps, words64(source64.NewPhilox4x64)},
	{"PCG_RXS_M_XS_64", 64, SeedUint64s, 2, Restorable, words64(source64.NewPcgRxsMXs64)},
	{"SFC_64", 64, SeedUint64s, 3, Restorable, words64(source64.NewSFC64)},

	{"XO_SHI_RO_128_PLUS", 32, SeedUint32s, 4, linearCaps, words32(source32.NewXoShiRo128Plus)},
	{"XO_SHI_RO_128_SS", 32, SeedUint32s, 4, linearCaps, words32(source32.NewXoShiRo128StarStar)},
	{"XO_SHI_RO_128_PP", 32, SeedUint32s, 4, linearCaps, words32(source32.NewXoShiRo128PlusPlus)},
	{"XO_RO_SHI_RO_64_S", 32, SeedUint32s, 2, linearCaps, words32(source32.NewXoRoShiRo64Star)},
	{"XO_RO_SHI_RO_64_SS", 32, SeedUint32s, 2, linearCaps, words32(source32.NewXoRoShiRo64StarStar)},
	{"PHILOX_4X32", 32, SeedUint32s, 6, linearCaps, words32(source32.NewPhilox4x32)},
	{"L32_X64_MIX", 32, SeedUint32s, 4, lxmCaps, words32(source32.NewL32X64Mix)},
	{"PCG_XSH_RR_32", 32, SeedUint64s, 2, Restorable, words64(source32.NewPcgXshRr32)},
	{"MT", 32, SeedUint32s, 624, Restorable, words32(source32.NewMT19937)},
}

// Registry maps canonical names to descriptors.
var Registry = func() map[string]Descriptor {
	m := make(map[string]Descriptor, len(descriptors))
	for _, d := range descriptors {
		m[d.Name] = d
	}
	return m
}()

// Get returns the descriptor registered under name.
func Get(name string) (Descriptor, bool) {
	d, ok := Registry[name]
	return d, ok
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookup(name string) (Descriptor, error) {
	d, ok := Registry[name]
	if !ok {
		return Descriptor{}, xerrors.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
	return d, nil
}

// Create returns a new generator of the named algorithm. seed may be nil
// for a self-seeded generator, or one of []byte, []uint32, []uint64,
// uint32, uint64, int64 and int; it is converted to the native seed.
func Create(name string, seed any) (rng.Generator, error) {
	d, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return d.Create(seed)
}

// Create returns a new generator seeded with seed, as the package Create.
func (d Descriptor) Create(seed any) (rng.Generator, error) {
	var native any
	var err error
	if seed == nil {
		native, err = d.randomSeed()
	} else {
		native, err = convertSeed(seed, d.Seed, d.SeedSize)
	}
	if err != nil {
		return nil, xerrors.Errorf("seed %s: %w", d.Name, err)
	}
	return d.build(native), nil
}

// Restore creates a generator of the algorithm named in s and restores s
// into it.
func Restore(s rng.State) (rng.Generator, error) {
	d, err := lookup(s.Algorithm)
	if err != nil {
		return nil, err
	}
	g := d.build(zeroSeed(d.Seed, d.SeedSize))
	r, ok := g.(rng.Restorable)
	if !ok {
		return nil, xerrors.Errorf("%s cannot restore state: %w", d.Name, rng.ErrInvalidState)
	}
	if err := r.RestoreState(s); err != nil {
		return nil, err
	}
	return g, nil
}

func zeroSeed(t SeedType, size int) any {
	switch t {
	case SeedUint64:
		return uint64(0)
	case SeedUint32s:
		return make([]uint32, size)
	}
	return make([]uint64, size)
}
