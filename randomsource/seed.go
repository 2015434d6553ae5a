package randomsource

import (
	"crypto/rand"
	"encoding/binary"

	"golang.org/x/xerrors"

	"github.com/nozzle/rng"
)

// maxRandomSeedWords caps self-seeding of very large states; the
// generator expands the rest.
const maxRandomSeedWords = 128

// randomSeed draws a native seed from the operating system. Array seeds
// are never all zero.
func (d Descriptor) randomSeed() (any, error) {
	b, err := d.randomSeedBytes()
	if err != nil {
		return nil, err
	}
	return fromBytes(b, d.Seed), nil
}

func (d Descriptor) randomSeedBytes() ([]byte, error) {
	n := min(d.SeedSize, maxRandomSeedWords) * d.Seed.wordBytes()
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, xerrors.Errorf("read random seed: %w", err)
	}
	if d.Seed != SeedUint64 {
		ensureNonZero(b)
	}
	return b, nil
}

// ensureNonZero replaces an all-zero seed with a fixed non-zero first word.
func ensureNonZero(b []byte) {
	for _, c := range b {
		if c != 0 {
			return
		}
	}
	var w [8]byte
	binary.LittleEndian.PutUint64(w[:], rng.Mix64(rng.GoldenRatio64))
	copy(b, w[:])
}

// CreateSeed returns a random native seed for the named algorithm as
// little-endian bytes. Passing it to Create reproduces the generator.
func CreateSeed(name string) ([]byte, error) {
	d, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return d.randomSeedBytes()
}
