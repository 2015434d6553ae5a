package rng

import (
	"encoding/binary"

	"golang.org/x/xerrors"
)

// State is an opaque snapshot of a generator.
type State struct {
	// Algorithm names the generator that produced the snapshot.
	Algorithm string
	// Data holds the little-endian algorithm words followed by the cached
	// sub-state (4 bytes for 32-bit generators, 16 bytes for 64-bit ones).
	Data []byte
}

// MarshalBinary encodes the snapshot as a length-prefixed name followed by the data.
func (s State) MarshalBinary() ([]byte, error) {
	b := binary.AppendUvarint(nil, uint64(len(s.Algorithm)))
	b = append(b, s.Algorithm...)
	return append(b, s.Data...), nil
}

// UnmarshalBinary decodes a snapshot written by MarshalBinary.
func (s *State) UnmarshalBinary(b []byte) error {
	n, k := binary.Uvarint(b)
	if k <= 0 || n > uint64(len(b)-k) {
		return xerrors.Errorf("truncated state header: %w", ErrInvalidState)
	}
	s.Algorithm = string(b[k : k+int(n)])
	s.Data = append([]byte(nil), b[k+int(n):]...)
	return nil
}

// AppendWords appends the little-endian encoding of words to b.
func AppendWords[W Word](b []byte, words []W) []byte {
	for _, w := range words {
		if wide[W]() {
			b = binary.LittleEndian.AppendUint64(b, uint64(w))
		} else {
			b = binary.LittleEndian.AppendUint32(b, uint32(w))
		}
	}
	return b
}

// DecodeWords decodes little-endian words from b. A trailing partial word
// is zero-extended.
func DecodeWords[W Word](b []byte) []W {
	size := wordSize[W]()
	words := make([]W, (len(b)+size-1)/size)
	for i := range words {
		var v uint64
		chunk := b[i*size:]
		for j := min(size, len(chunk)) - 1; j >= 0; j-- {
			v = v<<8 | uint64(chunk[j])
		}
		words[i] = W(v)
	}
	return words
}
