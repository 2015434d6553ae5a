package rng

import "golang.org/x/xerrors"

var (
	// ErrInvalidArgument is returned for bounds, ranges, jump distances and
	// stream sizes outside their domain. No state is modified.
	ErrInvalidArgument = xerrors.New("invalid argument")

	// ErrOutOfBounds is returned by BytesRange for an offset/length pair
	// outside the buffer.
	ErrOutOfBounds = xerrors.New("index out of bounds")

	// ErrInvalidState is returned when restoring a snapshot whose size does
	// not match the generator.
	ErrInvalidState = xerrors.New("invalid state")

	// ErrNilSource is returned by Split when no source of randomness is given.
	ErrNilSource = xerrors.Errorf("nil source: %w", ErrInvalidArgument)

	// ErrForeignState is returned when restoring a snapshot taken from a
	// different algorithm.
	ErrForeignState = xerrors.Errorf("foreign instance: %w", ErrInvalidArgument)
)
