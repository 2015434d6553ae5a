package rng

import (
	"math"

	"golang.org/x/xerrors"
)

// ValidateDistance checks that 0 <= distance < 2^logPeriod. NaN and
// infinities are rejected.
func ValidateDistance(distance float64, logPeriod int) error {
	if !(distance >= 0 && distance < math.Ldexp(1, logPeriod)) {
		return xerrors.Errorf("invalid jump distance %v (period 2^%d): %w", distance, logPeriod, ErrInvalidArgument)
	}
	return nil
}

// ValidatePowerOfTwo checks that 2^logDistance is below 2^logPeriod.
func ValidatePowerOfTwo(logDistance, logPeriod int) error {
	if logDistance >= logPeriod {
		return xerrors.Errorf("invalid jump distance 2^%d (period 2^%d): %w", logDistance, logPeriod, ErrInvalidArgument)
	}
	return nil
}

// IntegerWords writes floor(distance) into n little-endian words. The
// distance must be finite and non-negative; bits beyond n words are dropped.
func IntegerWords[W Word](distance float64, n int) []W {
	u := make([]uint64, (n*wordSize[W]()+7)/8)
	if distance < 1 || len(u) == 0 {
		return make([]W, n)
	}
	if distance < 0x1p63 {
		u[0] = uint64(distance)
	} else {
		// distance = mant * 2^shift with a 53-bit integer mantissa.
		frac, exp := math.Frexp(distance)
		mant := uint64(frac * 0x1p53)
		shift := exp - 53
		off, bs := shift/64, uint(shift%64)
		if off < len(u) {
			u[off] = mant << bs
		}
		if bs > 11 && off+1 < len(u) {
			u[off+1] = mant >> (64 - bs)
		}
	}
	out := make([]W, n)
	for i := range out {
		if wide[W]() {
			out[i] = W(u[i])
		} else {
			out[i] = W(u[i/2] >> (32 * uint(i%2)))
		}
	}
	return out
}
