package rand

import (
	"math"

	"github.com/nozzle/mtrand/internal/bits"
)

// MaxRand is the largest value of a 31-bit draw, PHP's mt_getrandmax().
const MaxRand = 0x7FFFFFFF

// MaxSpan is the widest max-min a ranged draw supports.
const MaxSpan = math.MaxUint32

// MaxScaledBound is the largest magnitude a bound may have in PHP mode.
// Past 2^53 a float64 no longer holds every integer and the scaled result
// can land outside [min, max].
const MaxScaledBound = 1 << 53

// ScalableBounds reports whether min and max, with min <= max, convert to
// float64 exactly.
func ScalableBounds(min, max int64) bool {
	return min >= -MaxScaledBound && max <= MaxScaledBound
}

// Range32 returns a uniformly distributed value in [0, umax].
// Values above the largest multiple of umax+1 are discarded and redrawn.
func (mt *Engine) Range32(umax uint32) uint32 {
	result := mt.Uint32()

	// Full width needs no reduction.
	if umax == math.MaxUint32 {
		return result
	}

	umax++

	if bits.IsPowerOfTwo(umax) {
		return result & (umax - 1)
	}

	// Ceiling under which MaxUint32 % umax == 0.
	limit := uint32(math.MaxUint32 - (math.MaxUint32 % umax) - 1)

	for result > limit {
		result = mt.Uint32()
	}

	return result % umax
}

// Range maps draws onto [min, max] with the algorithm of the current mode.
// The caller guarantees min <= max and max-min <= MaxSpan, and in PHP mode
// that ScalableBounds(min, max) holds.
func (mt *Engine) Range(min, max int64) int64 {
	switch mt.mode {
	case MT19937:
		umax := uint32(uint64(max) - uint64(min))
		return min + int64(mt.Range32(umax))
	case PHP:
		n := mt.Uint32() >> 1
		return BadScaling(n, min, max, MaxRand)
	}
	panic("rand: range on unknown mode " + mt.mode.String())
}

// BadScaling is PHP's RAND_RANGE_BADSCALING: it scales n from [0, tmax] onto
// [min, max] through a double. The result is biased and must stay that way.
func BadScaling(n uint32, min, max int64, tmax uint32) int64 {
	return min + int64((float64(max)-float64(min)+1.0)*(float64(n)/(float64(tmax)+1.0)))
}
