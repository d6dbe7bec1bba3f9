// Package bits provides the 32-bit word operations used by the Mersenne Twister.
// Every operation works on fixed-width integers so wraparound at 2^32 (or 2^31
// for signed values) is exact.
package bits

const (
	hiMask  = 0x80000000
	loMask  = 0x00000001
	loBitsM = 0x7fffffff
)

// ToUint32 truncates x to its low 32 bits and interprets them as unsigned.
func ToUint32(x int64) uint32 {
	return uint32(x)
}

// ToInt32 truncates x to its low 32 bits and interprets them as two's-complement.
func ToInt32(x int64) int32 {
	return int32(x)
}

// HiBit masks all but the highest bit of u.
func HiBit(u uint32) uint32 {
	return u & hiMask
}

// LoBit masks all but the lowest bit of u.
func LoBit(u uint32) uint32 {
	return u & loMask
}

// LoBits clears the highest bit of u.
func LoBits(u uint32) uint32 {
	return u & loBitsM
}

// MixBits returns bit 31 of u spliced onto bits 0-30 of v.
func MixBits(u, v uint32) uint32 {
	return HiBit(u) | LoBits(v)
}

// Mask returns all ones when b is 1 and zero when b is 0.
// This is the -(int32)b idiom the twist uses to apply its magic constant.
func Mask(b uint32) uint32 {
	return uint32(-ToInt32(int64(b)))
}

// IsPowerOfTwo reports whether x has exactly one bit set.
func IsPowerOfTwo(x uint32) bool {
	return x != 0 && x&(x-1) == 0
}
