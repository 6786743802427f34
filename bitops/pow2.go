package bitops

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// NotFound is returned by ShiftFromPowerOf2 if the value is not a power of two.
const NotFound = -1

// NextPowerOf2 returns the smallest power of two that is greater or equal to x.
// NextPowerOf2(0) is 0, and so is the result for x above 1<<31, which has no
// next power in 32 bits.
func NextPowerOf2(x uint32) uint32 {
	if x == 0 {
		return 0
	}

	x--
	x = spread(x)
	x++

	return x
}

// PreviousPowerOf2 returns the largest power of two that is less or equal to x.
// PreviousPowerOf2(0) is 0.
func PreviousPowerOf2(x uint32) uint32 {
	x = spread(x)
	return x - (x >> 1)
}

// ClosestPowerOf2 returns the power of two nearest to x. If x is exactly
// between two powers of two, the smaller one is returned.
func ClosestPowerOf2(x uint32) uint32 {
	nx := NextPowerOf2(x)
	px := PreviousPowerOf2(x)

	if nx == 0 {
		// the next power does not fit, only happens for x > 1<<31
		return px
	}

	if nx-x < x-px {
		return nx
	}

	return px
}

// ShiftFromPowerOf2 returns the exponent k with bits == 1<<k, or NotFound.
func ShiftFromPowerOf2(bits uint32) int {
	for i := 0; i < 32; i++ {
		if bits == 1<<i {
			return i
		}
	}

	return NotFound
}

// NearestPowerOf2 rounds x up to the next power of two. It works for unsigned
// integers of any width.
func NearestPowerOf2[T constraints.Unsigned](x T) T {
	x--

	// the number of shift rounds is the log2 of the bit width
	// of T, which is three more than the log2 of its byte size
	rounds := ShiftFromPowerOf2(uint32(unsafe.Sizeof(x))) + 3
	for i := 0; i < rounds; i++ {
		x |= x >> (uint(1) << i)
	}

	x++
	return x
}

// NearestShift returns the position of the highest set bit plus one, which is
// the number of bits needed to represent n. Only bits 0 to 30 are considered.
func NearestShift(n uint32) uint32 {
	for i := 30; i >= 0; i-- {
		if n&(1<<i) != 0 {
			return uint32(i + 1)
		}
	}

	return 0
}

// NumBits returns the number of bits needed to represent x, e.g. 4 for 8.
// To find the number of bits needed for x distinct values, pass x-1.
func NumBits[T constraints.Unsigned](x T) T {
	if x < 2 {
		return x
	}

	return 1 + NumBits(x>>1)
}

// spread copies the highest set bit into all lower bits.
func spread(x uint32) uint32 {
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	return x
}
