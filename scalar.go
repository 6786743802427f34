package gm

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is implemented by float32 and float64 and by every type derived from them,
// including the angle types of this package.
type Float interface {
	constraints.Float
}

// SignedNumber is implemented by all numbers that can be negative.
type SignedNumber interface {
	constraints.Signed | constraints.Float
}

const (
	Pi  = math.Pi
	Tau = 2 * math.Pi
)

// Clamp limits x to the range [lo, hi].
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}

	if x > hi {
		return hi
	}

	return x
}

// Min returns a if a is less than b, b otherwise.
// Unlike the builtin min, a NaN in a yields b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Max returns a if a is greater than b, b otherwise.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func Sign[T SignedNumber](x T) T {
	switch {
	case x == 0:
		return 0
	case x < 0:
		return -1
	default:
		return 1
	}
}

func Abs[T SignedNumber](x T) T {
	if x < 0 {
		return -x
	}

	// also turns -0 into +0
	return x + 0
}

func Floor[S Float](x S) S {
	return S(math.Floor(float64(x)))
}

func Ceil[S Float](x S) S {
	return S(math.Ceil(float64(x)))
}

// Round rounds half away from zero.
func Round[S Float](x S) S {
	if x >= 0 {
		return Floor(x + 0.5)
	}

	return -Floor(-x + 0.5)
}

// FastFtoi converts x to the nearest integer, ties go to the even neighbour.
func FastFtoi[S Float](x S) int {
	b := int(math.RoundToEven(float64(x)))
	return b
}

func IsNaN[S Float](x S) bool {
	return math.IsNaN(float64(x))
}

func IsInf[S Float](x S) bool {
	return math.IsInf(float64(x), 0)
}

func IsFinite[S Float](x S) bool {
	return !IsNaN(x) && !IsInf(x)
}

// Linear2Db converts a linear amplitude to decibels.
func Linear2Db[S Float](linear S) S {
	return S(math.Log(float64(linear))) * 8.6858896380650365530225783783321
}

// Db2Linear converts decibels to a linear amplitude.
func Db2Linear[S Float](db S) S {
	return S(math.Exp(float64(db * 0.11512925464970228420089957273422)))
}
