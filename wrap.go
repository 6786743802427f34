package gm

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Fmod returns the floating point remainder of x/y. The result has the sign of x.
func Fmod[S Float](x, y S) S {
	// the remainder is exact, so computing it in float64 does not change
	// the result for float32 values
	return S(math.Mod(float64(x), float64(y)))
}

// Fposmod returns the remainder of x/y with the sign of y.
func Fposmod[S Float](x, y S) S {
	value := Fmod(x, y)
	if (value < 0 && y > 0) || (value > 0 && y < 0) {
		value += y
	}

	// no negative zero
	value += 0
	return value
}

// Fposmodp returns the remainder of x/y, shifted by y if it is negative.
func Fposmodp[S Float](x, y S) S {
	value := Fmod(x, y)
	if value < 0 {
		value += y
	}

	value += 0
	return value
}

// Posmod returns the remainder of x/y with the sign of y. A y of zero yields 0.
func Posmod[I constraints.Signed](x, y I) I {
	if y == 0 {
		return 0
	}

	value := x % y
	if (value < 0 && y > 0) || (value > 0 && y < 0) {
		value += y
	}

	return value
}

// Wrapi wraps value into the range [min, max). An empty range yields min.
func Wrapi[I constraints.Signed](value, min, max I) I {
	rng := max - min
	if rng == 0 {
		return min
	}

	return min + ((value-min)%rng+rng)%rng
}

// Wrapf wraps value into the range [min, max). A range that is
// approximately empty yields min.
func Wrapf[S Float](value, min, max S) S {
	rng := max - min
	if IsZeroApprox(rng) {
		return min
	}

	result := value - S(rng*Floor((value-min)/rng))

	// values just below min round up to max
	if rng > 0 && result >= max {
		return min
	}

	return result
}

// AngleWrap wraps an angle into one positive turn, [0°, 360°) for degrees
// and [0, 2π) for radians.
func AngleWrap[A Angle](value A) A {
	switch angle := any(value).(type) {
	case Rad:
		wrapped := Wrapf(angle.Deg(), 0, 360).Rad()
		if wrapped >= Tau {
			wrapped = 0
		}

		return A(wrapped)

	case Rad32:
		wrapped := Wrapf(angle.Deg(), 0, 360).Rad()
		if wrapped >= Tau {
			wrapped = 0
		}

		return A(wrapped)

	case Deg:
		return A(Wrapf(angle, 0, 360))

	case Deg32:
		return A(Wrapf(angle, 0, 360))
	}

	panic("unreachable")
}
