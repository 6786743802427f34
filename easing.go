package gm

// Smoothstep returns the smooth hermite interpolation of weight between from
// and to, a value in [0, 1]. If from and to are approximately equal, from is
// returned.
func Smoothstep[S Float](from, to, weight S) S {
	if IsEqualApprox(from, to) {
		return from
	}

	x := Clamp((weight-from)/(to-from), 0, 1)
	return S(x*x) * (3 - 2*x)
}

// MoveToward moves from towards to by at most delta. It does not overshoot.
func MoveToward[S Float](from, to, delta S) S {
	if Abs(to-from) <= delta {
		return to
	}

	return from + S(Sign(to-from)*delta)
}

// Fract returns the fractional part of x, a value in [0, 1).
func Fract[S Float](x S) S {
	return x - Floor(x)
}

// Pingpong bounces value between 0 and length. A length of zero yields 0.
func Pingpong[S Float](value, length S) S {
	if length == 0 {
		return 0
	}

	return Abs(S(Fract((value-length)/(length*2))*length*2) - length)
}
