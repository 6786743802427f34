package gm

// Lerp does a linear interpolation between from and to using the weight.
// A weight of 0 returns from, a weight of 1 returns to. The weight is not
// clamped, values outside of [0, 1] extrapolate.
func Lerp[S Float, W Float](from, to S, weight W) S {
	return lerp(from, to, S(weight))
}

// InverseLerp returns the weight that Lerp(from, to, weight) needs to
// produce value. If from equals to, the result is NaN or infinite.
func InverseLerp[S Float](from, to, value S) S {
	return (value - from) / (to - from)
}

// Remap maps value from the range [istart, istop] to [ostart, ostop].
// An empty input range yields NaN or an infinite value.
func Remap[S Float](value, istart, istop, ostart, ostop S) S {
	return lerp(ostart, ostop, InverseLerp(istart, istop, value))
}

// LerpAngle interpolates between two angles along the shortest arc. The
// result is not normalized.
//
// Bare scalars are interpreted as radians.
func LerpAngle[S Float, W Float](from, to S, weight W) S {
	return from + S(shortestDelta(from, to)*S(weight))
}

func lerp[S Float](from, to, weight S) S {
	// the conversion rounds the product and prevents a fused multiply-add
	return from + S(weight*(to-from))
}

// lerpExact is lerp that returns exactly a at weight 0, b at weight 1, and a
// for every weight if a equals b. Past the midpoint it interpolates from b.
func lerpExact[S Float](a, b, weight S) S {
	if weight < 0.5 {
		return a + S(weight*(b-a))
	}

	return b - S((1-weight)*(b-a))
}

// shortestDelta returns the signed rotation from 'from' to 'to' that is
// at most half a turn.
func shortestDelta[S Float](from, to S) S {
	full := turn[S]()
	difference := Fmod(to-from, full)
	return Fmod(2*difference, full) - difference
}
