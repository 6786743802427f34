package gm

// CubicInterpolate does a cubic interpolation between from and to. The
// values pre and post are the neighbours of from and to and shape the
// tangents of the curve (Catmull-Rom).
func CubicInterpolate[S Float, W Float](from, to, pre, post S, weight W) S {
	return cubicInterpolate(from, to, pre, post, S(weight))
}

// CubicInterpolateAngle is CubicInterpolate for angles. Every segment of the
// spline is rotated to take the shortest arc.
func CubicInterpolateAngle[S Float, W Float](from, to, pre, post S, weight W) S {
	from, to, pre, post = alignAngles(from, to, pre, post)
	return cubicInterpolate(from, to, pre, post, S(weight))
}

// CubicInterpolateInTime does a cubic interpolation with non uniform knot times
// using the Barry-Goldman method. The value from is placed at time 0, pre at
// preT, to at toT and post at postT. The weight is mapped to the time range
// [0, toT].
//
// Empty time spans do not divide by zero, a fixed blend factor is used instead.
func CubicInterpolateInTime[S Float, W Float](from, to, pre, post S, weight, toT, preT, postT W) S {
	return cubicInterpolateInTime(from, to, pre, post, S(weight), S(toT), S(preT), S(postT))
}

// CubicInterpolateAngleInTime is CubicInterpolateInTime for angles.
func CubicInterpolateAngleInTime[S Float, W Float](from, to, pre, post S, weight, toT, preT, postT W) S {
	from, to, pre, post = alignAngles(from, to, pre, post)
	return cubicInterpolateInTime(from, to, pre, post, S(weight), S(toT), S(preT), S(postT))
}

// BezierInterpolate evaluates the cubic bezier curve with the given control points at t.
//
// The curve is evaluated with de Casteljau's algorithm. It returns start at t=0,
// end at t=1 and p for every t if all control points equal p.
func BezierInterpolate[S Float, W Float](start, control1, control2, end S, t W) S {
	tt := S(t)

	a := lerpExact(start, control1, tt)
	b := lerpExact(control1, control2, tt)
	c := lerpExact(control2, end, tt)

	d := lerpExact(a, b, tt)
	e := lerpExact(b, c, tt)

	return lerpExact(d, e, tt)
}

// BezierDerivative returns the derivative of the cubic bezier curve at t.
func BezierDerivative[S Float, W Float](start, control1, control2, end S, t W) S {
	tt := S(t)

	omt := 1 - tt
	omt2 := S(omt * omt)
	t2 := S(tt * tt)

	return S((control1-start)*3*omt2) + S((control2-control1)*6*omt*tt) + S((end-control2)*3*t2)
}

func cubicInterpolate[S Float](from, to, pre, post, weight S) S {
	w2 := S(weight * weight)
	w3 := S(w2 * weight)

	c1 := -pre + to
	c2 := S(2*pre) - S(5*from) + S(4*to) - post
	c3 := -pre + S(3*from) - S(3*to) + post

	return 0.5 * (S(from*2) + S(c1*weight) + S(c2*w2) + S(c3*w3))
}

func cubicInterpolateInTime[S Float](from, to, pre, post, weight, toT, preT, postT S) S {
	// the chained blends below are off by an ulp at the ends
	switch weight {
	case 0:
		return from
	case 1:
		return to
	}

	t := lerp(0, toT, weight)

	a1 := lerp(pre, from, blend(t-preT, -preT, 0))
	a2 := lerp(from, to, blend(t, toT, 0.5))
	a3 := lerp(to, post, blend(t-toT, postT-toT, 1))
	b1 := lerp(a1, a2, blend(t-preT, toT-preT, 0))
	b2 := lerp(a2, a3, blend(t, postT, 1))

	return lerp(b1, b2, blend(t, toT, 0.5))
}

// blend returns num/den, or fallback if den is zero.
func blend[S Float](num, den, fallback S) S {
	if den == 0 {
		return fallback
	}

	return num / den
}

// alignAngles moves from into its canonical residue and rewrites the other
// control points relative to it, so that no segment goes the long way around.
func alignAngles[S Float](from, to, pre, post S) (S, S, S, S) {
	full := turn[S]()

	fromRot := Fmod(from, full)

	preDiff := Fmod(pre-fromRot, full)
	preRot := fromRot + Fmod(2*preDiff, full) - preDiff

	toDiff := Fmod(to-fromRot, full)
	toRot := fromRot + Fmod(2*toDiff, full) - toDiff

	postDiff := Fmod(post-toRot, full)
	postRot := toRot + Fmod(2*postDiff, full) - postDiff

	return fromRot, toRot, preRot, postRot
}
