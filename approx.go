package gm

// Epsilon2 is the square of Epsilon, for comparing squared lengths.
const Epsilon2 = Epsilon * Epsilon

// IsEqualApprox reports whether a and b are approximately equal.
//
// The tolerance scales with the magnitude of a, but never drops below Epsilon.
// Only a is taken into account, so the check is not symmetric for large values.
// Angles are compared in their own unit.
func IsEqualApprox[S Float](a, b S) bool {
	// exact equality first, required to handle infinities
	if a == b {
		return true
	}

	tolerance := S(Epsilon) * Abs(a)
	if tolerance < S(Epsilon) {
		tolerance = S(Epsilon)
	}

	return Abs(a-b) < tolerance
}

// IsEqualApproxTol reports whether a and b differ by less than tolerance.
func IsEqualApproxTol[S Float](a, b, tolerance S) bool {
	if a == b {
		return true
	}

	return Abs(a-b) < tolerance
}

// IsZeroApprox reports whether x is closer to zero than Epsilon.
func IsZeroApprox[S Float](x S) bool {
	return Abs(x) < S(Epsilon)
}
