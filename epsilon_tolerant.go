//go:build !precise_math

package gm

// Epsilon is the absolute tolerance used by IsEqualApprox and IsZeroApprox.
//
// By default some more floating point error is tolerated. Build with the
// precise_math tag to lower the tolerance to 1e-5.
const Epsilon = 0.001
