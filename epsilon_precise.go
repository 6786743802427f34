//go:build precise_math

package gm

// Epsilon is the absolute tolerance used by IsEqualApprox and IsZeroApprox.
const Epsilon = 0.00001
