// Package gm (stands for game math) provides scalar and angle math for games.
//
// Angles are tagged with their unit. There are the types Rad and Deg and their
// single precision twins Rad32 and Deg32. Converting between the units goes
// through the Deg and Rad methods. Arithmetic that mixes units does not compile,
// but a plain type conversion such as Deg(r) only changes the tag and keeps the
// number as is.
//
// On top of that the package offers approximate comparisons, wrapping and
// snapping of values into ranges, and a set of interpolation functions: linear,
// shortest-arc angle interpolation, cubic splines with uniform and non-uniform
// knot times, bezier curves and easing helpers.
//
// All functions are pure and generic over float32 and float64. The arithmetic is
// done in the precision of the arguments, nothing is promoted to float64.
//
// The tolerance used by approximate comparisons is configured at compile time,
// see Epsilon.
package gm
