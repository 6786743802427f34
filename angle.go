package gm

import (
	"fmt"
	"math"
)

// Angle is implemented by the angle types of this package.
type Angle interface {
	Rad | Rad32 | Deg | Deg32
}

const (
	degPerRad = 180 / math.Pi
	radPerDeg = math.Pi / 180
)

// Rad is an angle in radians.
type Rad float64

// Rad32 is an angle in radians with single precision.
type Rad32 float32

// Deg is an angle in degrees.
type Deg float64

// Deg32 is an angle in degrees with single precision.
type Deg32 float32

// DegToRad tags deg as degrees and converts it to radians.
func DegToRad(deg float64) Rad {
	return Deg(deg).Rad()
}

// RadToDeg tags rad as radians and converts it to degrees.
func RadToDeg(rad float64) Deg {
	return Rad(rad).Deg()
}

func (r Rad) Deg() Deg {
	return Deg(r * degPerRad)
}

func (r Rad) Rad32() Rad32 {
	return Rad32(r)
}

// Radians returns the value of the angle in radians as float64.
func (r Rad) Radians() float64 {
	return float64(r)
}

// Degrees returns the value of the angle in degrees as float64.
func (r Rad) Degrees() float64 {
	return float64(r.Deg())
}

func (r Rad) Add(other Rad) Rad { return r + other }
func (r Rad) Sub(other Rad) Rad { return r - other }
func (r Rad) Mul(f float64) Rad { return r * Rad(f) }
func (r Rad) Div(f float64) Rad { return r / Rad(f) }
func (r Rad) Sin() float64      { return math.Sin(float64(r)) }
func (r Rad) Cos() float64      { return math.Cos(float64(r)) }
func (r Rad) Tan() float64      { return math.Tan(float64(r)) }
func (r Rad) Sinh() float64     { return math.Sinh(float64(r)) }
func (r Rad) Cosh() float64     { return math.Cosh(float64(r)) }
func (r Rad) Tanh() float64     { return math.Tanh(float64(r)) }
func (r Rad) Sinc() float64     { return Sinc(float64(r)) }
func (r Rad) SinCos() (float64, float64) {
	return math.Sincos(float64(r))
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	return normalized(r)
}

// DifferenceTo returns the signed shortest rotation from r to other,
// in the range [-π, π]
func (r Rad) DifferenceTo(other Rad) Rad {
	return shortestDelta(r, other)
}

func (r Rad) String() string {
	return fmt.Sprintf("%grad", float64(r))
}

func (r Rad32) Deg() Deg32 {
	return Deg32(r * degPerRad)
}

func (r Rad32) Rad64() Rad {
	return Rad(r)
}

func (r Rad32) Radians() float32 {
	return float32(r)
}

func (r Rad32) Degrees() float32 {
	return float32(r.Deg())
}

func (r Rad32) Add(other Rad32) Rad32 { return r + other }
func (r Rad32) Sub(other Rad32) Rad32 { return r - other }
func (r Rad32) Mul(f float32) Rad32   { return r * Rad32(f) }
func (r Rad32) Div(f float32) Rad32   { return r / Rad32(f) }
func (r Rad32) Sin() float32          { return float32(math.Sin(float64(r))) }
func (r Rad32) Cos() float32          { return float32(math.Cos(float64(r))) }
func (r Rad32) Tan() float32          { return float32(math.Tan(float64(r))) }
func (r Rad32) Sinh() float32         { return float32(math.Sinh(float64(r))) }
func (r Rad32) Cosh() float32         { return float32(math.Cosh(float64(r))) }
func (r Rad32) Tanh() float32         { return float32(math.Tanh(float64(r))) }
func (r Rad32) Sinc() float32         { return Sinc(float32(r)) }
func (r Rad32) SinCos() (float32, float32) {
	sin, cos := math.Sincos(float64(r))
	return float32(sin), float32(cos)
}

func (r Rad32) Normalized() Rad32 {
	return normalized(r)
}

func (r Rad32) DifferenceTo(other Rad32) Rad32 {
	return shortestDelta(r, other)
}

func (r Rad32) String() string {
	return fmt.Sprintf("%grad", float32(r))
}

func (d Deg) Rad() Rad {
	return Rad(d * radPerDeg)
}

func (d Deg) Deg32() Deg32 {
	return Deg32(d)
}

func (d Deg) Radians() float64 {
	return float64(d.Rad())
}

func (d Deg) Degrees() float64 {
	return float64(d)
}

func (d Deg) Add(other Deg) Deg { return d + other }
func (d Deg) Sub(other Deg) Deg { return d - other }
func (d Deg) Mul(f float64) Deg { return d * Deg(f) }
func (d Deg) Div(f float64) Deg { return d / Deg(f) }
func (d Deg) Sin() float64      { return d.Rad().Sin() }
func (d Deg) Cos() float64      { return d.Rad().Cos() }
func (d Deg) Tan() float64      { return d.Rad().Tan() }
func (d Deg) Sinh() float64     { return d.Rad().Sinh() }
func (d Deg) Cosh() float64     { return d.Rad().Cosh() }
func (d Deg) Tanh() float64     { return d.Rad().Tanh() }
func (d Deg) Sinc() float64     { return d.Rad().Sinc() }
func (d Deg) SinCos() (float64, float64) {
	return d.Rad().SinCos()
}

// Normalized returns the angle normalized to the range [-180°, 180°)
func (d Deg) Normalized() Deg {
	return normalized(d)
}

func (d Deg) DifferenceTo(other Deg) Deg {
	return shortestDelta(d, other)
}

func (d Deg) String() string {
	return fmt.Sprintf("%g°", float64(d))
}

func (d Deg32) Rad() Rad32 {
	return Rad32(d * radPerDeg)
}

func (d Deg32) Deg64() Deg {
	return Deg(d)
}

func (d Deg32) Radians() float32 {
	return float32(d.Rad())
}

func (d Deg32) Degrees() float32 {
	return float32(d)
}

func (d Deg32) Add(other Deg32) Deg32 { return d + other }
func (d Deg32) Sub(other Deg32) Deg32 { return d - other }
func (d Deg32) Mul(f float32) Deg32   { return d * Deg32(f) }
func (d Deg32) Div(f float32) Deg32   { return d / Deg32(f) }
func (d Deg32) Sin() float32          { return d.Rad().Sin() }
func (d Deg32) Cos() float32          { return d.Rad().Cos() }
func (d Deg32) Tan() float32          { return d.Rad().Tan() }
func (d Deg32) Sinh() float32         { return d.Rad().Sinh() }
func (d Deg32) Cosh() float32         { return d.Rad().Cosh() }
func (d Deg32) Tanh() float32         { return d.Rad().Tanh() }
func (d Deg32) Sinc() float32         { return d.Rad().Sinc() }
func (d Deg32) SinCos() (float32, float32) {
	return d.Rad().SinCos()
}

func (d Deg32) Normalized() Deg32 {
	return normalized(d)
}

func (d Deg32) DifferenceTo(other Deg32) Deg32 {
	return shortestDelta(d, other)
}

func (d Deg32) String() string {
	return fmt.Sprintf("%g°", float32(d))
}

// Sinc returns sin(x)/x, and 1 for x == 0.
func Sinc[S Float](x S) S {
	if x == 0 {
		return 1
	}

	return S(math.Sin(float64(x))) / x
}

// Sincn is the normalized sinc function sin(πx)/(πx).
func Sincn[S Float](x S) S {
	return Sinc(S(Pi * x))
}

func Asin(x float64) Rad     { return Rad(math.Asin(x)) }
func Acos(x float64) Rad     { return Rad(math.Acos(x)) }
func Atan(x float64) Rad     { return Rad(math.Atan(x)) }
func Atan2(y, x float64) Rad { return Rad(math.Atan2(y, x)) }
func Asin32(x float32) Rad32 { return Rad32(math.Asin(float64(x))) }
func Acos32(x float32) Rad32 { return Rad32(math.Acos(float64(x))) }
func Atan32(x float32) Rad32 { return Rad32(math.Atan(float64(x))) }
func Atan232(y, x float32) Rad32 {
	return Rad32(math.Atan2(float64(y), float64(x)))
}

// turn returns the size of a full rotation in the unit of S. Bare scalars
// are taken to be radians.
func turn[S Float]() S {
	var zero S
	switch any(zero).(type) {
	case Deg, Deg32:
		return 360
	default:
		return Tau
	}
}

func normalized[S Float](angle S) S {
	full := turn[S]()
	half := full / 2
	return Fposmodp(angle+half, full) - half
}
