package sample

import (
	"fmt"

	"github.com/oliverbestmann/gm"
)

// Kind selects the interpolation function a curve is evaluated with.
type Kind string

const (
	KindLerp             Kind = "lerp"
	KindLerpAngle        Kind = "lerp_angle"
	KindCubic            Kind = "cubic"
	KindCubicAngle       Kind = "cubic_angle"
	KindCubicInTime      Kind = "cubic_in_time"
	KindCubicAngleInTime Kind = "cubic_angle_in_time"
	KindBezier           Kind = "bezier"
	KindSmoothstep       Kind = "smoothstep"
	KindPingpong         Kind = "pingpong"
)

// number of values each kind expects in Curve.Points
var pointCounts = map[Kind]int{
	KindLerp:             2,
	KindLerpAngle:        2,
	KindCubic:            4,
	KindCubicAngle:       4,
	KindCubicInTime:      4,
	KindCubicAngleInTime: 4,
	KindBezier:           4,
	KindSmoothstep:       2,
	KindPingpong:         1,
}

// IsAngle reports whether the kind interpolates along the shortest arc.
func (k Kind) IsAngle() bool {
	return k == KindLerpAngle || k == KindCubicAngle || k == KindCubicAngleInTime
}

// IsInTime reports whether the kind takes knot times.
func (k Kind) IsInTime() bool {
	return k == KindCubicInTime || k == KindCubicAngleInTime
}

// Unit is the angle unit of an angle curve.
type Unit string

const (
	Radians Unit = "rad"
	Degrees Unit = "deg"
)

// Curve is a single interpolation, evaluated for weights in [0, 1].
//
// Points holds from and to for lerp and smoothstep, pre, from, to and post
// for the cubic kinds, the four control points for bezier and the length
// for pingpong. Times holds the knot times pre, to and post of the
// in-time kinds.
type Curve struct {
	Name      string    `yaml:"name"`
	Kind      Kind      `yaml:"kind"`
	Unit      Unit      `yaml:"unit"`
	Precision int       `yaml:"precision"`
	Points    []float64 `yaml:"points"`
	Times     []float64 `yaml:"times"`
}

// validate checks the curve and fills in the default unit and precision.
func (c *Curve) validate() error {
	if c.Name == "" {
		return fmt.Errorf("curve without name: %w", ErrInvalidCurve)
	}

	want, ok := pointCounts[c.Kind]
	if !ok {
		return fmt.Errorf("curve %q: unknown kind %q: %w", c.Name, c.Kind, ErrInvalidCurve)
	}

	switch c.Unit {
	case "":
		c.Unit = Radians
	case Radians, Degrees:
	default:
		return fmt.Errorf("curve %q: unknown unit %q: %w", c.Name, c.Unit, ErrInvalidCurve)
	}

	switch c.Precision {
	case 0:
		c.Precision = 64
	case 32, 64:
	default:
		return fmt.Errorf("curve %q: precision must be 32 or 64, got %d: %w", c.Name, c.Precision, ErrInvalidCurve)
	}

	if len(c.Points) != want {
		return fmt.Errorf("curve %q: points: want %d values, got %d: %w", c.Name, want, len(c.Points), ErrInvalidCurve)
	}

	wantTimes := 0
	if c.Kind.IsInTime() {
		wantTimes = 3
	}

	if len(c.Times) != wantTimes {
		return fmt.Errorf("curve %q: times: want %d values, got %d: %w", c.Name, wantTimes, len(c.Times), ErrInvalidCurve)
	}

	for idx, value := range append(c.Points[:len(c.Points):len(c.Points)], c.Times...) {
		if !gm.IsFinite(value) {
			return fmt.Errorf("curve %q: value %d is not finite: %w", c.Name, idx, ErrInvalidCurve)
		}
	}

	return nil
}

// At evaluates the curve at the given weight. For angle curves wrapped is
// the value wrapped into one positive turn, otherwise it equals value.
func (c *Curve) At(weight float64) (value, wrapped float64) {
	if !c.Kind.IsAngle() {
		if c.Precision == 32 {
			value = float64(evaluate[float32](c, weight))
		} else {
			value = evaluate[float64](c, weight)
		}

		return value, value
	}

	switch {
	case c.Unit == Degrees && c.Precision == 32:
		return evaluateAngle[gm.Deg32](c, weight)
	case c.Unit == Degrees:
		return evaluateAngle[gm.Deg](c, weight)
	case c.Precision == 32:
		return evaluateAngle[gm.Rad32](c, weight)
	default:
		return evaluateAngle[gm.Rad](c, weight)
	}
}

// Tangent returns the derivative of a bezier curve at the given weight.
// ok is false for every other kind.
func (c *Curve) Tangent(weight float64) (tangent float64, ok bool) {
	if c.Kind != KindBezier {
		return 0, false
	}

	p := c.Points

	if c.Precision == 32 {
		return float64(gm.BezierDerivative(float32(p[0]), float32(p[1]), float32(p[2]), float32(p[3]), weight)), true
	}

	return gm.BezierDerivative(p[0], p[1], p[2], p[3], weight), true
}

func evaluateAngle[A gm.Angle](c *Curve, weight float64) (value, wrapped float64) {
	angle := evaluate[A](c, weight)
	return float64(angle), float64(gm.AngleWrap(angle))
}

// evaluate runs the curve in the precision and unit of S. The weight is
// converted to S by the gm functions themselves.
func evaluate[S gm.Float](c *Curve, weight float64) S {
	p := func(idx int) S { return S(c.Points[idx]) }

	switch c.Kind {
	case KindLerp:
		return gm.Lerp(p(0), p(1), weight)

	case KindLerpAngle:
		return gm.LerpAngle(p(0), p(1), weight)

	case KindCubic:
		return gm.CubicInterpolate(p(1), p(2), p(0), p(3), weight)

	case KindCubicAngle:
		return gm.CubicInterpolateAngle(p(1), p(2), p(0), p(3), weight)

	case KindCubicInTime:
		return gm.CubicInterpolateInTime(p(1), p(2), p(0), p(3), weight, c.Times[1], c.Times[0], c.Times[2])

	case KindCubicAngleInTime:
		return gm.CubicInterpolateAngleInTime(p(1), p(2), p(0), p(3), weight, c.Times[1], c.Times[0], c.Times[2])

	case KindBezier:
		return gm.BezierInterpolate(p(0), p(1), p(2), p(3), weight)

	case KindSmoothstep:
		return gm.Smoothstep(p(0), p(1), gm.Lerp(p(0), p(1), weight))

	case KindPingpong:
		// one full period over the weight range
		length := p(0)
		return gm.Pingpong(S(weight)*2*length, length)
	}

	panic(fmt.Sprintf("curve %q: kind %q was not validated", c.Name, c.Kind))
}
