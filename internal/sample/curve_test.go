package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurve_At(t *testing.T) {
	cases := []struct {
		name    string
		curve   Curve
		weight  float64
		value   float64
		wrapped float64
	}{
		{
			name:    "lerp",
			curve:   Curve{Kind: KindLerp, Points: []float64{0, 1}},
			weight:  0.25,
			value:   0.25,
			wrapped: 0.25,
		},
		{
			name:    "lerp angle in degrees crosses zero",
			curve:   Curve{Kind: KindLerpAngle, Unit: Degrees, Points: []float64{350, 10}},
			weight:  0.5,
			value:   360,
			wrapped: 0,
		},
		{
			name:    "lerp angle in radians crosses pi",
			curve:   Curve{Kind: KindLerpAngle, Points: []float64{3, -3}},
			weight:  0.5,
			value:   math.Pi,
			wrapped: math.Pi,
		},
		{
			name:    "cubic",
			curve:   Curve{Kind: KindCubic, Points: []float64{0, 1, 3, 7}},
			weight:  0.5,
			value:   1.8125,
			wrapped: 1.8125,
		},
		{
			name:    "cubic in time with uniform knots",
			curve:   Curve{Kind: KindCubicInTime, Points: []float64{0, 1, 3, 7}, Times: []float64{-1, 1, 2}},
			weight:  0.5,
			value:   1.8125,
			wrapped: 1.8125,
		},
		{
			name:    "single precision cubic angle",
			curve:   Curve{Kind: KindCubicAngle, Unit: Degrees, Precision: 32, Points: []float64{340, 350, 10, 20}},
			weight:  0.5,
			value:   360,
			wrapped: 0,
		},
		{
			name:    "bezier",
			curve:   Curve{Kind: KindBezier, Points: []float64{0, 0, 1, 1}},
			weight:  0.5,
			value:   0.5,
			wrapped: 0.5,
		},
		{
			name:    "smoothstep",
			curve:   Curve{Kind: KindSmoothstep, Points: []float64{0, 1}},
			weight:  0.25,
			value:   0.15625,
			wrapped: 0.15625,
		},
		{
			name:    "pingpong peaks halfway",
			curve:   Curve{Kind: KindPingpong, Points: []float64{1}},
			weight:  0.5,
			value:   1,
			wrapped: 1,
		},
		{
			name:    "pingpong on the way back",
			curve:   Curve{Kind: KindPingpong, Points: []float64{1}},
			weight:  0.75,
			value:   0.5,
			wrapped: 0.5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			curve := tc.curve
			curve.Name = "test"
			require.NoError(t, curve.validate())

			value, wrapped := curve.At(tc.weight)
			require.InDelta(t, tc.value, value, 1e-4)
			require.InDelta(t, tc.wrapped, wrapped, 1e-4)
		})
	}
}

func TestCurve_AtEndpoints(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	for _, curve := range cfg.Curves {
		if curve.Kind == KindPingpong {
			continue
		}

		t.Run(curve.Name, func(t *testing.T) {
			// pre and post only shape the curve, it always runs from
			// the from point to the to point
			from, to := curve.Points[0], curve.Points[1]
			if len(curve.Points) == 4 && curve.Kind != KindBezier {
				from, to = curve.Points[1], curve.Points[2]
			}

			if curve.Kind == KindBezier {
				from, to = curve.Points[0], curve.Points[3]
			}

			start, _ := curve.At(0)
			end, wrapped := curve.At(1)

			require.InDelta(t, from, start, 1e-4)

			if curve.Kind.IsAngle() {
				turn := 2 * math.Pi
				if curve.Unit == Degrees {
					turn = 360
				}

				// the angle ends on the same direction as to
				require.InDelta(t, 0, math.Remainder(end-to, turn), 1e-4)
				require.GreaterOrEqual(t, wrapped, 0.0)
				require.Less(t, wrapped, turn)
			} else {
				require.InDelta(t, to, end, 1e-4)
			}
		})
	}
}

func TestCurve_Tangent(t *testing.T) {
	curve := Curve{Name: "ease", Kind: KindBezier, Points: []float64{0, 0, 1, 1}}
	require.NoError(t, curve.validate())

	tangent, ok := curve.Tangent(0.5)
	require.True(t, ok)
	require.InDelta(t, 1.5, tangent, 1e-12)

	curve.Precision = 32
	tangent, ok = curve.Tangent(0)
	require.True(t, ok)
	require.Zero(t, tangent)

	lerp := Curve{Name: "ramp", Kind: KindLerp, Points: []float64{0, 1}}
	_, ok = lerp.Tangent(0.5)
	require.False(t, ok)
}
