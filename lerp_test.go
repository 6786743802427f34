package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/interp"
)

func TestLerp(t *testing.T) {
	require.Equal(t, 2.5, Lerp(0.0, 10.0, 0.25))
	require.Equal(t, 15.0, Lerp(0.0, 10.0, 1.5))
	require.Equal(t, -5.0, Lerp(0.0, 10.0, -0.5))
	require.Equal(t, float32(1.5), Lerp(float32(1), 2, 0.5))
	require.Equal(t, Deg(45), Lerp(Deg(0), Deg(90), 0.5))

	t.Run("constant", func(t *testing.T) {
		for _, a := range []float64{-1e9, -3.5, 0, 1, 42.125} {
			for _, w := range []float64{-2, 0, 0.3, 1, 7} {
				require.Equal(t, a, Lerp(a, a, w))
			}
		}
	})

	t.Run("matches piecewise linear", func(t *testing.T) {
		var pl interp.PiecewiseLinear
		require.NoError(t, pl.Fit([]float64{0, 1}, []float64{-3, 11}))

		for w := 0.0; w <= 1; w += 1.0 / 16 {
			require.InDelta(t, pl.Predict(w), Lerp(-3.0, 11.0, w), 1e-12)
		}
	})
}

func TestInverseLerp(t *testing.T) {
	require.Equal(t, 0.25, InverseLerp(0.0, 10.0, 2.5))
	require.Equal(t, 2.0, InverseLerp(0.0, 10.0, 20))

	t.Run("round trip", func(t *testing.T) {
		pairs := [][2]float64{{0, 1}, {-5, 5}, {3, -7}, {1e6, 1e6 + 3}}
		for _, pair := range pairs {
			for w := -1.0; w <= 2; w += 0.125 {
				value := Lerp(pair[0], pair[1], w)
				actual := InverseLerp(pair[0], pair[1], value)
				require.True(t, scalar.EqualWithinAbsOrRel(w, actual, 1e-9, 1e-9), "%v != %v", w, actual)
			}
		}
	})

	t.Run("equal bounds are not guarded", func(t *testing.T) {
		require.True(t, math.IsNaN(InverseLerp(1.0, 1.0, 1.0)))
		require.True(t, math.IsInf(InverseLerp(1.0, 1.0, 2.0), 1))
	})
}

func TestRemap(t *testing.T) {
	require.Equal(t, 150.0, Remap(5.0, 0, 10, 100, 200))
	require.Equal(t, 250.0, Remap(15.0, 0, 10, 100, 200))
	require.Equal(t, 0.0, Remap(10.0, 10, 0, 0, 1))
	require.True(t, math.IsInf(Remap(1.0, 2, 2, 0, 1), -1))
	require.True(t, math.IsNaN(Remap(2.0, 2, 2, 0, 1)))
}

func TestLerpAngle(t *testing.T) {
	t.Run("takes the shortest arc across zero", func(t *testing.T) {
		r := LerpAngle(DegToRad(350), DegToRad(10), 0.5)
		require.InDelta(t, Tau, float64(r), 1e-9)
		require.InDelta(t, 1, r.Cos(), 1e-9)

		d := LerpAngle(Deg(350), Deg(10), 0.5)
		require.InDelta(t, 360, float64(d), 1e-9)

		d = LerpAngle(Deg(10), Deg(350), 0.5)
		require.InDelta(t, 0, float64(d), 1e-9)
	})

	t.Run("bare scalars are radians", func(t *testing.T) {
		r := LerpAngle(0.1, Tau-0.1, 0.5)
		require.InDelta(t, 0, r, 1e-9)
	})

	t.Run("inputs far outside of one turn", func(t *testing.T) {
		d := LerpAngle(Deg(10+720), Deg(-10), 0.5)
		require.InDelta(t, 720, float64(d), 1e-9)
		require.InDelta(t, 0, float64(AngleWrap(d)), 1e-9)
	})

	t.Run("never moves more than half a turn", func(t *testing.T) {
		for from := Deg(-540); from <= 540; from += 37 {
			for to := Deg(-540); to <= 540; to += 23 {
				end := LerpAngle(from, to, 1.0)
				require.LessOrEqual(t, math.Abs(float64(end-from)), 180.0)
				require.InDelta(t, 0, float64(end.DifferenceTo(to)), 1e-9)
			}
		}
	})

	t.Run("single precision", func(t *testing.T) {
		r := LerpAngle(Rad32(DegToRad(350)), Rad32(DegToRad(10)), float32(0.5))
		require.InDelta(t, Tau, float64(r), 1e-5)
	})
}
