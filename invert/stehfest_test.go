package invert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// evalScalar lifts a scalar transform F(s) into a single-column Evaluator.
func evalScalar(f func(float64) float64) Evaluator {
	return func(s []float64) (*mat.Dense, error) {
		res := mat.NewDense(len(s), 1, nil)
		for i, se := range s {
			res.Set(i, 0, f(se))
		}
		return res, nil
	}
}

func TestCoefficientsDegreeTwo(t *testing.T) {
	v, err := Coefficients(2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v[0], 1e-12)
	assert.InDelta(t, -2.0, v[1], 1e-12)
}

func TestCoefficientsSumToZero(t *testing.T) {
	for _, degree := range []int{4, 8, 12, 16} {
		v, err := Coefficients(degree)
		require.NoError(t, err)
		var sum float64
		for _, c := range v {
			sum += c
		}
		assert.InDelta(t, 0.0, sum, 1e-6, "degree %d", degree)
	}
}

func TestCoefficientsRejectOddDegree(t *testing.T) {
	_, err := Coefficients(7)
	assert.ErrorIs(t, err, ErrBadDegree)
	_, err = Coefficients(0)
	assert.ErrorIs(t, err, ErrBadDegree)
	_, err = Coefficients(-2)
	assert.ErrorIs(t, err, ErrBadDegree)
}

func TestStehfestPowerTransforms(t *testing.T) {
	times := []float64{0.5, 1, 2, 10}

	// 1/s <-> 1
	res, err := Stehfest(evalScalar(func(s float64) float64 { return 1 / s }), times, 0)
	require.NoError(t, err)
	for i := range times {
		assert.InEpsilon(t, 1.0, res.At(i, 0), 1e-8, "t=%g", times[i])
	}

	// 1/s^2 <-> t; exact only in exact arithmetic — the degree-12
	// coefficients reach ~1e8 with alternating signs, so cancellation
	// caps float64 accuracy near 1e-6
	res, err = Stehfest(evalScalar(func(s float64) float64 { return 1 / (s * s) }), times, 12)
	require.NoError(t, err)
	for i, tt := range times {
		assert.InEpsilon(t, tt, res.At(i, 0), 1e-5, "t=%g", tt)
	}
}

func TestStehfestExponential(t *testing.T) {
	// 1/(s+1) <-> exp(-t); smooth, so the quadrature converges well
	times := []float64{0.5, 1, 2}
	res, err := Stehfest(evalScalar(func(s float64) float64 { return 1 / (s + 1) }), times, 12)
	require.NoError(t, err)
	for i, tt := range times {
		assert.InEpsilon(t, math.Exp(-tt), res.At(i, 0), 1e-3, "t=%g", tt)
	}
}

func TestStehfestRejectsBadTimes(t *testing.T) {
	_, err := Stehfest(evalScalar(func(s float64) float64 { return 1 / s }), []float64{1, -1}, 12)
	assert.ErrorIs(t, err, ErrBadTime)
	_, err = Stehfest(evalScalar(func(s float64) float64 { return 1 / s }), []float64{0}, 12)
	assert.ErrorIs(t, err, ErrBadTime)
}

func TestStehfestShape(t *testing.T) {
	eval := func(s []float64) (*mat.Dense, error) {
		res := mat.NewDense(len(s), 3, nil)
		for i, se := range s {
			for j := 0; j < 3; j++ {
				res.Set(i, j, float64(j+1)/se)
			}
		}
		return res, nil
	}
	times := []float64{1, 2}
	res, err := Stehfest(eval, times, 8)
	require.NoError(t, err)
	rows, cols := res.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	for i := range times {
		for j := 0; j < 3; j++ {
			assert.InEpsilon(t, float64(j+1), res.At(i, j), 1e-6)
		}
	}
}
