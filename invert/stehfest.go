// Package invert provides numerical inversion of Laplace-space evaluators
// back to the time domain via the Gaver-Stehfest quadrature. It is the
// collaborator that drives the GRF Laplace solver: for every target time t
// the evaluator is sampled at the real transform points k*ln2/t.
package invert

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultDegree is the even number of Stehfest terms used when the caller
// passes zero. Larger degrees sharpen smooth functions but amplify rounding
// cancellation in the coefficients.
const DefaultDegree = 12

var (
	// ErrBadDegree reports an odd or non-positive Stehfest degree.
	ErrBadDegree = errors.New("stehfest degree needs to be positive and even")
	// ErrBadTime reports a non-positive target time.
	ErrBadTime = errors.New("target times need to be positive")
)

// Evaluator maps a batch of Laplace transform variables to a
// [len(s) x width] matrix of transform values, one row per variable.
type Evaluator func(s []float64) (*mat.Dense, error)

// Coefficients returns the Stehfest weights V_1..V_degree for an even,
// positive degree. The weights alternate in sign and satisfy sum(V) = 0.
func Coefficients(degree int) ([]float64, error) {
	if degree <= 0 || degree%2 != 0 {
		return nil, fmt.Errorf("%w (degree=%d)", ErrBadDegree, degree)
	}
	n2 := degree / 2
	v := make([]float64, degree)
	for k := 1; k <= degree; k++ {
		var sum float64
		jLo := (k + 1) / 2
		jHi := k
		if jHi > n2 {
			jHi = n2
		}
		for j := jLo; j <= jHi; j++ {
			num := math.Pow(float64(j), float64(n2)) * factorial(2*j)
			den := factorial(n2-j) * factorial(j) * factorial(j-1) *
				factorial(k-j) * factorial(2*j-k)
			sum += num / den
		}
		if (n2+k)%2 != 0 {
			sum = -sum
		}
		v[k-1] = sum
	}
	return v, nil
}

// Stehfest inverts the Laplace-space evaluator at the given times. degree
// is the even number of quadrature terms (0 picks DefaultDegree). The
// evaluator is called once with the full batch of len(times)*degree
// transform points; the result has one row per time and the evaluator's
// column count.
func Stehfest(eval Evaluator, times []float64, degree int) (*mat.Dense, error) {
	if degree == 0 {
		degree = DefaultDegree
	}
	coef, err := Coefficients(degree)
	if err != nil {
		return nil, err
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("%w (none given)", ErrBadTime)
	}
	for _, t := range times {
		if !(t > 0) {
			return nil, fmt.Errorf("%w (t=%g)", ErrBadTime, t)
		}
	}

	ln2 := math.Ln2
	s := make([]float64, 0, len(times)*degree)
	for _, t := range times {
		for k := 1; k <= degree; k++ {
			s = append(s, float64(k)*ln2/t)
		}
	}
	lap, err := eval(s)
	if err != nil {
		return nil, err
	}
	rows, cols := lap.Dims()
	if rows != len(s) {
		return nil, fmt.Errorf("evaluator returned %d rows for %d transform points", rows, len(s))
	}

	res := mat.NewDense(len(times), cols, nil)
	for i, t := range times {
		fac := ln2 / t
		row := res.RawRowView(i)
		for k := 0; k < degree; k++ {
			lrow := lap.RawRowView(i*degree + k)
			for j := 0; j < cols; j++ {
				row[j] += coef[k] * lrow[j]
			}
		}
		for j := range row {
			row[j] *= fac
		}
	}
	return res, nil
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
