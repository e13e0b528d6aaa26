package laplace

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// solveCoefficients solves the interface system truncated to the first
// effective disks and returns the full 2N coefficient vector; unknowns of
// excluded disks stay zero.
//
// first <= 1 degenerates to a direct solve of the innermost 2x2 block, the
// same structure as the homogeneous fast path built from disk 0's boundary
// data alone. Singular systems degrade to all-zero coefficients for this
// transform variable instead of failing the batch, and residual NaN/Inf
// values are cleaned to zero before evaluation.
func solveCoefficients(m *mat.BandDense, qs float64, parts, first int) []float64 {
	x := make([]float64, 2*parts)

	if first <= 1 {
		a, b, ok := solve2x2(m.At(0, 0), m.At(0, 1), m.At(1, 0), m.At(1, 1), qs, 0)
		if ok {
			x[0], x[1] = a, b
		}
		return x
	}

	n := 2 * first
	dense := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		lo := i - 2
		if lo < 0 {
			lo = 0
		}
		hi := i + 2
		if hi > n-1 {
			hi = n - 1
		}
		for j := lo; j <= hi; j++ {
			dense.Set(i, j, m.At(i, j))
		}
	}
	rhs := mat.NewVecDense(n, nil)
	rhs.SetVec(0, qs)

	var lu mat.LU
	lu.Factorize(dense)
	sol := mat.NewVecDense(n, nil)
	if err := lu.SolveVecTo(sol, false, rhs); err != nil {
		if _, ill := err.(mat.Condition); !ill {
			return x
		}
		// ill-conditioned solutions are kept; the scrub below and the
		// cutoff masking during evaluation absorb the damage
	}
	copy(x[:n], sol.RawVector().Data)
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			x[i] = 0
		}
	}
	return x
}
