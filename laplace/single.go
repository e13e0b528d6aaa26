package laplace

import (
	"math"

	"github.com/gwflow/grf/aquifer"
	"github.com/gwflow/grf/special"
)

// solveSingle handles one transform variable of the homogeneous (N = 1)
// case with a closed 2x2 solve instead of the banded machinery.
//
// The system couples the well condition (derivative-order kernels at the
// well radius, or the prescribed point-source coefficient when the well
// radius is zero) with the outer boundary condition (zero-order kernels at
// the outer radius, or a vanishing I-branch for an unbounded domain).
func solveSingle(row []float64, s, qs float64, rad []float64, part aquifer.Partition, nu float64, kern special.Kernels) {
	cs := math.Sqrt(s) * part.DiffSqrt(0)
	rw := part.WellRadius()
	rout := part.OuterRadius()

	a, b := 1.0, 0.0
	c, d := 0.0, 1.0
	if rw > 0 {
		a = -kern.KNu1(cs * rw)
		b = kern.INu1(cs * rw)
	}
	if !math.IsInf(rout, 1) {
		c = kern.KNu(cs * rout)
		d = kern.INu(cs * rout)
	} else {
		b = 0 // the I-branch coefficient is zero in this case either way
	}

	ak, bi, ok := solve2x2(a, b, c, d, qs, 0)
	if !ok {
		ak, bi = 0, 0
	}
	for j, re := range rad {
		if re < rout {
			row[j] = math.Pow(re, nu) * (ak*kern.KNu(cs*re) + bi*kern.INu(cs*re))
		}
	}
}

// solve2x2 solves [a b; c d] x = [v0 v1] directly. ok reports whether the
// system was regular; a vanishing or non-finite determinant is the
// per-variable NumericalSingularity case and yields ok = false.
func solve2x2(a, b, c, d, v0, v1 float64) (x0, x1 float64, ok bool) {
	det := a*d - b*c
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return 0, 0, false
	}
	x0 = (d*v0 - b*v1) / det
	x1 = (a*v1 - c*v0) / det
	if math.IsNaN(x0) || math.IsInf(x0, 0) {
		x0 = 0
	}
	if math.IsNaN(x1) || math.IsInf(x1, 0) {
		x1 = 0
	}
	return x0, x1, true
}
