package laplace

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gwflow/grf/aquifer"
	"github.com/gwflow/grf/special"
)

// buildSystem assembles the 2N x 2N banded interface system of one transform
// variable for N > 1 disks, together with the per-disk Bessel argument
// scales C_i = sqrt(s) * sqrt(S_i/K_i).
//
// Unknowns are ordered (A_0, B_0, ..., A_{N-1}, B_{N-1}). Row 0 carries the
// pumping condition at the well, row 2N-1 the outer boundary condition; each
// interior boundary i contributes a head-continuity row 2i+1 and a
// flux-continuity row 2i+2, the latter scaled by the mass-conservation
// factor between the adjacent disks. Nearest-neighbor coupling keeps the
// bandwidth at two on either side of the diagonal.
func buildSystem(s float64, part aquifer.Partition, kern special.Kernels) (*mat.BandDense, []float64) {
	n := part.Disks()
	cs := make([]float64, n)
	for i := range cs {
		cs[i] = math.Sqrt(s) * part.DiffSqrt(i)
	}

	m := mat.NewBandDense(2*n, 2*n, 2, 2, nil)
	// defaults covering a zero well radius and an unbounded outer boundary
	m.SetBand(0, 0, 1)
	m.SetBand(2*n-1, 2*n-1, 1)

	for i := 0; i < n-1; i++ {
		rb := part.R[i+1]
		// mass-conservation factor between disk i and disk i+1
		fac := part.K[i] / part.K[i+1] * part.DiffSqrt(i) / part.DiffSqrt(i+1)

		r := 2*i + 1 // head continuity at boundary i+1
		m.SetBand(r, 2*i, kern.KNu(cs[i]*rb))
		m.SetBand(r, 2*i+1, kern.INu(cs[i]*rb))
		m.SetBand(r, 2*i+2, -kern.KNu(cs[i+1]*rb))
		m.SetBand(r, 2*i+3, -kern.INu(cs[i+1]*rb))

		r = 2*i + 2 // flux continuity at boundary i+1
		m.SetBand(r, 2*i, -fac*kern.KNu1(cs[i]*rb))
		m.SetBand(r, 2*i+1, fac*kern.INu1(cs[i]*rb))
		m.SetBand(r, 2*i+2, kern.KNu1(cs[i+1]*rb))
		m.SetBand(r, 2*i+3, -kern.INu1(cs[i+1]*rb))
	}

	if rw := part.WellRadius(); rw > 0 {
		m.SetBand(0, 0, -kern.KNu1(cs[0]*rw))
		m.SetBand(0, 1, kern.INu1(cs[0]*rw))
	}
	if rout := part.OuterRadius(); !math.IsInf(rout, 1) {
		m.SetBand(2*n-1, 2*n-2, kern.KNu(cs[n-1]*rout))
		m.SetBand(2*n-1, 2*n-1, kern.INu(cs[n-1]*rout))
	} else {
		// B_{N-1} is pinned to zero by the identity row, so its
		// couplings into the last interface rows are dropped
		m.SetBand(2*n-3, 2*n-1, 0)
		m.SetBand(2*n-2, 2*n-1, 0)
	}
	return m, cs
}
