package laplace

import (
	"math"

	"github.com/gwflow/grf/aquifer"
	"github.com/gwflow/grf/special"
)

// evalHeads maps the solved per-disk coefficients to head values at the
// requested radii: each radius is looked up in the partition and evaluated
// as r^nu * (A_disk*K_nu(C_disk*r) + B_disk*I_nu(C_disk*r)).
//
// Coefficients below the cutoff are numerical noise from the truncated
// solve; their kernel is not evaluated at all, which also keeps overflowing
// Bessel arguments of already-masked entries out of the result.
func evalHeads(row []float64, x, cs []float64, rad []float64, part aquifer.Partition, nu, cutoff float64, kern special.Kernels) {
	for j, re := range rad {
		p := part.DiskOf(re)
		var h float64
		if a := x[2*p]; math.Abs(a) >= cutoff {
			h += a * kern.KNu(cs[p]*re)
		}
		if b := x[2*p+1]; math.Abs(b) >= cutoff {
			h += b * kern.INu(cs[p]*re)
		}
		row[j] = math.Pow(re, nu) * h
	}
}
