package laplace

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// EffectiveDiskCount scans the assembled band matrix for the first disk
// whose unknowns carry only numerically negligible or explosive entries and
// returns the number of disks that should actually be solved.
//
// Far boundaries can drive the Bessel kernels below the floating-point
// floor or beyond overflow, which leaves the full system ill-conditioned
// even though those disks have no detectable influence on the near-field
// head. A column whose largest absolute entry falls below cutoff, or above
// 1/cutoff, flags its disk; the first flagged column wins and everything at
// or beyond that disk is excluded. With no flagged column the full count
// parts is returned.
func EffectiveDiskCount(m *mat.BandDense, parts int, cutoff float64) int {
	n := 2 * parts
	for j := 0; j < n; j++ {
		lo := j - 2
		if lo < 0 {
			lo = 0
		}
		hi := j + 2
		if hi > n-1 {
			hi = n - 1
		}
		colMax := 0.0
		for i := lo; i <= hi; i++ {
			if v := math.Abs(m.At(i, j)); v > colMax {
				colMax = v
			}
		}
		if colMax < cutoff || colMax > 1/cutoff {
			return j / 2
		}
	}
	return parts
}
