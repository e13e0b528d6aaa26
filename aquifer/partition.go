// Package aquifer holds the radial disk-partition data model of the GRF
// (General Radial Flow) solver: concentric annular zones around a pumping
// well, each with its own conductivity and storativity.
package aquifer

import (
	"fmt"
	"math"
	"sort"
)

// Partition describes N concentric disks around the well.
// K and S carry one conductivity/storativity value per disk, R carries the
// N+1 boundary radii from the well radius R[0] outward; R[N] may be +Inf for
// an unbounded aquifer. A Partition is immutable after Validate.
type Partition struct {
	K []float64
	S []float64
	R []float64
}

// Disks returns the number of annular zones N.
func (p Partition) Disks() int { return len(p.K) }

// WellRadius returns the innermost boundary R[0].
func (p Partition) WellRadius() float64 { return p.R[0] }

// OuterRadius returns the outermost boundary R[N], possibly +Inf.
func (p Partition) OuterRadius() float64 { return p.R[len(p.R)-1] }

// DiffSqrt returns sqrt(S_i/K_i), the square root of the inverse
// diffusivity of disk i. It scales the Bessel arguments of that disk.
func (p Partition) DiffSqrt(i int) float64 {
	return math.Sqrt(p.S[i] / p.K[i])
}

// DiskOf maps a radius to the index of its containing disk. A radius that
// coincides with a boundary belongs to the disk below it, so the outermost
// boundary maps to disk N-1. The radius must already be validated.
func (p Partition) DiskOf(rad float64) int {
	return sort.SearchFloat64s(p.R, rad) - 1
}

// Validate checks every structural invariant of the partition together with
// the query radii and the scalar well parameters. kWell is the resolved well
// conductivity (defaults already applied by the caller). It is a pure check:
// no state is touched, the first violated invariant is reported.
func (p Partition) Validate(rad []float64, dim, latExt, kWell float64) error {
	n := len(p.K)
	if n == 0 || len(p.S) != n || len(p.R) != n+1 {
		return fmt.Errorf("%w: %w (K=%d, S=%d, R=%d)",
			ErrInvalidInput, ErrLengthMismatch, len(p.K), len(p.S), len(p.R))
	}
	if p.R[0] < 0 {
		return fmt.Errorf("%w: %w (R[0]=%g)", ErrInvalidInput, ErrNegativeWell, p.R[0])
	}
	for i := 0; i < n; i++ {
		if !(p.R[i] < p.R[i+1]) {
			return fmt.Errorf("%w: %w (R[%d]=%g, R[%d]=%g)",
				ErrInvalidInput, ErrUnsortedRadii, i, p.R[i], i+1, p.R[i+1])
		}
	}
	for i, k := range p.K {
		if !(k > 0) {
			return fmt.Errorf("%w: %w (K[%d]=%g)", ErrInvalidInput, ErrNonPositiveK, i, k)
		}
	}
	for i, s := range p.S {
		if !(s > 0) {
			return fmt.Errorf("%w: %w (S[%d]=%g)", ErrInvalidInput, ErrNonPositiveS, i, s)
		}
	}
	for _, r := range rad {
		if !(r > p.R[0]) || r > p.R[n] {
			return fmt.Errorf("%w: %w (rad=%g not in (%g, %g])",
				ErrInvalidInput, ErrRadiusOutOfRange, r, p.R[0], p.R[n])
		}
	}
	if !(dim > 0) || dim > 3 {
		return fmt.Errorf("%w: %w (dim=%g)", ErrInvalidInput, ErrBadDimension, dim)
	}
	if !(latExt > 0) {
		return fmt.Errorf("%w: %w (latExt=%g)", ErrInvalidInput, ErrBadLatExt, latExt)
	}
	if !(kWell > 0) {
		return fmt.Errorf("%w: %w (KWell=%g)", ErrInvalidInput, ErrBadWellK, kWell)
	}
	return nil
}
