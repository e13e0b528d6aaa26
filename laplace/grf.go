// Package laplace implements the Laplace-space solution of the extended GRF
// (General Radial Flow) model: transient flow towards a pumping well in a
// confined aquifer built from concentric disks, each with its own
// conductivity and storativity (Barker 1988).
//
// For every transform variable s a linear system enforcing head and flux
// continuity across all disk interfaces is assembled as a banded matrix,
// conditioned, solved and evaluated at the requested radii. Transform
// variables are fully independent, so they are processed concurrently with
// per-variable workspaces.
package laplace

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/gwflow/grf/aquifer"
	"github.com/gwflow/grf/special"
)

// DefaultCutoff is the conditioning threshold used when Params.CutoffPrec
// is left zero. Matrix columns whose largest entry falls below it (or above
// its reciprocal) mark the first disk with no numerical influence.
const DefaultCutoff = 1e-20

// Params collects the aquifer and well description of one solver call.
type Params struct {
	// K and S give conductivity and storativity per disk (length N),
	// R the N+1 boundary radii; R[0] >= 0 is the well radius and
	// R[N] may be math.Inf(1) for an unbounded aquifer.
	K, S, R []float64

	Dim    float64 // flow dimension in (0, 3]
	LatExt float64 // lateral extent of the flow domain, in L^(3-dim)
	Rate   float64 // pumping rate at the well (signed)

	KWell      float64 // conductivity at the well; 0 means K[0]
	CutoffPrec float64 // conditioning threshold; 0 means DefaultCutoff
}

func (p Params) partition() aquifer.Partition {
	return aquifer.Partition{K: p.K, S: p.S, R: p.R}
}

// Solve evaluates the Laplace-space head for every transform variable in s
// at every radius in rad and returns the len(s) x len(rad) result matrix.
// Invalid input aborts with an error wrapping aquifer.ErrInvalidInput before
// any system is assembled; numerical degeneracies of single transform
// variables degrade to zero rows instead of failing the call.
func Solve(s, rad []float64, p Params) (*mat.Dense, error) {
	part := p.partition()
	kWell := p.KWell
	if kWell == 0 && len(p.K) > 0 {
		kWell = p.K[0]
	}
	cutoff := p.CutoffPrec
	if cutoff == 0 {
		cutoff = DefaultCutoff
	}
	if len(s) == 0 || len(rad) == 0 {
		return nil, fmt.Errorf("%w: empty transform-variable or radius set", aquifer.ErrInvalidInput)
	}
	if err := part.Validate(rad, p.Dim, p.LatExt, kWell); err != nil {
		return nil, err
	}

	nu := 1 - p.Dim/2
	kern := special.NewKernels(p.Dim)
	qs := pumpingSource(s, part, nu)

	res := mat.NewDense(len(s), len(rad), nil)
	var wg sync.WaitGroup
	wg.Add(len(s))
	for i := range s {
		go func(i int) {
			defer wg.Done()
			row := res.RawRowView(i)
			if part.Disks() == 1 {
				solveSingle(row, s[i], qs[i], rad, part, nu, kern)
			} else {
				solveMulti(row, s[i], qs[i], rad, part, nu, cutoff, kern)
			}
		}(i)
	}
	wg.Wait()

	// scale to the pumping rate; the algorithm tends to violate small
	// values, so remaining NaNs are zeroed
	scale := p.Rate / (kWell * special.SphereSurface(p.Dim) * math.Pow(p.LatExt, 3-p.Dim))
	for i := range s {
		row := res.RawRowView(i)
		for j := range row {
			if math.IsNaN(row[j]) {
				row[j] = 0
			}
			row[j] *= scale
		}
	}
	return res, nil
}

// pumpingSource returns the right-hand-side source term per transform
// variable. A positive well radius uses the finite-well flux condition, a
// zero radius the point-source asymptotic, which avoids the singularity at
// the origin through a gamma-function normalization.
func pumpingSource(s []float64, part aquifer.Partition, nu float64) []float64 {
	qs := make([]float64, len(s))
	dsr0 := part.DiffSqrt(0)
	if rw := part.WellRadius(); rw > 0 {
		f := math.Pow(rw, nu-1) / dsr0
		for i, se := range s {
			qs[i] = -math.Pow(se, -1.5) * f
		}
	} else {
		f := math.Pow(2/dsr0, nu) / math.Gamma(1-nu)
		for i, se := range s {
			qs[i] = f * math.Pow(se, -nu/2-1)
		}
	}
	return qs
}

// solveMulti handles one transform variable of the N > 1 case: assemble the
// banded interface system, truncate it to the numerically relevant disks,
// solve and evaluate. Every workspace is local to the call.
func solveMulti(row []float64, s, qs float64, rad []float64, part aquifer.Partition, nu, cutoff float64, kern special.Kernels) {
	m, cs := buildSystem(s, part, kern)
	first := EffectiveDiskCount(m, part.Disks(), cutoff)
	x := solveCoefficients(m, qs, part.Disks(), first)
	evalHeads(row, x, cs, rad, part, nu, cutoff, kern)
}
