// Package flow exposes ready-to-use groundwater-flow solutions on top of the
// Laplace-space GRF solver: the transient multi-disk model through Stehfest
// inversion, plus the classic homogeneous closed forms used as references.
package flow

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gwflow/grf/aquifer"
	"github.com/gwflow/grf/invert"
	"github.com/gwflow/grf/laplace"
	"github.com/gwflow/grf/special"
)

// ExtGRF computes the time-domain head of the extended GRF model at every
// (time, radius) pair by inverting the Laplace-space solution. degree is the
// Stehfest degree (0 picks the default). The result is len(times) x len(rad).
func ExtGRF(times, rad []float64, p laplace.Params, degree int) (*mat.Dense, error) {
	// validate eagerly so bad input fails before the quadrature runs
	if _, err := laplace.Solve([]float64{1}, rad, p); err != nil {
		return nil, err
	}
	eval := func(s []float64) (*mat.Dense, error) {
		return laplace.Solve(s, rad, p)
	}
	return invert.Stehfest(eval, times, degree)
}

// GRFSteady computes the steady-state head difference of the GRF model
// relative to the reference radius rRef, for a homogeneous conductivity k.
// dim = 2 reduces to Thiem's logarithmic solution.
func GRFSteady(rad []float64, rRef, k, dim, latExt, rate float64) ([]float64, error) {
	if !(k > 0) {
		return nil, fmt.Errorf("%w: %w (K=%g)", aquifer.ErrInvalidInput, aquifer.ErrNonPositiveK, k)
	}
	if !(dim > 0) || dim > 3 {
		return nil, fmt.Errorf("%w: %w (dim=%g)", aquifer.ErrInvalidInput, aquifer.ErrBadDimension, dim)
	}
	if !(latExt > 0) {
		return nil, fmt.Errorf("%w: %w (latExt=%g)", aquifer.ErrInvalidInput, aquifer.ErrBadLatExt, latExt)
	}
	if !(rRef > 0) {
		return nil, fmt.Errorf("%w: %w (rRef=%g)", aquifer.ErrInvalidInput, aquifer.ErrRadiusOutOfRange, rRef)
	}
	// opposite sign to the transient scaling: the head gradient drives
	// flow towards the well, so extraction (negative rate) lowers the
	// head inside the reference radius
	scale := -rate / (k * special.SphereSurface(dim) * math.Pow(latExt, 3-dim))
	res := make([]float64, len(rad))
	for i, r := range rad {
		if !(r > 0) {
			return nil, fmt.Errorf("%w: %w (rad=%g)", aquifer.ErrInvalidInput, aquifer.ErrRadiusOutOfRange, r)
		}
		if dim == 2 {
			res[i] = scale * math.Log(r/rRef)
		} else {
			e := 2 - dim
			res[i] = scale * (math.Pow(r, e) - math.Pow(rRef, e)) / e
		}
	}
	return res, nil
}
