package flow

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gwflow/grf/aquifer"
	"github.com/gwflow/grf/special"
)

// Theis computes the transient head change of the classic confined-aquifer
// solution (homogeneous, two-dimensional, zero well radius, unbounded) at
// every (time, radius) pair:
//
//	h(t, r) = rate/(4 pi T) * E1(r^2 S / (4 T t))
//
// It is the closed form of the GRF model at dim = 2 with a single disk and
// serves as an independent reference for the Laplace pipeline.
func Theis(times, rad []float64, storage, transmissivity, rate float64) (*mat.Dense, error) {
	if len(times) == 0 || len(rad) == 0 {
		return nil, fmt.Errorf("%w: empty time or radius set", aquifer.ErrInvalidInput)
	}
	if !(storage > 0) {
		return nil, fmt.Errorf("%w: %w (S=%g)", aquifer.ErrInvalidInput, aquifer.ErrNonPositiveS, storage)
	}
	if !(transmissivity > 0) {
		return nil, fmt.Errorf("%w: %w (T=%g)", aquifer.ErrInvalidInput, aquifer.ErrNonPositiveK, transmissivity)
	}
	for _, r := range rad {
		if !(r > 0) {
			return nil, fmt.Errorf("%w: %w (rad=%g)", aquifer.ErrInvalidInput, aquifer.ErrRadiusOutOfRange, r)
		}
	}
	res := mat.NewDense(len(times), len(rad), nil)
	fac := rate / (4 * math.Pi * transmissivity)
	for i, t := range times {
		row := res.RawRowView(i)
		for j, r := range rad {
			if t > 0 {
				u := r * r * storage / (4 * transmissivity * t)
				row[j] = fac * special.ExpE1(u)
			}
		}
	}
	return res, nil
}

// Thiem computes the steady-state head difference of a homogeneous
// two-dimensional aquifer relative to the reference radius rRef.
func Thiem(rad []float64, rRef, transmissivity, rate float64) ([]float64, error) {
	return GRFSteady(rad, rRef, transmissivity, 2, 1, rate)
}
