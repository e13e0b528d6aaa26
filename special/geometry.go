package special

import "math"

// SphereSurface returns the surface area of the unit sphere in dim
// dimensions, 2*pi^(dim/2)/Gamma(dim/2). The dimension may be fractional,
// which is what gives the GRF model its generalized geometry.
func SphereSurface(dim float64) float64 {
	return 2 * math.Pow(math.Pi, dim/2) / math.Gamma(dim/2)
}
