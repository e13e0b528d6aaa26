// Package special provides the scalar special functions used by the GRF
// solver: modified Bessel functions of real order, the exponential integral
// and the unit-sphere surface for fractional dimensions.
package special

import "math"

const (
	besselEps   = 1e-16
	besselFPMin = 1e-300
	besselMaxIt = 10000
	besselXMin  = 2.0
)

// ModBesselIK computes the modified Bessel functions I_nu(x) and K_nu(x)
// for order nu >= 0 and argument x > 0. For x below 2 the K values come from
// the Temme series, above that from Steed's continued fraction; I follows
// from the Wronskian I_mu*K'_mu - I'_mu*K_mu = -1/x.
//
// Extremes degrade instead of failing: x <= 0 yields (0 or 1, +Inf), a huge
// argument yields (+Inf, 0). The solver's condition guard is responsible for
// keeping such values out of the solved system.
func ModBesselIK(nu, x float64) (i, k float64) {
	if nu < 0 {
		panic("special: negative order in ModBesselIK")
	}
	if x <= 0 {
		if nu == 0 {
			return 1, math.Inf(1)
		}
		return 0, math.Inf(1)
	}

	nl := int(nu + 0.5)
	xmu := nu - float64(nl) // in [-1/2, 1/2]
	xmu2 := xmu * xmu
	xi := 1.0 / x
	xi2 := 2.0 * xi

	// CF1 for I'_nu/I_nu
	h := nu * xi
	if h < besselFPMin {
		h = besselFPMin
	}
	b := xi2 * nu
	d := 0.0
	c := h
	for it := 0; it < besselMaxIt; it++ {
		b += xi2
		d = 1.0 / (b + d)
		c = b + 1.0/c
		del := c * d
		h = del * h
		if math.Abs(del-1.0) < besselEps {
			break
		}
	}

	// downward recurrence on an arbitrary scale, keeping the value at the
	// requested order for rescaling afterwards
	ril := besselFPMin
	ripl := h * ril
	ril1 := ril
	fact := nu * xi
	for l := nl; l >= 1; l-- {
		ritemp := fact*ril + ripl
		fact -= xi
		ripl = fact*ritemp + ril
		ril = ritemp
	}
	f := ripl / ril

	var rkmu, rk1 float64
	if x < besselXMin {
		// Temme series
		x2 := 0.5 * x
		pimu := math.Pi * xmu
		fct := 1.0
		if math.Abs(pimu) >= besselEps {
			fct = pimu / math.Sin(pimu)
		}
		dd := -math.Log(x2)
		e := xmu * dd
		fct2 := 1.0
		if math.Abs(e) >= besselEps {
			fct2 = math.Sinh(e) / e
		}
		gam1, gam2, gampl, gammi := temmeGamma(xmu)
		ff := fct * (gam1*math.Cosh(e) + gam2*fct2*dd)
		sum := ff
		e = math.Exp(e)
		p := 0.5 * e / gampl
		q := 0.5 / (e * gammi)
		cc := 1.0
		dd = x2 * x2
		sum1 := p
		for it := 1; it <= besselMaxIt; it++ {
			fi := float64(it)
			ff = (fi*ff + p + q) / (fi*fi - xmu2)
			cc *= dd / fi
			p /= fi - xmu
			q /= fi + xmu
			del := cc * ff
			sum += del
			sum1 += cc * (p - fi*ff)
			if math.Abs(del) < math.Abs(sum)*besselEps {
				break
			}
		}
		rkmu = sum
		rk1 = sum1 * xi2
	} else {
		// Steed's CF2
		b := 2.0 * (1.0 + x)
		d := 1.0 / b
		delh := d
		h2 := d
		q1 := 0.0
		q2 := 1.0
		a1 := 0.25 - xmu2
		q := a1
		cc := a1
		a := -a1
		s := 1.0 + q*delh
		for it := 2; it <= besselMaxIt; it++ {
			a -= 2 * float64(it-1)
			cc = -a * cc / float64(it)
			qnew := (q1 - b*q2) / a
			q1 = q2
			q2 = qnew
			q += cc * qnew
			b += 2.0
			d = 1.0 / (b + a*d)
			delh = (b*d - 1.0) * delh
			h2 += delh
			dels := q * delh
			s += dels
			if math.Abs(dels/s) < besselEps {
				break
			}
		}
		h2 = a1 * h2
		rkmu = math.Sqrt(math.Pi/(2.0*x)) * math.Exp(-x) / s
		rk1 = rkmu * (xmu + x + 0.5 - h2) * xi
	}

	rkmup := xmu*xi*rkmu - rk1
	rimu := xi / (f*rkmu - rkmup)
	i = rimu * ril1 / ril
	for l := 1; l <= nl; l++ {
		rktemp := (xmu+float64(l))*xi2*rk1 + rkmu
		rkmu = rk1
		rk1 = rktemp
	}
	k = rkmu
	return i, k
}

// temmeGamma returns the auxiliary gamma terms of Temme's series:
// gam1 = (1/Gamma(1-mu) - 1/Gamma(1+mu))/(2 mu), gam2 the even counterpart,
// gampl = 1/Gamma(1+mu) and gammi = 1/Gamma(1-mu), for |mu| <= 1/2.
func temmeGamma(mu float64) (gam1, gam2, gampl, gammi float64) {
	gampl = 1 / math.Gamma(1+mu)
	gammi = 1 / math.Gamma(1-mu)
	if math.Abs(mu) < 1e-3 {
		// subtractive cancellation region: Taylor terms of 1/Gamma(1+mu)
		const (
			g1 = 0.5772156649015329  // Euler-Mascheroni
			g3 = -0.0420026350340952 // cubic coefficient
		)
		gam1 = -(g1 + g3*mu*mu)
	} else {
		gam1 = (gammi - gampl) / (2 * mu)
	}
	gam2 = (gammi + gampl) / 2
	return gam1, gam2, gampl, gammi
}

// ModI evaluates I_order(x) for any real order. Negative non-integer orders
// use I_{-a} = I_a + (2/pi) sin(a pi) K_a; negative integer orders collapse
// to I_{-n} = I_n.
func ModI(order, x float64) float64 {
	if order >= 0 {
		i, _ := ModBesselIK(order, x)
		return i
	}
	a := -order
	if a == math.Trunc(a) {
		i, _ := ModBesselIK(a, x)
		return i
	}
	i, k := ModBesselIK(a, x)
	return i + 2/math.Pi*math.Sin(a*math.Pi)*k
}

// ModK evaluates K_order(x) for any real order, using K_{-nu} = K_nu.
func ModK(order, x float64) float64 {
	_, k := ModBesselIK(math.Abs(order), x)
	return k
}

// Kernels bundles the four modified-Bessel evaluators of the GRF model for a
// given flow dimension: order nu = 1 - dim/2 and the derivative order nu - 1.
type Kernels struct {
	Nu float64
}

// NewKernels builds the kernel set for flow dimension dim.
func NewKernels(dim float64) Kernels {
	return Kernels{Nu: 1 - dim/2}
}

// KNu evaluates K_nu(x).
func (ks Kernels) KNu(x float64) float64 { return ModK(ks.Nu, x) }

// KNu1 evaluates K_{nu-1}(x).
func (ks Kernels) KNu1(x float64) float64 { return ModK(ks.Nu-1, x) }

// INu evaluates I_nu(x).
func (ks Kernels) INu(x float64) float64 { return ModI(ks.Nu, x) }

// INu1 evaluates I_{nu-1}(x).
func (ks Kernels) INu1(x float64) float64 { return ModI(ks.Nu-1, x) }
