package special

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModBesselIKIntegerOrders(t *testing.T) {
	// reference values from Abramowitz & Stegun tables
	cases := []struct {
		nu, x, i, k float64
	}{
		{0, 1, 1.2660658777520084, 0.42102443824070834},
		{1, 1, 0.5651591039924851, 0.6019072301972346},
		{0, 2.5, 3.2898391440501231, 0.0623475532002869},
		{1, 2.5, 2.5167162452886984, 0.0738908163477519},
	}
	for _, c := range cases {
		i, k := ModBesselIK(c.nu, c.x)
		assert.InEpsilon(t, c.i, i, 1e-8, "I_%g(%g)", c.nu, c.x)
		assert.InEpsilon(t, c.k, k, 1e-8, "K_%g(%g)", c.nu, c.x)
	}
}

func TestModBesselIKHalfOrder(t *testing.T) {
	// half-integer orders have elementary closed forms
	for _, x := range []float64{0.3, 1.0, 1.7, 6.0} {
		i, k := ModBesselIK(0.5, x)
		wantI := math.Sqrt(2/(math.Pi*x)) * math.Sinh(x)
		wantK := math.Sqrt(math.Pi/(2*x)) * math.Exp(-x)
		assert.InEpsilon(t, wantI, i, 1e-10, "I_1/2(%g)", x)
		assert.InEpsilon(t, wantK, k, 1e-10, "K_1/2(%g)", x)
	}
}

func TestModBesselIKWronskian(t *testing.T) {
	// I_nu(x) K_{nu+1}(x) + I_{nu+1}(x) K_nu(x) = 1/x
	for _, nu := range []float64{0, 0.25, 0.3, 0.75} {
		for _, x := range []float64{0.1, 1, 3, 10} {
			i0, k0 := ModBesselIK(nu, x)
			i1, k1 := ModBesselIK(nu+1, x)
			assert.InEpsilon(t, 1/x, i0*k1+i1*k0, 1e-10,
				"Wronskian nu=%g x=%g", nu, x)
		}
	}
}

func TestModINegativeOrder(t *testing.T) {
	// integer orders collapse, fractional ones pick up the K term
	for _, x := range []float64{0.5, 1, 4} {
		assert.InEpsilon(t, ModI(1, x), ModI(-1, x), 1e-12)

		wantHalf := math.Sqrt(2/(math.Pi*x)) * math.Cosh(x)
		assert.InEpsilon(t, wantHalf, ModI(-0.5, x), 1e-10, "I_-1/2(%g)", x)
	}
}

func TestModKEvenInOrder(t *testing.T) {
	for _, x := range []float64{0.2, 1, 5} {
		assert.InEpsilon(t, ModK(0.3, x), ModK(-0.3, x), 1e-14)
	}
}

func TestModBesselIKExtremes(t *testing.T) {
	// overflow/underflow degrades instead of failing
	i, k := ModBesselIK(0, 800)
	assert.True(t, math.IsInf(i, 1), "I_0(800) should overflow to +Inf")
	assert.Equal(t, 0.0, k, "K_0(800) should underflow to 0")

	i, k = ModBesselIK(0, 0)
	assert.Equal(t, 1.0, i)
	assert.True(t, math.IsInf(k, 1))

	i, k = ModBesselIK(0.5, 0)
	assert.Equal(t, 0.0, i)
	assert.True(t, math.IsInf(k, 1))
}

func TestModBesselIKTinyArgument(t *testing.T) {
	// leading-order asymptotics at x -> 0
	x := 1e-8
	i, k := ModBesselIK(0, x)
	require.InEpsilon(t, 1.0, i, 1e-10)
	require.InEpsilon(t, -math.Log(x/2)-0.5772156649015329, k, 1e-8)

	i, k = ModBesselIK(0.3, x)
	require.InEpsilon(t, math.Pow(x/2, 0.3)/math.Gamma(1.3), i, 1e-8)
	// the subleading K term is O((x/2)^(2 nu)) ~ 1e-5 here
	require.InEpsilon(t, 0.5*math.Gamma(0.3)*math.Pow(2/x, 0.3), k, 1e-4)
}

func TestKernelsOrders(t *testing.T) {
	// dim = 2 gives nu = 0, so the kernel set reduces to K0/I0 and K1/I1
	ks := NewKernels(2)
	assert.Equal(t, 0.0, ks.Nu)
	x := 1.3
	i0, k0 := ModBesselIK(0, x)
	i1, k1 := ModBesselIK(1, x)
	assert.InEpsilon(t, k0, ks.KNu(x), 1e-14)
	assert.InEpsilon(t, i0, ks.INu(x), 1e-14)
	assert.InEpsilon(t, k1, ks.KNu1(x), 1e-14)
	assert.InEpsilon(t, i1, ks.INu1(x), 1e-14)
}
