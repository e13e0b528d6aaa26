package laplace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/gwflow/grf/aquifer"
	"github.com/gwflow/grf/special"
)

// uniformBand fills every in-band entry of a 2*parts square system with v.
func uniformBand(parts int, v float64) *mat.BandDense {
	n := 2 * parts
	m := mat.NewBandDense(n, n, 2, 2, nil)
	for i := 0; i < n; i++ {
		for j := max(0, i-2); j <= min(n-1, i+2); j++ {
			m.SetBand(i, j, v)
		}
	}
	return m
}

func setColumn(m *mat.BandDense, n, j int, v float64) {
	for i := max(0, j-2); i <= min(n-1, j+2); i++ {
		m.SetBand(i, j, v)
	}
}

func TestEffectiveDiskCountNoCrossing(t *testing.T) {
	m := uniformBand(3, 1.0)
	assert.Equal(t, 3, EffectiveDiskCount(m, 3, 1e-20))
}

func TestEffectiveDiskCountUnderflowColumn(t *testing.T) {
	m := uniformBand(3, 1.0)
	setColumn(m, 6, 4, 1e-30)
	assert.Equal(t, 2, EffectiveDiskCount(m, 3, 1e-20))
}

func TestEffectiveDiskCountOverflowColumn(t *testing.T) {
	m := uniformBand(3, 1.0)
	setColumn(m, 6, 2, 1e30)
	assert.Equal(t, 1, EffectiveDiskCount(m, 3, 1e-20))

	m = uniformBand(3, 1.0)
	setColumn(m, 6, 2, math.Inf(1))
	assert.Equal(t, 1, EffectiveDiskCount(m, 3, 1e-20))
}

func TestEffectiveDiskCountFirstCrossingWins(t *testing.T) {
	m := uniformBand(4, 1.0)
	setColumn(m, 8, 6, 1e-30)
	setColumn(m, 8, 2, 1e-30) // earlier crossing takes precedence
	assert.Equal(t, 1, EffectiveDiskCount(m, 4, 1e-20))
}

func TestEffectiveDiskCountOddColumnFlagsItsDisk(t *testing.T) {
	// a crossing in a B column excludes that disk as well
	m := uniformBand(3, 1.0)
	setColumn(m, 6, 3, 1e-30)
	assert.Equal(t, 1, EffectiveDiskCount(m, 3, 1e-20))
}

func TestEffectiveDiskCountOnAssembledSystem(t *testing.T) {
	// a far-away interface drives the I-branch column of the inner disk
	// past 1/cutoff once the cutoff gets coarse
	part := aquifer.Partition{
		K: []float64{1e-3, 1e-3},
		S: []float64{1e-3, 1e-3},
		R: []float64{0, 13, math.Inf(1)},
	}
	require.NoError(t, part.Validate([]float64{1}, 2, 1, 1e-3))
	kern := special.NewKernels(2)

	m, _ := buildSystem(5, part, kern)
	assert.Equal(t, 2, EffectiveDiskCount(m, 2, 1e-20))
	assert.Equal(t, 0, EffectiveDiskCount(m, 2, 1e-8))
}
