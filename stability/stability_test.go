package stability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/numlab/gowave/grid1d"
	"github.com/numlab/gowave/spectral"
	"github.com/numlab/gowave/timestep"
	"github.com/numlab/gowave/utils"
)

func TestLinearizeReconstructsOperator(t *testing.T) {
	// probing a known matrix-vector product must give back the matrix
	var (
		n = 4
		A = utils.NewMatrix(n, n, []float64{
			2, -1, 0, 0,
			-1, 2, -1, 0,
			0, -1, 2, -1,
			0, 0, -1, 2,
		})
		rhs = func(u utils.Vector) utils.Vector {
			out := utils.NewVector(n)
			for i := 0; i < n; i++ {
				var sum float64
				for j := 0; j < n; j++ {
					sum += A.At(i, j) * u.AtVec(j)
				}
				out.Set(i, sum)
			}
			return out
		}
	)
	M := Linearize(n, rhs)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.InDelta(t, A.At(i, j), M.At(i, j), 1.e-14)
		}
	}
}

func TestSpectralDerivativeSpectrum(t *testing.T) {
	// The periodic first-derivative operator is conservative: spectrum on
	// the imaginary axis. The unpaired Nyquist mode differentiates to zero
	// after the real-part projection, so the extreme is N/2-1 on a 2*pi
	// domain.
	var (
		n   = 16
		xf  = spectral.NewTransform(n)
		xi  = grid1d.Wavenumbers(n, 2*math.Pi)
		d1  = spectral.FirstDeriv(xi)
		rhs = func(u utils.Vector) utils.Vector {
			return utils.NewVector(n, xf.ApplySymbol(u.DataP(), d1))
		}
	)
	spectrum := Spectrum(Linearize(n, rhs))
	for _, z := range spectrum {
		assert.InDelta(t, 0, real(z), 1.e-10)
	}
	assert.InDelta(t, float64(n)/2-1, MaxImag(spectrum), 1.e-8)
}

func TestKdVStiffnessScaling(t *testing.T) {
	// Full KdV linearization frozen at the zero state: the dispersion term
	// dominates and max|lambda| tracks (m/2)^3.
	var (
		m   = 256
		xf  = spectral.NewTransform(m)
		xi  = grid1d.Wavenumbers(m, 2*math.Pi)
		d3  = spectral.ThirdDeriv(xi)
		rhs = func(u utils.Vector) utils.Vector {
			return utils.NewVector(m, xf.ApplySymbol(u.DataP(), d3)).Scale(-1)
		}
	)
	spectrum := Spectrum(Linearize(m, rhs))
	expected := math.Pow(float64(m)/2, 3)
	ratio := MaxAbs(spectrum) / expected
	assert.True(t, ratio > 0.5 && ratio < 2, "ratio = %v", ratio)
}

func TestMaxStableDt(t *testing.T) {
	// oscillator pair +/- 2i
	spectrum := []complex128{complex(0, 2), complex(0, -2)}
	dt, err := MaxStableDt(spectrum, timestep.Leapfrog)
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, dt, 1.e-14)

	dt, err = MaxStableDt(spectrum, timestep.SSPRK3)
	assert.NoError(t, err)
	assert.InDelta(t, SSPRK3ImagLimit/2, dt, 1.e-14)

	// force-operator eigenvalue -w^2 with w = 2: Stormer bound 2/w
	dt, err = MaxStableDt([]complex128{complex(-4, 0)}, timestep.Stormer)
	assert.NoError(t, err)
	assert.InDelta(t, 1, dt, 1.e-14)

	_, err = MaxStableDt(nil, timestep.Leapfrog)
	assert.Error(t, err)
}
