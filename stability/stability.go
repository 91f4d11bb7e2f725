// Package stability builds dense matrix representations of semi-discrete
// operators by probing them against the standard basis and reasons about
// explicit time-step limits from their eigenvalue spectra. This is offline
// analysis: O(N) operator evaluations plus an O(N^3) eigendecomposition,
// meant for diagnostic grid sizes, not production runs.
package stability

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/numlab/gowave/timestep"
	"github.com/numlab/gowave/utils"
)

// Imaginary-axis extents of the linear stability regions. Leapfrog applied
// to y' = i*w*y is neutrally stable for |w*dt| <= 1 and has no real-axis
// extent at all; SSP-RK3 covers the imaginary axis out to sqrt(3).
const (
	LeapfrogImagLimit = 1.0
	SSPRK3ImagLimit   = 1.7320508075688772
)

// Linearize collects rhs applied to each standard basis vector as the
// columns of a dense n x n matrix. For a state-dependent rhs the caller
// freezes it at one state first; nonzero real parts in the resulting
// spectrum are then a diagnostic signal, not an error.
func Linearize(n int, rhs timestep.RHS) (m utils.Matrix) {
	m = utils.NewMatrix(n, n)
	for j := 0; j < n; j++ {
		e := utils.NewVector(n)
		e.Set(j, 1)
		m.SetCol(j, rhs(e).DataP())
	}
	return
}

// Spectrum returns the complex eigenvalues of a linearized operator.
func Spectrum(m utils.Matrix) []complex128 {
	return m.Eigenvalues()
}

func MaxAbs(spectrum []complex128) (max float64) {
	for _, z := range spectrum {
		if r := cmplx.Abs(z); r > max {
			max = r
		}
	}
	return
}

func MaxImag(spectrum []complex128) (max float64) {
	for _, z := range spectrum {
		if im := math.Abs(imag(z)); im > max {
			max = im
		}
	}
	return
}

// MaxStableDt intersects the scaled spectrum with the chosen integrator's
// stability region and returns the largest stable step. For Stormer the
// spectrum is that of the force operator of u'' = A u, whose eigenvalues
// -w^2 give the bound dt <= 2/w_max.
func MaxStableDt(spectrum []complex128, scheme timestep.Type) (dt float64, err error) {
	switch scheme {
	case timestep.Leapfrog, timestep.Midpoint:
		if m := MaxImag(spectrum); m > 0 {
			dt = LeapfrogImagLimit / m
		}
	case timestep.SSPRK3:
		if m := MaxAbs(spectrum); m > 0 {
			dt = SSPRK3ImagLimit / m
		}
	case timestep.Stormer:
		if m := MaxAbs(spectrum); m > 0 {
			dt = 2 / math.Sqrt(m)
		}
	default:
		err = fmt.Errorf("stability: no stability region known for integrator %d", scheme)
	}
	if dt == 0 && err == nil {
		err = fmt.Errorf("stability: zero spectrum, no step bound")
	}
	return
}
