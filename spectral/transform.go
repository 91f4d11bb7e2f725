package spectral

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Transform bundles a complex DFT and a real-input DFT of one fixed length,
// with the inverse normalization folded in. The two variants carry different
// frequency descriptors (grid1d.Wavenumbers vs grid1d.RealWavenumbers) and
// are never mixed on one signal.
type Transform struct {
	N    int
	cfft *fourier.CmplxFFT
	rfft *fourier.FFT
}

func NewTransform(n int) (xf *Transform) {
	xf = &Transform{
		N:    n,
		cfft: fourier.NewCmplxFFT(n),
		rfft: fourier.NewFFT(n),
	}
	return
}

// Forward computes the full-spectrum DFT of a real sequence, length N.
func (xf *Transform) Forward(u []float64) (c []complex128) {
	xf.check(len(u))
	seq := make([]complex128, xf.N)
	for i, val := range u {
		seq[i] = complex(val, 0)
	}
	c = xf.cfft.Coefficients(nil, seq)
	return
}

// Inverse transforms full-spectrum coefficients back to a real sequence,
// dividing out the length and discarding the imaginary residual, which is
// rounding noise for symbols that preserve conjugate symmetry and
// discretization noise (the unpaired Nyquist mode) for the odd derivatives.
func (xf *Transform) Inverse(c []complex128) (u []float64) {
	xf.check(len(c))
	seq := xf.cfft.Sequence(nil, c)
	u = make([]float64, xf.N)
	scale := 1 / float64(xf.N)
	for i, val := range seq {
		u[i] = real(val) * scale
	}
	return
}

// RealForward computes the half-spectrum DFT of a real sequence,
// length N/2+1.
func (xf *Transform) RealForward(u []float64) (c []complex128) {
	xf.check(len(u))
	c = xf.rfft.Coefficients(nil, u)
	return
}

// RealInverse is the matching inverse of RealForward, length N output.
func (xf *Transform) RealInverse(c []complex128) (u []float64) {
	if len(c) != xf.N/2+1 {
		panic(fmt.Errorf("spectral: coefficient length %d does not match transform half-spectrum length %d", len(c), xf.N/2+1))
	}
	u = xf.rfft.Sequence(nil, c)
	scale := 1 / float64(xf.N)
	for i := range u {
		u[i] *= scale
	}
	return
}

// ApplySymbol maps u through the frequency domain: forward transform,
// element-wise multiply by the transfer function values, inverse transform.
func (xf *Transform) ApplySymbol(u []float64, symbol []complex128) (du []float64) {
	xf.check(len(symbol))
	c := xf.Forward(u)
	for i := range c {
		c[i] *= symbol[i]
	}
	du = xf.Inverse(c)
	return
}

func (xf *Transform) check(n int) {
	if n != xf.N {
		panic(fmt.Errorf("spectral: sequence length %d does not match transform length %d", n, xf.N))
	}
}
