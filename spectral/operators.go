package spectral

import "math"

// Frequency-domain transfer functions. Each is a pure function of the
// wavenumber descriptor, evaluated element-wise in the descriptor's native
// ordering, so the products align with the transform output.

// FirstDeriv is the symbol of d/dx: i*xi.
func FirstDeriv(xi []float64) (symbol []complex128) {
	symbol = make([]complex128, len(xi))
	for k, x := range xi {
		symbol[k] = complex(0, x)
	}
	return
}

// SecondDeriv is the symbol of d2/dx2: -xi^2. Used for the diffusion term.
func SecondDeriv(xi []float64) (symbol []complex128) {
	symbol = make([]complex128, len(xi))
	for k, x := range xi {
		symbol[k] = complex(-x*x, 0)
	}
	return
}

// ThirdDeriv is the symbol of d3/dx3: -i*xi^3. Used for the KdV dispersion
// term.
func ThirdDeriv(xi []float64) (symbol []complex128) {
	symbol = make([]complex128, len(xi))
	for k, x := range xi {
		symbol[k] = complex(0, -x*x*x)
	}
	return
}

// FilteredDispersion is the modified-KdV replacement for ThirdDeriv:
// -i*sin(xi^3*dt)/dt. It agrees with ThirdDeriv as xi^3*dt -> 0 but caps the
// operator magnitude at 1/dt, removing the (N/2)^3 stiffness that the exact
// dispersion symbol forces on an explicit integrator.
func FilteredDispersion(xi []float64, dt float64) (symbol []complex128) {
	symbol = make([]complex128, len(xi))
	for k, x := range xi {
		symbol[k] = complex(0, -math.Sin(x*x*x*dt)/dt)
	}
	return
}
