package utils

import (
	"gonum.org/v1/gonum/mat"
)

// For getting eigenvalues (needed for stability analysis of semi-discrete
// operators). The full complex spectrum is returned: conservative operators
// land on the imaginary axis, dissipative ones pick up negative real parts.
func (m Matrix) Eigenvalues() []complex128 {
	dense := m.M
	rows, cols := dense.Dims()

	if rows != cols {
		panic("Eigenvalues only defined for square matrices")
	}

	var eigen mat.Eigen
	if !eigen.Factorize(dense, mat.EigenRight) {
		return nil
	}

	return eigen.Values(nil)
}
