//go:build cgo && netlib
// +build cgo,netlib

package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

// Built with -tags netlib, dense matrix products and the eigensolver run on
// the system BLAS instead of the pure Go implementation. Worth it for the
// O(N^3) stability eigendecompositions, irrelevant for the step loop.
func init() {
	blas64.Use(netblas.Implementation{})
	fmt.Println("Using netlib to accelerate BLAS")
}
