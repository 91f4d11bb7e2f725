package grid1d

import (
	"errors"
	"fmt"
	"math"

	"github.com/numlab/gowave/utils"
)

var (
	ErrGridTooSmall = errors.New("grid1d: point count must be at least 3")
	ErrBadLength    = errors.New("grid1d: domain length must be positive")
	ErrDimension    = errors.New("grid1d: state length disagrees with grid size")
)

type BCType uint8

const (
	Fixed BCType = iota
	Periodic
)

var bc_names = []string{
	"Fixed Ends",
	"Periodic",
}

func (b BCType) String() string { return bc_names[b] }

// Grid is a uniformly spaced set of N sample points. Periodic grids cover
// [0,L) without the right endpoint; fixed-end chain grids include both
// endpoints, and those endpoints never move during a simulation.
type Grid struct {
	N      int
	L, Dx  float64
	BC     BCType
	X      utils.Vector
}

func NewPeriodic(n int, length float64) (g *Grid, err error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: n = %d", ErrGridTooSmall, n)
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: L = %v", ErrBadLength, length)
	}
	g = &Grid{
		N:  n,
		L:  length,
		Dx: length / float64(n),
		BC: Periodic,
	}
	x := make([]float64, n)
	for j := range x {
		x[j] = g.Dx * float64(j)
	}
	g.X = utils.NewVector(n, x)
	return
}

func NewChain(n int, x0, x1 float64) (g *Grid, err error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: n = %d", ErrGridTooSmall, n)
	}
	if x1 <= x0 {
		return nil, fmt.Errorf("%w: [%v,%v]", ErrBadLength, x0, x1)
	}
	g = &Grid{
		N:  n,
		L:  x1 - x0,
		Dx: (x1 - x0) / float64(n-1),
		BC: Fixed,
	}
	x := make([]float64, n)
	for j := range x {
		x[j] = x0 + g.Dx*float64(j)
	}
	g.X = utils.NewVector(n, x)
	return
}

// CheckState fails fast on a dimension mismatch rather than silently
// truncating or padding.
func (g *Grid) CheckState(u utils.Vector) error {
	if u.Len() != g.N {
		return fmt.Errorf("%w: len(u) = %d, N = %d", ErrDimension, u.Len(), g.N)
	}
	return nil
}

// Wavenumbers returns the full-spectrum wavenumbers xi_k = 2*pi*k/L in the
// native coefficient order of the complex DFT: 0, 1, ..., N/2, then the
// negative frequencies -(N-1)/2, ..., -1. Transfer functions must be
// evaluated element-wise against this exact ordering.
func Wavenumbers(n int, length float64) (xi []float64) {
	xi = make([]float64, n)
	scale := 2 * math.Pi / length
	for k := 0; k <= n/2; k++ {
		xi[k] = scale * float64(k)
	}
	for k := n/2 + 1; k < n; k++ {
		xi[k] = scale * float64(k-n)
	}
	return
}

// RealWavenumbers returns the half-spectrum wavenumbers matching the
// real-input transform output, length n/2+1. Never mix these with the
// full-spectrum transform or vice versa.
func RealWavenumbers(n int, length float64) (xi []float64) {
	xi = make([]float64, n/2+1)
	scale := 2 * math.Pi / length
	for k := range xi {
		xi[k] = scale * float64(k)
	}
	return
}
