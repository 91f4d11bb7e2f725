// Package FPUT1D is the Fermi-Pasta-Ulam-Tsingou spring chain: N masses
// coupled by linear springs with an optional quadratic nonlinearity, fixed
// ends, advanced by the explicit centered second-order (Stormer) scheme.
package FPUT1D

import (
	"fmt"
	"math"
	"strings"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/numlab/gowave/grid1d"
	"github.com/numlab/gowave/stability"
	"github.com/numlab/gowave/timestep"
	"github.com/numlab/gowave/trace"
	"github.com/numlab/gowave/utils"
)

type ModelType uint8

const (
	Linear ModelType = iota
	Nonlinear
)

var model_names = []string{
	"Linear Spring Chain",
	"Nonlinear Spring Chain (quadratic coupling)",
}

func (m ModelType) String() string { return model_names[m] }

func ParseModelType(s string) (m ModelType, err error) {
	switch strings.ToLower(s) {
	case "linear", "linear-chain":
		m = Linear
	case "nonlinear", "nonlinear-chain":
		m = Nonlinear
	default:
		err = fmt.Errorf("FPUT1D: unknown governing-equation selector %q", s)
	}
	return
}

type Chain struct {
	// Input parameters
	K, Mass, Alpha, Dt float64
	Grid               *grid1d.Grid
	Model              ModelType
	lap                *sparse.CSR
}

// NewChain validates the configuration and assembles the interior
// second-difference operator once, as a sparse tridiagonal matrix. Rows for
// the two boundary points are left empty: those points are clamped and
// never receive force.
func NewChain(model ModelType, n int, k, mass, alpha, dt float64) (c *Chain, err error) {
	if model > Nonlinear {
		return nil, fmt.Errorf("FPUT1D: unknown model type %d", model)
	}
	if dt <= 0 {
		return nil, fmt.Errorf("FPUT1D: time step must be positive, got %v", dt)
	}
	if k <= 0 || mass <= 0 {
		return nil, fmt.Errorf("FPUT1D: spring constant and mass must be positive, got k = %v, m = %v", k, mass)
	}
	g, err := grid1d.NewChain(n, 0, float64(n-1))
	if err != nil {
		return nil, err
	}
	c = &Chain{
		K:     k,
		Mass:  mass,
		Alpha: alpha,
		Dt:    dt,
		Grid:  g,
		Model: model,
	}
	dok := sparse.NewDOK(n, n)
	for j := 1; j < n-1; j++ {
		dok.Set(j, j-1, 1)
		dok.Set(j, j, -2)
		dok.Set(j, j+1, 1)
	}
	c.lap = dok.ToCSR()
	return
}

// Force is the discretized acceleration at every point: the linear spring
// term (K/Mass)*(u[j+1]-2u[j]+u[j-1]) plus, for the nonlinear model,
// Alpha*((u[j+1]-u[j])^2-(u[j]-u[j-1])^2). Endpoints get zero. No
// wraparound.
func (c *Chain) Force(u utils.Vector) (f utils.Vector) {
	if err := c.Grid.CheckState(u); err != nil {
		panic(err)
	}
	var (
		n = c.Grid.N
		v mat.VecDense
	)
	v.MulVec(c.lap, u.V)
	f = utils.Vector{V: &v}
	f.Scale(c.K / c.Mass)
	if c.Model == Nonlinear {
		var (
			ud = u.DataP()
			fd = f.DataP()
		)
		for j := 1; j < n-1; j++ {
			dr := ud[j+1] - ud[j]
			dl := ud[j] - ud[j-1]
			fd[j] += c.Alpha * (dr*dr - dl*dl)
		}
	}
	return
}

// LinearOperator is the dense matrix of the force operator frozen at the
// equilibrium state, for offline eigenvalue analysis. For the linear chain
// this is exact and its spectrum is real and non-positive.
func (c *Chain) LinearOperator() utils.Matrix {
	return stability.Linearize(c.Grid.N, c.Force)
}

// SineInit perturbs the equilibrium positions sinusoidally in the given
// mode, zero at both clamped ends.
func (c *Chain) SineInit(amplitude float64, mode int) (u0 utils.Vector) {
	n := c.Grid.N
	u0 = utils.NewVector(n)
	for j := 1; j < n-1; j++ {
		u0.Set(j, amplitude*math.Sin(float64(mode)*math.Pi*float64(j)/float64(n-1)))
	}
	return
}

// Run advances the chain for the given number of steps, recording every
// stride-th snapshot. The first step has no previous-displacement
// information, so it is seeded with the zero-velocity bootstrap: the first
// two stored states are identical to the initial condition.
func (c *Chain) Run(u0 utils.Vector, steps, stride int) (h *trace.History, err error) {
	if err = c.Grid.CheckState(u0); err != nil {
		return nil, err
	}
	if steps < 1 {
		return nil, fmt.Errorf("FPUT1D: step count must be at least 1, got %d", steps)
	}
	if h, err = trace.NewHistory(c.Grid.N, stride, steps); err != nil {
		return nil, err
	}
	var (
		uPrev = u0.Copy()
		uCur  = u0.Copy()
		n     = c.Grid.N
	)
	h.Record(0, steps, 0, uPrev)
	h.Record(1, steps, c.Dt, uCur)
	for step := 2; step <= steps; step++ {
		uNew := timestep.StormerStep(uPrev, uCur, c.Dt, c.Force, 1, n-1)
		uPrev, uCur = uCur, uNew
		h.Record(step, steps, c.Dt*float64(step), uCur)
	}
	return
}
