// Package Spectral1D integrates 1D periodic evolution equations with a
// pseudospectral right hand side: derivatives are DFT multiplications in
// frequency space, nonlinear products are formed in physical space. One
// solver covers linear advection-diffusion, variable-coefficient advection,
// Burgers, KdV and the modified (frequency-filtered) KdV scheme; the
// governing equation is picked once at construction, not per step.
package Spectral1D

import (
	"fmt"
	"math"
	"strings"

	"github.com/numlab/gowave/grid1d"
	"github.com/numlab/gowave/spectral"
	"github.com/numlab/gowave/timestep"
	"github.com/numlab/gowave/trace"
	"github.com/numlab/gowave/utils"
)

type Equation uint8

const (
	AdvectionDiffusion Equation = iota
	VarAdvection
	Burgers
	KdV
	ModKdV
)

var equation_names = []string{
	"Linear Advection-Diffusion",
	"Variable-Coefficient Advection",
	"Burgers",
	"KdV",
	"Modified KdV (filtered dispersion)",
}

func (e Equation) String() string { return equation_names[e] }

func ParseEquation(s string) (e Equation, err error) {
	switch strings.ToLower(s) {
	case "advection-diffusion", "advdiff":
		e = AdvectionDiffusion
	case "variable-coefficient-advection", "varadvect":
		e = VarAdvection
	case "burgers":
		e = Burgers
	case "kdv":
		e = KdV
	case "modified-kdv", "modkdv":
		e = ModKdV
	default:
		err = fmt.Errorf("Spectral1D: unknown governing-equation selector %q", s)
	}
	return
}

type Solver struct {
	// Input parameters
	Epsilon, Dt float64
	Grid        *grid1d.Grid
	Eq          Equation
	// Precomputed operators
	xf          *spectral.Transform
	d1, d2, d3f []complex128
	d3          []complex128
	a           utils.Vector // a(x) = 0.2 + cos^2(x), VarAdvection only
	rhs         timestep.RHS
	scheme      timestep.Type
}

// NewSolver builds the periodic grid, the frequency descriptor in the
// transform's native ordering and the symbol tables, then binds the right
// hand side and integrator for the chosen equation.
func NewSolver(eq Equation, n int, length, epsilon, dt float64) (s *Solver, err error) {
	if eq > ModKdV {
		return nil, fmt.Errorf("Spectral1D: unknown equation %d", eq)
	}
	if dt <= 0 {
		return nil, fmt.Errorf("Spectral1D: time step must be positive, got %v", dt)
	}
	g, err := grid1d.NewPeriodic(n, length)
	if err != nil {
		return nil, err
	}
	xi := grid1d.Wavenumbers(n, length)
	s = &Solver{
		Epsilon: epsilon,
		Dt:      dt,
		Grid:    g,
		Eq:      eq,
		xf:      spectral.NewTransform(n),
		d1:      spectral.FirstDeriv(xi),
		d2:      spectral.SecondDeriv(xi),
		d3:      spectral.ThirdDeriv(xi),
		d3f:     spectral.FilteredDispersion(xi, dt),
	}
	switch eq {
	case AdvectionDiffusion:
		// The diffusion term puts eigenvalues on the negative real axis,
		// outside the leapfrog region, so this one steps with SSP-RK3.
		s.rhs = s.rhsAdvectionDiffusion
		s.scheme = timestep.SSPRK3
	case VarAdvection:
		s.a = g.X.Copy().Apply(func(x float64) float64 {
			c := math.Cos(x)
			return 0.2 + c*c
		})
		s.rhs = s.rhsVarAdvection
		s.scheme = timestep.Leapfrog
	case Burgers:
		s.rhs = s.rhsBurgers
		s.scheme = timestep.SSPRK3
	case KdV:
		s.rhs = s.rhsKdV
		s.scheme = timestep.SSPRK3
	case ModKdV:
		s.rhs = s.rhsModKdV
		s.scheme = timestep.Midpoint
	}
	return
}

// RHS evaluates the bound right hand side; exposed so the stability
// analyzer can probe it frozen at a state of interest.
func (s *Solver) RHS(u utils.Vector) utils.Vector { return s.rhs(u) }

// Scheme reports the integrator the equation is stepped with.
func (s *Solver) Scheme() timestep.Type { return s.scheme }

// SetScheme overrides the default integrator binding. Stormer advances
// second-order-in-time systems only and is rejected here.
func (s *Solver) SetScheme(t timestep.Type) error {
	if t == timestep.Stormer {
		return fmt.Errorf("Spectral1D: %s does not apply to first-order-in-time equations", t)
	}
	s.scheme = t
	return nil
}

// u_t = -u_x + epsilon*u_xx
func (s *Solver) rhsAdvectionDiffusion(u utils.Vector) utils.Vector {
	s.checkState(u)
	var (
		n  = s.Grid.N
		du = s.xf.ApplySymbol(u.DataP(), s.d1)
		d2 = s.xf.ApplySymbol(u.DataP(), s.d2)
	)
	f := make([]float64, n)
	for j := range f {
		f[j] = -du[j] + s.Epsilon*d2[j]
	}
	return utils.NewVector(n, f)
}

// u_t = -a(x)*u_x with a(x) = 0.2 + cos^2(x)
func (s *Solver) rhsVarAdvection(u utils.Vector) utils.Vector {
	s.checkState(u)
	var (
		n  = s.Grid.N
		du = s.xf.ApplySymbol(u.DataP(), s.d1)
		ad = s.a.DataP()
	)
	f := make([]float64, n)
	for j := range f {
		f[j] = -ad[j] * du[j]
	}
	return utils.NewVector(n, f)
}

// u_t = -u*u_x + epsilon*u_xx
func (s *Solver) rhsBurgers(u utils.Vector) utils.Vector {
	s.checkState(u)
	var (
		n  = s.Grid.N
		ud = u.DataP()
		du = s.xf.ApplySymbol(ud, s.d1)
		d2 = s.xf.ApplySymbol(ud, s.d2)
	)
	f := make([]float64, n)
	for j := range f {
		f[j] = -ud[j]*du[j] + s.Epsilon*d2[j]
	}
	return utils.NewVector(n, f)
}

// u_t = -u*u_x - u_xxx
func (s *Solver) rhsKdV(u utils.Vector) utils.Vector {
	s.checkState(u)
	var (
		n   = s.Grid.N
		ud  = u.DataP()
		du  = s.xf.ApplySymbol(ud, s.d1)
		d3u = s.xf.ApplySymbol(ud, s.d3)
	)
	f := make([]float64, n)
	for j := range f {
		f[j] = -ud[j]*du[j] - d3u[j]
	}
	return utils.NewVector(n, f)
}

// Same as rhsKdV with the dispersion symbol replaced by the filtered
// -i*sin(xi^3*dt)/dt operator, which keeps the midpoint scheme out of the
// stiff regime.
func (s *Solver) rhsModKdV(u utils.Vector) utils.Vector {
	s.checkState(u)
	var (
		n   = s.Grid.N
		ud  = u.DataP()
		du  = s.xf.ApplySymbol(ud, s.d1)
		d3u = s.xf.ApplySymbol(ud, s.d3f)
	)
	f := make([]float64, n)
	for j := range f {
		f[j] = -ud[j]*du[j] - d3u[j]
	}
	return utils.NewVector(n, f)
}

func (s *Solver) checkState(u utils.Vector) {
	if err := s.Grid.CheckState(u); err != nil {
		panic(err)
	}
}

// GaussianInit is a periodic Gaussian bump centered at the given fraction
// of the domain.
func (s *Solver) GaussianInit(centerFrac, width float64) (u0 utils.Vector) {
	center := centerFrac * s.Grid.L
	u0 = s.Grid.X.Copy().Apply(func(x float64) float64 {
		d := x - center
		return math.Exp(-d * d / (width * width))
	})
	return
}

// SechInit is the KdV soliton profile 0.5*c*sech^2(sqrt(c)/2*(x-x0)).
func (s *Solver) SechInit(c, centerFrac float64) (u0 utils.Vector) {
	center := centerFrac * s.Grid.L
	u0 = s.Grid.X.Copy().Apply(func(x float64) float64 {
		sech := 1 / math.Cosh(0.5*math.Sqrt(c)*(x-center))
		return 0.5 * c * sech * sech
	})
	return
}

// SineInit is sin(mode*2*pi*x/L).
func (s *Solver) SineInit(mode int) (u0 utils.Vector) {
	k := 2 * math.Pi * float64(mode) / s.Grid.L
	u0 = s.Grid.X.Copy().Apply(func(x float64) float64 {
		return math.Sin(k * x)
	})
	return
}

// Run advances the solution for the given number of steps, recording every
// stride-th snapshot. Two-level schemes are seeded with one SSP-RK3 step;
// the single-step scheme needs no bootstrap. Divergence under an unstable
// dt is recorded as-is.
func (s *Solver) Run(u0 utils.Vector, steps, stride int) (h *trace.History, err error) {
	if err = s.Grid.CheckState(u0); err != nil {
		return nil, err
	}
	if steps < 1 {
		return nil, fmt.Errorf("Spectral1D: step count must be at least 1, got %d", steps)
	}
	if h, err = trace.NewHistory(s.Grid.N, stride, steps); err != nil {
		return nil, err
	}
	h.Record(0, steps, 0, u0)
	switch s.scheme {
	case timestep.SSPRK3:
		u := u0.Copy()
		for step := 1; step <= steps; step++ {
			u = timestep.SSPRK3Step(u, s.Dt, s.rhs)
			h.Record(step, steps, s.Dt*float64(step), u)
		}
	case timestep.Leapfrog, timestep.Midpoint:
		uPrev := u0.Copy()
		uCur := timestep.SSPRK3Step(uPrev, s.Dt, s.rhs)
		h.Record(1, steps, s.Dt, uCur)
		for step := 2; step <= steps; step++ {
			var uNew utils.Vector
			if s.scheme == timestep.Midpoint {
				uNew = timestep.MidpointStep(uPrev, uCur, s.Dt, s.rhs)
			} else {
				uNew = timestep.LeapfrogStep(uPrev, uCur, s.Dt, s.rhs)
			}
			uPrev, uCur = uCur, uNew
			h.Record(step, steps, s.Dt*float64(step), uCur)
		}
	}
	return
}
