package timestep

import (
	"fmt"
	"strings"

	"github.com/numlab/gowave/utils"
)

// RHS evaluates the semi-discrete right hand side at one state. It must not
// mutate its input.
type RHS func(u utils.Vector) utils.Vector

type Type uint8

const (
	Leapfrog Type = iota
	Stormer
	SSPRK3
	Midpoint
)

var type_names = []string{
	"Leapfrog (explicit centered, two-level)",
	"Stormer (explicit centered, second order in time)",
	"SSP-RK3 (Shu-Osher three stage)",
	"Modified Midpoint (two-level, filtered operator)",
}

func (t Type) String() string { return type_names[t] }

func ParseType(s string) (t Type, err error) {
	switch strings.ToLower(s) {
	case "leapfrog":
		t = Leapfrog
	case "stormer", "verlet":
		t = Stormer
	case "ssprk3", "rk3":
		t = SSPRK3
	case "midpoint":
		t = Midpoint
	default:
		err = fmt.Errorf("timestep: unknown integrator selector %q", s)
	}
	return
}

// LeapfrogStep advances a first-order-in-time system by one centered step:
// uNew = uPrev + 2*dt*rhs(uCur). Two-level: the caller seeds the first step
// (see SSPRK3Step) and rotates the (prev, cur) pair.
func LeapfrogStep(uPrev, uCur utils.Vector, dt float64, rhs RHS) (uNew utils.Vector) {
	uNew = uPrev.Copy().Add(rhs(uCur).Scale(2 * dt))
	return
}

// MidpointStep is the modified midpoint update for the non-stiff KdV
// reformulation. Same kernel as LeapfrogStep; the difference lives entirely
// in the rhs, which must already carry the frequency-filtered dispersion.
func MidpointStep(uPrev, uCur utils.Vector, dt float64, rhsMod RHS) (uNew utils.Vector) {
	return LeapfrogStep(uPrev, uCur, dt, rhsMod)
}

// StormerStep advances a second-order-in-time system:
// uNew[j] = 2*uCur[j] - uPrev[j] + dt^2*rhs(uCur)[j] for interior j in
// [lo,hi); points outside the interior are clamped to their current values
// (fixed-end boundary condition). No implicit safety clamping: an unstable
// dt diverges exactly as configured.
func StormerStep(uPrev, uCur utils.Vector, dt float64, rhs RHS, lo, hi int) (uNew utils.Vector) {
	var (
		f  = rhs(uCur)
		n  = uCur.Len()
		d  = make([]float64, n)
		p  = uPrev.DataP()
		c  = uCur.DataP()
		fd = f.DataP()
	)
	copy(d, c)
	for j := lo; j < hi; j++ {
		d[j] = 2*c[j] - p[j] + dt*dt*fd[j]
	}
	uNew = utils.NewVector(n, d)
	return
}

// SSPRK3Step is the three-stage third-order strong-stability-preserving
// Runge-Kutta scheme of Shu and Osher. Self starting, so it also seeds the
// two-level methods.
func SSPRK3Step(u utils.Vector, dt float64, rhs RHS) (uNew utils.Vector) {
	y2 := u.Copy().Add(rhs(u).Scale(dt))
	y3 := y2.Copy().Add(rhs(y2).Scale(dt)).Scale(0.25).Add(u.Copy().Scale(0.75))
	uNew = y3.Copy().Add(rhs(y3).Scale(dt)).Scale(2. / 3.).Add(u.Copy().Scale(1. / 3.))
	return
}
