package timestep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/numlab/gowave/utils"
)

func TestParseType(t *testing.T) {
	tt, err := ParseType("ssprk3")
	assert.NoError(t, err)
	assert.Equal(t, SSPRK3, tt)
	_, err = ParseType("rk7")
	assert.Error(t, err)
}

func TestSSPRK3Order(t *testing.T) {
	// One step on y' = -y against exp(-dt): the local error of a third
	// order scheme is O(dt^4).
	var (
		dt  = 0.1
		rhs = func(u utils.Vector) utils.Vector { return u.Copy().Scale(-1) }
	)
	u := utils.NewVector(1, []float64{1})
	u = SSPRK3Step(u, dt, rhs)
	assert.InDelta(t, math.Exp(-dt), u.AtVec(0), 1.e-5)
}

func TestLeapfrogRotation(t *testing.T) {
	// (x,y)' = (-y,x): exact solution rotates on the unit circle; leapfrog
	// is neutrally stable for |w*dt| <= 1 so the radius stays near 1.
	var (
		dt  = 0.05
		rhs = func(u utils.Vector) utils.Vector {
			return utils.NewVector(2, []float64{-u.AtVec(1), u.AtVec(0)})
		}
	)
	uPrev := utils.NewVector(2, []float64{1, 0})
	uCur := utils.NewVector(2, []float64{math.Cos(dt), math.Sin(dt)})
	for step := 2; step <= 1000; step++ {
		uNew := LeapfrogStep(uPrev, uCur, dt, rhs)
		uPrev, uCur = uCur, uNew
	}
	r := math.Hypot(uCur.AtVec(0), uCur.AtVec(1))
	assert.InDelta(t, 1, r, 0.05)
}

func TestStormerOscillator(t *testing.T) {
	// u'' = -u with u(0)=1, u'(0)=0; the centered scheme tracks cos(t)
	// with bounded energy for dt below the 2/w bound.
	var (
		dt  = 0.1
		rhs = func(u utils.Vector) utils.Vector { return u.Copy().Scale(-1) }
	)
	uPrev := utils.NewVector(1, []float64{1})
	uCur := utils.NewVector(1, []float64{math.Cos(dt)})
	for step := 2; step <= 1000; step++ {
		uNew := StormerStep(uPrev, uCur, dt, rhs, 0, 1)
		uPrev, uCur = uCur, uNew
	}
	assert.True(t, math.Abs(uCur.AtVec(0)) < 1.01)
	assert.True(t, uCur.IsFinite())
}

func TestStormerClampsBoundary(t *testing.T) {
	var (
		dt  = 0.5
		rhs = func(u utils.Vector) utils.Vector { return utils.NewVectorConstant(u.Len(), 1) }
	)
	uPrev := utils.NewVector(4, []float64{7, 1, 2, -3})
	uCur := uPrev.Copy()
	uNew := StormerStep(uPrev, uCur, dt, rhs, 1, 3)
	// endpoints untouched, interior accelerated
	assert.Equal(t, 7., uNew.AtVec(0))
	assert.Equal(t, -3., uNew.AtVec(3))
	assert.InDelta(t, 1+dt*dt, uNew.AtVec(1), 1.e-15)
}

func TestStepsDoNotMutateInputs(t *testing.T) {
	rhs := func(u utils.Vector) utils.Vector { return u.Copy().Scale(-1) }
	u := utils.NewVector(2, []float64{1, 2})
	SSPRK3Step(u, 0.1, rhs)
	assert.Equal(t, []float64{1, 2}, u.DataP())
	uPrev := utils.NewVector(2, []float64{3, 4})
	LeapfrogStep(uPrev, u, 0.1, rhs)
	assert.Equal(t, []float64{3, 4}, uPrev.DataP())
	assert.Equal(t, []float64{1, 2}, u.DataP())
}
