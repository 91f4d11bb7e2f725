package grid1d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/numlab/gowave/utils"
)

func TestGrids(t *testing.T) {
	{
		g, err := NewPeriodic(8, 2*math.Pi)
		assert.NoError(t, err)
		assert.Equal(t, 8, g.N)
		assert.InDelta(t, math.Pi/4, g.Dx, 1.e-15)
		// periodic grid excludes the right endpoint
		assert.InDelta(t, 2*math.Pi-g.Dx, g.X.AtVec(7), 1.e-13)
	}
	{
		g, err := NewChain(5, 0, 4)
		assert.NoError(t, err)
		assert.Equal(t, Fixed, g.BC)
		assert.InDelta(t, 1, g.Dx, 1.e-15)
		// fixed-end grid includes both endpoints
		assert.InDelta(t, 4, g.X.AtVec(4), 1.e-15)
	}
	{
		_, err := NewPeriodic(2, 1)
		assert.ErrorIs(t, err, ErrGridTooSmall)
		_, err = NewPeriodic(8, 0)
		assert.ErrorIs(t, err, ErrBadLength)
		_, err = NewChain(3, 1, 1)
		assert.ErrorIs(t, err, ErrBadLength)
	}
	{
		g, _ := NewPeriodic(8, 1)
		assert.NoError(t, g.CheckState(utils.NewVector(8)))
		assert.ErrorIs(t, g.CheckState(utils.NewVector(7)), ErrDimension)
	}
}

func TestWavenumbers(t *testing.T) {
	// native DFT coefficient ordering is load-bearing: positive
	// frequencies first, then the negative block. This ordering must match
	// the complex transform output element by element.
	xi := Wavenumbers(8, 2*math.Pi)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, -3, -2, -1}, xi)

	xi = Wavenumbers(4, math.Pi)
	assert.Equal(t, []float64{0, 2, 4, -2}, xi)

	xiR := RealWavenumbers(8, 2*math.Pi)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, xiR)
	assert.Len(t, xiR, 8/2+1)
}
