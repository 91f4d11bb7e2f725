package diagnostics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/numlab/gowave/trace"
	"github.com/numlab/gowave/utils"
)

func sineState(n, mode int, phase float64) utils.Vector {
	u := utils.NewVector(n)
	for j := 0; j < n; j++ {
		u.Set(j, math.Cos(phase)*math.Sin(2*math.Pi*float64(mode)*float64(j)/float64(n)))
	}
	return u
}

func TestModalAmplitudes(t *testing.T) {
	// a pure sine concentrates its amplitude in a single mode
	var (
		n    = 64
		mode = 5
	)
	h, _ := trace.NewHistory(n, 1, 1)
	h.Record(0, 1, 0, sineState(n, mode, 0))
	amps := ModalAmplitudes(h)
	assert.Len(t, amps, 1)
	assert.Len(t, amps[0], n/2+1)
	peak := amps[0][mode]
	for k, a := range amps[0] {
		if k == mode {
			continue
		}
		assert.True(t, a < 1.e-8*peak, "leakage at mode %d", k)
	}
}

func TestChainModalEnergies(t *testing.T) {
	var (
		n  = 32
		dt = 0.1
	)
	h, _ := trace.NewHistory(n, 1, 4)
	for i := 0; i <= 4; i++ {
		u := utils.NewVector(n)
		for j := 1; j < n-1; j++ {
			u.Set(j, math.Cos(dt*float64(i))*math.Sin(math.Pi*float64(j)/float64(n-1)))
		}
		h.Record(i, 4, dt*float64(i), u)
	}
	times, modes, err := ChainModalEnergies(h, dt, 4)
	assert.NoError(t, err)
	assert.Len(t, times, h.Len()-2)
	assert.Len(t, modes, 3)
	for _, me := range modes {
		assert.Len(t, me.Energy, len(times))
		for _, e := range me.Energy {
			assert.False(t, math.IsNaN(e))
			assert.True(t, e >= 0)
		}
	}

	// deterministic given the same history
	_, again, _ := ChainModalEnergies(h, dt, 4)
	for m := range modes {
		assert.Equal(t, modes[m].Energy, again[m].Energy)
	}

	// history must not be mutated by the extractor
	assert.Equal(t, 5, h.Len())
}

func TestChainModalEnergiesErrors(t *testing.T) {
	h, _ := trace.NewHistory(8, 1, 1)
	h.Record(0, 1, 0, utils.NewVector(8))
	_, _, err := ChainModalEnergies(h, 0.1, 3)
	assert.Error(t, err) // too few snapshots

	h2, _ := trace.NewHistory(8, 1, 3)
	for i := 0; i <= 3; i++ {
		h2.Record(i, 3, float64(i), utils.NewVector(8))
	}
	_, _, err = ChainModalEnergies(h2, 0.1, 100)
	assert.Error(t, err) // nmodes out of range
}

func TestTotalChainEnergy(t *testing.T) {
	var (
		n  = 16
		dt = 0.05
	)
	h, _ := trace.NewHistory(n, 1, 6)
	for i := 0; i <= 6; i++ {
		u := utils.NewVector(n)
		for j := 1; j < n-1; j++ {
			u.Set(j, math.Sin(math.Pi*float64(j)/float64(n-1))*math.Cos(dt*float64(i)))
		}
		h.Record(i, 6, dt*float64(i), u)
	}
	times, total, err := TotalChainEnergy(h, dt)
	assert.NoError(t, err)
	assert.Equal(t, len(times), len(total))
	for _, e := range total {
		assert.True(t, e > 0)
	}
}
