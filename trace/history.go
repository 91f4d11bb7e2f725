// Package trace holds the snapshot histories produced by a simulation run.
// A History is append-only: states are copied in, never aliased, and the
// diagnostics and rendering layers only ever read it.
package trace

import (
	"fmt"

	"github.com/numlab/gowave/utils"
)

type Snapshot struct {
	Time float64
	U    []float64
}

type History struct {
	N         int
	Stride    int
	Snapshots []Snapshot
}

// NewHistory pre-sizes for a run of totalSteps with the given recording
// stride. Retained snapshots are capped at ceil(totalSteps/stride)+1; a
// 100000-step run is never held at full resolution unless stride is 1.
func NewHistory(n, stride, totalSteps int) (h *History, err error) {
	if stride < 1 {
		return nil, fmt.Errorf("trace: recording stride must be at least 1, got %d", stride)
	}
	capacity := (totalSteps+stride-1)/stride + 1
	h = &History{
		N:         n,
		Stride:    stride,
		Snapshots: make([]Snapshot, 0, capacity),
	}
	return
}

// Record stores a copy of u when step falls on the stride, or when it is the
// given final step, so the terminal state is always retained.
func (h *History) Record(step int, final int, t float64, u utils.Vector) {
	if step%h.Stride != 0 && step != final {
		return
	}
	h.append(t, u)
}

func (h *History) append(t float64, u utils.Vector) {
	s := Snapshot{Time: t, U: make([]float64, u.Len())}
	copy(s.U, u.DataP())
	h.Snapshots = append(h.Snapshots, s)
}

func (h *History) Len() int { return len(h.Snapshots) }

func (h *History) Last() Snapshot {
	return h.Snapshots[len(h.Snapshots)-1]
}

// Times returns the snapshot timestamps as one slice, for companion series.
func (h *History) Times() (t []float64) {
	t = make([]float64, len(h.Snapshots))
	for i, s := range h.Snapshots {
		t[i] = s.Time
	}
	return
}

// MaxAbs scans the whole history for the largest state magnitude. Unbounded
// growth here is the didactic signal of an unstable dt, surfaced rather
// than suppressed.
func (h *History) MaxAbs() (max float64) {
	for _, s := range h.Snapshots {
		for _, val := range s.U {
			if val < 0 {
				val = -val
			}
			if val > max {
				max = val
			}
		}
	}
	return
}
