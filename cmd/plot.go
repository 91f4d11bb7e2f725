package cmd

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/numlab/gowave/trace"
)

// plotHistory replays a stored history frame by frame in a live chart. The
// renderer is strictly a consumer: it reads snapshots, it never touches the
// core's state.
func plotHistory(x []float64, h *trace.History, frameDelay time.Duration) {
	var (
		ymax = float32(h.MaxAbs())
		ymin = -ymax
	)
	if ymax == 0 {
		ymax, ymin = 1, -1
	}
	chart := chart2d.NewChart2D(1280, 1024, float32(x[0]), float32(x[len(x)-1]), ymin, ymax)
	colorMap := utils2.NewColorMap(-1, 1, 1)
	go chart.Plot()

	for _, s := range h.Snapshots {
		if err := chart.AddSeries("U", x, s.U,
			chart2d.NoGlyph, chart2d.Solid, colorMap.GetRGB(0)); err != nil {
			panic("unable to add graph series")
		}
		time.Sleep(frameDelay)
	}
}
