package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-mandel/render"
	"github.com/lixenwraith/vi-mandel/status"
	"github.com/lixenwraith/vi-mandel/viewport"
)

// StatusLine formats center, scale, magnification, iteration cap, render time and the last message
func StatusLine(reg *status.Registry, initialScale float64, maxIterations int) render.StatusFunc {
	return func(st viewport.State) string {
		snap := reg.Snapshot()
		line := fmt.Sprintf(" %+.10g %+.10gi  scale %.3e  zoom %.4gx  iter %d  %.1fms",
			st.Offset.X, st.Offset.Y,
			st.Scale,
			st.Magnification(initialScale),
			maxIterations,
			float64(snap.LastRender.Microseconds())/1000,
		)
		if snap.Message != "" {
			line += "  [" + snap.Message + "]"
		}
		return line
	}
}
