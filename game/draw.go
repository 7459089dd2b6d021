package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/isofield/renderer"
	"github.com/pthm-cable/isofield/ui"
)

// Draw renders the current frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 204, G: 204, B: 255, A: 255})

	vp := renderer.NewViewport(g.screenWidth, g.screenHeight)
	g.mesh.Draw(g.grid, g.sampled, vp)
	g.contour.Draw(g.contours, vp)

	if g.panel != nil && g.panel.Visible {
		st := ui.State{
			GridWidth:  float32(g.grid.Width),
			GridHeight: float32(g.grid.Height),
			Isolines:   float32(g.isolines),
			Speed:      g.speed,
			Paused:     g.paused,
		}
		info := ui.Info{
			MinValue: g.sampled.Min,
			MaxValue: g.sampled.Max,
			Vertices: len(g.contours.Positions),
			Segments: g.contours.Segments(),
			FPS:      int(rl.GetFPS()),
		}
		g.applyPanel(st, g.panel.Draw(st, info))
	}

	g.perf.RecordFrame()
	rl.EndDrawing()
}

// applyPanel propagates control panel edits back into the game state.
func (g *Game) applyPanel(old, st ui.State) {
	if int(st.GridWidth) != int(old.GridWidth) || int(st.GridHeight) != int(old.GridHeight) {
		g.SetGridSize(int(st.GridWidth), int(st.GridHeight))
	}
	if int(st.Isolines) != int(old.Isolines) {
		g.SetIsolines(int(st.Isolines))
	}
	if st.Speed != old.Speed {
		g.speed = st.Speed
	}
	g.paused = st.Paused
}
