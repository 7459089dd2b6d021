// Package ui draws the raygui control panel for the visualizer.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// State holds the values the control panel edits.
type State struct {
	GridWidth  float32
	GridHeight float32
	Isolines   float32
	Speed      float32
	Paused     bool
}

// Limits holds the slider bounds, taken from config at startup.
type Limits struct {
	MinGridW, MaxGridW float32
	MinGridH, MaxGridH float32
	MaxIsolines        float32
	MaxSpeed           float32
}

// Info is the read-only status shown under the sliders.
type Info struct {
	MinValue, MaxValue float32
	Vertices, Segments int
	FPS                int
}

// Panel is the overlay control panel. Toggle with Visible.
type Panel struct {
	Visible bool
	limits  Limits
}

// NewPanel creates a control panel with the given slider limits.
func NewPanel(l Limits) *Panel {
	return &Panel{Visible: true, limits: l}
}

const (
	panelX      = float32(10)
	panelWidth  = float32(290)
	sliderWidth = panelWidth - 80
)

// Draw renders the panel and returns the possibly edited state.
func (p *Panel) Draw(st State, info Info) State {
	rl.DrawRectangle(int32(panelX)-5, 5, int32(panelWidth)+10, 330, rl.Color{R: 245, G: 245, B: 250, A: 220})

	y := float32(15)
	rl.DrawText("Field controls", int32(panelX), int32(y), 20, rl.DarkGray)
	y += 30

	st.GridWidth = p.slider(&y, "Grid width (cells)", st.GridWidth, p.limits.MinGridW, p.limits.MaxGridW, "%.0f")
	st.GridHeight = p.slider(&y, "Grid height (cells)", st.GridHeight, p.limits.MinGridH, p.limits.MaxGridH, "%.0f")
	st.Isolines = p.slider(&y, "Isolines", st.Isolines, 0, p.limits.MaxIsolines, "%.0f")
	st.Speed = p.slider(&y, "Speed", st.Speed, 0, p.limits.MaxSpeed, "%.2f")

	if gui.Button(rl.Rectangle{X: panelX, Y: y, Width: 120, Height: 30}, toggleText(st.Paused, "Resume", "Pause")) {
		st.Paused = !st.Paused
	}
	y += 45

	rl.DrawText(fmt.Sprintf("Min: %.3f  Max: %.3f", info.MinValue, info.MaxValue), int32(panelX), int32(y), 16, rl.DarkGray)
	y += 20
	rl.DrawText(fmt.Sprintf("Contour: %d verts, %d segments", info.Vertices, info.Segments), int32(panelX), int32(y), 16, rl.DarkGray)
	y += 20
	rl.DrawText(fmt.Sprintf("FPS: %d", info.FPS), int32(panelX), int32(y), 16, rl.DarkGray)

	return st
}

// slider draws one labeled slider row and advances the layout cursor.
func (p *Panel) slider(y *float32, label string, value, min, max float32, format string) float32 {
	rl.DrawText(label, int32(panelX), int32(*y), 14, rl.Gray)
	*y += 18

	v := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: *y, Width: sliderWidth, Height: 20},
		fmt.Sprintf("%.0f", min), fmt.Sprintf("%.0f", max),
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(panelX+sliderWidth+10), int32(*y+2), 16, rl.DarkGray)
	*y += 32

	return v
}

func toggleText(cond bool, whenTrue, whenFalse string) string {
	if cond {
		return whenTrue
	}
	return whenFalse
}
