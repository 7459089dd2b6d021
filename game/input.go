package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/isofield/config"
)

// gridStep is the number of cells added or removed per resize keypress.
func gridStep() int {
	return config.Cfg().Grid.Step
}

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	// Grid resolution: arrow keys, clamped to config bounds
	step := gridStep()
	if rl.IsKeyPressed(rl.KeyRight) {
		g.SetGridSize(g.grid.Width+step, g.grid.Height)
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		g.SetGridSize(g.grid.Width-step, g.grid.Height)
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		g.SetGridSize(g.grid.Width, g.grid.Height+step)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		g.SetGridSize(g.grid.Width, g.grid.Height-step)
	}

	// Isoline count with +/- (= and - keys)
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.SetIsolines(g.isolines + 1)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.SetIsolines(g.isolines - 1)
	}

	// Control panel toggle
	if rl.IsKeyPressed(rl.KeyTab) && g.panel != nil {
		g.panel.Visible = !g.panel.Visible
	}
}

// handleResize checks for window resize and stores the new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.screenWidth = float32(rl.GetScreenWidth())
	g.screenHeight = float32(rl.GetScreenHeight())
}
