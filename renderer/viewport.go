// Package renderer draws the sampled field mesh and contour lines with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/isofield/field"
)

// Viewport maps field space [-1,1]² (y up) to a centered square region of
// the screen (y down), scaled by the shorter screen axis so the field keeps
// its aspect ratio on resize.
type Viewport struct {
	cx, cy float32
	scale  float32
}

// NewViewport creates a viewport for the given screen size in pixels.
func NewViewport(w, h float32) Viewport {
	s := w
	if h < w {
		s = h
	}
	return Viewport{cx: w / 2, cy: h / 2, scale: s / 2}
}

// ToScreen converts a field-space point to screen pixels.
func (v Viewport) ToScreen(p field.Vec2) rl.Vector2 {
	return rl.Vector2{X: v.cx + p.X*v.scale, Y: v.cy - p.Y*v.scale}
}
