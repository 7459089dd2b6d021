package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/isofield/isoline"
)

// ContourRenderer draws extracted isolines as independent line segments.
type ContourRenderer struct {
	thickness float32
	color     rl.Color
}

// NewContourRenderer creates a contour renderer.
func NewContourRenderer() *ContourRenderer {
	return &ContourRenderer{
		thickness: 1.5,
		color:     rl.Color{R: 25, G: 25, B: 45, A: 255},
	}
}

// Draw renders every segment of the contour set. Consecutive index pairs are
// independent segments, never a connected polyline.
func (r *ContourRenderer) Draw(set *isoline.ContourSet, v Viewport) {
	for k := 0; k+1 < len(set.Indices); k += 2 {
		a := set.Positions[set.Indices[k]]
		b := set.Positions[set.Indices[k+1]]
		rl.DrawLineEx(v.ToScreen(a), v.ToScreen(b), r.thickness, r.color)
	}
}
