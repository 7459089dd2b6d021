package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/isofield/field"
)

// MeshRenderer rasterizes the grid triangle list colored by field value.
type MeshRenderer struct{}

// NewMeshRenderer creates a mesh renderer.
func NewMeshRenderer() *MeshRenderer {
	return &MeshRenderer{}
}

// Draw renders every grid triangle filled with the average of its three
// vertex colors.
func (r *MeshRenderer) Draw(g *field.Grid, s *field.SampledField, v Viewport) {
	for k := 0; k+2 < len(g.Indices); k += 3 {
		a, b, c := g.Indices[k], g.Indices[k+1], g.Indices[k+2]

		ca, cb, cc := s.Colors[a], s.Colors[b], s.Colors[c]
		col := rl.Color{
			R: channelByte((ca.R + cb.R + cc.R) / 3),
			G: channelByte((ca.G + cb.G + cc.G) / 3),
			B: channelByte((ca.B + cb.B + cc.B) / 3),
			A: 255,
		}

		// Index winding is counter-clockwise in field space; the y flip of
		// the screen mapping reverses it, so vertices are passed swapped to
		// keep raylib's required screen-space order.
		r2 := v.ToScreen(g.Positions[a])
		r1 := v.ToScreen(g.Positions[b])
		r0 := v.ToScreen(g.Positions[c])
		rl.DrawTriangle(r0, r1, r2, col)
	}
}

// channelByte converts a [0,1] color channel to 8 bits, clamping rounding
// spill.
func channelByte(c float32) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(c * 255)
}
