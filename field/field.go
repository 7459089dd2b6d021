// Package field implements the moving metaball scalar field and the regular
// sample grid it is evaluated on.
package field

import "github.com/chewxy/math32"

// Vec2 is a 2D float32 vector.
type Vec2 struct {
	X, Y float32
}

// Source is one metaball: a weighted Gaussian influence centered at Pos.
// R divides as R², so its sign has no effect on the field value.
type Source struct {
	Pos Vec2
	Vel Vec2
	R   float32
	C   float32
}

// Field sums a fixed set of Gaussian sources. Evaluate is a pure function of
// the current source state; Advance mutates source positions in place.
//
// World coordinates (roughly [-1,1] on screen) are multiplied by Scale before
// distance computation and the summed value is divided by Scale afterwards,
// so source radii are tuned in a larger coordinate range than the grid.
type Field struct {
	Sources []Source
	Scale   float32
	Bound   float32 // sources reflect when |pos| exceeds this on either axis
}

// New creates a field over the given sources.
func New(sources []Source, scale, bound float32) *Field {
	return &Field{Sources: sources, Scale: scale, Bound: bound}
}

// Evaluate returns the field value at (x, y) in world coordinates.
func (f *Field) Evaluate(x, y float32) float32 {
	x *= f.Scale
	y *= f.Scale

	var sum float32
	for i := range f.Sources {
		s := &f.Sources[i]
		dx := x - s.Pos.X
		dy := y - s.Pos.Y
		sum += s.C * math32.Exp(-(dx*dx+dy*dy)/(s.R*s.R))
	}

	return sum / f.Scale
}

// Advance moves every source by dt·velocity and reflects the velocity on any
// axis whose position magnitude exceeds Bound. The check runs after the
// position update, so a fast source can overshoot and reflect one step late;
// that matches the on-screen behavior this field was tuned for.
func (f *Field) Advance(dt float32) {
	for i := range f.Sources {
		s := &f.Sources[i]
		s.Pos.X += dt * s.Vel.X
		s.Pos.Y += dt * s.Vel.Y

		if math32.Abs(s.Pos.X) > f.Bound {
			s.Vel.X = -s.Vel.X
		}
		if math32.Abs(s.Pos.Y) > f.Bound {
			s.Vel.Y = -s.Vel.Y
		}
	}
}
