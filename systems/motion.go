// Package systems contains ECS systems for the visualizer.
package systems

import (
	"github.com/chewxy/math32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/isofield/components"
)

// MotionSystem integrates source positions and reflects their velocity at
// the field boundary.
type MotionSystem struct {
	filter ecs.Filter2[components.Position, components.Velocity]
	bound  float32
}

// NewMotionSystem creates a motion system reflecting at |pos| > bound.
func NewMotionSystem(w *ecs.World, bound float32) *MotionSystem {
	return &MotionSystem{
		filter: *ecs.NewFilter2[components.Position, components.Velocity](w),
		bound:  bound,
	}
}

// Update advances every source by dt seconds. The boundary check runs after
// the position update, so an overshooting source reflects one tick late;
// only the velocity sign flips, never its magnitude.
func (s *MotionSystem) Update(dt float32) {
	query := s.filter.Query()
	for query.Next() {
		pos, vel := query.Get()

		pos.X += dt * vel.X
		pos.Y += dt * vel.Y

		if math32.Abs(pos.X) > s.bound {
			vel.X = -vel.X
		}
		if math32.Abs(pos.Y) > s.bound {
			vel.Y = -vel.Y
		}
	}
}
