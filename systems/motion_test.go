package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/isofield/components"
)

func TestMotionSystemIntegrates(t *testing.T) {
	world := ecs.NewWorld()
	mapper := ecs.NewMap2[components.Position, components.Velocity](world)

	pos := components.Position{X: 1, Y: -0.5}
	vel := components.Velocity{X: 2, Y: -4}
	e := mapper.NewEntity(&pos, &vel)

	s := NewMotionSystem(world, 5)
	s.Update(0.25)

	posMap := ecs.NewMap1[components.Position](world)
	got := posMap.Get(e)
	if got.X != 1.5 || got.Y != -1.5 {
		t.Errorf("position after update = {%v %v}, want {1.5 -1.5}", got.X, got.Y)
	}
}

func TestMotionSystemReflects(t *testing.T) {
	tests := []struct {
		name    string
		pos     components.Position
		vel     components.Velocity
		dt      float32
		wantVel components.Velocity
	}{
		{"reflect +x", components.Position{X: 4.9}, components.Velocity{X: 1}, 0.2, components.Velocity{X: -1}},
		{"reflect -x", components.Position{X: -4.9}, components.Velocity{X: -1}, 0.2, components.Velocity{X: 1}},
		{"reflect +y", components.Position{Y: 4.9}, components.Velocity{Y: 2}, 0.2, components.Velocity{Y: -2}},
		{"no reflection inside", components.Position{}, components.Velocity{X: 1, Y: 1}, 0.5, components.Velocity{X: 1, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := ecs.NewWorld()
			mapper := ecs.NewMap2[components.Position, components.Velocity](world)

			pos, vel := tt.pos, tt.vel
			e := mapper.NewEntity(&pos, &vel)

			s := NewMotionSystem(world, 5)
			s.Update(tt.dt)

			velMap := ecs.NewMap1[components.Velocity](world)
			got := velMap.Get(e)
			if got.X != tt.wantVel.X || got.Y != tt.wantVel.Y {
				t.Errorf("velocity after update = {%v %v}, want {%v %v}", got.X, got.Y, tt.wantVel.X, tt.wantVel.Y)
			}
		})
	}
}

func TestMotionSystemPreservesSpeed(t *testing.T) {
	world := ecs.NewWorld()
	mapper := ecs.NewMap2[components.Position, components.Velocity](world)

	pos := components.Position{X: 4.75, Y: 0}
	vel := components.Velocity{X: 1.5, Y: -0.25}
	e := mapper.NewEntity(&pos, &vel)

	s := NewMotionSystem(world, 5)
	s.Update(0.5)

	velMap := ecs.NewMap1[components.Velocity](world)
	got := velMap.Get(e)

	// Only the sign flips on reflection, never the magnitude.
	if got.X != -1.5 || got.Y != -0.25 {
		t.Errorf("velocity after reflection = {%v %v}, want {-1.5 -0.25}", got.X, got.Y)
	}
}
