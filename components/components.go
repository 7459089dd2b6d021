// Package components defines ECS components for the visualizer world.
package components

// Position is a source's position in field coordinates.
type Position struct {
	X, Y float32
}

// Velocity is a source's velocity in field units per second.
type Velocity struct {
	X, Y float32
}

// Ball holds a metaball source's field parameters.
type Ball struct {
	R float32 // radius parameter; sign-insensitive, must be nonzero
	C float32 // weight
}
