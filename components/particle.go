// Package components defines ECS components for the particle sphere.
package components

import "github.com/go-gl/mathgl/mgl32"

// Position is the particle's current location in group-local space.
// It is the only component the renderer reads for placement.
type Position struct {
	Vec mgl32.Vec3
}

// Origin is the fixed location on the sphere surface. Set once at creation.
type Origin struct {
	Vec mgl32.Vec3
}

// Scatter is the fixed target inside the scatter shell. Set once at creation.
type Scatter struct {
	Vec mgl32.Vec3
}

// Velocity is the displacement applied during the last frame.
type Velocity struct {
	Vec mgl32.Vec3
}

// Interaction tracks whether the pointer is currently repelling the particle.
type Interaction struct {
	Active    bool
	StartTime float32 // Simulation clock when Active last became true
}

// Visual holds per-particle derived appearance.
type Visual struct {
	Scale    float32
	Emissive float32
}

// Slot is the particle's creation index within the current generation.
type Slot struct {
	Index int32
}
