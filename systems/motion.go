package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/orb/components"
)

// Motion constants
const (
	Smoothing      float32 = 0.05 // Fraction of the gap to the target closed per frame
	PulseFrequency float64 = 10   // Radians per second of the interaction pulse
	PulseEmissive  float32 = 0.5
	PulseScale     float32 = 0.3
)

// MotionParams are the per-frame inputs of the motion step.
type MotionParams struct {
	Now      float32      // Simulation clock in seconds
	Morph    float32      // 0 = sphere, 1 = scatter shell
	Pointer  PointerState // Pointer in group-local space
	Radius   float32      // Interaction radius
	Strength float32      // Interaction strength
}

// MotionStats summarises one motion step.
type MotionStats struct {
	Particles   int
	Interacting int
}

// MotionSystem moves particles toward their morph target, applies pointer
// repulsion and derives the pulse visuals.
type MotionSystem struct {
	filter *ecs.Filter5[
		components.Position,
		components.Origin,
		components.Scatter,
		components.Velocity,
		components.Interaction,
	]
	visMap *ecs.Map1[components.Visual]
}

// NewMotionSystem creates a motion system over the world's particles.
func NewMotionSystem(world *ecs.World) *MotionSystem {
	return &MotionSystem{
		filter: ecs.NewFilter5[
			components.Position,
			components.Origin,
			components.Scatter,
			components.Velocity,
			components.Interaction,
		](world),
		visMap: ecs.NewMap1[components.Visual](world),
	}
}

// Update runs one frame. Particles are independent, so iteration order
// does not matter.
func (s *MotionSystem) Update(p MotionParams) MotionStats {
	var stats MotionStats

	query := s.filter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, orig, scatter, vel, inter := query.Get()
		stats.Particles++

		target := lerp3(orig.Vec, scatter.Vec, p.Morph)

		interacting := false
		if p.Pointer.Near {
			offset := pos.Vec.Sub(p.Pointer.Point)
			dist := offset.Len()
			if dist < p.Radius {
				var dir mgl32.Vec3
				if dist > 0 {
					dir = offset.Mul(1 / dist)
				}
				strength := RepulsionStrength(dist, p.Radius)
				target = target.Add(dir.Mul(strength * p.Strength))
				interacting = true
			}
		}

		if interacting && !inter.Active {
			inter.StartTime = p.Now
		} else if !interacting {
			inter.StartTime = 0
		}
		inter.Active = interacting

		prev := pos.Vec
		pos.Vec = lerp3(pos.Vec, target, Smoothing)
		vel.Vec = pos.Vec.Sub(prev)

		vis := s.visMap.Get(entity)
		if interacting {
			stats.Interacting++
			pulse := Pulse(p.Now - inter.StartTime)
			vis.Emissive = pulse * PulseEmissive
			vis.Scale = 1 + pulse*PulseScale
		} else {
			vis.Emissive = BaselineEmissive
			vis.Scale = 1
		}
	}

	return stats
}

// Pulse oscillates in [0, 1] with the time since interaction began.
func Pulse(sinceStart float32) float32 {
	return float32(math.Sin(float64(sinceStart)*PulseFrequency)*0.5 + 0.5)
}
