package game

import (
	"log/slog"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/orb/config"
	"github.com/pthm-cable/orb/systems"
)

// Simulation owns the particle world and the parameters the control
// surface can change. It has no rendering dependencies.
//
// All methods must be called from the frame goroutine.
type Simulation struct {
	params   Params
	maxCount int

	world  *ecs.World
	store  *systems.ParticleStore
	motion *systems.MotionSystem
	rng    *rand.Rand

	// Group rotation of the last step
	rotX, rotY, rotZ float32
	rotation         mgl32.Mat3

	particles []systems.Particle
	stats     systems.MotionStats

	disposed bool
}

// NewSimulation builds a simulation from cfg and generates the initial
// particles. Scatter targets are drawn from an rng seeded with seed.
func NewSimulation(cfg *config.Config, seed int64) *Simulation {
	world := ecs.NewWorld()

	s := &Simulation{
		params:   ParamsFromConfig(cfg),
		maxCount: cfg.Particles.MaxCount,
		world:    world,
		store:    systems.NewParticleStore(world),
		motion:   systems.NewMotionSystem(world),
		rng:      rand.New(rand.NewSource(seed)),
		rotation: mgl32.Ident3(),
	}
	s.rebuild()
	return s
}

func (s *Simulation) rebuild() {
	p := &s.params
	s.store.Rebuild(p.Count, p.SphereRadius, p.ScatterRadius, s.rng)
	s.particles = s.store.Snapshot(s.particles)
	s.stats = systems.MotionStats{Particles: s.store.Len()}
	slog.Info("rebuild", "particles", p.Count, "sphere_radius", p.SphereRadius, "scatter_radius", p.ScatterRadius)
}

// Step advances the simulation to now (seconds since start) using the
// pointer state as resolved in world space.
func (s *Simulation) Step(now float32, pointer systems.PointerState) systems.MotionStats {
	if s.disposed {
		return systems.MotionStats{}
	}

	s.rotX, s.rotY, s.rotZ = systems.GroupRotation(now, s.params.RotationSpeed)
	s.rotation = systems.RotationMatrix(s.rotX, s.rotY, s.rotZ)

	// Particles live in group-local space
	local := pointer
	local.Point = s.rotation.Transpose().Mul3x1(pointer.Point)

	s.stats = s.motion.Update(systems.MotionParams{
		Now:      now,
		Morph:    s.params.Morph,
		Pointer:  local,
		Radius:   s.params.InteractionRadius,
		Strength: s.params.InteractionStrength,
	})
	s.particles = s.store.Snapshot(s.particles)
	return s.stats
}

// Particles returns the state after the last step, ordered by index.
// The slice is reused by the next Step and must not be retained.
func (s *Simulation) Particles() []systems.Particle {
	return s.particles
}

// Params returns a copy of the current parameters.
func (s *Simulation) Params() Params {
	return s.params
}

// Stats returns the counts of the last step.
func (s *Simulation) Stats() systems.MotionStats {
	return s.stats
}

// Rotation returns the group rotation of the last step as Euler angles
// (radians, applied X then Y then Z) and as a matrix.
func (s *Simulation) Rotation() (x, y, z float32, m mgl32.Mat3) {
	return s.rotX, s.rotY, s.rotZ, s.rotation
}

// MaxCount is the upper bound accepted by SetParticleCount.
func (s *Simulation) MaxCount() int {
	return s.maxCount
}

// Dispose releases every particle. Later calls to any method are no-ops.
func (s *Simulation) Dispose() {
	if s.disposed {
		return
	}
	s.store.Clear()
	s.particles = s.particles[:0]
	s.stats = systems.MotionStats{}
	s.disposed = true
}

// Disposed reports whether Dispose has been called.
func (s *Simulation) Disposed() bool {
	return s.disposed
}

func clampf(r config.Range, v float32) float32 {
	return float32(r.Clamp(float64(v)))
}

// SetMorphValue sets the blend between sphere (0) and scatter shell (1).
func (s *Simulation) SetMorphValue(v float32) {
	if s.disposed {
		return
	}
	s.params.Morph = clampf(config.UnitRange, v)
}

// SetScatterValue is an alias for SetMorphValue.
func (s *Simulation) SetScatterValue(v float32) {
	s.SetMorphValue(v)
}

// SetClusterValue is the inverse alias: 1 keeps the particles on the sphere.
func (s *Simulation) SetClusterValue(v float32) {
	if s.disposed {
		return
	}
	s.params.Morph = 1 - clampf(config.UnitRange, v)
}

// SetParticleCount regenerates the store with n particles, clamped to
// [1, MaxCount]. Nothing happens when the count is unchanged.
func (s *Simulation) SetParticleCount(n int) {
	if s.disposed {
		return
	}
	if n < 1 {
		n = 1
	}
	if n > s.maxCount {
		n = s.maxCount
	}
	if n == s.params.Count && s.store.Len() == n {
		return
	}
	s.params.Count = n
	s.rebuild()
}

// SetSphereRadius regenerates the store on a sphere of radius r.
func (s *Simulation) SetSphereRadius(r float32) {
	if s.disposed {
		return
	}
	r = clampf(config.SphereRadiusRange, r)
	if r == s.params.SphereRadius {
		return
	}
	s.params.SphereRadius = r
	s.rebuild()
}

// SetScatterRadius regenerates the store with scatter targets in a shell
// of outer radius r.
func (s *Simulation) SetScatterRadius(r float32) {
	if s.disposed {
		return
	}
	r = clampf(config.ScatterRadiusRange, r)
	if r == s.params.ScatterRadius {
		return
	}
	s.params.ScatterRadius = r
	s.rebuild()
}

// SetParticleSize changes the drawn radius of every particle in place.
func (s *Simulation) SetParticleSize(v float32) {
	if s.disposed {
		return
	}
	s.params.Size = clampf(config.SizeRange, v)
}

func (s *Simulation) SetRotationSpeed(v float32) {
	if s.disposed {
		return
	}
	s.params.RotationSpeed = clampf(config.RotationSpeedRange, v)
}

func (s *Simulation) SetInteractionRadius(v float32) {
	if s.disposed {
		return
	}
	s.params.InteractionRadius = clampf(config.InteractionRadiusRng, v)
}

func (s *Simulation) SetInteractionStrength(v float32) {
	if s.disposed {
		return
	}
	s.params.InteractionStrength = clampf(config.StrengthRange, v)
}

func (s *Simulation) SetMetalness(v float32) {
	if s.disposed {
		return
	}
	s.params.Material.Metalness = clampf(config.UnitRange, v)
}

func (s *Simulation) SetRoughness(v float32) {
	if s.disposed {
		return
	}
	s.params.Material.Roughness = clampf(config.UnitRange, v)
}

func (s *Simulation) SetReflectivity(v float32) {
	if s.disposed {
		return
	}
	s.params.Material.Reflectivity = clampf(config.UnitRange, v)
}

func (s *Simulation) SetRefractionIndex(v float32) {
	if s.disposed {
		return
	}
	s.params.Material.RefractionIndex = clampf(config.RefractionIndexRange, v)
}

// SetStreaks toggles velocity streaks.
func (s *Simulation) SetStreaks(on bool) {
	if s.disposed {
		return
	}
	s.params.Effects.Streaks = on
}

func (s *Simulation) SetStreakLength(v float32) {
	if s.disposed {
		return
	}
	s.params.Effects.StreakLength = clampf(config.StreakLengthRange, v)
}

func (s *Simulation) SetTrailFade(v float32) {
	if s.disposed {
		return
	}
	s.params.Effects.TrailFade = clampf(config.UnitRange, v)
}
