package systems

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/orb/components"
)

// BaselineEmissive is the glow of a particle the pointer is not touching.
const BaselineEmissive float32 = 0.2

// Particle is a read-only copy of one particle's state.
type Particle struct {
	Index            int
	Position         mgl32.Vec3
	Original         mgl32.Vec3
	Scattered        mgl32.Vec3
	Velocity         mgl32.Vec3
	Interacting      bool
	InteractionStart float32
	Scale            float32
	Emissive         float32
}

// ParticleStore owns the particle entities of one ECS world.
// Composition only changes through Rebuild and Clear.
type ParticleStore struct {
	world *ecs.World

	mapper *ecs.Map7[
		components.Position,
		components.Origin,
		components.Scatter,
		components.Velocity,
		components.Interaction,
		components.Visual,
		components.Slot,
	]
	filter *ecs.Filter7[
		components.Position,
		components.Origin,
		components.Scatter,
		components.Velocity,
		components.Interaction,
		components.Visual,
		components.Slot,
	]

	entities []ecs.Entity
}

// NewParticleStore creates an empty store backed by world.
func NewParticleStore(world *ecs.World) *ParticleStore {
	return &ParticleStore{
		world: world,
		mapper: ecs.NewMap7[
			components.Position,
			components.Origin,
			components.Scatter,
			components.Velocity,
			components.Interaction,
			components.Visual,
			components.Slot,
		](world),
		filter: ecs.NewFilter7[
			components.Position,
			components.Origin,
			components.Scatter,
			components.Velocity,
			components.Interaction,
			components.Visual,
			components.Slot,
		](world),
	}
}

// Rebuild discards every particle and generates n fresh ones. Sphere
// placements are deterministic; scatter targets are drawn from rng.
func (s *ParticleStore) Rebuild(n int, sphereRadius, scatterRadius float32, rng *rand.Rand) {
	s.Clear()
	if n < 1 {
		return
	}

	s.entities = make([]ecs.Entity, 0, n)
	for i := 0; i < n; i++ {
		home := SpherePosition(i, n, sphereRadius)

		pos := components.Position{Vec: home}
		orig := components.Origin{Vec: home}
		scatter := components.Scatter{Vec: ScatterPosition(rng, scatterRadius)}
		vel := components.Velocity{}
		inter := components.Interaction{}
		vis := components.Visual{Scale: 1, Emissive: BaselineEmissive}
		slot := components.Slot{Index: int32(i)}

		e := s.mapper.NewEntity(&pos, &orig, &scatter, &vel, &inter, &vis, &slot)
		s.entities = append(s.entities, e)
	}
}

// Clear removes every particle entity from the world.
func (s *ParticleStore) Clear() {
	for _, e := range s.entities {
		if s.world.Alive(e) {
			s.world.RemoveEntity(e)
		}
	}
	s.entities = s.entities[:0]
}

// Len returns the number of live particles.
func (s *ParticleStore) Len() int {
	return len(s.entities)
}

// Snapshot copies every particle into dst, ordered by creation index.
// dst is reused when it has enough capacity.
func (s *ParticleStore) Snapshot(dst []Particle) []Particle {
	n := len(s.entities)
	if cap(dst) < n {
		dst = make([]Particle, n)
	}
	dst = dst[:n]

	query := s.filter.Query()
	for query.Next() {
		pos, orig, scatter, vel, inter, vis, slot := query.Get()
		i := int(slot.Index)
		if i < 0 || i >= n {
			continue
		}
		dst[i] = Particle{
			Index:            i,
			Position:         pos.Vec,
			Original:         orig.Vec,
			Scattered:        scatter.Vec,
			Velocity:         vel.Vec,
			Interacting:      inter.Active,
			InteractionStart: inter.StartTime,
			Scale:            vis.Scale,
			Emissive:         vis.Emissive,
		}
	}
	return dst
}

// Get returns a copy of the particle at creation index i.
func (s *ParticleStore) Get(i int) (Particle, bool) {
	if i < 0 || i >= len(s.entities) {
		return Particle{}, false
	}
	e := s.entities[i]
	pos, orig, scatter, vel, inter, vis, _ := s.mapper.Get(e)
	return Particle{
		Index:            i,
		Position:         pos.Vec,
		Original:         orig.Vec,
		Scattered:        scatter.Vec,
		Velocity:         vel.Vec,
		Interacting:      inter.Active,
		InteractionStart: inter.StartTime,
		Scale:            vis.Scale,
		Emissive:         vis.Emissive,
	}, true
}

// SetPosition moves the particle at creation index i. Used to seed test
// layouts and to snap particles home.
func (s *ParticleStore) SetPosition(i int, p mgl32.Vec3) bool {
	if i < 0 || i >= len(s.entities) {
		return false
	}
	pos, _, _, _, _, _, _ := s.mapper.Get(s.entities[i])
	pos.Vec = p
	return true
}
