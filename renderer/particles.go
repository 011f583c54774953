package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orb/game"
)

// Sphere tessellation per particle
const (
	sphereRings  = 6
	sphereSlices = 8
)

// ParticleRenderer draws particles as small shaded spheres with optional
// velocity streaks.
type ParticleRenderer struct {
	shade Shader
}

// NewParticleRenderer creates a particle renderer with the default light.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{shade: DefaultShader()}
}

// Draw renders every particle of f. Must be called inside BeginMode3D.
func (r *ParticleRenderer) Draw(f *game.Frame) {
	params := f.Params
	eye := f.Camera.Position()

	for i := range f.Particles {
		p := &f.Particles[i]
		world := f.WorldPosition(p)

		c := r.shade.Color(params.Material, world, eye, p.Emissive)
		pos := rl.NewVector3(world.X(), world.Y(), world.Z())
		rl.DrawSphereEx(pos, params.Size*p.Scale, sphereRings, sphereSlices, c)

		if params.Effects.Streaks && params.Effects.StreakLength > 0 {
			tail := world.Sub(f.Rotation.Mul3x1(p.Velocity).Mul(params.Effects.StreakLength))
			rl.DrawLine3D(pos, rl.NewVector3(tail.X(), tail.Y(), tail.Z()), rl.ColorAlpha(c, 0.5))
		}
	}
}
