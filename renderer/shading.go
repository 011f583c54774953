package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orb/game"
)

// Shader computes a flat color per particle from the material settings,
// one directional light and the particle glow.
type Shader struct {
	Light   mgl32.Vec3 // Direction towards the light, normalized
	Ambient float32
}

// DefaultShader lights from the upper front right.
func DefaultShader() Shader {
	return Shader{
		Light:   mgl32.Vec3{0.5, 0.8, 0.6}.Normalize(),
		Ambient: 0.25,
	}
}

// Color shades a particle at world position pos seen from eye.
func (s Shader) Color(m game.Material, pos, eye mgl32.Vec3, emissive float32) rl.Color {
	rgb := s.RGB(m, pos, eye, emissive)
	return rl.NewColor(toByte(rgb[0]), toByte(rgb[1]), toByte(rgb[2]), 255)
}

// RGB is Color in linear [0, 1] components.
func (s Shader) RGB(m game.Material, pos, eye mgl32.Vec3, emissive float32) [3]float32 {
	base := mgl32.Vec3{
		float32(m.Color[0]) / 255,
		float32(m.Color[1]) / 255,
		float32(m.Color[2]) / 255,
	}

	view := eye.Sub(pos)
	if view.Len() > 0 {
		view = view.Normalize()
	}
	// Particles sit on a shell around the origin
	normal := view
	if pos.Len() > 1e-6 {
		normal = pos.Normalize()
	}

	diffuse := max32(normal.Dot(s.Light), 0)

	half := s.Light.Add(view)
	var spec float32
	if half.Len() > 0 {
		shininess := 2 + (1-m.Roughness)*(1-m.Roughness)*126
		spec = float32(math.Pow(float64(max32(normal.Dot(half.Normalize()), 0)), float64(shininess)))
	}

	// Schlick fresnel with F0 from the refraction index
	f0 := (m.RefractionIndex - 1) / (m.RefractionIndex + 1)
	f0 *= f0
	rim := float32(math.Pow(float64(1-max32(normal.Dot(view), 0)), 5))
	fresnel := (f0 + (1-f0)*rim) * m.Reflectivity

	// Metals tint their highlights with the base color
	white := mgl32.Vec3{1, 1, 1}
	specColor := white.Mul(1 - m.Metalness).Add(base.Mul(m.Metalness))

	c := base.Mul(s.Ambient + diffuse*(1-0.6*m.Metalness))
	c = c.Add(specColor.Mul(spec + fresnel))
	c = c.Add(base.Mul(emissive))

	return [3]float32{clamp01(c.X()), clamp01(c.Y()), clamp01(c.Z())}
}

func toByte(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
