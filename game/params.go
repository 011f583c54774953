package game

import "github.com/pthm-cable/orb/config"

// Material holds cosmetic shading parameters. They have no effect on
// particle motion.
type Material struct {
	Color           [3]uint8
	Metalness       float32
	Roughness       float32
	Reflectivity    float32
	RefractionIndex float32
}

// Effects toggles the optional screen effects.
type Effects struct {
	Streaks      bool
	StreakLength float32 // Multiplier on per-frame displacement
	TrailFade    float32 // 0 = no trail, 1 = longest trail
}

// Params is the live, externally settable state of a simulation.
type Params struct {
	Count               int
	Size                float32
	SphereRadius        float32
	ScatterRadius       float32 // Outer radius of the scatter shell
	Morph               float32
	RotationSpeed       float32
	InteractionRadius   float32
	InteractionStrength float32

	Material Material
	Effects  Effects
}

// ParamsFromConfig builds the starting parameters. cfg is assumed to have
// been clamped by config.Load.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Count:               cfg.Particles.Count,
		Size:                float32(cfg.Particles.Size),
		SphereRadius:        float32(cfg.Particles.SphereRadius),
		ScatterRadius:       float32(cfg.Particles.ScatterRadius),
		Morph:               float32(cfg.Particles.Morph),
		RotationSpeed:       float32(cfg.Particles.RotationSpeed),
		InteractionRadius:   float32(cfg.Interaction.Radius),
		InteractionStrength: float32(cfg.Interaction.Strength),
		Material: Material{
			Color:           cfg.Derived.Color,
			Metalness:       float32(cfg.Material.Metalness),
			Roughness:       float32(cfg.Material.Roughness),
			Reflectivity:    float32(cfg.Material.Reflectivity),
			RefractionIndex: float32(cfg.Material.RefractionIndex),
		},
		Effects: Effects{
			Streaks:      cfg.Effects.Streaks,
			StreakLength: float32(cfg.Effects.StreakLength),
			TrailFade:    float32(cfg.Effects.TrailFade),
		},
	}
}
