// Package ui draws the control panel and heads-up display on top of the
// particle view. Sliders are defined through descriptors so the panel
// layout follows the parameter set instead of hard-coding it.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orb/config"
	"github.com/pthm-cable/orb/game"
)

// Controls is the handle the panel drives. *game.Simulation implements it.
type Controls interface {
	Params() game.Params
	MaxCount() int

	SetMorphValue(v float32)
	SetScatterValue(v float32)
	SetClusterValue(v float32)
	SetParticleCount(n int)
	SetParticleSize(v float32)
	SetSphereRadius(r float32)
	SetScatterRadius(r float32)
	SetRotationSpeed(v float32)
	SetInteractionRadius(v float32)
	SetInteractionStrength(v float32)
	SetMetalness(v float32)
	SetRoughness(v float32)
	SetReflectivity(v float32)
	SetRefractionIndex(v float32)
	SetStreaks(on bool)
	SetStreakLength(v float32)
	SetTrailFade(v float32)
}

var _ Controls = (*game.Simulation)(nil)

// SliderDescriptor defines one slider bound to a parameter.
type SliderDescriptor struct {
	ID       string
	Label    string
	Min, Max float32
	Format   string // Printf format for the value
	Deferred bool   // Apply on release; the setter rebuilds the store
	Get      func(game.Params) float32
	Set      func(Controls, float32)
}

// SectionDescriptor groups sliders under a header.
type SectionDescriptor struct {
	Title   string
	Sliders []SliderDescriptor
}

func rangeOf(r config.Range) (float32, float32) {
	return float32(r.Min), float32(r.Max)
}

// DefaultSections returns the panel layout for a simulation that accepts
// up to maxCount particles.
func DefaultSections(maxCount int) []SectionDescriptor {
	unitMin, unitMax := rangeOf(config.UnitRange)
	sizeMin, sizeMax := rangeOf(config.SizeRange)
	rotMin, rotMax := rangeOf(config.RotationSpeedRange)
	radMin, radMax := rangeOf(config.InteractionRadiusRng)
	strMin, strMax := rangeOf(config.StrengthRange)
	iorMin, iorMax := rangeOf(config.RefractionIndexRange)
	streakMin, streakMax := rangeOf(config.StreakLengthRange)
	sphereMin, sphereMax := rangeOf(config.SphereRadiusRange)
	scatterMin, scatterMax := rangeOf(config.ScatterRadiusRange)

	return []SectionDescriptor{
		{
			Title: "Particles",
			Sliders: []SliderDescriptor{
				{
					ID: "count", Label: "Count", Min: 1, Max: float32(maxCount), Format: "%.0f", Deferred: true,
					Get: func(p game.Params) float32 { return float32(p.Count) },
					Set: func(c Controls, v float32) { c.SetParticleCount(int(v + 0.5)) },
				},
				{
					ID: "sphere_radius", Label: "Sphere", Min: sphereMin, Max: sphereMax, Format: "%.2f", Deferred: true,
					Get: func(p game.Params) float32 { return p.SphereRadius },
					Set: Controls.SetSphereRadius,
				},
				{
					ID: "scatter_radius", Label: "Shell", Min: scatterMin, Max: scatterMax, Format: "%.1f", Deferred: true,
					Get: func(p game.Params) float32 { return p.ScatterRadius },
					Set: Controls.SetScatterRadius,
				},
				{
					ID: "size", Label: "Size", Min: sizeMin, Max: sizeMax, Format: "%.3f",
					Get: func(p game.Params) float32 { return p.Size },
					Set: Controls.SetParticleSize,
				},
				{
					ID: "morph", Label: "Scatter", Min: unitMin, Max: unitMax, Format: "%.2f",
					Get: func(p game.Params) float32 { return p.Morph },
					Set: Controls.SetMorphValue,
				},
				{
					ID: "rotation", Label: "Rotation", Min: rotMin, Max: rotMax, Format: "%.1f",
					Get: func(p game.Params) float32 { return p.RotationSpeed },
					Set: Controls.SetRotationSpeed,
				},
			},
		},
		{
			Title: "Interaction",
			Sliders: []SliderDescriptor{
				{
					ID: "radius", Label: "Radius", Min: radMin, Max: radMax, Format: "%.2f",
					Get: func(p game.Params) float32 { return p.InteractionRadius },
					Set: Controls.SetInteractionRadius,
				},
				{
					ID: "strength", Label: "Strength", Min: strMin, Max: strMax, Format: "%.2f",
					Get: func(p game.Params) float32 { return p.InteractionStrength },
					Set: Controls.SetInteractionStrength,
				},
			},
		},
		{
			Title: "Material",
			Sliders: []SliderDescriptor{
				{
					ID: "metalness", Label: "Metal", Min: unitMin, Max: unitMax, Format: "%.2f",
					Get: func(p game.Params) float32 { return p.Material.Metalness },
					Set: Controls.SetMetalness,
				},
				{
					ID: "roughness", Label: "Rough", Min: unitMin, Max: unitMax, Format: "%.2f",
					Get: func(p game.Params) float32 { return p.Material.Roughness },
					Set: Controls.SetRoughness,
				},
				{
					ID: "reflectivity", Label: "Reflect", Min: unitMin, Max: unitMax, Format: "%.2f",
					Get: func(p game.Params) float32 { return p.Material.Reflectivity },
					Set: Controls.SetReflectivity,
				},
				{
					ID: "ior", Label: "IOR", Min: iorMin, Max: iorMax, Format: "%.2f",
					Get: func(p game.Params) float32 { return p.Material.RefractionIndex },
					Set: Controls.SetRefractionIndex,
				},
			},
		},
		{
			Title: "Effects",
			Sliders: []SliderDescriptor{
				{
					ID: "streak_length", Label: "Streak", Min: streakMin, Max: streakMax, Format: "%.1f",
					Get: func(p game.Params) float32 { return p.Effects.StreakLength },
					Set: Controls.SetStreakLength,
				},
				{
					ID: "trail_fade", Label: "Trail", Min: unitMin, Max: unitMax, Format: "%.2f",
					Get: func(p game.Params) float32 { return p.Effects.TrailFade },
					Set: Controls.SetTrailFade,
				},
			},
		},
	}
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	Accent         rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	ValueWidth     int32
	SliderHeight   int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 12, G: 16, B: 26, A: 220},
		PanelBorder:    rl.Color{R: 50, G: 70, B: 90, A: 255},
		SectionHeader:  rl.Color{R: 79, G: 195, B: 247, A: 255},
		LabelColor:     rl.LightGray,
		ValueColor:     rl.RayWhite,
		Accent:         rl.Color{R: 79, G: 195, B: 247, A: 255},
		Padding:        10,
		LineHeight:     18,
		LabelWidth:     62,
		ValueWidth:     46,
		SliderHeight:   14,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
