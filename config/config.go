// Package config provides configuration loading and access for the particle sphere.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Camera      CameraConfig      `yaml:"camera"`
	Particles   ParticlesConfig   `yaml:"particles"`
	Interaction InteractionConfig `yaml:"interaction"`
	Material    MaterialConfig    `yaml:"material"`
	Effects     EffectsConfig     `yaml:"effects"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// CameraConfig holds the orbit camera setup.
type CameraConfig struct {
	FOV         float64 `yaml:"fov"` // Vertical field of view in degrees
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`
	Distance    float64 `yaml:"distance"` // Initial distance from the target
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	Damping     float64 `yaml:"damping"`     // Fraction of orbit velocity removed per frame
	OrbitSpeed  float64 `yaml:"orbit_speed"` // Radians per dragged pixel
}

// ParticlesConfig holds particle population and motion parameters.
type ParticlesConfig struct {
	Count         int     `yaml:"count"`
	MaxCount      int     `yaml:"max_count"`
	Size          float64 `yaml:"size"`
	SphereRadius  float64 `yaml:"sphere_radius"`
	ScatterRadius float64 `yaml:"scatter_radius"` // Outer radius of the scatter shell
	RotationSpeed float64 `yaml:"rotation_speed"`
	Morph         float64 `yaml:"morph"` // 0 = sphere, 1 = scattered cloud
}

// InteractionConfig holds pointer repulsion parameters.
type InteractionConfig struct {
	Radius   float64 `yaml:"radius"`
	Strength float64 `yaml:"strength"`
}

// MaterialConfig holds cosmetic shading parameters.
type MaterialConfig struct {
	Color           string  `yaml:"color"` // Hex RGB, e.g. "#4fc3f7"
	Metalness       float64 `yaml:"metalness"`
	Roughness       float64 `yaml:"roughness"`
	Reflectivity    float64 `yaml:"reflectivity"`
	RefractionIndex float64 `yaml:"refraction_index"`
}

// EffectsConfig holds optional motion effects.
type EffectsConfig struct {
	Streaks      bool    `yaml:"streaks"`
	StreakLength float64 `yaml:"streak_length"` // Frames of displacement drawn behind a particle
	TrailFade    float64 `yaml:"trail_fade"`    // 0 = no motion blur, 1 = frames never fade
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32  // Screen.Width as float32
	ScreenH32 float32  // Screen.Height as float32
	Color     [3]uint8 // Material.Color parsed
}

// Range is an inclusive bound for a tunable value.
type Range struct {
	Min, Max float64
}

// Clamp restricts v to the range. NaN maps to Min.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Bounds for externally settable values.
var (
	UnitRange            = Range{0, 1}
	SizeRange            = Range{0.001, 1}
	RotationSpeedRange   = Range{-10, 10}
	InteractionRadiusRng = Range{0.01, 10}
	StrengthRange        = Range{0, 5}
	RefractionIndexRange = Range{1, 2.333}
	StreakLengthRange    = Range{0, 20}
	SphereRadiusRange    = Range{0.1, 10}
	ScatterRadiusRange   = Range{0.1, 30}
)

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	cfg.clamp()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	rgb, err := ParseColor(c.Material.Color)
	if err != nil {
		return fmt.Errorf("material.color: %w", err)
	}
	c.Derived.Color = rgb
	return nil
}

// clamp pulls out-of-range values back to their nearest valid bound.
func (c *Config) clamp() {
	p := &c.Particles
	if p.MaxCount < 1 {
		p.MaxCount = 1
	}
	if p.Count < 1 {
		p.Count = 1
	}
	if p.Count > p.MaxCount {
		p.Count = p.MaxCount
	}
	p.Size = SizeRange.Clamp(p.Size)
	p.RotationSpeed = RotationSpeedRange.Clamp(p.RotationSpeed)
	p.Morph = UnitRange.Clamp(p.Morph)
	p.SphereRadius = SphereRadiusRange.Clamp(p.SphereRadius)
	p.ScatterRadius = ScatterRadiusRange.Clamp(p.ScatterRadius)

	c.Interaction.Radius = InteractionRadiusRng.Clamp(c.Interaction.Radius)
	c.Interaction.Strength = StrengthRange.Clamp(c.Interaction.Strength)

	m := &c.Material
	m.Metalness = UnitRange.Clamp(m.Metalness)
	m.Roughness = UnitRange.Clamp(m.Roughness)
	m.Reflectivity = UnitRange.Clamp(m.Reflectivity)
	m.RefractionIndex = RefractionIndexRange.Clamp(m.RefractionIndex)

	c.Effects.StreakLength = StreakLengthRange.Clamp(c.Effects.StreakLength)
	c.Effects.TrailFade = UnitRange.Clamp(c.Effects.TrailFade)

	if c.Camera.MinDistance <= 0 {
		c.Camera.MinDistance = 0.1
	}
	if c.Camera.MaxDistance < c.Camera.MinDistance {
		c.Camera.MaxDistance = c.Camera.MinDistance
	}
	c.Camera.Damping = UnitRange.Clamp(c.Camera.Damping)
}

// ParseColor parses a "#rrggbb" hex string.
func ParseColor(s string) ([3]uint8, error) {
	var rgb [3]uint8
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return rgb, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rgb, fmt.Errorf("invalid color %q: %w", s, err)
	}
	rgb[0] = uint8(v >> 16)
	rgb[1] = uint8(v >> 8)
	rgb[2] = uint8(v)
	return rgb, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
