package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orb/config"
	"github.com/pthm-cable/orb/systems"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return cfg
}

func newTestSimulation(t *testing.T, count int) *Simulation {
	t.Helper()
	cfg := testConfig(t)
	cfg.Particles.Count = count
	return NewSimulation(cfg, 1)
}

func runFrames(sim *Simulation, frames int, pointer systems.PointerState) {
	for i := 0; i < frames; i++ {
		sim.Step(float32(i)/60, pointer)
	}
}

func TestSimulationMorphClampIdempotent(t *testing.T) {
	tests := []struct {
		name      string
		out, edge float32
	}{
		{"below", -5, 0},
		{"above", 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestSimulation(t, 50)
			b := newTestSimulation(t, 50)
			a.SetMorphValue(tt.out)
			b.SetMorphValue(tt.edge)

			if a.Params() != b.Params() {
				t.Fatalf("params differ: %+v vs %+v", a.Params(), b.Params())
			}
			runFrames(a, 20, systems.PointerState{})
			runFrames(b, 20, systems.PointerState{})
			pa, pb := a.Particles(), b.Particles()
			for i := range pa {
				if pa[i].Position != pb[i].Position {
					t.Fatalf("particle %d diverged: %v vs %v", i, pa[i].Position, pb[i].Position)
				}
			}
		})
	}
}

func TestSimulationMorphNaN(t *testing.T) {
	sim := newTestSimulation(t, 10)
	sim.SetMorphValue(0.7)
	sim.SetMorphValue(float32(math.NaN()))
	if sim.Params().Morph != 0 {
		t.Errorf("NaN morph = %v, want lower bound 0", sim.Params().Morph)
	}
}

func TestSimulationScatterClusterAliases(t *testing.T) {
	sim := newTestSimulation(t, 10)

	sim.SetScatterValue(0.25)
	if got := sim.Params().Morph; got != 0.25 {
		t.Errorf("scatter 0.25: morph = %v", got)
	}
	sim.SetClusterValue(0.25)
	if got := sim.Params().Morph; got != 0.75 {
		t.Errorf("cluster 0.25: morph = %v", got)
	}
	sim.SetClusterValue(3)
	if got := sim.Params().Morph; got != 0 {
		t.Errorf("cluster 3: morph = %v, want 0", got)
	}
}

func TestSimulationParticleCount(t *testing.T) {
	sim := newTestSimulation(t, 100)
	maxCount := sim.MaxCount()

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"grow", 500, 500},
		{"shrink", 37, 37},
		{"zero", 0, 1},
		{"negative", -20, 1},
		{"over max", maxCount + 100, maxCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim.SetParticleCount(tt.n)
			ps := sim.Particles()
			if len(ps) != tt.want || sim.Params().Count != tt.want {
				t.Fatalf("got %d particles (params %d), want %d", len(ps), sim.Params().Count, tt.want)
			}
			for i, p := range ps {
				if p.Index != i {
					t.Fatalf("particle %d has index %d", i, p.Index)
				}
			}

			// Stepping only sees the new particles
			stats := sim.Step(0, systems.PointerState{})
			if stats.Particles != tt.want {
				t.Errorf("step saw %d particles, want %d", stats.Particles, tt.want)
			}
		})
	}
}

func TestSimulationSameCountKeepsParticles(t *testing.T) {
	sim := newTestSimulation(t, 40)
	sim.SetMorphValue(1)
	runFrames(sim, 10, systems.PointerState{})
	before := sim.Particles()[3].Position

	sim.SetParticleCount(40)
	if got := sim.Particles()[3].Position; got != before {
		t.Errorf("unchanged count rebuilt particles: %v -> %v", before, got)
	}
}

func TestSimulationSizeRescalesInPlace(t *testing.T) {
	sim := newTestSimulation(t, 40)
	sim.SetMorphValue(1)
	runFrames(sim, 10, systems.PointerState{})
	before := sim.Particles()[5]

	sim.SetParticleSize(0.2)
	if sim.Params().Size != 0.2 {
		t.Errorf("size = %v, want 0.2", sim.Params().Size)
	}
	if after := sim.Particles()[5]; after.Position != before.Position || after.Scattered != before.Scattered {
		t.Error("size change regenerated particles")
	}

	sim.SetParticleSize(-1)
	if math.Abs(float64(sim.Params().Size)-0.001) > 1e-6 {
		t.Errorf("negative size clamped to %v, want 0.001", sim.Params().Size)
	}
}

func TestSimulationRadiusRebuilds(t *testing.T) {
	tests := []struct {
		name            string
		sphere, scatter float32
		wantS, wantC    float32
	}{
		{"in range", 3, 8, 3, 8},
		{"clamped", 50, -1, 10, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := newTestSimulation(t, 120)
			sim.SetSphereRadius(tt.sphere)
			sim.SetScatterRadius(tt.scatter)

			p := sim.Params()
			if p.SphereRadius != tt.wantS || math.Abs(float64(p.ScatterRadius-tt.wantC)) > 1e-6 {
				t.Fatalf("radii = %v, %v, want %v, %v", p.SphereRadius, p.ScatterRadius, tt.wantS, tt.wantC)
			}
			if got := len(sim.Particles()); got != 120 {
				t.Fatalf("rebuild left %d particles, want 120", got)
			}
			for _, pt := range sim.Particles() {
				if d := pt.Original.Len(); math.Abs(float64(d-p.SphereRadius)) > 1e-4 {
					t.Fatalf("particle %d at radius %v, want %v", pt.Index, d, p.SphereRadius)
				}
				if d := pt.Scattered.Len(); d < 0.5*p.ScatterRadius-1e-4 || d > p.ScatterRadius+1e-4 {
					t.Fatalf("particle %d scatter radius %v outside [%v, %v]", pt.Index, d, 0.5*p.ScatterRadius, p.ScatterRadius)
				}
			}
		})
	}
}

func TestSimulationSameRadiusKeepsParticles(t *testing.T) {
	sim := newTestSimulation(t, 40)
	before := sim.Particles()[7].Scattered

	sim.SetSphereRadius(sim.Params().SphereRadius)
	sim.SetScatterRadius(sim.Params().ScatterRadius)
	if got := sim.Particles()[7].Scattered; got != before {
		t.Errorf("unchanged radius rebuilt particles: %v -> %v", before, got)
	}
}

func TestSimulationSetterClamping(t *testing.T) {
	sim := newTestSimulation(t, 10)

	sim.SetRotationSpeed(50)
	sim.SetInteractionRadius(0)
	sim.SetInteractionStrength(-1)
	sim.SetMetalness(2)
	sim.SetRoughness(-2)
	sim.SetReflectivity(0.4)
	sim.SetRefractionIndex(0.5)
	sim.SetStreakLength(100)
	sim.SetTrailFade(1.5)
	sim.SetStreaks(true)

	p := sim.Params()
	checks := []struct {
		name      string
		got, want float32
	}{
		{"rotation speed", p.RotationSpeed, 10},
		{"radius", p.InteractionRadius, 0.01},
		{"strength", p.InteractionStrength, 0},
		{"metalness", p.Material.Metalness, 1},
		{"roughness", p.Material.Roughness, 0},
		{"reflectivity", p.Material.Reflectivity, 0.4},
		{"ior", p.Material.RefractionIndex, 1},
		{"streak length", p.Effects.StreakLength, 20},
		{"trail fade", p.Effects.TrailFade, 1},
	}
	for _, c := range checks {
		if math.Abs(float64(c.got-c.want)) > 1e-6 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if !p.Effects.Streaks {
		t.Error("streaks not enabled")
	}
}

func TestSimulationConverges(t *testing.T) {
	tests := []struct {
		name   string
		morph  float32
		target func(systems.Particle) mgl32.Vec3
	}{
		{"sphere", 0, func(p systems.Particle) mgl32.Vec3 { return p.Original }},
		{"scatter", 1, func(p systems.Particle) mgl32.Vec3 { return p.Scattered }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Particles.Count = 500
			cfg.Particles.SphereRadius = 2
			sim := NewSimulation(cfg, 7)

			// Start away from the target
			sim.SetMorphValue(1 - tt.morph)
			runFrames(sim, 30, systems.PointerState{})
			sim.SetMorphValue(tt.morph)
			runFrames(sim, 400, systems.PointerState{})

			for _, p := range sim.Particles() {
				if d := p.Position.Sub(tt.target(p)).Len(); d >= 0.01 {
					t.Fatalf("particle %d is %v from target", p.Index, d)
				}
			}
		})
	}
}

func TestSimulationRepulsionScenario(t *testing.T) {
	cfg := testConfig(t)
	cfg.Particles.Count = 1
	cfg.Particles.SphereRadius = 1
	cfg.Particles.Morph = 0
	sim := NewSimulation(cfg, 1)
	sim.SetInteractionRadius(1.5)
	sim.SetInteractionStrength(0.3)

	start := sim.Particles()[0].Position
	if math.Abs(float64(start.Len())-1) > 1e-5 {
		t.Fatalf("particle starts at distance %v, want 1", start.Len())
	}

	if s := systems.RepulsionStrength(1, 1.5); math.Abs(float64(s)-1.0/3) > 1e-5 {
		t.Errorf("strength = %v, want 0.333", s)
	}

	pointer := systems.PointerState{Valid: true, Near: true}
	stats := sim.Step(0.5, pointer)
	if stats.Interacting != 1 {
		t.Fatalf("interacting = %d, want 1", stats.Interacting)
	}

	// target = 1 + 0.333*0.3, one smoothing step of 0.05 toward it
	want := 1 + 0.05*(0.3/3)
	p := sim.Particles()[0]
	if math.Abs(float64(p.Position.Len())-want) > 1e-5 {
		t.Errorf("distance after one step = %v, want %v", p.Position.Len(), want)
	}
	if !p.Interacting || p.InteractionStart != 0.5 {
		t.Errorf("interaction = %v start %v, want true at 0.5", p.Interacting, p.InteractionStart)
	}
}

func TestSimulationPointerInGroupSpace(t *testing.T) {
	cfg := testConfig(t)
	cfg.Particles.Count = 400
	cfg.Particles.RotationSpeed = 5
	sim := NewSimulation(cfg, 1)
	sim.SetInteractionRadius(0.5)

	now := float32(3)
	x, y, z := systems.GroupRotation(now, 5)
	rot := systems.RotationMatrix(x, y, z)

	// Aim the pointer at particle 0 as it appears in world space
	home := sim.Particles()[0].Original
	world := rot.Mul3x1(home)
	sim.Step(now, systems.PointerState{Point: world, Valid: true, Near: true})

	if !sim.Particles()[0].Interacting {
		t.Error("pointer over rotated particle did not interact")
	}
	_, _, _, got := sim.Rotation()
	if !got.ApproxEqualThreshold(rot, 1e-6) {
		t.Errorf("rotation = %v, want %v", got, rot)
	}
}

func TestSimulationDispose(t *testing.T) {
	sim := newTestSimulation(t, 20)
	params := sim.Params()

	sim.Dispose()
	sim.Dispose()
	if !sim.Disposed() {
		t.Fatal("not disposed")
	}

	sim.SetMorphValue(1)
	sim.SetParticleCount(300)
	sim.SetParticleSize(0.5)
	sim.SetSphereRadius(4)
	sim.SetScatterRadius(9)
	sim.SetRotationSpeed(3)
	sim.SetInteractionRadius(2)
	sim.SetInteractionStrength(2)
	sim.SetScatterValue(1)
	sim.SetClusterValue(0)
	sim.SetMetalness(0.1)
	sim.SetRoughness(0.1)
	sim.SetReflectivity(0.1)
	sim.SetRefractionIndex(2)
	sim.SetStreaks(true)
	sim.SetStreakLength(3)
	sim.SetTrailFade(0.5)

	if sim.Params() != params {
		t.Errorf("params changed after dispose: %+v", sim.Params())
	}
	if stats := sim.Step(1, systems.PointerState{}); stats.Particles != 0 {
		t.Errorf("step after dispose saw %d particles", stats.Particles)
	}
	if len(sim.Particles()) != 0 {
		t.Errorf("%d particles after dispose", len(sim.Particles()))
	}
}
