package telemetry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orb/systems"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(1.0)

	for frame := int32(0); frame < 60; frame++ {
		c.Record(FrameSample{
			Frame:       frame,
			Time:        float64(frame) / 60,
			Particles:   2,
			Interacting: int(frame % 3),
			Morph:       0.5,
		})
		if c.ShouldFlush() {
			t.Fatalf("window closed early at frame %d", frame)
		}
	}

	c.Record(FrameSample{Frame: 60, Time: 1.0, Particles: 2, Morph: 0.5})
	if !c.ShouldFlush() {
		t.Fatal("expected window to be due after 1s")
	}

	particles := []systems.Particle{
		{Position: mgl32.Vec3{2, 0, 0}},
		{Position: mgl32.Vec3{0, 4, 0}},
	}
	ws := c.Flush(particles)

	if ws.Frames != 61 || ws.WindowStartFrame != 0 || ws.WindowEndFrame != 60 {
		t.Errorf("window bounds = %+v", ws)
	}
	if ws.InteractingMax != 2 {
		t.Errorf("interacting max = %d, want 2", ws.InteractingMax)
	}
	if math.Abs(ws.RadiusMean-3) > 1e-6 {
		t.Errorf("radius mean = %v, want 3", ws.RadiusMean)
	}
	if ws.Morph != 0.5 || ws.Particles != 2 {
		t.Errorf("morph/particles = %v/%d", ws.Morph, ws.Particles)
	}

	// Next window starts fresh
	if c.ShouldFlush() {
		t.Error("collector should be empty after flush")
	}
	c.Record(FrameSample{Frame: 61, Time: 1.02})
	if next := c.Flush(nil); next.Frames != 1 || next.WindowStartFrame != 61 {
		t.Errorf("next window = %+v", next)
	}
}

func TestCollectorDefaultWindow(t *testing.T) {
	if c := NewCollector(0); c.windowSec != 5 {
		t.Errorf("default window = %v, want 5", c.windowSec)
	}
}
