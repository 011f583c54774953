package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/orb/systems"
)

// FrameSample is what the frame loop reports after each simulation step.
type FrameSample struct {
	Frame       int32
	Time        float64 // Simulation clock in seconds
	Particles   int
	Interacting int
	Morph       float32
}

// Collector accumulates frame samples and produces WindowStats.
type Collector struct {
	windowSec float64

	windowStartFrame int32
	windowStartTime  float64
	started          bool

	frames      int
	interacting []float64
	interMax    int
	last        FrameSample

	radii, speeds []float64
}

// NewCollector creates a collector that closes a window every windowSec
// seconds of simulation time.
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 5
	}
	return &Collector{windowSec: windowSec}
}

// Record adds a frame to the current window.
func (c *Collector) Record(s FrameSample) {
	if !c.started {
		c.windowStartFrame = s.Frame
		c.windowStartTime = s.Time
		c.started = true
	}
	c.frames++
	c.interacting = append(c.interacting, float64(s.Interacting))
	if s.Interacting > c.interMax {
		c.interMax = s.Interacting
	}
	c.last = s
}

// ShouldFlush reports whether the current window has run its full length.
func (c *Collector) ShouldFlush() bool {
	return c.started && c.last.Time-c.windowStartTime >= c.windowSec
}

// Flush closes the current window using particles as the end-of-window
// sample, then starts a new one.
func (c *Collector) Flush(particles []systems.Particle) WindowStats {
	c.radii, c.speeds = ParticleMetrics(particles, c.radii, c.speeds)
	mean, std, p10, p50, p90 := ComputeRadiusStats(c.radii)

	ws := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   c.last.Frame,
		SimTimeSec:       c.last.Time,
		Frames:           c.frames,
		Particles:        c.last.Particles,
		InteractingMax:   c.interMax,
		Morph:            float64(c.last.Morph),
		RadiusMean:       mean,
		RadiusStd:        std,
		RadiusP10:        p10,
		RadiusP50:        p50,
		RadiusP90:        p90,
	}
	if len(c.interacting) > 0 {
		ws.InteractingMean = stat.Mean(c.interacting, nil)
	}
	if len(c.speeds) > 0 {
		ws.SpeedMean = stat.Mean(c.speeds, nil)
	}

	c.started = false
	c.frames = 0
	c.interacting = c.interacting[:0]
	c.interMax = 0
	return ws
}
