// Package game drives the particle simulation: it owns the frame loop,
// routes host input to the camera and pointer resolver, and hands each
// frame to the host surface for drawing.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/pthm-cable/orb/camera"
	"github.com/pthm-cable/orb/config"
	"github.com/pthm-cable/orb/systems"
	"github.com/pthm-cable/orb/telemetry"
)

// State is the lifecycle stage of a Game.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateDisposed:
		return "disposed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// zoomStep is the distance factor applied per scroll notch.
const zoomStep = 0.9

// Options configures a Game.
type Options struct {
	Camera camera.Options

	LogStats       bool
	StatsWindowSec float64
	PerfWindow     int
	OutputDir      string

	// Config is written to the output directory when set.
	Config *config.Config

	// StatsCallback is invoked every time a stats window closes.
	StatsCallback func(telemetry.WindowStats)
}

// CameraOptions maps the camera section of cfg.
func CameraOptions(cfg *config.Config) camera.Options {
	c := cfg.Camera
	return camera.Options{
		FovY:        float32(c.FOV),
		Near:        float32(c.Near),
		Far:         float32(c.Far),
		Distance:    float32(c.Distance),
		MinDistance: float32(c.MinDistance),
		MaxDistance: float32(c.MaxDistance),
		Damping:     float32(c.Damping),
		OrbitSpeed:  float32(c.OrbitSpeed),
	}
}

// OptionsFromConfig fills Options from cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Camera:         CameraOptions(cfg),
		StatsWindowSec: cfg.Telemetry.StatsWindow,
		PerfWindow:     cfg.Telemetry.PerfCollectorWindow,
		Config:         cfg,
	}
}

type pointerMsg struct {
	x, y    float32
	left    bool
	pending bool
}

// Game is the lifecycle manager around a Simulation.
type Game struct {
	state State

	host    Host
	surface Surface
	detach  func()

	sim      *Simulation
	camera   *camera.Camera
	resolver *systems.PointerResolver
	pointer  pointerMsg

	frame    int32
	viewW    float32
	viewH    float32
	lastStep systems.MotionStats

	// Telemetry
	perfCollector *telemetry.PerfCollector
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
}

// New mounts a surface on host and starts listening for input. On error
// nothing stays registered with the host.
func New(host Host, sim *Simulation, opts Options) (*Game, error) {
	if host == nil {
		return nil, ErrNoMountPoint
	}
	if sim == nil {
		return nil, ErrNoSimulation
	}

	surface, err := host.Mount()
	if err != nil {
		if errors.Is(err, ErrNoMountPoint) || errors.Is(err, ErrNoRenderer) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrNoRenderer, err)
	}
	if surface == nil {
		return nil, ErrNoMountPoint
	}

	outputManager, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		surface.Release()
		return nil, fmt.Errorf("creating output: %w", err)
	}
	if opts.Config != nil {
		if err := outputManager.WriteConfig(opts.Config); err != nil {
			outputManager.Close()
			surface.Release()
			return nil, fmt.Errorf("writing config: %w", err)
		}
	}

	w, h := surface.Size()
	g := &Game{
		host:          host,
		surface:       surface,
		sim:           sim,
		camera:        camera.New(w, h, opts.Camera),
		resolver:      systems.NewPointerResolver(),
		viewW:         w,
		viewH:         h,
		perfCollector: telemetry.NewPerfCollector(opts.PerfWindow),
		collector:     telemetry.NewCollector(opts.StatsWindowSec),
		outputManager: outputManager,
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
	}
	g.detach = host.Listen(g)
	g.state = StateRunning

	return g, nil
}

// Frame runs one tick at now seconds since start: pending pointer, camera
// orbit, simulation step, draw. It does nothing unless the game is running.
func (g *Game) Frame(now float32) {
	if g.state != StateRunning {
		return
	}
	g.perfCollector.BeginFrame()

	g.perfCollector.Phase(telemetry.PhasePointer)
	if g.pointer.pending {
		if g.pointer.left {
			g.resolver.Reset()
		} else {
			g.resolver.Resolve(g.camera, g.pointer.x, g.pointer.y, g.sim.Params().InteractionRadius)
		}
		g.pointer.pending = false
	}

	g.perfCollector.Phase(telemetry.PhaseOrbit)
	g.camera.Update()

	g.perfCollector.Phase(telemetry.PhaseSimulate)
	pointer := g.resolver.State()
	g.lastStep = g.sim.Step(now, pointer)

	g.perfCollector.Phase(telemetry.PhaseRender)
	_, _, _, rot := g.sim.Rotation()
	g.surface.Draw(Frame{
		Index:     g.frame,
		Now:       now,
		Camera:    g.camera,
		Particles: g.sim.Particles(),
		Rotation:  rot,
		Pointer:   pointer,
		Params:    g.sim.Params(),
		Stats:     g.lastStep,
	})
	g.perfCollector.Present()

	g.perfCollector.Phase(telemetry.PhaseTelemetry)
	g.recordTelemetry(now)

	g.perfCollector.EndFrame()
	g.frame++
}

// OnResize matches the camera and surface to the host viewport.
func (g *Game) OnResize() {
	if g.state != StateRunning {
		return
	}
	w, h := g.surface.Size()
	if w <= 0 || h <= 0 {
		return
	}
	g.camera.Resize(w, h)
	g.surface.Resize(w, h)
	if w != g.viewW || h != g.viewH {
		g.viewW, g.viewH = w, h
		slog.Info("resize", "width", w, "height", h)
	}
}

// Dispose stops the game for good. It detaches input, releases the surface,
// disposes the simulation and closes telemetry output. Repeated calls do
// nothing.
func (g *Game) Dispose() {
	if g.state != StateRunning {
		return
	}
	g.state = StateDisposed

	if g.detach != nil {
		g.detach()
		g.detach = nil
	}
	g.surface.Release()
	g.sim.Dispose()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	slog.Info("disposed", "frames", g.frame)
}

// PointerMoved queues a pointer position; only the latest one before a
// frame is resolved.
func (g *Game) PointerMoved(x, y float32) {
	if g.state != StateRunning {
		return
	}
	g.pointer = pointerMsg{x: x, y: y, pending: true}
}

// PointerLeft queues clearing the pointer when it leaves the surface.
func (g *Game) PointerLeft() {
	if g.state != StateRunning {
		return
	}
	g.pointer = pointerMsg{left: true, pending: true}
}

// PointerDragged feeds orbit velocity to the camera.
func (g *Game) PointerDragged(dx, dy float32) {
	if g.state != StateRunning {
		return
	}
	g.camera.Orbit(dx, dy)
}

// Scrolled zooms the camera; positive delta moves closer.
func (g *Game) Scrolled(delta float32) {
	if g.state != StateRunning || delta == 0 {
		return
	}
	g.camera.ZoomBy(float32(math.Pow(zoomStep, float64(delta))))
}

func (g *Game) Resized() {
	g.OnResize()
}

// ResetView returns the camera to its starting orbit.
func (g *Game) ResetView() {
	if g.state != StateRunning {
		return
	}
	g.camera.Reset()
}

// State returns the lifecycle stage.
func (g *Game) State() State {
	return g.state
}

// Simulation returns the controlled simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Camera returns the orbit camera.
func (g *Game) Camera() *camera.Camera {
	return g.camera
}

// Pointer returns the last resolved pointer state.
func (g *Game) Pointer() systems.PointerState {
	return g.resolver.State()
}

// Frames returns the number of frames run.
func (g *Game) Frames() int32 {
	return g.frame
}

// LastStep returns the counts of the most recent simulation step.
func (g *Game) LastStep() systems.MotionStats {
	return g.lastStep
}

// PerfStats returns the rolling frame timings.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}
