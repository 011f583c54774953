package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orb/config"
	"github.com/pthm-cable/orb/game"
	"github.com/pthm-cable/orb/renderer"
	"github.com/pthm-cable/orb/ui"
)

const panelWidth = 280

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N frames (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.OptionsFromConfig(cfg)
	opts.LogStats = *logStats
	opts.OutputDir = *outputDir
	if *statsWindow > 0 {
		opts.StatsWindowSec = *statsWindow
	}

	slog.Info("config",
		"path", *configPath,
		"seed", rngSeed,
		"particles", cfg.Particles.Count,
		"headless", *headless,
		"max_ticks", *maxTicks,
	)

	sim := game.NewSimulation(cfg, rngSeed)

	if *headless {
		// Fixed time step, no raylib needed
		host := game.NewHeadlessHost(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32)
		g, err := game.New(host, sim, opts)
		if err != nil {
			slog.Error("failed to start", "error", err)
			os.Exit(1)
		}
		defer g.Dispose()

		dt := float32(1) / float32(max(cfg.Screen.TargetFPS, 1))
		for frame := 0; *maxTicks == 0 || frame < *maxTicks; frame++ {
			g.Frame(float32(frame) * dt)
		}
		slog.Info("max ticks reached", "frame", g.Frames())
		return
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	window := renderer.NewWindow()
	g, err := game.New(window, sim, opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		rl.CloseWindow()
		os.Exit(1)
	}
	defer g.Dispose()

	overlays := ui.NewOverlayRegistry()
	panel := ui.NewControlPanel(sim, int32(rl.GetScreenWidth())-panelWidth-10, 10, panelWidth)
	hud := ui.NewHUD()
	perf := ui.NewPerfPanel(10, 85)

	window.SetInputCapture(panel.Contains)
	window.SetOverlay(func(f *game.Frame) {
		screenW, screenH := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

		if overlays.IsEnabled(ui.OverlayHUD) {
			hud.Draw(ui.HUDData{
				Title:       cfg.Screen.Title,
				Particles:   f.Stats.Particles,
				Interacting: f.Stats.Interacting,
				Morph:       f.Params.Morph,
				Frame:       f.Index,
				FPS:         rl.GetFPS(),
			})
			hud.DrawControls(screenH, overlays.Legend()+"  [R] Reset view")
		}
		if overlays.IsEnabled(ui.OverlayPerf) {
			perf.Draw(g.PerfStats())
		}
		panel.SetPosition(screenW-panelWidth-10, 10)
		panel.Draw()
	})

	for !rl.WindowShouldClose() {
		overlays.HandleKeys()
		if rl.IsKeyPressed(rl.KeyR) {
			g.ResetView()
		}
		panel.SetVisible(overlays.IsEnabled(ui.OverlayControls))

		window.Poll()
		g.Frame(float32(rl.GetTime()))

		if *maxTicks > 0 && int(g.Frames()) >= *maxTicks {
			break
		}
	}
}
