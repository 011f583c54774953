// Frame grab tool - renders the particle sphere offscreen and saves a PNG.
//
// Usage: go run ./cmd/framegrab -frames 120 -morph 0.5 -out frame.png
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orb/config"
	"github.com/pthm-cable/orb/game"
	"github.com/pthm-cable/orb/renderer"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "frame.png", "Output PNG path")
	width := flag.Int("width", 1024, "Render width")
	height := flag.Int("height", 1024, "Render height")
	frames := flag.Int("frames", 120, "Frames to simulate before capturing")
	morph := flag.Float64("morph", -1, "Scatter value to set before running (negative = use config)")
	seed := flag.Int64("seed", 1, "RNG seed")
	flag.Parse()

	config.MustInit(*configPath)
	cfg := config.Cfg()

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Frame Grab")
	defer rl.CloseWindow()

	sim := game.NewSimulation(cfg, *seed)
	if *morph >= 0 {
		sim.SetMorphValue(float32(*morph))
	}

	g, err := game.New(renderer.NewWindow(), sim, game.OptionsFromConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer g.Dispose()

	dt := float32(1) / 60
	for i := 0; i < *frames; i++ {
		g.Frame(float32(i) * dt)
	}

	img := rl.LoadImageFromScreen()
	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if !success {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
	slog.Info("frame saved", "path", *outPath, "frames", *frames, "particles", g.LastStep().Particles)
}
