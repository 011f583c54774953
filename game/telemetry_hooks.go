package game

import (
	"log/slog"

	"github.com/pthm-cable/orb/telemetry"
)

// recordTelemetry samples the frame and flushes the stats window when due.
func (g *Game) recordTelemetry(now float32) {
	g.collector.Record(telemetry.FrameSample{
		Frame:       g.frame,
		Time:        float64(now),
		Particles:   g.lastStep.Particles,
		Interacting: g.lastStep.Interacting,
		Morph:       g.sim.Params().Morph,
	})
	if !g.collector.ShouldFlush() {
		return
	}

	stats := g.collector.Flush(g.sim.Particles())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		slog.Info("perf", "frame", g.frame, "stats", perfStats)
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteStats(stats); err != nil {
			slog.Error("failed to write frame stats", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
