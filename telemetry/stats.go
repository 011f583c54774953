// Package telemetry collects frame statistics and performance timings and
// writes them out as structured logs and CSV.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/orb/systems"
)

// WindowStats holds aggregated statistics for one telemetry window.
type WindowStats struct {
	WindowStartFrame int32   `csv:"-"`
	WindowEndFrame   int32   `csv:"frame"`
	SimTimeSec       float64 `csv:"sim_time"`
	Frames           int     `csv:"frames"`

	Particles       int     `csv:"particles"`
	InteractingMean float64 `csv:"interacting_mean"`
	InteractingMax  int     `csv:"interacting_max"`
	Morph           float64 `csv:"morph"`

	// Distance of particles from the group origin at window end
	RadiusMean float64 `csv:"radius_mean"`
	RadiusStd  float64 `csv:"radius_std"`
	RadiusP10  float64 `csv:"radius_p10"`
	RadiusP50  float64 `csv:"radius_p50"`
	RadiusP90  float64 `csv:"radius_p90"`

	// Mean per-frame displacement at window end
	SpeedMean float64 `csv:"speed_mean"`
}

// ComputeRadiusStats returns mean, sample standard deviation and the 10th,
// 50th and 90th percentiles of values. Empty input yields zeros.
func ComputeRadiusStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	if n > 1 {
		std = stat.StdDev(sorted, nil)
	}
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, std, p10, p50, p90
}

// ParticleMetrics extracts radial distances and frame speeds from a snapshot.
// radii and speeds are reused when they have capacity.
func ParticleMetrics(particles []systems.Particle, radii, speeds []float64) ([]float64, []float64) {
	radii = radii[:0]
	speeds = speeds[:0]
	for i := range particles {
		radii = append(radii, float64(particles[i].Position.Len()))
		speeds = append(speeds, float64(particles[i].Velocity.Len()))
	}
	return radii, speeds
}

// LogStats logs the window with slog.
func (s WindowStats) LogStats() {
	slog.Info("frame_stats",
		"frame", s.WindowEndFrame,
		"sim_time", s.SimTimeSec,
		"frames", s.Frames,
		"particles", s.Particles,
		"interacting_mean", s.InteractingMean,
		"interacting_max", s.InteractingMax,
		"morph", s.Morph,
		"radius_mean", s.RadiusMean,
		"radius_std", s.RadiusStd,
		"radius_p50", s.RadiusP50,
		"speed_mean", s.SpeedMean,
	)
}
