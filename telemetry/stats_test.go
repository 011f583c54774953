package telemetry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orb/systems"
)

func TestComputeRadiusStats(t *testing.T) {
	values := []float64{9, 2, 4, 4, 5, 4, 7, 5}
	mean, std, p10, p50, p90 := ComputeRadiusStats(values)

	if math.Abs(mean-5) > 1e-9 {
		t.Errorf("mean = %v, want 5", mean)
	}
	// Sample standard deviation: sqrt(32/7)
	if math.Abs(std-math.Sqrt(32.0/7.0)) > 1e-9 {
		t.Errorf("std = %v, want %v", std, math.Sqrt(32.0/7.0))
	}
	if !(p10 <= p50 && p50 <= p90) {
		t.Errorf("percentiles not ordered: %v %v %v", p10, p50, p90)
	}
	if p10 < 2 || p90 > 9 {
		t.Errorf("percentiles outside data range: %v %v", p10, p90)
	}
	// Input must not be reordered
	if values[0] != 9 {
		t.Error("ComputeRadiusStats sorted its input in place")
	}
}

func TestComputeRadiusStatsEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMean float64
		wantStd  float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{2.5}, 2.5, 0},
		{"constant", []float64{3, 3, 3, 3}, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, _, p50, _ := ComputeRadiusStats(tt.values)
			if math.Abs(mean-tt.wantMean) > 1e-9 || math.Abs(std-tt.wantStd) > 1e-9 {
				t.Errorf("got mean=%v std=%v, want %v %v", mean, std, tt.wantMean, tt.wantStd)
			}
			if len(tt.values) > 0 && math.Abs(p50-tt.wantMean) > 1e-9 {
				t.Errorf("p50 = %v, want %v", p50, tt.wantMean)
			}
		})
	}
}

func TestParticleMetrics(t *testing.T) {
	particles := []systems.Particle{
		{Position: mgl32.Vec3{3, 4, 0}, Velocity: mgl32.Vec3{0, 0, 0.5}},
		{Position: mgl32.Vec3{0, 0, 2}},
	}

	radii, speeds := ParticleMetrics(particles, nil, nil)
	if len(radii) != 2 || math.Abs(radii[0]-5) > 1e-6 || math.Abs(radii[1]-2) > 1e-6 {
		t.Errorf("radii = %v, want [5 2]", radii)
	}
	if math.Abs(speeds[0]-0.5) > 1e-6 || speeds[1] != 0 {
		t.Errorf("speeds = %v, want [0.5 0]", speeds)
	}
}
