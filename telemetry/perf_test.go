package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.BeginFrame()
		pc.Phase(PhaseSimulate)
		time.Sleep(100 * time.Microsecond)
		pc.Phase(PhaseRender)
		time.Sleep(200 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()

	if stats.AvgFrame <= 0 {
		t.Error("expected positive average frame duration")
	}
	if _, ok := stats.PhaseAvg[PhaseSimulate]; !ok {
		t.Error("expected simulate phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseRender]; !ok {
		t.Error("expected render phase to be tracked")
	}
	if stats.MinFrame > stats.AvgFrame || stats.AvgFrame > stats.MaxFrame {
		t.Errorf("expected min <= avg <= max, got %v %v %v", stats.MinFrame, stats.AvgFrame, stats.MaxFrame)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 12; i++ {
		pc.BeginFrame()
		pc.Phase(PhasePointer)
		pc.EndFrame()
	}

	if pc.filled != 5 {
		t.Errorf("filled = %d, want window size 5", pc.filled)
	}
	if pc.Stats().Budget <= 0 {
		t.Error("expected positive frame budget")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.BeginFrame()
		pc.Phase(PhaseOrbit)
		time.Sleep(1 * time.Millisecond)
		pc.Phase(PhaseSimulate)
		time.Sleep(20 * time.Millisecond)
		pc.EndFrame()
	}

	stats := pc.Stats()
	if stats.PhasePct[PhaseSimulate] <= stats.PhasePct[PhaseOrbit] {
		t.Errorf("expected simulate (%v%%) > orbit (%v%%)", stats.PhasePct[PhaseSimulate], stats.PhasePct[PhaseOrbit])
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(0).Stats()

	if stats.AvgFrame != 0 {
		t.Error("expected zero avg frame duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollector_Present(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.Present()
	time.Sleep(16 * time.Millisecond)
	pc.Present()

	stats := pc.Stats()
	if stats.FPS <= 0 || stats.FPS > 70 {
		t.Errorf("expected FPS in (0, 70] with 16ms gap, got %v", stats.FPS)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		AvgFrame: 2 * time.Millisecond,
		PhasePct: map[string]float64{PhaseSimulate: 60, PhaseRender: 35},
		FPS:      58,
	}

	row := stats.ToCSV(240)
	if row.Frame != 240 || row.AvgFrameUS != 2000 || row.FPS != 58 {
		t.Errorf("row = %+v", row)
	}
	if row.SimulatePct != 60 || row.RenderPct != 35 || row.PointerPct != 0 {
		t.Errorf("phase pct not mapped: %+v", row)
	}
}
