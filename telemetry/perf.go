package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for one frame.
const (
	PhasePointer   = "pointer"
	PhaseOrbit     = "orbit"
	PhaseSimulate  = "simulate"
	PhaseRender    = "render"
	PhaseTelemetry = "telemetry"
)

// FramePhases lists the phases in execution order.
var FramePhases = []string{PhasePointer, PhaseOrbit, PhaseSimulate, PhaseRender, PhaseTelemetry}

// FrameTiming holds the measured durations of a single frame.
type FrameTiming struct {
	Total  time.Duration
	Phases map[string]time.Duration
}

// PerfCollector keeps a ring of recent frame timings.
type PerfCollector struct {
	ring   []FrameTiming
	next   int
	filled int

	current    map[string]time.Duration
	frameStart time.Time
	phaseStart time.Time
	phase      string

	// Wall-clock spacing between presented frames
	lastPresent time.Time
	presentGap  time.Duration
}

// NewPerfCollector creates a collector averaging over the last window frames.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{
		ring:    make([]FrameTiming, window),
		current: make(map[string]time.Duration),
	}
}

// BeginFrame starts timing a frame.
func (p *PerfCollector) BeginFrame() {
	p.frameStart = time.Now()
	p.current = make(map[string]time.Duration, len(FramePhases))
	p.phase = ""
}

// Phase closes the running phase, if any, and starts timing name.
func (p *PerfCollector) Phase(name string) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = name
}

// EndFrame closes the running phase and stores the frame in the ring.
func (p *PerfCollector) EndFrame() {
	now := time.Now()
	p.closePhase(now)

	p.ring[p.next] = FrameTiming{Total: now.Sub(p.frameStart), Phases: p.current}
	p.next = (p.next + 1) % len(p.ring)
	if p.filled < len(p.ring) {
		p.filled++
	}
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" {
		p.current[p.phase] += now.Sub(p.phaseStart)
		p.phase = ""
	}
}

// Present records that a frame reached the screen.
func (p *PerfCollector) Present() {
	now := time.Now()
	if !p.lastPresent.IsZero() {
		p.presentGap = now.Sub(p.lastPresent)
	}
	p.lastPresent = now
}

// PerfStats aggregates the frames currently in the ring.
type PerfStats struct {
	AvgFrame time.Duration
	MinFrame time.Duration
	MaxFrame time.Duration

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // Share of the average frame, 0-100

	// Frames per second the frame work alone would allow
	Budget float64

	// Measured presentation rate
	FPS float64
}

// Stats computes the aggregate over the ring.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{
		PhaseAvg: make(map[string]time.Duration),
		PhasePct: make(map[string]float64),
	}
	if p.presentGap > 0 {
		stats.FPS = float64(time.Second) / float64(p.presentGap)
	}
	if p.filled == 0 {
		return stats
	}

	var total time.Duration
	sums := make(map[string]time.Duration)
	for i := 0; i < p.filled; i++ {
		f := p.ring[i]
		total += f.Total
		if i == 0 || f.Total < stats.MinFrame {
			stats.MinFrame = f.Total
		}
		if f.Total > stats.MaxFrame {
			stats.MaxFrame = f.Total
		}
		for name, d := range f.Phases {
			sums[name] += d
		}
	}

	n := time.Duration(p.filled)
	stats.AvgFrame = total / n
	for name, sum := range sums {
		avg := sum / n
		stats.PhaseAvg[name] = avg
		if stats.AvgFrame > 0 {
			stats.PhasePct[name] = float64(avg) / float64(stats.AvgFrame) * 100
		}
	}
	if stats.AvgFrame > 0 {
		stats.Budget = float64(time.Second) / float64(stats.AvgFrame)
	}
	return stats
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		slog.Int("budget_fps", int(s.Budget)),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for _, name := range FramePhases {
		if pct, ok := s.PhasePct[name]; ok && pct > 0.1 {
			attrs = append(attrs, slog.Float64(name+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat row for perf.csv.
type PerfStatsCSV struct {
	Frame        int32   `csv:"frame"`
	AvgFrameUS   int64   `csv:"avg_frame_us"`
	MinFrameUS   int64   `csv:"min_frame_us"`
	MaxFrameUS   int64   `csv:"max_frame_us"`
	BudgetFPS    float64 `csv:"budget_fps"`
	FPS          float64 `csv:"fps"`
	PointerPct   float64 `csv:"pointer_pct"`
	OrbitPct     float64 `csv:"orbit_pct"`
	SimulatePct  float64 `csv:"simulate_pct"`
	RenderPct    float64 `csv:"render_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats for the frame they were taken at.
func (s PerfStats) ToCSV(frame int32) PerfStatsCSV {
	return PerfStatsCSV{
		Frame:        frame,
		AvgFrameUS:   s.AvgFrame.Microseconds(),
		MinFrameUS:   s.MinFrame.Microseconds(),
		MaxFrameUS:   s.MaxFrame.Microseconds(),
		BudgetFPS:    s.Budget,
		FPS:          s.FPS,
		PointerPct:   s.PhasePct[PhasePointer],
		OrbitPct:     s.PhasePct[PhaseOrbit],
		SimulatePct:  s.PhasePct[PhaseSimulate],
		RenderPct:    s.PhasePct[PhaseRender],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
