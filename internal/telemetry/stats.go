// Package telemetry aggregates per-generation population data into windows
// and writes them as CSV.
package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"

	"gol-sandbox/internal/sim"
)

// GenerationRecord is one generation's outcome.
type GenerationRecord struct {
	Generation int `csv:"generation"`
	Live       int `csv:"live"`
	Births     int `csv:"births"`
	Deaths     int `csv:"deaths"`
}

// WindowStats holds aggregated statistics for a run of generations.
type WindowStats struct {
	WindowStart int `csv:"window_start"`
	WindowEnd   int `csv:"window_end"`

	Births int `csv:"births"`
	Deaths int `csv:"deaths"`

	LiveEnd  int     `csv:"live_end"`
	LiveMean float64 `csv:"live_mean"`
	LiveStd  float64 `csv:"live_std"`
	LiveMin  float64 `csv:"live_min"`
	LiveP50  float64 `csv:"live_p50"`
	LiveMax  float64 `csv:"live_max"`

	// Generations in the window where nothing changed.
	StillGens int `csv:"still_gens"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStart),
		slog.Int("window_end", s.WindowEnd),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Int("live_end", s.LiveEnd),
		slog.Float64("live_mean", s.LiveMean),
		slog.Float64("live_std", s.LiveStd),
		slog.Int("still_gens", s.StillGens),
	)
}

// Collector buffers generation records and emits WindowStats every window
// generations.
type Collector struct {
	window  int
	records []GenerationRecord
}

// NewCollector creates a collector. Windows smaller than one are treated as one.
func NewCollector(window int) *Collector {
	if window < 1 {
		window = 1
	}
	return &Collector{window: window, records: make([]GenerationRecord, 0, window)}
}

// Window returns the configured window length.
func (c *Collector) Window() int { return c.window }

// Record adds one generation. It returns the finished window and true when
// this generation closes one.
func (c *Collector) Record(generation int, t sim.Transition) (WindowStats, bool) {
	c.records = append(c.records, GenerationRecord{
		Generation: generation,
		Live:       t.Live,
		Births:     t.Births,
		Deaths:     t.Deaths,
	})
	if len(c.records) < c.window {
		return WindowStats{}, false
	}
	return c.Flush()
}

// Flush emits whatever is buffered as a partial window.
func (c *Collector) Flush() (WindowStats, bool) {
	if len(c.records) == 0 {
		return WindowStats{}, false
	}
	s := Summarize(c.records)
	c.records = c.records[:0]
	return s, true
}

// Reset drops buffered records.
func (c *Collector) Reset() { c.records = c.records[:0] }

// Summarize computes window statistics over records.
func Summarize(records []GenerationRecord) WindowStats {
	if len(records) == 0 {
		return WindowStats{}
	}
	live := make([]float64, len(records))
	var s WindowStats
	for i, r := range records {
		live[i] = float64(r.Live)
		s.Births += r.Births
		s.Deaths += r.Deaths
		if r.Births == 0 && r.Deaths == 0 {
			s.StillGens++
		}
	}
	s.WindowStart = records[0].Generation
	s.WindowEnd = records[len(records)-1].Generation
	s.LiveEnd = records[len(records)-1].Live

	s.LiveMean, s.LiveStd = stat.MeanStdDev(live, nil)
	if len(live) < 2 {
		s.LiveStd = 0
	}
	slices.Sort(live)
	s.LiveMin = live[0]
	s.LiveMax = live[len(live)-1]
	s.LiveP50 = stat.Quantile(0.5, stat.Empirical, live, nil)
	return s
}
