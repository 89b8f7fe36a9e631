package telemetry

import (
	"log/slog"

	"gol-sandbox/internal/sim"
)

// Recorder feeds generations into a Collector, logs each closed window and
// mirrors both to CSV when an output directory is configured.
type Recorder struct {
	collector *Collector
	out       *OutputManager
	log       *slog.Logger

	writeFailed bool
	last        WindowStats
	windows     int
}

// NewRecorder creates a recorder. An empty dir disables CSV output but
// window stats are still logged.
func NewRecorder(dir string, window int, logger *slog.Logger) (*Recorder, error) {
	if logger == nil {
		logger = slog.Default()
	}
	out, err := NewOutputManager(dir)
	if err != nil {
		return nil, err
	}
	return &Recorder{collector: NewCollector(window), out: out, log: logger}, nil
}

// Observe matches the simulation observer signature.
func (r *Recorder) Observe(generation int, t sim.Transition) {
	r.check(r.out.WriteGeneration(GenerationRecord{
		Generation: generation,
		Live:       t.Live,
		Births:     t.Births,
		Deaths:     t.Deaths,
	}))
	if s, ok := r.collector.Record(generation, t); ok {
		r.emit(s)
	}
}

// Attach registers the recorder as s's observer.
func (r *Recorder) Attach(s *sim.Simulation) {
	s.SetObserver(r.Observe)
}

// Last returns the most recent closed window.
func (r *Recorder) Last() (WindowStats, bool) { return r.last, r.windows > 0 }

// Output exposes the CSV writer, nil when disabled.
func (r *Recorder) Output() *OutputManager { return r.out }

// Close flushes a partial window and closes output files.
func (r *Recorder) Close() error {
	if s, ok := r.collector.Flush(); ok {
		r.emit(s)
	}
	return r.out.Close()
}

func (r *Recorder) emit(s WindowStats) {
	r.last = s
	r.windows++
	r.log.Info("window", "stats", s)
	r.check(r.out.WriteWindow(s))
}

func (r *Recorder) check(err error) {
	if err == nil || r.writeFailed {
		return
	}
	r.writeFailed = true
	r.log.Warn("telemetry write failed; further errors suppressed", "error", err)
}
