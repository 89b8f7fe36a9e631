package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gol-sandbox/internal/core"
	"gol-sandbox/internal/sim"
)

func TestSummarize(t *testing.T) {
	recs := []GenerationRecord{
		{Generation: 1, Live: 2, Births: 1, Deaths: 0},
		{Generation: 2, Live: 4, Births: 3, Deaths: 1},
		{Generation: 3, Live: 4, Births: 0, Deaths: 0},
		{Generation: 4, Live: 6, Births: 2, Deaths: 0},
	}
	s := Summarize(recs)
	if s.WindowStart != 1 || s.WindowEnd != 4 {
		t.Fatalf("unexpected window bounds %d..%d", s.WindowStart, s.WindowEnd)
	}
	if s.Births != 6 || s.Deaths != 1 || s.StillGens != 1 {
		t.Fatalf("unexpected counts %+v", s)
	}
	if s.LiveEnd != 6 || s.LiveMin != 2 || s.LiveMax != 6 {
		t.Fatalf("unexpected live range %+v", s)
	}
	if math.Abs(s.LiveMean-4) > 1e-9 {
		t.Fatalf("expected mean 4, got %v", s.LiveMean)
	}
	// sample std of {2,4,4,6} is sqrt(8/3)
	if math.Abs(s.LiveStd-math.Sqrt(8.0/3.0)) > 1e-9 {
		t.Fatalf("unexpected std %v", s.LiveStd)
	}
	if s.LiveP50 != 4 {
		t.Fatalf("expected median 4, got %v", s.LiveP50)
	}
}

func TestSummarizeSingleRecord(t *testing.T) {
	s := Summarize([]GenerationRecord{{Generation: 9, Live: 3}})
	if s.LiveStd != 0 || s.LiveMean != 3 {
		t.Fatalf("unexpected single-record stats %+v", s)
	}
	if (Summarize(nil) != WindowStats{}) {
		t.Fatalf("expected zero stats for empty input")
	}
}

func TestCollectorWindows(t *testing.T) {
	c := NewCollector(3)
	var closed []WindowStats
	for g := 1; g <= 7; g++ {
		if s, ok := c.Record(g, sim.Transition{Live: g}); ok {
			closed = append(closed, s)
		}
	}
	if len(closed) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(closed))
	}
	if closed[1].WindowStart != 4 || closed[1].WindowEnd != 6 {
		t.Fatalf("unexpected second window %+v", closed[1])
	}
	s, ok := c.Flush()
	if !ok || s.WindowStart != 7 || s.WindowEnd != 7 {
		t.Fatalf("expected partial window at 7, got %+v ok=%v", s, ok)
	}
	if _, ok := c.Flush(); ok {
		t.Fatalf("flush after flush should be empty")
	}
	if NewCollector(0).Window() != 1 {
		t.Fatalf("window should clamp to 1")
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("expected nil manager, got %v %v", om, err)
	}
	if err := om.WriteGeneration(GenerationRecord{}); err != nil {
		t.Fatalf("nil manager should ignore writes: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}

func TestOutputManagerWritesHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for g := 1; g <= 3; g++ {
		if err := om.WriteGeneration(GenerationRecord{Generation: g, Live: g * 2}); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := om.WriteWindow(WindowStats{WindowStart: 1, WindowEnd: 3}); err != nil {
		t.Fatalf("write window: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "generations.csv"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %q", lines)
	}
	if lines[0] != "generation,live,births,deaths" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[3] != "3,6,0,0" {
		t.Fatalf("unexpected last row %q", lines[3])
	}

	win, err := os.ReadFile(filepath.Join(dir, "windows.csv"))
	if err != nil {
		t.Fatalf("read windows: %v", err)
	}
	if !strings.HasPrefix(string(win), "window_start,window_end,") {
		t.Fatalf("unexpected windows header %q", win)
	}
}

func TestRecorderWindowsFromSimulation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "rec")
	rec, err := NewRecorder(dir, 2, nil)
	if err != nil {
		t.Fatalf("recorder: %v", err)
	}
	cfg := sim.DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	cfg.Seed = []core.Point{{X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}}
	s := sim.New(cfg, nil)
	rec.Attach(s)
	for i := 0; i < 5; i++ {
		s.Step()
	}
	last, ok := rec.Last()
	if !ok || last.WindowEnd != 4 || last.LiveMean != 3 {
		t.Fatalf("unexpected last window %+v ok=%v", last, ok)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	last, _ = rec.Last()
	if last.WindowStart != 5 || last.WindowEnd != 5 {
		t.Fatalf("close should flush the partial window, got %+v", last)
	}
	data, err := os.ReadFile(filepath.Join(dir, "windows.csv"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if n := len(strings.Split(strings.TrimSpace(string(data)), "\n")); n != 4 {
		t.Fatalf("expected header + 3 windows, got %d lines", n)
	}
}
