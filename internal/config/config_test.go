package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gol-sandbox/internal/core"
	"gol-sandbox/internal/sim"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Grid.Width != 100 || cfg.Grid.Height != 100 || cfg.Grid.CellSize != 32 {
		t.Fatalf("unexpected grid %+v", cfg.Grid)
	}
	if cfg.Derived.InputPeriod != 16*time.Millisecond || cfg.Derived.GenerationPeriod != 60*time.Millisecond {
		t.Fatalf("unexpected periods %+v", cfg.Derived)
	}
	if cfg.Derived.Rule != sim.Conway {
		t.Fatalf("expected Conway, got %v", cfg.Derived.Rule)
	}
	if cfg.Derived.TieBreak != sim.TieEraseWins {
		t.Fatalf("expected erase-wins, got %v", cfg.Derived.TieBreak)
	}
	if cfg.Derived.LogLevel != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", cfg.Derived.LogLevel)
	}
}

func TestDefaultSeedIsStartupShape(t *testing.T) {
	cfg := Default()
	pts, err := cfg.SeedPoints()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	want := map[core.Point]bool{
		{X: 50, Y: 50}: true, {X: 50, Y: 51}: true, {X: 49, Y: 51}: true,
		{X: 50, Y: 52}: true, {X: 51, Y: 52}: true,
	}
	if len(pts) != len(want) {
		t.Fatalf("expected %d points, got %v", len(want), pts)
	}
	for _, p := range pts {
		if !want[p] {
			t.Fatalf("unexpected seed point %v", p)
		}
	}
}

func TestOverlayKeepsUnsetKeys(t *testing.T) {
	path := writeFile(t, "grid:\n  width: 40\ntiming:\n  generation_period_ms: 120\nrules:\n  tie_break: draw\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Grid.Width != 40 || cfg.Grid.Height != 100 {
		t.Fatalf("overlay lost defaults: %+v", cfg.Grid)
	}
	if cfg.Derived.GenerationPeriod != 120*time.Millisecond {
		t.Fatalf("expected 120ms, got %v", cfg.Derived.GenerationPeriod)
	}
	if cfg.Derived.TieBreak != sim.TieDrawWins {
		t.Fatalf("expected draw-wins, got %v", cfg.Derived.TieBreak)
	}
}

func TestExplicitPointsAppended(t *testing.T) {
	path := writeFile(t, "seed:\n  pattern: none\n  points: [[1, 2], [3, 4]]\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	pts, err := cfg.SeedPoints()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(pts) != 2 || pts[0] != (core.Point{X: 1, Y: 2}) || pts[1] != (core.Point{X: 3, Y: 4}) {
		t.Fatalf("unexpected points %v", pts)
	}
}

func TestInvalidValuesRejected(t *testing.T) {
	cases := map[string]string{
		"width":   "grid:\n  width: 0\n",
		"period":  "timing:\n  generation_period_ms: -1\n",
		"rule":    "rules:\n  rulestring: B9/S23\n",
		"tie":     "rules:\n  tie_break: coin\n",
		"pattern": "seed:\n  pattern: spaceship-9000\n",
		"level":   "log:\n  level: chatty\n",
		"density": "seed:\n  density: 1.5\n",
	}
	for name, body := range cases {
		_, err := Load(writeFile(t, body))
		if !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Grid.Width = 64
	cfg.Rules.Rulestring = "B36/S23"
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if back.Grid.Width != 64 || back.Derived.Rule.String() != "B36/S23" {
		t.Fatalf("round trip lost values: %+v %v", back.Grid, back.Derived.Rule)
	}
}

func TestSimConfigBuildsSimulation(t *testing.T) {
	cfg := Default()
	sc, err := cfg.SimConfig()
	if err != nil {
		t.Fatalf("sim config: %v", err)
	}
	s := sim.New(sc, nil)
	if s.Grid().LiveCount() != 5 {
		t.Fatalf("expected 5 live cells, got %d", s.Grid().LiveCount())
	}
	if s.Clock().GenerationPeriod() != 60*time.Millisecond {
		t.Fatalf("unexpected generation period %v", s.Clock().GenerationPeriod())
	}
}
