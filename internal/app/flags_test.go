package app

import (
	"flag"
	"testing"
	"time"

	"github.com/integrii/flaggy"
)

func TestBindAndLoadOverrides(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse([]string{"-w", "40", "-gen-ms", "200", "-rule", "B36/S23", "-pattern", "glider", "-tie", "draw"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, err := c.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Grid.Width != 40 || cfg.Grid.Height != 100 {
		t.Fatalf("unexpected grid %+v", cfg.Grid)
	}
	if cfg.Derived.GenerationPeriod != 200*time.Millisecond {
		t.Fatalf("expected 200ms, got %v", cfg.Derived.GenerationPeriod)
	}
	if cfg.Derived.Rule.String() != "B36/S23" {
		t.Fatalf("unexpected rule %v", cfg.Derived.Rule)
	}
	if cfg.Seed.Pattern != "glider" || cfg.Derived.TieBreak.String() != "draw" {
		t.Fatalf("overrides not applied: %+v %v", cfg.Seed, cfg.Derived.TieBreak)
	}
}

func TestLoadRejectsBadOverride(t *testing.T) {
	c := NewConfig()
	c.Rule = "Q12"
	if _, err := c.Load(); err == nil {
		t.Fatalf("expected invalid rule to fail")
	}
}

func TestNoOverridesKeepsDefaults(t *testing.T) {
	cfg, err := NewConfig().Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Window.TPS != 60 || cfg.Seed.Pattern != "r-pentomino" {
		t.Fatalf("defaults changed: %+v %+v", cfg.Window, cfg.Seed)
	}
}

func TestBindFlaggy(t *testing.T) {
	p := flaggy.NewParser("test")
	c := NewConfig()
	c.BindFlaggy(p)
	if err := p.ParseArgs([]string{"-x", "30", "--pattern", "pulsar", "-s", "9"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, err := c.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Grid.Width != 30 || cfg.Seed.Pattern != "pulsar" || cfg.Seed.RNGSeed != 9 {
		t.Fatalf("flaggy overrides not applied: %+v %+v", cfg.Grid, cfg.Seed)
	}
}
