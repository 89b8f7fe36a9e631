// Package config provides configuration loading for the sandbox.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"gol-sandbox/internal/core"
	"gol-sandbox/internal/patterns"
	"gol-sandbox/internal/sim"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid marks a configuration that failed validation.
var ErrInvalid = errors.New("invalid config")

// Config holds all sandbox configuration.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Timing    TimingConfig    `yaml:"timing"`
	Rules     RulesConfig     `yaml:"rules"`
	Seed      SeedConfig      `yaml:"seed"`
	Window    WindowConfig    `yaml:"window"`
	Camera    CameraConfig    `yaml:"camera"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// GridConfig sizes the board.
type GridConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float64 `yaml:"cell_size"` // world units per cell
}

// TimingConfig holds the two cadences in milliseconds.
type TimingConfig struct {
	InputPeriodMS      int `yaml:"input_period_ms"`
	GenerationPeriodMS int `yaml:"generation_period_ms"`
	MaxCatchUp         int `yaml:"max_catch_up"`
}

// RulesConfig selects the rule and edit tie-break.
type RulesConfig struct {
	Rulestring string `yaml:"rulestring"`
	TieBreak   string `yaml:"tie_break"`
}

// SeedConfig describes the startup population.
type SeedConfig struct {
	Pattern        string   `yaml:"pattern"`
	OffsetX        int      `yaml:"offset_x"`
	OffsetY        int      `yaml:"offset_y"`
	Centered       bool     `yaml:"centered"`
	Points         [][2]int `yaml:"points"`
	RNGSeed        int64    `yaml:"rng_seed"`
	Density        float64  `yaml:"density"`
	NoiseScale     float64  `yaml:"noise_scale"`
	NoiseThreshold float64  `yaml:"noise_threshold"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

// CameraConfig holds pan and zoom tuning.
type CameraConfig struct {
	MoveSpeed    float64 `yaml:"move_speed"`
	Acceleration float64 `yaml:"acceleration"`
	ZoomStep     float64 `yaml:"zoom_step"`
	MinZoom      float64 `yaml:"min_zoom"`
	MaxZoom      float64 `yaml:"max_zoom"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// TelemetryConfig holds CSV output settings.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"`
	Window    int    `yaml:"window"`
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	InputPeriod      time.Duration
	GenerationPeriod time.Duration
	Rule             sim.Rule
	TieBreak         sim.TieBreak
	LogLevel         slog.Level
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("embedded defaults: %v", err))
	}
	return cfg
}

// Load reads embedded defaults and overlays the file at path when path is
// non-empty. Only keys present in the file are overwritten.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize validates the config and recomputes derived values. Call it
// after changing fields by hand.
func (c *Config) Finalize() error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.computeDerived()
}

// Validate checks ranges that would otherwise be silently replaced.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid: %dx%d must be positive", c.Grid.Width, c.Grid.Height))
	}
	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.cell_size: %v must be positive", c.Grid.CellSize))
	}
	if c.Timing.InputPeriodMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.input_period_ms: %d must be positive", c.Timing.InputPeriodMS))
	}
	if c.Timing.GenerationPeriodMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.generation_period_ms: %d must be positive", c.Timing.GenerationPeriodMS))
	}
	if c.Seed.Pattern != "" {
		if _, ok := patterns.Lookup(c.Seed.Pattern); !ok {
			errs = append(errs, fmt.Errorf("seed.pattern: unknown %q (have %s)", c.Seed.Pattern, strings.Join(patterns.Names(), ", ")))
		}
	}
	if c.Seed.Density < 0 || c.Seed.Density > 1 {
		errs = append(errs, fmt.Errorf("seed.density: %v outside [0,1]", c.Seed.Density))
	}
	if c.Camera.MinZoom <= 0 || c.Camera.MaxZoom < c.Camera.MinZoom {
		errs = append(errs, fmt.Errorf("camera: zoom range [%v,%v] invalid", c.Camera.MinZoom, c.Camera.MaxZoom))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps: %d must be positive", c.Window.TPS))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

func (c *Config) computeDerived() error {
	rule, err := sim.ParseRule(c.Rules.Rulestring)
	if err != nil {
		return fmt.Errorf("%w: rules.rulestring: %w", ErrInvalid, err)
	}
	tie, err := sim.ParseTieBreak(c.Rules.TieBreak)
	if err != nil {
		return fmt.Errorf("%w: rules.tie_break: %w", ErrInvalid, err)
	}
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	c.Derived.Rule = rule
	c.Derived.TieBreak = tie
	c.Derived.LogLevel = level
	c.Derived.InputPeriod = time.Duration(c.Timing.InputPeriodMS) * time.Millisecond
	c.Derived.GenerationPeriod = time.Duration(c.Timing.GenerationPeriodMS) * time.Millisecond
	return nil
}

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// SeedPoints builds the configured pattern followed by the explicit points.
func (c *Config) SeedPoints() ([]core.Point, error) {
	var pts []core.Point
	if c.Seed.Pattern != "" {
		opts := patterns.Options{
			Width:          c.Grid.Width,
			Height:         c.Grid.Height,
			Seed:           c.Seed.RNGSeed,
			Density:        c.Seed.Density,
			NoiseScale:     c.Seed.NoiseScale,
			NoiseThreshold: c.Seed.NoiseThreshold,
		}
		built, err := patterns.Build(c.Seed.Pattern, opts, c.Seed.OffsetX, c.Seed.OffsetY, c.Seed.Centered)
		if err != nil {
			return nil, err
		}
		pts = built
	}
	for _, p := range c.Seed.Points {
		pts = append(pts, core.Point{X: p[0], Y: p[1]})
	}
	return pts, nil
}

// SimConfig converts the loaded config into simulation parameters.
func (c *Config) SimConfig() (sim.Config, error) {
	seed, err := c.SeedPoints()
	if err != nil {
		return sim.Config{}, err
	}
	return sim.Config{
		Width:            c.Grid.Width,
		Height:           c.Grid.Height,
		CellSize:         c.Grid.CellSize,
		InputPeriod:      c.Derived.InputPeriod,
		GenerationPeriod: c.Derived.GenerationPeriod,
		MaxCatchUp:       c.Timing.MaxCatchUp,
		Rule:             c.Derived.Rule,
		TieBreak:         c.Derived.TieBreak,
		Seed:             seed,
	}, nil
}

// NewLogger returns a text slog logger at the configured level.
func (c *Config) NewLogger(json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Derived.LogLevel}
	if json {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
