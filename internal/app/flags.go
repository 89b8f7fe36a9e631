package app

import (
	"flag"

	"github.com/integrii/flaggy"

	"gol-sandbox/internal/config"
)

// Config represents the command-line parameters for the application. Zero
// values leave the loaded YAML untouched.
type Config struct {
	Path      string
	Pattern   string
	Rule      string
	TieBreak  string
	Width     int
	Height    int
	GenMS     int
	TPS       int
	Seed      int64
	LogLevel  string
	Telemetry string
}

// NewConfig returns a Config with no overrides.
func NewConfig() *Config {
	return &Config{}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Path, "config", c.Path, "YAML config file overlaid on the defaults")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern name")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rulestring such as B3/S23")
	fs.StringVar(&c.TieBreak, "tie", c.TieBreak, "same-cell paint and erase winner: erase or draw")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.GenMS, "gen-ms", c.GenMS, "milliseconds per generation")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random and noise patterns")
	fs.StringVar(&c.LogLevel, "log", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.Telemetry, "telemetry", c.Telemetry, "directory for CSV telemetry output")
}

// BindFlaggy attaches the same overrides to a flaggy parser, for the
// terminal tools.
func (c *Config) BindFlaggy(p *flaggy.Parser) {
	p.String(&c.Path, "c", "config", "YAML config file overlaid on the defaults")
	p.String(&c.Pattern, "p", "pattern", "seed pattern name")
	p.String(&c.Rule, "r", "rule", "rulestring such as B3/S23")
	p.String(&c.TieBreak, "t", "tie", "same-cell paint and erase winner: erase or draw")
	p.Int(&c.Width, "x", "width", "grid width in cells")
	p.Int(&c.Height, "y", "height", "grid height in cells")
	p.Int(&c.GenMS, "g", "gen-ms", "milliseconds per generation")
	p.Int64(&c.Seed, "s", "seed", "seed for random and noise patterns")
	p.String(&c.LogLevel, "l", "log", "log level: debug, info, warn, error")
	p.String(&c.Telemetry, "o", "telemetry", "directory for CSV telemetry output")
}

// Load reads the YAML config and applies the flag overrides on top.
func (c *Config) Load() (*config.Config, error) {
	cfg, err := config.Load(c.Path)
	if err != nil {
		return nil, err
	}
	c.Apply(cfg)
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply copies every set override into cfg. Callers must Finalize cfg
// afterwards.
func (c *Config) Apply(cfg *config.Config) {
	if c.Pattern != "" {
		cfg.Seed.Pattern = c.Pattern
	}
	if c.Rule != "" {
		cfg.Rules.Rulestring = c.Rule
	}
	if c.TieBreak != "" {
		cfg.Rules.TieBreak = c.TieBreak
	}
	if c.Width > 0 {
		cfg.Grid.Width = c.Width
	}
	if c.Height > 0 {
		cfg.Grid.Height = c.Height
	}
	if c.GenMS > 0 {
		cfg.Timing.GenerationPeriodMS = c.GenMS
	}
	if c.TPS > 0 {
		cfg.Window.TPS = c.TPS
	}
	if c.Seed != 0 {
		cfg.Seed.RNGSeed = c.Seed
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.Telemetry != "" {
		cfg.Telemetry.OutputDir = c.Telemetry
	}
}
