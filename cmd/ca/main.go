//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"gol-sandbox/internal/app"
	"gol-sandbox/internal/config"
	"gol-sandbox/internal/sim"
	"gol-sandbox/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := app.NewConfig()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger(false)
	slog.SetDefault(logger)

	simCfg, err := cfg.SimConfig()
	if err != nil {
		logger.Error("building seed", "error", err)
		os.Exit(1)
	}
	s := sim.New(simCfg, logger)

	rec, err := telemetry.NewRecorder(cfg.Telemetry.OutputDir, cfg.Telemetry.Window, logger)
	if err != nil {
		logger.Error("telemetry", "error", err)
		os.Exit(1)
	}
	if err := rec.Output().WriteConfig(cfg); err != nil {
		logger.Warn("saving config", "error", err)
	}
	rec.Attach(s)
	defer rec.Close()

	logger.Info("starting",
		"grid", s.Size(),
		"rule", s.Rule().String(),
		"pattern", cfg.Seed.Pattern,
		"live", s.Grid().LiveCount(),
	)

	game := app.New(s, cfg, logger)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop", "error", err)
		rec.Close()
		os.Exit(1)
	}
	logger.Info("exiting", "generation", s.Generation())
}
