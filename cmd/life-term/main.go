package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/integrii/flaggy"

	"gol-sandbox/internal/app"
	"gol-sandbox/internal/sim"
	"gol-sandbox/internal/telemetry"
	"gol-sandbox/internal/term"
)

func main() {
	flags := app.NewConfig()
	var logFile string
	flaggy.SetName("life-term")
	flaggy.SetDescription("Interactive Game of Life in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flags.BindFlaggy(flaggy.DefaultParser)
	flaggy.String(&logFile, "f", "log-file", "write logs here; the terminal is owned by the UI")
	flaggy.Parse()

	cfg, err := flags.Load()
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	// The UI owns stdout/stderr, so logs go to a file or nowhere.
	logger := slog.New(slog.DiscardHandler)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			flaggy.ShowHelpAndExit(err.Error())
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.Derived.LogLevel}))
	}
	slog.SetDefault(logger)

	simCfg, err := cfg.SimConfig()
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	s := sim.New(simCfg, logger)

	rec, err := telemetry.NewRecorder(cfg.Telemetry.OutputDir, cfg.Telemetry.Window, logger)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	_ = rec.Output().WriteConfig(cfg)
	rec.Attach(s)

	console, err := term.NewConsole(s, logger)
	if err != nil {
		logger.Error("terminal", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	runErr := console.Run(ctx)
	if err := rec.Close(); err != nil {
		logger.Warn("closing telemetry", "error", err)
	}
	if runErr != nil {
		logger.Error("terminal ui", "error", runErr)
		os.Exit(1)
	}
}
