package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/integrii/flaggy"

	"gol-sandbox/internal/app"
	"gol-sandbox/internal/sim"
	"gol-sandbox/internal/telemetry"
	"gol-sandbox/internal/term"
)

func main() {
	flags := app.NewConfig()
	gens := 200
	var jsonLogs, plain, quiet, noBoard bool
	flaggy.SetName("life-run")
	flaggy.SetDescription("Run Game of Life headless for a fixed number of generations")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flags.BindFlaggy(flaggy.DefaultParser)
	flaggy.Int(&gens, "n", "generations", "generations to compute")
	flaggy.Bool(&jsonLogs, "j", "json", "log as JSON")
	flaggy.Bool(&plain, "a", "ascii", "print the final board without colour")
	flaggy.Bool(&quiet, "q", "quiet", "hide the progress bar")
	flaggy.Bool(&noBoard, "b", "no-board", "skip printing the final board")
	flaggy.Parse()

	cfg, err := flags.Load()
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	logger := cfg.NewLogger(jsonLogs)
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

	logger.Info("running",
		"grid", s.Size(),
		"rule", s.Rule().String(),
		"pattern", cfg.Seed.Pattern,
		"generations", gens,
		"live", s.Grid().LiveCount(),
	)

	var bar *pb.ProgressBar
	if !quiet {
		bar = pb.StartNew(gens)
	}
	start := time.Now()
	for i := 0; i < gens; i++ {
		s.Step()
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}
	elapsed := time.Since(start)

	if err := rec.Close(); err != nil {
		logger.Warn("closing telemetry", "error", err)
	}

	if !noBoard {
		fill := term.ColorFillers()
		if plain {
			fill = term.PlainFillers()
		}
		fmt.Println(term.RenderAll(s.Grid(), fill))
	}
	fmt.Println("Finished:")
	fmt.Println(term.Prop("Generation", s.Generation()))
	fmt.Println(term.Prop("Live cells", s.Grid().LiveCount()))
	fmt.Println(term.Prop("Total time", elapsed.Round(time.Millisecond)))
	if dir := rec.Output().Dir(); dir != "" {
		fmt.Println(term.Prop("Telemetry", dir))
	}
}
