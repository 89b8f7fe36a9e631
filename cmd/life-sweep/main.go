package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gocarina/gocsv"

	"gol-sandbox/internal/sim"
	"gol-sandbox/internal/sweep"
)

func main() {
	gens := flag.Int("gens", 500, "maximum generations per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	size := flag.Int("size", 64, "board width and height")
	seeds := flag.Int("seeds", 8, "random seeds per density")
	densities := flag.String("densities", "0.1,0.2,0.3,0.4,0.5", "comma-separated fill densities")
	pattern := flag.String("pattern", "random", "sized pattern to fill with: random or noise")
	rule := flag.String("rule", "B3/S23", "rulestring")
	out := flag.String("out", "", "CSV file for all results (stdout summary only when empty)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	r, err := sim.ParseRule(*rule)
	if err != nil {
		logger.Error("bad rule", "error", err)
		os.Exit(2)
	}
	ds, err := parseDensities(*densities)
	if err != nil {
		logger.Error("bad densities", "error", err)
		os.Exit(2)
	}

	var scenarios []sweep.Scenario
	for _, d := range ds {
		for seed := 1; seed <= *seeds; seed++ {
			scenarios = append(scenarios, sweep.Scenario{
				Pattern: *pattern,
				Density: d,
				Seed:    int64(seed),
				Width:   *size,
				Height:  *size,
				Rule:    r,
			})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d generations)\n", len(scenarios), *workers, *gens)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bar := pb.StartNew(len(scenarios))
	start := time.Now()
	var all []sweep.Result
	sweep.RunAll(ctx, scenarios, *gens, *workers, logger, func(res sweep.Result) {
		all = append(all, res)
		bar.Increment()
	})
	bar.Finish()
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool {
		if all[i].Density != all[j].Density {
			return all[i].Density < all[j].Density
		}
		return all[i].Seed < all[j].Seed
	})

	fmt.Printf("\nPer-density summary (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, d := range ds {
		var n, stable, finalSum, stableSum int
		for _, res := range all {
			if res.Density != d {
				continue
			}
			n++
			finalSum += res.FinalLive
			if res.Stable() {
				stable++
				stableSum += res.StableAt
			}
		}
		if n == 0 {
			continue
		}
		avgStable := "-"
		if stable > 0 {
			avgStable = strconv.Itoa(stableSum / stable)
		}
		fmt.Printf("density=%.2f runs=%d stable=%d avgFinal=%d avgStableAt=%s\n", d, n, stable, finalSum/n, avgStable)
	}

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			logger.Error("creating output", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := gocsv.MarshalFile(&all, f); err != nil {
			logger.Error("writing results", "error", err)
			os.Exit(1)
		}
		logger.Info("results written", "path", *out, "rows", len(all))
	}
}

func parseDensities(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		if d < 0 || d > 1 {
			return nil, fmt.Errorf("density %v outside [0,1]", d)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no densities in %q", s)
	}
	return out, nil
}
