// Package sweep runs many headless Life scenarios in parallel and reports
// how each population evolved.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"gol-sandbox/internal/core"
	"gol-sandbox/internal/patterns"
	"gol-sandbox/internal/sim"
)

// Scenario is one board to evolve.
type Scenario struct {
	Pattern string
	Density float64
	Seed    int64
	Width   int
	Height  int
	Rule    sim.Rule
}

func (s Scenario) String() string {
	return fmt.Sprintf("%s density=%.2f seed=%d %dx%d %s", s.Pattern, s.Density, s.Seed, s.Width, s.Height, s.Rule)
}

// Result summarises one scenario. StableAt is the generation at which the
// live pattern first repeated with Period 1 or 2, or -1 if it never did.
type Result struct {
	Pattern     string  `csv:"pattern"`
	Density     float64 `csv:"density"`
	Seed        int64   `csv:"seed"`
	InitialLive int     `csv:"initial_live"`
	FinalLive   int     `csv:"final_live"`
	PeakLive    int     `csv:"peak_live"`
	Generations int     `csv:"generations"`
	StableAt    int     `csv:"stable_at"`
	Period      int     `csv:"period"`
	Births      int     `csv:"births"`
	Deaths      int     `csv:"deaths"`
}

// Stable reports whether the run settled.
func (r Result) Stable() bool { return r.StableAt >= 0 }

// Run evolves sc for at most maxGens generations, stopping early once the
// live cells repeat with period 1 or 2.
func Run(sc Scenario, maxGens int) (Result, error) {
	opts := patterns.Options{Width: sc.Width, Height: sc.Height, Seed: sc.Seed, Density: sc.Density}
	seed, err := patterns.Build(sc.Pattern, opts, 0, 0, true)
	if err != nil {
		return Result{}, err
	}
	cfg := sim.DefaultConfig()
	cfg.Width, cfg.Height = sc.Width, sc.Height
	if sc.Rule != (sim.Rule{}) {
		cfg.Rule = sc.Rule
	}
	cfg.Seed = seed
	s := sim.New(cfg, discardLogger)

	res := Result{
		Pattern:     sc.Pattern,
		Density:     sc.Density,
		Seed:        sc.Seed,
		InitialLive: s.Grid().LiveCount(),
		StableAt:    -1,
	}
	res.PeakLive = res.InitialLive
	prev1 := s.Grid().Clone()
	prev2 := core.NewGrid(sc.Width, sc.Height)
	havePrev2 := false
	for gen := 1; gen <= maxGens; gen++ {
		t, _ := s.Step()
		res.Generations = gen
		res.Births += t.Births
		res.Deaths += t.Deaths
		res.FinalLive = t.Live
		if t.Live > res.PeakLive {
			res.PeakLive = t.Live
		}
		cur := s.Grid()
		if SameLife(cur, prev1) {
			res.StableAt, res.Period = gen-1, 1
			break
		}
		if havePrev2 && SameLife(cur, prev2) {
			res.StableAt, res.Period = gen-2, 2
			break
		}
		prev2.CopyFrom(prev1)
		havePrev2 = true
		prev1.CopyFrom(cur)
	}
	return res, nil
}

// SameLife reports whether a and b have the same live cells. Dead and Empty
// are treated alike.
func SameLife(a, b *core.Grid) bool {
	ac, bc := a.Cells(), b.Cells()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if ac[i].IsAlive() != bc[i].IsAlive() {
			return false
		}
	}
	return true
}

// RunAll fans scenarios out to workers goroutines. onResult is called from
// the caller's goroutine in completion order. Scenarios that fail to build
// are logged and skipped.
func RunAll(ctx context.Context, scenarios []Scenario, maxGens, workers int, logger *slog.Logger, onResult func(Result)) {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	jobs := make(chan Scenario)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				res, err := Run(sc, maxGens)
				if err != nil {
					logger.Warn("scenario failed", "scenario", sc.String(), "error", err)
					continue
				}
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, sc := range scenarios {
			select {
			case jobs <- sc:
			case <-ctx.Done():
				return
			}
		}
	}()

	for res := range results {
		onResult(res)
	}
}

var discardLogger = slog.New(slog.DiscardHandler)
