package sim

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gol-sandbox/internal/core"
)

// ErrInvalidSeed marks a seed point outside the grid.
var ErrInvalidSeed = errors.New("seed point outside grid")

// Config parameterises a Simulation.
type Config struct {
	Width            int
	Height           int
	CellSize         float64
	InputPeriod      time.Duration
	GenerationPeriod time.Duration
	MaxCatchUp       int
	Rule             Rule
	TieBreak         TieBreak
	Seed             []core.Point
}

// DefaultConfig mirrors the stock sandbox: a 100x100 board of 32-unit cells,
// pointer sampling at ~60 Hz and a generation every 60 ms.
func DefaultConfig() Config {
	return Config{
		Width:            100,
		Height:           100,
		CellSize:         32,
		InputPeriod:      16 * time.Millisecond,
		GenerationPeriod: 60 * time.Millisecond,
		MaxCatchUp:       core.DefaultMaxCatchUp,
		Rule:             Conway,
		TieBreak:         TieEraseWins,
	}
}

// SeedReport lists how a seed was applied.
type SeedReport struct {
	Placed  int
	Skipped []error
}

// TickReport describes what one Tick did.
type TickReport struct {
	Started     bool
	Stopped     bool
	Reset       bool
	Fired       Fired
	Painted     []core.Point
	Erased      []core.Point
	Dropped     int
	Generations int
	Transition  Transition
}

// Simulation owns the grid, run state and pending edits. All mutation goes
// through Tick, Step, Seed and Reset, which must be called from one
// goroutine. The mailbox may be posted to from anywhere.
type Simulation struct {
	cfg Config
	log *slog.Logger

	cur *core.Grid
	nxt *core.Grid

	rule        Rule
	clock       *Clock
	interaction *Interaction
	mailbox     Mailbox

	generation int
	last       Transition

	observer func(generation int, t Transition)
}

// New allocates a paused simulation and applies cfg.Seed.
func New(cfg Config, logger *slog.Logger) *Simulation {
	if logger == nil {
		logger = slog.Default()
	}
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = def.CellSize
	}
	if cfg.InputPeriod <= 0 {
		cfg.InputPeriod = def.InputPeriod
	}
	if cfg.GenerationPeriod <= 0 {
		cfg.GenerationPeriod = def.GenerationPeriod
	}
	if cfg.MaxCatchUp == 0 {
		cfg.MaxCatchUp = def.MaxCatchUp
	}
	if cfg.Rule == (Rule{}) {
		cfg.Rule = Conway
	}
	s := &Simulation{
		cfg:         cfg,
		log:         logger,
		cur:         core.NewGrid(cfg.Width, cfg.Height),
		nxt:         core.NewGrid(cfg.Width, cfg.Height),
		rule:        cfg.Rule,
		clock:       NewClock(cfg.InputPeriod, cfg.GenerationPeriod, cfg.MaxCatchUp),
		interaction: NewInteraction(cfg.CellSize, cfg.TieBreak, logger),
	}
	if len(cfg.Seed) > 0 {
		s.Seed(cfg.Seed)
	}
	return s
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size { return s.cur.Size() }

// Grid exposes the current generation. Callers must treat it as read-only.
func (s *Simulation) Grid() *core.Grid { return s.cur }

// Cells exposes the current generation's backing slice.
func (s *Simulation) Cells() []core.Cell { return s.cur.Cells() }

// Generation returns how many generations have been computed since the last
// reset.
func (s *Simulation) Generation() int { return s.generation }

// State returns the run state.
func (s *Simulation) State() RunState { return s.clock.State() }

// Running reports whether the simulation is running.
func (s *Simulation) Running() bool { return s.clock.Running() }

// LastTransition returns the summary of the most recent generation.
func (s *Simulation) LastTransition() Transition { return s.last }

// Rule returns the active rule.
func (s *Simulation) Rule() Rule { return s.rule }

// Clock exposes the cadence state machine.
func (s *Simulation) Clock() *Clock { return s.clock }

// Interaction exposes the pointer edit controller.
func (s *Simulation) Interaction() *Interaction { return s.interaction }

// Mailbox returns the inbound event slots.
func (s *Simulation) Mailbox() *Mailbox { return &s.mailbox }

// CellSize returns the world size of one cell.
func (s *Simulation) CellSize() float64 { return s.cfg.CellSize }

// PostStart requests a transition to Running on the next tick.
func (s *Simulation) PostStart() { s.mailbox.Post(EventStart) }

// PostStop requests a transition to Paused on the next tick.
func (s *Simulation) PostStop() { s.mailbox.Post(EventStop) }

// PostReset requests a reset on the next tick.
func (s *Simulation) PostReset() { s.mailbox.Post(EventReset) }

// PostPaint requests the cell under the world position be made Alive.
func (s *Simulation) PostPaint(wx, wy float64) { s.mailbox.PostPaint(wx, wy) }

// PostErase requests the cell under the world position be made Empty.
func (s *Simulation) PostErase(wx, wy float64) { s.mailbox.PostErase(wx, wy) }

// Seed marks every in-bounds point Alive. Points outside the grid are
// skipped and reported, never fatal.
func (s *Simulation) Seed(points []core.Point) SeedReport {
	var rep SeedReport
	for _, p := range points {
		if err := s.cur.Set(p.X, p.Y, core.Alive); err != nil {
			err = fmt.Errorf("%w: %w", ErrInvalidSeed, err)
			s.log.Warn("skipping seed point", "x", p.X, "y", p.Y, "error", err)
			rep.Skipped = append(rep.Skipped, err)
			continue
		}
		rep.Placed++
	}
	s.last = Transition{Live: s.cur.LiveCount()}
	return rep
}

// Start moves to Running immediately.
func (s *Simulation) Start() {
	if s.clock.Start() {
		s.interaction.Discard()
		s.log.Info("simulation started", "generation", s.generation)
	}
}

// Stop moves to Paused immediately.
func (s *Simulation) Stop() {
	if s.clock.Stop() {
		s.log.Info("simulation stopped", "generation", s.generation)
	}
}

// Reset pauses, drops pending edits and events, and clears the grid.
func (s *Simulation) Reset() {
	s.clock.Reset()
	s.interaction.Discard()
	s.mailbox.Clear()
	s.cur.Clear()
	s.nxt.Clear()
	s.generation = 0
	s.last = Transition{}
	s.log.Info("simulation reset")
}

// Tick advances both cadences by dt. Within one tick the order is fixed:
// control events, then for each input period the pointer sample followed by
// edit application, then generation steps.
func (s *Simulation) Tick(dt time.Duration) TickReport {
	var rep TickReport

	ctl := s.mailbox.DrainControl()
	if ctl.Reset {
		s.Reset()
		rep.Reset = true
	} else {
		if ctl.Stop && s.clock.Running() {
			s.Stop()
			rep.Stopped = true
		}
		if ctl.Start && !s.clock.Running() {
			s.Start()
			rep.Started = true
		}
	}

	rep.Fired = s.clock.Advance(dt)
	for i := 0; i < rep.Fired.Input; i++ {
		s.sampleInput()
		applied := s.interaction.Apply(s.cur, s.clock.State())
		if applied.Painted != nil {
			rep.Painted = append(rep.Painted, *applied.Painted)
		}
		if applied.Erased != nil {
			rep.Erased = append(rep.Erased, *applied.Erased)
		}
		rep.Dropped += applied.Dropped
	}

	for i := 0; i < rep.Fired.Generations; i++ {
		rep.Transition = s.advance()
		rep.Generations++
	}
	return rep
}

// Step computes exactly one generation while paused. It reports false and
// does nothing while running.
func (s *Simulation) Step() (Transition, bool) {
	if s.clock.Running() {
		return Transition{}, false
	}
	return s.advance(), true
}

// sampleInput moves the latest pointer positions into the pending edit.
// While running the pointer is ignored.
func (s *Simulation) sampleInput() {
	ptr := s.mailbox.DrainPointer()
	if s.clock.Running() {
		return
	}
	if ptr.Paint != nil {
		s.interaction.SetDrawTarget(ptr.Paint.X, ptr.Paint.Y)
	}
	if ptr.Erase != nil {
		s.interaction.SetEraseTarget(ptr.Erase.X, ptr.Erase.Y)
	}
}

// SetObserver registers fn to be called after every generation, including
// those fired in catch-up and by Step. Pass nil to remove it.
func (s *Simulation) SetObserver(fn func(generation int, t Transition)) {
	s.observer = fn
}

func (s *Simulation) advance() Transition {
	t := s.rule.Advance(s.cur, s.nxt)
	s.cur, s.nxt = s.nxt, s.cur
	s.generation++
	s.last = t
	if s.observer != nil {
		s.observer(s.generation, t)
	}
	return t
}
