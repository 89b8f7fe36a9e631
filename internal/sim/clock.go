package sim

import (
	"time"

	"gol-sandbox/internal/core"
)

// RunState is either Paused or Running.
type RunState uint8

const (
	Paused RunState = iota
	Running
)

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "paused"
}

// Fired reports how many periods of each cadence elapsed in one Advance.
type Fired struct {
	Input       int
	Generations int
}

// Clock is the run/pause state machine plus the two fixed cadences: a fast
// one for pointer input and a slower one for generations.
type Clock struct {
	state RunState
	input *core.FixedStep
	gen   *core.FixedStep
}

// NewClock returns a paused clock.
func NewClock(inputPeriod, genPeriod time.Duration, maxCatchUp int) *Clock {
	c := &Clock{
		input: core.NewFixedStep(inputPeriod),
		gen:   core.NewFixedStep(genPeriod),
	}
	c.input.SetMaxCatchUp(maxCatchUp)
	c.gen.SetMaxCatchUp(maxCatchUp)
	return c
}

// State returns the current run state.
func (c *Clock) State() RunState { return c.state }

// Running reports whether generations advance on tick.
func (c *Clock) Running() bool { return c.state == Running }

// Start moves to Running. It reports whether the state changed.
func (c *Clock) Start() bool {
	if c.state == Running {
		return false
	}
	c.state = Running
	return true
}

// Stop moves to Paused. It reports whether the state changed.
func (c *Clock) Stop() bool {
	if c.state == Paused {
		return false
	}
	c.state = Paused
	return true
}

// Reset forces Paused and drops accumulated time on both cadences.
func (c *Clock) Reset() {
	c.state = Paused
	c.input.Reset()
	c.gen.Reset()
}

// Advance feeds dt to both cadences. Generation periods that elapse while
// paused are consumed and reported as zero.
func (c *Clock) Advance(dt time.Duration) Fired {
	f := Fired{Input: c.input.Advance(dt)}
	gens := c.gen.Advance(dt)
	if c.state == Running {
		f.Generations = gens
	}
	return f
}

// InputPeriod returns the pointer sampling period.
func (c *Clock) InputPeriod() time.Duration { return c.input.Period() }

// GenerationPeriod returns the generation period.
func (c *Clock) GenerationPeriod() time.Duration { return c.gen.Period() }

// SetGenerationPeriod changes the generation cadence.
func (c *Clock) SetGenerationPeriod(d time.Duration) { c.gen.SetPeriod(d) }
