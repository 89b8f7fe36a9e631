package core

import "time"

// DefaultMaxCatchUp bounds how many periods a single Advance may report.
const DefaultMaxCatchUp = 4

// FixedStep accumulates frame deltas and reports how many fixed periods have
// elapsed. It never reads the wall clock, so callers decide what "delta" is.
type FixedStep struct {
	period      time.Duration
	accumulator time.Duration
	maxCatchUp  int
}

// NewFixedStep constructs a FixedStep firing once per period.
func NewFixedStep(period time.Duration) *FixedStep {
	fs := &FixedStep{maxCatchUp: DefaultMaxCatchUp}
	fs.SetPeriod(period)
	return fs
}

// NewFixedStepTPS constructs a FixedStep targeting the given ticks per second.
func NewFixedStepTPS(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return NewFixedStep(time.Second / time.Duration(tps))
}

// SetPeriod changes the firing period. It is safe to call from the main loop;
// time already accumulated is kept.
func (f *FixedStep) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = time.Second / 60
	}
	f.period = period
}

// Period returns the current firing period.
func (f *FixedStep) Period() time.Duration { return f.period }

// SetMaxCatchUp sets how many periods one Advance call may report. Values
// below one disable the cap.
func (f *FixedStep) SetMaxCatchUp(n int) { f.maxCatchUp = n }

// Advance adds dt to the accumulator and returns how many whole periods fired.
// When more than the catch-up cap fired, the surplus is dropped.
func (f *FixedStep) Advance(dt time.Duration) int {
	if dt > 0 {
		f.accumulator += dt
	}
	fired := 0
	for f.accumulator >= f.period {
		f.accumulator -= f.period
		fired++
		if f.maxCatchUp > 0 && fired == f.maxCatchUp {
			if f.accumulator >= f.period {
				f.accumulator %= f.period
			}
			break
		}
	}
	return fired
}

// Reset discards accumulated time.
func (f *FixedStep) Reset() { f.accumulator = 0 }
