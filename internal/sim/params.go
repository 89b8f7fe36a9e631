package sim

import (
	"time"

	"gol-sandbox/internal/core"
)

const (
	paramGenerationPeriod = "gen_period_ms"
	paramInputPeriod      = "input_period_ms"
)

// Parameters snapshots the values shown on the HUD.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	size := s.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", size.W),
				core.IntParam("h", "Height", size.H),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				core.IntParam(paramGenerationPeriod, "Generation ms", int(s.clock.GenerationPeriod()/time.Millisecond)),
				core.IntParam(paramInputPeriod, "Input ms", int(s.clock.InputPeriod()/time.Millisecond)),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.TextParam("rule", "Rule", s.rule.String()),
				core.TextParam("tie_break", "Same-cell winner", s.interaction.TieBreak().String()),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.BoolParam("running", "Running", s.Running()),
				core.IntParam("generation", "Generation", s.generation),
				core.IntParam("live", "Live cells", s.cur.LiveCount()),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    paramGenerationPeriod,
			Label:  "Generation ms",
			Step:   10,
			Min:    10,
			Max:    1000,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetIntParameter updates an adjustable value. It reports whether key is
// known.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	switch key {
	case paramGenerationPeriod:
		ctrl := s.ParameterControls()[0]
		ms := ctrl.Clamp(value)
		s.clock.SetGenerationPeriod(time.Duration(ms) * time.Millisecond)
		s.log.Debug("generation period changed", "ms", ms)
		return true
	default:
		return false
	}
}
