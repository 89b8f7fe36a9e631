package ui

import (
	"fmt"
	"strings"

	"gol-sandbox/internal/core"
)

// Source is what the HUD reads from a simulation.
type Source interface {
	Name() string
	Size() core.Size
	Parameters() core.ParameterSnapshot
}

// stepTarget returns the value one step from cur in direction, and whether
// that step stays inside the control's bounds.
func stepTarget(ctrl core.ParameterControl, cur, direction int) (int, bool) {
	if direction == 0 {
		return cur, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := cur + direction*step
	if direction < 0 && ctrl.HasMin && target < ctrl.Min {
		return ctrl.Min, cur > ctrl.Min
	}
	if direction > 0 && ctrl.HasMax && target > ctrl.Max {
		return ctrl.Max, cur < ctrl.Max
	}
	return target, true
}

func buildTitle(src Source) string {
	if src == nil {
		return "Controls"
	}
	name := src.Name()
	if name == "" {
		return "Controls"
	}
	return fmt.Sprintf("%s%s Controls", strings.ToUpper(name[:1]), name[1:])
}

// Stats is the frame information shown in the corner overlay.
type Stats struct {
	FPS        float64
	Zoom       float64
	CameraX    float64
	CameraY    float64
	Generation int
	Live       int
	Running    bool
}

// Lines formats the stats one item per line.
func (s Stats) Lines() []string {
	state := "paused"
	if s.Running {
		state = "running"
	}
	return []string{
		fmt.Sprintf("FPS: %.1f", s.FPS),
		fmt.Sprintf("Zoom: %.2f", s.Zoom),
		fmt.Sprintf("Camera: x=%.0f y=%.0f", s.CameraX, s.CameraY),
		fmt.Sprintf("Generation: %d", s.Generation),
		fmt.Sprintf("Live: %d", s.Live),
		fmt.Sprintf("State: %s", state),
	}
}

// snapshotLines flattens a snapshot into "Label: value" rows, with a header
// row per group.
func snapshotLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range snap.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}
