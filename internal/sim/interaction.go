package sim

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"gol-sandbox/internal/core"
)

// TieBreak decides the outcome when paint and erase target the same cell in
// one input tick. The two pointer channels are independent, so there is no
// natural order between them; the choice is configuration.
type TieBreak uint8

const (
	// TieEraseWins applies paint first and erase second, leaving the cell Empty.
	TieEraseWins TieBreak = iota
	// TieDrawWins leaves the cell Alive.
	TieDrawWins
)

func (t TieBreak) String() string {
	if t == TieDrawWins {
		return "draw"
	}
	return "erase"
}

// ParseTieBreak accepts "erase" or "draw".
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "erase", "erase-wins":
		return TieEraseWins, nil
	case "draw", "draw-wins", "paint":
		return TieDrawWins, nil
	default:
		return TieEraseWins, fmt.Errorf("unknown tie break %q", s)
	}
}

// PendingEdit holds the paint and erase targets captured by the last input
// sample. Each is a single slot.
type PendingEdit struct {
	Paint *WorldPos
	Erase *WorldPos
}

// Empty reports whether no edit is pending.
func (p PendingEdit) Empty() bool { return p.Paint == nil && p.Erase == nil }

// Applied reports what one Apply call changed.
type Applied struct {
	Painted *core.Point
	Erased  *core.Point
	Dropped int
}

// Interaction turns pointer positions into cell edits while the simulation
// is paused.
type Interaction struct {
	cellSize float64
	tie      TieBreak
	pending  PendingEdit
	log      *slog.Logger
}

// NewInteraction returns a controller for cells of the given world size.
func NewInteraction(cellSize float64, tie TieBreak, logger *slog.Logger) *Interaction {
	if cellSize <= 0 {
		cellSize = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Interaction{cellSize: cellSize, tie: tie, log: logger}
}

// CellSize returns the world size of one cell.
func (in *Interaction) CellSize() float64 { return in.cellSize }

// TieBreak returns the configured same-cell resolution.
func (in *Interaction) TieBreak() TieBreak { return in.tie }

// Pending returns the edit waiting to be applied.
func (in *Interaction) Pending() PendingEdit { return in.pending }

// SetDrawTarget replaces the pending paint position.
func (in *Interaction) SetDrawTarget(wx, wy float64) {
	in.pending.Paint = &WorldPos{X: wx, Y: wy}
}

// SetEraseTarget replaces the pending erase position.
func (in *Interaction) SetEraseTarget(wx, wy float64) {
	in.pending.Erase = &WorldPos{X: wx, Y: wy}
}

// Discard drops any pending edit.
func (in *Interaction) Discard() { in.pending = PendingEdit{} }

// CellAt returns the cell whose box contains the world position. Cell (x, y)
// is centred on (x*size, y*size) and spans half a cell either side, closed on
// the low edge and open on the high edge.
func (in *Interaction) CellAt(g *core.Grid, wx, wy float64) (core.Point, bool) {
	if math.IsNaN(wx) || math.IsNaN(wy) {
		return core.Point{}, false
	}
	fx := math.Floor(wx/in.cellSize + 0.5)
	fy := math.Floor(wy/in.cellSize + 0.5)
	if fx < 0 || fy < 0 || fx >= float64(g.W) || fy >= float64(g.H) {
		return core.Point{}, false
	}
	return core.Point{X: int(fx), Y: int(fy)}, true
}

// CellCenter returns the world position of the centre of cell p.
func (in *Interaction) CellCenter(p core.Point) (float64, float64) {
	return float64(p.X) * in.cellSize, float64(p.Y) * in.cellSize
}

// Apply consumes the pending edit. While running the edit is discarded
// without touching the grid. Positions outside the grid are dropped.
func (in *Interaction) Apply(g *core.Grid, state RunState) Applied {
	edit := in.pending
	in.pending = PendingEdit{}
	var res Applied
	if state == Running || edit.Empty() {
		return res
	}

	var paint, erase *core.Point
	if edit.Paint != nil {
		if p, ok := in.CellAt(g, edit.Paint.X, edit.Paint.Y); ok {
			paint = &p
		} else {
			res.Dropped++
			in.log.Debug("paint outside grid dropped", "wx", edit.Paint.X, "wy", edit.Paint.Y)
		}
	}
	if edit.Erase != nil {
		if p, ok := in.CellAt(g, edit.Erase.X, edit.Erase.Y); ok {
			erase = &p
		} else {
			res.Dropped++
			in.log.Debug("erase outside grid dropped", "wx", edit.Erase.X, "wy", edit.Erase.Y)
		}
	}

	if paint != nil && erase != nil && *paint == *erase {
		if in.tie == TieDrawWins {
			erase = nil
		} else {
			paint = nil
		}
	}
	if paint != nil {
		if err := g.Set(paint.X, paint.Y, core.Alive); err == nil {
			res.Painted = paint
		}
	}
	if erase != nil {
		if err := g.Set(erase.X, erase.Y, core.Empty); err == nil {
			res.Erased = erase
		}
	}
	return res
}
