// Package term renders the Life board in a terminal.
package term

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"gol-sandbox/internal/core"
)

// Fillers are the strings drawn for each cell state.
type Fillers struct {
	Alive string
	Dead  string
	Empty string
}

// ColorFillers draws live cells as solid green blocks and dead cells as a
// dim red dot.
func ColorFillers() Fillers {
	return Fillers{
		Alive: aurora.Green("█").BgBrightGreen().String(),
		Dead:  aurora.Red("·").String(),
		Empty: "░",
	}
}

// PlainFillers uses ASCII only.
func PlainFillers() Fillers {
	return Fillers{Alive: "#", Dead: "+", Empty: "."}
}

func (f Fillers) of(c core.Cell) string {
	switch c {
	case core.Alive:
		return f.Alive
	case core.Dead:
		return f.Dead
	default:
		return f.Empty
	}
}

// Viewport is the window of cells to render, in cell coordinates.
type Viewport struct {
	X, Y int
	W, H int
}

// Clamp keeps the viewport origin on the board.
func (v Viewport) Clamp(size core.Size) Viewport {
	v.X = min(max(v.X, 0), max(size.W-v.W, 0))
	v.Y = min(max(v.Y, 0), max(size.H-v.H, 0))
	return v
}

// RenderBoard draws the cells inside vp one character per cell, rows
// separated by newlines. Rows and columns beyond the board are skipped.
func RenderBoard(g *core.Grid, vp Viewport, f Fillers) string {
	var b strings.Builder
	for row := 0; row < vp.H; row++ {
		y := vp.Y + row
		if y >= g.H {
			break
		}
		if row != 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < vp.W; col++ {
			x := vp.X + col
			if x >= g.W {
				break
			}
			c, err := g.Get(x, y)
			if err != nil {
				continue
			}
			b.WriteString(f.of(c))
		}
	}
	return b.String()
}

// RenderAll draws the whole board.
func RenderAll(g *core.Grid, f Fillers) string {
	return RenderBoard(g, Viewport{W: g.W, H: g.H}, f)
}

// Prop formats a labelled status line.
func Prop(name string, value any) string {
	return " " + aurora.Colorize(name, aurora.GreenFg).String() + ": " + fmt.Sprint(value)
}

// StateLabel colours the run state.
func StateLabel(running bool) string {
	if running {
		return aurora.Colorize("running", aurora.CyanFg).String()
	}
	return aurora.Colorize("paused", aurora.BlueFg).String()
}
