package render

import (
	"image/color"

	"gol-sandbox/internal/core"
)

// Palette maps each cell state to a colour.
type Palette struct {
	Empty color.RGBA
	Alive color.RGBA
	Dead  color.RGBA
}

// Background is the window clear colour drawn beneath the board.
var Background = color.RGBA{R: 100, G: 148, B: 237, A: 255}

// DefaultPalette draws live cells red and leaves empty cells transparent so
// the background shows through. Dead cells keep a faint trace.
func DefaultPalette() Palette {
	return Palette{
		Empty: color.RGBA{},
		Alive: color.RGBA{R: 255, A: 255},
		Dead:  color.RGBA{R: 60, G: 80, B: 140, A: 255},
	}
}

// At returns the colour for c. Unknown states use Empty.
func (p Palette) At(c core.Cell) color.RGBA {
	switch c {
	case core.Alive:
		return p.Alive
	case core.Dead:
		return p.Dead
	default:
		return p.Empty
	}
}

// fillCellRGBA converts cell states into RGBA pixels in buf using the palette.
func fillCellRGBA(buf []byte, cells []core.Cell, pal Palette) {
	for i, c := range cells {
		base := i * 4
		col := pal.At(c)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
