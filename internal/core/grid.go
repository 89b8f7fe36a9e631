package core

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfBounds is returned for coordinates outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Grid stores a fixed W×H array of cells in row-major order. Edges are
// bounded: there is no wrapping.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates an all-Empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Dimensions returns width and height.
func (g *Grid) Dimensions() (int, int) { return g.W, g.H }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Get returns the cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Empty, fmt.Errorf("get (%d,%d) on %dx%d grid: %w", x, y, g.W, g.H, ErrOutOfBounds)
	}
	return g.data[g.Index(x, y)], nil
}

// Set stores c at (x, y).
func (g *Grid) Set(x, y int, c Cell) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("set (%d,%d) on %dx%d grid: %w", x, y, g.W, g.H, ErrOutOfBounds)
	}
	g.data[g.Index(x, y)] = c
	return nil
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(x, y int, c Cell)) {
	for y := 0; y < g.H; y++ {
		row := g.data[y*g.W : (y+1)*g.W]
		for x, c := range row {
			fn(x, y, c)
		}
	}
}

// All iterates over every cell in row-major order.
func (g *Grid) All() iter.Seq2[Point, Cell] {
	return func(yield func(Point, Cell) bool) {
		for i, c := range g.data {
			if !yield(Point{X: i % g.W, Y: i / g.W}, c) {
				return
			}
		}
	}
}

// Clear sets every cell to Empty.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Empty
	}
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	if src.W != g.W || src.H != g.H {
		panic(fmt.Sprintf("core: copy %dx%d grid into %dx%d grid", src.W, src.H, g.W, g.H))
	}
	copy(g.data, src.data)
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, data: make([]Cell, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.data {
		if other.data[i] != c {
			return false
		}
	}
	return true
}

// LiveCount returns the number of Alive cells.
func (g *Grid) LiveCount() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// Alive lists the coordinates of Alive cells in row-major order.
func (g *Grid) Alive() []Point {
	var pts []Point
	for i, c := range g.data {
		if c == Alive {
			pts = append(pts, Point{X: i % g.W, Y: i / g.W})
		}
	}
	return pts
}
