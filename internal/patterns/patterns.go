// Package patterns provides named seed patterns for the Life grid.
package patterns

import (
	"fmt"
	"sort"

	"gol-sandbox/internal/core"
)

// Options carries the inputs generators may use. Static patterns ignore it.
type Options struct {
	Width  int
	Height int
	Seed   int64

	Density        float64
	NoiseScale     float64
	NoiseThreshold float64
}

// Generator produces seed coordinates relative to the pattern origin.
type Generator func(opts Options) []core.Point

// Pattern is a registered seed.
type Pattern struct {
	Name        string
	Description string
	Generate    Generator
	// Sized patterns fill the whole board and must not be offset.
	Sized bool
}

var registry = map[string]Pattern{}

// Register adds a pattern under its name.
func Register(p Pattern) {
	if p.Name == "" || p.Generate == nil {
		return
	}
	registry[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists registered patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build generates the named pattern translated by (dx, dy). When centered is
// set the pattern's bounding box is centred on the board instead. Sized
// patterns ignore both.
func Build(name string, opts Options, dx, dy int, centered bool) ([]core.Point, error) {
	p, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q", name)
	}
	pts := p.Generate(opts)
	if p.Sized {
		return pts, nil
	}
	if centered {
		w, h := Bounds(pts)
		dx = (opts.Width - w) / 2
		dy = (opts.Height - h) / 2
	}
	return Offset(pts, dx, dy), nil
}

// Offset returns a translated copy of pts.
func Offset(pts []core.Point, dx, dy int) []core.Point {
	out := make([]core.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(dx, dy)
	}
	return out
}

// Bounds returns the width and height of the box spanning pts from the
// origin.
func Bounds(pts []core.Point) (int, int) {
	w, h := 0, 0
	for _, p := range pts {
		if p.X+1 > w {
			w = p.X + 1
		}
		if p.Y+1 > h {
			h = p.Y + 1
		}
	}
	return w, h
}

// Parse reads a plaintext pattern where 'O' or '*' marks a live cell and
// any other character is empty. Lines starting with '!' are comments.
func Parse(lines ...string) []core.Point {
	var pts []core.Point
	y := 0
	for _, line := range lines {
		if len(line) > 0 && line[0] == '!' {
			continue
		}
		for x, ch := range line {
			if ch == 'O' || ch == '*' {
				pts = append(pts, core.Point{X: x, Y: y})
			}
		}
		y++
	}
	return pts
}

func static(pts []core.Point) Generator {
	return func(Options) []core.Point {
		out := make([]core.Point, len(pts))
		copy(out, pts)
		return out
	}
}
