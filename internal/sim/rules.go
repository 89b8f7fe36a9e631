package sim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gol-sandbox/internal/core"
)

// ErrInvalidRule is returned when a rulestring cannot be parsed.
var ErrInvalidRule = errors.New("invalid rulestring")

// Rule holds the neighbour counts that cause a birth or let a live cell
// survive. Counts range over 0..8.
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// Conway is the standard B3/S23 rule.
var Conway = MustParseRule("B3/S23")

// ParseRule parses a rulestring in "B3/S23" form. The order of the two parts
// and letter case do not matter.
func ParseRule(s string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return r, fmt.Errorf("%q: %w", s, ErrInvalidRule)
	}
	seen := map[byte]bool{}
	for _, part := range parts {
		if part == "" {
			return r, fmt.Errorf("%q: %w", s, ErrInvalidRule)
		}
		kind := part[0] | 0x20
		var target *[9]bool
		switch kind {
		case 'b':
			target = &r.Birth
		case 's':
			target = &r.Survive
		default:
			return r, fmt.Errorf("%q: unknown part %q: %w", s, part, ErrInvalidRule)
		}
		if seen[kind] {
			return r, fmt.Errorf("%q: duplicate part %q: %w", s, part, ErrInvalidRule)
		}
		seen[kind] = true
		for _, ch := range part[1:] {
			n, err := strconv.Atoi(string(ch))
			if err != nil || n > 8 {
				return r, fmt.Errorf("%q: bad count %q: %w", s, ch, ErrInvalidRule)
			}
			target[n] = true
		}
	}
	return r, nil
}

// MustParseRule is ParseRule that panics on error.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, ok := range r.Birth {
		if ok {
			b.WriteString(strconv.Itoa(n))
		}
	}
	b.WriteString("/S")
	for n, ok := range r.Survive {
		if ok {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

// Next returns the state of a cell with the given number of live neighbours
// in the following generation.
func (r Rule) Next(c core.Cell, neighbors int) core.Cell {
	if c == core.Alive {
		if r.Survive[neighbors] {
			return core.Alive
		}
		return core.Dead
	}
	if r.Birth[neighbors] {
		return core.Alive
	}
	return c
}

// Transition summarises one generation step.
type Transition struct {
	Births int
	Deaths int
	Live   int
}

// Changed reports whether any cell changed liveness.
func (t Transition) Changed() bool { return t.Births > 0 || t.Deaths > 0 }

// Neighbors counts the Alive cells among the up to eight in-bounds
// neighbours of (x, y). Coordinates outside the grid are skipped.
func Neighbors(g *core.Grid, x, y int) int {
	cells := g.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.W {
				continue
			}
			if cells[ny*g.W+nx] == core.Alive {
				n++
			}
		}
	}
	return n
}

// Advance writes the generation following src into dst using r. src is only
// read, so every count observes the same generation. Grids of different
// sizes are a programming error.
func (r Rule) Advance(src, dst *core.Grid) Transition {
	if src == dst {
		panic("sim: advance requires distinct source and destination grids")
	}
	if src.W != dst.W || src.H != dst.H {
		panic(fmt.Sprintf("sim: advance %dx%d into %dx%d", src.W, src.H, dst.W, dst.H))
	}
	cur, nxt := src.Cells(), dst.Cells()
	var t Transition
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			idx := y*src.W + x
			was := cur[idx]
			now := r.Next(was, Neighbors(src, x, y))
			nxt[idx] = now
			switch {
			case now == core.Alive && was != core.Alive:
				t.Births++
			case now != core.Alive && was == core.Alive:
				t.Deaths++
			}
			if now == core.Alive {
				t.Live++
			}
		}
	}
	return t
}

// Advance computes the next Conway generation of src into dst.
func Advance(src, dst *core.Grid) Transition {
	return Conway.Advance(src, dst)
}
