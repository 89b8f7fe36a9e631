package sim

import (
	"errors"
	"testing"

	"gol-sandbox/internal/core"
)

func gridWith(w, h int, alive ...core.Point) *core.Grid {
	g := core.NewGrid(w, h)
	for _, p := range alive {
		if err := g.Set(p.X, p.Y, core.Alive); err != nil {
			panic(err)
		}
	}
	return g
}

func step(g *core.Grid) *core.Grid {
	next := core.NewGrid(g.W, g.H)
	Advance(g, next)
	return next
}

func assertAlive(t *testing.T, g *core.Grid, want ...core.Point) {
	t.Helper()
	expects := map[core.Point]bool{}
	for _, p := range want {
		expects[p] = true
	}
	g.Each(func(x, y int, c core.Cell) {
		if alive := c == core.Alive; alive != expects[core.Point{X: x, Y: y}] {
			t.Fatalf("cell (%d,%d) = %v, expected alive=%v", x, y, c, expects[core.Point{X: x, Y: y}])
		}
	})
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	g := core.NewGrid(16, 9)
	next := step(g)
	for i, c := range next.Cells() {
		if c != core.Empty {
			t.Fatalf("cell %d became %v on an empty grid", i, c)
		}
	}
}

func TestIsolatedCellDies(t *testing.T) {
	g := gridWith(5, 5, core.Point{X: 2, Y: 2})
	next := step(g)
	if c, _ := next.Get(2, 2); c != core.Dead {
		t.Fatalf("isolated cell = %v, want dead", c)
	}
	if next.LiveCount() != 0 {
		t.Fatalf("live = %d, want 0", next.LiveCount())
	}
}

func TestBlockIsStillLife(t *testing.T) {
	block := []core.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}}
	g := gridWith(6, 6, block...)
	next := step(g)
	if !g.Equal(next) {
		t.Fatal("block changed after one generation")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	x, y := 3, 3
	row := []core.Point{{X: x, Y: y}, {X: x + 1, Y: y}, {X: x + 2, Y: y}}
	g := gridWith(8, 8, row...)

	gen1 := step(g)
	assertAlive(t, gen1, core.Point{X: x + 1, Y: y - 1}, core.Point{X: x + 1, Y: y}, core.Point{X: x + 1, Y: y + 1})
	for _, p := range []core.Point{{X: x, Y: y}, {X: x + 2, Y: y}} {
		if c, _ := gen1.Get(p.X, p.Y); c != core.Dead {
			t.Fatalf("row end %v = %v, want dead", p, c)
		}
	}

	gen2 := step(gen1)
	assertAlive(t, gen2, row...)
}

func TestAdvanceDoesNotWriteSource(t *testing.T) {
	g := gridWith(6, 6, core.Point{X: 1, Y: 2}, core.Point{X: 2, Y: 2}, core.Point{X: 3, Y: 2})
	before := g.Clone()
	step(g)
	if !g.Equal(before) {
		t.Fatal("advance mutated its source generation")
	}
}

// A row-major in-place update would birth (2,1) early and corrupt the
// glider; this checks the double-buffered result against the known shape.
func TestGliderTranslates(t *testing.T) {
	glider := []core.Point{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	g := gridWith(10, 10, glider...)
	for i := 0; i < 4; i++ {
		g = step(g)
	}
	var moved []core.Point
	for _, p := range glider {
		moved = append(moved, p.Add(1, 1))
	}
	assertAlive(t, g, moved...)
}

func TestBoundedEdges(t *testing.T) {
	var all []core.Point
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			all = append(all, core.Point{X: x, Y: y})
		}
	}
	g := gridWith(3, 3, all...)

	if n := Neighbors(g, 0, 0); n != 3 {
		t.Fatalf("corner neighbours = %d, want 3", n)
	}
	if n := Neighbors(g, 1, 0); n != 5 {
		t.Fatalf("edge neighbours = %d, want 5", n)
	}
	if n := Neighbors(g, 1, 1); n != 8 {
		t.Fatalf("centre neighbours = %d, want 8", n)
	}

	// Wrapped edges would give every cell 8 neighbours and kill the corners.
	next := step(g)
	assertAlive(t, next, core.Point{X: 0, Y: 0}, core.Point{X: 2, Y: 0}, core.Point{X: 0, Y: 2}, core.Point{X: 2, Y: 2})
}

func TestBorderCellsDoNotPanic(t *testing.T) {
	g := gridWith(4, 3,
		core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: 0},
		core.Point{X: 0, Y: 2}, core.Point{X: 3, Y: 2},
		core.Point{X: 1, Y: 0}, core.Point{X: 3, Y: 1},
	)
	for i := 0; i < 5; i++ {
		g = step(g)
	}
	single := gridWith(1, 1, core.Point{X: 0, Y: 0})
	if n := Neighbors(single, 0, 0); n != 0 {
		t.Fatalf("1x1 neighbours = %d", n)
	}
}

func TestDeadCellsDoNotCount(t *testing.T) {
	g := core.NewGrid(3, 3)
	_ = g.Set(0, 0, core.Dead)
	_ = g.Set(1, 0, core.Dead)
	_ = g.Set(2, 0, core.Dead)
	if n := Neighbors(g, 1, 1); n != 0 {
		t.Fatalf("dead cells counted as %d neighbours", n)
	}
	next := step(g)
	if next.LiveCount() != 0 {
		t.Fatal("dead cells caused a birth")
	}
	if c, _ := next.Get(0, 0); c != core.Dead {
		t.Fatalf("dead cell without births should stay dead, got %v", c)
	}
}

func TestDeadCellCanBeReborn(t *testing.T) {
	g := gridWith(5, 5, core.Point{X: 1, Y: 1}, core.Point{X: 2, Y: 1}, core.Point{X: 3, Y: 1})
	_ = g.Set(2, 2, core.Dead)
	next := step(g)
	if c, _ := next.Get(2, 2); c != core.Alive {
		t.Fatalf("dead cell with three neighbours = %v, want alive", c)
	}
}

func TestTransitionCounts(t *testing.T) {
	g := gridWith(8, 8, core.Point{X: 3, Y: 3}, core.Point{X: 4, Y: 3}, core.Point{X: 5, Y: 3})
	next := core.NewGrid(8, 8)
	tr := Advance(g, next)
	if tr.Births != 2 || tr.Deaths != 2 || tr.Live != 3 {
		t.Fatalf("transition = %+v, want 2 births, 2 deaths, 3 live", tr)
	}
	if !tr.Changed() {
		t.Fatal("blinker step should report a change")
	}
}

func TestAdvancePanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched grids")
		}
	}()
	Advance(core.NewGrid(3, 3), core.NewGrid(4, 3))
}

func TestParseRule(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"B3/S23", "B3/S23", true},
		{"s23/b3", "B3/S23", true},
		{"B36/S23", "B36/S23", true},
		{"B/S012345678", "B/S012345678", true},
		{"B3", "", false},
		{"B9/S23", "", false},
		{"X3/S23", "", false},
		{"B3/B3", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		r, err := ParseRule(tc.in)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseRule(%q): %v", tc.in, err)
				continue
			}
			if r.String() != tc.want {
				t.Errorf("ParseRule(%q) = %s, want %s", tc.in, r, tc.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidRule) {
			t.Errorf("ParseRule(%q) err = %v, want ErrInvalidRule", tc.in, err)
		}
	}
}

func TestHighLifeReplicatorBirth(t *testing.T) {
	r := MustParseRule("B36/S23")
	if r.Next(core.Empty, 6) != core.Alive {
		t.Fatal("B36 should birth on six neighbours")
	}
	if Conway.Next(core.Empty, 6) != core.Empty {
		t.Fatal("Conway must not birth on six neighbours")
	}
}
