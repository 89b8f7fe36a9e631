package core

import (
	"errors"
	"testing"
)

func TestGridGetSetBounds(t *testing.T) {
	g := NewGrid(4, 3)
	if w, h := g.Dimensions(); w != 4 || h != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", w, h)
	}
	if err := g.Set(3, 2, Alive); err != nil {
		t.Fatalf("set in bounds: %v", err)
	}
	c, err := g.Get(3, 2)
	if err != nil || c != Alive {
		t.Fatalf("get (3,2) = %v, %v; want alive", c, err)
	}
	if got := g.Cells()[3+2*4]; got != Alive {
		t.Fatalf("linear index x+y*W holds %v, want alive", got)
	}

	cases := []Point{{4, 0}, {0, 3}, {-1, 0}, {0, -1}, {100, 100}}
	for _, p := range cases {
		if err := g.Set(p.X, p.Y, Alive); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("set %v: err = %v, want ErrOutOfBounds", p, err)
		}
		if _, err := g.Get(p.X, p.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("get %v: err = %v, want ErrOutOfBounds", p, err)
		}
	}
	if n := g.LiveCount(); n != 1 {
		t.Fatalf("out-of-bounds sets must not mutate: live=%d", n)
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}

func TestGridIterationRowMajor(t *testing.T) {
	g := NewGrid(3, 2)
	_ = g.Set(1, 0, Alive)
	_ = g.Set(2, 1, Dead)

	var visited []Point
	g.Each(func(x, y int, c Cell) {
		visited = append(visited, Point{x, y})
	})
	want := []Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if len(visited) != len(want) {
		t.Fatalf("visited %d cells, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visit %d = %v, want %v", i, visited[i], want[i])
		}
	}

	i := 0
	for p, c := range g.All() {
		if p != want[i] {
			t.Fatalf("All() visit %d = %v, want %v", i, p, want[i])
		}
		expected, _ := g.Get(p.X, p.Y)
		if c != expected {
			t.Fatalf("All() cell at %v = %v, want %v", p, c, expected)
		}
		i++
	}
}

func TestGridCloneEqualClear(t *testing.T) {
	g := NewGrid(5, 5)
	_ = g.Set(2, 2, Alive)
	_ = g.Set(0, 4, Alive)

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone should equal source")
	}
	_ = c.Set(1, 1, Alive)
	if g.Equal(c) {
		t.Fatal("clone must be independent of source")
	}

	alive := g.Alive()
	if len(alive) != 2 || alive[0] != (Point{2, 2}) || alive[1] != (Point{0, 4}) {
		t.Fatalf("alive = %v", alive)
	}

	g.Clear()
	if g.LiveCount() != 0 {
		t.Fatal("clear should empty the grid")
	}
	for _, cell := range g.Cells() {
		if cell != Empty {
			t.Fatalf("clear left %v", cell)
		}
	}
}

func TestCellOnlyAliveCounts(t *testing.T) {
	if !Alive.IsAlive() {
		t.Fatal("alive must count")
	}
	if Dead.IsAlive() || Empty.IsAlive() {
		t.Fatal("dead and empty must not count as alive")
	}
}
