package core

// Cell is the state of a single grid square.
//
// Only Alive takes part in neighbour counting. Dead marks a cell that died in
// the most recent generation so renderers can draw it differently; for the
// rules it is exactly as empty as Empty. Do not make Dead count as alive.
type Cell uint8

const (
	// Empty is a cell that has never been alive or was erased.
	Empty Cell = iota
	// Alive is a live cell.
	Alive
	// Dead is a cell that was alive and died.
	Dead
)

func (c Cell) String() string {
	switch c {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	case Empty:
		return "empty"
	default:
		return "invalid"
	}
}

// IsAlive reports whether the cell counts as a live neighbour.
func (c Cell) IsAlive() bool { return c == Alive }

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point addresses a grid cell.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }
