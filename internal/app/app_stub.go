//go:build !ebiten

package app

import (
	"errors"
	"log/slog"

	"gol-sandbox/internal/config"
	"gol-sandbox/internal/sim"
)

// ErrNoGUI is returned by the headless Game.
var ErrNoGUI = errors.New("app: graphical frontend not compiled in (build with -tags ebiten)")

// Game stands in for the ebiten frontend in headless builds.
type Game struct{}

// New panics; the GUI needs the ebiten build tag.
func New(*sim.Simulation, *config.Config, *slog.Logger) *Game {
	panic(ErrNoGUI)
}

func (g *Game) Update() error { return ErrNoGUI }
func (g *Game) Draw(any) {}
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
