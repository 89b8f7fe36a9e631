//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"gol-sandbox/internal/camera"
	"gol-sandbox/internal/config"
	"gol-sandbox/internal/render"
	"gol-sandbox/internal/sim"
	"gol-sandbox/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a Life simulation to the ebiten.Game interface.
type Game struct {
	sim     *sim.Simulation
	cam     *camera.Camera
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	toolbar *ui.Toolbar
	log     *slog.Logger

	screenW, screenH int
	zoomStep         float64
	frame            time.Duration
}

// New constructs a Game for the provided simulation.
func New(s *sim.Simulation, cfg *config.Config, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	size := s.Size()
	w, h := cfg.Window.Width, cfg.Window.Height
	cam := camera.New(float64(w-hudWidth), float64(h-ui.BarHeight), size.W, size.H, s.CellSize(), camera.Settings{
		MoveSpeed:    cfg.Camera.MoveSpeed,
		Acceleration: cfg.Camera.Acceleration,
		MinZoom:      cfg.Camera.MinZoom,
		MaxZoom:      cfg.Camera.MaxZoom,
	})
	tps := cfg.Window.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &Game{
		sim:      s,
		cam:      cam,
		painter:  render.NewGridPainter(size.W, size.H, render.DefaultPalette()),
		hud:      ui.NewHUD(s, hudWidth),
		overlay:  ui.NewOverlay(size, s.CellSize()),
		toolbar:  ui.NewToolbar(w, h),
		log:      logger,
		screenW:  w,
		screenH:  h,
		zoomStep: cfg.Camera.ZoomStep,
		frame:    time.Second / time.Duration(tps),
	}
}

// Update handles per-frame input and advances the simulation by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if kind, ok := g.toolbar.Update(); ok {
		switch kind {
		case ui.ButtonPlay:
			g.sim.PostStart()
		case ui.ButtonStop:
			g.sim.PostStop()
		case ui.ButtonReset:
			g.sim.PostReset()
		case ui.ButtonQuit:
			return ebiten.Termination
		}
	}
	hudClicked := g.hud.Update(g.viewWidth())
	g.overlay.Update()
	g.handleKeys()
	g.handleCamera()
	if !hudClicked {
		g.handlePointer()
	}

	rep := g.sim.Tick(g.frame)
	if rep.Dropped > 0 {
		g.log.Debug("edit outside board dropped", "count", rep.Dropped)
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if g.sim.Running() {
			g.sim.PostStop()
		} else {
			g.sim.PostStart()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.PostReset()
	}
}

func (g *Game) handleCamera() {
	var ax, ay float64
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		ax--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		ax++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		ay--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		ay++
	}
	g.cam.Push(ax, ay)
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.cam.Halt()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.cam.Reset()
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		mx, my := ebiten.CursorPosition()
		factor := 1 + g.zoomStep
		if wy < 0 {
			factor = 1 / factor
		}
		g.cam.ZoomAt(float64(mx), float64(my), factor)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.cam.ZoomBy(1 + g.zoomStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.cam.ZoomBy(1 / (1 + g.zoomStep))
	}
	g.cam.Update()
}

// handlePointer posts the world position under the cursor while a button is
// held over the board. The simulation samples it on its input cadence and
// ignores it while running.
func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	if mx >= g.viewWidth() || g.toolbar.Bar().Contains(mx, my) {
		return
	}
	wx, wy := g.cam.ScreenToWorld(float64(mx), float64(my))
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.sim.PostPaint(wx, wy)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.sim.PostErase(wx, wy)
	}
}

// Draw renders the board, overlays and panels.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	g.painter.Blit(screen, g.sim.Cells(), g.cam, g.sim.CellSize())
	g.overlay.Draw(screen, g.cam, ui.Stats{
		FPS:        ebiten.ActualFPS(),
		Zoom:       g.cam.Zoom,
		CameraX:    g.cam.X,
		CameraY:    g.cam.Y,
		Generation: g.sim.Generation(),
		Live:       g.sim.Grid().LiveCount(),
		Running:    g.sim.Running(),
	})
	g.hud.Draw(screen, g.viewWidth(), g.screenH-ui.BarHeight)
	g.toolbar.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenW || outsideHeight != g.screenH {
		g.screenW, g.screenH = outsideWidth, outsideHeight
		g.cam.Resize(float64(g.viewWidth()), float64(g.screenH-ui.BarHeight))
		g.toolbar.Bar().Layout(g.screenW, g.screenH)
	}
	return g.screenW, g.screenH
}

func (g *Game) viewWidth() int { return g.screenW - g.hud.Width() }
