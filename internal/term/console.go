package term

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"gol-sandbox/internal/sim"
)

const (
	viewBoard  = "board"
	viewStatus = "status"
	viewHelp   = "help"

	leftColumnWidth = 30
	minWindowHeight = 12
)

type keyBinding struct {
	key      any
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console is an interactive terminal frontend. All simulation calls happen
// on the gocui main loop goroutine.
type Console struct {
	sim  *sim.Simulation
	g    *gocui.Gui
	keys []keyBinding
	log  *slog.Logger

	fill      Fillers
	view      Viewport
	eraseMode bool
	lastTick  time.Time
}

// NewConsole creates the gocui frontend for s.
func NewConsole(s *sim.Simulation, logger *slog.Logger) (*Console, error) {
	if logger == nil {
		logger = slog.Default()
	}
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("starting terminal ui: %w", err)
	}
	c := &Console{sim: s, g: g, log: logger, fill: ColorFillers()}
	g.Mouse = true
	c.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{'q', "Q", "Exit", c.cmdQuit, ""},
		{'r', "R", "Run", c.cmdRun, ""},
		{'s', "S", "Stop", c.cmdStop, ""},
		{'c', "C", "Reset", c.cmdReset, ""},
		{'n', "N", "Step", c.cmdStep, ""},
		{'e', "E", "Paint/erase", c.cmdToggleErase, ""},
		{gocui.KeyArrowLeft, "←↑→↓", "Scroll", c.scroll(-1, 0), ""},
		{gocui.KeyArrowRight, "", "", c.scroll(1, 0), ""},
		{gocui.KeyArrowUp, "", "", c.scroll(0, -1), ""},
		{gocui.KeyArrowDown, "", "", c.scroll(0, 1), ""},
		{gocui.MouseLeft, "MOUSE", "Edit cell", c.cmdMouse(false), viewBoard},
		{gocui.MouseRight, "", "", c.cmdMouse(true), viewBoard},
	}
	g.SetManagerFunc(c.layout)
	for _, kb := range c.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("binding %s: %w", kb.name, err)
		}
	}
	return c, nil
}

// Run drives the simulation at its input cadence and blocks until the user
// quits or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	defer c.g.Close()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go c.drive(ctx)
	go func() {
		<-ctx.Done()
		c.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
	}()

	if err := c.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func (c *Console) drive(ctx context.Context) {
	ticker := time.NewTicker(c.sim.Clock().InputPeriod())
	defer ticker.Stop()
	c.lastTick = time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			c.g.Update(func(g *gocui.Gui) error {
				dt := now.Sub(c.lastTick)
				c.lastTick = now
				c.sim.Tick(dt)
				c.render(g)
				return nil
			})
		}
	}
}

func (c *Console) render(g *gocui.Gui) {
	if v, err := g.View(viewBoard); err == nil {
		v.Clear()
		w, h := v.Size()
		c.view.W, c.view.H = w, h
		c.view = c.view.Clamp(c.sim.Size())
		_, _ = fmt.Fprint(v, RenderBoard(c.sim.Grid(), c.view, c.fill))
	}
	if v, err := g.View(viewStatus); err == nil {
		v.Clear()
		size := c.sim.Size()
		mode := "paint"
		if c.eraseMode {
			mode = aurora.Colorize("erase", aurora.RedFg).String()
		}
		_, _ = fmt.Fprintln(v, Prop("Dimension", fmt.Sprintf("%d x %d", size.W, size.H)))
		_, _ = fmt.Fprintln(v, Prop("Rule", c.sim.Rule().String()))
		_, _ = fmt.Fprintln(v, Prop("Generation ms", c.sim.Clock().GenerationPeriod().Milliseconds()))
		_, _ = fmt.Fprintln(v, Prop("Generation", c.sim.Generation()))
		_, _ = fmt.Fprintln(v, Prop("Live cells", c.sim.Grid().LiveCount()))
		_, _ = fmt.Fprintln(v, Prop("Mode", StateLabel(c.sim.Running())))
		_, _ = fmt.Fprintln(v, Prop("Mouse", mode))
		_, _ = fmt.Fprintln(v, Prop("View", fmt.Sprintf("%d,%d", c.view.X, c.view.Y)))
	}
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxY < minWindowHeight || maxX < leftColumnWidth+10 {
		_ = g.DeleteView(viewStatus)
		_ = g.DeleteView(viewBoard)
		_ = g.DeleteView(viewHelp)
		return nil
	}
	if v, err := g.SetView(viewStatus, 0, 0, leftColumnWidth, maxY-3); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView(viewBoard, leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Board"
	}
	if v, err := g.SetView(viewHelp, -1, maxY-3, maxX, maxY-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYS: ")
		first := true
		for _, k := range c.keys {
			if k.name == "" {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}
	c.render(g)
	return nil
}

func (c *Console) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (c *Console) cmdRun(_ *gocui.View) error {
	c.sim.PostStart()
	return nil
}

func (c *Console) cmdStop(_ *gocui.View) error {
	c.sim.PostStop()
	return nil
}

func (c *Console) cmdReset(_ *gocui.View) error {
	c.sim.PostReset()
	return nil
}

func (c *Console) cmdStep(_ *gocui.View) error {
	c.sim.Step()
	c.render(c.g)
	return nil
}

func (c *Console) cmdToggleErase(_ *gocui.View) error {
	c.eraseMode = !c.eraseMode
	c.render(c.g)
	return nil
}

func (c *Console) scroll(dx, dy int) func(*gocui.View) error {
	return func(*gocui.View) error {
		c.view.X += dx * 4
		c.view.Y += dy * 2
		c.render(c.g)
		return nil
	}
}

// cmdMouse posts the clicked cell's centre as a paint or erase target. The
// right button always erases.
func (c *Console) cmdMouse(right bool) func(*gocui.View) error {
	return func(v *gocui.View) error {
		cx, cy := v.Cursor()
		cell := c.sim.CellSize()
		wx := float64(c.view.X+cx) * cell
		wy := float64(c.view.Y+cy) * cell
		if right || c.eraseMode {
			c.sim.PostErase(wx, wy)
		} else {
			c.sim.PostPaint(wx, wy)
		}
		return nil
	}
}
