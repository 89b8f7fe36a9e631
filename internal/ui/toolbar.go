//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Toolbar draws the button bar and reports clicks.
type Toolbar struct {
	bar   *ButtonBar
	pixel *ebiten.Image

	cursorX, cursorY int
	pressed          bool
}

// NewToolbar lays out a toolbar for the window size.
func NewToolbar(screenW, screenH int) *Toolbar {
	return &Toolbar{bar: NewButtonBar(screenW, screenH), pixel: newPixel()}
}

// Bar exposes the layout.
func (t *Toolbar) Bar() *ButtonBar { return t.bar }

// Update samples the cursor and returns the button clicked this frame.
func (t *Toolbar) Update() (ButtonKind, bool) {
	t.cursorX, t.cursorY = ebiten.CursorPosition()
	t.pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, false
	}
	return t.bar.HitTest(t.cursorX, t.cursorY)
}

// Draw paints the bar and its buttons.
func (t *Toolbar) Draw(screen *ebiten.Image) {
	fillRect(screen, t.pixel, t.bar.Bounds(), color.RGBA{R: 26, G: 26, B: 26, A: 255})
	inner := t.bar.Bounds().Inset(barBorder)
	fillRect(screen, t.pixel, inner, color.RGBA{R: 51, G: 51, B: 51, A: 255})
	for _, btn := range t.bar.Buttons() {
		state := t.bar.StateOf(btn, t.cursorX, t.cursorY, t.pressed)
		fillRect(screen, t.pixel, btn.Rect, state.Color())
		drawCentered(screen, btn.Rect, btn.Kind.Label(), color.Black)
	}
}
