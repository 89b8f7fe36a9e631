package ui

import (
	"image"
	"image/color"
)

// ButtonKind identifies a toolbar button.
type ButtonKind int

const (
	ButtonPlay ButtonKind = iota
	ButtonStop
	ButtonReset
	ButtonQuit
)

// Label returns the caption drawn on the button.
func (k ButtonKind) Label() string {
	switch k {
	case ButtonPlay:
		return "Play"
	case ButtonStop:
		return "Stop"
	case ButtonReset:
		return "Reset"
	case ButtonQuit:
		return "QUIT"
	default:
		return "?"
	}
}

// ButtonState is the visual state of a button for one frame.
type ButtonState int

const (
	ButtonActive ButtonState = iota
	ButtonHover
	ButtonDown
)

var (
	colorActive = color.RGBA{R: 204, G: 204, B: 204, A: 255}
	colorHover  = color.RGBA{R: 102, G: 204, B: 204, A: 255}
	colorDown   = color.RGBA{R: 102, G: 255, B: 255, A: 255}
)

// Color returns the button fill for the state.
func (s ButtonState) Color() color.RGBA {
	switch s {
	case ButtonHover:
		return colorHover
	case ButtonDown:
		return colorDown
	default:
		return colorActive
	}
}

const (
	BarHeight    = 75
	ButtonWidth  = 150
	ButtonHeight = 50
	barBorder    = 3
	minSlotGap   = 8
)

// Button is a laid-out toolbar button.
type Button struct {
	Kind ButtonKind
	Rect image.Rectangle
}

// ButtonBar lays out Play, Stop, Reset and QUIT along the bottom edge of
// the window, each centred in an equal-width slot.
type ButtonBar struct {
	buttons []Button
	bar     image.Rectangle
}

// NewButtonBar returns a bar laid out for a screenW x screenH window.
func NewButtonBar(screenW, screenH int) *ButtonBar {
	b := &ButtonBar{}
	b.Layout(screenW, screenH)
	return b
}

// Layout recomputes button rectangles for a new window size.
func (b *ButtonBar) Layout(screenW, screenH int) {
	kinds := []ButtonKind{ButtonPlay, ButtonStop, ButtonReset, ButtonQuit}
	top := screenH - BarHeight
	if top < 0 {
		top = 0
	}
	b.bar = image.Rect(0, top, screenW, screenH)
	slot := screenW / len(kinds)
	w := ButtonWidth
	if w > slot-minSlotGap {
		w = max(slot-minSlotGap, 1)
	}
	h := min(ButtonHeight, max(b.bar.Dy()-2*barBorder, 1))
	y := top + (b.bar.Dy()-h)/2
	b.buttons = b.buttons[:0]
	for i, k := range kinds {
		x := i*slot + (slot-w)/2
		b.buttons = append(b.buttons, Button{Kind: k, Rect: image.Rect(x, y, x+w, y+h)})
	}
}

// Buttons returns the laid-out buttons in display order.
func (b *ButtonBar) Buttons() []Button { return b.buttons }

// Bounds returns the whole bar rectangle.
func (b *ButtonBar) Bounds() image.Rectangle { return b.bar }

// Contains reports whether the point lies on the bar.
func (b *ButtonBar) Contains(x, y int) bool { return pointInRect(x, y, b.bar) }

// HitTest returns the button under the point.
func (b *ButtonBar) HitTest(x, y int) (ButtonKind, bool) {
	for _, btn := range b.buttons {
		if pointInRect(x, y, btn.Rect) {
			return btn.Kind, true
		}
	}
	return 0, false
}

// StateOf returns how btn should be drawn given the cursor and whether the
// left button is held.
func (b *ButtonBar) StateOf(btn Button, x, y int, pressed bool) ButtonState {
	if !pointInRect(x, y, btn.Rect) {
		return ButtonActive
	}
	if pressed {
		return ButtonDown
	}
	return ButtonHover
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
