//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"gol-sandbox/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBg      = color.RGBA{R: 16, G: 16, B: 20, A: 230}
	titleColor   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	stepEnabled  = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	stepDisabled = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD is the side panel: adjustable controls with -/+ steppers followed by
// a read-only dump of the simulation's parameter snapshot.
type HUD struct {
	src    Source
	setter core.IntParameterSetter
	title  string

	width   int
	height  int
	panel   *ebiten.Image
	pixel   *ebiten.Image

	rows []controlRow
	snap core.ParameterSnapshot
}

type controlRow struct {
	ctrl  core.ParameterControl
	value int
	known bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// NewHUD builds a panel of the given width. A width of zero disables it.
func NewHUD(src Source, width int) *HUD {
	h := &HUD{src: src, width: max(width, 0), title: buildTitle(src)}
	if h.width > 0 {
		h.pixel = newPixel()
	}
	if p, ok := src.(core.ParameterControlsProvider); ok {
		for i, ctrl := range p.ParameterControls() {
			h.rows = append(h.rows, h.layoutRow(i, ctrl))
		}
	}
	h.setter, _ = src.(core.IntParameterSetter)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update re-reads the snapshot and applies any stepper click. It reports
// whether the click landed on the panel so the caller can ignore it.
func (h *HUD) Update(offsetX int) bool {
	if h == nil || h.width == 0 {
		return false
	}
	h.snap = h.src.Parameters()
	for i := range h.rows {
		r := &h.rows[i]
		p, ok := h.snap.Lookup(r.ctrl.Key)
		r.known = false
		if ok && p.Type == core.ParamTypeInt {
			if v, err := strconv.Atoi(p.Value); err == nil {
				r.value, r.known = v, true
			}
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return false
	}
	h.click(mx-offsetX, my)
	return true
}

func (h *HUD) click(px, py int) {
	for i := range h.rows {
		r := &h.rows[i]
		dir := 0
		switch {
		case pointInRect(px, py, r.minus):
			dir = -1
		case pointInRect(px, py, r.plus):
			dir = 1
		default:
			continue
		}
		if !r.known || h.setter == nil {
			return
		}
		if target, ok := stepTarget(r.ctrl, r.value, dir); ok && h.setter.SetIntParameter(r.ctrl.Key, target) {
			r.value = target
		}
		return
	}
}

// Draw paints the panel at offsetX, height pixels tall.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width == 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.height != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.height = height
	}
	h.panel.Fill(panelBg)
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)

	y := rowsTop
	for i := range h.rows {
		h.drawRow(&h.rows[i])
		y = h.rows[i].top + rowHeight
	}
	y += sectionGap
	for _, line := range snapshotLines(h.snap) {
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, mutedColor)
		y += infoLineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawRow(r *controlRow) {
	face := basicfont.Face7x13
	baseline := r.top + labelBaseline
	text.Draw(h.panel, r.ctrl.Label, face, panelPadding, baseline, labelColor)

	value, col := "--", mutedColor
	if r.known {
		value, col = strconv.Itoa(r.value), labelColor
	}
	w := text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, r.minus.Min.X-stepperGap-w, baseline, col)

	_, canDown := stepTarget(r.ctrl, r.value, -1)
	_, canUp := stepTarget(r.ctrl, r.value, 1)
	live := r.known && h.setter != nil
	h.drawStepper(r.minus, "-", live && canDown)
	h.drawStepper(r.plus, "+", live && canUp)
}

func (h *HUD) drawStepper(rect image.Rectangle, label string, enabled bool) {
	bg, fg := stepDisabled, color.RGBA{R: 120, G: 120, B: 130, A: 255}
	if enabled {
		bg, fg = stepEnabled, color.RGBA{R: 230, G: 230, B: 240, A: 255}
	}
	fillRect(h.panel, h.pixel, rect, bg)
	drawCentered(h.panel, rect, label, fg)
}

func (h *HUD) layoutRow(i int, ctrl core.ParameterControl) controlRow {
	top := rowsTop + i*rowHeight
	y := top + (rowHeight-stepperSize)/2
	right := h.width - panelPadding
	plus := image.Rect(right-stepperSize, y, right, y+stepperSize)
	minus := plus.Sub(image.Pt(stepperSize+stepperGap, 0))
	return controlRow{ctrl: ctrl, top: top, minus: minus, plus: plus}
}

const (
	panelPadding   = 12
	headerBaseline = 18
	rowsTop        = panelPadding + headerBaseline + 14
	rowHeight      = 36
	labelBaseline  = 24
	stepperSize    = 24
	stepperGap     = 6
	sectionGap     = 18
	infoLineHeight = 16
)
