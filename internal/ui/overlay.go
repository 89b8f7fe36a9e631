//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"

	"gol-sandbox/internal/camera"
	"gol-sandbox/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// minGridPixels hides grid lines once cells shrink below this many pixels.
const minGridPixels = 4

// Overlay draws the corner stats text and optional cell grid lines.
type Overlay struct {
	size     core.Size
	cellSize float64
	showGrid bool
	showText bool
	pixel    *ebiten.Image
}

// NewOverlay constructs an overlay for a board of the given size.
func NewOverlay(size core.Size, cellSize float64) *Overlay {
	return &Overlay{size: size, cellSize: cellSize, showText: true, pixel: newPixel()}
}

// Update toggles grid lines on G and stats text on F1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.showText = !o.showText
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, cam *camera.Camera, stats Stats) {
	if o.showGrid {
		o.drawGrid(screen, cam)
	}
	if o.showText {
		face := basicfont.Face7x13
		y := 16
		for _, line := range stats.Lines() {
			text.Draw(screen, line, face, 9, y+1, color.Black)
			text.Draw(screen, line, face, 8, y, color.RGBA{R: 255, G: 215, B: 0, A: 255})
			y += 16
		}
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, cam *camera.Camera) {
	step := o.cellSize * cam.Zoom
	if step < minGridPixels {
		return
	}
	half := o.cellSize / 2
	x0, y0 := cam.WorldToScreen(-half, -half)
	x1, y1 := cam.WorldToScreen(float64(o.size.W)*o.cellSize-half, float64(o.size.H)*o.cellSize-half)
	b := screen.Bounds()
	col := color.RGBA{R: 40, G: 40, B: 60, A: 120}

	top := int(math.Max(y0, 0))
	bottom := int(math.Min(y1, float64(b.Dy())))
	left := int(math.Max(x0, 0))
	right := int(math.Min(x1, float64(b.Dx())))
	if top >= bottom || left >= right {
		return
	}
	for i := 0; i <= o.size.W; i++ {
		x := int(x0 + float64(i)*step)
		if x < left || x > right {
			continue
		}
		fillRect(screen, o.pixel, image.Rect(x, top, x+1, bottom), col)
	}
	for j := 0; j <= o.size.H; j++ {
		y := int(y0 + float64(j)*step)
		if y < top || y > bottom {
			continue
		}
		fillRect(screen, o.pixel, image.Rect(left, y, right, y+1), col)
	}
}
