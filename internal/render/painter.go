//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gol-sandbox/internal/camera"
	"gol-sandbox/internal/core"
)

// GridPainter uploads cell states into one image, one pixel per cell, and
// draws it through a camera.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	pal  Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, pal Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), pal: pal}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells and draws them so that cell (x, y) is
// centred at world (x*cellSize, y*cellSize).
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []core.Cell, cam *camera.Camera, cellSize float64) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillCellRGBA(gp.buf, cells, gp.pal)
	gp.img.WritePixels(gp.buf)

	sx, sy := cam.WorldToScreen(-cellSize/2, -cellSize/2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cellSize*cam.Zoom, cellSize*cam.Zoom)
	op.GeoM.Translate(sx, sy)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
